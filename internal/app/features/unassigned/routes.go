// internal/app/features/unassigned/routes.go
package unassigned

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the unassigned lists, mounted under
// /unassigned.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Page)
	r.Get("/interns.csv", h.InternsCSV)
	r.Get("/techleads.csv", h.TechLeadsCSV)
	return r
}
