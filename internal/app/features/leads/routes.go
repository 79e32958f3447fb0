// internal/app/features/leads/routes.go
package leads

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the tech-lead dashboard, mounted under
// /leads.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Lookup)
	r.Get("/dashboard", h.Dashboard)
	r.Post("/status", h.SetStatus)
	return r
}
