// internal/app/features/settings/routes.go
package settings

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for site settings, mounted under /settings.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Edit)
	r.Post("/", h.Save)
	return r
}
