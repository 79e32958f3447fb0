// internal/app/features/uploadroster/routes.go
package uploadroster

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the upload flow, mounted under /upload.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Form)
	r.Post("/preview", h.Preview)
	r.Post("/confirm", h.Confirm)
	return r
}
