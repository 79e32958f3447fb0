// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the basic view model for error pages.
type pageData struct {
	Title   string
	Message string
	BackURL string
}

// Handler is the errors feature handler.
// No DB needed; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders a friendly "page not found" page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	data := pageData{
		Title:   "Page not found",
		Message: "The page you are looking for does not exist.",
		BackURL: "/",
	}
	templates.Render(w, r, "error_page", data)
}

// RenderBadRequest shows an error page for invalid input with a 400
// status. If backURL is empty, a safe back URL is resolved from the
// request.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = httpnav.ResolveBackURL(r, "/")
	}
	w.WriteHeader(http.StatusBadRequest)
	data := pageData{
		Title:   "Invalid request",
		Message: msg,
		BackURL: backURL,
	}
	templates.Render(w, r, "error_page", data)
}

// RenderNotFound shows an error page for a missing record with a 404
// status.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = httpnav.ResolveBackURL(r, "/")
	}
	w.WriteHeader(http.StatusNotFound)
	data := pageData{
		Title:   "Not found",
		Message: msg,
		BackURL: backURL,
	}
	templates.Render(w, r, "error_page", data)
}
