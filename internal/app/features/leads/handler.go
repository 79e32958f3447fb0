// internal/app/features/leads/handler.go

// Package leads serves the tech-lead dashboard: a lead looks themselves
// up by email and sees their groups with per-intern status toggles.
package leads

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	errorspage "github.com/coderelay/internhub/internal/app/features/errors"
	"github.com/coderelay/internhub/internal/app/system/assignment"
	"github.com/coderelay/internhub/internal/app/system/normalize"
	"github.com/coderelay/internhub/internal/app/system/timeouts"
	"github.com/coderelay/internhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the leads feature.
type Handler struct {
	DB      *mongo.Database
	Service *assignment.Service
	Log     *zap.Logger
	ErrLog  *errorspage.ErrorLogger
}

// NewHandler constructs a leads Handler.
func NewHandler(db *mongo.Database, svc *assignment.Service, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Service: svc,
		Log:     logger,
		ErrLog:  errorspage.NewErrorLogger(logger),
	}
}

type lookupData struct {
	viewdata.BaseVM
	Email        string
	ErrorMessage string
	NoRoster     bool
}

type dashboardData struct {
	viewdata.BaseVM
	View assignment.LeadView
}

// Lookup handles GET /leads: the email entry form, optionally with an
// error message from a failed lookup.
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	data := lookupData{
		BaseVM:   viewdata.NewBaseVM(r, h.DB, "Tech Lead Dashboard", "/"),
		Email:    query.Get(r, "email"),
		NoRoster: !h.Service.Loaded(),
	}
	switch query.Get(r, "err") {
	case "notfound":
		data.ErrorMessage = "No tech lead found with that email address."
	case "noroster":
		data.ErrorMessage = "No rosters have been uploaded yet."
	}
	templates.Render(w, r, "lead_lookup", data)
}

// Dashboard handles GET /leads/dashboard?email=…: the lead's groups with
// resolved intern statuses.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	email := normalize.Email(query.Get(r, "email"))
	if email == "" {
		http.Redirect(w, r, "/leads", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	view, err := h.Service.LeadFor(ctx, email)
	switch {
	case errors.Is(err, assignment.ErrNoRoster):
		http.Redirect(w, r, "/leads?err=noroster", http.StatusSeeOther)
		return
	case errors.Is(err, assignment.ErrLeadNotFound):
		http.Redirect(w, r, "/leads?err=notfound&email="+url.QueryEscape(email), http.StatusSeeOther)
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "leads: dashboard lookup failed", err,
			"Could not load the dashboard. Please try again.", "/leads")
		return
	}

	data := dashboardData{
		BaseVM: viewdata.NewBaseVM(r, h.DB, view.Lead.FullName, "/leads"),
		View:   view,
	}
	templates.Render(w, r, "lead_dashboard", data)
}

// SetStatus handles POST /leads/status: a single intern status toggle
// from a dashboard checkbox, then redirects back to the dashboard.
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		errorspage.RenderBadRequest(w, r, "Could not read the submitted form.", "/leads")
		return
	}
	leadEmail := normalize.Email(r.PostFormValue("lead"))
	internEmail := normalize.Email(r.PostFormValue("intern"))
	newStatus := r.PostFormValue("status")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err := h.Service.SetStatus(ctx, internEmail, newStatus)
	switch {
	case errors.Is(err, assignment.ErrNoRoster):
		http.Redirect(w, r, "/leads?err=noroster", http.StatusSeeOther)
		return
	case errors.Is(err, assignment.ErrInvalidStatus):
		errorspage.RenderBadRequest(w, r, "That status value is not recognized.", dashboardURL(leadEmail))
		return
	case errors.Is(err, assignment.ErrInternNotFound):
		errorspage.RenderNotFound(w, r, "No intern found with that email address.", dashboardURL(leadEmail))
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "leads: status toggle failed", err,
			"Could not save the status change. Please try again.", dashboardURL(leadEmail))
		return
	}

	h.Log.Info("intern status updated",
		zap.String("intern", internEmail),
		zap.String("status", newStatus),
		zap.String("lead", leadEmail),
	)
	http.Redirect(w, r, dashboardURL(leadEmail), http.StatusSeeOther)
}

func dashboardURL(leadEmail string) string {
	if leadEmail == "" {
		return "/leads"
	}
	return "/leads/dashboard?email=" + url.QueryEscape(leadEmail)
}
