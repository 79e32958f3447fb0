// internal/app/features/home/handler.go

// Package home serves the landing page: the overall assignment dashboard
// with roster totals, the active/inactive split, and a per-lead summary.
package home

import (
	"context"
	"errors"
	"net/http"

	errorspage "github.com/coderelay/internhub/internal/app/features/errors"
	"github.com/coderelay/internhub/internal/app/system/assignment"
	"github.com/coderelay/internhub/internal/app/system/timeouts"
	"github.com/coderelay/internhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the home feature.
type Handler struct {
	DB      *mongo.Database
	Service *assignment.Service
	Log     *zap.Logger
	ErrLog  *errorspage.ErrorLogger
}

// NewHandler constructs a home Handler.
func NewHandler(db *mongo.Database, svc *assignment.Service, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Service: svc,
		Log:     logger,
		ErrLog:  errorspage.NewErrorLogger(logger),
	}
}

type pageData struct {
	viewdata.BaseVM
	Loaded   bool
	Overview assignment.Overview
}

// Serve handles GET /: the overall dashboard, or an onboarding notice
// when no rosters exist yet.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, h.DB, "Dashboard", "/"),
	}

	ov, err := h.Service.OverviewFor(ctx)
	switch {
	case errors.Is(err, assignment.ErrNoRoster):
		// fall through with Loaded=false
	case err != nil:
		h.ErrLog.LogServerError(w, r, "home: building overview failed", err,
			"Could not load the dashboard. Please try again.", "/")
		return
	default:
		data.Loaded = true
		data.Overview = ov
	}

	templates.Render(w, r, "home", data)
}
