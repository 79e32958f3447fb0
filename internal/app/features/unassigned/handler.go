// internal/app/features/unassigned/handler.go

// Package unassigned lists the interns and tech leads left out of the
// current allocation and serves them as CSV downloads.
package unassigned

import (
	"encoding/csv"
	"errors"
	"net/http"

	errorspage "github.com/coderelay/internhub/internal/app/features/errors"
	"github.com/coderelay/internhub/internal/app/system/assignment"
	"github.com/coderelay/internhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the unassigned feature.
type Handler struct {
	DB      *mongo.Database
	Service *assignment.Service
	Log     *zap.Logger
	ErrLog  *errorspage.ErrorLogger
}

// NewHandler constructs an unassigned Handler.
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
	Loaded  bool
	Interns []assignment.InternVM
	Leads   []assignment.LeadSummary
}

// Page handles GET /unassigned: both lists with download links.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, h.DB, "Unassigned", "/"),
	}
	interns, leads, err := h.Service.Unassigned()
	if err == nil {
		data.Loaded = true
		data.Interns = interns
		data.Leads = leads
	} else if !errors.Is(err, assignment.ErrNoRoster) {
		h.ErrLog.LogServerError(w, r, "unassigned: loading failed", err,
			"Could not load the unassigned lists. Please try again.", "/")
		return
	}
	templates.Render(w, r, "unassigned", data)
}

// InternsCSV handles GET /unassigned/interns.csv.
func (h *Handler) InternsCSV(w http.ResponseWriter, r *http.Request) {
	interns, _, err := h.Service.Unassigned()
	if err != nil {
		http.Error(w, "no rosters loaded", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="unassigned_interns.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Full Name", "Email Address", "Contact Number", "Affiliation"})
	for _, in := range interns {
		_ = cw.Write([]string{in.FullName, in.Email, in.ContactNumber, in.Affiliation})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		h.Log.Warn("unassigned: writing interns csv failed", zap.Error(err))
	}
}

// TechLeadsCSV handles GET /unassigned/techleads.csv.
func (h *Handler) TechLeadsCSV(w http.ResponseWriter, r *http.Request) {
	_, leads, err := h.Service.Unassigned()
	if err != nil {
		http.Error(w, "no rosters loaded", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="unassigned_tech_leads.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Full Name", "Email Address", "Contact Number", "Affiliation"})
	for _, l := range leads {
		_ = cw.Write([]string{l.Lead.FullName, l.Lead.Email, l.Lead.ContactNumber, l.Lead.Affiliation})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		h.Log.Warn("unassigned: writing tech leads csv failed", zap.Error(err))
	}
}
