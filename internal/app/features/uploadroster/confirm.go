// internal/app/features/uploadroster/confirm.go
package uploadroster

import (
	"context"
	"encoding/json"
	"net/http"

	errorspage "github.com/coderelay/internhub/internal/app/features/errors"
	"github.com/coderelay/internhub/internal/app/features/uploadroster/rosterio"
	"github.com/coderelay/internhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Confirm handles POST /upload/confirm: replace the chosen roster with
// the previewed rows, rebuild the allocation, and show a summary.
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch())
	defer cancel()

	if err := r.ParseForm(); err != nil {
		errorspage.RenderBadRequest(w, r, "Could not read the submitted form.", "/upload")
		return
	}

	roster := r.PostFormValue("roster")
	if roster != RosterInterns && roster != RosterTechLeads {
		errorspage.RenderBadRequest(w, r, "Unknown roster type.", "/upload")
		return
	}

	var rows []rosterio.Row
	if err := json.Unmarshal([]byte(r.PostFormValue("payload")), &rows); err != nil {
		errorspage.RenderBadRequest(w, r, "The preview data was malformed. Upload the file again.", "/upload")
		return
	}
	if len(rows) == 0 {
		errorspage.RenderBadRequest(w, r, "There are no rows to import. Upload the file again.", "/upload")
		return
	}

	var err error
	if roster == RosterInterns {
		err = h.Rosters.ReplaceInterns(ctx, rosterio.Interns(rows))
	} else {
		err = h.Rosters.ReplaceLeads(ctx, rosterio.TechLeads(rows))
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "uploadroster: replacing roster failed", err,
			"Could not save the roster. Please try again.", "/upload")
		return
	}

	if err := h.Service.Reload(ctx); err != nil {
		h.ErrLog.LogServerError(w, r, "uploadroster: rebuilding allocation failed", err,
			"The roster was saved but the allocation could not be rebuilt.", "/upload")
		return
	}

	h.Log.Info("roster imported",
		zap.String("roster", roster),
		zap.Int("rows", len(rows)),
	)

	data := h.baseData(ctx, r)
	data.Roster = roster
	data.RosterLabel = rosterLabel(roster)
	data.ShowSummary = true
	data.Imported = len(rows)
	if unassignedInterns, unassignedLeads, err := h.Service.Unassigned(); err == nil {
		data.UnassignedInterns = len(unassignedInterns)
		data.UnassignedLeads = len(unassignedLeads)
		data.Assigned = data.Imported
		if roster == RosterInterns {
			data.Assigned = len(rows) - len(unassignedInterns)
		}
	}
	templates.Render(w, r, "upload_rosters", data)
}
