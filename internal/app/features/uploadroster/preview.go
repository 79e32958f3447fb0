// internal/app/features/uploadroster/preview.go
package uploadroster

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coderelay/internhub/internal/app/features/uploadroster/rosterio"
	"github.com/coderelay/internhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Preview handles POST /upload/preview: parse the uploaded file and show
// what would be imported. Nothing is written yet.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch())
	defer cancel()

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		data := h.baseData(ctx, r)
		data.Error = "The upload could not be read. The file may be too large."
		templates.Render(w, r, "upload_rosters", data)
		return
	}

	roster := r.PostFormValue("roster")
	if roster != RosterInterns && roster != RosterTechLeads {
		data := h.baseData(ctx, r)
		data.Error = "Unknown roster type."
		templates.Render(w, r, "upload_rosters", data)
		return
	}

	data := h.baseData(ctx, r)
	data.Roster = roster
	data.RosterLabel = rosterLabel(roster)

	file, header, err := r.FormFile("file")
	if err != nil {
		data.Error = "Choose a roster file to upload."
		templates.Render(w, r, "upload_rosters", data)
		return
	}
	defer file.Close()

	if !rosterio.SupportedExt(header.Filename) {
		data.Error = "Only .csv and .xlsx roster files are supported."
		templates.Render(w, r, "upload_rosters", data)
		return
	}

	result, err := rosterio.Parse(file, header.Filename)
	switch {
	case errors.Is(err, rosterio.ErrTooManyRows):
		data.Error = "The file has too many rows. Split it into smaller uploads."
		templates.Render(w, r, "upload_rosters", data)
		return
	case err != nil:
		h.Log.Warn("uploadroster: parse failed",
			zap.String("file", header.Filename), zap.Error(err))
		data.Error = "The file could not be parsed. Check that it is a valid CSV or XLSX roster."
		templates.Render(w, r, "upload_rosters", data)
		return
	}

	if result.HasErrors() {
		data.RowErrors = result.Errors
		templates.Render(w, r, "upload_rosters", data)
		return
	}
	if len(result.Rows) == 0 {
		data.Error = "The file contains no roster rows."
		templates.Render(w, r, "upload_rosters", data)
		return
	}

	payload, err := json.Marshal(result.Rows)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "uploadroster: encoding preview failed", err,
			"Could not prepare the preview. Please try again.", "/upload")
		return
	}

	data.ShowPreview = true
	data.PreviewRows = result.Rows
	data.PreviewJSON = string(payload)
	templates.Render(w, r, "upload_rosters", data)
}
