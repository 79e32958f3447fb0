// internal/app/features/uploadroster/types.go
package uploadroster

import (
	"github.com/coderelay/internhub/internal/app/features/uploadroster/rosterio"
	"github.com/coderelay/internhub/internal/app/system/viewdata"
)

// Roster type values accepted by the upload endpoints.
const (
	RosterInterns   = "interns"
	RosterTechLeads = "techleads"
)

// UploadData is the view model for the roster upload page. The same
// template renders the blank form, the parse-error state, the preview,
// and the post-confirm summary.
type UploadData struct {
	viewdata.BaseVM

	// Current roster sizes, shown above the forms.
	InternCount int64
	LeadCount   int64

	// Which roster the rest of the page refers to.
	Roster      string
	RosterLabel string

	// Form state
	Error     string
	RowErrors []rosterio.RowError

	// Preview mode: show parsed rows before confirm.
	ShowPreview bool
	PreviewRows []rosterio.Row
	PreviewJSON string // JSON-encoded rows carried in the confirm form

	// Summary mode: show results after confirm.
	ShowSummary       bool
	Imported          int
	Assigned          int
	UnassignedInterns int
	UnassignedLeads   int
}

// rosterLabel maps a roster type to its page wording.
func rosterLabel(roster string) string {
	if roster == RosterTechLeads {
		return "Tech Leads"
	}
	return "Interns"
}
