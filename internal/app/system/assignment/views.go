// internal/app/system/assignment/views.go
package assignment

import (
	"context"

	"github.com/coderelay/internhub/internal/app/system/normalize"
	"github.com/coderelay/internhub/internal/app/system/status"
	"github.com/coderelay/internhub/internal/domain/models"
)

// InternVM is an intern with their resolved status.
type InternVM struct {
	models.Intern
	Status string
}

// Active reports whether the intern's resolved status is active.
func (vm InternVM) Active() bool {
	return vm.Status == status.Active
}

// GroupVM is one group on a lead's dashboard. Number is 1-based.
type GroupVM struct {
	Number   int
	Interns  []InternVM
	Active   int
	Inactive int
}

// LeadView is everything a tech lead's dashboard shows.
type LeadView struct {
	Lead     models.TechLead
	Groups   []GroupVM
	Total    int
	Active   int
	Inactive int
}

// LeadSummary is one row of the overview table.
type LeadSummary struct {
	Lead     models.TechLead
	Groups   int
	Interns  int
	Active   int
	Inactive int
}

// Overview is the aggregate picture for the landing dashboard.
type Overview struct {
	RunID string

	TotalInterns int
	TotalLeads   int

	Assigned          int
	UnassignedInterns int
	UnassignedLeads   int

	Active   int
	Inactive int

	Leads []LeadSummary
}

// LeadFor resolves the dashboard view for the tech lead with the given
// email. The email is matched case-insensitively. Statuses come from the
// status store; interns without a document are active.
func (s *Service) LeadFor(ctx context.Context, email string) (LeadView, error) {
	res, err := s.current()
	if err != nil {
		return LeadView{}, err
	}

	key := normalize.Email(email)
	var lead models.TechLead
	found := false
	for _, l := range res.Leads {
		if normalize.Email(l.Email) == key {
			lead = l
			found = true
			break
		}
	}
	if !found {
		return LeadView{}, ErrLeadNotFound
	}

	persisted, err := s.statuses.LoadAll(ctx)
	if err != nil {
		return LeadView{}, err
	}

	view := LeadView{Lead: lead}
	for i, g := range res.ByLead[key] {
		gvm := GroupVM{Number: i + 1}
		for _, in := range g.Interns {
			vm := resolveStatus(in, persisted)
			gvm.Interns = append(gvm.Interns, vm)
			if vm.Active() {
				gvm.Active++
			} else {
				gvm.Inactive++
			}
		}
		view.Groups = append(view.Groups, gvm)
		view.Total += len(gvm.Interns)
		view.Active += gvm.Active
		view.Inactive += gvm.Inactive
	}
	return view, nil
}

// OverviewFor builds the aggregate dashboard: roster totals, assignment
// counts, active/inactive split, and a per-lead summary in roster order.
func (s *Service) OverviewFor(ctx context.Context) (Overview, error) {
	res, err := s.current()
	if err != nil {
		return Overview{}, err
	}

	persisted, err := s.statuses.LoadAll(ctx)
	if err != nil {
		return Overview{}, err
	}

	ov := Overview{
		RunID:             res.RunID.String(),
		TotalLeads:        len(res.Leads),
		UnassignedInterns: len(res.UnassignedInterns),
		UnassignedLeads:   len(res.UnassignedLeads),
	}
	for _, l := range res.Leads {
		sum := LeadSummary{Lead: l}
		for _, g := range res.ByLead[normalize.Email(l.Email)] {
			sum.Groups++
			sum.Interns += len(g.Interns)
			for _, in := range g.Interns {
				if resolveStatus(in, persisted).Active() {
					sum.Active++
				} else {
					sum.Inactive++
				}
			}
		}
		ov.Leads = append(ov.Leads, sum)
		ov.Assigned += sum.Interns
		ov.Active += sum.Active
		ov.Inactive += sum.Inactive
	}
	// Unassigned interns still count toward the roster total and the
	// status split.
	for _, in := range res.UnassignedInterns {
		if resolveStatus(in, persisted).Active() {
			ov.Active++
		} else {
			ov.Inactive++
		}
	}
	ov.TotalInterns = ov.Assigned + ov.UnassignedInterns
	return ov, nil
}

func resolveStatus(in models.Intern, persisted map[string]string) InternVM {
	vm := InternVM{Intern: in, Status: status.Default}
	if v, ok := persisted[normalize.Email(in.Email)]; ok && status.IsValid(v) {
		vm.Status = v
	}
	return vm
}
