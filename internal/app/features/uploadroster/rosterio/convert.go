// internal/app/features/uploadroster/rosterio/convert.go
package rosterio

import "github.com/coderelay/internhub/internal/domain/models"

// Interns converts parsed rows into intern records, preserving file
// order.
func Interns(rows []Row) []models.Intern {
	out := make([]models.Intern, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.Intern{
			Email:         r.Email,
			FullName:      r.FullName,
			ContactNumber: r.ContactNumber,
			Affiliation:   r.Affiliation,
			Gender:        r.Gender,
		})
	}
	return out
}

// TechLeads converts parsed rows into tech-lead records, preserving file
// order.
func TechLeads(rows []Row) []models.TechLead {
	out := make([]models.TechLead, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.TechLead{
			Email:         r.Email,
			FullName:      r.FullName,
			ContactNumber: r.ContactNumber,
			Affiliation:   r.Affiliation,
			Gender:        r.Gender,
		})
	}
	return out
}
