// internal/app/system/allocate/validate.go
package allocate

import (
	"fmt"
	"strings"

	"github.com/coderelay/internhub/internal/app/system/normalize"
	"github.com/coderelay/internhub/internal/domain/models"
)

// ValidationError describes why a pair of rosters cannot be allocated:
// records missing an identifier or affiliation, or duplicate identifiers
// within one roster. The caller renders Problems to the user and refuses
// to build groups.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid rosters: %s", strings.Join(e.Problems, "; "))
}

func validate(interns []models.Intern, leads []models.TechLead) error {
	var problems []string

	seen := make(map[string]bool, len(interns))
	for i, in := range interns {
		email := normalize.Email(in.Email)
		switch {
		case email == "":
			problems = append(problems, fmt.Sprintf("intern %d (%s): missing email", i+1, in.FullName))
		case seen[email]:
			problems = append(problems, fmt.Sprintf("intern %d: duplicate email %s", i+1, email))
		default:
			seen[email] = true
		}
		if normalize.Affiliation(in.Affiliation) == "" {
			problems = append(problems, fmt.Sprintf("intern %d (%s): missing affiliation", i+1, in.FullName))
		}
	}

	seen = make(map[string]bool, len(leads))
	for i, l := range leads {
		email := normalize.Email(l.Email)
		switch {
		case email == "":
			problems = append(problems, fmt.Sprintf("tech lead %d (%s): missing email", i+1, l.FullName))
		case seen[email]:
			problems = append(problems, fmt.Sprintf("tech lead %d: duplicate email %s", i+1, email))
		default:
			seen[email] = true
		}
		if normalize.Affiliation(l.Affiliation) == "" {
			problems = append(problems, fmt.Sprintf("tech lead %d (%s): missing affiliation", i+1, l.FullName))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
