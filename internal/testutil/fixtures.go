// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"fmt"
	"testing"

	rosterstore "github.com/coderelay/internhub/internal/app/store/rosters"
	"github.com/coderelay/internhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// Intern builds an intern record without persisting it.
func Intern(email, fullName, affiliation string) models.Intern {
	return models.Intern{
		Email:         email,
		FullName:      fullName,
		ContactNumber: "555-0100",
		Affiliation:   affiliation,
	}
}

// TechLead builds a tech-lead record without persisting it.
func TechLead(email, fullName, affiliation string) models.TechLead {
	return models.TechLead{
		Email:         email,
		FullName:      fullName,
		ContactNumber: "555-0200",
		Affiliation:   affiliation,
	}
}

// Interns builds n interns for one affiliation with generated emails.
func Interns(n int, affiliation string) []models.Intern {
	out := make([]models.Intern, 0, n)
	for i := 0; i < n; i++ {
		email := fmt.Sprintf("intern%02d@%s.test", i, affiliation)
		out = append(out, Intern(email, fmt.Sprintf("Intern %02d", i), affiliation))
	}
	return out
}

// SeedRosters persists both rosters through the roster store.
func (f *Fixtures) SeedRosters(ctx context.Context, interns []models.Intern, leads []models.TechLead) {
	f.t.Helper()
	store := rosterstore.New(f.db)
	if err := store.ReplaceInterns(ctx, interns); err != nil {
		f.t.Fatalf("seed interns: %v", err)
	}
	if err := store.ReplaceLeads(ctx, leads); err != nil {
		f.t.Fatalf("seed tech leads: %v", err)
	}
}
