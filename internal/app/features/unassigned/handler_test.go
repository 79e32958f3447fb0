// internal/app/features/unassigned/handler_test.go
package unassigned_test

import (
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/coderelay/internhub/internal/app/features/unassigned"
	rosterstore "github.com/coderelay/internhub/internal/app/store/rosters"
	statusstore "github.com/coderelay/internhub/internal/app/store/statuses"
	"github.com/coderelay/internhub/internal/app/system/assignment"
	"github.com/coderelay/internhub/internal/domain/models"
	"github.com/coderelay/internhub/internal/testutil"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	eng := templates.New(false)
	if err := eng.Boot(zap.NewNop()); err != nil {
		panic(err)
	}
	templates.UseEngine(eng, zap.NewNop())
	os.Exit(m.Run())
}

func setup(t *testing.T, seed bool) *unassigned.Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := assignment.New(rosterstore.New(db), statusstore.New(db), 1, zap.NewNop())
	if seed {
		fx := testutil.NewFixtures(t, db)
		ctx, cancel := testutil.TestContext()
		defer cancel()
		// 30 interns against one lead (capacity 25): 5 stay unassigned.
		techLeads := []models.TechLead{testutil.TechLead("lead@acme.test", "Lena Lead", "acme")}
		fx.SeedRosters(ctx, testutil.Interns(30, "acme"), techLeads)
		if err := svc.Reload(ctx); err != nil {
			t.Fatalf("Reload failed: %v", err)
		}
	}
	return unassigned.NewHandler(db, svc, zap.NewNop())
}

func TestPage_NoRoster(t *testing.T) {
	h := setup(t, false)

	req := testutil.NewRequest(http.MethodGet, "/unassigned")
	rec := testutil.NewRecorder()
	h.Page(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "No rosters have been uploaded yet")
}

func TestPage_Loaded(t *testing.T) {
	h := setup(t, true)

	req := testutil.NewRequest(http.MethodGet, "/unassigned")
	rec := testutil.NewRecorder()
	h.Page(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Interns without a group (5)")
	rec.AssertContains(t, "Every tech lead has at least one group.")
}

func TestInternsCSV(t *testing.T) {
	h := setup(t, true)

	req := testutil.NewRequest(http.MethodGet, "/unassigned/interns.csv")
	rec := testutil.NewRecorder()
	h.InternsCSV(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "Full Name,Email Address,Contact Number,Affiliation\n") {
		t.Errorf("missing header row: %q", body)
	}
	// Header plus 5 unassigned interns.
	if lines := strings.Count(strings.TrimSpace(body), "\n") + 1; lines != 6 {
		t.Errorf("got %d lines, want 6", lines)
	}
}

func TestTechLeadsCSV(t *testing.T) {
	// A lead with no shared affiliation still receives leftovers, so an
	// idle lead requires every intern to already be placed elsewhere.
	db := testutil.SetupTestDB(t)
	svc := assignment.New(rosterstore.New(db), statusstore.New(db), 1, zap.NewNop())
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	techLeads := []models.TechLead{
		testutil.TechLead("lead@acme.test", "Lena Lead", "acme"),
		testutil.TechLead("idle@globex.test", "Ida Idle", "globex"),
	}
	fx.SeedRosters(ctx, testutil.Interns(3, "acme"), techLeads)
	if err := svc.Reload(ctx); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	h := unassigned.NewHandler(db, svc, zap.NewNop())

	req := testutil.NewRequest(http.MethodGet, "/unassigned/techleads.csv")
	rec := testutil.NewRecorder()
	h.TechLeadsCSV(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "idle@globex.test")
}

func TestInternsCSV_NoRoster(t *testing.T) {
	h := setup(t, false)

	req := testutil.NewRequest(http.MethodGet, "/unassigned/interns.csv")
	rec := testutil.NewRecorder()
	h.InternsCSV(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusNotFound)
}
