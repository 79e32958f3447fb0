// internal/app/system/assignment/service_test.go
package assignment_test

import (
	"errors"
	"testing"

	rosterstore "github.com/coderelay/internhub/internal/app/store/rosters"
	statusstore "github.com/coderelay/internhub/internal/app/store/statuses"
	"github.com/coderelay/internhub/internal/app/system/assignment"
	"github.com/coderelay/internhub/internal/app/system/status"
	"github.com/coderelay/internhub/internal/domain/models"
	"github.com/coderelay/internhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newService(t *testing.T, db *mongo.Database) *assignment.Service {
	t.Helper()
	return assignment.New(rosterstore.New(db), statusstore.New(db), 1, zap.NewNop())
}

func TestService_EmptyUntilReload(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newService(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if svc.Loaded() {
		t.Error("service loaded before Reload")
	}
	if _, err := svc.LeadFor(ctx, "lead@acme.test"); !errors.Is(err, assignment.ErrNoRoster) {
		t.Errorf("LeadFor: err = %v, want ErrNoRoster", err)
	}
	if _, err := svc.OverviewFor(ctx); !errors.Is(err, assignment.ErrNoRoster) {
		t.Errorf("OverviewFor: err = %v, want ErrNoRoster", err)
	}
}

func TestService_LeadFor(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	svc := newService(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	leads := []models.TechLead{testutil.TechLead("lead@acme.test", "Lena Lead", "acme")}
	fx.SeedRosters(ctx, testutil.Interns(12, "acme"), leads)
	if err := svc.Reload(ctx); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	view, err := svc.LeadFor(ctx, "LEAD@ACME.TEST")
	if err != nil {
		t.Fatalf("LeadFor failed: %v", err)
	}
	if view.Lead.FullName != "Lena Lead" {
		t.Errorf("Lead: got %q", view.Lead.FullName)
	}
	if len(view.Groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(view.Groups))
	}
	if view.Groups[2].Number != 3 || len(view.Groups[2].Interns) != 2 {
		t.Errorf("third group: number %d size %d, want 3 and 2",
			view.Groups[2].Number, len(view.Groups[2].Interns))
	}
	if view.Total != 12 || view.Active != 12 || view.Inactive != 0 {
		t.Errorf("totals: total %d active %d inactive %d", view.Total, view.Active, view.Inactive)
	}
}

func TestService_LeadFor_Unknown(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	svc := newService(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	leads := []models.TechLead{testutil.TechLead("lead@acme.test", "Lena Lead", "acme")}
	fx.SeedRosters(ctx, testutil.Interns(3, "acme"), leads)
	if err := svc.Reload(ctx); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	if _, err := svc.LeadFor(ctx, "stranger@acme.test"); !errors.Is(err, assignment.ErrLeadNotFound) {
		t.Errorf("err = %v, want ErrLeadNotFound", err)
	}
}

func TestService_SetStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	svc := newService(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	leads := []models.TechLead{testutil.TechLead("lead@acme.test", "Lena Lead", "acme")}
	fx.SeedRosters(ctx, testutil.Interns(3, "acme"), leads)
	if err := svc.Reload(ctx); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	if err := svc.SetStatus(ctx, "intern00@acme.test", "Inactive"); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	view, err := svc.LeadFor(ctx, "lead@acme.test")
	if err != nil {
		t.Fatalf("LeadFor failed: %v", err)
	}
	if view.Active != 2 || view.Inactive != 1 {
		t.Errorf("after toggle: active %d inactive %d, want 2 and 1", view.Active, view.Inactive)
	}
	if got := view.Groups[0].Interns[0].Status; got != status.Inactive {
		t.Errorf("intern00 status = %q, want %q", got, status.Inactive)
	}
}

func TestService_SetStatus_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	svc := newService(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	leads := []models.TechLead{testutil.TechLead("lead@acme.test", "Lena Lead", "acme")}
	fx.SeedRosters(ctx, testutil.Interns(3, "acme"), leads)
	if err := svc.Reload(ctx); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	if err := svc.SetStatus(ctx, "intern00@acme.test", "paused"); !errors.Is(err, assignment.ErrInvalidStatus) {
		t.Errorf("invalid status: err = %v, want ErrInvalidStatus", err)
	}
	if err := svc.SetStatus(ctx, "ghost@acme.test", status.Inactive); !errors.Is(err, assignment.ErrInternNotFound) {
		t.Errorf("unknown intern: err = %v, want ErrInternNotFound", err)
	}
}

func TestService_StatusSurvivesReload(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	svc := newService(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	leads := []models.TechLead{testutil.TechLead("lead@acme.test", "Lena Lead", "acme")}
	fx.SeedRosters(ctx, testutil.Interns(3, "acme"), leads)
	if err := svc.Reload(ctx); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if err := svc.SetStatus(ctx, "intern01@acme.test", status.Inactive); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	// Re-upload the same roster; the toggle must still apply.
	fx.SeedRosters(ctx, testutil.Interns(3, "acme"), leads)
	if err := svc.Reload(ctx); err != nil {
		t.Fatalf("second Reload failed: %v", err)
	}

	view, err := svc.LeadFor(ctx, "lead@acme.test")
	if err != nil {
		t.Fatalf("LeadFor failed: %v", err)
	}
	if view.Inactive != 1 {
		t.Errorf("inactive count after reload = %d, want 1", view.Inactive)
	}
}

func TestService_OverviewFor(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	svc := newService(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// 27 acme interns, one acme lead (capacity 25): 2 leftovers go to
	// the idle globex lead.
	leads := []models.TechLead{
		testutil.TechLead("lead1@acme.test", "Lead One", "acme"),
		testutil.TechLead("lead2@globex.test", "Lead Two", "globex"),
	}
	fx.SeedRosters(ctx, testutil.Interns(27, "acme"), leads)
	if err := svc.Reload(ctx); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if err := svc.SetStatus(ctx, "intern05@acme.test", status.Inactive); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	ov, err := svc.OverviewFor(ctx)
	if err != nil {
		t.Fatalf("OverviewFor failed: %v", err)
	}
	if ov.TotalInterns != 27 || ov.TotalLeads != 2 {
		t.Errorf("totals: interns %d leads %d, want 27 and 2", ov.TotalInterns, ov.TotalLeads)
	}
	if ov.Assigned != 27 || ov.UnassignedInterns != 0 {
		t.Errorf("assigned %d unassigned %d, want 27 and 0", ov.Assigned, ov.UnassignedInterns)
	}
	if ov.Active != 26 || ov.Inactive != 1 {
		t.Errorf("active %d inactive %d, want 26 and 1", ov.Active, ov.Inactive)
	}
	if len(ov.Leads) != 2 {
		t.Fatalf("got %d lead summaries, want 2", len(ov.Leads))
	}
	if ov.Leads[0].Interns != 25 {
		t.Errorf("lead1 interns = %d, want 25", ov.Leads[0].Interns)
	}
	if ov.Leads[1].Interns != 2 {
		t.Errorf("lead2 interns = %d, want 2", ov.Leads[1].Interns)
	}
	if ov.RunID == "" {
		t.Error("RunID empty")
	}
}

func TestService_Unassigned(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	svc := newService(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// 30 interns, one lead: 5 interns stay unassigned. A second roster
	// with an idle lead is covered by the overview test.
	leads := []models.TechLead{testutil.TechLead("lead@acme.test", "Lena Lead", "acme")}
	fx.SeedRosters(ctx, testutil.Interns(30, "acme"), leads)
	if err := svc.Reload(ctx); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	interns, idleLeads, err := svc.Unassigned()
	if err != nil {
		t.Fatalf("Unassigned failed: %v", err)
	}
	if len(interns) != 5 {
		t.Errorf("unassigned interns = %d, want 5", len(interns))
	}
	if len(idleLeads) != 0 {
		t.Errorf("unassigned leads = %d, want 0", len(idleLeads))
	}
}
