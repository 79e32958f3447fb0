// internal/app/store/settings/settingsstore_test.go
package settingsstore_test

import (
	"testing"

	settingsstore "github.com/coderelay/internhub/internal/app/store/settings"
	"github.com/coderelay/internhub/internal/domain/models"
	"github.com/coderelay/internhub/internal/testutil"
)

func TestStore_Get_NoSettings(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := settingsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	settings, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if settings.SiteName != models.DefaultSiteName {
		t.Errorf("SiteName: got %q, want %q", settings.SiteName, models.DefaultSiteName)
	}
	if settings.FooterHTML != "" {
		t.Errorf("FooterHTML: got %q, want empty", settings.FooterHTML)
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := settingsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.Save(ctx, models.SiteSettings{
		SiteName:   "Summer Cohort",
		FooterHTML: "<p>Program office</p>",
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	settings, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if settings.SiteName != "Summer Cohort" {
		t.Errorf("SiteName: got %q, want %q", settings.SiteName, "Summer Cohort")
	}
	if settings.FooterHTML != "<p>Program office</p>" {
		t.Errorf("FooterHTML: got %q", settings.FooterHTML)
	}
	if settings.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not stamped")
	}
}

func TestStore_Save_Overwrites(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := settingsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Save(ctx, models.SiteSettings{SiteName: "First"}); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if err := store.Save(ctx, models.SiteSettings{SiteName: "Second"}); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	settings, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if settings.SiteName != "Second" {
		t.Errorf("SiteName: got %q, want %q", settings.SiteName, "Second")
	}
}
