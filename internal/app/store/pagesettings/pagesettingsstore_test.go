package pagesettingsstore

import (
	"testing"

	"github.com/meridian-compliance/meridian/internal/domain/models"
	"github.com/meridian-compliance/meridian/internal/testutil"
)

func TestStore_GetByPageKey_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	settings, err := store.GetByPageKey(ctx, models.PageKeyHome)
	if err != nil {
		t.Fatalf("GetByPageKey() error = %v", err)
	}
	if settings != nil {
		t.Errorf("GetByPageKey() = %+v, want nil on a fresh database", settings)
	}
}

func TestStore_Upsert_RoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.Upsert(ctx, models.PageSettings{
		PageKey: models.PageKeyHome,
		Hero:    &models.HeroSection{Title: "Welcome"},
		Stats: []models.Stat{
			{Value: "10+", Label: "Years"},
		},
		CTA: &models.CTASection{
			Title:   "Go",
			Buttons: []models.CTAButton{{Text: "Start", Link: "/contact"}},
		},
	})
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	settings, err := store.GetByPageKey(ctx, models.PageKeyHome)
	if err != nil {
		t.Fatalf("GetByPageKey() error = %v", err)
	}
	if settings.Hero == nil || settings.Hero.Title != "Welcome" {
		t.Errorf("Hero = %+v", settings.Hero)
	}
	if len(settings.Stats) != 1 || settings.Stats[0].Value != "10+" {
		t.Errorf("Stats = %+v", settings.Stats)
	}
	if settings.CTA == nil || len(settings.CTA.Buttons) != 1 {
		t.Errorf("CTA = %+v", settings.CTA)
	}
}

func TestStore_Upsert_ReplacesSectionsWhole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.Upsert(ctx, models.PageSettings{
		PageKey: models.PageKeyAbout,
		Hero:    &models.HeroSection{Title: "First", Subtitle: "Sub"},
	})
	if err != nil {
		t.Fatalf("first Upsert() error = %v", err)
	}

	// Second save omits the subtitle: the section is written whole, so
	// the old subtitle does not survive (last writer wins).
	err = store.Upsert(ctx, models.PageSettings{
		PageKey: models.PageKeyAbout,
		Hero:    &models.HeroSection{Title: "Second"},
	})
	if err != nil {
		t.Fatalf("second Upsert() error = %v", err)
	}

	settings, err := store.GetByPageKey(ctx, models.PageKeyAbout)
	if err != nil {
		t.Fatalf("GetByPageKey() error = %v", err)
	}
	if settings.Hero.Title != "Second" {
		t.Errorf("Hero.Title = %q, want Second", settings.Hero.Title)
	}
	if settings.Hero.Subtitle != "" {
		t.Errorf("Hero.Subtitle = %q, want empty after whole-section replace", settings.Hero.Subtitle)
	}
}

func TestStore_Upsert_LegacyCTAFieldsSurvive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.Upsert(ctx, models.PageSettings{
		PageKey: models.PageKeyServices,
		CTA: &models.CTASection{
			Title:             "Legacy",
			PrimaryButtonText: "Old Button",
			PrimaryButtonLink: "/old",
		},
	})
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	settings, err := store.GetByPageKey(ctx, models.PageKeyServices)
	if err != nil {
		t.Fatalf("GetByPageKey() error = %v", err)
	}
	if settings.CTA.PrimaryButtonText != "Old Button" {
		t.Errorf("PrimaryButtonText = %q, legacy fields must round-trip", settings.CTA.PrimaryButtonText)
	}
}
