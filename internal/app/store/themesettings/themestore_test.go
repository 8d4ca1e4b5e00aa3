package themestore

import (
	"testing"

	"github.com/meridian-compliance/meridian/internal/domain/models"
	"github.com/meridian-compliance/meridian/internal/testutil"
)

func TestStore_Get_Defaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	theme, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if theme.PrimaryColor != models.DefaultPrimaryColor {
		t.Errorf("PrimaryColor = %q, want default", theme.PrimaryColor)
	}
	if theme.SecondaryColor != models.DefaultSecondaryColor {
		t.Errorf("SecondaryColor = %q, want default", theme.SecondaryColor)
	}
	if theme.AccentColor != models.DefaultAccentColor {
		t.Errorf("AccentColor = %q, want default", theme.AccentColor)
	}
}

func TestStore_Get_PartialDocumentFillsDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Save(ctx, models.ThemeSettings{PrimaryColor: "#112233"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	theme, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if theme.PrimaryColor != "#112233" {
		t.Errorf("PrimaryColor = %q, want the saved value", theme.PrimaryColor)
	}
	// Unset colors fall back per-color, not document-wide
	if theme.SecondaryColor != models.DefaultSecondaryColor {
		t.Errorf("SecondaryColor = %q, want default", theme.SecondaryColor)
	}
}

func TestStore_SaveAndExists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	exists, err := store.Exists(ctx)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() = true on a fresh database")
	}

	err = store.Save(ctx, models.ThemeSettings{
		PrimaryColor:   "#000000",
		SecondaryColor: "#111111",
		AccentColor:    "#222222",
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	exists, err = store.Exists(ctx)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !exists {
		t.Error("Exists() = false after Save()")
	}

	theme, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if theme.AccentColor != "#222222" {
		t.Errorf("AccentColor = %q, want the saved value", theme.AccentColor)
	}
}
