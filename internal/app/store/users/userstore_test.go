package userstore

import (
	"errors"
	"testing"

	"github.com/meridian-compliance/meridian/internal/domain/models"
	"github.com/meridian-compliance/meridian/internal/testutil"
)

func TestStore_Create_Normalizes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{
		FullName:   "  Dana  Li  ",
		Email:      " Dana@Example.COM ",
		AuthMethod: "password",
		Role:       models.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if created.Email != "dana@example.com" {
		t.Errorf("Email = %q, want lowercased and trimmed", created.Email)
	}
	if created.FullName != "Dana Li" {
		t.Errorf("FullName = %q, want collapsed whitespace", created.FullName)
	}
	if created.Status != models.StatusActive {
		t.Errorf("Status = %q, want default active", created.Status)
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.User{
		FullName: "First", Email: "dup@example.com", Role: models.RoleUser,
	})
	if err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	// Same address with different casing hits the email_ci unique index
	_, err = store.Create(ctx, models.User{
		FullName: "Second", Email: "DUP@example.com", Role: models.RoleUser,
	})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("Create(duplicate) error = %v, want ErrDuplicateEmail", err)
	}
}

func TestStore_Create_InvalidRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.User{
		FullName: "Bad Role", Email: "role@example.com", Role: "superuser",
	})
	if err == nil {
		t.Error("Create() with unknown role should fail")
	}
}

func TestStore_GetByEmail_CaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.User{
		FullName: "Casey", Email: "casey@example.com", Role: models.RoleUser,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := store.GetByEmail(ctx, "CASEY@Example.Com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if got.FullName != "Casey" {
		t.Errorf("GetByEmail() = %+v", got)
	}
}

func TestStore_Update_PartialFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{
		FullName: "Original", Email: "update@example.com", Role: models.RoleUser,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	name := "Renamed"
	if err := store.Update(ctx, created.ID, UpdateInput{FullName: &name}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.FullName != "Renamed" {
		t.Errorf("FullName = %q, want Renamed", got.FullName)
	}
	// Untouched fields stay
	if got.Email != "update@example.com" || got.Role != models.RoleUser {
		t.Errorf("unrelated fields changed: %+v", got)
	}
}

func TestStore_UpdatePassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{
		FullName: "Pw", Email: "pw@example.com", Role: models.RoleUser,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := store.UpdatePassword(ctx, created.ID, "new-hash"); err != nil {
		t.Fatalf("UpdatePassword() error = %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.PasswordHash == nil || *got.PasswordHash != "new-hash" {
		t.Errorf("PasswordHash = %v, want new-hash", got.PasswordHash)
	}
}

func TestStore_CountActiveAdmins(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seed := []models.User{
		{FullName: "Admin A", Email: "a@example.com", Role: models.RoleAdmin},
		{FullName: "Admin B", Email: "b@example.com", Role: models.RoleAdmin, Status: models.StatusDisabled},
		{FullName: "User C", Email: "c@example.com", Role: models.RoleUser},
	}
	for _, u := range seed {
		if _, err := store.Create(ctx, u); err != nil {
			t.Fatalf("Create(%s) error = %v", u.Email, err)
		}
	}

	count, err := store.CountActiveAdmins(ctx)
	if err != nil {
		t.Fatalf("CountActiveAdmins() error = %v", err)
	}
	if count != 1 {
		t.Errorf("CountActiveAdmins() = %d, want 1", count)
	}
}

func TestStore_EnsureAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.EnsureAdmin(ctx, "Root Admin", "root@example.com", "hash")
	if err != nil {
		t.Fatalf("EnsureAdmin() error = %v", err)
	}
	if !created {
		t.Error("first EnsureAdmin() should create the account")
	}

	// Idempotent: second call is a no-op
	created, err = store.EnsureAdmin(ctx, "Root Admin", "root@example.com", "other-hash")
	if err != nil {
		t.Fatalf("second EnsureAdmin() error = %v", err)
	}
	if created {
		t.Error("second EnsureAdmin() should not create another account")
	}

	got, err := store.GetByEmail(ctx, "root@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if got.Role != models.RoleAdmin || got.Status != models.StatusActive {
		t.Errorf("seeded admin = %+v", got)
	}
	if got.PasswordHash == nil || *got.PasswordHash != "hash" {
		t.Error("second EnsureAdmin() must not overwrite the password")
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{
		FullName: "Gone", Email: "gone@example.com", Role: models.RoleUser,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	n, err := store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if n != 1 {
		t.Errorf("Delete() = %d, want 1", n)
	}

	exists, err := store.ExistsByEmail(ctx, "gone@example.com")
	if err != nil {
		t.Fatalf("ExistsByEmail() error = %v", err)
	}
	if exists {
		t.Error("user should be gone after Delete()")
	}
}
