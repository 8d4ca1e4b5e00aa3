package authutil

import (
	"strings"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "mySecurePassword", nil},
		{"valid with special chars", "P@ssw0rd!123", nil},
		{"valid with spaces", "my secret password", nil},
		{"exactly min", strings.Repeat("x", MinPasswordLength), nil},
		{"exactly max", strings.Repeat("x", MaxPasswordLength), nil},

		{"too short", "short", ErrPasswordTooShort},
		{"one under min", strings.Repeat("x", MinPasswordLength-1), ErrPasswordTooShort},
		{"empty", "", ErrPasswordTooShort},
		{"one over max", strings.Repeat("x", MaxPasswordLength+1), ErrPasswordTooLong},

		{"common password", "password", ErrPasswordCommon},
		{"common uppercase", "PASSWORD", ErrPasswordCommon},
		{"common 12345678", "12345678", ErrPasswordCommon},
		{"common mixed case", "ILoveYou", ErrPasswordCommon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidatePassword(tt.password); err != tt.wantErr {
				t.Errorf("ValidatePassword(%q) = %v, want %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestHashPassword(t *testing.T) {
	password := "mySecurePassword123"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "" || hash == password {
		t.Fatalf("bad hash %q", hash)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("hash does not look like bcrypt: %s", hash)
	}

	// Salted: same password must not produce the same hash twice.
	hash2, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() second call error = %v", err)
	}
	if hash == hash2 {
		t.Error("two hashes of the same password are identical")
	}
}

func TestCheckPassword(t *testing.T) {
	password := "mySecurePassword123"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{"correct password", password, hash, true},
		{"wrong password", "wrongPassword456", hash, false},
		{"empty password", "", hash, false},
		{"empty hash", password, "", false},
		{"invalid hash format", password, "not-a-valid-hash", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckPassword(tt.password, tt.hash); got != tt.want {
				t.Errorf("CheckPassword(%q, hash) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	passwords := []string{
		"simple123",
		"Complex!P@ssw0rd#123",
		"with spaces in it",
		"unicode: éàü pad",
	}

	for _, password := range passwords {
		hash, err := HashPassword(password)
		if err != nil {
			t.Fatalf("HashPassword(%q) error = %v", password, err)
		}
		if !CheckPassword(password, hash) {
			t.Errorf("CheckPassword failed to verify %q", password)
		}
		if CheckPassword(password+"x", hash) {
			t.Errorf("CheckPassword verified wrong password for %q", password)
		}
	}
}

func TestPasswordRules(t *testing.T) {
	rules := PasswordRules()
	if !strings.Contains(rules, "8") {
		t.Errorf("PasswordRules() should mention minimum length of 8: %q", rules)
	}
}
