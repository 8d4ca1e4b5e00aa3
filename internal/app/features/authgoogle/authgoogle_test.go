package authgoogle

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	errorsfeature "github.com/meridian-compliance/meridian/internal/app/features/errors"
	"github.com/meridian-compliance/meridian/internal/app/system/auth"
	"github.com/meridian-compliance/meridian/internal/testutil"
)

func newTestHandler(t *testing.T) (*Handler, http.Handler) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	sm, err := auth.NewSessionManager("this-is-a-32-character-long-key!", "", "", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager() error = %v", err)
	}
	h := NewHandler(db, sm, errorsfeature.NewErrorLogger(zap.NewNop()),
		"client-id", "client-secret", "http://localhost:8080", zap.NewNop())
	return h, Routes(h)
}

func TestStartAuth_RedirectsToGoogleWithState(t *testing.T) {
	h, router := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status = %d, want 307", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if !strings.Contains(loc, "accounts.google.com") {
		t.Errorf("Location = %q, want Google auth URL", loc)
	}
	if !strings.Contains(loc, "state=") {
		t.Error("auth URL missing state parameter")
	}

	// The issued state must be stored and verifiable exactly once
	u, err := req.URL.Parse(loc)
	if err != nil {
		t.Fatalf("parse redirect: %v", err)
	}
	state := u.Query().Get("state")

	ctx, cancel := testutil.TestContext()
	defer cancel()
	if !h.oauthStateStore.Verify(ctx, state) {
		t.Error("issued state not verifiable")
	}
	if h.oauthStateStore.Verify(ctx, state) {
		t.Error("state verifiable twice, want single use")
	}
}

func TestCallback_InvalidStateRedirectsToLogin(t *testing.T) {
	_, router := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/callback?state=bogus&code=abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "error=oauth_failed") {
		t.Errorf("Location = %q, want oauth_failed error", loc)
	}
}
