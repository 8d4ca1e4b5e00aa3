package testutil

import (
	"context"
	"net/http"
)

// gorilla/csrf stores the per-request token under this context key.
// Seeding it lets handlers call csrf.Token without the middleware running.
const csrfTokenKey = "gorilla.csrf.Token"

// WithCSRFToken seeds a fixed CSRF token into the request context so that
// form-rendering handlers (anything going through viewdata.New) work in
// tests without the gorilla/csrf middleware.
func WithCSRFToken(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), csrfTokenKey, "test-csrf-token-12345"))
}

// NewAuthenticatedRequestWithCSRF builds a request carrying both a session
// user and a CSRF token, for exercising dashboard form handlers.
func NewAuthenticatedRequestWithCSRF(method, target string, user TestUser) *http.Request {
	return WithCSRFToken(NewAuthenticatedRequest(method, target, user))
}
