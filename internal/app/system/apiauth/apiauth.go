// Package apiauth gates API routes with JSON envelope responses instead
// of the HTML redirects the page middleware produces. API clients always
// get {"success": false, "error": ...} with the matching status code.
package apiauth

import (
	"net/http"

	"github.com/meridian-compliance/meridian/internal/app/system/auth"
	"github.com/meridian-compliance/meridian/internal/app/system/jsonutil"
	"github.com/meridian-compliance/meridian/internal/domain/models"
)

// RequireAdmin ensures the request carries a signed-in admin.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := auth.CurrentUser(r)
		if !ok {
			jsonutil.Unauthorized(w, "authentication required")
			return
		}
		if u.Role != models.RoleAdmin {
			jsonutil.Forbidden(w, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn ensures the request carries any signed-in user.
func RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.CurrentUser(r); !ok {
			jsonutil.Unauthorized(w, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
