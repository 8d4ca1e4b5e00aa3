// internal/app/features/login/login.go
//
// Staff sign-in page for the dashboard. Email+password against the users
// collection, with an optional Google OAuth entry point when configured.
package login

import (
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	errorsfeature "github.com/meridian-compliance/meridian/internal/app/features/errors"
	userstore "github.com/meridian-compliance/meridian/internal/app/store/users"
	"github.com/meridian-compliance/meridian/internal/app/system/auth"
	"github.com/meridian-compliance/meridian/internal/app/system/authutil"
	"github.com/meridian-compliance/meridian/internal/app/system/normalize"
	"github.com/meridian-compliance/meridian/internal/app/system/viewdata"
)

// Handler provides login handlers.
type Handler struct {
	userStore     *userstore.Store
	sessionMgr    *auth.SessionManager
	errLog        *errorsfeature.ErrorLogger
	googleEnabled bool
	logger        *zap.Logger
}

// NewHandler creates a new login Handler. googleEnabled shows the Google
// sign-in button when the OAuth client is configured.
func NewHandler(
	db *mongo.Database,
	sessionMgr *auth.SessionManager,
	errLog *errorsfeature.ErrorLogger,
	googleEnabled bool,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		userStore:     userstore.New(db),
		sessionMgr:    sessionMgr,
		errLog:        errLog,
		googleEnabled: googleEnabled,
		logger:        logger,
	}
}

// Routes returns a chi.Router with login routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.showLogin)
	r.Post("/", h.handleLogin)
	return r
}

// LoginVM is the view model for the login page.
type LoginVM struct {
	viewdata.BaseVM
	Error         string
	Email         string
	ReturnURL     string
	GoogleEnabled bool
}

// showLogin displays the sign-in form. Error codes arriving by query
// string (from the OAuth callback) map to friendly messages.
func (h *Handler) showLogin(w http.ResponseWriter, r *http.Request) {
	errorMsg := ""
	switch code := r.URL.Query().Get("error"); code {
	case "account_disabled":
		errorMsg = "Account is disabled."
	case "not_registered":
		errorMsg = "That Google account is not registered here."
	case "oauth_failed":
		errorMsg = "Google sign-in failed. Please try again."
	case "":
	default:
		errorMsg = code
	}

	vm := LoginVM{
		BaseVM:        viewdata.New(r),
		Error:         errorMsg,
		ReturnURL:     query.Get(r, "return"),
		GoogleEnabled: h.googleEnabled,
	}
	vm.Title = "Sign In"

	templates.Render(w, r, "login/index", vm)
}

// handleLogin checks email+password and creates the session. Bad
// credentials get one generic message so emails cannot be probed.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse login form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	email := normalize.Email(r.FormValue("email"))
	password := r.FormValue("password")
	returnURL := r.FormValue("return")

	renderError := func(msg string) {
		vm := LoginVM{
			BaseVM:        viewdata.New(r),
			Error:         msg,
			Email:         email,
			ReturnURL:     returnURL,
			GoogleEnabled: h.googleEnabled,
		}
		vm.Title = "Sign In"
		templates.Render(w, r, "login/index", vm)
	}

	if email == "" || password == "" {
		renderError("Please enter your email and password.")
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		h.errLog.Log(r, "database error during login lookup", err)
		renderError("Service temporarily unavailable. Please try again.")
		return
	}
	if user == nil || user.PasswordHash == nil || !authutil.CheckPassword(password, *user.PasswordHash) {
		renderError("Invalid email or password.")
		return
	}
	if user.IsBanned() {
		renderError("Account is disabled.")
		return
	}

	token, err := auth.GenerateSessionToken()
	if err != nil {
		h.errLog.Log(r, "failed to generate session token", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if err := h.sessionMgr.CreateSession(w, r, user.ID, user.Role, token); err != nil {
		h.errLog.Log(r, "failed to create session", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("user signed in", zap.String("user_id", user.ID.Hex()))

	http.Redirect(w, r, urlutil.SafeReturn(returnURL, "", "/dashboard"), http.StatusSeeOther)
}
