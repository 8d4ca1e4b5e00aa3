// internal/app/features/authapi/authapi.go
//
// Session endpoints for API clients: current-session lookup, email
// sign-in, and sign-out. get-session deliberately returns a tagged
// status instead of the data envelope so clients branch on one field
// without inspecting HTTP codes.
package authapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userstore "github.com/meridian-compliance/meridian/internal/app/store/users"
	"github.com/meridian-compliance/meridian/internal/app/system/auth"
	"github.com/meridian-compliance/meridian/internal/app/system/authutil"
	"github.com/meridian-compliance/meridian/internal/app/system/jsonutil"
	"github.com/meridian-compliance/meridian/internal/app/system/normalize"
	"github.com/meridian-compliance/meridian/internal/app/system/validate"
	"github.com/meridian-compliance/meridian/internal/domain/models"
)

// Handler provides the auth API.
type Handler struct {
	db     *mongo.Database
	sm     *auth.SessionManager
	logger *zap.Logger
}

// NewHandler creates a new auth API Handler.
func NewHandler(db *mongo.Database, sm *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{db: db, sm: sm, logger: logger}
}

// Routes returns a chi.Router with auth API routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/get-session", h.GetSession)
	r.Post("/sign-in/email", h.SignInEmail)
	r.Post("/sign-out", h.SignOut)
	return r
}

// sessionUser is the wire shape of the signed-in user.
type sessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// sessionResponse is the tagged union the session endpoint returns.
// Status is "authenticated" or "anonymous"; User is present only when
// authenticated.
type sessionResponse struct {
	Status string       `json:"status"`
	User   *sessionUser `json:"user,omitempty"`
}

// GetSession reports the current session state.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	resp := sessionResponse{Status: "anonymous"}
	if u, ok := auth.CurrentUser(r); ok {
		resp.Status = "authenticated"
		resp.User = &sessionUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(resp)
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInEmail signs a user in with email and password. Failures are
// reported uniformly so callers cannot probe which emails exist.
func (h *Handler) SignInEmail(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.BadRequest(w, "invalid request body")
		return
	}

	if res := validate.Email(req.Email); !res.OK {
		jsonutil.ValidationFailed(w, map[string]string{"email": res.Message})
		return
	}
	if res := validate.Required(req.Password, "password"); !res.OK {
		jsonutil.ValidationFailed(w, map[string]string{"password": res.Message})
		return
	}

	user, err := userstore.New(h.db).GetByEmail(r.Context(), normalize.Email(req.Email))
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		h.logger.Error("failed to look up user", zap.Error(err))
		jsonutil.InternalError(w, "sign-in failed")
		return
	}
	if user == nil || user.IsBanned() || user.PasswordHash == nil ||
		!authutil.CheckPassword(req.Password, *user.PasswordHash) {
		jsonutil.Unauthorized(w, "invalid email or password")
		return
	}

	token, err := auth.GenerateSessionToken()
	if err != nil {
		h.logger.Error("failed to generate session token", zap.Error(err))
		jsonutil.InternalError(w, "sign-in failed")
		return
	}
	if err := h.sm.CreateSession(w, r, user.ID, user.Role, token); err != nil {
		h.logger.Error("failed to create session", zap.Error(err))
		jsonutil.InternalError(w, "sign-in failed")
		return
	}

	h.logger.Info("user signed in",
		zap.String("user_id", user.ID.Hex()),
		zap.String("method", models.AuthMethodPassword))
	jsonutil.Success(w, sessionUser{
		ID:    user.ID.Hex(),
		Name:  user.FullName,
		Email: user.Email,
		Role:  user.Role,
	})
}

// SignOut destroys the current session. Always succeeds, signed in or not.
func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	h.sm.DestroySession(w, r)
	jsonutil.Success(w, map[string]bool{"signedOut": true})
}
