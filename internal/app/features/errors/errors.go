// internal/app/features/errors/errors.go
//
// Error pages and request-scoped error logging shared by every feature.
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/meridian-compliance/meridian/internal/app/system/viewdata"
)

// ErrorLogger records handler failures with the request path and method
// attached, so log lines can be traced back to the endpoint that failed.
type ErrorLogger struct {
	logger *zap.Logger
}

// NewErrorLogger creates a new ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{logger: logger}
}

func requestFields(r *http.Request, err error) []zap.Field {
	return []zap.Field{
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	}
}

// Log records a handler failure for the given request.
func (e *ErrorLogger) Log(r *http.Request, msg string, err error) {
	e.logger.Error(msg, requestFields(r, err)...)
}

// LogWithFields records a handler failure with extra context fields.
func (e *ErrorLogger) LogWithFields(r *http.Request, msg string, err error, fields ...zap.Field) {
	e.logger.Error(msg, append(requestFields(r, err), fields...)...)
}

// Handler serves the themed error pages.
type Handler struct{}

// NewHandler creates a new error page Handler.
func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request, status int, title, tmpl string) {
	vm := viewdata.New(r)
	vm.Title = title

	w.WriteHeader(status)
	templates.Render(w, r, tmpl, vm)
}

// Forbidden renders the 403 page.
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusForbidden, "Access Denied", "errors/forbidden")
}

// Unauthorized renders the 401 page.
func (h *Handler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusUnauthorized, "Sign In Required", "errors/unauthorized")
}

// NotFound renders the 404 page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusNotFound, "Page Not Found", "errors/not_found")
}

// InternalError renders the 500 page.
func (h *Handler) InternalError(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusInternalServerError, "Something Went Wrong", "errors/internal")
}
