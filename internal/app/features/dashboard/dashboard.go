// internal/app/features/dashboard/dashboard.go
//
// Admin dashboard: server-rendered, CSRF-protected editors over the
// site's content documents. Every editor follows the same round trip:
// fetch-or-default, render form, validate on submit, re-render with the
// submitted values on failure, redirect with ?success=1 on success.
package dashboard

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	errorsfeature "github.com/meridian-compliance/meridian/internal/app/features/errors"
	blogstore "github.com/meridian-compliance/meridian/internal/app/store/blog"
	servicestore "github.com/meridian-compliance/meridian/internal/app/store/services"
	"github.com/meridian-compliance/meridian/internal/app/system/auth"
	"github.com/meridian-compliance/meridian/internal/app/system/viewdata"
	"github.com/meridian-compliance/meridian/internal/domain/models"
)

// Handler provides dashboard handlers.
type Handler struct {
	db          *mongo.Database
	fileStorage storage.Store
	errLog      *errorsfeature.ErrorLogger
	logger      *zap.Logger
}

// NewHandler creates a new dashboard Handler.
func NewHandler(
	db *mongo.Database,
	fileStorage storage.Store,
	errLog *errorsfeature.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		db:          db,
		fileStorage: fileStorage,
		errLog:      errLog,
		logger:      logger,
	}
}

// Routes returns a chi.Router with dashboard routes mounted. All routes
// require the admin role.
func Routes(h *Handler, sm *auth.SessionManager) http.Handler {
	r := chi.NewRouter()
	r.Use(sm.RequireRole(models.RoleAdmin))

	r.Get("/", h.Overview)

	r.Get("/pages/{key}", h.ShowPageForm)
	r.Post("/pages/{key}", h.SavePage)

	r.Get("/seo/{key}", h.ShowSEOForm)
	r.Post("/seo/{key}", h.SaveSEO)

	r.Get("/services", h.ListServices)
	r.Get("/services/new", h.NewServiceForm)
	r.Post("/services/new", h.CreateService)
	r.Get("/services/{id}/edit", h.EditServiceForm)
	r.Post("/services/{id}/edit", h.UpdateService)
	r.Post("/services/{id}/delete", h.DeleteService)

	r.Get("/blog", h.ListPosts)
	r.Get("/blog/new", h.NewPostForm)
	r.Post("/blog/new", h.CreatePost)
	r.Get("/blog/{id}/edit", h.EditPostForm)
	r.Post("/blog/{id}/edit", h.UpdatePost)
	r.Post("/blog/{id}/delete", h.DeletePost)

	r.Get("/company", h.ShowCompanyForm)
	r.Post("/company", h.SaveCompany)

	r.Get("/theme", h.ShowThemeForm)
	r.Post("/theme", h.SaveTheme)

	r.Get("/email", h.ShowEmailForm)
	r.Post("/email", h.SaveEmail)
	r.Post("/email/test", h.SendTestEmail)

	return r
}

// OverviewVM is the view model for the dashboard landing page.
type OverviewVM struct {
	viewdata.BaseVM
	ServiceCount int64
	PostCount    int64
	PageKeys     []string
}

// Overview shows the dashboard landing page with entry points to every
// editor.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	vm := OverviewVM{
		BaseVM:   viewdata.New(r),
		PageKeys: models.AllPageKeys(),
	}
	vm.Title = "Dashboard"

	if _, total, err := servicestore.New(h.db).List(r.Context(), servicestore.ListOptions{Limit: 1}); err == nil {
		vm.ServiceCount = total
	}
	if _, total, err := blogstore.New(h.db).List(r.Context(), blogstore.ListOptions{Limit: 1}); err == nil {
		vm.PostCount = total
	}

	templates.Render(w, r, "dashboard/overview", vm)
}
