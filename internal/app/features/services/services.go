// internal/app/features/services/services.go
package services

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/meridian-compliance/meridian/internal/app/content/defaults"
	"github.com/meridian-compliance/meridian/internal/app/content/loader"
	"github.com/meridian-compliance/meridian/internal/app/content/meta"
	"github.com/meridian-compliance/meridian/internal/app/content/schemaorg"
	servicestore "github.com/meridian-compliance/meridian/internal/app/store/services"
	"github.com/meridian-compliance/meridian/internal/app/system/viewdata"
	"github.com/meridian-compliance/meridian/internal/domain/models"
)

// Handler provides public services page handlers.
type Handler struct {
	db     *mongo.Database
	logger *zap.Logger
	loader *loader.Loader
}

// NewHandler creates a new services Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
		loader: loader.New(db, logger),
	}
}

// ListVM is the view model for the services listing page.
type ListVM struct {
	viewdata.BaseVM
	Meta     meta.Metadata
	View     defaults.ServicesView
	Services []models.Service
	JSONLD   template.HTML
}

// DetailVM is the view model for one service page.
type DetailVM struct {
	viewdata.BaseVM
	Meta    meta.Metadata
	Service models.Service
	JSONLD  template.HTML
}

// Routes returns a chi.Router with services routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	r.Get("/{slug}", h.Detail)
	return r
}

// Index renders the services listing page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	data := h.loader.Load(r.Context(), models.PageKeyServices)

	vm := ListVM{
		BaseVM: viewdata.New(r),
		Meta:   meta.ForPage(models.PageKeyServices, data.SEO),
		View:   defaults.Services(data.Settings),
	}
	vm.Title = vm.Meta.Title

	active, err := servicestore.New(h.db).ListActive(r.Context())
	if err != nil {
		h.logger.Warn("failed to load services", zap.Error(err))
	}
	vm.Services = active

	vm.JSONLD = schemaorg.Render(
		schemaorg.ItemList(active),
		schemaorg.BreadcrumbList([]schemaorg.Crumb{
			{Name: "Home", Path: "/"},
			{Name: "Services", Path: "/services"},
		}),
	)

	w.Header().Set("Cache-Control", "no-store")
	templates.Render(w, r, "services/index", vm)
}

// Detail renders one service page, resolved by slug. Inactive or unknown
// slugs render the not-found view with a 404 status.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	svc, err := servicestore.New(h.db).GetBySlug(r.Context(), slug)
	if err != nil {
		h.logger.Error("failed to load service", zap.String("slug", slug), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if svc == nil || !svc.IsActive {
		h.notFound(w, r)
		return
	}

	vm := DetailVM{
		BaseVM:  viewdata.New(r),
		Meta:    meta.ForService(svc),
		Service: *svc,
	}
	vm.Title = vm.Meta.Title
	vm.JSONLD = schemaorg.Render(
		schemaorg.TechArticle(svc),
		schemaorg.BreadcrumbList(schemaorg.ServicesTrail(svc)),
	)

	w.Header().Set("Cache-Control", "no-store")
	templates.Render(w, r, "services/detail", vm)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	vm := viewdata.New(r)
	vm.Title = "Service Not Found"

	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "services/not_found", vm)
}
