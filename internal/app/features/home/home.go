// internal/app/features/home/home.go
package home

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
	blogstore "github.com/meridian-compliance/meridian/internal/app/store/blog"
	servicestore "github.com/meridian-compliance/meridian/internal/app/store/services"
	"github.com/meridian-compliance/meridian/internal/app/system/viewdata"
	"github.com/meridian-compliance/meridian/internal/domain/models"
)

// Handler provides home page handlers.
type Handler struct {
	db     *mongo.Database
	logger *zap.Logger
	loader *loader.Loader
}

// NewHandler creates a new home Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
		loader: loader.New(db, logger),
	}
}

// HomeVM is the view model for the home page.
type HomeVM struct {
	viewdata.BaseVM
	Meta          meta.Metadata
	View          defaults.HomeView
	Services      []models.Service
	FeaturedPosts []models.BlogPost
	JSONLD        template.HTML
}

// Routes returns a chi.Router with home routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	return r
}

// Index renders the home page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	data := h.loader.Load(r.Context(), models.PageKeyHome)

	vm := HomeVM{
		BaseVM: viewdata.New(r),
		Meta:   meta.ForPage(models.PageKeyHome, data.SEO),
		View:   defaults.Home(data.Settings),
	}
	vm.Title = vm.Meta.Title

	services, err := servicestore.New(h.db).ListActive(r.Context())
	if err != nil {
		h.logger.Warn("failed to load services for home", zap.Error(err))
	}
	vm.Services = services

	posts, err := blogstore.New(h.db).Featured(r.Context(), 3)
	if err != nil {
		h.logger.Warn("failed to load featured posts for home", zap.Error(err))
	}
	vm.FeaturedPosts = posts

	company := viewdata.GetCompanySettings(r.Context(), h.db)
	vm.JSONLD = schemaorg.Render(schemaorg.Organization(company, vm.LogoURL))

	// Content is editable from the dashboard; never serve a stale copy.
	w.Header().Set("Cache-Control", "no-store")
	templates.Render(w, r, "home/index", vm)
}
