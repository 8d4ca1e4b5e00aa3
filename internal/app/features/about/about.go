// internal/app/features/about/about.go
package about

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
	"github.com/meridian-compliance/meridian/internal/app/system/viewdata"
	"github.com/meridian-compliance/meridian/internal/domain/models"
)

// Handler provides about page handlers.
type Handler struct {
	db     *mongo.Database
	logger *zap.Logger
	loader *loader.Loader
}

// NewHandler creates a new about Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
		loader: loader.New(db, logger),
	}
}

// AboutVM is the view model for the about page.
type AboutVM struct {
	viewdata.BaseVM
	Meta   meta.Metadata
	View   defaults.AboutView
	JSONLD template.HTML
}

// Routes returns a chi.Router with about routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	return r
}

// Index renders the about page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	data := h.loader.Load(r.Context(), models.PageKeyAbout)

	vm := AboutVM{
		BaseVM: viewdata.New(r),
		Meta:   meta.ForPage(models.PageKeyAbout, data.SEO),
		View:   defaults.About(data.Settings),
	}
	vm.Title = vm.Meta.Title

	company := viewdata.GetCompanySettings(r.Context(), h.db)
	vm.JSONLD = schemaorg.Render(
		schemaorg.Organization(company, vm.LogoURL),
		schemaorg.AboutPage(vm.Meta.Title, vm.Meta.Description),
	)

	w.Header().Set("Cache-Control", "no-store")
	templates.Render(w, r, "about/index", vm)
}
