// internal/app/features/contentapi/contentapi.go
//
// JSON API over the per-page content documents: page_seo and
// page_settings. Reads are public (CORS-permissive) so the marketing
// site's preview tooling can fetch them; writes require an admin.
package contentapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	pagesettingsstore "github.com/meridian-compliance/meridian/internal/app/store/pagesettings"
	pageseostore "github.com/meridian-compliance/meridian/internal/app/store/pageseo"
	"github.com/meridian-compliance/meridian/internal/app/system/apiauth"
	"github.com/meridian-compliance/meridian/internal/app/system/apicors"
	"github.com/meridian-compliance/meridian/internal/app/system/jsonutil"
	"github.com/meridian-compliance/meridian/internal/domain/models"
)

// Handler provides the page content API.
type Handler struct {
	db     *mongo.Database
	logger *zap.Logger
}

// NewHandler creates a new content API Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{db: db, logger: logger}
}

// Routes returns a chi.Router with content API routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Route("/page-seo/{key}", func(r chi.Router) {
		r.With(apicors.Middleware()).Get("/", h.GetSEO)
		r.With(apiauth.RequireAdmin).Put("/", h.PutSEO)
	})
	r.Route("/page-settings/{key}", func(r chi.Router) {
		r.With(apicors.Middleware()).Get("/", h.GetSettings)
		r.With(apiauth.RequireAdmin).Put("/", h.PutSettings)
	})
	return r
}

// GetSEO returns the SEO document for a page key, or data:null when none
// has been saved yet.
func (h *Handler) GetSEO(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if !models.IsValidPageKey(key) {
		jsonutil.NotFound(w, "unknown page key")
		return
	}

	seo, err := pageseostore.New(h.db).GetByPageKey(r.Context(), key)
	if err != nil {
		h.logger.Error("failed to load page seo", zap.String("page_key", key), zap.Error(err))
		jsonutil.InternalError(w, "failed to load page seo")
		return
	}
	if seo == nil {
		jsonutil.SuccessNull(w)
		return
	}
	jsonutil.Success(w, seo)
}

// PutSEO upserts the SEO document for a page key.
func (h *Handler) PutSEO(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if !models.IsValidPageKey(key) {
		jsonutil.NotFound(w, "unknown page key")
		return
	}

	var seo models.PageSEO
	if err := jsonutil.Decode(r, &seo); err != nil {
		jsonutil.BadRequest(w, "invalid request body")
		return
	}
	seo.PageKey = key

	if err := pageseostore.New(h.db).Upsert(r.Context(), seo); err != nil {
		h.logger.Error("failed to save page seo", zap.String("page_key", key), zap.Error(err))
		jsonutil.InternalError(w, "failed to save page seo")
		return
	}

	saved, err := pageseostore.New(h.db).GetByPageKey(r.Context(), key)
	if err != nil {
		h.logger.Error("failed to reload page seo", zap.String("page_key", key), zap.Error(err))
		jsonutil.InternalError(w, "failed to load page seo")
		return
	}
	jsonutil.Success(w, saved)
}

// GetSettings returns the settings document for a page key, or data:null.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if !models.IsValidPageKey(key) {
		jsonutil.NotFound(w, "unknown page key")
		return
	}

	settings, err := pagesettingsstore.New(h.db).GetByPageKey(r.Context(), key)
	if err != nil {
		h.logger.Error("failed to load page settings", zap.String("page_key", key), zap.Error(err))
		jsonutil.InternalError(w, "failed to load page settings")
		return
	}
	if settings == nil {
		jsonutil.SuccessNull(w)
		return
	}
	jsonutil.Success(w, settings)
}

// PutSettings upserts the settings document for a page key. Sections are
// written whole; the last writer wins.
func (h *Handler) PutSettings(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if !models.IsValidPageKey(key) {
		jsonutil.NotFound(w, "unknown page key")
		return
	}

	var settings models.PageSettings
	if err := jsonutil.Decode(r, &settings); err != nil {
		jsonutil.BadRequest(w, "invalid request body")
		return
	}
	settings.PageKey = key

	store := pagesettingsstore.New(h.db)
	if err := store.Upsert(r.Context(), settings); err != nil {
		h.logger.Error("failed to save page settings", zap.String("page_key", key), zap.Error(err))
		jsonutil.InternalError(w, "failed to save page settings")
		return
	}

	saved, err := store.GetByPageKey(r.Context(), key)
	if err != nil {
		h.logger.Error("failed to reload page settings", zap.String("page_key", key), zap.Error(err))
		jsonutil.InternalError(w, "failed to load page settings")
		return
	}
	jsonutil.Success(w, saved)
}
