// internal/app/features/servicesapi/servicesapi.go
//
// JSON API for service offerings. List and slug/id reads are public;
// create, update, and delete require an admin.
package servicesapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	servicestore "github.com/meridian-compliance/meridian/internal/app/store/services"
	"github.com/meridian-compliance/meridian/internal/app/system/apiauth"
	"github.com/meridian-compliance/meridian/internal/app/system/apicors"
	"github.com/meridian-compliance/meridian/internal/app/system/jsonutil"
	"github.com/meridian-compliance/meridian/internal/app/system/normalize"
	"github.com/meridian-compliance/meridian/internal/app/system/validate"
	"github.com/meridian-compliance/meridian/internal/domain/models"
)

const defaultLimit = 10

// Handler provides the services API.
type Handler struct {
	db     *mongo.Database
	logger *zap.Logger
}

// NewHandler creates a new services API Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{db: db, logger: logger}
}

// Routes returns a chi.Router with services API routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.With(apicors.Middleware()).Get("/", h.List)
	r.With(apiauth.RequireAdmin).Post("/", h.Create)

	r.With(apicors.Middleware()).Get("/slug/{slug}", h.GetBySlug)

	r.Route("/{id}", func(r chi.Router) {
		r.With(apicors.Middleware()).Get("/", h.Get)
		r.With(apiauth.RequireAdmin).Put("/", h.Update)
		r.With(apiauth.RequireAdmin).Delete("/", h.Delete)
	})
	return r
}

// List returns one page of services. ?search= filters by substring,
// ?active=true restricts to active offerings.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.ParseInt(q.Get("limit"), 10, 64)
	if limit < 1 || limit > 100 {
		limit = defaultLimit
	}

	opts := servicestore.ListOptions{
		Page:       page,
		Limit:      limit,
		Search:     normalize.QueryParam(q.Get("search")),
		ActiveOnly: q.Get("active") == "true",
	}

	services, total, err := servicestore.New(h.db).List(r.Context(), opts)
	if err != nil {
		h.logger.Error("failed to list services", zap.Error(err))
		jsonutil.InternalError(w, "failed to list services")
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	jsonutil.SuccessList(w, services, jsonutil.NewPagination(int(page), int(limit), total))
}

// Get returns one service by id.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		jsonutil.BadRequest(w, "invalid service id")
		return
	}

	svc, err := servicestore.New(h.db).GetByID(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to load service", zap.Error(err))
		jsonutil.InternalError(w, "failed to load service")
		return
	}
	if svc == nil {
		jsonutil.NotFound(w, "service not found")
		return
	}
	jsonutil.Success(w, svc)
}

// GetBySlug returns one service by slug.
func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	svc, err := servicestore.New(h.db).GetBySlug(r.Context(), slug)
	if err != nil {
		h.logger.Error("failed to load service", zap.String("slug", slug), zap.Error(err))
		jsonutil.InternalError(w, "failed to load service")
		return
	}
	if svc == nil {
		jsonutil.NotFound(w, "service not found")
		return
	}
	jsonutil.Success(w, svc)
}

// Create adds a new service. The slug is derived from the hero title
// when absent and must be unique.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var svc models.Service
	if err := jsonutil.Decode(r, &svc); err != nil {
		jsonutil.BadRequest(w, "invalid request body")
		return
	}

	if res := validate.Required(svc.HeroTitle, "heroTitle"); !res.OK {
		jsonutil.ValidationFailed(w, map[string]string{"heroTitle": res.Message})
		return
	}
	if svc.Slug == "" {
		svc.Slug = normalize.Slug(svc.HeroTitle)
	} else {
		svc.Slug = normalize.Slug(svc.Slug)
	}

	store := servicestore.New(h.db)
	exists, err := store.SlugExists(r.Context(), svc.Slug, primitive.NilObjectID)
	if err != nil {
		h.logger.Error("failed to check slug", zap.Error(err))
		jsonutil.InternalError(w, "failed to create service")
		return
	}
	if exists {
		jsonutil.ValidationFailed(w, map[string]string{"slug": "slug already in use"})
		return
	}

	created, err := store.Create(r.Context(), svc)
	if err != nil {
		h.logger.Error("failed to create service", zap.Error(err))
		jsonutil.InternalError(w, "failed to create service")
		return
	}
	jsonutil.Created(w, created)
}

// Update replaces a service document.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		jsonutil.BadRequest(w, "invalid service id")
		return
	}

	var svc models.Service
	if err := jsonutil.Decode(r, &svc); err != nil {
		jsonutil.BadRequest(w, "invalid request body")
		return
	}
	if res := validate.Required(svc.HeroTitle, "heroTitle"); !res.OK {
		jsonutil.ValidationFailed(w, map[string]string{"heroTitle": res.Message})
		return
	}
	svc.Slug = normalize.Slug(svc.Slug)
	if svc.Slug == "" {
		svc.Slug = normalize.Slug(svc.HeroTitle)
	}

	store := servicestore.New(h.db)
	exists, err := store.SlugExists(r.Context(), svc.Slug, id)
	if err != nil {
		h.logger.Error("failed to check slug", zap.Error(err))
		jsonutil.InternalError(w, "failed to update service")
		return
	}
	if exists {
		jsonutil.ValidationFailed(w, map[string]string{"slug": "slug already in use"})
		return
	}

	updated, err := store.Update(r.Context(), id, svc)
	if err != nil {
		h.logger.Error("failed to update service", zap.Error(err))
		jsonutil.InternalError(w, "failed to update service")
		return
	}
	if updated == nil {
		jsonutil.NotFound(w, "service not found")
		return
	}
	jsonutil.Success(w, updated)
}

// Delete removes a service.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		jsonutil.BadRequest(w, "invalid service id")
		return
	}

	deleted, err := servicestore.New(h.db).Delete(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to delete service", zap.Error(err))
		jsonutil.InternalError(w, "failed to delete service")
		return
	}
	if !deleted {
		jsonutil.NotFound(w, "service not found")
		return
	}
	jsonutil.Success(w, map[string]bool{"deleted": true})
}
