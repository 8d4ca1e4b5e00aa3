// internal/app/features/blogapi/blogapi.go
//
// JSON API for blog posts. Public reads only surface published posts;
// admin callers see every status and can create, update, and delete.
package blogapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	blogstore "github.com/meridian-compliance/meridian/internal/app/store/blog"
	"github.com/meridian-compliance/meridian/internal/app/system/apiauth"
	"github.com/meridian-compliance/meridian/internal/app/system/apicors"
	"github.com/meridian-compliance/meridian/internal/app/system/auth"
	"github.com/meridian-compliance/meridian/internal/app/system/htmlsanitize"
	"github.com/meridian-compliance/meridian/internal/app/system/jsonutil"
	"github.com/meridian-compliance/meridian/internal/app/system/normalize"
	"github.com/meridian-compliance/meridian/internal/app/system/validate"
	"github.com/meridian-compliance/meridian/internal/domain/models"
)

const defaultLimit = 10

// Handler provides the blog API.
type Handler struct {
	db     *mongo.Database
	logger *zap.Logger
}

// NewHandler creates a new blog API Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{db: db, logger: logger}
}

// Routes returns a chi.Router with blog API routes mounted.
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

// isAdmin reports whether the request carries a signed-in admin.
func isAdmin(r *http.Request) bool {
	u, ok := auth.CurrentUser(r)
	return ok && u.Role == models.RoleAdmin
}

// List returns one page of posts. Public callers only see published
// posts; admins can pass ?status= to filter any status.
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

	opts := blogstore.ListOptions{
		Page:     page,
		Limit:    limit,
		Category: normalize.QueryParam(q.Get("category")),
	}
	if isAdmin(r) {
		opts.Status = normalize.QueryParam(q.Get("status"))
	} else {
		opts.PublishedOnly = true
	}

	posts, total, err := blogstore.New(h.db).List(r.Context(), opts)
	if err != nil {
		h.logger.Error("failed to list blog posts", zap.Error(err))
		jsonutil.InternalError(w, "failed to list blog posts")
		return
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}
	jsonutil.SuccessList(w, posts, jsonutil.NewPagination(int(page), int(limit), total))
}

// Get returns one post by id. Unpublished posts are admin-only.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		jsonutil.BadRequest(w, "invalid post id")
		return
	}

	post, err := blogstore.New(h.db).GetByID(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to load blog post", zap.Error(err))
		jsonutil.InternalError(w, "failed to load blog post")
		return
	}
	if post == nil || (!post.IsPublished() && !isAdmin(r)) {
		jsonutil.NotFound(w, "post not found")
		return
	}
	jsonutil.Success(w, post)
}

// GetBySlug returns one post by slug. Unpublished posts are admin-only.
func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := blogstore.New(h.db).GetBySlug(r.Context(), slug, !isAdmin(r))
	if err != nil {
		h.logger.Error("failed to load blog post", zap.String("slug", slug), zap.Error(err))
		jsonutil.InternalError(w, "failed to load blog post")
		return
	}
	if post == nil {
		jsonutil.NotFound(w, "post not found")
		return
	}
	jsonutil.Success(w, post)
}

// Create adds a new post. Content HTML is sanitized before storage, the
// slug must be unique, and a published post is stamped published_at now
// when the caller did not set one.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var post models.BlogPost
	if err := jsonutil.Decode(r, &post); err != nil {
		jsonutil.BadRequest(w, "invalid request body")
		return
	}

	if fields, ok := h.validatePost(&post); !ok {
		jsonutil.ValidationFailed(w, fields)
		return
	}

	store := blogstore.New(h.db)
	exists, err := store.SlugExists(r.Context(), post.Slug, primitive.NilObjectID)
	if err != nil {
		h.logger.Error("failed to check slug", zap.Error(err))
		jsonutil.InternalError(w, "failed to create post")
		return
	}
	if exists {
		jsonutil.ValidationFailed(w, map[string]string{"slug": "slug already in use"})
		return
	}

	created, err := store.Create(r.Context(), post)
	if err != nil {
		h.logger.Error("failed to create post", zap.Error(err))
		jsonutil.InternalError(w, "failed to create post")
		return
	}
	jsonutil.Created(w, created)
}

// Update replaces a post document.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		jsonutil.BadRequest(w, "invalid post id")
		return
	}

	var post models.BlogPost
	if err := jsonutil.Decode(r, &post); err != nil {
		jsonutil.BadRequest(w, "invalid request body")
		return
	}

	if fields, ok := h.validatePost(&post); !ok {
		jsonutil.ValidationFailed(w, fields)
		return
	}

	store := blogstore.New(h.db)
	exists, err := store.SlugExists(r.Context(), post.Slug, id)
	if err != nil {
		h.logger.Error("failed to check slug", zap.Error(err))
		jsonutil.InternalError(w, "failed to update post")
		return
	}
	if exists {
		jsonutil.ValidationFailed(w, map[string]string{"slug": "slug already in use"})
		return
	}

	updated, err := store.Update(r.Context(), id, post)
	if err != nil {
		h.logger.Error("failed to update post", zap.Error(err))
		jsonutil.InternalError(w, "failed to update post")
		return
	}
	if updated == nil {
		jsonutil.NotFound(w, "post not found")
		return
	}
	jsonutil.Success(w, updated)
}

// Delete removes a post.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		jsonutil.BadRequest(w, "invalid post id")
		return
	}

	deleted, err := blogstore.New(h.db).Delete(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to delete post", zap.Error(err))
		jsonutil.InternalError(w, "failed to delete post")
		return
	}
	if !deleted {
		jsonutil.NotFound(w, "post not found")
		return
	}
	jsonutil.Success(w, map[string]bool{"deleted": true})
}

// validatePost normalizes and validates a post in place. On failure it
// returns the per-field messages.
func (h *Handler) validatePost(post *models.BlogPost) (map[string]string, bool) {
	fields := map[string]string{}

	if res := validate.Required(post.Title, "title"); !res.OK {
		fields["title"] = res.Message
	}
	if post.Slug == "" {
		post.Slug = normalize.Slug(post.Title)
	} else {
		post.Slug = normalize.Slug(post.Slug)
	}
	if post.Slug == "" {
		fields["slug"] = "slug is required"
	}

	switch post.Status {
	case "":
		post.Status = models.PostStatusDraft
	case models.PostStatusDraft, models.PostStatusPublished:
	case models.PostStatusScheduled:
		if post.PublishedAt == nil || !post.PublishedAt.After(time.Now()) {
			fields["publishedAt"] = "scheduled posts need a future publish time"
		}
	default:
		fields["status"] = "status must be draft, scheduled, or published"
	}

	if post.Status == models.PostStatusPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}

	post.Content = htmlsanitize.Sanitize(post.Content)

	if len(fields) > 0 {
		return fields, false
	}
	return nil, true
}
