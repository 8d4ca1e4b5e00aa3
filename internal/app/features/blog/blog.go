// internal/app/features/blog/blog.go
package blog

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/meridian-compliance/meridian/internal/app/content/defaults"
	"github.com/meridian-compliance/meridian/internal/app/content/loader"
	"github.com/meridian-compliance/meridian/internal/app/content/meta"
	"github.com/meridian-compliance/meridian/internal/app/content/schemaorg"
	blogstore "github.com/meridian-compliance/meridian/internal/app/store/blog"
	"github.com/meridian-compliance/meridian/internal/app/system/htmlsanitize"
	"github.com/meridian-compliance/meridian/internal/app/system/viewdata"
	"github.com/meridian-compliance/meridian/internal/domain/models"
)

// relatedLimit caps the related-posts strip on post pages.
const relatedLimit = 2

// postsPerPage is the public listing page size.
const postsPerPage = 9

// Handler provides public blog page handlers.
type Handler struct {
	db     *mongo.Database
	logger *zap.Logger
	loader *loader.Loader
}

// NewHandler creates a new blog Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
		loader: loader.New(db, logger),
	}
}

// ListVM is the view model for the blog listing page.
type ListVM struct {
	viewdata.BaseVM
	Meta       meta.Metadata
	View       defaults.BlogView
	Posts      []models.BlogPost
	Categories []string
	Category   string
	Page       int
	PrevPage   int
	NextPage   int
	TotalPages int
	JSONLD     template.HTML
}

// DetailVM is the view model for one blog post page.
type DetailVM struct {
	viewdata.BaseVM
	Meta    meta.Metadata
	Post    models.BlogPost
	Content template.HTML
	Related []models.BlogPost
	JSONLD  template.HTML
}

// Routes returns a chi.Router with blog routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	r.Get("/{slug}", h.Detail)
	return r
}

// Index renders the blog listing page. ?category= filters, ?page= pages.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	data := h.loader.Load(r.Context(), models.PageKeyBlog)

	vm := ListVM{
		BaseVM:   viewdata.New(r),
		Meta:     meta.ForPage(models.PageKeyBlog, data.SEO),
		View:     defaults.Blog(data.Settings),
		Category: r.URL.Query().Get("category"),
	}
	vm.Title = vm.Meta.Title

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	vm.Page = page

	store := blogstore.New(h.db)
	posts, total, err := store.List(r.Context(), blogstore.ListOptions{
		PublishedOnly: true,
		Category:      vm.Category,
		Page:          int64(page),
		Limit:         postsPerPage,
	})
	if err != nil {
		h.logger.Error("failed to list blog posts", zap.Error(err))
	}
	vm.Posts = posts
	vm.TotalPages = int((total + postsPerPage - 1) / postsPerPage)
	vm.PrevPage = page - 1
	vm.NextPage = page + 1

	categories, err := store.Categories(r.Context())
	if err != nil {
		h.logger.Warn("failed to load blog categories", zap.Error(err))
	}
	vm.Categories = categories

	vm.JSONLD = schemaorg.Render(schemaorg.BreadcrumbList([]schemaorg.Crumb{
		{Name: "Home", Path: "/"},
		{Name: "Blog", Path: "/blog"},
	}))

	w.Header().Set("Cache-Control", "no-store")
	templates.Render(w, r, "blog/index", vm)
}

// Detail renders one published post, resolved by slug. Drafts and
// scheduled posts render the not-found view with a 404 status.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	store := blogstore.New(h.db)
	post, err := store.GetBySlug(r.Context(), slug, true)
	if err != nil {
		h.logger.Error("failed to load blog post", zap.String("slug", slug), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if post == nil {
		h.notFound(w, r)
		return
	}

	vm := DetailVM{
		BaseVM:  viewdata.New(r),
		Meta:    meta.ForBlogPost(post),
		Post:    *post,
		Content: htmlsanitize.SanitizeToHTML(post.Content),
	}
	vm.Title = vm.Meta.Title

	related, err := store.Related(r.Context(), post.Category, post.ID, relatedLimit)
	if err != nil {
		h.logger.Warn("failed to load related posts", zap.String("slug", slug), zap.Error(err))
	}
	vm.Related = related

	vm.JSONLD = schemaorg.Render(
		schemaorg.BlogPosting(post),
		schemaorg.BreadcrumbList(schemaorg.BlogTrail(post)),
	)

	w.Header().Set("Cache-Control", "no-store")
	templates.Render(w, r, "blog/detail", vm)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	vm := viewdata.New(r)
	vm.Title = "Post Not Found"

	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "blog/not_found", vm)
}
