// internal/app/features/dashboard/blog.go
package dashboard

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	blogstore "github.com/meridian-compliance/meridian/internal/app/store/blog"
	"github.com/meridian-compliance/meridian/internal/app/system/formutil"
	"github.com/meridian-compliance/meridian/internal/app/system/htmlsanitize"
	"github.com/meridian-compliance/meridian/internal/app/system/normalize"
	"github.com/meridian-compliance/meridian/internal/domain/models"
)

const (
	postsPerDashboardPage = 20

	// maxPostContentLength caps the rich-text body at 100KB.
	maxPostContentLength = 100000

	// publishedAtLayout matches the datetime-local input format.
	publishedAtLayout = "2006-01-02T15:04"
)

// PostListVM is the view model for the dashboard blog list.
type PostListVM struct {
	formutil.Base
	Posts      []models.BlogPost
	Total      int64
	Status     string
	Page       int
	TotalPages int
	PrevPage   int
	NextPage   int
	Success    bool
}

// ListPosts shows the paginated posts table, optionally filtered by status.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	page := 1
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}
	status := normalize.QueryParam(r.URL.Query().Get("status"))

	posts, total, err := blogstore.New(h.db).List(r.Context(), blogstore.ListOptions{
		Page:   int64(page),
		Limit:  postsPerDashboardPage,
		Status: status,
	})
	if err != nil {
		h.errLog.Log(r, "failed to list posts", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	totalPages := int((total + postsPerDashboardPage - 1) / postsPerDashboardPage)
	vm := PostListVM{
		Base:       formutil.NewBase(r, h.db, "Blog Posts", "/dashboard"),
		Posts:      posts,
		Total:      total,
		Status:     status,
		Page:       page,
		TotalPages: totalPages,
		PrevPage:   page - 1,
		NextPage:   page + 1,
		Success:    r.URL.Query().Get("success") == "1",
	}
	templates.Render(w, r, "dashboard/post_list", vm)
}

// PostFormVM is the view model for the post create/edit form. Tags and
// PublishedAt are carried as strings in the input format so a failed
// submission echoes back exactly what was typed.
type PostFormVM struct {
	formutil.Base
	Post        models.BlogPost
	Tags        string
	PublishedAt string
	IsNew       bool
}

// NewPostForm shows an empty post form.
func (h *Handler) NewPostForm(w http.ResponseWriter, r *http.Request) {
	vm := PostFormVM{
		Base:  formutil.NewBase(r, h.db, "New Post", "/dashboard/blog"),
		Post:  models.BlogPost{Status: models.PostStatusDraft},
		IsNew: true,
	}
	templates.Render(w, r, "dashboard/post_form", vm)
}

// CreatePost validates the form and inserts a new post.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	post, errMsg := h.parsePostForm(r)
	if errMsg == "" {
		exists, err := blogstore.New(h.db).SlugExists(r.Context(), post.Slug, primitive.NilObjectID)
		if err != nil {
			h.errLog.Log(r, "failed to check post slug", err)
			errMsg = "Failed to save post. Please try again."
		} else if exists {
			errMsg = "That slug is already in use by another post."
		}
	}
	if errMsg != "" {
		h.renderPostForm(w, r, post, true, errMsg)
		return
	}

	if _, err := blogstore.New(h.db).Create(r.Context(), post); err != nil {
		h.errLog.Log(r, "failed to create post", err)
		h.renderPostForm(w, r, post, true, "Failed to save post. Please try again.")
		return
	}

	http.Redirect(w, r, "/dashboard/blog?success=1", http.StatusSeeOther)
}

// EditPostForm shows the form pre-filled with an existing post.
func (h *Handler) EditPostForm(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, err := blogstore.New(h.db).GetByID(r.Context(), id)
	if err != nil {
		h.errLog.Log(r, "failed to load post", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if post == nil {
		http.NotFound(w, r)
		return
	}

	vm := PostFormVM{
		Base: formutil.NewBase(r, h.db, "Edit Post", "/dashboard/blog"),
		Post: *post,
		Tags: strings.Join(post.Tags, ", "),
	}
	if post.PublishedAt != nil {
		vm.PublishedAt = post.PublishedAt.Format(publishedAtLayout)
	}
	templates.Render(w, r, "dashboard/post_form", vm)
}

// UpdatePost validates the form and saves changes to an existing post.
func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, errMsg := h.parsePostForm(r)
	post.ID = id
	if errMsg == "" {
		exists, err := blogstore.New(h.db).SlugExists(r.Context(), post.Slug, id)
		if err != nil {
			h.errLog.Log(r, "failed to check post slug", err)
			errMsg = "Failed to save post. Please try again."
		} else if exists {
			errMsg = "That slug is already in use by another post."
		}
	}
	if errMsg != "" {
		h.renderPostForm(w, r, post, false, errMsg)
		return
	}

	updated, err := blogstore.New(h.db).Update(r.Context(), id, post)
	if err != nil {
		h.errLog.Log(r, "failed to update post", err)
		h.renderPostForm(w, r, post, false, "Failed to save post. Please try again.")
		return
	}
	if updated == nil {
		http.NotFound(w, r)
		return
	}

	http.Redirect(w, r, "/dashboard/blog?success=1", http.StatusSeeOther)
}

// DeletePost removes a post and returns to the list.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if _, err := blogstore.New(h.db).Delete(r.Context(), id); err != nil {
		h.errLog.Log(r, "failed to delete post", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/dashboard/blog?success=1", http.StatusSeeOther)
}

// parsePostForm reads the submitted post fields, sanitizes the body, and
// applies the status rules: published posts get a publish time stamped if
// none was entered, scheduled posts must name a future one.
func (h *Handler) parsePostForm(r *http.Request) (models.BlogPost, string) {
	if err := r.ParseForm(); err != nil {
		return models.BlogPost{}, "Invalid form submission."
	}

	rawContent := r.FormValue("content")
	if len(rawContent) > maxPostContentLength {
		return models.BlogPost{}, "Post content is too long. Maximum length is 100,000 characters."
	}

	post := models.BlogPost{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Slug:        normalize.Slug(r.FormValue("slug")),
		Subtitle:    strings.TrimSpace(r.FormValue("subtitle")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Content:     htmlsanitize.Sanitize(rawContent),
		Category:    strings.TrimSpace(r.FormValue("category")),
		Tags:        splitTags(r.FormValue("tags")),
		Status:      r.FormValue("status"),
		IsFeatured:  r.FormValue("is_featured") == "on",
	}
	post.FeaturedImage.URL = strings.TrimSpace(r.FormValue("featured_image"))

	if post.Title == "" {
		return post, "Title is required."
	}
	if post.Slug == "" {
		post.Slug = normalize.Slug(post.Title)
	}
	if post.Slug == "" {
		return post, "Slug is required."
	}

	if raw := strings.TrimSpace(r.FormValue("published_at")); raw != "" {
		at, err := time.ParseInLocation(publishedAtLayout, raw, time.UTC)
		if err != nil {
			return post, "Publish time must be in YYYY-MM-DDTHH:MM format."
		}
		post.PublishedAt = &at
	}

	switch post.Status {
	case models.PostStatusDraft, models.PostStatusScheduled, models.PostStatusPublished:
	case "":
		post.Status = models.PostStatusDraft
	default:
		return post, "Unknown post status."
	}

	if post.Status == models.PostStatusScheduled {
		if post.PublishedAt == nil || !post.PublishedAt.After(time.Now().UTC()) {
			return post, "Scheduled posts need a future publish time."
		}
	}
	if post.Status == models.PostStatusPublished && post.PublishedAt == nil {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}
	return post, ""
}

func (h *Handler) renderPostForm(w http.ResponseWriter, r *http.Request, post models.BlogPost, isNew bool, errMsg string) {
	title := "Edit Post"
	if isNew {
		title = "New Post"
	}
	vm := PostFormVM{
		Base:  formutil.NewBase(r, h.db, title, "/dashboard/blog"),
		Post:  post,
		Tags:  strings.Join(post.Tags, ", "),
		IsNew: isNew,
	}
	if post.PublishedAt != nil {
		vm.PublishedAt = post.PublishedAt.Format(publishedAtLayout)
	}
	vm.SetError(errMsg)
	templates.Render(w, r, "dashboard/post_form", vm)
}

// splitTags turns "a, b ,c" into ["a" "b" "c"], dropping empties.
func splitTags(s string) []string {
	parts := strings.Split(s, ",")
	var tags []string
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
