// internal/app/features/dashboard/seo.go
package dashboard

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"

	pageseostore "github.com/meridian-compliance/meridian/internal/app/store/pageseo"
	"github.com/meridian-compliance/meridian/internal/app/system/formutil"
	"github.com/meridian-compliance/meridian/internal/domain/models"
)

// SEOFormVM is the view model for the per-page SEO editor.
type SEOFormVM struct {
	formutil.Base
	PageKey string
	SEO     models.PageSEO
	Success bool
}

// ShowSEOForm renders the SEO editor for one page.
func (h *Handler) ShowSEOForm(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if !models.IsValidPageKey(key) {
		http.NotFound(w, r)
		return
	}

	seo, err := pageseostore.New(h.db).GetByPageKey(r.Context(), key)
	if err != nil {
		h.errLog.Log(r, "failed to load page SEO", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if seo == nil {
		seo = &models.PageSEO{PageKey: key}
	}

	vm := SEOFormVM{
		Base:    formutil.NewBase(r, h.db, "Edit SEO: "+key, "/dashboard"),
		PageKey: key,
		SEO:     *seo,
		Success: r.URL.Query().Get("success") == "1",
	}
	templates.Render(w, r, "dashboard/seo_form", vm)
}

// SaveSEO upserts the SEO document for one page.
func (h *Handler) SaveSEO(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if !models.IsValidPageKey(key) {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse SEO form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	seo := models.PageSEO{
		PageKey:         key,
		MetaTitle:       strings.TrimSpace(r.FormValue("meta_title")),
		MetaDescription: strings.TrimSpace(r.FormValue("meta_description")),
		Keywords:        strings.TrimSpace(r.FormValue("keywords")),
		OGImage:         strings.TrimSpace(r.FormValue("og_image")),
	}
	seo.UpdatedByID, seo.UpdatedByName = editorIdentity(r)

	if err := pageseostore.New(h.db).Upsert(r.Context(), seo); err != nil {
		h.errLog.Log(r, "failed to save page SEO", err)
		vm := SEOFormVM{
			Base:    formutil.NewBase(r, h.db, "Edit SEO: "+key, "/dashboard"),
			PageKey: key,
			SEO:     seo,
		}
		vm.SetError("Failed to save SEO settings. Please try again.")
		templates.Render(w, r, "dashboard/seo_form", vm)
		return
	}

	http.Redirect(w, r, "/dashboard/seo/"+key+"?success=1", http.StatusSeeOther)
}
