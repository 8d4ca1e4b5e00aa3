// internal/app/features/dashboard/pages.go
package dashboard

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	pagesettingsstore "github.com/meridian-compliance/meridian/internal/app/store/pagesettings"
	"github.com/meridian-compliance/meridian/internal/app/system/auth"
	"github.com/meridian-compliance/meridian/internal/app/system/formutil"
	"github.com/meridian-compliance/meridian/internal/domain/models"
)

// PageFormVM is the view model for the page content editor.
type PageFormVM struct {
	formutil.Base
	PageKey  string
	Settings models.PageSettings
	Success  bool
}

// ShowPageForm renders the content editor for one page.
func (h *Handler) ShowPageForm(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if !models.IsValidPageKey(key) {
		http.NotFound(w, r)
		return
	}

	settings, err := pagesettingsstore.New(h.db).GetByPageKey(r.Context(), key)
	if err != nil {
		h.errLog.Log(r, "failed to load page settings", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if settings == nil {
		settings = &models.PageSettings{PageKey: key}
	}

	vm := PageFormVM{
		Base:     formutil.NewBase(r, h.db, "Edit Page: "+key, "/dashboard"),
		PageKey:  key,
		Settings: *settings,
		Success:  r.URL.Query().Get("success") == "1",
	}
	templates.Render(w, r, "dashboard/page_form", vm)
}

// SavePage parses the submitted sections and upserts the page document.
// Sections whose fields are all blank are stored as absent so the public
// page falls back to its defaults.
func (h *Handler) SavePage(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if !models.IsValidPageKey(key) {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse page form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	settings := models.PageSettings{
		PageKey:  key,
		Hero:     parseHero(r),
		Stats:    parseStats(r),
		Founders: parseFounders(r),
		Values:   parseValues(r),
		FAQ:      parseFAQ(r),
		CTA:      parseCTA(r),
		Contact:  parseContact(r),
	}
	settings.UpdatedByID, settings.UpdatedByName = editorIdentity(r)

	if err := pagesettingsstore.New(h.db).Upsert(r.Context(), settings); err != nil {
		h.errLog.Log(r, "failed to save page settings", err)
		vm := PageFormVM{
			Base:     formutil.NewBase(r, h.db, "Edit Page: "+key, "/dashboard"),
			PageKey:  key,
			Settings: settings,
		}
		vm.SetError("Failed to save page. Please try again.")
		templates.Render(w, r, "dashboard/page_form", vm)
		return
	}

	http.Redirect(w, r, "/dashboard/pages/"+key+"?success=1", http.StatusSeeOther)
}

func parseHero(r *http.Request) *models.HeroSection {
	hero := models.HeroSection{
		Eyebrow:  strings.TrimSpace(r.FormValue("hero_eyebrow")),
		Title:    strings.TrimSpace(r.FormValue("hero_title")),
		Subtitle: strings.TrimSpace(r.FormValue("hero_subtitle")),
		Image:    strings.TrimSpace(r.FormValue("hero_image")),
	}
	if hero == (models.HeroSection{}) {
		return nil
	}
	return &hero
}

func parseStats(r *http.Request) []models.Stat {
	values := r.Form["stat_value"]
	labels := r.Form["stat_label"]

	var stats []models.Stat
	for i := range values {
		stat := models.Stat{
			Value: strings.TrimSpace(values[i]),
			Label: strings.TrimSpace(at(labels, i)),
		}
		if stat.Value == "" && stat.Label == "" {
			continue
		}
		stats = append(stats, stat)
	}
	return stats
}

func parseFounders(r *http.Request) *models.FoundersSection {
	section := models.FoundersSection{
		Heading: strings.TrimSpace(r.FormValue("founders_heading")),
		Intro:   strings.TrimSpace(r.FormValue("founders_intro")),
	}

	names := r.Form["founder_name"]
	titles := r.Form["founder_title"]
	bios := r.Form["founder_bio"]
	photos := r.Form["founder_photo"]
	for i := range names {
		member := models.FounderBio{
			Name:  strings.TrimSpace(names[i]),
			Title: strings.TrimSpace(at(titles, i)),
			Bio:   strings.TrimSpace(at(bios, i)),
			Photo: strings.TrimSpace(at(photos, i)),
		}
		if member == (models.FounderBio{}) {
			continue
		}
		section.Members = append(section.Members, member)
	}

	if section.Heading == "" && section.Intro == "" && len(section.Members) == 0 {
		return nil
	}
	return &section
}

func parseValues(r *http.Request) []models.ValueItem {
	icons := r.Form["value_icon"]
	titles := r.Form["value_title"]
	descriptions := r.Form["value_description"]

	var items []models.ValueItem
	for i := range titles {
		item := models.ValueItem{
			Icon:        strings.TrimSpace(at(icons, i)),
			Title:       strings.TrimSpace(titles[i]),
			Description: strings.TrimSpace(at(descriptions, i)),
		}
		if item == (models.ValueItem{}) {
			continue
		}
		items = append(items, item)
	}
	return items
}

func parseFAQ(r *http.Request) *models.FAQSection {
	section := models.FAQSection{
		Heading: strings.TrimSpace(r.FormValue("faq_heading")),
	}

	questions := r.Form["faq_question"]
	answers := r.Form["faq_answer"]
	for i := range questions {
		item := models.FAQItem{
			Question: strings.TrimSpace(questions[i]),
			Answer:   strings.TrimSpace(at(answers, i)),
		}
		if item.Question == "" && item.Answer == "" {
			continue
		}
		section.Items = append(section.Items, item)
	}

	if section.Heading == "" && len(section.Items) == 0 {
		return nil
	}
	return &section
}

func parseCTA(r *http.Request) *models.CTASection {
	section := models.CTASection{
		Title:    strings.TrimSpace(r.FormValue("cta_title")),
		Subtitle: strings.TrimSpace(r.FormValue("cta_subtitle")),
	}

	texts := r.Form["cta_button_text"]
	links := r.Form["cta_button_link"]
	for i := range texts {
		btn := models.CTAButton{
			Text: strings.TrimSpace(texts[i]),
			Link: strings.TrimSpace(at(links, i)),
		}
		if btn.Text == "" && btn.Link == "" {
			continue
		}
		section.Buttons = append(section.Buttons, btn)
	}

	if section.Title == "" && section.Subtitle == "" && len(section.Buttons) == 0 {
		return nil
	}
	return &section
}

func parseContact(r *http.Request) *models.ContactSection {
	section := models.ContactSection{
		Heading: strings.TrimSpace(r.FormValue("contact_heading")),
		Email:   strings.TrimSpace(r.FormValue("contact_email")),
		Phone:   strings.TrimSpace(r.FormValue("contact_phone")),
		Address: strings.TrimSpace(r.FormValue("contact_address")),
	}
	if section == (models.ContactSection{}) {
		return nil
	}
	return &section
}

// at returns s[i] or "" when the slice is shorter than the paired one.
// Browsers submit paired inputs in lockstep, but a hand-crafted request
// may not.
func at(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}

// editorIdentity returns the signed-in admin's ID and name for the
// updated_by audit fields.
func editorIdentity(r *http.Request) (*primitive.ObjectID, string) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		return nil, ""
	}
	id, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		return nil, u.Name
	}
	return &id, u.Name
}
