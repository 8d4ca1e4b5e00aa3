package dashboard

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	errorsfeature "github.com/meridian-compliance/meridian/internal/app/features/errors"
	"github.com/meridian-compliance/meridian/internal/app/system/auth"
	blogstore "github.com/meridian-compliance/meridian/internal/app/store/blog"
	companystore "github.com/meridian-compliance/meridian/internal/app/store/companysettings"
	pagesettingsstore "github.com/meridian-compliance/meridian/internal/app/store/pagesettings"
	pageseostore "github.com/meridian-compliance/meridian/internal/app/store/pageseo"
	servicestore "github.com/meridian-compliance/meridian/internal/app/store/services"
	themestore "github.com/meridian-compliance/meridian/internal/app/store/themesettings"
	"github.com/meridian-compliance/meridian/internal/domain/models"
	"github.com/meridian-compliance/meridian/internal/testutil"
)

func newTestRouter(t *testing.T, h *Handler) http.Handler {
	t.Helper()
	sm, err := auth.NewSessionManager("this-is-a-32-character-long-key!", "", "", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager() error = %v", err)
	}
	return Routes(h, sm)
}

func newHandler(t *testing.T) (*Handler, http.Handler) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, nil, errorsfeature.NewErrorLogger(zap.NewNop()), zap.NewNop())
	return h, newTestRouter(t, h)
}

func adminGet(target string) *http.Request {
	req := testutil.NewAuthenticatedRequest(http.MethodGet, target, testutil.AdminUser())
	return testutil.WithCSRFToken(req)
}

func adminPostForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = testutil.WithUser(req, testutil.AdminUser())
	return testutil.WithCSRFToken(req)
}

func adminPostMultipart(t *testing.T, target string, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField(%q) error = %v", k, err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("multipart close: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req = testutil.WithUser(req, testutil.AdminUser())
	return testutil.WithCSRFToken(req)
}

func TestOverview_RequiresAdmin(t *testing.T) {
	testutil.MustBootTemplates(t)
	_, router := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestOverview_ShowsPageKeys(t *testing.T) {
	testutil.MustBootTemplates(t)
	_, router := newHandler(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminGet("/"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	for _, key := range models.AllPageKeys() {
		if !strings.Contains(rec.Body.String(), "/dashboard/pages/"+key) {
			t.Errorf("body missing editor link for %q", key)
		}
	}
}

func TestShowPageForm_UnknownKey404(t *testing.T) {
	testutil.MustBootTemplates(t)
	_, router := newHandler(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminGet("/pages/nope"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestSavePage_BuildsSectionsFromRepeatedFields(t *testing.T) {
	testutil.MustBootTemplates(t)
	h, router := newHandler(t)

	form := url.Values{
		"hero_title":    {"Custom Headline"},
		"hero_subtitle": {"Subhead"},
		"stat_value":    {"7+", "120", ""},
		"stat_label":    {"Years", "Clients", ""},
		"faq_heading":   {"Questions"},
		"faq_question":  {"How long?", ""},
		"faq_answer":    {"Six weeks.", ""},
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminPostForm("/pages/home", form))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	saved, err := pagesettingsstore.New(h.db).GetByPageKey(ctx, models.PageKeyHome)
	if err != nil {
		t.Fatalf("GetByPageKey() error = %v", err)
	}
	if saved == nil || saved.Hero == nil || saved.Hero.Title != "Custom Headline" {
		t.Fatalf("hero not saved: %+v", saved)
	}
	if len(saved.Stats) != 2 {
		t.Errorf("stats = %d, want 2 (empty row skipped)", len(saved.Stats))
	}
	if saved.FAQ == nil || len(saved.FAQ.Items) != 1 {
		t.Errorf("faq = %+v, want one item", saved.FAQ)
	}
	if saved.Contact != nil {
		t.Errorf("contact = %+v, want absent when blank", saved.Contact)
	}
}

func TestSaveSEO_RoundTrip(t *testing.T) {
	testutil.MustBootTemplates(t)
	h, router := newHandler(t)

	form := url.Values{
		"meta_title": {"About Meridian"},
		"keywords":   {"soc 2, hipaa"},
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminPostForm("/seo/about", form))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	saved, err := pageseostore.New(h.db).GetByPageKey(ctx, models.PageKeyAbout)
	if err != nil {
		t.Fatalf("GetByPageKey() error = %v", err)
	}
	if saved == nil || saved.MetaTitle != "About Meridian" {
		t.Fatalf("seo not saved: %+v", saved)
	}
	if got := saved.KeywordList(); len(got) != 2 {
		t.Errorf("keywords = %v, want 2", got)
	}
}

func TestCreateService_DerivesSlug(t *testing.T) {
	testutil.MustBootTemplates(t)
	h, router := newHandler(t)

	form := url.Values{
		"hero_title": {"Gap Assessment"},
		"is_active":  {"on"},
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminPostForm("/services/new", form))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	svc, err := servicestore.New(h.db).GetBySlug(ctx, "gap-assessment")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if svc == nil || !svc.IsActive {
		t.Fatalf("service = %+v", svc)
	}
}

func TestCreateService_MissingTitleRerenders(t *testing.T) {
	testutil.MustBootTemplates(t)
	_, router := newHandler(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminPostForm("/services/new", url.Values{"hero_description": {"text"}}))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want re-rendered form", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Title is required") {
		t.Error("body missing validation error")
	}
}

func TestCreateService_DuplicateSlugRerenders(t *testing.T) {
	testutil.MustBootTemplates(t)
	h, router := newHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	if _, err := servicestore.New(h.db).Create(ctx, models.Service{Slug: "soc-2", HeroTitle: "SOC 2"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminPostForm("/services/new", url.Values{"hero_title": {"SOC 2"}, "slug": {"soc-2"}}))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want re-rendered form", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "already in use") {
		t.Error("body missing duplicate slug error")
	}
}

func TestDeleteService_Removes(t *testing.T) {
	testutil.MustBootTemplates(t)
	h, router := newHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	svc, err := servicestore.New(h.db).Create(ctx, models.Service{Slug: "old", HeroTitle: "Old"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminPostForm("/services/"+svc.ID.Hex()+"/delete", url.Values{}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}
	got, err := servicestore.New(h.db).GetByID(ctx, svc.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got != nil {
		t.Error("service still present after delete")
	}
}

func TestCreatePost_PublishedStampsTime(t *testing.T) {
	testutil.MustBootTemplates(t)
	h, router := newHandler(t)

	form := url.Values{
		"title":   {"Go Live"},
		"status":  {"published"},
		"content": {"<p>Body</p><script>alert(1)</script>"},
		"tags":    {"soc 2, audits"},
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminPostForm("/blog/new", form))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	post, err := blogstore.New(h.db).GetBySlug(ctx, "go-live", false)
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if post == nil || post.PublishedAt == nil {
		t.Fatalf("post = %+v, want publish time stamped", post)
	}
	if strings.Contains(post.Content, "<script>") {
		t.Error("content not sanitized")
	}
	if len(post.Tags) != 2 {
		t.Errorf("tags = %v, want 2", post.Tags)
	}
}

func TestCreatePost_ScheduledNeedsFutureTime(t *testing.T) {
	testutil.MustBootTemplates(t)
	_, router := newHandler(t)

	form := url.Values{
		"title":  {"Later"},
		"status": {"scheduled"},
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminPostForm("/blog/new", form))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want re-rendered form", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "future publish time") {
		t.Error("body missing scheduling error")
	}
}

func TestCreatePost_ScheduledFutureTimeSaves(t *testing.T) {
	testutil.MustBootTemplates(t)
	h, router := newHandler(t)

	future := time.Now().UTC().Add(48 * time.Hour).Format(publishedAtLayout)
	form := url.Values{
		"title":        {"Later"},
		"status":       {"scheduled"},
		"published_at": {future},
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminPostForm("/blog/new", form))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	post, err := blogstore.New(h.db).GetBySlug(ctx, "later", false)
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if post == nil || post.Status != models.PostStatusScheduled {
		t.Fatalf("post = %+v", post)
	}
}

func TestSaveCompany_RequiresName(t *testing.T) {
	testutil.MustBootTemplates(t)
	_, router := newHandler(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminPostMultipart(t, "/company", map[string]string{"tagline": "Compliance, handled."}))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want re-rendered form", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Company name is required") {
		t.Error("body missing validation error")
	}
}

func TestSaveCompany_SavesProfile(t *testing.T) {
	testutil.MustBootTemplates(t)
	h, router := newHandler(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminPostMultipart(t, "/company", map[string]string{
		"company_name":  "Acme Compliance",
		"contact_email": "hi@acme.test",
		"footer_html":   "<p>Footer</p><script>x()</script>",
	}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	saved, err := companystore.New(h.db).Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if saved.CompanyName != "Acme Compliance" || saved.ContactEmail != "hi@acme.test" {
		t.Errorf("settings = %+v", saved)
	}
	if strings.Contains(saved.FooterHTML, "<script>") {
		t.Error("footer not sanitized")
	}
}

func TestSaveTheme_RejectsBadColor(t *testing.T) {
	testutil.MustBootTemplates(t)
	_, router := newHandler(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminPostForm("/theme", url.Values{"primary_color": {"blue"}}))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want re-rendered form", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "hex values") {
		t.Error("body missing color validation error")
	}
}

func TestSaveTheme_Saves(t *testing.T) {
	testutil.MustBootTemplates(t)
	h, router := newHandler(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminPostForm("/theme", url.Values{"primary_color": {"#123456"}}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	theme, err := themestore.New(h.db).Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if theme.PrimaryColor != "#123456" {
		t.Errorf("PrimaryColor = %q", theme.PrimaryColor)
	}
}

func TestSendTestEmail_UnconfiguredShowsError(t *testing.T) {
	testutil.MustBootTemplates(t)
	_, router := newHandler(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminPostForm("/email/test", url.Values{}))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want re-rendered form", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "not configured") {
		t.Error("body missing configuration error")
	}
}
