package blogapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	blogstore "github.com/meridian-compliance/meridian/internal/app/store/blog"
	"github.com/meridian-compliance/meridian/internal/app/system/auth"
	"github.com/meridian-compliance/meridian/internal/domain/models"
	"github.com/meridian-compliance/meridian/internal/testutil"
)

func adminRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return auth.WithTestUser(req, &auth.SessionUser{ID: "1", Role: "admin"})
}

func seedPost(t *testing.T, h *Handler, slug, title, status string) *models.BlogPost {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	post := models.BlogPost{Title: title, Slug: slug, Status: status}
	if status == models.PostStatusPublished {
		now := time.Now().Add(-time.Hour)
		post.PublishedAt = &now
	}
	created, err := blogstore.New(h.db).Create(ctx, post)
	if err != nil {
		t.Fatalf("Create(%s) error = %v", slug, err)
	}
	return created
}

func TestList_PublicSeesPublishedOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())

	seedPost(t, h, "live", "Live Post", models.PostStatusPublished)
	seedPost(t, h, "draft", "Draft Post", models.PostStatusDraft)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "Live Post") {
		t.Error("body missing published post")
	}
	if strings.Contains(body, "Draft Post") {
		t.Error("public list leaks draft post")
	}
}

func TestList_AdminSeesAllStatuses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())

	seedPost(t, h, "live", "Live Post", models.PostStatusPublished)
	seedPost(t, h, "draft", "Draft Post", models.PostStatusDraft)

	req := adminRequest(http.MethodGet, "/", "")
	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "Live Post") || !strings.Contains(body, "Draft Post") {
		t.Errorf("admin list = %s, want both statuses", body)
	}
}

func TestGetBySlug_DraftHiddenFromPublic(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())
	router := Routes(h)

	seedPost(t, h, "secret", "Secret Draft", models.PostStatusDraft)

	req := httptest.NewRequest(http.MethodGet, "/slug/secret", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("public status = %d, want 404", rec.Code)
	}

	req = adminRequest(http.MethodGet, "/slug/secret", "")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("admin status = %d, want 200", rec.Code)
	}
}

func TestCreate_RequiresAuth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader(`{"title":"New Post"}`))
	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"success":false`) {
		t.Error("body missing success:false envelope")
	}
}

func TestCreate_PublishedPostStampsPublishedAt(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())

	req := adminRequest(http.MethodPost, "/",
		`{"title":"Go Live","status":"published"}`)
	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data models.BlogPost `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.PublishedAt == nil {
		t.Error("published post missing publishedAt")
	}
	if resp.Data.Slug != "go-live" {
		t.Errorf("slug = %q, want derived go-live", resp.Data.Slug)
	}
}

func TestCreate_ScheduledNeedsFutureTime(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())

	req := adminRequest(http.MethodPost, "/",
		`{"title":"Later","status":"scheduled"}`)
	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "publishedAt") {
		t.Error("body missing publishedAt field error")
	}
}

func TestCreate_SanitizesContent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())

	req := adminRequest(http.MethodPost, "/",
		`{"title":"Sneaky","content":"<p>ok</p><script>alert(1)</script>"}`)
	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "<script>") {
		t.Error("script tag survived sanitization")
	}
}

func TestCreate_DuplicateSlugRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())

	seedPost(t, h, "taken", "Taken", models.PostStatusDraft)

	req := adminRequest(http.MethodPost, "/", `{"title":"Other","slug":"taken"}`)
	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
}

func TestUpdateAndDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())
	router := Routes(h)

	post := seedPost(t, h, "first", "First Title", models.PostStatusDraft)
	id := post.ID.Hex()

	req := adminRequest(http.MethodPut, "/"+id,
		`{"title":"Second Title","slug":"first","status":"draft"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Second Title") {
		t.Error("PUT response missing updated title")
	}

	req = adminRequest(http.MethodDelete, "/"+id, "")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("DELETE status = %d: %s", rec.Code, rec.Body.String())
	}

	req = adminRequest(http.MethodGet, "/"+id, "")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET after delete = %d, want 404", rec.Code)
	}
}
