package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	servicestore "github.com/meridian-compliance/meridian/internal/app/store/services"
	"github.com/meridian-compliance/meridian/internal/domain/models"
	"github.com/meridian-compliance/meridian/internal/testutil"
)

func seedService(t *testing.T, h *Handler, slug, title string, active bool) {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()
	_, err := servicestore.New(h.db).Create(ctx, models.Service{
		Slug:            slug,
		HeroTitle:       title,
		HeroDescription: "Description for " + title,
		IsActive:        active,
	})
	if err != nil {
		t.Fatalf("Create(%s) error = %v", slug, err)
	}
}

func TestIndex_ListsActiveServices(t *testing.T) {
	testutil.MustBootTemplates(t)
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())

	seedService(t, h, "soc-2", "SOC 2 Readiness", true)
	seedService(t, h, "retired", "Retired Offering", false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "SOC 2 Readiness") {
		t.Error("body missing active service")
	}
	if strings.Contains(body, "Retired Offering") {
		t.Error("body lists inactive service")
	}
}

func TestDetail_RendersService(t *testing.T) {
	testutil.MustBootTemplates(t)
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())

	seedService(t, h, "soc-2", "SOC 2 Readiness", true)

	req := httptest.NewRequest(http.MethodGet, "/soc-2", nil)
	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "SOC 2 Readiness") {
		t.Error("body missing service title")
	}
	if !strings.Contains(body, "TechArticle") {
		t.Error("body missing TechArticle JSON-LD")
	}
}

func TestDetail_UnknownSlugRenders404(t *testing.T) {
	testutil.MustBootTemplates(t)
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Service not found") {
		t.Error("body missing not-found message")
	}
}

func TestDetail_InactiveServiceRenders404(t *testing.T) {
	testutil.MustBootTemplates(t)
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())

	seedService(t, h, "hidden", "Hidden Offering", false)

	req := httptest.NewRequest(http.MethodGet, "/hidden", nil)
	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
