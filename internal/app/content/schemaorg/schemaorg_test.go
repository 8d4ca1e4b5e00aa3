package schemaorg

import (
	"strings"
	"testing"
	"time"

	"github.com/meridian-compliance/meridian/internal/domain/models"
)

func TestOrganization_OmitsAbsentProperties(t *testing.T) {
	obj := Organization(models.CompanySettings{CompanyName: "Meridian Compliance"}, "")

	if obj["name"] != "Meridian Compliance" {
		t.Errorf("name = %v", obj["name"])
	}
	for _, key := range []string{"logo", "email", "telephone", "address", "sameAs", "slogan"} {
		if _, ok := obj[key]; ok {
			t.Errorf("absent property %q should be omitted", key)
		}
	}
}

func TestOrganization_FullyPopulated(t *testing.T) {
	obj := Organization(models.CompanySettings{
		CompanyName:  "Meridian Compliance",
		Tagline:      "Compliance, handled.",
		ContactEmail: "hello@example.com",
		LinkedInURL:  "https://linkedin.com/company/meridian",
		TwitterURL:   "https://twitter.com/meridian",
	}, "https://cdn.example.com/logo.png")

	if obj["logo"] != "https://cdn.example.com/logo.png" {
		t.Errorf("logo = %v", obj["logo"])
	}
	sameAs, ok := obj["sameAs"].([]string)
	if !ok || len(sameAs) != 2 {
		t.Errorf("sameAs = %v, want both social URLs", obj["sameAs"])
	}
}

func TestBlogPosting(t *testing.T) {
	published := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	obj := BlogPosting(&models.BlogPost{
		Title:       "Audit Prep",
		Slug:        "audit-prep",
		Description: "Getting ready.",
		PublishedAt: &published,
		Tags:        []string{"audits"},
	})

	if obj["@type"] != "BlogPosting" {
		t.Errorf("@type = %v", obj["@type"])
	}
	if obj["datePublished"] != "2026-03-15" {
		t.Errorf("datePublished = %v", obj["datePublished"])
	}
	if _, ok := obj["image"]; ok {
		t.Error("post without a featured image should omit image")
	}
	if _, ok := obj["dateModified"]; ok {
		t.Error("never-updated post should omit dateModified")
	}
}

func TestBreadcrumbList(t *testing.T) {
	obj := BreadcrumbList([]Crumb{
		{Name: "Home", Path: "/"},
		{Name: "Blog", Path: "/blog"},
	})

	items, ok := obj["itemListElement"].([]map[string]any)
	if !ok || len(items) != 2 {
		t.Fatalf("itemListElement = %v", obj["itemListElement"])
	}
	if items[0]["position"] != 1 || items[1]["position"] != 2 {
		t.Error("positions should be 1-based and ordered")
	}
	if items[1]["name"] != "Blog" {
		t.Errorf("items[1].name = %v", items[1]["name"])
	}
}

func TestItemList(t *testing.T) {
	obj := ItemList([]models.Service{
		{Slug: "soc-2", HeroTitle: "SOC 2 Readiness"},
		{Slug: "iso-27001", HeroTitle: "ISO 27001"},
	})

	items := obj["itemListElement"].([]map[string]any)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	url, _ := items[0]["url"].(string)
	if !strings.HasSuffix(url, "/services/soc-2") {
		t.Errorf("items[0].url = %q", url)
	}
}

func TestRender(t *testing.T) {
	html := string(Render(
		map[string]any{"@type": "Organization", "name": "Meridian"},
		map[string]any{"@type": "AboutPage"},
	))

	if strings.Count(html, `<script type="application/ld+json">`) != 2 {
		t.Errorf("expected two script blocks, got: %s", html)
	}
	if !strings.Contains(html, `"name":"Meridian"`) {
		t.Errorf("serialized object missing from output: %s", html)
	}
}
