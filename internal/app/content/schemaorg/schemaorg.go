// Package schemaorg builds schema.org JSON-LD objects as plain maps.
// Builders are pure: they omit absent properties rather than emitting
// empty strings, so the serialized output never carries dead keys.
package schemaorg

import (
	"encoding/json"
	"html/template"

	"github.com/meridian-compliance/meridian/internal/app/content/meta"
	"github.com/meridian-compliance/meridian/internal/domain/models"
)

const context = "https://schema.org"

// Organization builds the site-wide Organization object from company
// settings. logoURL may be empty when no logo has been uploaded.
func Organization(company models.CompanySettings, logoURL string) map[string]any {
	obj := map[string]any{
		"@context": context,
		"@type":    "Organization",
		"name":     company.CompanyName,
		"url":      meta.BaseURL(),
	}
	if company.Tagline != "" {
		obj["slogan"] = company.Tagline
	}
	if logoURL != "" {
		obj["logo"] = logoURL
	}
	if company.ContactEmail != "" {
		obj["email"] = company.ContactEmail
	}
	if company.ContactPhone != "" {
		obj["telephone"] = company.ContactPhone
	}
	if company.Address != "" {
		obj["address"] = company.Address
	}

	var sameAs []string
	if company.LinkedInURL != "" {
		sameAs = append(sameAs, company.LinkedInURL)
	}
	if company.TwitterURL != "" {
		sameAs = append(sameAs, company.TwitterURL)
	}
	if len(sameAs) > 0 {
		obj["sameAs"] = sameAs
	}
	return obj
}

// AboutPage builds the AboutPage object for the about route.
func AboutPage(title, description string) map[string]any {
	obj := map[string]any{
		"@context": context,
		"@type":    "AboutPage",
		"name":     title,
		"url":      meta.BaseURL() + "/about",
	}
	if description != "" {
		obj["description"] = description
	}
	return obj
}

// BlogPosting builds the BlogPosting object for a post detail page.
func BlogPosting(post *models.BlogPost) map[string]any {
	obj := map[string]any{
		"@context": context,
		"@type":    "BlogPosting",
		"headline": post.Title,
		"url":      meta.BaseURL() + "/blog/" + post.Slug,
	}
	if post.Description != "" {
		obj["description"] = post.Description
	}
	if !post.FeaturedImage.IsZero() {
		obj["image"] = post.FeaturedImage.URL
	}
	if post.PublishedAt != nil {
		obj["datePublished"] = post.PublishedAt.Format("2006-01-02")
	}
	if post.UpdatedAt != nil {
		obj["dateModified"] = post.UpdatedAt.Format("2006-01-02")
	}
	if len(post.Tags) > 0 {
		obj["keywords"] = post.Tags
	}
	obj["publisher"] = map[string]any{
		"@type": "Organization",
		"name":  models.DefaultCompanyName,
	}
	return obj
}

// TechArticle builds the TechArticle object for a service detail page.
func TechArticle(svc *models.Service) map[string]any {
	obj := map[string]any{
		"@context": context,
		"@type":    "TechArticle",
		"headline": svc.HeroTitle,
		"url":      meta.BaseURL() + "/services/" + svc.Slug,
	}
	if svc.HeroDescription != "" {
		obj["description"] = svc.HeroDescription
	}
	if svc.HeroImage != "" {
		obj["image"] = svc.HeroImage
	}
	return obj
}

// Crumb is one entry in a breadcrumb trail.
type Crumb struct {
	Name string
	Path string // site-relative, e.g. "/services"
}

// BreadcrumbList builds the BreadcrumbList object for a trail.
func BreadcrumbList(trail []Crumb) map[string]any {
	items := make([]map[string]any, 0, len(trail))
	for i, c := range trail {
		items = append(items, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     c.Name,
			"item":     meta.BaseURL() + c.Path,
		})
	}
	return map[string]any{
		"@context":        context,
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}

// ServicesTrail is the fixed breadcrumb trail for a service detail page.
func ServicesTrail(svc *models.Service) []Crumb {
	return []Crumb{
		{Name: "Home", Path: "/"},
		{Name: "Services", Path: "/services"},
		{Name: svc.HeroTitle, Path: "/services/" + svc.Slug},
	}
}

// BlogTrail is the fixed breadcrumb trail for a blog post page.
func BlogTrail(post *models.BlogPost) []Crumb {
	return []Crumb{
		{Name: "Home", Path: "/"},
		{Name: "Blog", Path: "/blog"},
		{Name: post.Title, Path: "/blog/" + post.Slug},
	}
}

// ItemList builds an ItemList of service offerings for the listing page.
func ItemList(services []models.Service) map[string]any {
	items := make([]map[string]any, 0, len(services))
	for i, svc := range services {
		items = append(items, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     svc.HeroTitle,
			"url":      meta.BaseURL() + "/services/" + svc.Slug,
		})
	}
	return map[string]any{
		"@context":        context,
		"@type":           "ItemList",
		"itemListElement": items,
	}
}

// Render serializes the objects into <script type="application/ld+json">
// blocks ready for the layout template. Objects that fail to serialize
// are skipped; JSON-LD is never worth failing a page render over.
func Render(objects ...map[string]any) template.HTML {
	var out []byte
	for _, obj := range objects {
		data, err := json.Marshal(obj)
		if err != nil {
			continue
		}
		out = append(out, []byte(`<script type="application/ld+json">`)...)
		out = append(out, data...)
		out = append(out, []byte("</script>\n")...)
	}
	return template.HTML(out)
}
