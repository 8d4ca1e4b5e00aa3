// Package meta builds the per-page HTML metadata: title, description,
// keywords, canonical URL, robots directives, Open Graph and Twitter
// cards. A saved SEO document overrides the route defaults field by
// field; a missing document or a cleared field falls back to the
// default for that field only.
package meta

import (
	"strings"

	"github.com/meridian-compliance/meridian/internal/domain/models"
)

// OGImageWidth and OGImageHeight are the declared dimensions for Open
// Graph images. Editors upload to this size.
const (
	OGImageWidth  = 1200
	OGImageHeight = 630
)

// extendedGoogleBot is added on high-traffic pages so Google renders
// full snippets and large image previews.
const extendedGoogleBot = "index, follow, max-image-preview:large, max-snippet:-1, max-video-preview:-1"

// OpenGraph holds the og: properties for a page.
type OpenGraph struct {
	Title       string
	Description string
	URL         string
	Type        string
	SiteName    string
	Image       string // empty means no og:image tags at all
	ImageWidth  int
	ImageHeight int
}

// Twitter holds the twitter: card properties.
type Twitter struct {
	Card        string
	Title       string
	Description string
	Image       string
}

// Metadata is everything the layout's <head> renders for one page.
type Metadata struct {
	Title       string
	Description string
	Keywords    []string
	Canonical   string
	Robots      string
	GoogleBot   string // empty means no dedicated googlebot tag
	OG          OpenGraph
	Twitter     Twitter
}

// baseURL is the site origin used for canonical and og:url values.
var baseURL = "https://meridiancompliance.com"

// SetBaseURL overrides the site origin. Called once from bootstrap with
// the configured external base URL. Trailing slashes are stripped.
func SetBaseURL(u string) {
	if u != "" {
		baseURL = strings.TrimRight(u, "/")
	}
}

// BaseURL returns the configured site origin.
func BaseURL() string {
	return baseURL
}

type routeDefaults struct {
	title       string
	description string
	keywords    string
	path        string
	highTraffic bool
}

// routes carries the hardcoded defaults per page key. Canonical paths
// are fixed per route regardless of how the request arrived.
var routes = map[string]routeDefaults{
	models.PageKeyHome: {
		title:       "Meridian Compliance | Compliance, handled.",
		description: "Meridian Compliance helps growing companies reach and maintain SOC 2, ISO 27001, and HIPAA compliance without slowing down.",
		keywords:    "compliance, SOC 2, ISO 27001, HIPAA, audit readiness",
		path:        "/",
		highTraffic: true,
	},
	models.PageKeyAbout: {
		title:       "About Us | Meridian Compliance",
		description: "Learn who we are and why we started Meridian Compliance.",
		keywords:    "about, compliance consultants",
		path:        "/about",
	},
	models.PageKeyTeam: {
		title:       "Our Team | Meridian Compliance",
		description: "Meet the auditors and engineers behind Meridian Compliance.",
		keywords:    "team, compliance experts",
		path:        "/our-team",
	},
	models.PageKeyServices: {
		title:       "Services | Meridian Compliance",
		description: "Audit readiness, gap assessments, and continuous compliance services.",
		keywords:    "services, audit readiness, gap assessment",
		path:        "/services",
		highTraffic: true,
	},
	models.PageKeyBlog: {
		title:       "Blog | Meridian Compliance",
		description: "Practical guidance on security frameworks, audits, and compliance operations.",
		keywords:    "blog, compliance, security",
		path:        "/blog",
		highTraffic: true,
	},
	models.PageKeyContact: {
		title:       "Contact | Meridian Compliance",
		description: "Get in touch with the Meridian Compliance team.",
		keywords:    "contact, compliance help",
		path:        "/contact",
	},
}

// ForPage builds the metadata for a fixed page route. seo may be nil.
func ForPage(pageKey string, seo *models.PageSEO) Metadata {
	def := routes[pageKey]

	md := Metadata{
		Title:       def.title,
		Description: def.description,
		Keywords:    splitKeywords(def.keywords),
		Canonical:   baseURL + def.path,
		Robots:      "index, follow",
	}
	if def.highTraffic {
		md.GoogleBot = extendedGoogleBot
	}

	if seo != nil {
		if seo.MetaTitle != "" {
			md.Title = seo.MetaTitle
		}
		if seo.MetaDescription != "" {
			md.Description = seo.MetaDescription
		}
		if kw := seo.KeywordList(); len(kw) > 0 {
			md.Keywords = kw
		}
	}

	md.OG = OpenGraph{
		Title:       md.Title,
		Description: md.Description,
		URL:         md.Canonical,
		Type:        "website",
		SiteName:    models.DefaultCompanyName,
	}
	if seo != nil && seo.OGImage != "" {
		md.OG.Image = seo.OGImage
		md.OG.ImageWidth = OGImageWidth
		md.OG.ImageHeight = OGImageHeight
	}

	md.Twitter = Twitter{
		Card:        "summary_large_image",
		Title:       md.Title,
		Description: md.Description,
		Image:       md.OG.Image,
	}
	return md
}

// ForBlogPost builds the metadata for a blog post detail page.
func ForBlogPost(post *models.BlogPost) Metadata {
	title := post.Title + " | Meridian Compliance"
	description := post.Description
	if description == "" {
		description = post.Subtitle
	}

	md := Metadata{
		Title:       title,
		Description: description,
		Keywords:    post.Tags,
		Canonical:   baseURL + "/blog/" + post.Slug,
		Robots:      "index, follow",
		GoogleBot:   extendedGoogleBot,
	}

	md.OG = OpenGraph{
		Title:       title,
		Description: description,
		URL:         md.Canonical,
		Type:        "article",
		SiteName:    models.DefaultCompanyName,
	}
	if !post.FeaturedImage.IsZero() {
		md.OG.Image = post.FeaturedImage.URL
		md.OG.ImageWidth = OGImageWidth
		md.OG.ImageHeight = OGImageHeight
	}

	md.Twitter = Twitter{
		Card:        "summary_large_image",
		Title:       title,
		Description: description,
		Image:       md.OG.Image,
	}
	return md
}

// ForService builds the metadata for a service detail page.
func ForService(svc *models.Service) Metadata {
	title := svc.HeroTitle + " | Meridian Compliance"

	md := Metadata{
		Title:       title,
		Description: svc.HeroDescription,
		Canonical:   baseURL + "/services/" + svc.Slug,
		Robots:      "index, follow",
		GoogleBot:   extendedGoogleBot,
	}

	md.OG = OpenGraph{
		Title:       title,
		Description: svc.HeroDescription,
		URL:         md.Canonical,
		Type:        "website",
		SiteName:    models.DefaultCompanyName,
	}
	if svc.HeroImage != "" {
		md.OG.Image = svc.HeroImage
		md.OG.ImageWidth = OGImageWidth
		md.OG.ImageHeight = OGImageHeight
	}

	md.Twitter = Twitter{
		Card:        "summary_large_image",
		Title:       title,
		Description: svc.HeroDescription,
		Image:       md.OG.Image,
	}
	return md
}

func splitKeywords(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
