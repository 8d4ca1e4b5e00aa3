// internal/domain/models/pageseo.go
package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PageSEO holds the per-page SEO document edited through the dashboard.
// Every field is optional; consumers fall back field-by-field to the
// route's hardcoded defaults, never document-wide.
type PageSEO struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PageKey         string             `bson:"page_key" json:"pageKey"`
	MetaTitle       string             `bson:"meta_title,omitempty" json:"metaTitle,omitempty"`
	MetaDescription string             `bson:"meta_description,omitempty" json:"metaDescription,omitempty"`
	Keywords        string             `bson:"keywords,omitempty" json:"keywords,omitempty"` // comma-separated
	OGImage         string             `bson:"og_image,omitempty" json:"ogImage,omitempty"`

	UpdatedAt     *time.Time          `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
	UpdatedByID   *primitive.ObjectID `bson:"updated_by_id,omitempty" json:"-"`
	UpdatedByName string              `bson:"updated_by_name,omitempty" json:"-"`
}

// KeywordList splits the comma-separated keywords string into trimmed
// entries, dropping empties. "a, b ,c" yields ["a" "b" "c"].
func (s *PageSEO) KeywordList() []string {
	if s == nil || s.Keywords == "" {
		return nil
	}
	parts := strings.Split(s.Keywords, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Page keys for the public routes.
const (
	PageKeyHome     = "home"
	PageKeyAbout    = "about"
	PageKeyTeam     = "our-team"
	PageKeyServices = "services"
	PageKeyBlog     = "blog"
	PageKeyContact  = "contact"
)

// AllPageKeys returns every page key the site serves.
func AllPageKeys() []string {
	return []string{
		PageKeyHome,
		PageKeyAbout,
		PageKeyTeam,
		PageKeyServices,
		PageKeyBlog,
		PageKeyContact,
	}
}

// IsValidPageKey checks if a key names a known page.
func IsValidPageKey(key string) bool {
	for _, k := range AllPageKeys() {
		if k == key {
			return true
		}
	}
	return false
}
