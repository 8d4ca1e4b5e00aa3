// internal/domain/models/companysettings.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CompanySettings holds site-wide company details edited by admins.
// Singleton document: only one exists per site.
type CompanySettings struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	CompanyName string `bson:"company_name" json:"companyName"`
	Tagline     string `bson:"tagline,omitempty" json:"tagline,omitempty"`

	// Logo (file upload)
	LogoPath string `bson:"logo_path,omitempty" json:"logoPath,omitempty"`
	LogoName string `bson:"logo_name,omitempty" json:"logoName,omitempty"`

	// Contact details, also surfaced through /api/settings/public
	ContactEmail string `bson:"contact_email,omitempty" json:"contactEmail,omitempty"`
	ContactPhone string `bson:"contact_phone,omitempty" json:"contactPhone,omitempty"`
	Address      string `bson:"address,omitempty" json:"address,omitempty"`

	// Social profile URLs, used in the footer and Organization JSON-LD sameAs
	LinkedInURL string `bson:"linkedin_url,omitempty" json:"linkedinUrl,omitempty"`
	TwitterURL  string `bson:"twitter_url,omitempty" json:"twitterUrl,omitempty"`

	FooterHTML string `bson:"footer_html,omitempty" json:"footerHtml,omitempty"`

	UpdatedAt     *time.Time          `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
	UpdatedByID   *primitive.ObjectID `bson:"updated_by_id,omitempty" json:"-"`
	UpdatedByName string              `bson:"updated_by_name,omitempty" json:"-"`
}

// HasLogo returns true if a logo has been uploaded.
func (s *CompanySettings) HasLogo() bool {
	return s.LogoPath != ""
}

// DefaultCompanyName is used when no settings document exists yet.
const DefaultCompanyName = "Meridian Compliance"

// DefaultTagline is the default company tagline.
const DefaultTagline = "Compliance, handled."

// DefaultFooterHTML is the default footer text.
const DefaultFooterHTML = "© Meridian Compliance. All rights reserved."
