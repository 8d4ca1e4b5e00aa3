// internal/domain/models/pagesettings.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PageSettings is a per-page content document made of named sections.
// Sections and their fields are all optional: a page must render sensibly
// when the whole document is missing or when an individual field was never
// set. The defaults merge in internal/app/content/defaults handles that;
// nothing downstream of the merge sees a nil section.
type PageSettings struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PageKey string             `bson:"page_key" json:"pageKey"`

	Hero     *HeroSection     `bson:"hero,omitempty" json:"hero,omitempty"`
	Stats    []Stat           `bson:"stats,omitempty" json:"stats,omitempty"`
	Founders *FoundersSection `bson:"founders,omitempty" json:"founders,omitempty"`
	Values   []ValueItem      `bson:"values,omitempty" json:"values,omitempty"`
	FAQ      *FAQSection      `bson:"faq,omitempty" json:"faq,omitempty"`
	CTA      *CTASection      `bson:"cta,omitempty" json:"cta,omitempty"`
	Contact  *ContactSection  `bson:"contact,omitempty" json:"contact,omitempty"`

	UpdatedAt     *time.Time          `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
	UpdatedByID   *primitive.ObjectID `bson:"updated_by_id,omitempty" json:"-"`
	UpdatedByName string              `bson:"updated_by_name,omitempty" json:"-"`
}

// HeroSection is the banner at the top of a page.
type HeroSection struct {
	Eyebrow  string `bson:"eyebrow,omitempty" json:"eyebrow,omitempty"`
	Title    string `bson:"title,omitempty" json:"title,omitempty"`
	Subtitle string `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Image    string `bson:"image,omitempty" json:"image,omitempty"`
}

// Stat is one entry in a statistics strip (e.g. "7+ years").
type Stat struct {
	Value string `bson:"value,omitempty" json:"value,omitempty"`
	Label string `bson:"label,omitempty" json:"label,omitempty"`
}

// FoundersSection introduces the founding team on the about page.
type FoundersSection struct {
	Heading string       `bson:"heading,omitempty" json:"heading,omitempty"`
	Intro   string       `bson:"intro,omitempty" json:"intro,omitempty"`
	Members []FounderBio `bson:"members,omitempty" json:"members,omitempty"`
}

// FounderBio is a single team member biography.
type FounderBio struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Title string `bson:"title,omitempty" json:"title,omitempty"`
	Bio   string `bson:"bio,omitempty" json:"bio,omitempty"`
	Photo string `bson:"photo,omitempty" json:"photo,omitempty"`
}

// ValueItem is a card in a feature/values grid. Icon is a symbolic name
// resolved through the icon table at render time.
type ValueItem struct {
	Icon        string `bson:"icon,omitempty" json:"icon,omitempty"`
	Title       string `bson:"title,omitempty" json:"title,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// FAQSection is a heading plus an ordered list of question/answer pairs.
type FAQSection struct {
	Heading string    `bson:"heading,omitempty" json:"heading,omitempty"`
	Items   []FAQItem `bson:"items,omitempty" json:"items,omitempty"`
}

// FAQItem is one accordion entry.
type FAQItem struct {
	Question string `bson:"question,omitempty" json:"question,omitempty"`
	Answer   string `bson:"answer,omitempty" json:"answer,omitempty"`
}

// CTAButton is a call-to-action link.
type CTAButton struct {
	Text string `bson:"text,omitempty" json:"text,omitempty"`
	Link string `bson:"link,omitempty" json:"link,omitempty"`
}

// CTASection is the closing call-to-action band. Two stored shapes exist:
// the current Buttons slice and the older flat PrimaryButton*/SecondaryButton*
// fields. Documents written before the buttons migration still carry the flat
// fields, so both decode; the defaults merge normalizes the flat shape into
// Buttons before anything renders.
type CTASection struct {
	Title    string      `bson:"title,omitempty" json:"title,omitempty"`
	Subtitle string      `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Buttons  []CTAButton `bson:"buttons,omitempty" json:"buttons,omitempty"`

	// Legacy flat shape, pre-buttons-array documents.
	PrimaryButtonText   string `bson:"primary_button_text,omitempty" json:"primaryButtonText,omitempty"`
	PrimaryButtonLink   string `bson:"primary_button_link,omitempty" json:"primaryButtonLink,omitempty"`
	SecondaryButtonText string `bson:"secondary_button_text,omitempty" json:"secondaryButtonText,omitempty"`
	SecondaryButtonLink string `bson:"secondary_button_link,omitempty" json:"secondaryButtonLink,omitempty"`
}

// ContactSection holds the contact details shown on the contact page.
type ContactSection struct {
	Heading string `bson:"heading,omitempty" json:"heading,omitempty"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
}
