// internal/domain/models/themesettings.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ThemeSettings is the singleton visual-theme document. The layout injects
// the colors as CSS custom properties so an edit takes effect on the next
// page load without a deploy.
type ThemeSettings struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	PrimaryColor   string `bson:"primary_color,omitempty" json:"primaryColor,omitempty"`
	SecondaryColor string `bson:"secondary_color,omitempty" json:"secondaryColor,omitempty"`
	AccentColor    string `bson:"accent_color,omitempty" json:"accentColor,omitempty"`

	UpdatedAt     *time.Time          `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
	UpdatedByID   *primitive.ObjectID `bson:"updated_by_id,omitempty" json:"-"`
	UpdatedByName string              `bson:"updated_by_name,omitempty" json:"-"`
}

// Theme defaults.
const (
	DefaultPrimaryColor   = "#0f3d5c"
	DefaultSecondaryColor = "#1c6e8c"
	DefaultAccentColor    = "#e8a33d"
)
