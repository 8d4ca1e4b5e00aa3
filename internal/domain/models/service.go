// internal/domain/models/service.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is one compliance service offering listed on the site.
// Slug uniqueness is enforced by a unique index on the services collection;
// public detail pages resolve by slug and 404 on a miss.
type Service struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Slug            string             `bson:"slug" json:"slug"`
	HeroTitle       string             `bson:"hero_title" json:"heroTitle"`
	HeroDescription string             `bson:"hero_description,omitempty" json:"heroDescription,omitempty"`
	HeroImage       string             `bson:"hero_image,omitempty" json:"heroImage,omitempty"`
	IsActive        bool               `bson:"is_active" json:"isActive"`
	Order           int                `bson:"order" json:"order"`

	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}
