// internal/app/store/companysettings/companystore.go
package companystore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meridian-compliance/meridian/internal/domain/models"
)

// Store provides access to the company_settings collection.
// There is a single settings document per site.
type Store struct {
	c *mongo.Collection
}

// New creates a new company settings store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("company_settings")}
}

// Get returns the company settings.
// If no settings exist, returns defaults so pages always have a name and footer.
func (s *Store) Get(ctx context.Context) (*models.CompanySettings, error) {
	var settings models.CompanySettings
	filter := bson.M{"singleton": true}
	err := s.c.FindOne(ctx, filter).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return &models.CompanySettings{
			CompanyName: models.DefaultCompanyName,
			Tagline:     models.DefaultTagline,
			FooterHTML:  models.DefaultFooterHTML,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	if settings.CompanyName == "" {
		settings.CompanyName = models.DefaultCompanyName
	}
	if settings.FooterHTML == "" {
		settings.FooterHTML = models.DefaultFooterHTML
	}
	return &settings, nil
}

// Save upserts the company settings document.
func (s *Store) Save(ctx context.Context, settings models.CompanySettings) error {
	now := time.Now().UTC()
	settings.UpdatedAt = &now

	filter := bson.M{"singleton": true}
	update := bson.M{
		"$set": bson.M{
			"singleton":       true,
			"company_name":    settings.CompanyName,
			"tagline":         settings.Tagline,
			"logo_path":       settings.LogoPath,
			"logo_name":       settings.LogoName,
			"contact_email":   settings.ContactEmail,
			"contact_phone":   settings.ContactPhone,
			"address":         settings.Address,
			"linkedin_url":    settings.LinkedInURL,
			"twitter_url":     settings.TwitterURL,
			"footer_html":     settings.FooterHTML,
			"updated_at":      settings.UpdatedAt,
			"updated_by_id":   settings.UpdatedByID,
			"updated_by_name": settings.UpdatedByName,
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}

// Exists checks if settings have been saved.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"singleton": true})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
