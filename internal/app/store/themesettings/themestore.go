// internal/app/store/themesettings/themestore.go
package themestore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meridian-compliance/meridian/internal/domain/models"
)

// Store provides access to the theme_settings collection (singleton document).
type Store struct {
	c *mongo.Collection
}

// New creates a new theme settings store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("theme_settings")}
}

// Get returns the theme settings with defaults filled in for any missing
// color, so callers always get a complete palette.
func (s *Store) Get(ctx context.Context) (*models.ThemeSettings, error) {
	var settings models.ThemeSettings
	filter := bson.M{"singleton": true}
	err := s.c.FindOne(ctx, filter).Decode(&settings)
	if err != nil && err != mongo.ErrNoDocuments {
		return nil, err
	}
	if settings.PrimaryColor == "" {
		settings.PrimaryColor = models.DefaultPrimaryColor
	}
	if settings.SecondaryColor == "" {
		settings.SecondaryColor = models.DefaultSecondaryColor
	}
	if settings.AccentColor == "" {
		settings.AccentColor = models.DefaultAccentColor
	}
	return &settings, nil
}

// Save upserts the theme settings document.
func (s *Store) Save(ctx context.Context, settings models.ThemeSettings) error {
	now := time.Now().UTC()
	settings.UpdatedAt = &now

	filter := bson.M{"singleton": true}
	update := bson.M{
		"$set": bson.M{
			"singleton":       true,
			"primary_color":   settings.PrimaryColor,
			"secondary_color": settings.SecondaryColor,
			"accent_color":    settings.AccentColor,
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

// Exists checks if theme settings have been saved.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"singleton": true})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
