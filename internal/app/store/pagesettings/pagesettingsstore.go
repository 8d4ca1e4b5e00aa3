// internal/app/store/pagesettings/pagesettingsstore.go
package pagesettingsstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meridian-compliance/meridian/internal/domain/models"
)

// Store provides access to the page_settings collection. One document per
// page key holding that page's editable sections.
type Store struct {
	c *mongo.Collection
}

// New creates a new page settings store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("page_settings")}
}

// GetByPageKey returns the settings document for a page, or nil if none has
// been saved yet. A nil result is normal for a fresh install; the defaults
// merge fills in every section.
func (s *Store) GetByPageKey(ctx context.Context, pageKey string) (*models.PageSettings, error) {
	var settings models.PageSettings
	err := s.c.FindOne(ctx, bson.M{"page_key": pageKey}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Upsert replaces the stored sections for a page. Sections are written
// whole: the editor always submits the full document, so a save is
// last-writer-wins at page granularity.
func (s *Store) Upsert(ctx context.Context, settings models.PageSettings) error {
	now := time.Now().UTC()
	settings.UpdatedAt = &now

	filter := bson.M{"page_key": settings.PageKey}
	update := bson.M{
		"$set": bson.M{
			"page_key":        settings.PageKey,
			"hero":            settings.Hero,
			"stats":           settings.Stats,
			"founders":        settings.Founders,
			"values":          settings.Values,
			"faq":             settings.FAQ,
			"cta":             settings.CTA,
			"contact":         settings.Contact,
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
