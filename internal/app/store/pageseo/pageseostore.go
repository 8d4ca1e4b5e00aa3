// internal/app/store/pageseo/pageseostore.go
package pageseostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meridian-compliance/meridian/internal/domain/models"
)

// Store provides access to the page_seo collection. One document per page
// key, keyed by the page_key unique index.
type Store struct {
	c *mongo.Collection
}

// New creates a new page SEO store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("page_seo")}
}

// GetByPageKey returns the SEO document for a page, or nil if none has been
// saved yet. Callers fall back to company-level defaults for missing fields.
func (s *Store) GetByPageKey(ctx context.Context, pageKey string) (*models.PageSEO, error) {
	var seo models.PageSEO
	err := s.c.FindOne(ctx, bson.M{"page_key": pageKey}).Decode(&seo)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &seo, nil
}

// All returns the SEO documents for every page that has one, keyed by page key.
func (s *Store) All(ctx context.Context) (map[string]models.PageSEO, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make(map[string]models.PageSEO)
	for cur.Next(ctx) {
		var seo models.PageSEO
		if err := cur.Decode(&seo); err != nil {
			return nil, err
		}
		out[seo.PageKey] = seo
	}
	return out, cur.Err()
}

// Upsert saves the SEO document for a page, creating it on first save.
func (s *Store) Upsert(ctx context.Context, seo models.PageSEO) error {
	now := time.Now().UTC()
	seo.UpdatedAt = &now

	filter := bson.M{"page_key": seo.PageKey}
	update := bson.M{
		"$set": bson.M{
			"page_key":         seo.PageKey,
			"meta_title":       seo.MetaTitle,
			"meta_description": seo.MetaDescription,
			"keywords":         seo.Keywords,
			"og_image":         seo.OGImage,
			"updated_at":       seo.UpdatedAt,
			"updated_by_id":    seo.UpdatedByID,
			"updated_by_name":  seo.UpdatedByName,
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}
