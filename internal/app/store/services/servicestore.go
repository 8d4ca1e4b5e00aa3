// internal/app/store/services/servicestore.go
package servicestore

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meridian-compliance/meridian/internal/app/store/storeutil"
	"github.com/meridian-compliance/meridian/internal/domain/models"
)

// Store provides access to the services collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new service store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("services")}
}

// ListOptions controls List filtering and pagination.
type ListOptions struct {
	Page       int64
	Limit      int64
	Search     string // case-insensitive match on the hero title
	ActiveOnly bool   // public callers only see active services
}

// List returns one page of services ordered by display order, plus the
// total count for pagination.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]models.Service, int64, error) {
	filter := bson.M{}
	if opts.ActiveOnly {
		filter["is_active"] = true
	}
	if opts.Search != "" {
		filter["hero_title"] = bson.M{
			"$regex":   regexp.QuoteMeta(opts.Search),
			"$options": "i",
		}
	}

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := storeutil.Paginate(opts.Limit, opts.Page).
		SetSort(bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: 1}})

	cur, err := s.c.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var services []models.Service
	if err := cur.All(ctx, &services); err != nil {
		return nil, 0, err
	}
	return services, total, nil
}

// ListActive returns every active service in display order, unpaginated.
// Used by the public services page and the home page strip.
func (s *Store) ListActive(ctx context.Context) ([]models.Service, error) {
	findOpts := options.Find().
		SetSort(bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: 1}})

	cur, err := s.c.Find(ctx, bson.M{"is_active": true}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var services []models.Service
	if err := cur.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// GetBySlug returns the service with the given slug, or nil if none exists.
func (s *Store) GetBySlug(ctx context.Context, slug string) (*models.Service, error) {
	var svc models.Service
	err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&svc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

// GetByID returns the service with the given ID, or nil if none exists.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	var svc models.Service
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&svc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

// Create inserts a new service and returns it with the assigned ID.
func (s *Store) Create(ctx context.Context, svc models.Service) (*models.Service, error) {
	svc.ID = primitive.NewObjectID()
	svc.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// Update replaces the editable fields of a service. Returns the updated
// document, or nil if no service has that ID.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, svc models.Service) (*models.Service, error) {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"slug":             svc.Slug,
			"hero_title":       svc.HeroTitle,
			"hero_description": svc.HeroDescription,
			"hero_image":       svc.HeroImage,
			"is_active":        svc.IsActive,
			"order":            svc.Order,
			"updated_at":       &now,
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Service
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a service. Returns true if a document was deleted.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// SlugExists reports whether a slug is taken by a service other than excludeID.
// Pass primitive.NilObjectID when creating.
func (s *Store) SlugExists(ctx context.Context, slug string, excludeID primitive.ObjectID) (bool, error) {
	filter := bson.M{"slug": slug}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	count, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
