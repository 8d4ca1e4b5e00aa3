// internal/app/store/emailconfig/emailconfigstore.go
package emailconfigstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meridian-compliance/meridian/internal/domain/models"
)

// Store provides access to the email_config collection (singleton document).
type Store struct {
	c *mongo.Collection
}

// New creates a new email config store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("email_config")}
}

// Get returns the stored email configuration, or nil if none has been
// saved yet. Callers treat nil as "email not configured".
func (s *Store) Get(ctx context.Context) (*models.EmailConfig, error) {
	var cfg models.EmailConfig
	filter := bson.M{"singleton": true}
	err := s.c.FindOne(ctx, filter).Decode(&cfg)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save upserts the email configuration. An empty SMTPPass keeps the stored
// password, so the dashboard form never needs to echo it back.
func (s *Store) Save(ctx context.Context, cfg models.EmailConfig) error {
	now := time.Now().UTC()
	cfg.UpdatedAt = &now

	set := bson.M{
		"singleton":       true,
		"smtp_host":       cfg.SMTPHost,
		"smtp_port":       cfg.SMTPPort,
		"smtp_user":       cfg.SMTPUser,
		"from":            cfg.From,
		"from_name":       cfg.FromName,
		"updated_at":      cfg.UpdatedAt,
		"updated_by_id":   cfg.UpdatedByID,
		"updated_by_name": cfg.UpdatedByName,
	}
	if cfg.SMTPPass != "" {
		set["smtp_pass"] = cfg.SMTPPass
	}

	filter := bson.M{"singleton": true}
	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}
