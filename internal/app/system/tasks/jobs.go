// internal/app/system/tasks/jobs.go
package tasks

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	blogstore "github.com/meridian-compliance/meridian/internal/app/store/blog"
)

// ScheduledPublishJob creates a job that flips scheduled blog posts to
// published once their publish time arrives. Runs every minute so a post
// scheduled for 9:00 goes live within a minute of 9:00.
func ScheduledPublishJob(db *mongo.Database, logger *zap.Logger) Job {
	store := blogstore.New(db)
	return Job{
		Name:     "scheduled-publish",
		Interval: 1 * time.Minute,
		Run: func(ctx context.Context) error {
			published, err := store.PublishDue(ctx, time.Now().UTC())
			if err != nil {
				return err
			}
			if published > 0 {
				logger.Info("published scheduled posts",
					zap.Int64("count", published))
			}
			return nil
		},
	}
}

// OAuthStateCleanupJob creates a job that removes expired OAuth state tokens.
// The TTL index reaps these too, but only eventually; this keeps the
// collection small between TTL passes.
func OAuthStateCleanupJob(db *mongo.Database, logger *zap.Logger) Job {
	return Job{
		Name:     "oauth-state-cleanup",
		Interval: 1 * time.Hour,
		Run: func(ctx context.Context) error {
			coll := db.Collection("oauth_states")
			result, err := coll.DeleteMany(ctx, bson.M{
				"expires_at": bson.M{"$lt": time.Now()},
			})
			if err != nil {
				return err
			}
			if result.DeletedCount > 0 {
				logger.Info("cleaned up expired oauth states",
					zap.Int64("deleted", result.DeletedCount))
			}
			return nil
		},
	}
}
