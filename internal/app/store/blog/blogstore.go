// internal/app/store/blog/blogstore.go
package blogstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meridian-compliance/meridian/internal/app/store/storeutil"
	"github.com/meridian-compliance/meridian/internal/domain/models"
)

// Store provides access to the blog_posts collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new blog store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("blog_posts")}
}

// publishedFilter matches posts that are live right now: status published
// and a publish time that is not in the future. Both write paths stamp
// published_at when a post goes live, and the scheduled-publish sweep only
// flips due posts, so the time guard is a backstop for posts written as
// published with a future date.
func publishedFilter() bson.M {
	return bson.M{
		"status":       models.PostStatusPublished,
		"published_at": bson.M{"$lte": time.Now().UTC()},
	}
}

// ListOptions controls List filtering and pagination.
type ListOptions struct {
	Page          int64
	Limit         int64
	Category      string
	Status        string // empty means any status (dashboard view)
	PublishedOnly bool   // public callers only see published posts
}

// List returns one page of posts, newest first, plus the total count.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]models.BlogPost, int64, error) {
	filter := bson.M{}
	if opts.PublishedOnly {
		filter = publishedFilter()
	} else if opts.Status != "" {
		filter["status"] = opts.Status
	}
	if opts.Category != "" {
		filter["category"] = opts.Category
	}

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := storeutil.Paginate(opts.Limit, opts.Page).
		SetSort(bson.D{{Key: "published_at", Value: -1}, {Key: "created_at", Value: -1}})

	cur, err := s.c.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var posts []models.BlogPost
	if err := cur.All(ctx, &posts); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// GetBySlug returns the post with the given slug, or nil if none exists.
// With publishedOnly set, drafts and scheduled posts are treated as absent.
func (s *Store) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.BlogPost, error) {
	filter := bson.M{"slug": slug}
	if publishedOnly {
		for k, v := range publishedFilter() {
			filter[k] = v
		}
	}

	var post models.BlogPost
	err := s.c.FindOne(ctx, filter).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetByID returns the post with the given ID, or nil if none exists.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error) {
	var post models.BlogPost
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Related returns up to limit published posts in the same category,
// excluding the post itself, newest first.
func (s *Store) Related(ctx context.Context, category string, excludeID primitive.ObjectID, limit int64) ([]models.BlogPost, error) {
	filter := publishedFilter()
	filter["category"] = category
	filter["_id"] = bson.M{"$ne": excludeID}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "published_at", Value: -1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []models.BlogPost
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Featured returns up to limit published posts flagged as featured,
// newest first. Used by the home page.
func (s *Store) Featured(ctx context.Context, limit int64) ([]models.BlogPost, error) {
	filter := publishedFilter()
	filter["is_featured"] = true

	findOpts := options.Find().
		SetSort(bson.D{{Key: "published_at", Value: -1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []models.BlogPost
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Categories returns the distinct categories of published posts.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	raw, err := s.c.Distinct(ctx, "category", publishedFilter())
	if err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(raw))
	for _, v := range raw {
		if str, ok := v.(string); ok && str != "" {
			categories = append(categories, str)
		}
	}
	return categories, nil
}

// Create inserts a new post and returns it with the assigned ID.
func (s *Store) Create(ctx context.Context, post models.BlogPost) (*models.BlogPost, error) {
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Update replaces the editable fields of a post. Returns the updated
// document, or nil if no post has that ID.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, post models.BlogPost) (*models.BlogPost, error) {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"title":          post.Title,
			"slug":           post.Slug,
			"subtitle":       post.Subtitle,
			"description":    post.Description,
			"content":        post.Content,
			"category":       post.Category,
			"tags":           post.Tags,
			"featured_image": post.FeaturedImage,
			"status":         post.Status,
			"is_featured":    post.IsFeatured,
			"published_at":   post.PublishedAt,
			"updated_at":     &now,
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.BlogPost
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a post. Returns true if a document was deleted.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// PublishDue flips scheduled posts whose publish time has arrived to
// published. Returns the number of posts published. Called by the
// scheduled-publish background job.
func (s *Store) PublishDue(ctx context.Context, now time.Time) (int64, error) {
	filter := bson.M{
		"status":       models.PostStatusScheduled,
		"published_at": bson.M{"$lte": now},
	}
	update := bson.M{
		"$set": bson.M{"status": models.PostStatusPublished},
	}

	res, err := s.c.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// SlugExists reports whether a slug is taken by a post other than excludeID.
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
