// internal/domain/models/blogpost.go
package models

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog post statuses.
const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
)

// BlogPost is an article on the site blog.
type BlogPost struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title         string             `bson:"title" json:"title"`
	Slug          string             `bson:"slug" json:"slug"`
	Subtitle      string             `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Content       string             `bson:"content,omitempty" json:"content,omitempty"` // sanitized HTML
	Category      string             `bson:"category,omitempty" json:"category,omitempty"`
	Tags          []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	FeaturedImage FeaturedImage      `bson:"featured_image,omitempty" json:"featuredImage,omitempty"`
	Status        string             `bson:"status" json:"status"`
	IsFeatured    bool               `bson:"is_featured" json:"isFeatured"`

	PublishedAt *time.Time `bson:"published_at,omitempty" json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt   *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// IsPublished reports whether the post is publicly visible.
func (p *BlogPost) IsPublished() bool {
	return p.Status == PostStatusPublished
}

// FeaturedImage is the post's cover image URL. Older documents stored it as
// a bare string, newer ones as an embedded {url: "..."} document; both shapes
// decode from BSON and JSON. It always encodes back out as a plain string.
type FeaturedImage struct {
	URL string
}

// IsZero lets bson's omitempty skip the field when no image is set.
func (f FeaturedImage) IsZero() bool {
	return f.URL == ""
}

// MarshalJSON writes the image as a plain string.
func (f FeaturedImage) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.URL)
}

// UnmarshalJSON accepts either "https://..." or {"url": "https://..."}.
func (f *FeaturedImage) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.URL = s
		return nil
	}
	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	f.URL = obj.URL
	return nil
}

// MarshalBSONValue stores the image as a plain string.
func (f FeaturedImage) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(f.URL)
}

// UnmarshalBSONValue accepts a string, an embedded {url} document, or null.
func (f *FeaturedImage) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.String:
		f.URL = rv.StringValue()
		return nil
	case bsontype.EmbeddedDocument:
		var obj struct {
			URL string `bson:"url"`
		}
		if err := rv.Unmarshal(&obj); err != nil {
			return err
		}
		f.URL = obj.URL
		return nil
	case bsontype.Null, bsontype.Undefined:
		f.URL = ""
		return nil
	}
	return fmt.Errorf("featured_image: cannot decode BSON type %s", t)
}
