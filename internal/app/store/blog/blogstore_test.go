package blogstore

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/meridian-compliance/meridian/internal/domain/models"
	"github.com/meridian-compliance/meridian/internal/testutil"
)

func seedPost(t *testing.T, s *Store, slug, category, status string, publishedAt *time.Time) *models.BlogPost {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	post, err := s.Create(ctx, models.BlogPost{
		Title:       slug,
		Slug:        slug,
		Category:    category,
		Status:      status,
		PublishedAt: publishedAt,
	})
	if err != nil {
		t.Fatalf("Create(%s) error = %v", slug, err)
	}
	return post
}

func hoursAgo(n int) *time.Time {
	ts := time.Now().UTC().Add(-time.Duration(n) * time.Hour)
	return &ts
}

func TestStore_List_PublishedOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seedPost(t, store, "published-1", "audits", models.PostStatusPublished, hoursAgo(2))
	seedPost(t, store, "published-2", "audits", models.PostStatusPublished, hoursAgo(1))
	seedPost(t, store, "draft-1", "audits", models.PostStatusDraft, nil)

	posts, total, err := store.List(ctx, ListOptions{Page: 1, Limit: 10, PublishedOnly: true})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 2 || len(posts) != 2 {
		t.Fatalf("List(published) = %d posts, total %d, want 2", len(posts), total)
	}
	// Newest first
	if posts[0].Slug != "published-2" {
		t.Errorf("posts[0].Slug = %q, want newest first", posts[0].Slug)
	}
}

func TestStore_List_CategoryFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seedPost(t, store, "a", "audits", models.PostStatusPublished, hoursAgo(1))
	seedPost(t, store, "b", "frameworks", models.PostStatusPublished, hoursAgo(1))

	posts, total, err := store.List(ctx, ListOptions{Page: 1, Limit: 10, Category: "frameworks", PublishedOnly: true})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 1 || posts[0].Slug != "b" {
		t.Errorf("List(category=frameworks) = %+v, total %d", posts, total)
	}
}

func TestStore_GetBySlug_PublishedOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seedPost(t, store, "draft-post", "audits", models.PostStatusDraft, nil)

	// Public view treats drafts as absent
	got, err := store.GetBySlug(ctx, "draft-post", true)
	if err != nil {
		t.Fatalf("GetBySlug(publishedOnly) error = %v", err)
	}
	if got != nil {
		t.Error("GetBySlug(publishedOnly) should hide drafts")
	}

	// Dashboard view sees them
	got, err = store.GetBySlug(ctx, "draft-post", false)
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if got == nil {
		t.Error("GetBySlug() without publishedOnly should find the draft")
	}
}

func TestStore_Related(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	self := seedPost(t, store, "self", "audits", models.PostStatusPublished, hoursAgo(4))
	seedPost(t, store, "same-1", "audits", models.PostStatusPublished, hoursAgo(3))
	seedPost(t, store, "same-2", "audits", models.PostStatusPublished, hoursAgo(2))
	seedPost(t, store, "same-3", "audits", models.PostStatusPublished, hoursAgo(1))
	seedPost(t, store, "other", "frameworks", models.PostStatusPublished, hoursAgo(1))
	seedPost(t, store, "same-draft", "audits", models.PostStatusDraft, nil)

	related, err := store.Related(ctx, "audits", self.ID, 2)
	if err != nil {
		t.Fatalf("Related() error = %v", err)
	}
	if len(related) != 2 {
		t.Fatalf("Related() = %d posts, want the cap of 2", len(related))
	}
	// Newest first, self and drafts excluded
	if related[0].Slug != "same-3" || related[1].Slug != "same-2" {
		t.Errorf("Related() order = [%s %s]", related[0].Slug, related[1].Slug)
	}
	for _, p := range related {
		if p.ID == self.ID {
			t.Error("Related() must exclude the post itself")
		}
	}
}

func TestStore_Featured(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	post := seedPost(t, store, "featured", "audits", models.PostStatusPublished, hoursAgo(1))
	flagged := *post
	flagged.IsFeatured = true
	if _, err := store.Update(ctx, post.ID, flagged); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	seedPost(t, store, "plain", "audits", models.PostStatusPublished, hoursAgo(1))

	featured, err := store.Featured(ctx, 3)
	if err != nil {
		t.Fatalf("Featured() error = %v", err)
	}
	if len(featured) != 1 || featured[0].Slug != "featured" {
		t.Errorf("Featured() = %+v", featured)
	}
}

func TestStore_Categories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seedPost(t, store, "a", "audits", models.PostStatusPublished, hoursAgo(1))
	seedPost(t, store, "b", "audits", models.PostStatusPublished, hoursAgo(1))
	seedPost(t, store, "c", "frameworks", models.PostStatusPublished, hoursAgo(1))
	seedPost(t, store, "d", "drafts-only", models.PostStatusDraft, nil)

	categories, err := store.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("Categories() = %v, want 2 distinct published categories", categories)
	}
	for _, c := range categories {
		if c == "drafts-only" {
			t.Error("Categories() should only cover published posts")
		}
	}
}

func TestStore_PublishDue(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	due := seedPost(t, store, "due", "audits", models.PostStatusScheduled, hoursAgo(1))
	future := time.Now().UTC().Add(1 * time.Hour)
	notDue := seedPost(t, store, "not-due", "audits", models.PostStatusScheduled, &future)
	draft := seedPost(t, store, "stay-draft", "audits", models.PostStatusDraft, hoursAgo(1))

	published, err := store.PublishDue(ctx, time.Now().UTC())
	if err != nil {
		t.Fatalf("PublishDue() error = %v", err)
	}
	if published != 1 {
		t.Errorf("PublishDue() = %d, want 1", published)
	}

	check := func(id primitive.ObjectID, want string) {
		t.Helper()
		got, err := store.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		if got.Status != want {
			t.Errorf("status = %q, want %q", got.Status, want)
		}
	}
	check(due.ID, models.PostStatusPublished)
	check(notDue.ID, models.PostStatusScheduled)
	check(draft.ID, models.PostStatusDraft)
}

func TestStore_SlugExists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	post := seedPost(t, store, "taken", "audits", models.PostStatusDraft, nil)

	exists, err := store.SlugExists(ctx, "taken", primitive.NilObjectID)
	if err != nil {
		t.Fatalf("SlugExists() error = %v", err)
	}
	if !exists {
		t.Error("SlugExists(taken) = false, want true")
	}

	exists, err = store.SlugExists(ctx, "taken", post.ID)
	if err != nil {
		t.Fatalf("SlugExists(exclude) error = %v", err)
	}
	if exists {
		t.Error("SlugExists(taken, excluding owner) = true, want false")
	}
}

func TestStore_FuturePublishedAtStaysHidden(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	future := time.Now().UTC().Add(2 * time.Hour)
	seedPost(t, store, "early", "audits", models.PostStatusPublished, &future)
	seedPost(t, store, "live", "audits", models.PostStatusPublished, hoursAgo(1))

	posts, total, err := store.List(ctx, ListOptions{Page: 1, Limit: 10, PublishedOnly: true})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 1 || len(posts) != 1 || posts[0].Slug != "live" {
		t.Fatalf("List(published) = %v (total %d), want only the live post", posts, total)
	}

	got, err := store.GetBySlug(ctx, "early", true)
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if got != nil {
		t.Error("future-dated post visible through public GetBySlug")
	}

	// Dashboard view still sees it
	got, err = store.GetBySlug(ctx, "early", false)
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if got == nil {
		t.Error("future-dated post hidden from unrestricted GetBySlug")
	}
}
