package tasks_test

import (
	"testing"
	"time"

	"go.uber.org/zap"

	blogstore "github.com/meridian-compliance/meridian/internal/app/store/blog"
	"github.com/meridian-compliance/meridian/internal/app/system/tasks"
	"github.com/meridian-compliance/meridian/internal/domain/models"
	"github.com/meridian-compliance/meridian/internal/testutil"
)

func TestScheduledPublishJob(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := blogstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	past := time.Now().UTC().Add(-1 * time.Hour)
	future := time.Now().UTC().Add(1 * time.Hour)

	due, err := store.Create(ctx, models.BlogPost{
		Title:       "Due Post",
		Slug:        "due-post",
		Status:      models.PostStatusScheduled,
		PublishedAt: &past,
	})
	if err != nil {
		t.Fatalf("Create(due) error = %v", err)
	}

	notDue, err := store.Create(ctx, models.BlogPost{
		Title:       "Future Post",
		Slug:        "future-post",
		Status:      models.PostStatusScheduled,
		PublishedAt: &future,
	})
	if err != nil {
		t.Fatalf("Create(notDue) error = %v", err)
	}

	job := tasks.ScheduledPublishJob(db, zap.NewNop())
	if err := job.Run(ctx); err != nil {
		t.Fatalf("job.Run() error = %v", err)
	}

	got, err := store.GetByID(ctx, due.ID)
	if err != nil {
		t.Fatalf("GetByID(due) error = %v", err)
	}
	if got.Status != models.PostStatusPublished {
		t.Errorf("due post status = %q, want %q", got.Status, models.PostStatusPublished)
	}

	got, err = store.GetByID(ctx, notDue.ID)
	if err != nil {
		t.Fatalf("GetByID(notDue) error = %v", err)
	}
	if got.Status != models.PostStatusScheduled {
		t.Errorf("future post status = %q, want %q", got.Status, models.PostStatusScheduled)
	}
}
