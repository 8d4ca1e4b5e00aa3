// Package loader fetches the per-page content and SEO documents for a
// page key. The two reads run concurrently; a failed or empty read
// resolves its slot to nil and the page renders from defaults.
package loader

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	pagesettingsstore "github.com/meridian-compliance/meridian/internal/app/store/pagesettings"
	pageseostore "github.com/meridian-compliance/meridian/internal/app/store/pageseo"
	"github.com/meridian-compliance/meridian/internal/app/system/timeouts"
	"github.com/meridian-compliance/meridian/internal/domain/models"
)

// PageData holds both documents for one page. Either slot may be nil:
// nothing saved yet, or the read failed. Downstream code must treat nil
// as "use defaults", never as an error.
type PageData struct {
	Settings *models.PageSettings
	SEO      *models.PageSEO
}

// Loader loads page data. One Load call per request covers every
// consumer of the documents (metadata, body, JSON-LD), so each document
// is fetched at most once per request.
type Loader struct {
	settings *pagesettingsstore.Store
	seo      *pageseostore.Store
	logger   *zap.Logger
}

// New creates a Loader over the given database.
func New(db *mongo.Database, logger *zap.Logger) *Loader {
	return &Loader{
		settings: pagesettingsstore.New(db),
		seo:      pageseostore.New(db),
		logger:   logger,
	}
}

// Load fetches the settings and SEO documents for pageKey concurrently.
// Errors are logged and leave the slot nil; one document failing never
// hides the other.
func (l *Loader) Load(ctx context.Context, pageKey string) PageData {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()

	var data PageData
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		settings, err := l.settings.GetByPageKey(ctx, pageKey)
		if err != nil {
			l.logger.Warn("failed to load page settings",
				zap.String("page_key", pageKey),
				zap.Error(err))
			return
		}
		data.Settings = settings
	}()

	go func() {
		defer wg.Done()
		seo, err := l.seo.GetByPageKey(ctx, pageKey)
		if err != nil {
			l.logger.Warn("failed to load page seo",
				zap.String("page_key", pageKey),
				zap.Error(err))
			return
		}
		data.SEO = seo
	}()

	wg.Wait()
	return data
}
