// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/meridian-compliance/meridian/internal/app/content/meta"
	"github.com/meridian-compliance/meridian/internal/app/resources"
	"github.com/meridian-compliance/meridian/internal/app/system/seeding"
	"github.com/meridian-compliance/meridian/internal/app/system/tasks"
)

// Startup runs once after DB connections and schema/index setup are complete,
// but before the HTTP handler is built and requests are served.
//
// It loads shared templates, fixes the site origin for canonical URLs, seeds
// default content idempotently, and starts the background task runner.
//
// Returning a non-nil error aborts startup and prevents the server from
// starting.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	meta.SetBaseURL(appCfg.BaseURL)

	if err := runSeeding(ctx, appCfg, deps.MongoDatabase, logger); err != nil {
		return err
	}

	startTaskRunner(deps.MongoDatabase, logger)

	return nil
}

// runSeeding creates the default documents a fresh install needs. Every
// task is idempotent, so re-running on each boot is safe. The admin task
// only runs when seed credentials are configured.
func runSeeding(ctx context.Context, appCfg AppConfig, db *mongo.Database, logger *zap.Logger) error {
	admin := seeding.AdminSeed{
		FullName: appCfg.SeedAdminName,
		Email:    appCfg.SeedAdminEmail,
		Password: appCfg.SeedAdminPassword,
	}

	all := seeding.Tasks(db, admin)
	if admin.Email == "" {
		filtered := all[:0]
		for _, task := range all {
			if task.Name != "admin-user" {
				filtered = append(filtered, task)
			}
		}
		all = filtered
	}

	summary := seeding.RunAll(ctx, logger, all)
	if summary.Failed > 0 {
		for _, res := range summary.Results {
			if res.Err != nil {
				logger.Error("seed task failed during startup",
					zap.String("task", res.Name),
					zap.Error(res.Err))
			}
		}
		return fmt.Errorf("seeding: %d of %d tasks failed", summary.Failed, summary.Total)
	}

	return nil
}

// taskRunner is the global task runner instance, used for graceful shutdown.
var taskRunner *tasks.Runner

// startTaskRunner initializes and starts the background task runner.
func startTaskRunner(db *mongo.Database, logger *zap.Logger) {
	taskRunner = tasks.New(logger)

	// Flip due scheduled blog posts to published
	taskRunner.Register(tasks.ScheduledPublishJob(db, logger))

	// Purge expired OAuth state tokens
	taskRunner.Register(tasks.OAuthStateCleanupJob(db, logger))

	taskRunner.Start()
}
