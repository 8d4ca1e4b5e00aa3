// cmd/meridian-seed/main.go
//
// Standalone seeding tool. Connects to MongoDB once, runs every seeding
// task in order, prints a per-task pass/fail summary, and exits nonzero
// iff any task failed. Safe to re-run: every task is idempotent.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"

	"github.com/meridian-compliance/meridian/internal/app/bootstrap"
	"github.com/meridian-compliance/meridian/internal/app/system/seeding"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(logger *zap.Logger) error {
	_, appCfg, err := bootstrap.LoadConfig(logger)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := wafflemongo.ConnectWithPool(ctx, appCfg.MongoURI, appCfg.MongoDatabase, wafflemongo.DefaultPoolConfig())
	if err != nil {
		return fmt.Errorf("connect to MongoDB: %w", err)
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer disconnectCancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Warn("MongoDB disconnect failed", zap.Error(err))
		}
	}()

	db := client.Database(appCfg.MongoDatabase)

	admin := seeding.AdminSeed{
		FullName: appCfg.SeedAdminName,
		Email:    appCfg.SeedAdminEmail,
		Password: appCfg.SeedAdminPassword,
	}

	tasks := seeding.Tasks(db, admin)
	if admin.Email == "" {
		filtered := tasks[:0]
		for _, task := range tasks {
			if task.Name != "admin-user" {
				filtered = append(filtered, task)
			}
		}
		tasks = filtered
		fmt.Println("skip admin-user (no seed_admin_email configured)")
	}

	summary := seeding.RunAll(ctx, logger, tasks)

	for _, res := range summary.Results {
		if res.Err != nil {
			fmt.Printf("FAIL %-18s %v\n", res.Name, res.Err)
		} else {
			fmt.Printf("ok   %s\n", res.Name)
		}
	}
	fmt.Printf("%d tasks, %d failed\n", summary.Total, summary.Failed)

	if summary.Failed > 0 {
		return fmt.Errorf("seeding failed")
	}
	return nil
}
