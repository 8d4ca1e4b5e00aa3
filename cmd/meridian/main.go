// cmd/meridian/main.go
//
// Entry point for the Meridian web server. All application wiring lives
// in internal/app/bootstrap; WAFFLE drives the lifecycle from config
// loading through graceful shutdown.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dalemusser/waffle/app"

	"github.com/meridian-compliance/meridian/internal/app/bootstrap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, bootstrap.Hooks); err != nil {
		fmt.Fprintf(os.Stderr, "meridian: %v\n", err)
		os.Exit(1)
	}
}
