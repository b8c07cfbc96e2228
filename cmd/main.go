package main

import (
	"context"
	"os"

	"github.com/orgball2608/pixelfed-scraper/internal/app"
	"github.com/orgball2608/pixelfed-scraper/pkg/logger"
	"go.uber.org/fx"
)

func main() {
	log := logger.New(logger.Opts{Env: os.Getenv("APP_ENV")})

	application := fx.New(
		fx.Logger(log),
		app.Module,
	)

	// Start the application
	if err := application.Start(context.Background()); err != nil {
		log.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	// Wait for the run to finish or for an interrupt signal
	signal := <-application.Wait()

	// Gracefully shutdown the application
	if err := application.Stop(context.Background()); err != nil {
		log.Error("Failed to stop application", "error", err)
		os.Exit(1)
	}

	log.Flush()
	os.Exit(signal.ExitCode)
}
