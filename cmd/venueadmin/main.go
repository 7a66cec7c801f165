package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/soft-boni/admin-panel-venue-proximity/docs"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/app"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/config"
)

// @title Venue Proximity Admin API
// @version 1.0
// @description Admin dashboard backend for venue discovery.
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.New()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		logger.Error("invalid log level", "error", err)
		os.Exit(1)
	}
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	application, err := app.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to create application", "error", err)
		os.Exit(1)
	}

	if err := application.Run(context.Background()); err != nil {
		logger.Error("application finished with error", "error", err)
		os.Exit(1)
	}
}
