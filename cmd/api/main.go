// Command api is the Scoracle Hockey fantasy scoring API server.
//
// Usage:
//
//	scoracle-hockey-api
//	SNAPSHOT_SOURCE=postgres DATABASE_URL=postgres://... scoracle-hockey-api

// @title Scoracle Hockey Fantasy API
// @version 1.0.0
// @description Custom fantasy hockey scoring over a static season snapshot: weighted fantasy points, merged skater/goalie rankings, position and team aggregates, dashboard views, and CSV export.
// @host localhost:8000
// @BasePath /
// @schemes http https
// @contact.name Scoracle
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/scoracle-hockey/internal/api"
	"github.com/albapepper/scoracle-hockey/internal/cache"
	"github.com/albapepper/scoracle-hockey/internal/config"
	"github.com/albapepper/scoracle-hockey/internal/db"
	"github.com/albapepper/scoracle-hockey/internal/snapshot"

	_ "github.com/albapepper/scoracle-hockey/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Load the snapshot once; every request scores this copy.
	src, closeSrc, err := db.OpenSource(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open snapshot source", "error", err)
		os.Exit(1)
	}
	snap, err := snapshot.Load(ctx, src, logger)
	closeSrc()
	if err != nil {
		logger.Error("Failed to load snapshot", "error", err)
		os.Exit(1)
	}

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	defer appCache.Close()
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Create router
	router := api.NewRouter(snap, appCache, cfg, logger)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Scoracle Hockey API",
			"addr", addr,
			"environment", cfg.Environment,
			"rounding", cfg.Rounding.String(),
			"snapshot", snap.Summary(),
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
