// Package handler provides HTTP handlers for all API endpoints.
// Handlers score the in-memory snapshot directly, without a service layer.
// The snapshot is read-only; every request scores it with its own weights.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/albapepper/scoracle-hockey/internal/api/respond"
	"github.com/albapepper/scoracle-hockey/internal/cache"
	"github.com/albapepper/scoracle-hockey/internal/config"
	"github.com/albapepper/scoracle-hockey/internal/scoring"
	"github.com/albapepper/scoracle-hockey/internal/snapshot"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	snap     *snapshot.Snapshot
	cache    *cache.Cache
	cfg      *config.Config
	scorer   scoring.Scorer
	logger   *slog.Logger
	loadedAt time.Time
}

// New creates a Handler with shared dependencies.
func New(snap *snapshot.Snapshot, c *cache.Cache, cfg *config.Config, logger *slog.Logger) *Handler {
	return &Handler{
		snap:     snap,
		cache:    c,
		cfg:      cfg,
		scorer:   cfg.Scorer(),
		logger:   logger,
		loadedAt: time.Now().UTC(),
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, rounding mode, and available endpoints.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":     "Scoracle Hockey Fantasy API",
		"version":  "1.0.0",
		"status":   "running",
		"rounding": h.scorer.Rounding.String(),
		"docs":     "/docs",
		"endpoints": []string{
			"GET /api/v1/weights",
			"POST /api/v1/rankings",
			"POST /api/v1/rankings/export",
			"POST /api/v1/aggregates/{key}",
			"POST /api/v1/dashboard",
		},
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckSnapshot reports what was loaded at startup.
// @Summary Snapshot health check
// @Description Returns the snapshot source, row counts, and load time.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/snapshot [get]
func (h *Handler) HealthCheckSnapshot(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"source":    h.cfg.SnapshotSource,
		"skaters":   h.snap.Skaters.Len(),
		"goalies":   h.snap.Goalies.Len(),
		"loaded_at": h.loadedAt.Format(time.RFC3339),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache statistics
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
