package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/albapepper/scoracle-hockey/internal/api/handler"
	"github.com/albapepper/scoracle-hockey/internal/cache"
	"github.com/albapepper/scoracle-hockey/internal/config"
	"github.com/albapepper/scoracle-hockey/internal/snapshot"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(snap *snapshot.Snapshot, appCache *cache.Cache, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Cache", "ETag", "Content-Disposition"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(snap, appCache, cfg, logger)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/snapshot", h.HealthCheckSnapshot)
		r.Get("/cache", h.HealthCheckCache)
	})

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/weights", h.GetWeights)

		r.Post("/rankings", h.PostRankings)
		r.Post("/rankings/export", h.PostExportRankings)

		r.Post("/aggregates/{key}", h.PostAggregate)

		r.Post("/dashboard", h.PostDashboard)
	})

	return r
}
