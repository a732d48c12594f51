// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/rank.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/albapepper/scoracle-hockey/internal/scoring"
)

// --------------------------------------------------------------------------
// Snapshot sources
// --------------------------------------------------------------------------

const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// --------------------------------------------------------------------------
// Config is populated from environment variables.
// --------------------------------------------------------------------------

type Config struct {
	// Snapshot
	SnapshotSource string // csv, postgres
	SkatersCSV     string
	GoaliesCSV     string
	SkatersTable   string
	GoaliesTable   string

	// Database (postgres snapshot source only)
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Cache
	CacheEnabled bool

	// Scoring
	Rounding scoring.Rounding
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	source := strings.ToLower(envOr("SNAPSHOT_SOURCE", SourceCSV))
	if source != SourceCSV && source != SourcePostgres {
		return nil, fmt.Errorf("SNAPSHOT_SOURCE must be %q or %q, got %q", SourceCSV, SourcePostgres, source)
	}

	dbURL := envOr("DATABASE_URL", "")
	if source == SourcePostgres && dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set when SNAPSHOT_SOURCE=%s", SourcePostgres)
	}

	rounding, err := scoring.ParseRounding(envOr("ROUNDING_MODE", "half_away"))
	if err != nil {
		return nil, fmt.Errorf("ROUNDING_MODE: %w", err)
	}

	return &Config{
		SnapshotSource: source,
		SkatersCSV:     envOr("SKATERS_CSV", "data/skaters_cat_league.csv"),
		GoaliesCSV:     envOr("GOALIES_CSV", "data/goalies_cat_league.csv"),
		SkatersTable:   envOr("SKATERS_TABLE", "skaters"),
		GoaliesTable:   envOr("GOALIES_TABLE", "goalies"),

		DatabaseURL:    dbURL,
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 1),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 4),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:8501",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		CacheEnabled: envBool("CACHE_ENABLED", true),

		Rounding: rounding,
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Scorer returns the scorer configured by ROUNDING_MODE.
func (c *Config) Scorer() scoring.Scorer {
	return scoring.Scorer{Rounding: c.Rounding}
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
