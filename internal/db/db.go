// Package db provides a pgxpool-based connection pool and a snapshot source
// that reads the skater and goalie tables from Postgres.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albapepper/scoracle-hockey/internal/config"
	"github.com/albapepper/scoracle-hockey/internal/snapshot"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// --------------------------------------------------------------------------
// Snapshot source
// --------------------------------------------------------------------------

// Source reads the two snapshot tables with SELECT *. Column names come from
// the result description so any table shaped like the CSV export works.
type Source struct {
	pool         *pgxpool.Pool
	skatersTable string
	goaliesTable string
}

// NewSource returns a snapshot.Source backed by the given tables.
func NewSource(p *Pool, skatersTable, goaliesTable string) *Source {
	return &Source{pool: p.Pool, skatersTable: skatersTable, goaliesTable: goaliesTable}
}

// OpenSource picks the configured snapshot source. The returned func
// releases the pool when the source is Postgres.
func OpenSource(ctx context.Context, cfg *config.Config, logger *slog.Logger) (snapshot.Source, func(), error) {
	if cfg.SnapshotSource != config.SourcePostgres {
		return snapshot.CSVSource{SkatersPath: cfg.SkatersCSV, GoaliesPath: cfg.GoaliesCSV}, func() {}, nil
	}

	pool, err := New(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("Database connected",
		"min_conns", cfg.DBPoolMinConns,
		"max_conns", cfg.DBPoolMaxConns)
	return NewSource(pool, cfg.SkatersTable, cfg.GoaliesTable), pool.Close, nil
}

// Name identifies the source in logs.
func (s *Source) Name() string { return config.SourcePostgres }

// Load reads both tables. Either query failing aborts the load.
func (s *Source) Load(ctx context.Context) (snapshot.RawTable, snapshot.RawTable, error) {
	skaters, err := s.readTable(ctx, s.skatersTable)
	if err != nil {
		return snapshot.RawTable{}, snapshot.RawTable{}, err
	}
	goalies, err := s.readTable(ctx, s.goaliesTable)
	if err != nil {
		return snapshot.RawTable{}, snapshot.RawTable{}, err
	}
	return skaters, goalies, nil
}

func (s *Source) readTable(ctx context.Context, table string) (snapshot.RawTable, error) {
	query := "SELECT * FROM " + pgx.Identifier{table}.Sanitize()
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return snapshot.RawTable{}, fmt.Errorf("%w: query %s: %v", snapshot.ErrDataUnavailable, table, err)
	}
	defer rows.Close()

	var t snapshot.RawTable
	for _, fd := range rows.FieldDescriptions() {
		t.Columns = append(t.Columns, fd.Name)
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return snapshot.RawTable{}, fmt.Errorf("%w: scan %s: %v", snapshot.ErrDataUnavailable, table, err)
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = CellText(v)
		}
		t.Rows = append(t.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return snapshot.RawTable{}, fmt.Errorf("%w: read %s: %v", snapshot.ErrDataUnavailable, table, err)
	}
	return t, nil
}

// CellText renders a decoded column value the way it would appear in a CSV
// cell. NULL becomes the empty string, which the normalizer treats as missing.
func CellText(val interface{}) string {
	if val == nil {
		return ""
	}

	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case pgtype.Numeric:
		if !v.Valid {
			return ""
		}
		f, err := v.Float64Value()
		if err != nil || !f.Valid {
			return ""
		}
		return strconv.FormatFloat(f.Float64, 'f', -1, 64)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}
