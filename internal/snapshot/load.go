package snapshot

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// Source yields the two raw snapshot tables.
type Source interface {
	Name() string
	Load(ctx context.Context) (skaters, goalies RawTable, err error)
}

// CSVSource reads the snapshot from two delimited files on disk.
type CSVSource struct {
	SkatersPath string
	GoaliesPath string
}

// Name identifies the source in logs.
func (s CSVSource) Name() string { return "csv" }

// Load reads both files. A missing or unreadable file aborts the load.
func (s CSVSource) Load(ctx context.Context) (RawTable, RawTable, error) {
	skaters, err := ReadCSVFile(s.SkatersPath)
	if err != nil {
		return RawTable{}, RawTable{}, err
	}
	if err := ctx.Err(); err != nil {
		return RawTable{}, RawTable{}, err
	}
	goalies, err := ReadCSVFile(s.GoaliesPath)
	if err != nil {
		return RawTable{}, RawTable{}, err
	}
	return skaters, goalies, nil
}

// ReadCSVFile opens path and parses it with ReadCSV.
func ReadCSVFile(path string) (RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return RawTable{}, fmt.Errorf("%w: open %s: %v", ErrDataUnavailable, path, err)
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return RawTable{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ReadCSV parses a header row followed by data rows. Ragged rows are
// accepted; short rows read as missing trailing cells.
func ReadCSV(r io.Reader) (RawTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return RawTable{}, fmt.Errorf("%w: empty file", ErrDataUnavailable)
	}
	if err != nil {
		return RawTable{}, fmt.Errorf("%w: read header: %v", ErrDataUnavailable, err)
	}

	t := RawTable{Columns: header}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return RawTable{}, fmt.Errorf("%w: read row %d: %v", ErrDataUnavailable, len(t.Rows)+1, err)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Load pulls both tables from src and normalizes them. Any failure is
// reported as ErrDataUnavailable and no snapshot is returned.
func Load(ctx context.Context, src Source, logger *slog.Logger) (*Snapshot, error) {
	start := time.Now()

	skaters, goalies, err := src.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrDataUnavailable) {
			err = fmt.Errorf("%w: %v", ErrDataUnavailable, err)
		}
		return nil, fmt.Errorf("load %s snapshot: %w", src.Name(), err)
	}

	snap, err := Normalize(skaters, goalies)
	if err != nil {
		return nil, fmt.Errorf("load %s snapshot: %w", src.Name(), err)
	}

	logger.Info("Snapshot loaded",
		"source", src.Name(),
		"skaters", snap.Skaters.Len(),
		"goalies", snap.Goalies.Len(),
		"duration", time.Since(start).Round(time.Millisecond))
	return snap, nil
}
