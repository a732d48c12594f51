// Package snapshot loads the static season-statistics snapshot (one skater
// table, one goalie table) and normalizes it into typed player records.
//
// Normalization is lenient: declared numeric columns that fail to parse are
// treated as missing, and every missing cell is filled with DefaultValue.
// The resulting Snapshot is never mutated and may be shared across
// concurrent scoring runs.
package snapshot

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrDataUnavailable means a snapshot table could not be located or
	// parsed as tabular data. No partial snapshot is ever returned with it.
	ErrDataUnavailable = errors.New("snapshot data unavailable")
)

// Identity columns. Player and Team are required in both tables; goalie
// exports usually carry no Pos column.
const (
	ColPlayer = "Player"
	ColTeam   = "Team"
	ColPos    = "Pos"
)

// Declared numeric columns per table. Anything else is kept as text.
var (
	SkaterNumericColumns = []string{
		"VAR", "GP", "G", "A", "PTS", "(+/-)", "PIM", "EV",
		"PPG", "PPA", "PPP", "SOG", "ATOI", "FOW", "BLK", "HIT",
	}
	GoalieNumericColumns = []string{
		"VAR", "GS", "W", "L", "T/O", "SO", "SV", "SV%",
		"GA", "GAA", "SA",
	}
)

// RawTable is a header plus string rows, exactly as read from storage.
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// PlayerRecord is one player's row for one category.
type PlayerRecord struct {
	Player string             `json:"player"`
	Team   string             `json:"team"`
	Pos    string             `json:"pos,omitempty"`
	Stats  map[string]float64 `json:"stats"`
	Fields map[string]string  `json:"fields,omitempty"`
}

// Stat returns the named numeric stat, 0 when the column was absent.
func (r PlayerRecord) Stat(name string) float64 {
	return r.Stats[name]
}

// Table is a normalized category table. Columns keeps the cleaned header
// order; Records keeps load order.
type Table struct {
	Columns []string       `json:"columns"`
	Records []PlayerRecord `json:"records"`
}

// Len returns the number of records.
func (t Table) Len() int { return len(t.Records) }

// Head returns up to n records from the front of the table.
func (t Table) Head(n int) []PlayerRecord {
	if n < 0 || n > len(t.Records) {
		n = len(t.Records)
	}
	return slices.Clone(t.Records[:n])
}

// Snapshot is the cleaned pair of tables for one scoring session.
type Snapshot struct {
	Skaters Table `json:"skaters"`
	Goalies Table `json:"goalies"`
}

// Summary returns a short human-readable description of the snapshot.
func (s *Snapshot) Summary() string {
	return fmt.Sprintf("skaters=%d goalies=%d", s.Skaters.Len(), s.Goalies.Len())
}

// Normalize cleans both raw tables. Either table failing to qualify as
// tabular data fails the whole call.
func Normalize(skaters, goalies RawTable) (*Snapshot, error) {
	sk, err := NormalizeTable(skaters, SkaterNumericColumns)
	if err != nil {
		return nil, fmt.Errorf("skaters: %w", err)
	}
	gk, err := NormalizeTable(goalies, GoalieNumericColumns)
	if err != nil {
		return nil, fmt.Errorf("goalies: %w", err)
	}
	return &Snapshot{Skaters: sk, Goalies: gk}, nil
}

// NormalizeTable coerces the declared numeric columns that are present in
// raw and fills every missing cell. Row count and identity values are
// preserved; the input is not modified.
func NormalizeTable(raw RawTable, numeric []string) (Table, error) {
	if len(raw.Columns) == 0 {
		return Table{}, fmt.Errorf("%w: no header row", ErrDataUnavailable)
	}

	cols := make([]string, len(raw.Columns))
	index := make(map[string]int, len(raw.Columns))
	for i, c := range raw.Columns {
		cols[i] = CleanColumnName(c)
		if _, dup := index[cols[i]]; !dup {
			index[cols[i]] = i
		}
	}
	for _, required := range []string{ColPlayer, ColTeam} {
		if _, ok := index[required]; !ok {
			return Table{}, fmt.Errorf("%w: missing %q column", ErrDataUnavailable, required)
		}
	}

	isNumeric := make(map[string]bool, len(numeric))
	for _, c := range numeric {
		isNumeric[c] = true
	}

	records := make([]PlayerRecord, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		rec := PlayerRecord{
			Stats:  make(map[string]float64),
			Fields: make(map[string]string),
		}
		for name, i := range index {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if isNumeric[name] {
				rec.Stats[name] = ParseNumericOrDefault(cell, DefaultValue)
				continue
			}
			if cell == "" {
				cell = missingText
			}
			switch name {
			case ColPlayer:
				rec.Player = cell
			case ColTeam:
				rec.Team = cell
			case ColPos:
				rec.Pos = cell
			default:
				rec.Fields[name] = cell
			}
		}
		records = append(records, rec)
	}

	return Table{Columns: cols, Records: records}, nil
}
