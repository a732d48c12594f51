// Package export writes a ranked collection as a flat CSV table for
// download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/albapepper/scoracle-hockey/internal/scoring"
)

// Leading columns, followed by scoring.SkaterFields then scoring.GoalieFields.
var baseColumns = []string{"Rank", "Fantasy Points", "Player", "Team", "Pos", "Player Type"}

// Columns returns the full export header.
func Columns() []string {
	cols := make([]string, 0, len(baseColumns)+len(scoring.SkaterFields)+len(scoring.GoalieFields))
	cols = append(cols, baseColumns...)
	cols = append(cols, scoring.SkaterFields...)
	cols = append(cols, scoring.GoalieFields...)
	return cols
}

// FileName is the suggested download name for c.
func FileName(c scoring.RankedCollection) string {
	return fmt.Sprintf("nhl_fantasy_rankings_%d_players.csv", c.Len())
}

// WriteCSV writes the header and one row per ranked player.
func WriteCSV(w io.Writer, c scoring.RankedCollection) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, 0, len(Columns()))
	for _, p := range c {
		row = row[:0]
		row = append(row,
			strconv.Itoa(p.Rank),
			strconv.FormatFloat(p.FantasyPoints, 'f', 1, 64),
			p.Player,
			p.Team,
			p.Pos,
			string(p.Type),
		)
		for _, f := range scoring.SkaterFields {
			row = append(row, formatStat(p.Stat(f)))
		}
		for _, f := range scoring.GoalieFields {
			row = append(row, formatStat(p.Stat(f)))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write rank %d: %w", p.Rank, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
