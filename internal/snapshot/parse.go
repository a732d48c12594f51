package snapshot

import (
	"math"
	"strconv"
	"strings"
)

// DefaultValue replaces every missing or unparseable cell after normalization.
const DefaultValue = 0

// missingText is what an empty text cell becomes once missing values are filled.
const missingText = "0"

// ParseNumericOrDefault converts a raw cell to a number.
//
// Blank cells, cells that do not parse as a float (e.g. "12:34", "n/a"),
// NaN and ±Inf all count as missing and yield def. Parsing never fails.
func ParseNumericOrDefault(raw string, def float64) float64 {
	v, ok := parseNumeric(raw)
	if !ok {
		return def
	}
	return v
}

func parseNumeric(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// CleanColumnName strips the stray quoting some exports leave in header cells.
func CleanColumnName(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	return strings.TrimSpace(strings.ReplaceAll(name, `"`, ""))
}
