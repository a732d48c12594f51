package scoring

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// WeightDef describes one scorable stat: its default weight and the range
// a league may configure.
type WeightDef struct {
	Stat    string     `json:"stat"`
	Label   string     `json:"label"`
	Group   string     `json:"group"`
	Type    PlayerType `json:"playerType"`
	Default float64    `json:"default"`
	Min     float64    `json:"min"`
	Max     float64    `json:"max"`
	Step    float64    `json:"step"`
}

// Definitions lists every scorable stat in display order.
var Definitions = []WeightDef{
	{Stat: "G", Label: "Goals (G)", Group: "Skater Scoring", Type: Skater, Default: 6, Min: 0, Max: 20, Step: 0.5},
	{Stat: "A", Label: "Assists (A)", Group: "Skater Scoring", Type: Skater, Default: 4, Min: 0, Max: 20, Step: 0.5},
	{Stat: "PIM", Label: "Penalty Minutes (PIM)", Group: "Skater Scoring", Type: Skater, Default: 1, Min: -5, Max: 5, Step: 0.1},
	{Stat: "PPG", Label: "PP Goals (PPG)", Group: "Power Play", Type: Skater, Default: 1, Min: 0, Max: 20, Step: 0.5},
	{Stat: "PPP", Label: "PP Points (PPP)", Group: "Power Play", Type: Skater, Default: 2, Min: 0, Max: 20, Step: 0.5},
	{Stat: "SOG", Label: "Shots on Goal (SOG)", Group: "Physical", Type: Skater, Default: 0.25, Min: 0, Max: 5, Step: 0.05},
	{Stat: "HIT", Label: "Hits (HIT)", Group: "Physical", Type: Skater, Default: 2, Min: 0, Max: 5, Step: 0.1},
	{Stat: "BLK", Label: "Blocks (BLK)", Group: "Physical", Type: Skater, Default: 2, Min: 0, Max: 5, Step: 0.1},
	{Stat: "W", Label: "Wins (W)", Group: "Goalie Scoring", Type: Goalie, Default: 2, Min: 0, Max: 20, Step: 0.5},
	{Stat: "SV", Label: "Saves (SV)", Group: "Goalie Scoring", Type: Goalie, Default: 0.5, Min: 0, Max: 5, Step: 0.05},
	{Stat: "SO", Label: "Shutouts (SO)", Group: "Goalie Scoring", Type: Goalie, Default: 2, Min: 0, Max: 20, Step: 0.5},
}

// Definition looks up the definition for stat.
func Definition(stat string) (WeightDef, bool) {
	i := slices.IndexFunc(Definitions, func(d WeightDef) bool { return d.Stat == stat })
	if i < 0 {
		return WeightDef{}, false
	}
	return Definitions[i], true
}

// Weights maps a stat name to its signed point value. A stat with no
// entry is worth 0.
type Weights map[string]float64

// DefaultWeights returns a fresh copy of the default league weights.
func DefaultWeights() Weights {
	w := make(Weights, len(Definitions))
	for _, d := range Definitions {
		w[d.Stat] = d.Default
	}
	return w
}

// Weight returns the weight for stat, 0 when unset.
func (w Weights) Weight(stat string) float64 {
	return w[stat]
}

// Scale returns a copy with every weight multiplied by k.
func (w Weights) Scale(k float64) Weights {
	out := make(Weights, len(w))
	for stat, v := range w {
		out[stat] = v * k
	}
	return out
}

// Validate rejects stats that no category can score and weights outside
// the configurable range.
func (w Weights) Validate() error {
	for _, stat := range w.sortedStats() {
		d, ok := Definition(stat)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownStat, stat)
		}
		if v := w[stat]; math.IsNaN(v) || math.IsInf(v, 0) || v < d.Min || v > d.Max {
			return fmt.Errorf("%w: %s=%g not in [%g, %g]", ErrWeightOutOfRange, stat, v, d.Min, d.Max)
		}
	}
	return nil
}

// Key is a canonical string form, stable across map iteration order.
// Used to cache results per weight configuration.
func (w Weights) Key() string {
	var b strings.Builder
	for i, stat := range w.sortedStats() {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(stat)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(w[stat], 'g', -1, 64))
	}
	return b.String()
}

func (w Weights) sortedStats() []string {
	stats := make([]string, 0, len(w))
	for stat := range w {
		stats = append(stats, stat)
	}
	slices.Sort(stats)
	return stats
}

// ParseWeights reads "G=6,A=4,SOG=0.25" style input. Blank input yields an
// empty (all-zero) configuration.
func ParseWeights(s string) (Weights, error) {
	w := Weights{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		stat, val, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("weight %q: expected STAT=VALUE", part)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("weight %q: %w", part, err)
		}
		w[strings.ToUpper(strings.TrimSpace(stat))] = f
	}
	return w, nil
}
