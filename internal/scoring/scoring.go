// Package scoring turns normalized snapshot records into fantasy points,
// merges skaters and goalies into one ranked collection, and summarizes
// that collection by position or team.
//
// Every function here is pure: inputs are never mutated and each call
// builds its result from scratch, so concurrent callers with different
// weights never observe each other's state.
package scoring

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/albapepper/scoracle-hockey/internal/snapshot"
)

var (
	ErrUnknownStat      = errors.New("unknown scoring stat")
	ErrWeightOutOfRange = errors.New("weight out of range")
	ErrInvalidGroupKey  = errors.New("invalid group key")
	ErrInvalidOrder     = errors.New("invalid group order")
	ErrInvalidRounding  = errors.New("invalid rounding mode")
)

// PlayerType tags which snapshot table a player came from.
type PlayerType string

const (
	Skater PlayerType = "Skater"
	Goalie PlayerType = "Goalie"
)

// GoaliePosition is the synthetic position assigned to goalies on merge.
const GoaliePosition = "G"

// Stats each category scores on. Weights for other stats are ignored.
var (
	SkaterScoringStats = []string{"G", "A", "PIM", "PPG", "PPP", "SOG", "HIT", "BLK"}
	GoalieScoringStats = []string{"W", "SV", "SO"}
)

// Common field set of a ranked row. Skater fields read 0 on goalie rows
// and goalie fields read 0 on skater rows.
var (
	SkaterFields = []string{"G", "A", "PTS", "PIM", "PPG", "PPP", "SOG", "HIT", "BLK"}
	GoalieFields = []string{"W", "SV", "SO", "SV%", "GAA"}
)

// ScoringStats returns the stats that count toward fantasy points for t.
func (t PlayerType) ScoringStats() []string {
	if t == Goalie {
		return GoalieScoringStats
	}
	return SkaterScoringStats
}

// Fields returns the stat fields t carries in a ranked row.
func (t PlayerType) Fields() []string {
	if t == Goalie {
		return GoalieFields
	}
	return SkaterFields
}

// Rounding selects how fantasy points are rounded to one decimal.
type Rounding int

const (
	// HalfAwayFromZero rounds 1.25 to 1.3 and -1.25 to -1.3.
	HalfAwayFromZero Rounding = iota
	// HalfEven rounds 1.25 to 1.2 and 1.35 to 1.4.
	HalfEven
)

// ParseRounding accepts "half_away" or "half_even".
func ParseRounding(s string) (Rounding, error) {
	switch s {
	case "", "half_away":
		return HalfAwayFromZero, nil
	case "half_even":
		return HalfEven, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRounding, s)
}

func (r Rounding) String() string {
	if r == HalfEven {
		return "half_even"
	}
	return "half_away"
}

// Round1 rounds v to one decimal place.
func (r Rounding) Round1(v float64) float64 {
	if r == HalfEven {
		v = math.RoundToEven(v*10) / 10
	} else {
		v = math.Round(v*10) / 10
	}
	if v == 0 {
		return 0 // no -0
	}
	return v
}

// ScoredPlayer is a player record with its derived fantasy points.
// Rank is 0 until the player is placed in a RankedCollection.
type ScoredPlayer struct {
	Rank          int                `json:"rank"`
	Player        string             `json:"player"`
	Team          string             `json:"team"`
	Pos           string             `json:"pos"`
	Type          PlayerType         `json:"playerType"`
	FantasyPoints float64            `json:"fantasyPoints"`
	Stats         map[string]float64 `json:"stats"`
}

// Stat returns the named stat, 0 when absent.
func (p ScoredPlayer) Stat(name string) float64 {
	return p.Stats[name]
}

// Scorer computes fantasy points with a fixed rounding mode. The zero
// value rounds half away from zero.
type Scorer struct {
	Rounding Rounding
}

// Default is the scorer used by the package-level functions.
var Default = Scorer{Rounding: HalfAwayFromZero}

// ComputeFantasyPoints scores records with the default scorer.
func ComputeFantasyPoints(records []snapshot.PlayerRecord, w Weights, t PlayerType) []ScoredPlayer {
	return Default.ComputeFantasyPoints(records, w, t)
}

// ComputeFantasyPoints scores each record of category t as the sum of
// stat × weight over t's scoring stats, rounded to one decimal. Output
// order matches input order.
func (s Scorer) ComputeFantasyPoints(records []snapshot.PlayerRecord, w Weights, t PlayerType) []ScoredPlayer {
	stats := t.ScoringStats()
	out := make([]ScoredPlayer, 0, len(records))
	for _, rec := range records {
		var total float64
		for _, stat := range stats {
			total += rec.Stat(stat) * w.Weight(stat)
		}
		out = append(out, ScoredPlayer{
			Player:        rec.Player,
			Team:          rec.Team,
			Pos:           rec.Pos,
			Type:          t,
			FantasyPoints: s.Rounding.Round1(total),
			Stats:         cloneStats(rec.Stats),
		})
	}
	return out
}

// Score computes and merges both snapshot tables in one step.
func (s Scorer) Score(snap *snapshot.Snapshot, w Weights) RankedCollection {
	return MergeAndRank(
		s.ComputeFantasyPoints(snap.Skaters.Records, w, Skater),
		s.ComputeFantasyPoints(snap.Goalies.Records, w, Goalie),
	)
}

// MergeAndRank concatenates skaters then goalies, projects each row onto
// the common field set, and ranks the result.
func MergeAndRank(skaters, goalies []ScoredPlayer) RankedCollection {
	merged := make([]ScoredPlayer, 0, len(skaters)+len(goalies))
	for _, p := range skaters {
		merged = append(merged, project(p, Skater))
	}
	for _, p := range goalies {
		merged = append(merged, project(p, Goalie))
	}
	return Rank(merged)
}

func project(p ScoredPlayer, t PlayerType) ScoredPlayer {
	stats := make(map[string]float64, len(SkaterFields)+len(GoalieFields))
	for _, f := range SkaterFields {
		stats[f] = 0
	}
	for _, f := range GoalieFields {
		stats[f] = 0
	}
	for _, f := range t.Fields() {
		stats[f] = p.Stat(f)
	}

	p.Type = t
	p.Stats = stats
	if t == Goalie {
		p.Pos = GoaliePosition
	}
	return p
}

// Rank stable-sorts players by fantasy points descending and assigns
// ranks 1..N by position. Ties keep their input order.
func Rank(players []ScoredPlayer) RankedCollection {
	ranked := slices.Clone(players)
	slices.SortStableFunc(ranked, func(a, b ScoredPlayer) int {
		return cmp.Compare(b.FantasyPoints, a.FantasyPoints)
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return RankedCollection(ranked)
}

func cloneStats(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
