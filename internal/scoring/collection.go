package scoring

import (
	"cmp"
	"fmt"
	"slices"
)

// RankedCollection is a ranked leaderboard, ordered by fantasy points
// descending. Filtering keeps each player's overall rank.
type RankedCollection []ScoredPlayer

// Len returns the number of ranked players.
func (c RankedCollection) Len() int { return len(c) }

// Filter returns the players matching keep, in rank order. An empty
// result is a valid value, never an error.
func (c RankedCollection) Filter(keep func(ScoredPlayer) bool) RankedCollection {
	out := RankedCollection{}
	for _, p := range c {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// ByPosition keeps players whose Pos is any of positions. No positions
// means no filter.
func (c RankedCollection) ByPosition(positions ...string) RankedCollection {
	return c.Filter(func(p ScoredPlayer) bool {
		return len(positions) == 0 || slices.Contains(positions, p.Pos)
	})
}

// ByType keeps players of type t.
func (c RankedCollection) ByType(t PlayerType) RankedCollection {
	return c.Filter(func(p ScoredPlayer) bool { return p.Type == t })
}

// Head returns the first n players; n <= 0 returns all of them.
func (c RankedCollection) Head(n int) RankedCollection {
	if n <= 0 || n > len(c) {
		n = len(c)
	}
	return append(RankedCollection{}, c[:n]...)
}

// Top returns the highest ranked player. ok is false for an empty
// collection, which callers must report as "no data".
func (c RankedCollection) Top() (p ScoredPlayer, ok bool) {
	if len(c) == 0 {
		return ScoredPlayer{}, false
	}
	return c[0], true
}

// Positions returns the distinct positions present, sorted.
func (c RankedCollection) Positions() []string {
	out := []string{}
	for _, p := range c {
		if !slices.Contains(out, p.Pos) {
			out = append(out, p.Pos)
		}
	}
	slices.Sort(out)
	return out
}

// GroupRow is a ranked player with its rank inside a filtered group
// (e.g. "D Rank" on the defense table).
type GroupRow struct {
	GroupRank int `json:"groupRank"`
	ScoredPlayer
}

// GroupRanks numbers the collection 1..N in its current order.
func (c RankedCollection) GroupRanks() []GroupRow {
	rows := make([]GroupRow, len(c))
	for i, p := range c {
		rows[i] = GroupRow{GroupRank: i + 1, ScoredPlayer: p}
	}
	return rows
}

// GroupKey selects the field Aggregate groups on.
type GroupKey string

const (
	GroupByPosition GroupKey = "position"
	GroupByTeam     GroupKey = "team"
)

// ParseGroupKey validates a group key.
func ParseGroupKey(s string) (GroupKey, error) {
	switch k := GroupKey(s); k {
	case GroupByPosition, GroupByTeam:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q (want position or team)", ErrInvalidGroupKey, s)
}

func (k GroupKey) value(p ScoredPlayer) string {
	if k == GroupByTeam {
		return p.Team
	}
	return p.Pos
}

// GroupSummary aggregates fantasy points for one group. Position
// summaries are normally read as count/mean/max, team summaries as
// count/mean/sum; all four are always filled.
type GroupSummary struct {
	Group string  `json:"group"`
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Max   float64 `json:"max"`
	Sum   float64 `json:"sum"`
}

// GroupOrder compares two summaries for sorting.
type GroupOrder func(a, b GroupSummary) int

// Orderings for Aggregate. Ties fall back to group name.
var (
	OrderByMeanDesc GroupOrder = func(a, b GroupSummary) int {
		return cmp.Or(cmp.Compare(b.Mean, a.Mean), cmp.Compare(a.Group, b.Group))
	}
	OrderBySumDesc GroupOrder = func(a, b GroupSummary) int {
		return cmp.Or(cmp.Compare(b.Sum, a.Sum), cmp.Compare(a.Group, b.Group))
	}
	OrderByMaxDesc GroupOrder = func(a, b GroupSummary) int {
		return cmp.Or(cmp.Compare(b.Max, a.Max), cmp.Compare(a.Group, b.Group))
	}
	OrderByGroup GroupOrder = func(a, b GroupSummary) int {
		return cmp.Compare(a.Group, b.Group)
	}
)

// ParseGroupOrder maps mean|sum|max|group to an ordering. The empty
// string yields nil, which Aggregate reads as the key's default.
func ParseGroupOrder(s string) (GroupOrder, error) {
	switch s {
	case "":
		return nil, nil
	case "mean":
		return OrderByMeanDesc, nil
	case "sum":
		return OrderBySumDesc, nil
	case "max":
		return OrderByMaxDesc, nil
	case "group":
		return OrderByGroup, nil
	}
	return nil, fmt.Errorf("%w: %q (want mean, sum, max or group)", ErrInvalidOrder, s)
}

// DefaultOrder is mean descending for positions and sum descending for
// teams.
func (k GroupKey) DefaultOrder() GroupOrder {
	if k == GroupByTeam {
		return OrderBySumDesc
	}
	return OrderByMeanDesc
}

// Aggregate summarizes c per distinct value of key. Every observed group
// is returned. A nil order uses key.DefaultOrder.
func Aggregate(c RankedCollection, key GroupKey, order GroupOrder) ([]GroupSummary, error) {
	if _, err := ParseGroupKey(string(key)); err != nil {
		return nil, err
	}
	if order == nil {
		order = key.DefaultOrder()
	}

	out := []GroupSummary{}
	index := make(map[string]int)
	for _, p := range c {
		g := key.value(p)
		i, ok := index[g]
		if !ok {
			i = len(out)
			index[g] = i
			out = append(out, GroupSummary{Group: g, Max: p.FantasyPoints})
		}
		s := &out[i]
		s.Count++
		s.Sum += p.FantasyPoints
		s.Max = max(s.Max, p.FantasyPoints)
	}
	for i := range out {
		out[i].Mean = out[i].Sum / float64(out[i].Count)
	}

	slices.SortStableFunc(out, order)
	return out, nil
}
