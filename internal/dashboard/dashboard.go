// Package dashboard assembles the leaderboard views a frontend renders:
// headline metrics, per-position tabs, and position/team analysis.
//
// It holds no session state. Whether a computation has already run is a
// flag the caller sends back on each request.
package dashboard

import (
	"github.com/albapepper/scoracle-hockey/internal/scoring"
	"github.com/albapepper/scoracle-hockey/internal/snapshot"
)

// ShowTop choices for the all-players table.
const (
	ShowAll        = -1
	DefaultShowTop = 100
	ChartSize      = 15
	PreviewSize    = 10
	TopTeams       = 10
)

// NoData is the label shown when a leader metric has no players.
const NoData = "No data"

// Request is one dashboard refresh.
type Request struct {
	Weights scoring.Weights
	// Run is the explicit "calculate" trigger.
	Run bool
	// Calculated is echoed back by the caller once a run has happened.
	Calculated bool
	// Positions filters the all-players table; empty means everyone.
	Positions []string
	// ShowTop limits the all-players table. 0 means DefaultShowTop.
	ShowTop int
}

// View is the dashboard payload. Either Preview or the computed sections
// are set, depending on Calculated.
type View struct {
	Calculated bool      `json:"calculated"`
	Preview    *Preview  `json:"preview,omitempty"`
	Summary    *Summary  `json:"summary,omitempty"`
	Tabs       *Tabs     `json:"tabs,omitempty"`
	Analysis   *Analysis `json:"analysis,omitempty"`
}

// Preview shows what is loaded before anything has been scored.
type Preview struct {
	TotalSkaters int                     `json:"totalSkaters"`
	TotalGoalies int                     `json:"totalGoalies"`
	Skaters      []snapshot.PlayerRecord `json:"skaters"`
	Goalies      []snapshot.PlayerRecord `json:"goalies"`
}

// Leader is a headline player metric.
type Leader struct {
	Found         bool    `json:"found"`
	Player        string  `json:"player"`
	Team          string  `json:"team,omitempty"`
	FantasyPoints float64 `json:"fantasyPoints"`
}

// Label returns the player name, or NoData.
func (l Leader) Label() string {
	if !l.Found {
		return NoData
	}
	return l.Player
}

func leaderOf(c scoring.RankedCollection) Leader {
	p, ok := c.Top()
	if !ok {
		return Leader{Player: NoData}
	}
	return Leader{Found: true, Player: p.Player, Team: p.Team, FantasyPoints: p.FantasyPoints}
}

// Summary holds the headline metrics.
type Summary struct {
	TotalPlayers  int    `json:"totalPlayers"`
	TopPlayer     Leader `json:"topPlayer"`
	TopGoalie     Leader `json:"topGoalie"`
	TopDefenseman Leader `json:"topDefenseman"`
}

// PositionTab is one ranked group table plus its chart slice.
type PositionTab struct {
	Title string                   `json:"title"`
	Empty bool                     `json:"empty"`
	Total int                      `json:"total"`
	Rows  []scoring.GroupRow       `json:"rows"`
	Chart scoring.RankedCollection `json:"chart"`
}

func positionTab(title string, c scoring.RankedCollection) PositionTab {
	return PositionTab{
		Title: title,
		Empty: c.Len() == 0,
		Total: c.Len(),
		Rows:  c.GroupRanks(),
		Chart: c.Head(ChartSize),
	}
}

// Tabs mirrors the dashboard's tab strip.
type Tabs struct {
	AllPlayers scoring.RankedCollection `json:"allPlayers"`
	Positions  []string                 `json:"positions"`
	Skaters    PositionTab              `json:"skaters"`
	Defense    PositionTab              `json:"defense"`
	LeftWing   PositionTab              `json:"leftWing"`
	RightWing  PositionTab              `json:"rightWing"`
	Goalies    PositionTab              `json:"goalies"`
}

// Analysis holds the aggregate tables.
type Analysis struct {
	ByPosition []scoring.GroupSummary `json:"byPosition"`
	TopTeams   []scoring.GroupSummary `json:"topTeams"`
}

// Build produces the view for req. With neither Run nor Calculated set it
// returns only the data preview.
func Build(snap *snapshot.Snapshot, scorer scoring.Scorer, req Request) (View, error) {
	if !req.Run && !req.Calculated {
		return View{Preview: &Preview{
			TotalSkaters: snap.Skaters.Len(),
			TotalGoalies: snap.Goalies.Len(),
			Skaters:      snap.Skaters.Head(PreviewSize),
			Goalies:      snap.Goalies.Head(PreviewSize),
		}}, nil
	}

	ranked := scorer.Score(snap, req.Weights)
	return Compose(ranked, req)
}

// Compose builds the computed sections from an existing ranking.
func Compose(ranked scoring.RankedCollection, req Request) (View, error) {
	byPos, err := scoring.Aggregate(ranked, scoring.GroupByPosition, nil)
	if err != nil {
		return View{}, err
	}
	byTeam, err := scoring.Aggregate(ranked, scoring.GroupByTeam, nil)
	if err != nil {
		return View{}, err
	}
	if len(byTeam) > TopTeams {
		byTeam = byTeam[:TopTeams]
	}

	defense := ranked.ByPosition("D")
	goalies := ranked.ByType(scoring.Goalie)

	return View{
		Calculated: true,
		Summary: &Summary{
			TotalPlayers:  ranked.Len(),
			TopPlayer:     leaderOf(ranked),
			TopGoalie:     leaderOf(goalies),
			TopDefenseman: leaderOf(defense),
		},
		Tabs: &Tabs{
			AllPlayers: allPlayers(ranked, req),
			Positions:  ranked.Positions(),
			Skaters:    positionTab("Forwards", ranked.ByType(scoring.Skater)),
			Defense:    positionTab("Defense", defense),
			LeftWing:   positionTab("Left Wingers", ranked.ByPosition("LW")),
			RightWing:  positionTab("Right Wingers", ranked.ByPosition("RW")),
			Goalies:    positionTab("Goalies", goalies),
		},
		Analysis: &Analysis{
			ByPosition: byPos,
			TopTeams:   byTeam,
		},
	}, nil
}

func allPlayers(ranked scoring.RankedCollection, req Request) scoring.RankedCollection {
	out := ranked.ByPosition(req.Positions...)
	switch n := req.ShowTop; {
	case n == ShowAll:
		return out
	case n <= 0:
		return out.Head(DefaultShowTop)
	default:
		return out.Head(n)
	}
}
