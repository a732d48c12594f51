// Command rank is the fantasy hockey ranking CLI.
//
// Usage:
//
//	fhockey rank
//	fhockey rank --weights G=6,A=4,PPP=2 --position D --top 50
//	fhockey aggregate position
//	fhockey aggregate team --order sum --limit 10
//	fhockey export --out rankings.csv
//	fhockey summary --skaters data/skaters.csv --goalies data/goalies.csv
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/scoracle-hockey/internal/config"
	"github.com/albapepper/scoracle-hockey/internal/dashboard"
	"github.com/albapepper/scoracle-hockey/internal/db"
	"github.com/albapepper/scoracle-hockey/internal/export"
	"github.com/albapepper/scoracle-hockey/internal/scoring"
	"github.com/albapepper/scoracle-hockey/internal/snapshot"
)

// Logs go to stderr so tables on stdout stay pipeable.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// globalFlags override the environment configuration for one invocation.
type globalFlags struct {
	skaters  string
	goalies  string
	rounding string
}

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var g globalFlags
	root := &cobra.Command{
		Use:          "fhockey",
		Short:        "Score and rank fantasy hockey players from a stats snapshot",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&g.skaters, "skaters", "", "Skater CSV path (implies the csv source)")
	root.PersistentFlags().StringVar(&g.goalies, "goalies", "", "Goalie CSV path (implies the csv source)")
	root.PersistentFlags().StringVar(&g.rounding, "rounding", "", "Rounding mode: half_away or half_even")

	root.AddCommand(rankCmd(&g))
	root.AddCommand(aggregateCmd(&g))
	root.AddCommand(exportCmd(&g))
	root.AddCommand(summaryCmd(&g))
	return root
}

// --------------------------------------------------------------------------
// rank command
// --------------------------------------------------------------------------

func rankCmd(g *globalFlags) *cobra.Command {
	var (
		weights   string
		positions []string
		top       int
	)
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Print the merged leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := parseWeightsFlag(weights)
			if err != nil {
				return err
			}
			return withSnapshot(g, func(ctx context.Context, snap *snapshot.Snapshot, scorer scoring.Scorer) error {
				ranked := scorer.Score(snap, w)
				players := ranked.ByPosition(upperAll(positions)...).Head(top)
				if players.Len() == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), dashboard.NoData)
					return nil
				}
				return printRankings(cmd.OutOrStdout(), players)
			})
		},
	}
	cmd.Flags().StringVar(&weights, "weights", "", "Comma-separated STAT=weight pairs; omitted stats score 0 (default: league weights)")
	cmd.Flags().StringSliceVar(&positions, "position", nil, "Keep only these positions (repeatable, e.g. D,LW,G)")
	cmd.Flags().IntVar(&top, "top", 0, "Show only the first N players (0 = all)")
	return cmd
}

// --------------------------------------------------------------------------
// aggregate command
// --------------------------------------------------------------------------

func aggregateCmd(g *globalFlags) *cobra.Command {
	var (
		weights string
		order   string
		limit   int
	)
	cmd := &cobra.Command{
		Use:       "aggregate position|team",
		Short:     "Summarize fantasy points by position or team",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(scoring.GroupByPosition), string(scoring.GroupByTeam)},
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := scoring.ParseGroupKey(args[0])
			if err != nil {
				return err
			}
			ord, err := scoring.ParseGroupOrder(order)
			if err != nil {
				return err
			}
			w, err := parseWeightsFlag(weights)
			if err != nil {
				return err
			}
			return withSnapshot(g, func(ctx context.Context, snap *snapshot.Snapshot, scorer scoring.Scorer) error {
				groups, err := scoring.Aggregate(scorer.Score(snap, w), key, ord)
				if err != nil {
					return err
				}
				if limit > 0 && len(groups) > limit {
					groups = groups[:limit]
				}
				return printGroups(cmd.OutOrStdout(), key, groups)
			})
		},
	}
	cmd.Flags().StringVar(&weights, "weights", "", "Comma-separated STAT=weight pairs (default: league weights)")
	cmd.Flags().StringVar(&order, "order", "", "Sort by mean, sum, max or group (default: mean for position, sum for team)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show only the first N groups (0 = all)")
	return cmd
}

// --------------------------------------------------------------------------
// export command
// --------------------------------------------------------------------------

func exportCmd(g *globalFlags) *cobra.Command {
	var (
		weights string
		out     string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the full leaderboard as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := parseWeightsFlag(weights)
			if err != nil {
				return err
			}
			return withSnapshot(g, func(ctx context.Context, snap *snapshot.Snapshot, scorer scoring.Scorer) error {
				ranked := scorer.Score(snap, w)
				if out == "-" {
					return export.WriteCSV(cmd.OutOrStdout(), ranked)
				}
				if out == "" {
					out = export.FileName(ranked)
				}
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				if err := export.WriteCSV(f, ranked); err != nil {
					f.Close()
					return fmt.Errorf("write %s: %w", out, err)
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("close %s: %w", out, err)
				}
				logger.Info("Rankings exported", "path", out, "players", ranked.Len())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&weights, "weights", "", "Comma-separated STAT=weight pairs (default: league weights)")
	cmd.Flags().StringVar(&out, "out", "", "Output path, or - for stdout (default: nhl_fantasy_rankings_<N>_players.csv)")
	return cmd
}

// --------------------------------------------------------------------------
// summary command
// --------------------------------------------------------------------------

func summaryCmd(g *globalFlags) *cobra.Command {
	var weights string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print headline metrics for the leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := parseWeightsFlag(weights)
			if err != nil {
				return err
			}
			return withSnapshot(g, func(ctx context.Context, snap *snapshot.Snapshot, scorer scoring.Scorer) error {
				view, err := dashboard.Build(snap, scorer, dashboard.Request{Weights: w, Run: true, ShowTop: dashboard.ShowAll})
				if err != nil {
					return err
				}
				return printSummary(cmd.OutOrStdout(), view.Summary)
			})
		},
	}
	cmd.Flags().StringVar(&weights, "weights", "", "Comma-separated STAT=weight pairs (default: league weights)")
	return cmd
}

// --------------------------------------------------------------------------
// Shared helpers
// --------------------------------------------------------------------------

// withSnapshot loads config, applies the global flags, loads the snapshot
// and hands it to fn.
func withSnapshot(g *globalFlags, fn func(ctx context.Context, snap *snapshot.Snapshot, scorer scoring.Scorer) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := g.apply(cfg); err != nil {
		return err
	}

	src, closeSrc, err := db.OpenSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSrc()

	snap, err := snapshot.Load(ctx, src, logger)
	if err != nil {
		return err
	}
	return fn(ctx, snap, cfg.Scorer())
}

func (g *globalFlags) apply(cfg *config.Config) error {
	if g.skaters != "" || g.goalies != "" {
		cfg.SnapshotSource = config.SourceCSV
	}
	if g.skaters != "" {
		cfg.SkatersCSV = g.skaters
	}
	if g.goalies != "" {
		cfg.GoaliesCSV = g.goalies
	}
	if g.rounding != "" {
		r, err := scoring.ParseRounding(g.rounding)
		if err != nil {
			return err
		}
		cfg.Rounding = r
	}
	return nil
}

// parseWeightsFlag returns the league defaults for an empty flag.
func parseWeightsFlag(s string) (scoring.Weights, error) {
	if strings.TrimSpace(s) == "" {
		return scoring.DefaultWeights(), nil
	}
	w, err := scoring.ParseWeights(s)
	if err != nil {
		return nil, fmt.Errorf("--weights: %w", err)
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("--weights: %w", err)
	}
	return w, nil
}

func upperAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToUpper(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func printRankings(out io.Writer, players scoring.RankedCollection) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tPLAYER\tTEAM\tPOS\tTYPE\tFP")
	for _, p := range players {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			p.Rank, p.Player, p.Team, p.Pos, p.Type, strconv.FormatFloat(p.FantasyPoints, 'f', 1, 64))
	}
	return tw.Flush()
}

func printGroups(out io.Writer, key scoring.GroupKey, groups []scoring.GroupSummary) error {
	if len(groups) == 0 {
		_, err := fmt.Fprintln(out, dashboard.NoData)
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\tCOUNT\tMEAN\tMAX\tSUM\n", strings.ToUpper(string(key)))
	for _, s := range groups {
		fmt.Fprintf(tw, "%s\t%d\t%.1f\t%.1f\t%.1f\n", s.Group, s.Count, s.Mean, s.Max, s.Sum)
	}
	return tw.Flush()
}

func printSummary(out io.Writer, s *dashboard.Summary) error {
	if s == nil {
		_, err := fmt.Fprintln(out, dashboard.NoData)
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total players\t%d\n", s.TotalPlayers)
	for _, row := range []struct {
		label  string
		leader dashboard.Leader
	}{
		{"Top player", s.TopPlayer},
		{"Top goalie", s.TopGoalie},
		{"Top defenseman", s.TopDefenseman},
	} {
		if row.leader.Found {
			fmt.Fprintf(tw, "%s\t%s\t%.1f\n", row.label, row.leader.Label(), row.leader.FantasyPoints)
		} else {
			fmt.Fprintf(tw, "%s\t%s\n", row.label, row.leader.Label())
		}
	}
	return tw.Flush()
}
