package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/games/runner"
	"github.com/vovakirdan/lane-runner/internal/registry"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the leaderboard",
	Long: `Display the best runs for the specified game (default: runner).

Examples:
  runner scores
  runner scores --limit 25
  runner scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run for the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := runner.GameID
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'runner list' to see available games)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared all runs for %s.\n", game.Title())
		return nil
	}

	runs, err := store.TopRuns(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Best Runs - %s\n\n", game.Title())

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'runner play %s' to set the first score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-7s  %-9s  %-10s  %-4s  %-5s  %-8s  %s\n",
		"Rank", "Score", "Distance", "Tier", "Hits", "Kills", "Cause", "Date")
	fmt.Fprintf(out, "  %-4s  %-7s  %-9s  %-10s  %-4s  %-5s  %-8s  %s\n",
		"----", "-----", "--------", "----", "----", "-----", "-----", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-7d  %-9s  %-10s  %-4d  %-5d  %-8s  %s\n",
			i+1, r.Score, fmt.Sprintf("%.0fm", r.Distance), r.Tier, r.Hits, r.Kills,
			r.Cause, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d   Runs: %d   Average: %.1f   Longest: %.0fm\n",
			stats.HighScore, stats.RunsCount, stats.AvgScore, stats.LongestRun)
	}
	return nil
}
