package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-surf/internal/games/surf"
	"github.com/vovakirdan/tui-surf/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best surf runs and overall statistics.

Examples:
  surf scores
  surf scores --limit 25
  surf scores --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(surf.ID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - Surf")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'surf play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-6s  %-8s  %s\n", "Rank", "Score", "Tricks", "Grind", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "------", "-----", "----", "----")

	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-8d  %-6d  %-6d  %-8s  %s\n",
			i+1, entry.Score, entry.Tricks, entry.GrindTicks,
			runDuration(entry.Ticks), entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(surf.ID)
	if err != nil {
		logger.Warn("could not load run statistics", "err", err)
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Runs: %d  Best: %d  Average: %.0f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	fmt.Fprintf(out, "Tricks landed: %d (best run %d)  Grind ticks: %d\n", stats.TotalTricks, stats.MostTricks, stats.GrindTicks)
	return nil
}

// runDuration converts a tick count at the current --fps into play time.
func runDuration(ticks uint64) string {
	if ticks == 0 {
		return "-"
	}
	rate := flagFPS
	if rate <= 0 {
		rate = 60
	}
	d := time.Duration(ticks) * time.Second / time.Duration(rate)
	return d.Round(time.Second).String()
}
