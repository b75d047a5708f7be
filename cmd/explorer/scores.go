package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-explorer/internal/config"
	"github.com/vovakirdan/space-explorer/internal/storage"
)

var (
	flagClear  bool
	flagRecent int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show last and high scores per difficulty",
	Long: `Display the stored last score and high score for every difficulty,
followed by the most recent finished runs.

--clear resets all six stored scores to zero. The run history is kept.

Examples:
  explorer scores
  explorer scores --recent 20
  explorer scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Reset last and high scores for every difficulty")
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 10, "Number of recent runs to list")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearStats(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	fmt.Fprintln(out, "Scores - Little Space Explorer")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-8s  %-10s  %s\n", "Level", "High", "Last")
	fmt.Fprintf(out, "  %-8s  %-10s  %s\n", "-----", "----", "----")
	for _, d := range config.Difficulties() {
		high, err := store.HighScore(d)
		if err != nil {
			return err
		}
		last, err := store.LastScore(d)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-8s  %-10d  %d\n", d.Label(), high, last)
	}

	recent, err := store.RecentScores(flagRecent)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	if len(recent) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'explorer play' to set the first high score!")
		return nil
	}

	fmt.Fprintln(out, "Recent runs")
	fmt.Fprintf(out, "  %-8s  %-10s  %s\n", "Level", "Score", "Date")
	fmt.Fprintf(out, "  %-8s  %-10s  %s\n", "-----", "-----", "----")
	for _, entry := range recent {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-8s  %-10d  %s\n", entry.Difficulty.Label(), entry.Score, dateStr)
	}
	return nil
}
