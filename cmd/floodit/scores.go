package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/floodit/internal/platform/tui"
	"github.com/vovakirdan/floodit/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best results",
	Long: `Display the finished games with the fewest steps.

Examples:
  floodit scores
  floodit scores --limit 25
  floodit scores --interactive`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse results in a scrollable table")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(store, width, height)
	}

	results, err := store.BestResults(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Best results")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No boards flooded yet.")
		fmt.Println()
		fmt.Println("Run 'floodit play' to set the first record!")
		return nil
	}

	fmt.Printf("  %-4s  %-5s  %-7s  %-6s  %-18s  %-8s  %s\n", "Rank", "Steps", "Board", "Colors", "Rule", "Preset", "Date")
	fmt.Printf("  %-4s  %-5s  %-7s  %-6s  %-18s  %-8s  %s\n", "----", "-----", "-----", "------", "----", "------", "----")

	for i, r := range results {
		fmt.Printf("  %-4d  %-5d  %-7s  %-6d  %-18s  %-8s  %s\n",
			i+1,
			r.Steps,
			fmt.Sprintf("%dx%d", r.Size, r.Size),
			r.Colors,
			fmt.Sprintf("%s/%s", r.Topology, r.Adjacency),
			r.Preset,
			r.FinishedAt.Format("2006-01-02 15:04"),
		)
	}

	return nil
}
