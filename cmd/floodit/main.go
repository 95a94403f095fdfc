// floodit is a terminal Flood It puzzle: capture one dot, then pick colors
// to flood the board in as few steps as possible.
//
// Usage:
//
//	floodit play             - Play (resumes the saved game if there is one)
//	floodit presets          - List difficulty presets
//	floodit scores           - Show the best results
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible boards
//	--db <path>         - Set database path (default: ~/.floodit/floodit.db)
//	--config <path>     - Use a custom config YAML
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "floodit",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "floodit",
	Short: "Flood It - flood the board with one color",
	Long: `Flood It is a terminal puzzle. Pick a starting dot, then keep choosing
colors: every choice merges neighboring dots of that color into your region.
Flood the whole board in as few steps as you can.

Available commands:
  play     - Play a game
  presets  - List difficulty presets
  scores   - View the best results

Examples:
  floodit play
  floodit play --difficulty hard
  floodit play --size 16 --colors 5 --torus --diagonal
  floodit scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.floodit/floodit.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(scoresCmd)
}
