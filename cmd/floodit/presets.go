package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/floodit/internal/config"
)

var flagDumpYAML bool

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long: `Shows the difficulty presets of the active configuration.

With --yaml the built-in configuration is printed instead, as a starting
point for ~/.floodit/configs/floodit.yaml.`,
	Args: cobra.NoArgs,
	RunE: runPresets,
}

func init() {
	presetsCmd.Flags().BoolVar(&flagDumpYAML, "yaml", false, "Print the built-in config YAML")
}

func runPresets(_ *cobra.Command, _ []string) error {
	if flagDumpYAML {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Calculate column widths
	maxNameLen := len(config.PresetCustom)
	for _, p := range cfg.Presets {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()
	fmt.Printf("  %-*s  %-7s  %-6s  %-18s  %s\n", maxNameLen, "Name", "Board", "Colors", "Rule", "Description")
	fmt.Printf("  %-*s  %-7s  %-6s  %-18s  %s\n", maxNameLen, "----", "-----", "------", "----", "-----------")

	row := func(name, desc string, b config.BoardConfig) {
		fmt.Printf("  %-*s  %-7s  %-6d  %-18s  %s\n",
			maxNameLen, name,
			fmt.Sprintf("%dx%d", b.Size, b.Size),
			b.Colors,
			fmt.Sprintf("%s/%s", b.Topology, b.Adjacency),
			desc,
		)
	}
	for _, p := range cfg.Presets {
		row(p.Name, p.Description, p.Board())
	}
	row(config.PresetCustom, "Board section of the config, adjusted by flags", cfg.Board)

	fmt.Println()
	fmt.Println("Run 'floodit play --difficulty <name>' to play a preset.")
	return nil
}
