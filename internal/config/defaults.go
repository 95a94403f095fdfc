package config

import (
	_ "embed"

	"github.com/vovakirdan/floodit/internal/games/floodit/flood"
)

//go:embed defaults/floodit.yaml
var defaultFloodYAML []byte

// DefaultFloodConfig returns the built-in configuration, used when the
// embedded YAML cannot be parsed.
func DefaultFloodConfig() FloodConfig {
	return FloodConfig{
		Board: BoardConfig{
			Size:      12,
			Colors:    6,
			Topology:  flood.TopologyPlane,
			Adjacency: flood.AdjacencyOrthogonal,
		},
		Presets: []Preset{
			{Name: "easy", Description: "Small board, five colors", Size: 10, Colors: 5},
			{Name: "normal", Description: "Classic 14x14 with six colors", Size: 14, Colors: 6},
			{Name: "hard", Description: "Large board, seven colors", Size: 20, Colors: 7},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFloodYAML
}
