// Package config provides YAML-based configuration loading and difficulty
// presets for FloodIt.
package config

import (
	"github.com/vovakirdan/floodit/internal/core"
	"github.com/vovakirdan/floodit/internal/games/floodit/flood"
)

// Board size and palette limits. Smaller boards are clamped up, as the
// engine itself accepts any size.
const (
	MinBoardSize = 10
	MaxBoardSize = 40
	MinColors    = 3
	MaxColors    = 8
)

// FloodConfig contains all configuration for a FloodIt game.
type FloodConfig struct {
	Board   BoardConfig `yaml:"board"`
	Presets []Preset    `yaml:"presets"`
}

// BoardConfig defines the board a new game is dealt on.
type BoardConfig struct {
	Size      int             `yaml:"size"`
	Colors    int             `yaml:"colors"`
	Topology  flood.Topology  `yaml:"topology"`
	Adjacency flood.Adjacency `yaml:"adjacency"`
}

// Preset is a named board configuration offered by the preset menu.
// Topology and adjacency default to plane and orthogonal when omitted.
type Preset struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Size        int             `yaml:"size"`
	Colors      int             `yaml:"colors"`
	Topology    flood.Topology  `yaml:"topology"`
	Adjacency   flood.Adjacency `yaml:"adjacency"`
}

// Board returns the preset as a board configuration.
func (p Preset) Board() BoardConfig {
	return BoardConfig{
		Size:      p.Size,
		Colors:    p.Colors,
		Topology:  p.Topology,
		Adjacency: p.Adjacency,
	}
}

// Normalize clamps size and palette into the supported range and falls
// back to a plane with orthogonal neighbors for unknown topologies.
func (b BoardConfig) Normalize() BoardConfig {
	b.Size = core.Clamp(b.Size, MinBoardSize, MaxBoardSize)
	b.Colors = core.Clamp(b.Colors, MinColors, MaxColors)
	if !b.Topology.Valid() {
		b.Topology = flood.TopologyPlane
	}
	if !b.Adjacency.Valid() {
		b.Adjacency = flood.AdjacencyOrthogonal
	}
	return b
}

// Normalize clamps the board and every preset.
func (c *FloodConfig) Normalize() {
	c.Board = c.Board.Normalize()
	for i := range c.Presets {
		b := c.Presets[i].Board().Normalize()
		c.Presets[i].Size = b.Size
		c.Presets[i].Colors = b.Colors
	}
}
