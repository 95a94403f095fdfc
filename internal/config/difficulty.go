package config

import (
	"fmt"
	"strings"
)

// PresetCustom names the board section of the config itself.
const PresetCustom = "custom"

// FindPreset looks up a preset by case-insensitive name.
func (c *FloodConfig) FindPreset(name string) (Preset, bool) {
	for _, p := range c.Presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// PresetNames returns the preset names in config order, followed by custom.
func (c *FloodConfig) PresetNames() []string {
	names := make([]string, 0, len(c.Presets)+1)
	for _, p := range c.Presets {
		names = append(names, p.Name)
	}
	return append(names, PresetCustom)
}

// ApplyPreset replaces the board section with the named preset.
// "custom" and the empty name keep the board as configured.
func ApplyPreset(cfg *FloodConfig, name string) error {
	if name == "" || strings.EqualFold(name, PresetCustom) {
		return nil
	}
	p, ok := cfg.FindPreset(name)
	if !ok {
		return fmt.Errorf("config: unknown preset %q (have %s)", name, strings.Join(cfg.PresetNames(), ", "))
	}
	cfg.Board = p.Board().Normalize()
	return nil
}
