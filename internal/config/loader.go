package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "floodit.yaml"

// Load loads the FloodIt configuration.
// Search order: customPath -> ~/.floodit/configs/floodit.yaml -> ./configs/floodit.yaml -> embedded default
func Load(customPath string) (FloodConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FloodConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return FloodConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultFloodYAML)
	if err != nil {
		return DefaultFloodConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and normalizes the
// result, so partial files only override what they mention.
func Parse(data []byte) (FloodConfig, error) {
	cfg := DefaultFloodConfig()
	cfg.Presets = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FloodConfig{}, err
	}
	if len(cfg.Presets) == 0 {
		cfg.Presets = DefaultFloodConfig().Presets
	}
	cfg.Normalize()
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".floodit", "configs", filename)
}
