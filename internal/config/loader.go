package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads snake configuration.
// Search order: customPath -> ~/.sneaky/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load("snake", customPath, DefaultSnakeConfig)
}

// LoadPulse loads pulsing circle configuration.
func LoadPulse(customPath string) (PulseConfig, error) {
	return load("pulse", customPath, DefaultPulseConfig)
}

// LoadCircles loads colliding circles configuration.
func LoadCircles(customPath string) (CirclesConfig, error) {
	return load("circles", customPath, DefaultCirclesConfig)
}

// LoadDisplay loads display configuration.
func LoadDisplay(customPath string) (DisplayConfig, error) {
	return load("display", customPath, DefaultDisplayConfig)
}

// load resolves one config file. Files are decoded on top of the hardcoded
// defaults, so a partial YAML only overrides the keys it sets.
func load[T any](name, customPath string, defaults func() T) (T, error) {
	cfg := defaults()
	filename := name + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return defaults(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := defaults()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	candidate := defaults()
	if err := yaml.Unmarshal(GetDefaultYAML(name), &candidate); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return candidate, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sneaky", "configs", filename)
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// The empty preset leaves the config untouched.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
