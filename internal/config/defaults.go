package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/pulse.yaml
var defaultPulseYAML []byte

//go:embed defaults/circles.yaml
var defaultCirclesYAML []byte

//go:embed defaults/display.yaml
var defaultDisplayYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			CellSize:      20,
			InitialLength: 3,
			MaxLength:     200,
		},
		Timing: SnakeTiming{
			TickMS:    100,
			MinTickMS: 50,
		},
		Food: SnakeFood{
			Regular: FoodRule{Score: 10, Growth: 1},
			Bonus:   FoodRule{Score: 50, Growth: 2, Every: 5},
			Poison:  FoodRule{Score: -10, Growth: 0, Every: 4, TTLMS: 4000},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultPulseConfig returns the default pulsing circle configuration.
func DefaultPulseConfig() PulseConfig {
	return PulseConfig{
		InitialRadius: 50,
		Growth:        2,
	}
}

// DefaultCirclesConfig returns the default colliding circles configuration.
func DefaultCirclesConfig() CirclesConfig {
	return CirclesConfig{
		Radius:      30,
		Speed:       5,
		BlinkFrames: 10,
	}
}

// DefaultDisplayConfig returns the default display configuration.
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		Width:           640,
		Height:          480,
		FPS:             60,
		GameOverDelayMS: 3000,
		Font: FontConfig{
			Size: 24,
			DPI:  72,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name
// ("snake", "pulse", "circles", "display").
func GetDefaultYAML(name string) []byte {
	switch name {
	case "snake":
		return defaultSnakeYAML
	case "pulse":
		return defaultPulseYAML
	case "circles":
		return defaultCirclesYAML
	case "display":
		return defaultDisplayYAML
	default:
		return nil
	}
}
