// Package config provides YAML-based demo configuration loading and
// difficulty management for the snake and circle demos.
package config

import (
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for the snake demos.
type SnakeConfig struct {
	Grid       SnakeGrid        `yaml:"grid"`
	Timing     SnakeTiming      `yaml:"timing"`
	Food       SnakeFood        `yaml:"food"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeGrid defines the cell grid the snake moves on.
type SnakeGrid struct {
	CellSize      int `yaml:"cell_size"`      // Pixels per cell
	InitialLength int `yaml:"initial_length"` // Segments at reset
	MaxLength     int `yaml:"max_length"`     // Growth beyond this is ignored
}

// SnakeTiming defines the fixed tick.
type SnakeTiming struct {
	TickMS    int `yaml:"tick_ms"`
	MinTickMS int `yaml:"min_tick_ms"` // Floor when difficulty speeds the game up
}

// TickInterval returns the base tick as a duration.
func (t SnakeTiming) TickInterval() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// MinTickInterval returns the fastest allowed tick as a duration.
func (t SnakeTiming) MinTickInterval() time.Duration {
	return time.Duration(t.MinTickMS) * time.Millisecond
}

// SnakeFood holds the rules for each food kind.
type SnakeFood struct {
	Regular FoodRule `yaml:"regular"`
	Bonus   FoodRule `yaml:"bonus"`
	Poison  FoodRule `yaml:"poison"`
}

// FoodRule describes one food kind.
type FoodRule struct {
	Score  int `yaml:"score"`  // Score delta on consumption
	Growth int `yaml:"growth"` // Segments added on consumption
	Every  int `yaml:"every"`  // Activate after every N regular foods (specials only)
	TTLMS  int `yaml:"ttl_ms"` // Lifetime after activation, 0 = forever
}

// TTL returns the lifetime as a duration.
func (r FoodRule) TTL() time.Duration {
	return time.Duration(r.TTLMS) * time.Millisecond
}

// PulseConfig contains configuration for the pulsing circle demo.
type PulseConfig struct {
	InitialRadius int `yaml:"initial_radius"`
	Growth        int `yaml:"growth"` // Pixels added to the radius per frame
}

// CirclesConfig contains configuration for the colliding circles demo.
type CirclesConfig struct {
	Radius      int `yaml:"radius"`
	Speed       int `yaml:"speed"`        // Pixels per frame (A) or per key press (B)
	BlinkFrames int `yaml:"blink_frames"` // Highlight duration after a collision
}

// DisplayConfig contains canvas, timing and font settings shared by all demos.
type DisplayConfig struct {
	Width           int        `yaml:"width"`
	Height          int        `yaml:"height"`
	FPS             int        `yaml:"fps"`
	GameOverDelayMS int        `yaml:"game_over_delay_ms"`
	Font            FontConfig `yaml:"font"`
}

// MinDisplaySize is the smallest canvas edge in pixels: one snake cell at the
// default cell size.
const MinDisplaySize = 20

// Validate rejects display settings no demo can run on.
func (d DisplayConfig) Validate() error {
	if d.Width < MinDisplaySize || d.Height < MinDisplaySize {
		return fmt.Errorf("config: display %dx%d is smaller than %dx%d",
			d.Width, d.Height, MinDisplaySize, MinDisplaySize)
	}
	if d.FPS <= 0 {
		return fmt.Errorf("config: display fps must be positive, got %d", d.FPS)
	}
	if d.GameOverDelayMS < 0 {
		return fmt.Errorf("config: game_over_delay_ms must not be negative, got %d", d.GameOverDelayMS)
	}
	return nil
}

// GameOverDelay returns how long the end screen stays visible.
func (d DisplayConfig) GameOverDelay() time.Duration {
	return time.Duration(d.GameOverDelayMS) * time.Millisecond
}

// FontConfig selects the face used by the text rasterizer.
type FontConfig struct {
	Path string  `yaml:"path"` // Empty means the embedded Go Regular face
	Size float64 `yaml:"size"`
	DPI  float64 `yaml:"dpi"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string is accepted and
// means "keep the configured difficulty".
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
