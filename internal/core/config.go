package core

import (
	"errors"
	"time"
)

// ErrInitialization marks failures to acquire the display surface, the font
// or the configuration at startup. These are fatal: the process reports the
// error and exits with status 1.
var ErrInitialization = errors.New("initialization failed")

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size their world and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW       int           // Canvas width in pixels
	ScreenH       int           // Canvas height in pixels
	FrameRate     int           // Frames presented per second (default 60)
	Seed          int64         // RNG seed for deterministic gameplay
	GameOverDelay time.Duration // How long the end screen stays up
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       DefaultWidth,
		ScreenH:       DefaultHeight,
		FrameRate:     60,
		Seed:          0, // 0 means use current time in platform layer
		GameOverDelay: 3 * time.Second,
	}
}

// FrameInterval returns the time between presented frames.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FrameRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has reached its terminal state
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State    GameState
	Advanced bool // Whether the game state advanced (a tick happened) this frame
}
