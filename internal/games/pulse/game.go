// Package pulse implements a circle that grows every frame and snaps back
// to its initial radius when it reaches the canvas edge.
package pulse

import (
	"time"

	"github.com/vovakirdan/sneaky/internal/config"
	"github.com/vovakirdan/sneaky/internal/core"
	"github.com/vovakirdan/sneaky/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the pulsing circle demo.
type Game struct {
	cfg    config.PulseConfig
	custom *config.PulseConfig

	center core.Point
	radius int
	frame  uint64
	resets int

	screenW int
	screenH int
}

// New creates a pulsing circle demo.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a demo that ignores config files and uses cfg.
func NewWithConfig(cfg config.PulseConfig) *Game {
	return &Game{custom: &cfg}
}

func init() {
	registry.Register("pulse", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pulse"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pulsing Circle"
}

// Reset centers the circle and restores the initial radius.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg := config.DefaultPulseConfig()
	if g.custom != nil {
		cfg = *g.custom
	} else if loaded, err := config.LoadPulse(configPath); err == nil {
		cfg = loaded
	}
	g.cfg = cfg

	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.center = core.Point{X: g.screenW / 2, Y: g.screenH / 2}
	g.radius = cfg.InitialRadius
	g.frame = 0
	g.resets = 0
}

// Step grows the radius once per frame. Input other than quit is ignored.
func (g *Game) Step(_ time.Time, _ core.InputFrame) core.StepResult {
	g.frame++
	g.radius += g.cfg.Growth
	if !core.CircleFits(g.center, g.radius, g.screenW, g.screenH) {
		g.radius = g.cfg.InitialRadius
		g.resets++
	}
	return core.StepResult{State: g.State(), Advanced: true}
}

// Render draws the circle in white on black.
func (g *Game) Render(dst *core.Canvas, _ core.TextDrawer) {
	dst.SetDrawColor(core.ColorBlack)
	dst.Clear()
	dst.SetDrawColor(core.ColorWhite)
	core.FillCircle(dst, g.center.X, g.center.Y, g.radius)
}

// State returns the current game state. The demo never ends on its own;
// the score reports how many pulses completed.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.resets}
}

// Radius returns the current radius.
func (g *Game) Radius() int {
	return g.radius
}
