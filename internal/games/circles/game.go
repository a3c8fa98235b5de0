// Package circles implements two circles that collide: one drifts across
// the canvas on its own, the other is steered with the arrow keys.
package circles

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

// Game implements the colliding circles demo.
type Game struct {
	cfg    config.CirclesConfig
	custom *config.CirclesConfig

	drifter core.Point // Circle A, moves right every frame and wraps
	player  core.Point // Circle B, moved by arrow keys

	// Collision episode: handled is set on first contact and cleared once
	// the highlight has run out.
	handled   bool
	blink     int
	highlight bool
	hits      int

	screenW int
	screenH int
}

// New creates a colliding circles demo.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a demo that ignores config files and uses cfg.
func NewWithConfig(cfg config.CirclesConfig) *Game {
	return &Game{custom: &cfg}
}

func init() {
	registry.Register("circles", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "circles"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Colliding Circles"
}

// Reset places A at the left edge and B at the top center.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg := config.DefaultCirclesConfig()
	if g.custom != nil {
		cfg = *g.custom
	} else if loaded, err := config.LoadCircles(configPath); err == nil {
		cfg = loaded
	}
	g.cfg = cfg

	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.drifter = core.Point{X: 0, Y: g.screenH / 2}
	g.player = core.Point{X: g.screenW / 2, Y: 0}
	g.handled = false
	g.blink = 0
	g.highlight = false
	g.hits = 0
}

// Step applies key presses to B, moves A, then resolves collisions.
func (g *Game) Step(_ time.Time, input core.InputFrame) core.StepResult {
	speed := g.cfg.Speed
	r := g.cfg.Radius

	// Every press moves B, including repeats within one frame
	for _, a := range input.Events() {
		switch a {
		case core.ActionUp:
			g.player.Y -= speed
		case core.ActionDown:
			g.player.Y += speed
		case core.ActionLeft:
			g.player.X -= speed
		case core.ActionRight:
			g.player.X += speed
		}
	}

	g.drifter.X += speed
	if g.drifter.X > g.screenW+r {
		g.drifter.X = -r
	}

	if core.CirclesOverlap(g.drifter, r, g.player, r) && !g.handled {
		g.handled = true
		g.drifter.X -= speed
		g.blink = g.cfg.BlinkFrames
		g.hits++
	}

	if g.handled {
		if g.blink > 0 {
			g.highlight = true
			g.blink--
		} else {
			g.handled = false
			g.highlight = false
		}
	}

	return core.StepResult{State: g.State(), Advanced: true}
}

// Render draws A in white and B in red, or yellow while highlighted.
func (g *Game) Render(dst *core.Canvas, _ core.TextDrawer) {
	dst.SetDrawColor(core.ColorBlack)
	dst.Clear()

	r := g.cfg.Radius
	dst.SetDrawColor(core.ColorWhite)
	core.FillCircle(dst, g.drifter.X, g.drifter.Y, r)

	if g.highlight {
		dst.SetDrawColor(core.ColorYellow)
	} else {
		dst.SetDrawColor(core.ColorRed)
	}
	core.FillCircle(dst, g.player.X, g.player.Y, r)
}

// State returns the current game state. The score counts collisions.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.hits}
}

// Positions returns the centers of A and B.
func (g *Game) Positions() (drifter, player core.Point) {
	return g.drifter, g.player
}

// Highlighted reports whether B is currently drawn in the highlight color.
func (g *Game) Highlighted() bool {
	return g.highlight
}
