// Package registry provides a global registry for demo factories.
// Demos register themselves in init() functions, allowing the CLI and the
// presenters to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/sneaky/internal/core"
)

// Game is the interface every demo implements: the snake variants as well as
// the circle demos. Games hold pure logic and draw into a core.Canvas; the
// platform owns timing, input mapping and presentation.
type Game interface {
	// ID returns a unique identifier (e.g., "snake", "pulse").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides canvas dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step is called once per presented frame with the wall-clock time and
	// the input drained since the previous frame. Games with a fixed tick
	// decide themselves whether enough time elapsed to advance.
	Step(now time.Time, in core.InputFrame) core.StepResult

	// Render draws the current state. The canvas is not pre-cleared;
	// each game clears it with its own background color.
	Render(dst *core.Canvas, txt core.TextDrawer)

	// State returns the current game state (score, game over).
	State() core.GameState
}

// GameInfo contains metadata about a registered demo.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a demo.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a demo factory to the registry.
// Typically called from a demo's init() function.
// Panics if a demo with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: demo %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered demos, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new demo by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown demo %q", id)
	}

	return f(), nil
}

// Exists checks if a demo with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
