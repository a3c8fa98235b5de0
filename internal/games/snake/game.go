package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/sneaky/internal/config"
	"github.com/vovakirdan/sneaky/internal/core"
	"github.com/vovakirdan/sneaky/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Vector returns the unit grid step for the direction.
func (d Direction) Vector() core.Point {
	switch d {
	case DirUp:
		return core.Point{X: 0, Y: -1}
	case DirDown:
		return core.Point{X: 0, Y: 1}
	case DirLeft:
		return core.Point{X: -1, Y: 0}
	default:
		return core.Point{X: 1, Y: 0}
	}
}

// Perpendicular reports whether two directions are at right angles.
// Parallel and opposite directions are not.
func (d Direction) Perpendicular(o Direction) bool {
	a, b := d.Vector(), o.Vector()
	return a.X*b.X+a.Y*b.Y == 0
}

// EndReason records which terminal check ended the game.
type EndReason string

const (
	EndNone     EndReason = ""
	EndBoundary EndReason = "boundary"
	EndSelf     EndReason = "self_collision"
	EndScore    EndReason = "negative_score"
)

// Variant selects which special food items a snake demo uses.
type Variant struct {
	ID     string
	Title  string
	Bonus  bool
	Poison bool
}

// Variants lists every registered snake demo.
var Variants = []Variant{
	{ID: "snake", Title: "Sneaky Snake", Bonus: true, Poison: true},
	{ID: "snake_classic", Title: "Sneaky Snake (Classic)"},
	{ID: "snake_bonus", Title: "Sneaky Snake (Bonus)", Bonus: true},
	{ID: "snake_poison", Title: "Sneaky Snake (Poison)", Poison: true},
}

// Game implements the snake demos.
type Game struct {
	variant    Variant
	custom     *config.SnakeConfig
	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	tick      uint64
	score     int
	foodEaten int

	// Snake state
	snake     []core.Point // Head at index 0
	direction Direction    // Heading applied at the last tick
	nextDir   Direction    // Buffered direction for next tick

	food   Food
	bonus  Food
	poison Food

	screenW int
	screenH int

	// Tick clock
	started  bool
	lastTick time.Time

	gameOver bool
	endShown bool // The final playfield frame has been drawn
	reason   EndReason
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// New creates the full snake demo with bonus and poison food.
func New() *Game {
	return NewVariant(Variants[0])
}

// NewVariant creates a snake demo for the given variant.
func NewVariant(v Variant) *Game {
	return &Game{variant: v}
}

// NewWithConfig creates a variant that ignores config files and uses cfg.
func NewWithConfig(v Variant, cfg config.SnakeConfig) *Game {
	return &Game{variant: v, custom: &cfg}
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return NewVariant(v)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg := config.DefaultSnakeConfig()
	if g.custom != nil {
		cfg = *g.custom
	} else if loaded, err := config.LoadSnake(configPath); err == nil {
		cfg = loaded
	}
	if difficultyPreset != "" {
		config.ApplySnakePreset(&cfg, difficultyPreset)
	}
	if cfg.Grid.CellSize <= 0 {
		cfg.Grid.CellSize = config.DefaultSnakeConfig().Grid.CellSize
	}
	if cfg.Grid.MaxLength <= 0 || cfg.Grid.MaxLength < cfg.Grid.InitialLength {
		cfg.Grid.MaxLength = max(config.DefaultSnakeConfig().Grid.MaxLength, cfg.Grid.InitialLength)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.tick = 0
	g.score = 0
	g.foodEaten = 0
	g.started = false
	g.lastTick = time.Time{}
	g.gameOver = false
	g.endShown = false
	g.reason = EndNone

	g.initSnake()

	cell := cfg.Grid.CellSize
	g.food = newFood(FoodRegular, cfg.Food.Regular, cell)
	g.food.place(g.rng, g.screenW, g.screenH, cell)
	g.food.Active = true
	g.bonus = newFood(FoodBonus, cfg.Food.Bonus, cell)
	g.poison = newFood(FoodPoison, cfg.Food.Poison, cell)
}

// initSnake lays the snake out horizontally from the canvas center,
// head first, heading right.
func (g *Game) initSnake() {
	cell := g.cfg.Grid.CellSize
	n := max(g.cfg.Grid.InitialLength, 1)
	g.snake = make([]core.Point, n, max(g.cfg.Grid.MaxLength, n))
	for i := range n {
		g.snake[i] = core.Point{X: g.screenW/2 - i*cell, Y: g.screenH / 2}
	}
	g.direction = DirRight
	g.nextDir = DirRight
}

// Step handles input every frame and advances the simulation when a full
// tick interval has elapsed since the last advance.
func (g *Game) Step(now time.Time, input core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	// The first frame only starts the tick clock
	if !g.started {
		g.started = true
		g.lastTick = now
		return core.StepResult{State: g.State()}
	}

	if now.Sub(g.lastTick) < g.tickInterval() {
		return core.StepResult{State: g.State()}
	}
	g.lastTick = now
	g.advance(now)

	return core.StepResult{State: g.State(), Advanced: true}
}

// processInput buffers direction changes in arrival order.
// A request is accepted when it is perpendicular to the heading applied at
// the last tick; the last accepted request wins.
func (g *Game) processInput(input core.InputFrame) {
	for _, a := range input.Events() {
		var d Direction
		switch a {
		case core.ActionUp:
			d = DirUp
		case core.ActionDown:
			d = DirDown
		case core.ActionLeft:
			d = DirLeft
		case core.ActionRight:
			d = DirRight
		default:
			continue
		}
		if d.Perpendicular(g.direction) {
			g.nextDir = d
		}
	}
}

// tickInterval returns the current tick duration.
func (g *Game) tickInterval() time.Duration {
	base := g.cfg.Timing.TickInterval()
	floor := min(g.cfg.Timing.MinTickInterval(), base)
	return g.difficulty.TickInterval(base, floor, g.score, int(g.tick))
}

// advance performs one tick: move, eat, expire, then terminal checks.
func (g *Game) advance(now time.Time) {
	g.tick++
	g.direction = g.nextDir
	cell := g.cfg.Grid.CellSize

	// Every segment takes its predecessor's place, then the head moves
	lost := g.snake[len(g.snake)-1]
	for i := len(g.snake) - 1; i > 0; i-- {
		g.snake[i] = g.snake[i-1]
	}
	g.snake[0] = g.snake[0].Add(g.direction.Vector().Scale(cell))
	head := g.snake[0]

	if head == g.food.Pos {
		g.score += g.food.Rule.Score
		g.grow(lost, g.food.Rule.Growth)
		g.foodEaten++
		g.food.place(g.rng, g.screenW, g.screenH, cell)

		if g.variant.Bonus && g.bonus.due(g.foodEaten) {
			g.bonus.activate(g.rng, g.screenW, g.screenH, cell, now)
		}
		if g.variant.Poison && g.poison.due(g.foodEaten) {
			g.poison.activate(g.rng, g.screenW, g.screenH, cell, now)
		}
	}

	if g.bonus.Active && head == g.bonus.Pos {
		g.score += g.bonus.Rule.Score
		g.grow(lost, g.bonus.Rule.Growth)
		g.bonus.deactivate(cell)
	}

	if g.poison.Active && head == g.poison.Pos {
		g.score += g.poison.Rule.Score
		g.grow(lost, g.poison.Rule.Growth)
		g.poison.deactivate(cell)
	}
	if g.poison.expired(now) {
		g.poison.deactivate(cell)
	}

	switch {
	case head.X < 0 || head.X >= g.screenW || head.Y < 0 || head.Y >= g.screenH:
		g.end(EndBoundary)
	case g.hitsSelf():
		g.end(EndSelf)
	case g.variant.Poison && g.score < 0:
		g.end(EndScore)
	}
}

// grow appends n copies of the position vacated by the tail this tick.
// Growth beyond the maximum length is ignored.
func (g *Game) grow(tail core.Point, n int) {
	for range n {
		if len(g.snake) >= g.cfg.Grid.MaxLength {
			return
		}
		g.snake = append(g.snake, tail)
	}
}

// hitsSelf reports whether the head shares a cell with any body segment.
func (g *Game) hitsSelf() bool {
	for _, seg := range g.snake[1:] {
		if seg == g.snake[0] {
			return true
		}
	}
	return false
}

func (g *Game) end(reason EndReason) {
	g.gameOver = true
	g.reason = reason
}

// Render draws the playfield, or the end screen once the game is over.
// The tick that ends the game still gets one playfield frame.
func (g *Game) Render(dst *core.Canvas, txt core.TextDrawer) {
	dst.SetDrawColor(core.ColorBlack)
	dst.Clear()

	if g.gameOver {
		if g.endShown {
			g.renderGameOver(dst, txt)
			return
		}
		g.endShown = true
	}

	cell := g.cfg.Grid.CellSize
	for _, f := range []*Food{&g.food, &g.bonus, &g.poison} {
		if !f.Active {
			continue
		}
		dst.SetDrawColor(f.Kind.Color())
		dst.FillRect(core.CellRect(f.Pos, cell))
	}

	dst.SetDrawColor(core.ColorGreen)
	for _, seg := range g.snake {
		dst.FillRect(core.CellRect(seg, cell))
	}

	if txt != nil {
		txt.DrawText(dst, fmt.Sprintf("Score: %d", g.score), 10, 10, core.ColorWhite)
	}
}

// renderGameOver draws the fixed end screen.
func (g *Game) renderGameOver(dst *core.Canvas, txt core.TextDrawer) {
	if txt == nil {
		return
	}
	w, h := dst.Width(), dst.Height()
	txt.DrawText(dst, "Game Over", w/2-60, h/2-20, core.ColorRed)
	txt.DrawText(dst, fmt.Sprintf("Final Score: %d", g.score), w/2-80, h/2+20, core.ColorWhite)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// Reason returns why the game ended, or EndNone while running.
func (g *Game) Reason() EndReason {
	return g.reason
}

// Segments returns a copy of the snake body, head first.
func (g *Game) Segments() []core.Point {
	out := make([]core.Point, len(g.snake))
	copy(out, g.snake)
	return out
}

// --- String representation for Direction ---

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// --- Debug helper ---

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Eaten: %d\n", g.tick, g.score, g.foodEaten)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", len(g.snake), g.direction)
	if len(g.snake) > 0 {
		fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", g.snake[0].X, g.snake[0].Y, g.food.Pos.X, g.food.Pos.Y)
	}
	fmt.Fprintf(&b, "Bonus: %v, Poison: %v\n", g.bonus.Active, g.poison.Active)
	fmt.Fprintf(&b, "GameOver: %v (%s)\n", g.gameOver, g.reason)
	return b.String()
}
