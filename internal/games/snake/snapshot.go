package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StateWaiting  GameStateType = "waiting" // Tick clock not started yet
	StateRunning  GameStateType = "running"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Variant      string
	Score        int
	FoodEaten    int
	SnakeLen     int
	HeadX        int
	HeadY        int
	Dir          Direction
	FoodX        int
	FoodY        int
	BonusActive  bool
	BonusX       int
	BonusY       int
	PoisonActive bool
	PoisonX      int
	PoisonY      int
	TickInterval int64 // Milliseconds
	State        GameStateType
	Reason       EndReason
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StateRunning
	switch {
	case g.gameOver:
		state = StateGameOver
	case !g.started:
		state = StateWaiting
	}

	headX, headY := 0, 0
	if len(g.snake) > 0 {
		headX = g.snake[0].X
		headY = g.snake[0].Y
	}

	return Snapshot{
		Tick:         g.tick,
		Variant:      g.variant.ID,
		Score:        g.score,
		FoodEaten:    g.foodEaten,
		SnakeLen:     len(g.snake),
		HeadX:        headX,
		HeadY:        headY,
		Dir:          g.direction,
		FoodX:        g.food.Pos.X,
		FoodY:        g.food.Pos.Y,
		BonusActive:  g.bonus.Active,
		BonusX:       g.bonus.Pos.X,
		BonusY:       g.bonus.Pos.Y,
		PoisonActive: g.poison.Active,
		PoisonX:      g.poison.Pos.X,
		PoisonY:      g.poison.Pos.Y,
		TickInterval: g.tickInterval().Milliseconds(),
		State:        state,
		Reason:       g.reason,
	}
}
