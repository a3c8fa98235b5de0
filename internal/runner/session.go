// Package runner drives one demo run: it owns the game, the canvas and the
// text rasterizer, and applies the per-frame contract shared by every
// presenter.
package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sneaky/internal/config"
	"github.com/vovakirdan/sneaky/internal/core"
	"github.com/vovakirdan/sneaky/internal/registry"
	"github.com/vovakirdan/sneaky/internal/text"
)

// Text is a text drawer whose resources are released by Close.
type Text interface {
	core.TextDrawer
	Close() error
}

// Result summarizes a finished (or abandoned) run.
type Result struct {
	GameID   string
	Score    int
	GameOver bool // The game reached its terminal state
	Quit     bool // The user quit before the end screen finished
	Frames   uint64
	Duration time.Duration
}

// Session runs one game from its first frame until quit or until the end
// screen delay has elapsed.
type Session struct {
	game   registry.Game
	canvas *core.Canvas
	text   Text
	cfg    core.RuntimeConfig
	logger *log.Logger

	frames    uint64
	startedAt time.Time
	lastFrame time.Time
	overAt    time.Time
	gameOver  bool
	quit      bool
	done      bool
	closed    bool
}

// New creates a session around an already constructed game and resets it.
// txt may be nil for demos that draw no text. A nil logger discards output.
func New(game registry.Game, txt Text, cfg core.RuntimeConfig, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Session{
		game:   game,
		canvas: core.NewCanvas(cfg.ScreenW, cfg.ScreenH),
		text:   txt,
		cfg:    cfg,
		logger: logger.With("game", game.ID()),
	}
	game.Reset(cfg)
	s.logger.Debug("session started", "width", cfg.ScreenW, "height", cfg.ScreenH, "seed", cfg.Seed)
	return s
}

// Open creates the game registered under id together with a text rasterizer
// for the display font. A zero seed is replaced with the current time.
// Display settings that no demo can run on are an initialization failure.
func Open(id string, display config.DisplayConfig, seed int64, logger *log.Logger) (*Session, error) {
	game, err := registry.Create(id)
	if err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}

	if err := display.Validate(); err != nil {
		return nil, fmt.Errorf("runner: %w: %w", core.ErrInitialization, err)
	}

	txt, err := text.New(display.Font)
	if err != nil {
		return nil, err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := RuntimeConfig(display, seed)
	return New(game, txt, cfg, logger), nil
}

// RuntimeConfig builds the game runtime settings from the display config.
func RuntimeConfig(display config.DisplayConfig, seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if display.Width > 0 {
		cfg.ScreenW = display.Width
	}
	if display.Height > 0 {
		cfg.ScreenH = display.Height
	}
	if display.FPS > 0 {
		cfg.FrameRate = display.FPS
	}
	if display.GameOverDelayMS >= 0 {
		cfg.GameOverDelay = display.GameOverDelay()
	}
	cfg.Seed = seed
	return cfg
}

// Frame runs one presented frame. Quit ends the run at once without
// rendering. Otherwise the game steps (until it is over) and renders.
// Frame returns true once the run has finished.
func (s *Session) Frame(now time.Time, in core.InputFrame) bool {
	if s.done {
		return true
	}

	if s.frames == 0 {
		s.startedAt = now
	}
	s.frames++
	s.lastFrame = now

	if in.Has(core.ActionQuit) {
		s.quit = true
		s.done = true
		s.logger.Debug("quit requested", "frame", s.frames, "score", s.game.State().Score)
		return true
	}

	if !s.gameOver {
		res := s.game.Step(now, in)
		if res.State.GameOver {
			s.gameOver = true
			s.overAt = now
			s.logger.Info("game over", "score", res.State.Score, "frame", s.frames)
			if d, ok := s.game.(interface{ DebugState() string }); ok {
				s.logger.Debug("final state", "state", d.DebugState())
			}
		}
	}

	s.game.Render(s.canvas, s.drawer())

	if s.gameOver && now.Sub(s.overAt) >= s.cfg.GameOverDelay {
		s.done = true
		s.logger.Debug("end screen elapsed", "delay", s.cfg.GameOverDelay)
	}
	return s.done
}

// drawer returns the text drawer as an interface value that is nil when no
// rasterizer was supplied.
func (s *Session) drawer() core.TextDrawer {
	if s.text == nil {
		return nil
	}
	return s.text
}

// Canvas returns the frame buffer the game draws into.
func (s *Session) Canvas() *core.Canvas {
	return s.canvas
}

// Game returns the running game.
func (s *Session) Game() registry.Game {
	return s.game
}

// Config returns the runtime settings the game was reset with.
func (s *Session) Config() core.RuntimeConfig {
	return s.cfg
}

// Done reports whether the run has finished.
func (s *Session) Done() bool {
	return s.done
}

// Result reports the outcome so far.
func (s *Session) Result() Result {
	var d time.Duration
	if s.frames > 0 {
		d = s.lastFrame.Sub(s.startedAt)
	}
	return Result{
		GameID:   s.game.ID(),
		Score:    s.game.State().Score,
		GameOver: s.gameOver,
		Quit:     s.quit,
		Frames:   s.frames,
		Duration: d,
	}
}

// Close releases the text rasterizer. It is safe to call more than once.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.logger.Debug("session closed", "frames", s.frames)
	if s.text == nil {
		return nil
	}
	return s.text.Close()
}
