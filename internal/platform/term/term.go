// Package term presents a demo session directly on a tcell screen, without
// Bubble Tea. Each terminal cell shows two canvas pixels as a half-block.
package term

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/sneaky/internal/core"
	"github.com/vovakirdan/sneaky/internal/runner"
)

// Presenter draws sessions on a tcell screen.
type Presenter struct {
	screen tcell.Screen
	logger *log.Logger
	input  core.InputFrame
}

// Open creates and initializes the terminal screen.
func Open(logger *log.Logger) (*Presenter, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: create screen: %w: %w", core.ErrInitialization, err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w: %w", core.ErrInitialization, err)
	}
	return NewPresenter(screen, logger), nil
}

// NewPresenter wraps an already initialized screen.
func NewPresenter(screen tcell.Screen, logger *log.Logger) *Presenter {
	if logger == nil {
		logger = log.Default()
	}
	screen.HideCursor()
	screen.Clear()
	return &Presenter{
		screen: screen,
		logger: logger,
		input:  core.NewInputFrame(),
	}
}

// Close restores the terminal.
func (p *Presenter) Close() {
	p.screen.Fini()
}

// Run drives the session at its frame rate until it finishes, the user
// quits or ctx ends. Cancellation (an interrupt signal) counts as a quit;
// a deadline is reported as an error. The session is not closed.
func (p *Presenter) Run(ctx context.Context, session *runner.Session) (runner.Result, error) {
	ticker := time.NewTicker(session.Config().FrameInterval())
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				session.Frame(time.Now(), core.NewInputFrame(core.ActionQuit))
				return session.Result(), nil
			}
			return session.Result(), ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				action := MapKey(ev)
				if action == core.ActionQuit {
					session.Frame(time.Now(), core.NewInputFrame(core.ActionQuit))
					return session.Result(), nil
				}
				p.input.Set(action)

			case *tcell.EventResize:
				p.screen.Sync()
			}

		case now := <-ticker.C:
			finished := session.Frame(now, p.input)
			p.input.Clear()
			p.Draw(session)
			if finished {
				p.logger.Debug("session finished", "frames", session.Result().Frames)
				return session.Result(), nil
			}
		}
	}
}

// Draw paints the session canvas centered on the screen with a status line
// on the last row.
func (p *Presenter) Draw(session *runner.Session) {
	p.screen.Clear()
	cols, rows := p.screen.Size()
	if cols <= 0 || rows <= 1 {
		p.screen.Show()
		return
	}

	grid := core.Downsample(session.Canvas(), cols, rows-1)
	offX := (cols - grid.Cols) / 2
	offY := (rows - 1 - grid.Rows) / 2
	for y, row := range grid.Cells {
		for x, cell := range row {
			style := tcell.StyleDefault.
				Foreground(rgb(cell.FG)).
				Background(rgb(cell.BG))
			p.screen.SetContent(offX+x, offY+y, cell.Rune, nil, style)
		}
	}

	game := session.Game()
	status := fmt.Sprintf("%s | Score: %d | wasd/arrows move, q/esc quit", game.Title(), game.State().Score)
	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for x, r := range []rune(status) {
		if x >= cols {
			break
		}
		p.screen.SetContent(x, rows-1, r, nil, statusStyle)
	}

	p.screen.Show()
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// MapKey translates a tcell key event to a demo action.
func MapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return core.ActionUp
		case 's', 'S':
			return core.ActionDown
		case 'a', 'A':
			return core.ActionLeft
		case 'd', 'D':
			return core.ActionRight
		case 'q', 'Q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}
