package term

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/sneaky/internal/core"
	"github.com/vovakirdan/sneaky/internal/games/pulse"
	"github.com/vovakirdan/sneaky/internal/runner"
)

func newSimPresenter(t *testing.T) (*Presenter, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	screen.SetSize(80, 25)
	p := NewPresenter(screen, log.New(io.Discard))
	t.Cleanup(p.Close)
	return p, screen
}

func newPulseSession(t *testing.T) *runner.Session {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	s := runner.New(pulse.New(), nil, cfg, nil)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name     string
		key      tcell.Key
		r        rune
		expected core.Action
	}{
		{"up arrow", tcell.KeyUp, 0, core.ActionUp},
		{"down arrow", tcell.KeyDown, 0, core.ActionDown},
		{"left arrow", tcell.KeyLeft, 0, core.ActionLeft},
		{"right arrow", tcell.KeyRight, 0, core.ActionRight},
		{"w", tcell.KeyRune, 'w', core.ActionUp},
		{"S", tcell.KeyRune, 'S', core.ActionDown},
		{"a", tcell.KeyRune, 'a', core.ActionLeft},
		{"d", tcell.KeyRune, 'd', core.ActionRight},
		{"q", tcell.KeyRune, 'q', core.ActionQuit},
		{"escape", tcell.KeyEscape, 0, core.ActionQuit},
		{"ctrl+c", tcell.KeyCtrlC, 0, core.ActionQuit},
		{"unbound rune", tcell.KeyRune, 'x', core.ActionNone},
		{"enter", tcell.KeyEnter, 0, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ev := tcell.NewEventKey(tc.key, tc.r, tcell.ModNone)
			if got := MapKey(ev); got != tc.expected {
				t.Errorf("MapKey() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDraw(t *testing.T) {
	p, screen := newSimPresenter(t)
	session := newPulseSession(t)

	session.Frame(time.Unix(0, 0), core.NewInputFrame())
	p.Draw(session)

	cells, w, h := screen.GetContents()
	if w != 80 || h != 25 {
		t.Fatalf("screen size = %dx%d, expected 80x25", w, h)
	}

	halfBlocks := 0
	for _, c := range cells {
		if len(c.Runes) > 0 && c.Runes[0] == core.HalfBlock {
			halfBlocks++
		}
	}
	if halfBlocks == 0 {
		t.Error("canvas was not drawn")
	}

	var status strings.Builder
	for _, c := range cells[(h-1)*w:] {
		if len(c.Runes) > 0 {
			status.WriteRune(c.Runes[0])
		}
	}
	if !strings.HasPrefix(status.String(), "Pulsing Circle | Score: 0") {
		t.Errorf("status line = %q", status.String())
	}
}

func TestRunQuitKey(t *testing.T) {
	p, screen := newSimPresenter(t)
	session := newPulseSession(t)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := p.Run(ctx, session)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !res.Quit {
		t.Error("Result.Quit should be true after q")
	}
	if res.GameOver {
		t.Error("pulse never ends on its own")
	}
}

func TestRunContextCancelledIsQuit(t *testing.T) {
	p, _ := newSimPresenter(t)
	session := newPulseSession(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := p.Run(ctx, session)
	if err != nil {
		t.Fatalf("Run() error = %v, expected an interrupt to end the run normally", err)
	}
	if !res.Quit || !session.Done() {
		t.Errorf("Result = %+v, expected a quit", res)
	}
}

func TestRunDeadlineExceeded(t *testing.T) {
	p, _ := newSimPresenter(t)
	session := newPulseSession(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := p.Run(ctx, session)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, expected context.DeadlineExceeded", err)
	}
	if session.Result().Quit {
		t.Error("a deadline is not a user quit")
	}
}
