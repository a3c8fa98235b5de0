package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sneaky/internal/core"
	"github.com/vovakirdan/sneaky/internal/runner"
)

// Fallback terminal size until the first WindowSizeMsg arrives.
const (
	defaultCols = 80
	defaultRows = 24
)

// Model is the Bubble Tea model that presents one demo session.
type Model struct {
	session  *runner.Session
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	width    int
	height   int
	quitting bool
}

// NewModel creates a model around an open session.
func NewModel(session *runner.Session) Model {
	return Model{
		session: session,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		input:   core.NewInputFrame(),
		width:   defaultCols,
		height:  defaultRows,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.session.Config().FrameInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the mapped action for the next frame.
// Quit is delivered at once so the run ends without waiting for a frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.session.Frame(time.Now(), core.NewInputFrame(core.ActionQuit))
		m.input.Clear()
		m.quitting = true
		return m, tea.Quit
	}

	m.input.Set(action)
	return m, nil
}

// handleFrame runs one session frame with the input gathered since the last.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	done := m.session.Frame(now, m.input)
	m.input.Clear()
	if done {
		m.quitting = true
		return m, tea.Quit
	}
	return m, frameCmd(m.session.Config().FrameInterval())
}

// View renders the canvas and a status line under it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.statusLine()
	rows := m.height - lipgloss.Height(footer)
	grid := core.Downsample(m.session.Canvas(), m.width, max(rows, 1))
	body := RenderCells(grid)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.Place(m.width, max(rows, 1), lipgloss.Center, lipgloss.Center, body),
		footer,
	)
}

// statusLine shows the demo title, the score and the key help.
func (m Model) statusLine() string {
	t := GetTheme()
	game := m.session.Game()
	sep := t.HUDSeparator.Render(" | ")
	return t.HUDTitle.Render(game.Title()) + sep +
		t.HUDValue.Render(fmt.Sprintf("Score: %d", game.State().Score)) + sep +
		m.help.View(m.keys)
}

// Session returns the presented session.
func (m Model) Session() *runner.Session {
	return m.session
}

// Run presents the session in the alternate screen until it finishes.
// width and height give the terminal size until the first resize message.
// The session is not closed.
func Run(session *runner.Session, width, height int) (runner.Result, error) {
	m := NewModel(session)
	if width > 0 && height > 0 {
		m.width, m.height = width, height
		m.help.Width = width
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return session.Result(), fmt.Errorf("tui: %w", err)
	}
	return session.Result(), nil
}
