package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sneaky/internal/core"
)

// cellStyle returns the lipgloss style for one half-block cell.
func cellStyle(c core.Cell) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(core.Hex(c.FG))).
		Background(lipgloss.Color(core.Hex(c.BG)))
}

// RenderCells converts a downsampled canvas to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderCells(g core.CellGrid) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(g.Cols*g.Rows*4 + g.Rows)

	for y := range g.Rows {
		if y > 0 {
			sb.WriteRune('\n')
		}

		row := g.Cells[y]
		x := 0
		for x < len(row) {
			start := row[x]

			// Collect consecutive cells with same colors
			var run strings.Builder
			for x < len(row) && row[x].FG == start.FG && row[x].BG == start.BG {
				run.WriteRune(row[x].Rune)
				x++
			}

			sb.WriteString(cellStyle(start).Render(run.String()))
		}
	}
	return sb.String()
}
