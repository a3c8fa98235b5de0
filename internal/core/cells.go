package core

import (
	"image/color"
	"strings"
)

// HalfBlock is the glyph presenters use to show two vertically stacked pixels
// in one terminal cell: foreground paints the upper half, background the lower.
const HalfBlock = '▀'

// Cell is one terminal character cell produced by Downsample.
type Cell struct {
	Rune rune
	FG   color.RGBA
	BG   color.RGBA
}

// CellGrid is a canvas reduced to terminal cell resolution.
type CellGrid struct {
	Cols  int
	Rows  int
	Scale int // Canvas pixels per half-cell along each axis
	Cells [][]Cell
}

// Downsample reduces the canvas to at most cols×rows terminal cells.
// Each cell covers a Scale×2Scale pixel block and shows the pixels sampled at
// the centers of its upper and lower halves, so canvas pixels stay square.
// Text labels are overlaid as glyphs on a black background.
func Downsample(c *Canvas, cols, rows int) CellGrid {
	if cols <= 0 || rows <= 0 {
		return CellGrid{}
	}

	scale := max(CeilDiv(c.Width(), cols), CeilDiv(c.Height(), 2*rows), 1)
	outCols := min(CeilDiv(c.Width(), scale), cols)
	outRows := min(CeilDiv(c.Height(), 2*scale), rows)

	grid := CellGrid{
		Cols:  outCols,
		Rows:  outRows,
		Scale: scale,
		Cells: make([][]Cell, outRows),
	}

	half := scale / 2
	for cy := range outRows {
		grid.Cells[cy] = make([]Cell, outCols)
		for cx := range outCols {
			px := cx*scale + half
			top := cy*2*scale + half
			grid.Cells[cy][cx] = Cell{
				Rune: HalfBlock,
				FG:   c.At(px, top),
				BG:   c.At(px, top+scale),
			}
		}
	}

	for _, l := range c.Labels() {
		row := l.Y / (2 * scale)
		if row < 0 || row >= outRows {
			continue
		}
		col := l.X / scale
		for _, r := range l.Text {
			if col >= 0 && col < outCols {
				grid.Cells[row][col] = Cell{Rune: r, FG: l.Color, BG: ColorBlack}
			}
			col++
		}
	}

	return grid
}

// Row returns the runes of the specified row as a string.
func (g CellGrid) Row(y int) string {
	if y < 0 || y >= g.Rows {
		return ""
	}
	var sb strings.Builder
	for _, cell := range g.Cells[y] {
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}

// String joins all rows with newlines, ignoring colors.
func (g CellGrid) String() string {
	rows := make([]string, g.Rows)
	for y := range g.Rows {
		rows[y] = g.Row(y)
	}
	return strings.Join(rows, "\n")
}
