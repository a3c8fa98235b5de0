package core

import (
	"fmt"
	"image/color"
)

// Predefined colors for demo elements.
var (
	ColorBlack  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorRed    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ColorGreen  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	ColorBlue   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	ColorPurple = color.RGBA{R: 128, G: 0, B: 128, A: 255}
	ColorYellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// Hex formats a color as "#rrggbb" for terminal styling.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
