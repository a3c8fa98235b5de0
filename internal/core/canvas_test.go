package core

import (
	"image"
	"image/color"
	"testing"
)

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(64, 48)

	if c.Width() != 64 {
		t.Errorf("Width() = %d, expected 64", c.Width())
	}
	if c.Height() != 48 {
		t.Errorf("Height() = %d, expected 48", c.Height())
	}

	// Check that it's initialized to black
	if n := c.CountColor(ColorBlack); n != 64*48 {
		t.Errorf("New canvas should be all black, got %d black pixels", n)
	}
}

func TestCanvasDrawPoint(t *testing.T) {
	c := NewCanvas(10, 10)
	c.SetDrawColor(ColorRed)

	c.DrawPoint(5, 5)
	if c.At(5, 5) != ColorRed {
		t.Errorf("At(5, 5) = %v, expected red", c.At(5, 5))
	}

	// Out of bounds should be silent
	c.DrawPoint(-1, 0)
	c.DrawPoint(100, 0)
	c.DrawPoint(0, -1)
	c.DrawPoint(0, 100)

	if n := c.CountColor(ColorRed); n != 1 {
		t.Errorf("Expected exactly 1 red pixel, got %d", n)
	}

	// Out of bounds read returns transparent
	if c.At(-1, 0) != (color.RGBA{}) {
		t.Error("Out of bounds At should return transparent black")
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(10, 10)
	c.SetDrawColor(ColorWhite)
	c.FillRect(NewRect(0, 0, 10, 10))
	c.AddLabel(Label{X: 1, Y: 1, Text: "hi", Color: ColorWhite})

	c.SetDrawColor(ColorBlack)
	c.Clear()

	if n := c.CountColor(ColorBlack); n != 100 {
		t.Errorf("After Clear, expected 100 black pixels, got %d", n)
	}
	if len(c.Labels()) != 0 {
		t.Errorf("After Clear, expected no labels, got %d", len(c.Labels()))
	}
}

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(10, 10)
	c.SetDrawColor(ColorGreen)
	c.FillRect(NewRect(2, 2, 3, 3))

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c.At(x, y) != ColorGreen {
				t.Errorf("FillRect: expected green at (%d, %d), got %v", x, y, c.At(x, y))
			}
		}
	}

	if c.At(1, 1) != ColorBlack || c.At(5, 5) != ColorBlack {
		t.Error("FillRect should not affect outside area")
	}
}

func TestCanvasFillRectClipped(t *testing.T) {
	c := NewCanvas(10, 10)
	c.SetDrawColor(ColorBlue)

	// Partially off-canvas: only the 2x2 visible corner is drawn
	c.FillRect(NewRect(-3, -3, 5, 5))
	if n := c.CountColor(ColorBlue); n != 4 {
		t.Errorf("Expected 4 clipped pixels, got %d", n)
	}

	// Fully off-canvas (inactive food sits at negative coordinates)
	c.FillRect(NewRect(-20, -20, 20, 20))
	if n := c.CountColor(ColorBlue); n != 4 {
		t.Errorf("Off-canvas rect should draw nothing, got %d pixels", n)
	}
}

func TestCanvasBlit(t *testing.T) {
	c := NewCanvas(10, 10)

	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, ColorYellow)
	// (1,1) stays fully transparent and must not overwrite the canvas

	c.Blit(src, 4, 4)

	if c.At(4, 4) != ColorYellow {
		t.Errorf("Blit: expected yellow at (4, 4), got %v", c.At(4, 4))
	}
	if c.At(5, 5) != ColorBlack {
		t.Errorf("Blit: transparent source pixel changed canvas: %v", c.At(5, 5))
	}
}

func TestCanvasBlitClipping(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			src.SetRGBA(x, y, ColorYellow)
		}
	}

	tests := []struct {
		name     string
		x, y     int
		expected int
	}{
		{"inside", 2, 2, 16},
		{"overhangs right edge", 8, 0, 8},
		{"overhangs top-left corner", -2, -2, 4},
		{"fully off to the right", 10, 0, 0},
		{"fully above", 0, -4, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCanvas(10, 10)
			c.Blit(src, tc.x, tc.y)
			if n := c.CountColor(ColorYellow); n != tc.expected {
				t.Errorf("Blit at (%d, %d) drew %d pixels, expected %d", tc.x, tc.y, n, tc.expected)
			}
		})
	}
}

func TestCanvasDrawColor(t *testing.T) {
	c := NewCanvas(2, 2)
	c.SetDrawColor(ColorPurple)
	if c.DrawColor() != ColorPurple {
		t.Errorf("DrawColor() = %v, expected purple", c.DrawColor())
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		c        color.RGBA
		expected string
	}{
		{ColorBlack, "#000000"},
		{ColorWhite, "#ffffff"},
		{ColorPurple, "#800080"},
	}
	for _, tc := range tests {
		if got := Hex(tc.c); got != tc.expected {
			t.Errorf("Hex(%v) = %q, expected %q", tc.c, got, tc.expected)
		}
	}
}
