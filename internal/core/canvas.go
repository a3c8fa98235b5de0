package core

import (
	"image"
	"image/color"
	"image/draw"
)

// Default canvas dimensions in pixels.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// Label records a string drawn onto the canvas during the current frame.
// Terminal presenters use labels to show text as glyphs, since downsampled
// font pixels are unreadable at cell resolution.
type Label struct {
	X, Y  int // Top-left corner in canvas pixels
	Text  string
	Color color.RGBA
}

// Canvas is a fixed-size RGBA framebuffer for rendering demo graphics.
// It plays the role of a renderer: callers pick a draw color, then issue
// primitive operations that use it. Presenters turn the buffer into
// terminal output or image files.
type Canvas struct {
	img    *image.RGBA
	draw   color.RGBA
	labels []Label
}

// NewCanvas creates a new canvas with the given dimensions, cleared to black.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		draw: ColorBlack,
	}
	c.Clear()
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Bounds returns the canvas area as a Rect.
func (c *Canvas) Bounds() Rect {
	return NewRect(0, 0, c.Width(), c.Height())
}

// SetDrawColor selects the color used by Clear, DrawPoint and FillRect.
func (c *Canvas) SetDrawColor(col color.RGBA) {
	c.draw = col
}

// DrawColor returns the current draw color.
func (c *Canvas) DrawColor() color.RGBA {
	return c.draw
}

// Clear fills the whole canvas with the draw color and forgets the labels
// of the previous frame.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(c.draw), image.Point{}, draw.Src)
	c.labels = c.labels[:0]
}

// DrawPoint plots a single pixel in the draw color.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) DrawPoint(x, y int) {
	if x < 0 || x >= c.Width() || y < 0 || y >= c.Height() {
		return
	}
	c.img.SetRGBA(x, y, c.draw)
}

// FillRect fills a rectangle in the draw color, clipped to the canvas.
func (c *Canvas) FillRect(r Rect) {
	clipped := r.Clip(c.Bounds())
	if clipped.Empty() {
		return
	}
	area := image.Rect(clipped.X, clipped.Y, clipped.Right(), clipped.Bottom())
	draw.Draw(c.img, area, image.NewUniform(c.draw), image.Point{}, draw.Src)
}

// Blit composites src over the canvas with its top-left corner at (x, y).
func (c *Canvas) Blit(src image.Image, x, y int) {
	b := src.Bounds()
	if !NewRect(x, y, b.Dx(), b.Dy()).Intersects(c.Bounds()) {
		return
	}
	dst := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(c.img, dst, src, b.Min, draw.Over)
}

// AddLabel records text drawn at (x, y) during this frame.
func (c *Canvas) AddLabel(l Label) {
	c.labels = append(c.labels, l)
}

// Labels returns the text labels drawn since the last Clear.
func (c *Canvas) Labels() []Label {
	return c.labels
}

// At returns the color of the pixel at (x, y).
// Returns transparent black for out-of-bounds coordinates.
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || x >= c.Width() || y < 0 || y >= c.Height() {
		return color.RGBA{}
	}
	return c.img.RGBAAt(x, y)
}

// Image exposes the underlying framebuffer for encoders.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// CountColor returns how many pixels currently hold exactly col.
func (c *Canvas) CountColor(col color.RGBA) int {
	n := 0
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.img.RGBAAt(x, y) == col {
				n++
			}
		}
	}
	return n
}

// TextDrawer renders short strings onto a canvas.
// Implemented by the text rasterizer; games receive it in Render.
type TextDrawer interface {
	DrawText(dst *Canvas, msg string, x, y int, col color.RGBA)
}
