// Package text renders short strings into RGBA images with a TrueType or
// OpenType face loaded once at startup.
package text

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/sneaky/internal/config"
	"github.com/vovakirdan/sneaky/internal/core"
)

const (
	defaultSize = 24
	defaultDPI  = 72
)

// Rasterizer owns a font face and draws text with it.
// It implements core.TextDrawer.
type Rasterizer struct {
	face   font.Face
	name   string
	ascent int
	height int
	closed bool
}

// New loads the face described by cfg. An empty path selects the embedded
// Go Regular font. Any failure wraps core.ErrInitialization.
func New(cfg config.FontConfig) (*Rasterizer, error) {
	data := goregular.TTF
	name := "goregular"
	if cfg.Path != "" {
		b, err := os.ReadFile(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("text: read font %s: %w: %w", cfg.Path, core.ErrInitialization, err)
		}
		data = b
		name = cfg.Path
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font %s: %w: %w", name, core.ErrInitialization, err)
	}

	size := cfg.Size
	if size <= 0 {
		size = defaultSize
	}
	dpi := cfg.DPI
	if dpi <= 0 {
		dpi = defaultDPI
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: create face %s: %w: %w", name, core.ErrInitialization, err)
	}

	m := face.Metrics()
	return &Rasterizer{
		face:   face,
		name:   name,
		ascent: m.Ascent.Ceil(),
		height: (m.Ascent + m.Descent).Ceil(),
	}, nil
}

// Name returns the font source: "goregular" or the file path.
func (r *Rasterizer) Name() string {
	return r.name
}

// LineHeight returns the height of every image produced by Render.
func (r *Rasterizer) LineHeight() int {
	return r.height
}

// Render returns an image just large enough for msg, transparent where no
// glyph covers it. The top-left corner is the top of the line box.
func (r *Rasterizer) Render(msg string, col color.RGBA) *image.RGBA {
	if r.closed || msg == "" {
		return image.NewRGBA(image.Rectangle{})
	}

	width := font.MeasureString(r.face, msg).Ceil()
	img := image.NewRGBA(image.Rect(0, 0, width, r.height))

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: r.face,
		Dot:  fixed.P(0, r.ascent),
	}
	d.DrawString(msg)

	return img
}

// DrawText renders msg with its top-left corner at (x, y) on dst and
// records it as a label for glyph-based presenters.
func (r *Rasterizer) DrawText(dst *core.Canvas, msg string, x, y int, col color.RGBA) {
	if r.closed {
		return
	}
	dst.Blit(r.Render(msg, col), x, y)
	dst.AddLabel(core.Label{X: x, Y: y, Text: msg, Color: col})
}

// Close releases the face. Subsequent calls do nothing.
func (r *Rasterizer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.face.Close()
}
