package text

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/sneaky/internal/config"
	"github.com/vovakirdan/sneaky/internal/core"
)

func newTestRasterizer(t *testing.T) *Rasterizer {
	t.Helper()
	r, err := New(config.DefaultDisplayConfig().Font)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestNewEmbedded(t *testing.T) {
	r := newTestRasterizer(t)
	if r.Name() != "goregular" {
		t.Errorf("Name() = %q, expected goregular", r.Name())
	}
	// A 24px face at 72 DPI is roughly 24-30 pixels tall
	if h := r.LineHeight(); h < 20 || h > 40 {
		t.Errorf("LineHeight() = %d, expected about 24-30", h)
	}
}

func TestNewDefaultsZeroSize(t *testing.T) {
	r, err := New(config.FontConfig{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer r.Close()

	want := newTestRasterizer(t)
	if r.LineHeight() != want.LineHeight() {
		t.Errorf("zero size should default to 24px: got %d, expected %d", r.LineHeight(), want.LineHeight())
	}
}

func TestNewFailures(t *testing.T) {
	garbage := filepath.Join(t.TempDir(), "garbage.ttf")
	if err := os.WriteFile(garbage, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "missing.ttf")},
		{"not a font", garbage},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := New(config.FontConfig{Path: tc.path, Size: 24, DPI: 72})
			if err == nil {
				r.Close()
				t.Fatal("expected error")
			}
			if !errors.Is(err, core.ErrInitialization) {
				t.Errorf("error %v should wrap ErrInitialization", err)
			}
		})
	}
}

func TestRender(t *testing.T) {
	r := newTestRasterizer(t)

	img := r.Render("Score: 0", core.ColorRed)
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() != r.LineHeight() {
		t.Fatalf("Render bounds = %v, expected positive width and height %d", b, r.LineHeight())
	}

	covered := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.A == 0 {
				continue
			}
			covered++
			if c.G != 0 || c.B != 0 {
				t.Fatalf("pixel (%d, %d) = %v is not a shade of red", x, y, c)
			}
		}
	}
	if covered == 0 {
		t.Error("Render produced no visible pixels")
	}

	// Longer text is wider
	if wide := r.Render("Final Score: 100", core.ColorWhite); wide.Bounds().Dx() <= b.Dx() {
		t.Errorf("longer text should be wider: %d <= %d", wide.Bounds().Dx(), b.Dx())
	}
}

func TestRenderEmpty(t *testing.T) {
	r := newTestRasterizer(t)
	if img := r.Render("", core.ColorWhite); !img.Bounds().Empty() {
		t.Errorf("empty text should give an empty image, got %v", img.Bounds())
	}
}

func TestDrawText(t *testing.T) {
	r := newTestRasterizer(t)
	dst := core.NewCanvas(640, 480)

	r.DrawText(dst, "Game Over", 260, 220, core.ColorRed)

	labels := dst.Labels()
	if len(labels) != 1 {
		t.Fatalf("expected 1 label, got %d", len(labels))
	}
	want := core.Label{X: 260, Y: 220, Text: "Game Over", Color: core.ColorRed}
	if labels[0] != want {
		t.Errorf("label = %+v, expected %+v", labels[0], want)
	}

	// Pixels land inside the text box, never above or left of it
	lit := 0
	for y := range 480 {
		for x := range 640 {
			if dst.At(x, y) == core.ColorBlack {
				continue
			}
			lit++
			if x < 260 || y < 220 || y >= 220+r.LineHeight() {
				t.Fatalf("pixel (%d, %d) outside the text box", x, y)
			}
		}
	}
	if lit == 0 {
		t.Error("DrawText drew nothing")
	}
}

func TestCloseIdempotent(t *testing.T) {
	r, err := New(config.FontConfig{Size: 24, DPI: 72})
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("first Close() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	dst := core.NewCanvas(10, 10)
	r.DrawText(dst, "x", 0, 0, core.ColorWhite)
	if len(dst.Labels()) != 0 {
		t.Error("closed rasterizer should not draw")
	}
}

var _ core.TextDrawer = (*Rasterizer)(nil)
