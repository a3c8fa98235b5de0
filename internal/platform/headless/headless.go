// Package headless runs a demo session without a terminal and writes the
// resulting frame to an image file.
package headless

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/vovakirdan/sneaky/internal/core"
	"github.com/vovakirdan/sneaky/internal/runner"
)

// DefaultKeyInterval is the number of frames between scripted key presses.
// At 60 FPS it is one default snake tick.
const DefaultKeyInterval = 6

// Script describes a scripted run.
type Script struct {
	Frames      int           // Frames to simulate; the run stops earlier if the session finishes
	Keys        []core.Action // Pressed one at a time, KeyInterval frames apart
	KeyInterval int
}

// Run simulates the script on a virtual clock starting at the Unix epoch and
// returns the final canvas image.
func Run(session *runner.Session, script Script) (*image.RGBA, runner.Result) {
	every := script.KeyInterval
	if every <= 0 {
		every = DefaultKeyInterval
	}

	start := time.Unix(0, 0)
	step := session.Config().FrameInterval()
	next := 0

	for i := range script.Frames {
		in := core.NewInputFrame()
		if next < len(script.Keys) && i == (next+1)*every {
			in.Set(script.Keys[next])
			next++
		}
		if session.Frame(start.Add(time.Duration(i)*step), in) {
			break
		}
	}

	return session.Canvas().Image(), session.Result()
}

// ParseKeys parses a comma separated list of actions such as "right,down".
func ParseKeys(s string) ([]core.Action, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var keys []core.Action
	for _, name := range strings.Split(s, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		a := core.ParseAction(name)
		if a == core.ActionNone {
			return nil, fmt.Errorf("headless: unknown key %q", name)
		}
		keys = append(keys, a)
	}
	return keys, nil
}

// Format is an output image encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// FormatFor picks the encoding from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("headless: unsupported image format %q", filepath.Ext(path))
	}
}

// Encode writes img in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("headless: unsupported image format %q", f)
	}
	if err != nil {
		return fmt.Errorf("headless: encode %s: %w", f, err)
	}
	return nil
}

// Save writes img to path, choosing the encoding from its extension.
func Save(path string, img image.Image) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("headless: create %s: %w", path, err)
	}
	defer file.Close()

	if err := Encode(file, img, f); err != nil {
		return err
	}
	return file.Close()
}
