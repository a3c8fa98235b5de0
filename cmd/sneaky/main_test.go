package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/sneaky/internal/platform/tui"
)

func TestConfigure(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Cleanup(func() {
		flagConfig = ""
		flagDifficulty = ""
		configure("snake")
		configure("pulse")
	})

	if err := configure("flappy"); err == nil || isInitError(err) {
		t.Errorf("unknown demo: error = %v, expected a plain error", err)
	}

	for _, id := range []string{"snake", "snake_poison", "pulse", "circles"} {
		if err := configure(id); err != nil {
			t.Errorf("configure(%q) error = %v", id, err)
		}
	}

	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
	if err := configure("snake"); !isInitError(err) {
		t.Errorf("missing --config: error = %v, expected initialization error", err)
	}

	good := filepath.Join(t.TempDir(), "pulse.yaml")
	if err := os.WriteFile(good, []byte("growth: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	flagConfig = good
	if err := configure("pulse"); err != nil {
		t.Errorf("valid --config: error = %v", err)
	}
}

func TestSetupRejectsBadFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Cleanup(func() {
		flagLogLevel = "warn"
		flagDifficulty = ""
	})

	flagLogLevel = "loud"
	if err := setup(nil, nil); err == nil {
		t.Error("invalid log level should be an error")
	}

	flagLogLevel = "warn"
	flagDifficulty = "insane"
	if err := setup(nil, nil); err == nil {
		t.Error("invalid difficulty should be an error")
	}

	flagDifficulty = "hard"
	if err := setup(nil, nil); err != nil {
		t.Fatalf("setup() error = %v", err)
	}
	if display.Width != 640 || display.Height != 480 {
		t.Errorf("display = %dx%d, expected 640x480", display.Width, display.Height)
	}
}

// resetFlags restores the package-level flag values after a run.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagConfig = ""
		flagDisplayConfig = ""
		flagDifficulty = ""
		flagLogLevel = "warn"
		flagOut = ""
		flagKeys = ""
		flagFrames = 600
		configure("pulse")
	})
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIsInitError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	resetFlags(t)

	flagDisplayConfig = filepath.Join(t.TempDir(), "missing.yaml")
	if err := setup(nil, nil); !isInitError(err) {
		t.Errorf("missing --display-config: error = %v, expected initialization error", err)
	}

	flagDisplayConfig = writeFile(t, "tiny.yaml", "width: 10\nheight: 10\n")
	if err := setup(nil, nil); !isInitError(err) {
		t.Errorf("display smaller than a cell: error = %v, expected initialization error", err)
	}

	flagDisplayConfig = writeFile(t, "font.yaml", "font:\n  path: /nonexistent/font.ttf\n")
	if err := setup(nil, nil); err != nil {
		t.Fatalf("setup() error = %v", err)
	}
	if err := runSnapshot(nil, []string{"pulse"}); !isInitError(err) {
		t.Errorf("missing font: error = %v, expected initialization error", err)
	}

	flagDisplayConfig = ""
	flagLogLevel = "loud"
	if err := setup(nil, nil); err == nil || isInitError(err) {
		t.Errorf("bad log level: error = %v, expected a plain error", err)
	}
}

func TestRunExitStatus(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	resetFlags(t)

	out := filepath.Join(t.TempDir(), "pulse.png")
	tiny := writeFile(t, "tiny.yaml", "width: 10\nheight: 10\n")
	badFont := writeFile(t, "font.yaml", "font:\n  path: /nonexistent/font.ttf\n")

	tests := []struct {
		name     string
		args     []string
		expected int
	}{
		{"list", []string{"list", "--display-config", ""}, 0},
		{"snapshot", []string{"snapshot", "pulse", "--frames", "3", "--out", out, "--display-config", ""}, 0},
		{"display too small", []string{"list", "--display-config", tiny}, 1},
		{"missing font", []string{"snapshot", "pulse", "--frames", "3", "--out", out, "--display-config", badFont}, 1},
		{"unknown demo", []string{"snapshot", "tetris", "--out", out, "--display-config", ""}, 1},
		{"bad difficulty", []string{"list", "--display-config", "", "--difficulty", "insane"}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			flagDifficulty = ""
			if got := run(tc.args); got != tc.expected {
				t.Errorf("run(%v) = %d, expected %d", tc.args, got, tc.expected)
			}
		})
	}

	if _, err := os.Stat(out); err != nil {
		t.Errorf("snapshot should have written %s: %v", out, err)
	}
}

func TestNoColorSelectsMonochromeTheme(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	resetFlags(t)
	t.Cleanup(func() { tui.SetTheme(tui.DefaultTheme()) })
	t.Setenv("NO_COLOR", "")

	if err := setup(nil, nil); err != nil {
		t.Fatalf("setup() error = %v", err)
	}
	if tui.GetTheme().MenuItemActive.GetReverse() {
		t.Error("default theme should not use reverse video")
	}

	t.Setenv("NO_COLOR", "1")
	if err := setup(nil, nil); err != nil {
		t.Fatalf("setup() error = %v", err)
	}
	if !tui.GetTheme().MenuItemActive.GetReverse() {
		t.Error("NO_COLOR should select the monochrome theme")
	}
}
