// sneaky runs a snake game and two small circle demos on a 640x480 canvas
// drawn in the terminal.
//
// Usage:
//
//	sneaky list                      - List available demos
//	sneaky play <demo>               - Play a demo
//	sneaky menu                      - Pick demos interactively
//	sneaky snapshot <demo> --out f   - Render a scripted run to an image
//
// Global flags:
//
//	--fps <rate>             - Frames per second (default: 60)
//	--seed <value>           - RNG seed for reproducible runs
//	--config <path>          - Custom demo config YAML
//	--display-config <path>  - Custom display config YAML
//	--difficulty <preset>    - Snake difficulty: easy, normal, hard, fixed
//	--log-level <level>      - debug, info, warn, error
//	--log-file <path>        - Write logs to a file instead of stderr
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sneaky/internal/config"
	"github.com/vovakirdan/sneaky/internal/core"
	"github.com/vovakirdan/sneaky/internal/games/circles"
	"github.com/vovakirdan/sneaky/internal/games/pulse"
	"github.com/vovakirdan/sneaky/internal/games/snake"
	"github.com/vovakirdan/sneaky/internal/platform/tui"
	"github.com/vovakirdan/sneaky/internal/registry"
)

var (
	// Global flags
	flagFPS           int
	flagSeed          int64
	flagConfig        string
	flagDisplayConfig string
	flagDifficulty    string
	flagLogLevel      string
	flagLogFile       string
)

var (
	logger  = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "sneaky"})
	logFile io.Closer
	display config.DisplayConfig
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command line and returns the process exit status.
func run(args []string) int {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err != nil {
		msg := "fatal"
		if isInitError(err) {
			msg = "startup failed"
		}
		logger.Error(msg, "err", err)
	}
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	if err != nil {
		return 1
	}
	return 0
}

var rootCmd = &cobra.Command{
	Use:   "sneaky",
	Short: "Snake and circle demos in your terminal",
	Long: `Sneaky draws a classic snake game and two circle demos on a fixed
640x480 canvas and shows it in the terminal with half-block characters.

Available commands:
  list      - Show all available demos
  play      - Play a specific demo directly
  menu      - Interactive demo picker
  snapshot  - Render a scripted run to PNG, BMP or TIFF

Examples:
  sneaky list
  sneaky play snake
  sneaky play snake_poison --difficulty hard
  sneaky play circles --backend tcell
  sneaky snapshot snake --frames 300 --keys down,left --out snake.png`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frames per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom demo config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDisplayConfig, "display-config", "", "Path to custom display config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Snake difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// setup configures logging and loads the display settings shared by every
// command that runs a demo.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w: %w", core.ErrInitialization, err)
		}
		logFile = f
		logger.SetOutput(f)
	}

	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("invalid --difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	display, err = config.LoadDisplay(flagDisplayConfig)
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrInitialization, err)
	}
	if flagFPS > 0 {
		display.FPS = flagFPS
	}
	if err := display.Validate(); err != nil {
		return fmt.Errorf("%w: %w", core.ErrInitialization, err)
	}

	if os.Getenv("NO_COLOR") != "" {
		tui.SetTheme(tui.MonochromeTheme())
	}
	logger.Debug("display loaded", "width", display.Width, "height", display.Height, "fps", display.FPS)
	return nil
}

// configure checks that demoID exists and points its package at the custom
// config file. An explicit --config that cannot be loaded is fatal.
func configure(demoID string) error {
	if !registry.Exists(demoID) {
		return fmt.Errorf("unknown demo %q (run 'sneaky list' to see available demos)", demoID)
	}

	var err error
	switch {
	case strings.HasPrefix(demoID, "snake"):
		_, err = config.LoadSnake(flagConfig)
		snake.SetConfigPath(flagConfig)
		snake.SetDifficultyPreset(flagDifficulty)
	case demoID == "pulse":
		_, err = config.LoadPulse(flagConfig)
		pulse.SetConfigPath(flagConfig)
	case demoID == "circles":
		_, err = config.LoadCircles(flagConfig)
		circles.SetConfigPath(flagConfig)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrInitialization, err)
	}

	if flagDifficulty != "" && !strings.HasPrefix(demoID, "snake") {
		logger.Warn("difficulty only applies to snake demos", "demo", demoID)
	}
	return nil
}

// isInitError reports whether err happened while acquiring startup resources.
func isInitError(err error) bool {
	return errors.Is(err, core.ErrInitialization)
}
