package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sneaky/internal/platform/tui"
	tcellterm "github.com/vovakirdan/sneaky/internal/platform/term"
	"github.com/vovakirdan/sneaky/internal/runner"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play <demo>",
	Short: "Play a demo",
	Long: `Start the specified demo.

Controls:
  W/A/S/D, arrows - Steer the snake / move the yellow circle
  Q/Esc/Ctrl+C    - Quit

Snake variants:
  snake          - Regular, bonus and poison food
  snake_classic  - Regular food only
  snake_bonus    - Regular and bonus food
  snake_poison   - Regular and poison food

Difficulty options (snake only):
  easy   - Start slow, speed up with score
  normal - Start at 30% difficulty, speed up with score
  hard   - Start at 70% difficulty, speed up with score
  fixed  - Constant tick from the config

Examples:
  sneaky play snake
  sneaky play snake --difficulty easy
  sneaky play pulse --fps 30
  sneaky play circles --backend tcell
  sneaky play snake --config ./my-snake.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tea", "Terminal backend: tea or tcell")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagBackend != "tea" && flagBackend != "tcell" {
		return fmt.Errorf("invalid --backend %q (want tea or tcell)", flagBackend)
	}
	res, err := play(cmd.Context(), args[0], flagBackend)
	if err != nil {
		return err
	}
	fmt.Printf("%s: final score %d\n", res.GameID, res.Score)
	return nil
}

// play opens a session for demoID and presents it until it finishes.
func play(ctx context.Context, demoID, backend string) (runner.Result, error) {
	if err := configure(demoID); err != nil {
		return runner.Result{}, err
	}

	session, err := runner.Open(demoID, display, flagSeed, logger)
	if err != nil {
		return runner.Result{}, err
	}
	defer session.Close()

	var res runner.Result
	switch backend {
	case "tcell":
		res, err = playTcell(ctx, session)
	default:
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		res, err = tui.Run(session, width, height)
	}
	if err != nil {
		return res, err
	}

	logger.Info("run finished",
		"demo", res.GameID,
		"score", res.Score,
		"game_over", res.GameOver,
		"quit", res.Quit,
		"frames", res.Frames,
		"duration", res.Duration,
	)
	return res, nil
}

func playTcell(ctx context.Context, session *runner.Session) (runner.Result, error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	p, err := tcellterm.Open(logger)
	if err != nil {
		return runner.Result{}, err
	}
	defer p.Close()

	return p.Run(ctx, session)
}
