package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sneaky/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive demo picker",
	Long: `Opens a menu listing every demo. The selected demo runs in the
Bubble Tea presenter; when it ends the menu comes back.

Controls:
  Up/Down, j/k  - Move
  Enter/Space   - Play
  ?             - Toggle help
  Q/Esc         - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	for {
		sel, err := tui.RunMenu()
		if err != nil {
			return err
		}
		if sel.Quit {
			return nil
		}

		if _, err := play(cmd.Context(), sel.GameID, "tea"); err != nil {
			return err
		}
	}
}
