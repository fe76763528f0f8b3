package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce/internal/config"
	"github.com/vovakirdan/bounce/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu, then play",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After you quit a game, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Q            - Quit

Examples:
  bounce menu
  bounce menu --fps 30
  bounce menu --mute`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addAudioFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	current := string(config.DefaultVariant)
	for {
		rt := terminalConfig()

		id, err := tui.RunMenu(current, rt)
		if err != nil {
			return err
		}
		if id == "" {
			return nil // User quit
		}
		current = id

		if err := sess.play(id, rt); err != nil {
			sess.logger.Error("game failed", "variant", id, "error", err)
			return err
		}
	}
}
