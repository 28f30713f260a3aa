package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with an interactive menu",
	Long: `Start t2048 in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a session ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  t2048 menu
  t2048 menu --db ./history.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if !isTerminal() {
		return errors.New("menu needs a terminal; use 't2048 play --plain' instead")
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	played := 0

	for {
		choice, err := tui.RunMenu(store != nil, cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			return err
		}

		switch choice {
		case tui.ChoicePlay:
			if err := playTUI(store, runtimeConfig(), sessionSeed(played)); err != nil {
				return err
			}
			played++

		case tui.ChoiceHistory:
			goBack, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
