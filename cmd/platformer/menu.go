package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a level.
After quitting a level, you return to the menu to pick another.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play level
  Q            - Quit

Examples:
  platformer menu
  platformer menu --preset floaty
  platformer menu --backend tcell`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagBackend, "backend", backendTUI, "Terminal backend: tui, tcell")
	menuCmd.Flags().BoolVar(&flagNoHelp, "no-help", false, "Hide the key help footer")
}

func runMenu(cmd *cobra.Command, _ []string) error {
	cfg := terminalConfig()

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}
		cfg = result.Config

		game, err := registry.Create(result.GameID)
		if err != nil {
			return err
		}
		if err := runGame(cmd.Context(), game, cfg); err != nil {
			return err
		}
		if cmd.Context().Err() != nil {
			return nil
		}
	}
}
