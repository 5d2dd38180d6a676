package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tcellrun"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Terminal backends
const (
	backendTUI   = "tui"
	backendTcell = "tcell"
)

var (
	flagLevelFile string
	flagBackend   string
	flagNoHelp    bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level.

Controls:
  Left/Right, A/D  - Run
  Up/W/Space       - Jump (hold to keep jumping on landing)
  Down/S           - Fall faster
  P/Esc            - Pause
  R                - Restart from the spawn point
  Tab              - Toggle debug HUD
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Presets:
  floaty  - Low gravity, soft jumps, long slides
  normal  - Default tuning
  heavy   - Strong gravity, high jumps, quick stops

Examples:
  platformer play meadow
  platformer play quarry --preset heavy
  platformer play --level-file ./my-level.yaml
  platformer play meadow --backend tcell`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevelFile, "level-file", "", "Play a level from a YAML file")
	playCmd.Flags().StringVar(&flagBackend, "backend", backendTUI, "Terminal backend: tui, tcell")
	playCmd.Flags().BoolVar(&flagNoHelp, "no-help", false, "Hide the key help footer")
}

func runPlay(cmd *cobra.Command, args []string) error {
	game, err := resolveLevel(args)
	if err != nil {
		return err
	}
	return runGame(cmd.Context(), game, terminalConfig())
}

// resolveLevel returns the game for a level ID or the --level-file flag.
func resolveLevel(args []string) (registry.Game, error) {
	switch {
	case flagLevelFile != "" && len(args) > 0:
		return nil, errors.New("give either a level ID or --level-file, not both")

	case flagLevelFile != "":
		lvl, err := config.LoadLevelFile(flagLevelFile)
		if err != nil {
			return nil, err
		}
		return platformer.New(lvl), nil

	case len(args) == 0:
		return nil, errors.New("missing level ID; run 'platformer list' to see available levels")
	}

	game, err := registry.Create(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w\nRun 'platformer list' to see available levels", err)
	}
	return game, nil
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// inputTiming reads the key hold settings from the movement config.
func inputTiming() config.InputConfig {
	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		appLog.Warn("using default input timing", "error", err)
		return config.DefaultPlatformerConfig().Input
	}
	return cfg.Input
}

// runGame plays game on the selected backend until the player quits.
func runGame(ctx context.Context, game registry.Game, rt core.RuntimeConfig) error {
	input := inputTiming()
	appLog.Info("starting level", "level", game.ID(), "backend", flagBackend, "preset", flagPreset)

	switch flagBackend {
	case backendTUI:
		return tui.Run(game, rt, tui.Options{
			InitialHoldTicks: input.InitialHoldTicks,
			HoldTicks:        input.HoldTicks,
			ShowHelp:         !flagNoHelp,
			Logger:           appLog,
		})
	case backendTcell:
		return tcellrun.Run(ctx, game, rt, tcellrun.Options{
			InitialHoldTicks: input.InitialHoldTicks,
			HoldTicks:        input.HoldTicks,
			Logger:           appLog,
		})
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", flagBackend, backendTUI, backendTcell)
	}
}
