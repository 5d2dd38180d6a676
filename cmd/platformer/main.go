// platformer is a terminal side-scroller built on a fixed-tick physics core.
//
// Usage:
//
//	platformer list             - List available levels
//	platformer play <level>     - Play a level
//	platformer menu             - Pick levels interactively
//	platformer sim <level>      - Run a level headless with scripted input
//	platformer config dump      - Print the effective movement config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Override the decoration seed
//	--config <path>     - Custom platformer config YAML
//	--preset <name>     - Movement preset: floaty, normal, heavy
//	--log-file <path>   - Write logs to a file (default: discarded)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagPreset   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	closeLog()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - run and jump through levels in your terminal",
	Long: `Platformer is a terminal side-scroller. Run, jump and fall through
block levels toward the goal flag; the faster you get there, the higher
the score.

Available commands:
  list     - Show all available levels
  play     - Play a specific level directly
  menu     - Interactive level picker
  sim      - Run a level headless and print the player trace
  config   - Inspect the movement configuration

Examples:
  platformer list
  platformer play meadow
  platformer play --level-file ./my-level.yaml
  platformer menu --preset floaty
  platformer sim meadow --ticks 300 --script right:0-300,up:40`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Decoration seed (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom platformer config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Movement preset: floaty, normal, heavy")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies the global flags before any subcommand runs.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	logger, err := openLog(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	platformer.SetLogger(logger)
	platformer.SetConfigPath(flagConfig)

	return platformer.SetPreset(flagPreset)
}
