package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var (
	flagTicks  int
	flagScript string
	flagFormat string
	flagEvery  int
	flagFrame  bool
	flagWidth  int
	flagHeight int
)

var simCmd = &cobra.Command{
	Use:   "sim [level]",
	Short: "Run a level headless with scripted input",
	Long: `Run a level without a terminal UI and print the player state.

The script is a comma-separated list of action:ticks entries. Ticks are
counted from 0 and given as a single tick or an inclusive range.
Actions: left, right, up, down, action, pause, restart, debug.

Examples:
  platformer sim meadow --ticks 120
  platformer sim meadow --ticks 300 --script right:0-299,up:40-45
  platformer sim quarry --ticks 600 --script right:0-599 --format yaml --every 30
  platformer sim --level-file ./my-level.yaml --frame`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagLevelFile, "level-file", "", "Simulate a level from a YAML file")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 120, "Number of ticks to simulate")
	simCmd.Flags().StringVar(&flagScript, "script", "", "Scripted input, e.g. right:0-120,up:30")
	simCmd.Flags().StringVar(&flagFormat, "format", "table", "Output format: table, yaml")
	simCmd.Flags().IntVar(&flagEvery, "every", 1, "Print every Nth tick (the last tick is always printed)")
	simCmd.Flags().BoolVar(&flagFrame, "frame", false, "Print the final rendered frame")
	simCmd.Flags().IntVar(&flagWidth, "width", 80, "Screen width for camera and frame")
	simCmd.Flags().IntVar(&flagHeight, "height", 24, "Screen height for camera and frame")
}

// scriptEntry holds an action over an inclusive tick range.
type scriptEntry struct {
	action   core.Action
	from, to int
}

// script is parsed scripted input for a headless run.
type script []scriptEntry

// parseScript parses "action:tick" and "action:from-to" entries.
func parseScript(s string) (script, error) {
	var out script
	if strings.TrimSpace(s) == "" {
		return out, nil
	}

	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		name, ticks, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("script entry %q: want action:ticks", part)
		}

		action, ok := core.ParseAction(strings.ToLower(name))
		if !ok || action == core.ActionQuit {
			return nil, fmt.Errorf("script entry %q: unknown action %q", part, name)
		}

		from, to, err := parseTickRange(ticks)
		if err != nil {
			return nil, fmt.Errorf("script entry %q: %w", part, err)
		}
		out = append(out, scriptEntry{action: action, from: from, to: to})
	}
	return out, nil
}

func parseTickRange(s string) (int, int, error) {
	lo, hi, isRange := strings.Cut(s, "-")
	from, err := strconv.Atoi(lo)
	if err != nil {
		return 0, 0, fmt.Errorf("bad tick %q", lo)
	}
	to := from
	if isRange {
		if to, err = strconv.Atoi(hi); err != nil {
			return 0, 0, fmt.Errorf("bad tick %q", hi)
		}
	}
	if from < 0 || to < from {
		return 0, 0, fmt.Errorf("bad tick range %q", s)
	}
	return from, to, nil
}

// Frame returns the input for tick.
func (sc script) Frame(tick int) core.InputFrame {
	f := core.NewInputFrame()
	for _, e := range sc {
		if tick >= e.from && tick <= e.to {
			f.Set(e.action)
		}
	}
	return f
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagTicks < 0 {
		return fmt.Errorf("--ticks must not be negative, got %d", flagTicks)
	}
	if flagFormat != "table" && flagFormat != "yaml" {
		return fmt.Errorf("unknown format %q (want table or yaml)", flagFormat)
	}

	sc, err := parseScript(flagScript)
	if err != nil {
		return err
	}
	lvl, err := simLevel(args)
	if err != nil {
		return err
	}

	game := platformer.New(lvl)
	game.Reset(core.RuntimeConfig{
		ScreenW:  flagWidth,
		ScreenH:  flagHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	})

	snaps := simulate(game, sc, flagTicks, max(flagEvery, 1))
	appLog.Info("simulation finished", "level", lvl.ID, "ticks", flagTicks, "score", game.State().Score)

	out := cmd.OutOrStdout()
	if flagFormat == "yaml" {
		if err := writeYAML(out, snaps); err != nil {
			return err
		}
	} else {
		writeTable(out, snaps)
	}

	if flagFrame {
		screen := core.NewScreen(flagWidth, flagHeight)
		game.Render(screen)
		fmt.Fprintln(out)
		fmt.Fprintln(out, screen.String())
	}
	return nil
}

// simLevel loads the level named by args or --level-file.
func simLevel(args []string) (config.LevelConfig, error) {
	switch {
	case flagLevelFile != "" && len(args) > 0:
		return config.LevelConfig{}, errors.New("give either a level ID or --level-file, not both")
	case flagLevelFile != "":
		return config.LoadLevelFile(flagLevelFile)
	case len(args) == 0:
		return config.LevelConfig{}, errors.New("missing level ID")
	}
	return config.LoadLevel(args[0])
}

// simulate steps game for ticks ticks and keeps every Nth snapshot plus the last.
func simulate(game *platformer.Game, sc script, ticks, every int) []platformer.Snapshot {
	snaps := []platformer.Snapshot{game.Snapshot()}
	for i := range ticks {
		game.Step(sc.Frame(i))
		if (i+1)%every == 0 || i == ticks-1 {
			snaps = append(snaps, game.Snapshot())
		}
	}
	return snaps
}

func writeYAML(w io.Writer, snaps []platformer.Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snaps); err != nil {
		return fmt.Errorf("encode snapshots: %w", err)
	}
	return enc.Close()
}

func writeTable(w io.Writer, snaps []platformer.Snapshot) {
	fmt.Fprintf(w, "%5s  %9s  %9s  %7s  %7s  %-12s  %5s  %5s\n",
		"TICK", "X", "Y", "VX", "VY", "CONTACTS", "FALLS", "SCORE")
	for _, s := range snaps {
		mark := ""
		if s.Finished {
			mark = "  goal"
		}
		fmt.Fprintf(w, "%5d  %9.2f  %9.2f  %7.2f  %7.2f  %-12s  %5d  %5d%s\n",
			s.Tick, s.PosX, s.PosY, s.VelX, s.VelY, s.Contacts(), s.Falls, s.Score, mark)
	}
}
