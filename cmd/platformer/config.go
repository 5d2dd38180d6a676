package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the movement configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective config as YAML",
	Long: `Print the movement config that a level would use, after the config
search order and the --preset flag are applied. The output is a valid
config file; save it to ~/.platformer/configs/platformer.yaml to edit it.

Examples:
  platformer config dump
  platformer config dump --preset heavy
  platformer config dump --config ./my.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfigDump,
}

var configPresetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List movement presets",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		for _, p := range config.Presets() {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
	},
}

func init() {
	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configPresetsCmd)
}

func runConfigDump(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		return err
	}

	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return err
	}
	if err := config.ApplyPreset(&cfg, preset); err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
