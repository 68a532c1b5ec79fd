package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/planet-defense/internal/config"
)

var (
	flagDumpConfig     string
	flagDumpDifficulty string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the game configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a game would start with, after the search
path and the difficulty preset are applied. The output is a valid
config file and can be edited and passed back with --config.

Examples:
  planetdefense config dump > ~/.planetdefense/configs/defense.yaml
  planetdefense config dump --difficulty hard`,
	Run: runConfigDump,
}

func init() {
	configDumpCmd.Flags().StringVar(&flagDumpConfig, "config", "", "Path to custom config YAML")
	configDumpCmd.Flags().StringVar(&flagDumpDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	configCmd.AddCommand(configDumpCmd)
}

func runConfigDump(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadDefense(flagDumpConfig)
	if err != nil {
		fail("%v", err)
	}
	if flagDumpDifficulty != "" {
		preset, err := config.ParsePreset(flagDumpDifficulty)
		if err != nil {
			fail("%v", err)
		}
		config.ApplyDefensePreset(&cfg, preset)
	}

	data, err := config.MarshalDefense(cfg)
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(data)
	if len(data) > 0 && data[len(data)-1] != '\n' {
		fmt.Println()
	}
}
