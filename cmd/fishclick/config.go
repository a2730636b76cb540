package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fish-clicker/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the config
search path and the difficulty preset have been applied.

Config search order:
  1. --config <path>
  2. ~/.fishclick/configs/fish.yaml
  3. ./configs/fish.yaml
  4. built-in defaults

Examples:
  fishclick config
  fishclick config --difficulty hard
  fishclick config --defaults > ~/.fishclick/configs/fish.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, _, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(data)
}
