package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fish-clicker/internal/config"
	"github.com/vovakirdan/fish-clicker/internal/fish"
	"github.com/vovakirdan/fish-clicker/internal/logging"
)

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the config file and applies the difficulty preset.
func loadConfig() (config.FishConfig, fish.Options, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.FishConfig{}, fish.Options{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.FishConfig{}, fish.Options{}, err
	}
	config.ApplyPreset(&cfg, preset)

	opts, err := cfg.Options()
	if err != nil {
		return config.FishConfig{}, fish.Options{}, err
	}
	return cfg, opts, nil
}

// tickRate is --fps if set, otherwise the configured frame limit.
func tickRate(cfg config.FishConfig) int {
	if flagFPS > 0 {
		return flagFPS
	}
	if cfg.Window.FPSLimit > 0 {
		return cfg.Window.FPSLimit
	}
	return 60
}

func logLevel() log.Level {
	lvl, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		fail("%v", err)
	}
	return lvl
}

// playerName is the local account name, recorded with saved scores.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
