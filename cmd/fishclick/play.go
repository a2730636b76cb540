package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fish-clicker/internal/config"
	"github.com/vovakirdan/fish-clicker/internal/core"
	"github.com/vovakirdan/fish-clicker/internal/logging"
	"github.com/vovakirdan/fish-clicker/internal/platform/tui"
	"github.com/vovakirdan/fish-clicker/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play in the terminal. The 1600x900 playfield is scaled onto the
terminal grid; click a fish glyph with the mouse to catch it.

Controls:
  Left/Right, A/D, H/L  - Move the menu selection
  Enter/Space           - Confirm
  Mouse left click      - Catch the fish
  Tab                   - High scores (menu only)
  Ctrl+S                - Save a text screenshot
  Q/Ctrl+C              - Quit

Logs are written to ~/.fishclick/fishclick.log.

Examples:
  fishclick play
  fishclick play --difficulty hard --fps 30
  fishclick play --seed 42`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, opts, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, logFile, err := logging.OpenFile(config.UserPath("fishclick.log"), "fishclick", logLevel())
	if err != nil {
		fail("%v", err)
	}
	defer logFile.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Game: opts,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: tickRate(cfg),
			Seed:     flagSeed,
		},
		Store:         store,
		Logger:        logger,
		Player:        playerName(),
		ScreenshotDir: config.UserPath("screenshots"),
	})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		logFile.Close()
		fail("running game: %v", runErr)
	}
}
