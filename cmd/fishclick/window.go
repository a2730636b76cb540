package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fish-clicker/internal/logging"
	"github.com/vovakirdan/fish-clicker/internal/platform/window"
	"github.com/vovakirdan/fish-clicker/internal/storage"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a 1600x900 window.

Controls:
  Left/Right, A/D, H/L  - Move the menu selection
  Enter/Space           - Confirm
  Mouse left click      - Catch the fish
  Esc                   - Quit

Textures and the font are read from the textures.dir directory of the
config (default ./data). Missing files are replaced by placeholders; a
missing background leaves the area blank.

The simulation runs at window.tps from the config; --fps does not apply.

Examples:
  fishclick window
  fishclick window --difficulty easy
  fishclick window --config ./my-fish.yaml`,
	Run: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, opts, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	logger := logging.New(os.Stderr, "fishclick", logLevel())

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	runErr := window.Run(window.Options{
		Config: cfg,
		Game:   opts,
		Seed:   flagSeed,
		Store:  store,
		Logger: logger,
		Player: playerName(),
	})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
