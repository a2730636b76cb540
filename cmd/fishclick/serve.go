package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fish-clicker/internal/logging"
	"github.com/vovakirdan/fish-clicker/internal/platform/tui"
	"github.com/vovakirdan/fish-clicker/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the fish SSH server",
	Long: `Start an SSH server that lets users play in their terminal.

Each SSH connection gets its own game session. Scores are stored
per-server under the connecting user's name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.fishclick/host_key

Examples:
  fishclick serve                           # Listen on :23234 with auto-generated key
  fishclick serve --ssh :2222               # Listen on port 2222
  fishclick serve --host-key ./my_host_key  # Use specific host key
  fishclick serve --difficulty hard         # Harder fish for everyone

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting (0 = default)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, opts, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	logger := logging.New(os.Stderr, "fishclick", logLevel())

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = flagSSHAddr
	serverCfg.HostKeyPath = flagHostKey
	if flagIdleTimeout > 0 {
		serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	serverCfg.TickRate = tickRate(cfg)
	serverCfg.Game = opts

	server, err := tui.NewSSHServer(serverCfg, store, logger)
	if err != nil {
		store.Close()
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting fish SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		store.Close()
		fail("server: %v", err)
	}
}
