package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/planet-defense/internal/config"
	"github.com/vovakirdan/planet-defense/internal/logging"
	"github.com/vovakirdan/planet-defense/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the mode and ship menus and
its own games. The run history is kept in memory and shared by every
session until the server stops.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.planetdefense/host_key

Examples:
  planetdefense serve                           # Listen on :23234
  planetdefense serve --ssh :2222               # Listen on port 2222
  planetdefense serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runServe(_ *cobra.Command, _ []string) {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		fail("%v", err)
	}
	// The server has no UI of its own, so it logs to stderr unless told otherwise.
	logger := logging.New(os.Stderr, "planetdefense-ssh", level)
	if flagLogFile != "" {
		fileLogger, closer, err := logging.OpenFile(flagLogFile, "planetdefense-ssh", level)
		if err != nil {
			fail("%v", err)
		}
		defer closer.Close()
		logger = fileLogger
	}

	applyGameFlags(logger)
	shipCfg := config.DefaultDefenseConfig().Ship
	if loaded, err := config.LoadDefense(flagConfig); err == nil {
		shipCfg = loaded.Ship
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Ship:        shipCfg,
		Logger:      logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting Planet Defense SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
