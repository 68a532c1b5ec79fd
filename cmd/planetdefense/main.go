// planetdefense is a terminal space shooter: guard a planet against
// asteroids and alien ships, or fly a mission across the solar system.
//
// Usage:
//
//	planetdefense list              - List game modes and ship classes
//	planetdefense play [mode]       - Play endless (default) or mission
//	planetdefense menu              - Pick mode and ship interactively
//	planetdefense serve             - Start SSH server for remote play
//	planetdefense config dump       - Print the effective YAML config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file (interactive play logs nowhere otherwise)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/planet-defense/internal/core"
	_ "github.com/vovakirdan/planet-defense/internal/games/defense" // registers both modes
	"github.com/vovakirdan/planet-defense/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "planetdefense",
	Short: "Planet Defense - defend the solar system from your terminal",
	Long: `Planet Defense is a terminal shooter. Pilot a ship around a planet and
shoot down the asteroids and alien ships closing in on it.

Available commands:
  list     - Show game modes and ship classes
  play     - Start a game directly
  menu     - Interactive mode and ship picker
  serve    - Start SSH server for remote play
  config   - Inspect the game configuration

Examples:
  planetdefense play
  planetdefense play mission --ship juggernaut
  planetdefense menu
  planetdefense serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// openLogger builds the logger selected by the global flags. Interactive
// play owns the terminal, so without --log-file logs are dropped.
func openLogger(prefix string) (*log.Logger, io.Closer) {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		fail("%v", err)
	}
	logger, closer, err := logging.OpenFile(flagLogFile, prefix, level)
	if err != nil {
		fail("%v", err)
	}
	return logger, closer
}

// runtimeConfig sizes the session from the controlling terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
