package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/planet-defense/internal/audio"
	"github.com/vovakirdan/planet-defense/internal/config"
	"github.com/vovakirdan/planet-defense/internal/games/defense"
	"github.com/vovakirdan/planet-defense/internal/platform/tui"
	"github.com/vovakirdan/planet-defense/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagShip       string
	flagMute       bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play [endless|mission]",
	Short: "Play a game",
	Long: `Start a game in the given mode (endless by default).

Modes:
  endless  - Defend Earth until the ship is lost
  mission  - Clear each planet out to Neptune, then fly home

Controls:
  W/Up         - Thrust
  S/Down       - Reverse
  A/D, Arrows  - Rotate
  Space        - Fire
  P            - Pause
  R            - Restart (after game over)
  Esc          - Leave the game
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a screenshot

Ship classes:
  interceptor  - fast, fragile
  cruiser      - balanced (default)
  juggernaut   - slow, armored, heavy guns

Examples:
  planetdefense play
  planetdefense play mission --ship interceptor
  planetdefense play --difficulty hard --mute
  planetdefense play --config ./my-defense.yaml`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"endless", "mission"},
	Run:       runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagShip, "ship", "cruiser", "Ship class: interceptor, cruiser, juggernaut")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")
}

// modeID maps a mode argument onto a registered game ID.
func modeID(arg string) (string, error) {
	switch arg {
	case "", "endless", defense.IDEndless:
		return defense.IDEndless, nil
	case "mission", defense.IDMission:
		return defense.IDMission, nil
	}
	return "", fmt.Errorf("unknown mode %q (want endless or mission)", arg)
}

// applyGameFlags validates the game flags and hands them to the defense
// package before any game is created.
func applyGameFlags(logger *log.Logger) config.ShipClass {
	class, err := config.ParseShipClass(flagShip)
	if err != nil {
		fail("%v", err)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		fail("%v", err)
	}
	if flagConfig != "" {
		if _, err := config.LoadDefense(flagConfig); err != nil {
			fail("%v", err)
		}
	}
	defense.SetConfigPath(flagConfig)
	defense.SetDifficultyPreset(flagDifficulty)
	defense.SetDefaultShipClass(class)
	logger.Debug("game flags", "config", flagConfig, "difficulty", flagDifficulty, "ship", class)
	return class
}

func runPlay(_ *cobra.Command, args []string) {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	gameID, err := modeID(arg)
	if err != nil {
		fail("%v", err)
	}

	logger, closer := openLogger("planetdefense")
	defer closer.Close()

	class := applyGameFlags(logger)
	cfg := runtimeConfig()

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("run history disabled", "error", err)
		store = nil
	}
	sink := audio.Open(flagMute, flagVolume, logger)

	game := defense.New()
	if gameID == defense.IDMission {
		game = defense.NewMission()
	}

	_, runErr := tui.Run(game, cfg, tui.Options{
		Store:  store,
		Logger: logger,
		Audio:  sink,
		Ship:   class,
	})
	if sp, ok := sink.(*audio.Speaker); ok {
		sp.Close()
	}
	if runErr != nil {
		if store != nil {
			store.Close()
		}
		fail("running game: %v", runErr)
	}

	if store != nil {
		printSessionSummary(store, gameID)
		store.Close()
	}
}

// printSessionSummary prints the best run of this process, if any.
func printSessionSummary(store *storage.Store, gameID string) {
	runs, err := store.TopRuns(gameID, 1)
	if err != nil || len(runs) == 0 {
		return
	}
	best := runs[0]
	result := "lost at"
	if best.Won {
		result = "returned to"
	}
	fmt.Fprintf(os.Stdout, "Best run: %d points, level %d, %d enemies down, %s %s (%s)\n",
		best.Score, best.Level, best.Defeated, result, best.Planet, best.ShipClass)
}
