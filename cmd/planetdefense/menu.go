package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/planet-defense/internal/audio"
	"github.com/vovakirdan/planet-defense/internal/config"
	"github.com/vovakirdan/planet-defense/internal/platform/tui"
	"github.com/vovakirdan/planet-defense/internal/registry"
	"github.com/vovakirdan/planet-defense/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and ship interactively",
	Long: `Start in interactive menu mode.

Pick a mode, then a ship class. Leaving a game with Esc returns to the
menu. Tab on the menu shows the runs played since start.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Tab          - Run history
  Esc          - Back
  Q            - Quit

Examples:
  planetdefense menu
  planetdefense menu --fps 30 --mute`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	menuCmd.Flags().StringVar(&flagShip, "ship", "cruiser", "Initially highlighted ship class")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	menuCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closer := openLogger("planetdefense")
	defer closer.Close()

	class := applyGameFlags(logger)
	shipCfg := config.DefaultDefenseConfig().Ship
	if loaded, err := config.LoadDefense(flagConfig); err == nil {
		shipCfg = loaded.Ship
	}

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("run history disabled", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	sink := audio.Open(flagMute, flagVolume, logger)
	if sp, ok := sink.(*audio.Speaker); ok {
		defer sp.Close()
	}

	cfg := runtimeConfig()
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		pick, err := tui.RunShipSelect(shipCfg, class, cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			logger.Error("ship select failed", "error", err)
			return
		}
		if pick.Quit {
			return
		}
		if pick.Back {
			continue
		}
		class = pick.Class

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "id", menuResult.GameID, "error", err)
			continue
		}

		backToMenu, err := tui.Run(game, cfg, tui.Options{
			Store:  store,
			Logger: logger,
			Audio:  sink,
			Ship:   class,
		})
		if err != nil {
			logger.Error("game failed", "error", err)
			return
		}
		if !backToMenu {
			return
		}
	}
}
