package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/planet-defense/internal/config"
	"github.com/vovakirdan/planet-defense/internal/games/defense"
	"github.com/vovakirdan/planet-defense/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and ship classes",
	Long:  `Shows the registered game modes and the stats of every ship class.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Game modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
		if g.Summary != "" {
			fmt.Printf("  %-*s  %s\n", maxIDLen, "", g.Summary)
		}
	}

	fmt.Println()
	fmt.Println("Ship classes:")
	fmt.Println()
	fmt.Printf("  %-12s  %6s  %6s  %6s  %6s\n", "Class", "Health", "Speed", "Reload", "Damage")
	fmt.Printf("  %-12s  %6s  %6s  %6s  %6s\n", "-----", "------", "-----", "------", "------")
	cfg := config.DefaultDefenseConfig()
	for _, c := range config.ShipClasses() {
		s := defense.NewShipStats(cfg.Ship, c)
		fmt.Printf("  %-12s  %6d  %6.2f  %6d  %6d\n", c, s.MaxHealth, s.MaxSpeed, s.Cooldown, s.Damage)
	}

	fmt.Println()
	fmt.Println("Run 'planetdefense play [endless|mission] --ship <class>' to play.")
}
