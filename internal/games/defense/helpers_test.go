package defense

import (
	"math"
	"testing"

	"github.com/vovakirdan/planet-defense/internal/config"
	"github.com/vovakirdan/planet-defense/internal/core"
)

// quietConfig returns defaults with random spawning switched off so tests
// control every entity.
func quietConfig() config.DefenseConfig {
	cfg := config.DefaultDefenseConfig()
	cfg.Spawner.BaseSpawnRate = 1_000_000
	cfg.Spawner.MinSpawnRate = 1_000_000
	cfg.Spawner.InitialWave.Count = 0
	cfg.Pickups.SpawnChance = 0
	return cfg
}

// newTestWorld builds a world around Earth with the ship parked 60 units
// in front of it.
func newTestWorld(t *testing.T, cfg config.DefenseConfig) *World {
	t.Helper()
	sys := NewSolarSystem(DefaultPlanets()[:1])
	ship := NewShip(cfg.Ship, config.ShipCruiser)
	ship.Place(core.V3(0, 0, 60), math.Pi)
	return NewWorld(cfg, core.NewRNG(1), ship, sys, nil, nil)
}

// runTick runs the update and collision stages the way Game.Tick does.
func runTick(w *World) bool {
	w.tick++
	w.reg.Flush()
	w.Update()
	w.reg.Purge()
	w.reg.Flush()
	over := w.Resolve()
	w.reg.Purge()
	w.reg.Flush()
	return over
}

func spawnNow(w *World, entities ...Entity) {
	for _, e := range entities {
		w.reg.Spawn(e)
	}
	w.reg.Flush()
}

func countEffect(w *World, effect Effect) int {
	n := 0
	for _, e := range w.reg.Entities() {
		if p, ok := e.(*Particles); ok && p.Effect == effect {
			n++
		}
	}
	return n
}

func drainCues(events []Event) []Cue {
	var cues []Cue
	for _, ev := range events {
		if c, ok := ev.(CueEvent); ok {
			cues = append(cues, c.Cue)
		}
	}
	return cues
}

func hasCue(events []Event, cue Cue) bool {
	for _, c := range drainCues(events) {
		if c == cue {
			return true
		}
	}
	return false
}

func texts(events []Event) []string {
	var out []string
	for _, ev := range events {
		if ft, ok := ev.(FloatingText); ok {
			out = append(out, ft.Text)
		}
	}
	return out
}

type countingScene struct {
	added   int
	removed int
}

func (s *countingScene) Add(Entity) { s.added++ }
func (s *countingScene) Remove(Entity) { s.removed++ }
