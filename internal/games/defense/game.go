// Package defense implements the planet defense simulation: a ship guards a
// planet against asteroids and alien ships. The package holds pure logic;
// the platform layer supplies input frames, timing and a terminal.
package defense

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/planet-defense/internal/config"
	"github.com/vovakirdan/planet-defense/internal/core"
	"github.com/vovakirdan/planet-defense/internal/logging"
	"github.com/vovakirdan/planet-defense/internal/registry"
)

// Mode selects endless or mission play.
type Mode int

const (
	ModeEndless Mode = iota // defend Earth until the ship is lost
	ModeMission             // fly out to Neptune and back
)

// Game IDs used by the registry and the run history.
const (
	IDEndless = "defense"
	IDMission = "defense_mission"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// defaultClass is the ship class new games start with
var defaultClass = config.ShipCruiser

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetDefaultShipClass sets the class used by games created afterwards.
func SetDefaultShipClass(class config.ShipClass) {
	defaultClass = class
}

// Game drives one session: it owns the world, the spawner, the solar system
// and the presenter, and runs the tick pipeline.
type Game struct {
	mode  Mode
	class config.ShipClass

	runtime core.RuntimeConfig
	cfg     config.DefenseConfig

	world     *World
	spawner   *Spawner
	system    *SolarSystem
	presenter *Presenter

	scene  Scene
	ui     UISink
	audio  AudioSink
	logger *log.Logger

	gameOver bool
	won      bool
	paused   bool

	phase        MissionPhase
	planetStart  int // defeated count when the current planet was reached
	intermission int

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates an endless-mode game.
func New() *Game {
	return &Game{mode: ModeEndless, class: defaultClass}
}

// NewMission creates a mission-mode game.
func NewMission() *Game {
	return &Game{mode: ModeMission, class: defaultClass}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeMission {
		return IDMission
	}
	return IDEndless
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeMission {
		return "Planet Defense (Mission)"
	}
	return "Planet Defense"
}

// SetShipClass changes the class used on the next Reset.
func (g *Game) SetShipClass(class config.ShipClass) { g.class = class }

// SetScene attaches a scene collaborator, used on the next Reset.
func (g *Game) SetScene(s Scene) { g.scene = s }

// SetUI attaches a UI sink. It takes effect immediately.
func (g *Game) SetUI(ui UISink) {
	g.ui = ui
	if g.presenter != nil {
		g.presenter.SetUI(ui)
	}
}

// SetAudio attaches an audio sink. It takes effect immediately.
func (g *Game) SetAudio(a AudioSink) {
	g.audio = a
	if g.presenter != nil {
		g.presenter.SetAudio(a)
	}
}

// SetLogger attaches a logger, used on the next Reset.
func (g *Game) SetLogger(l *log.Logger) { g.logger = l }

// Reset loads the configuration and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if g.logger == nil {
		g.logger = logging.Discard()
	}

	cfg, err := config.LoadDefense(configPath)
	if err != nil {
		g.logger.Warn("using built-in config", "error", err)
		cfg = config.DefaultDefenseConfig()
	}
	if difficultyPreset != "" {
		config.ApplyDefensePreset(&cfg, difficultyPreset)
	}
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig starts a fresh session with an explicit configuration.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.DefenseConfig) {
	if g.logger == nil {
		g.logger = logging.Discard()
	}
	g.runtime = runtime
	g.cfg = cfg

	planets := DefaultPlanets()
	if g.mode == ModeEndless {
		planets = planets[:1]
	}
	g.system = NewSolarSystem(planets)

	ship := NewShip(cfg.Ship, g.class)
	g.world = NewWorld(cfg, core.NewRNG(runtime.Seed), ship, g.system, g.scene, g.logger)
	g.spawner = NewSpawner(cfg)
	if g.presenter == nil {
		g.presenter = NewPresenter(g.ui, g.audio, g.logger)
	}
	g.presenter.Reset()

	g.gameOver = false
	g.won = false
	g.paused = false
	g.phase = PhaseOutbound
	g.planetStart = 0
	g.intermission = 0

	g.minScreenW = 40
	g.minScreenH = 12
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.placeShip()
	g.logger.Info("session started", "mode", g.ID(), "ship", g.class, "seed", runtime.Seed)
}

// Resize updates the terminal size without restarting the session.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// placeShip puts the ship in front of the current planet, facing it.
func (g *Game) placeShip() {
	p, ok := g.system.CurrentPlanet()
	if !ok {
		g.world.ship.Place(core.Vec3{}, 0)
		return
	}
	g.world.ship.Place(p.Pos.Add(core.V3(0, 0, g.cfg.World.StartDistance)), math.Pi)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.over() {
		g.ResetWithConfig(g.runtime, g.cfg)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.over() {
		g.paused = !g.paused
	}
	if g.paused || g.over() {
		return core.StepResult{State: g.State()}
	}

	g.applyInput(in)
	if g.Tick() {
		g.gameOver = true
		g.logger.Info("game over", "score", g.world.score, "level", g.spawner.Level(), "defeated", g.world.defeated)
	}
	return core.StepResult{State: g.State()}
}

// applyInput turns held actions into intent edges.
func (g *Game) applyInput(in core.InputFrame) {
	ship := g.world.ship
	for _, m := range []struct {
		action core.Action
		intent Intent
	}{
		{core.ActionThrust, IntentForward},
		{core.ActionReverse, IntentBackward},
		{core.ActionRotateLeft, IntentRotateLeft},
		{core.ActionRotateRight, IntentRotateRight},
		{core.ActionFire, IntentFire},
	} {
		if held := in.Has(m.action); held != ship.Intent(m.intent) {
			ship.SetIntent(m.intent, held)
		}
	}
}

// Tick runs one pass of the pipeline and reports whether the ship was
// destroyed: difficulty, spawns, ship and entity updates, collisions.
// New entities join the live set after each stage.
func (g *Game) Tick() bool {
	w := g.world
	w.tick++

	g.spawner.UpdateDifficulty(w)
	if g.intermission == 0 {
		g.spawner.Step(w)
		g.spawner.SpawnPickup(w)
	}
	w.reg.Flush()

	if laser := w.ship.Update(); laser != nil {
		w.reg.Spawn(laser)
	}
	w.reg.Flush()

	w.Update()
	w.reg.Purge()
	w.reg.Flush()

	destroyed := w.Resolve()
	w.reg.Purge()
	w.reg.Flush()

	if !destroyed && g.mode == ModeMission {
		g.advanceMission()
	}

	g.presenter.Present(w.events.Drain(), g.Stats())
	return destroyed
}

// advanceMission clears a planet once enough enemies fall, runs the
// intermission, then moves on along the route.
func (g *Game) advanceMission() {
	if g.won {
		return
	}
	if g.intermission > 0 {
		g.intermission--
		if g.intermission == 0 {
			g.arrive()
		}
		return
	}
	if g.world.defeated-g.planetStart < g.cfg.Mission.EnemiesPerPlanet {
		return
	}

	p, _ := g.system.CurrentPlanet()
	cleared := g.world.reg.RemoveWhere(hostile)
	g.world.reg.Purge()

	var text string
	switch {
	case g.phase == PhaseOutbound && g.system.AtOuterEdge():
		g.phase = PhaseReturn
		text = fmt.Sprintf("%s cleared! Element collected. Return to Earth", p.Name)
	case g.phase == PhaseOutbound:
		text = fmt.Sprintf("%s cleared! Onward to %s", p.Name, g.system.Planets()[g.system.Index()+1].Name)
	default:
		text = fmt.Sprintf("%s cleared! Heading home", p.Name)
	}

	g.intermission = max(1, g.cfg.Mission.IntermissionTicks)
	g.world.events.Emit(Banner{Text: text, Ticks: g.intermission})
	g.logger.Info("planet cleared", "planet", p.Name, "phase", g.phase, "removed", cleared)
}

func (g *Game) arrive() {
	switch g.phase {
	case PhaseOutbound:
		g.system.AdvanceToNextPlanet()
	case PhaseReturn:
		g.system.ReturnToPreviousPlanet()
	}
	g.placeShip()
	g.world.ship.ReleaseAll()
	g.spawner.ResetWave()
	g.planetStart = g.world.defeated

	p, _ := g.system.CurrentPlanet()
	if g.phase == PhaseReturn && g.system.AtHome() {
		g.phase = PhaseComplete
		g.won = true
		g.world.events.Emit(Banner{Text: "Mission complete! Earth is safe", Ticks: g.cfg.Mission.IntermissionTicks})
		g.logger.Info("mission complete", "score", g.world.score)
		return
	}
	g.world.events.Emit(Banner{Text: "Defend " + p.Name, Ticks: g.cfg.Mission.IntermissionTicks / 2})
	g.logger.Info("arrived", "planet", p.Name, "tier", p.Tier)
}

func (g *Game) over() bool {
	return g.gameOver || g.won
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Stats returns the HUD values.
func (g *Game) Stats() Stats {
	s := Stats{
		Score:     g.world.score,
		Health:    g.world.ship.Health,
		MaxHealth: g.world.ship.MaxHealth(),
		Level:     g.spawner.Level(),
		Defeated:  g.world.defeated,
		Hostiles:  g.world.reg.Count(KindAsteroid) + g.world.reg.Count(KindAlien),
	}
	if p, ok := g.system.CurrentPlanet(); ok {
		s.Planet = p.Name
	}
	return s
}

// World returns the simulation state.
func (g *Game) World() *World { return g.world }

// Spawner returns the spawner.
func (g *Game) Spawner() *Spawner { return g.spawner }

// System returns the solar system.
func (g *Game) System() *SolarSystem { return g.system }

// Presenter returns the presenter.
func (g *Game) Presenter() *Presenter { return g.presenter }

// Mode returns the game mode.
func (g *Game) Mode() Mode { return g.mode }

// Phase returns the mission phase.
func (g *Game) Phase() MissionPhase { return g.phase }

// Intermission returns the ticks left before arriving at the next planet.
func (g *Game) Intermission() int { return g.intermission }

// PlanetProgress returns the enemies defeated at the current planet and
// the number needed to clear it.
func (g *Game) PlanetProgress() (int, int) {
	return g.world.defeated - g.planetStart, g.cfg.Mission.EnemiesPerPlanet
}

// Config returns the configuration in use.
func (g *Game) Config() config.DefenseConfig { return g.cfg }

// init registers both modes with the global registry.
func init() {
	registry.Register(registry.GameInfo{
		ID:      IDEndless,
		Summary: "Endless: guard Earth until the ship is lost",
	}, func() registry.Game {
		return New()
	})
	registry.Register(registry.GameInfo{
		ID:      IDMission,
		Summary: "Mission: fly out to Neptune and bring the element home",
	}, func() registry.Game {
		return NewMission()
	})
}
