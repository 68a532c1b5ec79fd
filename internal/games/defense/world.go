package defense

import (
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/planet-defense/internal/config"
	"github.com/vovakirdan/planet-defense/internal/core"
	"github.com/vovakirdan/planet-defense/internal/logging"
)

// Text colors for floating indicators.
const (
	colorScoreAsteroid core.RGB = 0xffff44
	colorScoreAlien    core.RGB = 0xff44ff
	colorPenalty       core.RGB = 0xff4444
	colorHeal          core.RGB = 0x44ff44
	colorImpact        core.RGB = 0xffff00
	colorFlash         core.RGB = 0xffffff
	colorSmoke         core.RGB = 0x555555
)

// World is the mutable state shared by the spawner, updater and resolver.
// It is owned by one tick driver and never touched concurrently.
type World struct {
	cfg     config.DefenseConfig
	rng     *core.RNG
	reg     *Registry
	ship    *Ship
	planets PlanetProvider
	events  *EventQueue
	log     *log.Logger

	score    int
	defeated int
	tick     int
}

// NewWorld wires a world around its collaborators. A nil scene or logger
// is replaced by a no-op.
func NewWorld(cfg config.DefenseConfig, rng *core.RNG, ship *Ship, planets PlanetProvider, scene Scene, logger *log.Logger) *World {
	if logger == nil {
		logger = logging.Discard()
	}
	return &World{
		cfg:     cfg,
		rng:     rng,
		reg:     NewRegistry(scene),
		ship:    ship,
		planets: planets,
		events:  &EventQueue{},
		log:     logger,
	}
}

// Registry returns the entity registry.
func (w *World) Registry() *Registry { return w.reg }

// Ship returns the player ship.
func (w *World) Ship() *Ship { return w.ship }

// Events returns the outbound event queue.
func (w *World) Events() *EventQueue { return w.events }

// Score returns the current score.
func (w *World) Score() int { return w.score }

// Defeated returns the number of enemies destroyed by lasers.
func (w *World) Defeated() int { return w.defeated }

func (w *World) planet() (Planet, bool) {
	if w.planets == nil {
		return Planet{}, false
	}
	return w.planets.CurrentPlanet()
}

func (w *World) tier() int {
	if w.planets == nil {
		return 1
	}
	return max(1, w.planets.CurrentDifficultyTier())
}

func (w *World) credit(points int, pos core.Vec3, color core.RGB) {
	w.score += points
	w.events.Emit(FloatingText{Pos: pos, Text: "+" + strconv.Itoa(points), Color: color})
}

// penalize deducts points, flooring the score at 0.
func (w *World) penalize(points int, pos core.Vec3) {
	w.score = max(0, w.score-points)
	w.events.Emit(FloatingText{Pos: pos, Text: "-" + strconv.Itoa(points), Color: colorPenalty})
}

// damageShip applies damage and reports whether the ship was destroyed.
func (w *World) damageShip(amount int) bool {
	destroyed := w.ship.TakeDamage(amount)
	w.events.Emit(ShipDamaged{Amount: amount, Health: w.ship.Health})
	return destroyed
}

func (w *World) cue(c Cue) {
	w.events.Emit(CueEvent{Cue: c})
}

// explode spawns the explosion and smoke bursts with a flash and a cue.
func (w *World) explode(pos core.Vec3, color core.RGB) {
	fx := w.cfg.Effects
	w.reg.Spawn(w.burst(EffectExplosion, pos, color, fx.ExplosionParticles, fx.ExplosionLifetime, 1, func() core.Vec3 {
		speed := w.rng.Range(fx.ExplosionSpeedMin, fx.ExplosionSpeedMax)
		return w.jitter(1).Scale(speed)
	}))
	w.reg.Spawn(w.burst(EffectSmoke, pos, colorSmoke, fx.SmokeParticles, fx.SmokeLifetime, fx.SmokeOpacity, func() core.Vec3 {
		return w.jitter(0.2).Add(core.V3(0, 0.05, 0))
	}))
	w.events.Emit(Flash{Pos: pos, Color: colorFlash, Intensity: 1, Ticks: fx.FlashTicks})
	w.cue(CueExplosion)
}

// healBurst spawns the green particles shown when a pickup is collected.
func (w *World) healBurst(pos core.Vec3) {
	fx := w.cfg.Effects
	w.reg.Spawn(w.burst(EffectHeal, pos, colorHeal, fx.HealParticles, fx.HealLifetime, 1, func() core.Vec3 {
		return w.jitter(1).WithLen(0.4)
	}))
}

func (w *World) burst(effect Effect, pos core.Vec3, color core.RGB, n, lifetime int, opacity float64, velocity func() core.Vec3) *Particles {
	p := &Particles{
		Body:            Body{Pos: pos, Lifetime: lifetime},
		Effect:          effect,
		Points:          make([]core.Vec3, n),
		Velocities:      make([]core.Vec3, n),
		InitialLifetime: lifetime,
		Opacity:         opacity,
		Color:           color,
	}
	for i := range n {
		p.Points[i] = pos.Add(w.jitter(0.5))
		p.Velocities[i] = velocity()
	}
	return p
}

// jitter returns a vector with each component uniform in [-h/2, h/2).
func (w *World) jitter(h float64) core.Vec3 {
	return core.V3(w.rng.Range(-h/2, h/2), w.rng.Range(-h/2, h/2), w.rng.Range(-h/2, h/2))
}
