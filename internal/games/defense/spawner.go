package defense

import (
	"math"

	"github.com/vovakirdan/planet-defense/internal/config"
	"github.com/vovakirdan/planet-defense/internal/core"
)

// LevelTransition records a difficulty change.
type LevelTransition struct {
	Tick int
	From int
	To   int
}

// Spawner decides what to spawn and when, from the current score.
type Spawner struct {
	curve *config.DifficultyCurve
	cfg   config.DefenseConfig

	level       int
	counter     int
	transitions []LevelTransition

	waveTimer int
	waveDone  bool
}

// NewSpawner creates a spawner at level 1.
func NewSpawner(cfg config.DefenseConfig) *Spawner {
	return &Spawner{
		curve: config.NewDifficultyCurve(cfg),
		cfg:   cfg,
		level: 1,
	}
}

// Curve returns the difficulty curve in use.
func (s *Spawner) Curve() *config.DifficultyCurve { return s.curve }

// Level returns the level computed on the last UpdateDifficulty.
func (s *Spawner) Level() int { return s.level }

// Counter returns the ticks accumulated toward the next spawn event.
func (s *Spawner) Counter() int { return s.counter }

// Transitions returns every level change so far, oldest first.
func (s *Spawner) Transitions() []LevelTransition { return s.transitions }

// ResetWave re-arms the opening wave, used when arriving at a new planet.
func (s *Spawner) ResetWave() {
	s.waveTimer = 0
	s.waveDone = false
	s.counter = 0
}

// UpdateDifficulty recomputes the level from the world score. A level
// increase emits DifficultyChanged and the difficulty-up cue.
func (s *Spawner) UpdateDifficulty(w *World) {
	level := s.curve.Level(w.score)
	if level == s.level {
		return
	}
	from := s.level
	s.level = level
	if level < from {
		return
	}
	s.transitions = append(s.transitions, LevelTransition{Tick: w.tick, From: from, To: level})
	w.events.Emit(DifficultyChanged{Tick: w.tick, From: from, To: level})
	w.cue(CueDifficultyUp)
	w.log.Info("difficulty increased", "from", from, "to", level, "score", w.score)
}

// statLevel folds the planet tier into the score level for enemy stats.
func (s *Spawner) statLevel(w *World) int {
	return s.level + w.tier() - 1
}

// Step runs the spawn decision for one tick: the opening wave, then the
// periodic spawn event. It does nothing when there is no current planet.
func (s *Spawner) Step(w *World) {
	p, ok := w.planet()
	if !ok {
		w.log.Debug("spawner idle: no current planet", "tick", w.tick)
		return
	}

	if !s.waveDone {
		s.waveTimer++
		if s.waveTimer >= s.cfg.Spawner.InitialWave.DelayTicks {
			s.waveDone = true
			for range s.cfg.Spawner.InitialWave.Count {
				w.reg.Spawn(s.newAsteroid(w, p))
			}
		}
	}

	s.counter++
	if s.counter < s.curve.SpawnRate(s.level) {
		return
	}
	s.counter = 0

	count := 1
	if w.rng.Chance(s.curve.MultiSpawnChance(s.level)) {
		count = 1 + w.rng.Intn(s.curve.MaxEnemiesPerSpawn(s.level))
	}
	for range count {
		if w.rng.Chance(s.curve.AlienChance(s.level)) {
			w.reg.Spawn(s.newAlien(w, p))
		} else {
			w.reg.Spawn(s.newAsteroid(w, p))
		}
	}
	w.log.Debug("spawn event", "tick", w.tick, "count", count, "level", s.level)
}

// SpawnPickup rolls the per-tick health pickup chance. Pickups only appear
// while the entity count, including spawns queued this tick, is below the
// configured limit. They float at the planet's height.
func (s *Spawner) SpawnPickup(w *World) {
	p, ok := w.planet()
	if !ok {
		return
	}
	cfg := s.cfg.Pickups
	if w.reg.Len()+w.reg.Pending() >= cfg.MaxLiveEntities || !w.rng.Chance(cfg.SpawnChance) {
		return
	}

	pos := ringPosition(w, p, cfg.RingFactor, 0)
	w.reg.Spawn(&HealthPickup{
		Body: Body{
			Pos:      pos,
			Vel:      core.V3(0, cfg.BounceSpeed, 0),
			Lifetime: cfg.Lifetime,
		},
		Heal:  cfg.Heal,
		BaseY: pos.Y,
		Scale: 1,
	})
}

// ringPosition picks a point on a ring around the planet.
func ringPosition(w *World, p Planet, factor, heightSpread float64) core.Vec3 {
	r := p.Radius * factor
	angle := w.rng.Range(0, 2*math.Pi)
	return p.Pos.Add(core.V3(r*math.Cos(angle), w.rng.Range(-heightSpread, heightSpread), r*math.Sin(angle)))
}

func (s *Spawner) newAsteroid(w *World, p Planet) *Asteroid {
	cfg := s.cfg.Enemies.Asteroid
	level := s.statLevel(w)
	pos := ringPosition(w, p, cfg.RingFactor, cfg.HeightSpread)

	a := &Asteroid{
		Body: Body{
			Pos: pos,
			Vel: p.Pos.Sub(pos).WithLen(s.curve.AsteroidSpeed(level)),
		},
		Health: cfg.BaseHealth,
		Damage: cfg.BaseDamage,
		Spin:   core.V3(w.rng.Range(-cfg.SpinRate, cfg.SpinRate), w.rng.Range(-cfg.SpinRate, cfg.SpinRate), w.rng.Range(-cfg.SpinRate, cfg.SpinRate)),
		Tier:   level,
		Grade:  1,
		Scale:  1,
	}

	red, green, blue := w.rng.Range(0.3, 0.6), w.rng.Range(0.2, 0.5), w.rng.Range(0.1, 0.4)
	for i, tier := range cfg.Tiers {
		if level <= tier.AboveLevel || !w.rng.Chance(tier.Chance) {
			continue
		}
		a.Grade = i + 2
		a.Health = tier.Health
		a.Damage = tier.Damage
		a.Scale = tier.Scale
	}
	// Higher tiers glow redder.
	shift := 0.2 * float64(a.Grade-1)
	a.Color = core.NewRGB(red+shift, green-shift/2, blue-shift/2)
	return a
}

func (s *Spawner) newAlien(w *World, p Planet) *AlienShip {
	cfg := s.cfg.Enemies.Alien
	level := s.statLevel(w)
	pos := ringPosition(w, p, cfg.RingFactor, cfg.HeightSpread)
	vel := p.Pos.Sub(pos).WithLen(s.curve.AlienSpeed(level))
	rate := s.curve.AlienFireRate(level)

	return &AlienShip{
		Body:     Body{Pos: pos, Vel: vel},
		Health:   s.curve.AlienHealth(level),
		Damage:   s.curve.AlienDamage(level),
		Cooldown: rate / 2,
		FireRate: rate,
		Target:   TargetPlanet,
		Tier:     level,
		Yaw:      vel.Yaw(),
	}
}
