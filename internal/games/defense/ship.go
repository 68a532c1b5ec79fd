package defense

import (
	"math"

	"github.com/vovakirdan/planet-defense/internal/config"
	"github.com/vovakirdan/planet-defense/internal/core"
)

// Intent is one of the held controls driving the ship.
type Intent int

const (
	IntentForward Intent = iota
	IntentBackward
	IntentRotateLeft
	IntentRotateRight
	IntentFire

	intentCount
)

// ShipStats are the class-scaled ship stats, fixed at creation.
type ShipStats struct {
	Thrust    float64
	MaxSpeed  float64
	Rotation  float64 // radians per tick
	MaxHealth int
	Cooldown  int // ticks between shots
	Damage    int // per laser
}

// NewShipStats scales the base stats by the class multipliers. Integer
// stats round to nearest and never drop below 1.
func NewShipStats(cfg config.ShipConfig, class config.ShipClass) ShipStats {
	m := cfg.Classes.For(class)
	return ShipStats{
		Thrust:    cfg.Thrust * m.Speed,
		MaxSpeed:  cfg.MaxSpeed * m.Speed,
		Rotation:  cfg.RotationSpeed * m.Rotation,
		MaxHealth: scaleInt(cfg.MaxHealth, m.MaxHealth),
		Cooldown:  scaleInt(cfg.FireCooldown, m.Cooldown),
		Damage:    scaleInt(cfg.Damage, m.Damage),
	}
}

func scaleInt(base int, mult float64) int {
	return max(1, int(math.Round(float64(base)*mult)))
}

// Ship is the player-controlled spacecraft. It moves with accumulated
// velocity: thrust adds along the facing, drag bleeds speed every tick.
type Ship struct {
	Pos    core.Vec3
	Vel    core.Vec3
	Yaw    float64
	Health int

	class    config.ShipClass
	stats    ShipStats
	cfg      config.ShipConfig
	cooldown int
	intents  [intentCount]bool
}

// NewShip creates a ship of the given class at full health.
func NewShip(cfg config.ShipConfig, class config.ShipClass) *Ship {
	stats := NewShipStats(cfg, class)
	return &Ship{
		Health: stats.MaxHealth,
		class:  class,
		stats:  stats,
		cfg:    cfg,
	}
}

// Class returns the ship class chosen at creation.
func (s *Ship) Class() config.ShipClass { return s.class }

// Stats returns the class-scaled stats.
func (s *Ship) Stats() ShipStats { return s.stats }

// MaxHealth returns the class maximum.
func (s *Ship) MaxHealth() int { return s.stats.MaxHealth }

// Cooldown returns the ticks left before the next shot.
func (s *Ship) Cooldown() int { return s.cooldown }

// SetIntent records a press (true) or release (false) edge.
func (s *Ship) SetIntent(i Intent, on bool) {
	if i < 0 || i >= intentCount {
		return
	}
	s.intents[i] = on
}

// Intent reports whether an intent is held.
func (s *Ship) Intent(i Intent) bool {
	if i < 0 || i >= intentCount {
		return false
	}
	return s.intents[i]
}

// ReleaseAll drops every held intent.
func (s *Ship) ReleaseAll() {
	s.intents = [intentCount]bool{}
}

// Place moves the ship and stops it.
func (s *Ship) Place(pos core.Vec3, yaw float64) {
	s.Pos = pos
	s.Vel = core.Vec3{}
	s.Yaw = yaw
}

// Forward returns the unit facing vector.
func (s *Ship) Forward() core.Vec3 {
	return core.Forward(s.Yaw)
}

// Update advances the ship one tick. It returns the laser fired this tick,
// or nil.
func (s *Ship) Update() *Laser {
	if s.intents[IntentRotateLeft] {
		s.Yaw += s.stats.Rotation
	}
	if s.intents[IntentRotateRight] {
		s.Yaw -= s.stats.Rotation
	}

	fwd := s.Forward()
	if s.intents[IntentForward] {
		s.Vel = s.Vel.Add(fwd.Scale(s.stats.Thrust))
	}
	if s.intents[IntentBackward] {
		s.Vel = s.Vel.Sub(fwd.Scale(s.stats.Thrust * s.cfg.ReverseFactor))
	}

	s.Vel = s.Vel.Scale(s.cfg.Drag)
	if s.Vel.Len() > s.stats.MaxSpeed {
		s.Vel = s.Vel.WithLen(s.stats.MaxSpeed)
	}
	s.Pos = s.Pos.Add(s.Vel)

	if s.cooldown > 0 {
		s.cooldown--
	}
	if !s.intents[IntentFire] || s.cooldown > 0 {
		return nil
	}
	s.cooldown = s.stats.Cooldown

	return &Laser{
		Body: Body{
			Pos:      s.Pos.Add(fwd.Scale(s.cfg.MuzzleOffset)),
			Vel:      fwd.Scale(s.cfg.LaserSpeed),
			Lifetime: s.cfg.LaserLifetime,
		},
		Owner:  OwnerPlayer,
		Damage: s.stats.Damage,
	}
}

// TakeDamage subtracts health, clamped at 0, and reports destruction.
func (s *Ship) TakeDamage(amount int) bool {
	if amount > 0 {
		s.Health = max(0, s.Health-amount)
	}
	return s.Health <= 0
}

// Heal restores health up to the class maximum and returns the amount
// actually restored.
func (s *Ship) Heal(amount int) int {
	if amount <= 0 || s.Health <= 0 {
		return 0
	}
	before := s.Health
	s.Health = min(s.stats.MaxHealth, s.Health+amount)
	return s.Health - before
}

// Destroyed reports whether health reached 0.
func (s *Ship) Destroyed() bool {
	return s.Health <= 0
}
