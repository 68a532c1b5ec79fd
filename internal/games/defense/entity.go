package defense

import "github.com/vovakirdan/planet-defense/internal/core"

// Kind tags an entity variant.
type Kind int

const (
	KindAsteroid Kind = iota
	KindAlien
	KindPlayerLaser
	KindAlienLaser
	KindParticles
	KindPickup
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindAsteroid:
		return "asteroid"
	case KindAlien:
		return "alien"
	case KindPlayerLaser:
		return "player_laser"
	case KindAlienLaser:
		return "alien_laser"
	case KindParticles:
		return "particles"
	case KindPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Entity is one dynamic actor in the registry. The set of implementations is
// closed: *Asteroid, *AlienShip, *Laser, *Particles and *HealthPickup.
type Entity interface {
	Kind() Kind
	Position() core.Vec3
	body() *Body
}

// Body is the envelope shared by every entity.
type Body struct {
	ID       int
	Pos      core.Vec3
	Vel      core.Vec3
	Lifetime int // 0 for kinds without a countdown

	removed bool
}

func (b *Body) body() *Body { return b }

// Position returns the world-space position.
func (b *Body) Position() core.Vec3 { return b.Pos }

// Removed reports whether the entity was removed and awaits purge.
func (b *Body) Removed() bool { return b.removed }

// Asteroid drifts toward the planet and spins.
type Asteroid struct {
	Body
	Health   int
	Damage   int
	Spin     core.Vec3 // rotation per tick on each axis
	Rotation core.Vec3
	Tier     int // stat level at spawn
	Grade    int // 1 for a plain rock; raised by asteroid tiers
	Scale    float64
	Color    core.RGB
}

func (*Asteroid) Kind() Kind { return KindAsteroid }

// Target selects what an alien ship aims at by default.
type Target int

const (
	TargetPlanet Target = iota
	TargetPlayer
)

// AlienShip approaches the planet and fires lasers on a cooldown.
type AlienShip struct {
	Body
	Health   int
	Damage   int
	Cooldown int
	FireRate int
	Target   Target
	Tier     int
	Yaw      float64
}

func (*AlienShip) Kind() Kind { return KindAlien }

// Owner identifies who fired a laser.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerAlien
)

// Laser is a projectile with a fixed lifetime.
type Laser struct {
	Body
	Owner  Owner
	Damage int
}

func (l *Laser) Kind() Kind {
	if l.Owner == OwnerAlien {
		return KindAlienLaser
	}
	return KindPlayerLaser
}

// Effect selects the decay law of a particle system.
type Effect int

const (
	EffectExplosion Effect = iota
	EffectSmoke
	EffectHeal
)

func (e Effect) String() string {
	switch e {
	case EffectExplosion:
		return "explosion"
	case EffectSmoke:
		return "smoke"
	case EffectHeal:
		return "heal"
	default:
		return "unknown"
	}
}

// Particles is a cosmetic burst. Points and Velocities are parallel slices;
// Body.Pos is the burst origin.
type Particles struct {
	Body
	Effect          Effect
	Points          []core.Vec3
	Velocities      []core.Vec3
	InitialLifetime int
	Opacity         float64
	Color           core.RGB
}

func (*Particles) Kind() Kind { return KindParticles }

// HealthPickup bobs in place until the ship collects it.
type HealthPickup struct {
	Body
	Heal  int
	BaseY float64
	Spin  float64
	Phase float64
	Scale float64
}

func (*HealthPickup) Kind() Kind { return KindPickup }

// hostile reports whether e can damage the ship or the planet.
func hostile(e Entity) bool {
	switch e.Kind() {
	case KindAsteroid, KindAlien, KindAlienLaser:
		return true
	}
	return false
}

// health returns the hit points of entities that have them.
func health(e Entity) (int, bool) {
	switch v := e.(type) {
	case *Asteroid:
		return v.Health, true
	case *AlienShip:
		return v.Health, true
	}
	return 0, false
}
