// Package config provides YAML-based configuration for the defense
// simulation, difficulty presets and the score-driven difficulty curve.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// DefenseConfig contains every tunable of the simulation.
type DefenseConfig struct {
	Spawner   SpawnerConfig   `yaml:"spawner"`
	Enemies   EnemiesConfig   `yaml:"enemies"`
	Pickups   PickupConfig    `yaml:"pickups"`
	Effects   EffectsConfig   `yaml:"effects"`
	Collision CollisionConfig `yaml:"collision"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Ship      ShipConfig      `yaml:"ship"`
	World     WorldConfig     `yaml:"world"`
	Mission   MissionConfig   `yaml:"mission"`
}

// SpawnerConfig defines spawn pacing and how it tightens with level.
type SpawnerConfig struct {
	PointsPerLevel      int         `yaml:"points_per_level"`
	BaseSpawnRate       int         `yaml:"base_spawn_rate"` // ticks between spawn events before level scaling
	MinSpawnRate        int         `yaml:"min_spawn_rate"`
	SpawnRateStep       int         `yaml:"spawn_rate_step"` // ticks removed per level
	AlienChanceBase     float64     `yaml:"alien_chance_base"`
	AlienChanceStep     float64     `yaml:"alien_chance_step"`
	MaxAlienChance      float64     `yaml:"max_alien_chance"`
	MultiSpawnStep      float64     `yaml:"multi_spawn_step"`
	MaxMultiSpawnChance float64     `yaml:"max_multi_spawn_chance"`
	MaxEnemiesPerSpawn  int         `yaml:"max_enemies_per_spawn"`
	InitialWave         InitialWave `yaml:"initial_wave"`
}

// InitialWave is the one-off opening spawn on each planet.
type InitialWave struct {
	DelayTicks int `yaml:"delay_ticks"`
	Count      int `yaml:"count"`
}

// EnemiesConfig groups the per-kind enemy stats.
type EnemiesConfig struct {
	Asteroid AsteroidConfig `yaml:"asteroid"`
	Alien    AlienConfig    `yaml:"alien"`
}

// AsteroidConfig defines asteroid placement and tiered stats.
type AsteroidConfig struct {
	RingFactor   float64        `yaml:"ring_factor"` // spawn ring radius in planet radii
	HeightSpread float64        `yaml:"height_spread"`
	BaseSpeed    float64        `yaml:"base_speed"`
	SpeedStep    float64        `yaml:"speed_step"`
	SpinRate     float64        `yaml:"spin_rate"`
	BaseHealth   int            `yaml:"base_health"`
	BaseDamage   int            `yaml:"base_damage"`
	Tiers        []AsteroidTier `yaml:"tiers"`
}

// AsteroidTier upgrades an asteroid when the level exceeds AboveLevel and
// an independent Bernoulli trial with Chance succeeds.
type AsteroidTier struct {
	AboveLevel int     `yaml:"above_level"`
	Chance     float64 `yaml:"chance"`
	Health     int     `yaml:"health"`
	Damage     int     `yaml:"damage"`
	Scale      float64 `yaml:"scale"`
}

// AlienConfig defines alien placement, stats and weapon.
type AlienConfig struct {
	RingFactor      float64 `yaml:"ring_factor"`
	HeightSpread    float64 `yaml:"height_spread"`
	BaseSpeed       float64 `yaml:"base_speed"`
	SpeedStep       float64 `yaml:"speed_step"`
	BaseHealth      int     `yaml:"base_health"`
	BaseFireRate    int     `yaml:"base_fire_rate"`
	FireRateStep    int     `yaml:"fire_rate_step"`
	MinFireRate     int     `yaml:"min_fire_rate"`
	BaseDamage      int     `yaml:"base_damage"`
	DamageStep      int     `yaml:"damage_step"`
	PlayerAimChance float64 `yaml:"player_aim_chance"`
	AimJitter       float64 `yaml:"aim_jitter"`
	LaserSpeed      float64 `yaml:"laser_speed"`
	LaserLifetime   int     `yaml:"laser_lifetime"`
	LaserDamage     int     `yaml:"laser_damage"`
	Color           uint32  `yaml:"color"`
}

// PickupConfig defines health pickups.
type PickupConfig struct {
	SpawnChance     float64 `yaml:"spawn_chance"`      // per tick
	MaxLiveEntities int     `yaml:"max_live_entities"` // pickups only spawn below this count
	Heal            int     `yaml:"heal"`
	Lifetime        int     `yaml:"lifetime"` // 0 = never expires
	RingFactor      float64 `yaml:"ring_factor"`
	BounceSpeed     float64 `yaml:"bounce_speed"`
	BounceHeight    float64 `yaml:"bounce_height"`
	SpinRate        float64 `yaml:"spin_rate"`
	PulseRate       float64 `yaml:"pulse_rate"`
}

// EffectsConfig defines particle effects and flashes.
type EffectsConfig struct {
	ExplosionParticles int     `yaml:"explosion_particles"`
	ExplosionLifetime  int     `yaml:"explosion_lifetime"`
	ExplosionSpeedMin  float64 `yaml:"explosion_speed_min"`
	ExplosionSpeedMax  float64 `yaml:"explosion_speed_max"`
	ExplosionGrowth    float64 `yaml:"explosion_growth"`
	SmokeParticles     int     `yaml:"smoke_particles"`
	SmokeLifetime      int     `yaml:"smoke_lifetime"`
	SmokeOpacity       float64 `yaml:"smoke_opacity"`
	SmokeDecay         float64 `yaml:"smoke_decay"`
	SmokeDrift         float64 `yaml:"smoke_drift"`
	HealParticles      int     `yaml:"heal_particles"`
	HealLifetime       int     `yaml:"heal_lifetime"`
	HealDecay          float64 `yaml:"heal_decay"`
	FlashTicks         int     `yaml:"flash_ticks"`
}

// CollisionConfig defines the coarse hit radii.
type CollisionConfig struct {
	AsteroidHitRadius float64 `yaml:"asteroid_hit_radius"`
	HitRadius         float64 `yaml:"hit_radius"`
	PlayerRadius      float64 `yaml:"player_radius"`
	PickupRadius      float64 `yaml:"pickup_radius"`
	PlanetMargin      float64 `yaml:"planet_margin"`
	PlanetShipDamage  int     `yaml:"planet_ship_damage"`
}

// ScoringConfig defines score credits and penalties.
type ScoringConfig struct {
	Asteroid          int `yaml:"asteroid"`
	Alien             int `yaml:"alien"`
	ContactPenalty    int `yaml:"contact_penalty"`
	AlienLaserPenalty int `yaml:"alien_laser_penalty"`
	PlanetPenalty     int `yaml:"planet_penalty"`
}

// ShipConfig defines the base ship stats before class multipliers.
type ShipConfig struct {
	Thrust        float64           `yaml:"thrust"`
	ReverseFactor float64           `yaml:"reverse_factor"`
	Drag          float64           `yaml:"drag"`
	MaxSpeed      float64           `yaml:"max_speed"`
	RotationSpeed float64           `yaml:"rotation_speed"`
	MaxHealth     int               `yaml:"max_health"`
	FireCooldown  int               `yaml:"fire_cooldown"`
	Damage        int               `yaml:"damage"`
	LaserSpeed    float64           `yaml:"laser_speed"`
	LaserLifetime int               `yaml:"laser_lifetime"`
	MuzzleOffset  float64           `yaml:"muzzle_offset"`
	Classes       ShipClassesConfig `yaml:"classes"`
}

// WorldConfig defines scene-wide distances.
type WorldConfig struct {
	CullDistance  float64 `yaml:"cull_distance"`
	StartDistance float64 `yaml:"start_distance"` // ship spawn offset in front of the planet
}

// MissionConfig defines mission-mode pacing.
type MissionConfig struct {
	EnemiesPerPlanet  int `yaml:"enemies_per_planet"`
	IntermissionTicks int `yaml:"intermission_ticks"`
}

// Validate rejects configurations that would stall or divide by zero.
func (c DefenseConfig) Validate() error {
	var errs []error
	check := func(ok bool, field string) {
		if !ok {
			errs = append(errs, fmt.Errorf("%s must be positive", field))
		}
	}

	check(c.Spawner.PointsPerLevel > 0, "spawner.points_per_level")
	check(c.Spawner.MinSpawnRate > 0, "spawner.min_spawn_rate")
	check(c.Spawner.BaseSpawnRate > 0, "spawner.base_spawn_rate")
	check(c.Spawner.MaxEnemiesPerSpawn > 0, "spawner.max_enemies_per_spawn")
	check(c.Enemies.Alien.MinFireRate > 0, "enemies.alien.min_fire_rate")
	check(c.Enemies.Alien.LaserSpeed > 0, "enemies.alien.laser_speed")
	check(c.Effects.ExplosionLifetime > 0, "effects.explosion_lifetime")
	check(c.Effects.SmokeLifetime > 0, "effects.smoke_lifetime")
	check(c.Effects.HealLifetime > 0, "effects.heal_lifetime")
	check(c.Collision.HitRadius > 0, "collision.hit_radius")
	check(c.Collision.AsteroidHitRadius > 0, "collision.asteroid_hit_radius")
	check(c.Collision.PlayerRadius > 0, "collision.player_radius")
	check(c.Ship.MaxHealth > 0, "ship.max_health")
	check(c.Ship.LaserLifetime > 0, "ship.laser_lifetime")
	check(c.World.CullDistance > 0, "world.cull_distance")

	for i, tier := range c.Enemies.Asteroid.Tiers {
		check(tier.Health > 0, fmt.Sprintf("enemies.asteroid.tiers[%d].health", i))
	}
	for _, class := range ShipClasses() {
		m := c.Ship.Classes.For(class)
		check(m.Speed > 0 && m.Rotation > 0 && m.MaxHealth > 0 && m.Cooldown > 0 && m.Damage > 0,
			"ship.classes."+class.String())
	}

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ErrUnknownPreset is returned for preset names outside easy/normal/hard.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// ParsePreset maps a CLI string onto a preset. The empty string selects
// normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(s))) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}

// ApplyDefensePreset adjusts pacing and ship durability for a preset.
func ApplyDefensePreset(cfg *DefenseConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawner.BaseSpawnRate = 360
		cfg.Spawner.MaxAlienChance = 0.3
		cfg.Ship.MaxHealth = 150
	case DifficultyHard:
		cfg.Spawner.BaseSpawnRate = 240
		cfg.Spawner.MinSpawnRate = 45
		cfg.Spawner.MaxAlienChance = 0.5
		cfg.Spawner.PointsPerLevel = 400
		cfg.Ship.MaxHealth = 75
	}
}
