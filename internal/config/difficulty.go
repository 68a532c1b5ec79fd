package config

import "math"

// DifficultyCurve turns score into a level and a level into spawn pacing
// and enemy stats. Every method is a pure function of its arguments.
type DifficultyCurve struct {
	spawner  SpawnerConfig
	asteroid AsteroidConfig
	alien    AlienConfig
}

// NewDifficultyCurve creates a curve from the spawner and enemy sections.
func NewDifficultyCurve(cfg DefenseConfig) *DifficultyCurve {
	return &DifficultyCurve{
		spawner:  cfg.Spawner,
		asteroid: cfg.Enemies.Asteroid,
		alien:    cfg.Enemies.Alien,
	}
}

// Level returns floor(score/pointsPerLevel)+1. Negative scores count as 0.
func (d *DifficultyCurve) Level(score int) int {
	if score < 0 {
		score = 0
	}
	per := d.spawner.PointsPerLevel
	if per <= 0 {
		per = 500
	}
	return score/per + 1
}

// SpawnRate returns the ticks between spawn events at a level.
func (d *DifficultyCurve) SpawnRate(level int) int {
	return max(d.spawner.MinSpawnRate, d.spawner.BaseSpawnRate-d.spawner.SpawnRateStep*level)
}

// AlienChance returns the probability that a spawned enemy is an alien.
func (d *DifficultyCurve) AlienChance(level int) float64 {
	return math.Min(d.spawner.MaxAlienChance, d.spawner.AlienChanceBase+d.spawner.AlienChanceStep*float64(level))
}

// MultiSpawnChance returns the probability that a spawn event fields a
// group instead of a single enemy.
func (d *DifficultyCurve) MultiSpawnChance(level int) float64 {
	return math.Min(d.spawner.MaxMultiSpawnChance, d.spawner.MultiSpawnStep*float64(level-1))
}

// MaxEnemiesPerSpawn caps the group size of a multi-spawn.
func (d *DifficultyCurve) MaxEnemiesPerSpawn(level int) int {
	return min(d.spawner.MaxEnemiesPerSpawn, 1+level/2)
}

// AsteroidSpeed returns the approach speed of a new asteroid.
func (d *DifficultyCurve) AsteroidSpeed(level int) float64 {
	return d.asteroid.BaseSpeed + d.asteroid.SpeedStep*float64(level-1)
}

// AlienSpeed returns the approach speed of a new alien ship.
func (d *DifficultyCurve) AlienSpeed(level int) float64 {
	return d.alien.BaseSpeed + d.alien.SpeedStep*float64(level-1)
}

// AlienHealth returns the hit points of a new alien ship.
func (d *DifficultyCurve) AlienHealth(level int) int {
	return d.alien.BaseHealth + (level-1)/2
}

// AlienFireRate returns the ticks between alien shots.
func (d *DifficultyCurve) AlienFireRate(level int) int {
	return max(d.alien.MinFireRate, d.alien.BaseFireRate-d.alien.FireRateStep*(level-1))
}

// AlienDamage returns the contact damage of a new alien ship.
func (d *DifficultyCurve) AlienDamage(level int) int {
	return d.alien.BaseDamage + d.alien.DamageStep*(level-1)
}
