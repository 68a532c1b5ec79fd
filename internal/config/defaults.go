package config

import (
	_ "embed"
)

//go:embed defaults/defense.yaml
var defaultDefenseYAML []byte

// DefaultDefenseConfig returns the built-in configuration. It mirrors
// defaults/defense.yaml and is used when the embedded copy fails to parse.
func DefaultDefenseConfig() DefenseConfig {
	return DefenseConfig{
		Spawner: SpawnerConfig{
			PointsPerLevel:      500,
			BaseSpawnRate:       300,
			MinSpawnRate:        60,
			SpawnRateStep:       30,
			AlienChanceBase:     0.05,
			AlienChanceStep:     0.04,
			MaxAlienChance:      0.4,
			MultiSpawnStep:      0.1,
			MaxMultiSpawnChance: 0.5,
			MaxEnemiesPerSpawn:  5,
			InitialWave: InitialWave{
				DelayTicks: 180,
				Count:      3,
			},
		},
		Enemies: EnemiesConfig{
			Asteroid: AsteroidConfig{
				RingFactor:   5,
				HeightSpread: 10,
				BaseSpeed:    0.1,
				SpeedStep:    0.02,
				SpinRate:     0.02,
				BaseHealth:   1,
				BaseDamage:   10,
				Tiers: []AsteroidTier{
					{AboveLevel: 2, Chance: 0.3, Health: 2, Damage: 15, Scale: 1.3},
					{AboveLevel: 4, Chance: 0.2, Health: 3, Damage: 20, Scale: 1.6},
				},
			},
			Alien: AlienConfig{
				RingFactor:      8,
				HeightSpread:    20,
				BaseSpeed:       0.2,
				SpeedStep:       0.03,
				BaseHealth:      3,
				BaseFireRate:    120,
				FireRateStep:    10,
				MinFireRate:     30,
				BaseDamage:      10,
				DamageStep:      2,
				PlayerAimChance: 0.3,
				AimJitter:       0.2,
				LaserSpeed:      2,
				LaserLifetime:   100,
				LaserDamage:     5,
				Color:           0xaa00ff,
			},
		},
		Pickups: PickupConfig{
			SpawnChance:     0.005,
			MaxLiveEntities: 3,
			Heal:            25,
			Lifetime:        900,
			RingFactor:      3,
			BounceSpeed:     0.05,
			BounceHeight:    3,
			SpinRate:        0.03,
			PulseRate:       0.1,
		},
		Effects: EffectsConfig{
			ExplosionParticles: 50,
			ExplosionLifetime:  60,
			ExplosionSpeedMin:  0.3,
			ExplosionSpeedMax:  0.7,
			ExplosionGrowth:    1.05,
			SmokeParticles:     30,
			SmokeLifetime:      90,
			SmokeOpacity:       0.7,
			SmokeDecay:         0.98,
			SmokeDrift:         0.003,
			HealParticles:      20,
			HealLifetime:       30,
			HealDecay:          0.95,
			FlashTicks:         10,
		},
		Collision: CollisionConfig{
			AsteroidHitRadius: 15,
			HitRadius:         8,
			PlayerRadius:      5,
			PickupRadius:      5,
			PlanetMargin:      2,
			PlanetShipDamage:  10,
		},
		Scoring: ScoringConfig{
			Asteroid:          100,
			Alien:             300,
			ContactPenalty:    50,
			AlienLaserPenalty: 25,
			PlanetPenalty:     50,
		},
		Ship: ShipConfig{
			Thrust:        0.06,
			ReverseFactor: 0.5,
			Drag:          0.98,
			MaxSpeed:      1.5,
			RotationSpeed: 0.05,
			MaxHealth:     100,
			FireCooldown:  8,
			Damage:        1,
			LaserSpeed:    3,
			LaserLifetime: 40,
			MuzzleOffset:  8,
			Classes: ShipClassesConfig{
				Interceptor: ShipMultipliers{Speed: 1.3, Rotation: 1.25, MaxHealth: 0.75, Cooldown: 0.75, Damage: 1},
				Cruiser:     ShipMultipliers{Speed: 1, Rotation: 1, MaxHealth: 1, Cooldown: 1, Damage: 1},
				Juggernaut:  ShipMultipliers{Speed: 0.75, Rotation: 0.8, MaxHealth: 1.5, Cooldown: 1.5, Damage: 2},
			},
		},
		World: WorldConfig{
			CullDistance:  1000,
			StartDistance: 60,
		},
		Mission: MissionConfig{
			EnemiesPerPlanet:  15,
			IntermissionTicks: 180,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDefenseYAML
}
