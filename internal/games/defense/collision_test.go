package defense

import (
	"slices"
	"testing"

	"github.com/vovakirdan/planet-defense/internal/core"
)

func TestLaserDestroysAsteroid(t *testing.T) {
	w := newTestWorld(t, quietConfig())
	rock := &Asteroid{Body: Body{Pos: core.V3(200, 0, 0)}, Health: 1, Color: 0x886644}
	laser := &Laser{Body: Body{Pos: core.V3(190, 0, 0), Vel: core.V3(1, 0, 0), Lifetime: 40}, Owner: OwnerPlayer, Damage: 1}
	spawnNow(w, rock, laser)

	if runTick(w) {
		t.Fatal("ship reported destroyed")
	}

	if !rock.Removed() || !laser.Removed() {
		t.Fatalf("rock removed=%v laser removed=%v, want both", rock.Removed(), laser.Removed())
	}
	if w.Score() != 100 {
		t.Errorf("Score() = %d, want 100", w.Score())
	}
	if w.Defeated() != 1 {
		t.Errorf("Defeated() = %d, want 1", w.Defeated())
	}
	if n := countEffect(w, EffectExplosion); n != 1 {
		t.Errorf("%d explosions, want 1", n)
	}
	if n := countEffect(w, EffectSmoke); n != 1 {
		t.Errorf("%d smoke bursts, want 1", n)
	}

	events := w.events.Drain()
	if !slices.Contains(texts(events), "+100") {
		t.Errorf("floating texts %v, want +100", texts(events))
	}
	if !hasCue(events, CueExplosion) {
		t.Error("missing explosion cue")
	}
}

func TestLaserDamagesToughTarget(t *testing.T) {
	w := newTestWorld(t, quietConfig())
	alien := &AlienShip{Body: Body{Pos: core.V3(200, 0, 0)}, Health: 3, Cooldown: 1000, FireRate: 1000}
	laser := &Laser{Body: Body{Pos: core.V3(195, 0, 0), Lifetime: 40}, Owner: OwnerPlayer, Damage: 1}
	spawnNow(w, alien, laser)

	runTick(w)
	if alien.Health != 2 {
		t.Errorf("alien Health = %d, want 2", alien.Health)
	}
	if alien.Removed() {
		t.Error("alien removed while alive")
	}
	if !laser.Removed() {
		t.Error("laser survived its hit")
	}
	if w.Score() != 0 || w.Defeated() != 0 {
		t.Errorf("Score=%d Defeated=%d, want 0 and 0", w.Score(), w.Defeated())
	}

	events := w.events.Drain()
	if !hasCue(events, CueLaserHit) {
		t.Error("missing laser hit cue")
	}
	var impact bool
	for _, ev := range events {
		if f, ok := ev.(Flash); ok && f.Color == colorImpact && f.Intensity == 0.5 {
			impact = true
		}
	}
	if !impact {
		t.Error("missing impact flash")
	}
}

func TestAlienKillScoresMore(t *testing.T) {
	w := newTestWorld(t, quietConfig())
	alien := &AlienShip{Body: Body{Pos: core.V3(200, 0, 0)}, Health: 1, Cooldown: 1000, FireRate: 1000}
	laser := &Laser{Body: Body{Pos: core.V3(195, 0, 0), Lifetime: 40}, Owner: OwnerPlayer, Damage: 2}
	spawnNow(w, alien, laser)

	runTick(w)
	if w.Score() != 300 {
		t.Errorf("Score() = %d, want 300", w.Score())
	}
}

func TestAlienHitRadiusIsSmaller(t *testing.T) {
	w := newTestWorld(t, quietConfig())
	// 10 units: inside the asteroid radius, outside the alien radius.
	alien := &AlienShip{Body: Body{Pos: core.V3(200, 0, 0)}, Health: 1, Cooldown: 1000, FireRate: 1000}
	laser := &Laser{Body: Body{Pos: core.V3(190, 0, 0), Lifetime: 40}, Owner: OwnerPlayer, Damage: 1}
	spawnNow(w, alien, laser)

	runTick(w)
	if alien.Removed() || laser.Removed() {
		t.Errorf("alien removed=%v laser removed=%v, want neither", alien.Removed(), laser.Removed())
	}
}

func TestLaserHitsAtMostOneTarget(t *testing.T) {
	w := newTestWorld(t, quietConfig())
	a := &Asteroid{Body: Body{Pos: core.V3(200, 0, 0)}, Health: 1}
	b := &Asteroid{Body: Body{Pos: core.V3(202, 0, 0)}, Health: 1}
	laser := &Laser{Body: Body{Pos: core.V3(201, 0, 0), Lifetime: 40}, Owner: OwnerPlayer, Damage: 5}
	spawnNow(w, a, b, laser)

	runTick(w)
	if w.Defeated() != 1 {
		t.Errorf("Defeated() = %d, want 1", w.Defeated())
	}
	if a.Removed() == b.Removed() {
		t.Errorf("a removed=%v b removed=%v, want exactly one", a.Removed(), b.Removed())
	}
	if w.Score() != 100 {
		t.Errorf("Score() = %d, want 100", w.Score())
	}
}

func TestAlienLasersIgnoreEnemies(t *testing.T) {
	w := newTestWorld(t, quietConfig())
	rock := &Asteroid{Body: Body{Pos: core.V3(200, 0, 0)}, Health: 1}
	shot := &Laser{Body: Body{Pos: core.V3(200, 0, 0), Lifetime: 40}, Owner: OwnerAlien, Damage: 5}
	spawnNow(w, rock, shot)

	runTick(w)
	if rock.Removed() || shot.Removed() {
		t.Error("alien laser interacted with an asteroid")
	}
}

func TestKilledEntitySkipsLaterPasses(t *testing.T) {
	w := newTestWorld(t, quietConfig())
	w.ship.Place(core.V3(200, 0, 3), 0)
	rock := &Asteroid{Body: Body{Pos: core.V3(200, 0, 0)}, Health: 1, Damage: 10}
	laser := &Laser{Body: Body{Pos: core.V3(195, 0, 0), Lifetime: 40}, Owner: OwnerPlayer, Damage: 1}
	spawnNow(w, rock, laser)

	runTick(w)
	if w.ship.Health != w.ship.MaxHealth() {
		t.Errorf("ship took %d damage from a destroyed asteroid", w.ship.MaxHealth()-w.ship.Health)
	}
	if w.Score() != 100 {
		t.Errorf("Score() = %d, want 100", w.Score())
	}
	if n := countEffect(w, EffectExplosion); n != 1 {
		t.Errorf("%d explosions, want 1", n)
	}
}

func TestContactDamage(t *testing.T) {
	w := newTestWorld(t, quietConfig())
	w.score = 120
	rock := &Asteroid{Body: Body{Pos: w.ship.Pos}, Health: 1, Damage: 10}
	spawnNow(w, rock)

	if runTick(w) {
		t.Fatal("ship destroyed by 10 damage")
	}
	if w.ship.Health != 90 {
		t.Errorf("ship Health = %d, want 90", w.ship.Health)
	}
	if w.Score() != 70 {
		t.Errorf("Score() = %d, want 70", w.Score())
	}
	if !rock.Removed() || rock.Health > 0 {
		t.Errorf("rock removed=%v health=%d", rock.Removed(), rock.Health)
	}
	if w.Defeated() != 0 {
		t.Errorf("contact kill counted as defeated: %d", w.Defeated())
	}
	if countEffect(w, EffectExplosion) != 1 {
		t.Error("contact did not explode the asteroid")
	}

	events := w.events.Drain()
	var hurt *ShipDamaged
	for _, ev := range events {
		if sd, ok := ev.(ShipDamaged); ok {
			hurt = &sd
		}
	}
	if hurt == nil || hurt.Amount != 10 || hurt.Health != 90 {
		t.Errorf("ShipDamaged = %+v, want 10 leaving 90", hurt)
	}
	if !slices.Contains(texts(events), "-50") {
		t.Errorf("floating texts %v, want -50", texts(events))
	}
}

func TestScoreFloorsAtZero(t *testing.T) {
	w := newTestWorld(t, quietConfig())
	w.score = 30
	for range 3 {
		shot := &Laser{Body: Body{Pos: w.ship.Pos, Lifetime: 40}, Owner: OwnerAlien, Damage: 5}
		spawnNow(w, shot)
		runTick(w)
		if w.Score() < 0 {
			t.Fatalf("Score() = %d, below zero", w.Score())
		}
	}
	if w.Score() != 0 {
		t.Errorf("Score() = %d, want 0", w.Score())
	}
	if w.ship.Health != 85 {
		t.Errorf("ship Health = %d, want 85", w.ship.Health)
	}
	if w.reg.Count(KindAlienLaser) != 0 {
		t.Error("alien laser survived hitting the ship")
	}
}

func TestPlanetStrikeByAsteroid(t *testing.T) {
	w := newTestWorld(t, quietConfig())
	w.score = 200
	rock := &Asteroid{Body: Body{Pos: core.V3(0, 0, 15)}, Health: 1, Damage: 10}
	spawnNow(w, rock)

	runTick(w)
	if !rock.Removed() {
		t.Fatal("asteroid survived reaching the planet")
	}
	if w.Score() != 150 {
		t.Errorf("Score() = %d, want 150", w.Score())
	}
	if w.ship.Health != 90 {
		t.Errorf("ship Health = %d, want 90", w.ship.Health)
	}
	sys := w.planets.(*SolarSystem)
	if sys.Hits() != 1 {
		t.Errorf("planet Hits() = %d, want 1", sys.Hits())
	}

	var damaged *PlanetDamaged
	for _, ev := range w.events.Drain() {
		if pd, ok := ev.(PlanetDamaged); ok {
			damaged = &pd
		}
	}
	if damaged == nil || damaged.Planet != "Earth" || damaged.Hits != 1 {
		t.Errorf("PlanetDamaged = %+v", damaged)
	}
}

func TestPlanetStrikeByAlienLaser(t *testing.T) {
	w := newTestWorld(t, quietConfig())
	w.score = 200
	shot := &Laser{Body: Body{Pos: core.V3(0, 0, 10), Lifetime: 40}, Owner: OwnerAlien, Damage: 5}
	spawnNow(w, shot)

	runTick(w)
	if !shot.Removed() {
		t.Fatal("alien laser survived reaching the planet")
	}
	if w.Score() != 200 {
		t.Errorf("Score() = %d, want 200", w.Score())
	}
	if w.ship.Health != 90 {
		t.Errorf("ship Health = %d, want 90", w.ship.Health)
	}
	if countEffect(w, EffectExplosion) != 0 {
		t.Error("laser strike exploded")
	}
}

func TestPlanetStrikeEndsGame(t *testing.T) {
	w := newTestWorld(t, quietConfig())
	w.ship.Health = 10
	rock := &Asteroid{Body: Body{Pos: core.V3(0, 0, 10)}, Health: 1, Damage: 10}
	spawnNow(w, rock)

	if !runTick(w) {
		t.Fatal("Resolve did not report destruction")
	}
	if w.ship.Health != 0 {
		t.Errorf("ship Health = %d, want 0", w.ship.Health)
	}
}

func TestContactStopsResolveOnDeath(t *testing.T) {
	w := newTestWorld(t, quietConfig())
	w.ship.Health = 5
	a := &Asteroid{Body: Body{Pos: w.ship.Pos}, Health: 1, Damage: 10}
	b := &Asteroid{Body: Body{Pos: w.ship.Pos}, Health: 1, Damage: 10}
	spawnNow(w, a, b)

	if !runTick(w) {
		t.Fatal("ship survived contact")
	}
	if a.Removed() == b.Removed() {
		t.Errorf("a removed=%v b removed=%v, want only the first visited", a.Removed(), b.Removed())
	}
	if !b.Removed() {
		t.Error("highest index was not resolved first")
	}
}

func TestPickupCollection(t *testing.T) {
	tests := []struct {
		name   string
		health int
		want   int
	}{
		{"partial", 50, 75},
		{"capped", 90, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, quietConfig())
			w.ship.Health = tt.health
			h := &HealthPickup{Body: Body{Pos: w.ship.Pos.Add(core.V3(2, 0, 0))}, Heal: 25, Scale: 1}
			spawnNow(w, h)

			runTick(w)
			if w.ship.Health != tt.want {
				t.Errorf("Health = %d, want %d", w.ship.Health, tt.want)
			}
			if !h.Removed() {
				t.Error("pickup not consumed")
			}
			if countEffect(w, EffectHeal) != 1 {
				t.Error("missing heal burst")
			}
			events := w.events.Drain()
			if !hasCue(events, CueHeal) {
				t.Error("missing heal cue")
			}
			if !slices.Contains(texts(events), "+25 HP") {
				t.Errorf("floating texts %v, want +25 HP", texts(events))
			}
		})
	}
}

func TestPickupOutOfReach(t *testing.T) {
	w := newTestWorld(t, quietConfig())
	w.ship.Health = 50
	h := &HealthPickup{Body: Body{Pos: w.ship.Pos.Add(core.V3(10, 0, 0))}, Heal: 25, Scale: 1}
	spawnNow(w, h)

	runTick(w)
	if h.Removed() || w.ship.Health != 50 {
		t.Errorf("pickup at 10 units collected: health %d", w.ship.Health)
	}
}
