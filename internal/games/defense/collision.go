package defense

import (
	"strconv"

	"github.com/vovakirdan/planet-defense/internal/core"
)

// Resolve runs the three collision passes and reports whether the ship was
// destroyed. Passes walk the registry from the highest index down; removed
// entities and entities at zero health are skipped by every later check.
func (w *World) Resolve() bool {
	w.resolveLasers()
	if w.resolvePlayer() {
		return true
	}
	return w.resolvePlanet()
}

// resolveLasers checks player lasers against asteroids and aliens. A laser
// hits at most one target.
func (w *World) resolveLasers() {
	coll := w.cfg.Collision

	w.reg.Each(func(e Entity) bool {
		laser, ok := e.(*Laser)
		if !ok || laser.Owner != OwnerPlayer {
			return true
		}

		w.reg.Each(func(t Entity) bool {
			var hp *int
			radius := coll.HitRadius
			switch v := t.(type) {
			case *Asteroid:
				hp = &v.Health
				radius = coll.AsteroidHitRadius
			case *AlienShip:
				hp = &v.Health
			default:
				return true
			}
			if *hp <= 0 || !core.Within(laser.Pos, t.Position(), radius) {
				return true
			}

			*hp -= laser.Damage
			w.reg.Remove(laser)
			if *hp > 0 {
				w.cue(CueLaserHit)
				w.events.Emit(Flash{Pos: t.Position(), Color: colorImpact, Intensity: 0.5, Ticks: max(1, w.cfg.Effects.FlashTicks/2)})
			} else {
				w.destroy(t)
			}
			return false
		})
		return true
	})
}

// destroy credits a laser kill. It runs once per entity because the
// registry reports only the first removal.
func (w *World) destroy(t Entity) {
	if !w.reg.Remove(t) {
		return
	}
	w.defeated++

	switch v := t.(type) {
	case *Asteroid:
		w.credit(w.cfg.Scoring.Asteroid, v.Pos, colorScoreAsteroid)
		w.explode(v.Pos, v.Color)
	case *AlienShip:
		w.credit(w.cfg.Scoring.Alien, v.Pos, colorScoreAlien)
		w.explode(v.Pos, core.RGB(w.cfg.Enemies.Alien.Color))
	}
}

// resolvePlayer applies contact damage from hostiles and collects pickups.
func (w *World) resolvePlayer() bool {
	coll := w.cfg.Collision
	destroyed := false

	w.reg.Each(func(e Entity) bool {
		if pickup, ok := e.(*HealthPickup); ok {
			if core.Within(w.ship.Pos, pickup.Pos, coll.PickupRadius) {
				w.collect(pickup)
			}
			return true
		}
		if !hostile(e) {
			return true
		}
		if hp, ok := health(e); ok && hp <= 0 {
			return true
		}
		if !core.Within(w.ship.Pos, e.Position(), coll.PlayerRadius) {
			return true
		}

		var damage, penalty int
		switch v := e.(type) {
		case *Asteroid:
			damage, penalty = v.Damage, w.cfg.Scoring.ContactPenalty
			v.Health = -1
			w.explode(v.Pos, v.Color)
		case *AlienShip:
			damage, penalty = v.Damage, w.cfg.Scoring.ContactPenalty
			v.Health = -1
			w.explode(v.Pos, core.RGB(w.cfg.Enemies.Alien.Color))
		case *Laser:
			damage, penalty = v.Damage, w.cfg.Scoring.AlienLaserPenalty
		}

		w.penalize(penalty, e.Position())
		w.reg.Remove(e)
		if w.damageShip(damage) {
			w.log.Info("ship destroyed by contact", "kind", e.Kind(), "tick", w.tick)
			destroyed = true
			return false
		}
		return true
	})
	return destroyed
}

func (w *World) collect(h *HealthPickup) {
	if !w.reg.Remove(h) {
		return
	}
	healed := w.ship.Heal(h.Heal)
	w.cue(CueHeal)
	w.events.Emit(FloatingText{Pos: h.Pos, Text: "+" + strconv.Itoa(h.Heal) + " HP", Color: colorHeal})
	w.healBurst(h.Pos)
	w.log.Debug("pickup collected", "heal", h.Heal, "restored", healed, "health", w.ship.Health)
}

// resolvePlanet removes hostiles that reach the planet surface. Every
// strike costs the ship a flat penalty; asteroids also cost score.
func (w *World) resolvePlanet() bool {
	p, ok := w.planet()
	if !ok {
		return false
	}
	radius := p.Radius + w.cfg.Collision.PlanetMargin
	destroyed := false

	w.reg.Each(func(e Entity) bool {
		if !hostile(e) {
			return true
		}
		if hp, ok := health(e); ok && hp <= 0 {
			return true
		}
		if !core.Within(e.Position(), p.Pos, radius) {
			return true
		}

		if a, ok := e.(*Asteroid); ok {
			w.penalize(w.cfg.Scoring.PlanetPenalty, a.Pos)
			w.planets.DamageCurrentPlanet()
			w.events.Emit(PlanetDamaged{Planet: p.Name, Hits: w.planetHits()})
			w.explode(a.Pos, a.Color)
		}
		w.reg.Remove(e)

		if w.damageShip(w.cfg.Collision.PlanetShipDamage) {
			w.log.Info("ship destroyed defending planet", "planet", p.Name, "tick", w.tick)
			destroyed = true
			return false
		}
		return true
	})
	return destroyed
}

func (w *World) planetHits() int {
	if h, ok := w.planets.(interface{ Hits() int }); ok {
		return h.Hits()
	}
	return 0
}
