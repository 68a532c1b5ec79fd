package defense

import (
	"math"

	"github.com/vovakirdan/planet-defense/internal/core"
)

// Update advances every live entity by one tick and culls stragglers far
// from the current planet. Entities spawned during the pass (alien shots)
// wait in the registry's pending list until the next Flush.
func (w *World) Update() {
	p, hasPlanet := w.planet()
	cull := w.cfg.World.CullDistance

	w.reg.Each(func(e Entity) bool {
		w.updateEntity(e)
		if hasPlanet && !e.body().removed && core.DistSq(e.Position(), p.Pos) > cull*cull {
			w.log.Debug("culled entity", "id", e.body().ID, "kind", e.Kind())
			w.reg.Remove(e)
		}
		return true
	})
}

// updateEntity runs one entity's tick. A panic purges that entity only.
func (w *World) updateEntity(e Entity) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Debug("entity update failed; purging", "id", e.body().ID, "kind", e.Kind(), "panic", r)
			w.reg.Remove(e)
		}
	}()

	switch v := e.(type) {
	case *Particles:
		w.updateParticles(v)
	case *Asteroid:
		v.Pos = v.Pos.Add(v.Vel)
		v.Rotation = v.Rotation.Add(v.Spin)
	case *AlienShip:
		v.Pos = v.Pos.Add(v.Vel)
		w.updateAlien(v)
	case *Laser:
		v.Pos = v.Pos.Add(v.Vel)
		v.Lifetime--
		if v.Lifetime <= 0 {
			w.reg.Remove(v)
		}
	case *HealthPickup:
		v.Pos = v.Pos.Add(v.Vel)
		w.updatePickup(v)
	}

	if !e.Position().IsFinite() {
		w.log.Debug("non-finite position; purging", "id", e.body().ID, "kind", e.Kind())
		w.reg.Remove(e)
	}
}

func (w *World) updateParticles(p *Particles) {
	if len(p.Points) == 0 || len(p.Points) != len(p.Velocities) || p.InitialLifetime <= 0 {
		w.log.Debug("malformed particle system; purging", "id", p.ID, "effect", p.Effect)
		w.reg.Remove(p)
		return
	}

	fx := w.cfg.Effects
	for i := range p.Points {
		p.Points[i] = p.Points[i].Add(p.Velocities[i])
		switch p.Effect {
		case EffectExplosion:
			p.Velocities[i] = p.Velocities[i].Scale(fx.ExplosionGrowth)
		case EffectSmoke:
			v := p.Velocities[i].Scale(fx.SmokeDecay)
			v.Y += fx.SmokeDrift
			p.Velocities[i] = v
		case EffectHeal:
			p.Velocities[i] = p.Velocities[i].Scale(fx.HealDecay)
		}
	}

	p.Opacity = math.Max(0, p.Opacity-1/float64(p.InitialLifetime))
	p.Lifetime--
	if p.Lifetime <= 0 {
		w.reg.Remove(p)
	}
}

func (w *World) updateAlien(a *AlienShip) {
	a.Cooldown--
	if a.Cooldown <= 0 {
		w.fireAlienLaser(a)
		a.Cooldown = a.FireRate
	}
	if a.Vel.LenSq() > 0 {
		a.Yaw = a.Vel.Yaw()
	}
}

func (w *World) fireAlienLaser(a *AlienShip) {
	cfg := w.cfg.Enemies.Alien

	target := w.ship.Pos
	if !w.rng.Chance(cfg.PlayerAimChance) && a.Target == TargetPlanet {
		if p, ok := w.planet(); ok {
			target = p.Pos
		}
	}

	j := cfg.AimJitter
	dir := target.Sub(a.Pos).Normalize().Add(core.V3(w.rng.Range(-j, j), w.rng.Range(-j, j), w.rng.Range(-j, j)))
	w.reg.Spawn(&Laser{
		Body: Body{
			Pos:      a.Pos,
			Vel:      dir.WithLen(cfg.LaserSpeed),
			Lifetime: cfg.LaserLifetime,
		},
		Owner:  OwnerAlien,
		Damage: cfg.LaserDamage,
	})
}

func (w *World) updatePickup(h *HealthPickup) {
	cfg := w.cfg.Pickups
	top, bottom := h.BaseY+cfg.BounceHeight, h.BaseY-cfg.BounceHeight
	switch {
	case h.Pos.Y > top:
		h.Pos.Y = top
		h.Vel.Y = -math.Abs(h.Vel.Y)
	case h.Pos.Y < bottom:
		h.Pos.Y = bottom
		h.Vel.Y = math.Abs(h.Vel.Y)
	}
	h.Spin += cfg.SpinRate
	h.Phase += cfg.PulseRate
	h.Scale = 1 + 0.2*math.Sin(h.Phase)

	// Pickups spawned with no lifetime never expire.
	if h.Lifetime > 0 {
		h.Lifetime--
		if h.Lifetime == 0 {
			w.reg.Remove(h)
		}
	}
}
