package defense

import "math"

// Snapshot is a flat copy of the simulation state for determinism checks.
// Floats are stored as their IEEE-754 bits.
type Snapshot struct {
	Tick     uint64
	Score    int
	Defeated int
	Level    int
	Health   int
	Cooldown int

	ShipData []uint64 // X, Y, Z, VX, VY, VZ, Yaw

	PlanetIndex  int
	Phase        int
	Intermission int

	// Each entity is 6 values: Kind, ID, X, Y, Z, Extra (health or lifetime)
	EntityCount int
	EntityData  []uint64

	RNGState uint64
}

// Snapshot returns the current state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	ship := w.ship

	entities := w.reg.Entities()
	data := make([]uint64, 0, len(entities)*6)
	for _, e := range entities {
		b := e.body()
		extra := b.Lifetime
		if hp, ok := health(e); ok {
			extra = hp
		}
		data = append(data,
			uint64(e.Kind()), //#nosec G115 -- kind is a small enum
			uint64(b.ID),     //#nosec G115 -- ids are positive
			math.Float64bits(b.Pos.X),
			math.Float64bits(b.Pos.Y),
			math.Float64bits(b.Pos.Z),
			uint64(extra), //#nosec G115 -- hash computation
		)
	}

	return Snapshot{
		Tick:     uint64(w.tick), //#nosec G115 -- tick count is always positive
		Score:    w.score,
		Defeated: w.defeated,
		Level:    g.spawner.Level(),
		Health:   ship.Health,
		Cooldown: ship.Cooldown(),
		ShipData: []uint64{
			math.Float64bits(ship.Pos.X),
			math.Float64bits(ship.Pos.Y),
			math.Float64bits(ship.Pos.Z),
			math.Float64bits(ship.Vel.X),
			math.Float64bits(ship.Vel.Y),
			math.Float64bits(ship.Vel.Z),
			math.Float64bits(ship.Yaw),
		},
		PlanetIndex:  g.system.Index(),
		Phase:        int(g.phase),
		Intermission: g.intermission,
		EntityCount:  len(entities),
		EntityData:   data,
		RNGState:     w.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Defeated)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Cooldown)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlanetIndex)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Intermission) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EntityCount)  //#nosec G115 -- hash computation

	for _, v := range snap.ShipData {
		h = h*31 + v
	}

	for _, v := range snap.EntityData {
		h = h*31 + v
	}

	h = h*31 + snap.RNGState

	return h
}
