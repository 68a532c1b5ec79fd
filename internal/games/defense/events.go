package defense

import "github.com/vovakirdan/planet-defense/internal/core"

// Cue names a sound effect.
type Cue int

const (
	CueExplosion Cue = iota
	CueLaserHit
	CueHeal
	CueDifficultyUp
)

func (c Cue) String() string {
	switch c {
	case CueExplosion:
		return "explosion"
	case CueLaserHit:
		return "laser-hit"
	case CueHeal:
		return "heal"
	case CueDifficultyUp:
		return "difficulty-up"
	default:
		return "unknown"
	}
}

// Event is an outbound notification from the simulation. The simulation
// never waits on events; a Presenter drains them after each tick.
type Event interface {
	event()
}

// FloatingText is a transient label anchored at a world position.
type FloatingText struct {
	Pos   core.Vec3
	Text  string
	Color core.RGB
}

// CueEvent requests a sound effect.
type CueEvent struct {
	Cue Cue
}

// DifficultyChanged fires when the score crosses into a new level.
type DifficultyChanged struct {
	Tick int
	From int
	To   int
}

// PlanetDamaged fires when an asteroid strikes the current planet.
type PlanetDamaged struct {
	Planet string
	Hits   int
}

// Flash is a short burst of light at a world position.
type Flash struct {
	Pos       core.Vec3
	Color     core.RGB
	Intensity float64
	Ticks     int
}

// Banner is a centered message shown for a number of ticks.
type Banner struct {
	Text  string
	Ticks int
}

// ShipDamaged fires whenever the ship loses health.
type ShipDamaged struct {
	Amount int
	Health int
}

func (FloatingText) event() {}
func (CueEvent) event() {}
func (DifficultyChanged) event() {}
func (PlanetDamaged) event() {}
func (Flash) event() {}
func (Banner) event() {}
func (ShipDamaged) event() {}

// Stats are the HUD values, published once per tick.
type Stats struct {
	Score     int
	Health    int
	MaxHealth int
	Level     int
	Defeated  int
	Hostiles  int // asteroids and aliens alive
	Planet    string
}

// EventQueue buffers events emitted during a tick.
type EventQueue struct {
	events []Event
}

// Emit appends an event.
func (q *EventQueue) Emit(e Event) {
	q.events = append(q.events, e)
}

// Drain returns the buffered events in emission order and empties the queue.
func (q *EventQueue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of buffered events.
func (q *EventQueue) Len() int {
	return len(q.events)
}
