package defense

import "github.com/vovakirdan/planet-defense/internal/core"

// Planet is a defended body.
type Planet struct {
	Name   string
	Pos    core.Vec3
	Radius float64
	Tier   int // added to the score level when rolling enemy stats
	Color  core.RGB
}

// MissionPhase tracks which way the mission is travelling.
type MissionPhase int

const (
	PhaseOutbound MissionPhase = iota // Earth toward Neptune
	PhaseReturn                       // element collected, heading home
	PhaseComplete
)

func (p MissionPhase) String() string {
	switch p {
	case PhaseOutbound:
		return "outbound"
	case PhaseReturn:
		return "return"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// DefaultPlanets returns the mission route, innermost first.
func DefaultPlanets() []Planet {
	return []Planet{
		{Name: "Earth", Pos: core.V3(0, 0, 0), Radius: 20, Tier: 1, Color: 0x2277ff},
		{Name: "Mars", Pos: core.V3(400, 0, 0), Radius: 14, Tier: 2, Color: 0xdd4422},
		{Name: "Jupiter", Pos: core.V3(900, 0, 0), Radius: 40, Tier: 3, Color: 0xecbf8e},
		{Name: "Saturn", Pos: core.V3(1500, 0, 0), Radius: 35, Tier: 4, Color: 0xd6ba7b},
		{Name: "Uranus", Pos: core.V3(2100, 0, 0), Radius: 26, Tier: 5, Color: 0x97d8ec},
		{Name: "Neptune", Pos: core.V3(2700, 0, 0), Radius: 25, Tier: 6, Color: 0x4b70dd},
	}
}

// SolarSystem implements PlanetProvider over a fixed route of planets.
type SolarSystem struct {
	planets []Planet
	hits    []int
	index   int
}

// NewSolarSystem creates a solar system positioned at the first planet.
// With no planets it reports no current planet.
func NewSolarSystem(planets []Planet) *SolarSystem {
	return &SolarSystem{
		planets: planets,
		hits:    make([]int, len(planets)),
	}
}

// CurrentPlanet returns the planet being defended.
func (s *SolarSystem) CurrentPlanet() (Planet, bool) {
	if s.index < 0 || s.index >= len(s.planets) {
		return Planet{}, false
	}
	return s.planets[s.index], true
}

// CurrentDifficultyTier returns the current planet's tier, or 1.
func (s *SolarSystem) CurrentDifficultyTier() int {
	p, ok := s.CurrentPlanet()
	if !ok || p.Tier < 1 {
		return 1
	}
	return p.Tier
}

// DamageCurrentPlanet records a hit on the current planet.
func (s *SolarSystem) DamageCurrentPlanet() {
	if s.index >= 0 && s.index < len(s.hits) {
		s.hits[s.index]++
	}
}

// AdvanceToNextPlanet moves outward. It returns false at the last planet.
func (s *SolarSystem) AdvanceToNextPlanet() bool {
	if s.index+1 >= len(s.planets) {
		return false
	}
	s.index++
	return true
}

// ReturnToPreviousPlanet moves inward. It returns false at the first planet.
func (s *SolarSystem) ReturnToPreviousPlanet() bool {
	if s.index <= 0 {
		return false
	}
	s.index--
	return true
}

// Index returns the position of the current planet on the route.
func (s *SolarSystem) Index() int { return s.index }

// Planets returns the route.
func (s *SolarSystem) Planets() []Planet { return s.planets }

// Hits returns how many strikes the current planet has taken.
func (s *SolarSystem) Hits() int {
	if s.index < 0 || s.index >= len(s.hits) {
		return 0
	}
	return s.hits[s.index]
}

// AtOuterEdge reports whether the current planet is the last on the route.
func (s *SolarSystem) AtOuterEdge() bool {
	return len(s.planets) > 0 && s.index == len(s.planets)-1
}

// AtHome reports whether the current planet is the first on the route.
func (s *SolarSystem) AtHome() bool {
	return len(s.planets) > 0 && s.index == 0
}
