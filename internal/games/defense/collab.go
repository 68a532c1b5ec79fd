package defense

// Scene mirrors entity lifecycles into a presentation layer. Add is called
// when an entity joins the live set and Remove when it is purged.
type Scene interface {
	Add(e Entity)
	Remove(e Entity)
}

// PlanetProvider owns the planets the ship defends.
type PlanetProvider interface {
	// CurrentPlanet returns the defended planet, or false when none is set.
	CurrentPlanet() (Planet, bool)
	CurrentDifficultyTier() int
	// DamageCurrentPlanet is cosmetic; it never changes gameplay.
	DamageCurrentPlanet()
	AdvanceToNextPlanet() bool
	ReturnToPreviousPlanet() bool
}

// UISink receives display values and transient overlays.
type UISink interface {
	ShowStats(s Stats)
	ShowText(t FloatingText)
	ShowBanner(b Banner)
	ShowFlash(f Flash)
}

// AudioSink plays cues. Errors are logged by the presenter and dropped.
type AudioSink interface {
	Play(c Cue) error
}

type nopScene struct{}

func (nopScene) Add(Entity) {}
func (nopScene) Remove(Entity) {}

type nopUI struct{}

func (nopUI) ShowStats(Stats) {}
func (nopUI) ShowText(FloatingText) {}
func (nopUI) ShowBanner(Banner) {}
func (nopUI) ShowFlash(Flash) {}

type nopAudio struct{}

func (nopAudio) Play(Cue) error { return nil }
