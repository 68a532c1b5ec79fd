package defense

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/planet-defense/internal/logging"
)

// Presentation timings in ticks.
const (
	PopupTicks       = 60
	LevelBannerTicks = 90
)

// Popup is a floating text with its remaining display time.
type Popup struct {
	FloatingText
	TTL int
}

// ActiveFlash is a flash with its remaining display time.
type ActiveFlash struct {
	Flash
	TTL int
}

// Presenter turns simulation events into sink calls and tracks the
// timed overlays the renderer draws. Sink failures never reach the
// simulation.
type Presenter struct {
	ui    UISink
	audio AudioSink
	log   *log.Logger

	popups  []Popup
	flashes []ActiveFlash
	banner  Banner
	stats   Stats
	history []DifficultyChanged
}

// NewPresenter creates a presenter. Nil sinks are replaced by no-ops.
func NewPresenter(ui UISink, audio AudioSink, logger *log.Logger) *Presenter {
	if ui == nil {
		ui = nopUI{}
	}
	if audio == nil {
		audio = nopAudio{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Presenter{ui: ui, audio: audio, log: logger}
}

// SetUI replaces the UI sink.
func (p *Presenter) SetUI(ui UISink) {
	if ui == nil {
		ui = nopUI{}
	}
	p.ui = ui
}

// SetAudio replaces the audio sink.
func (p *Presenter) SetAudio(a AudioSink) {
	if a == nil {
		a = nopAudio{}
	}
	p.audio = a
}

// Present ages the overlays by one tick, then dispatches events and the
// current stats.
func (p *Presenter) Present(events []Event, stats Stats) {
	p.age()
	for _, ev := range events {
		p.dispatch(ev)
	}
	p.stats = stats
	p.guard("stats", func() { p.ui.ShowStats(stats) })
}

func (p *Presenter) dispatch(ev Event) {
	switch e := ev.(type) {
	case FloatingText:
		p.popups = append(p.popups, Popup{FloatingText: e, TTL: PopupTicks})
		p.guard("text", func() { p.ui.ShowText(e) })
	case Flash:
		p.flashes = append(p.flashes, ActiveFlash{Flash: e, TTL: e.Ticks})
		p.guard("flash", func() { p.ui.ShowFlash(e) })
	case Banner:
		p.banner = e
		p.guard("banner", func() { p.ui.ShowBanner(e) })
	case CueEvent:
		p.play(e.Cue)
	case DifficultyChanged:
		p.history = append(p.history, e)
		p.log.Debug("level up", "from", e.From, "to", e.To, "tick", e.Tick)
		b := Banner{Text: fmt.Sprintf("LEVEL %d", e.To), Ticks: LevelBannerTicks}
		// A mission banner still on screen keeps its place.
		if _, active := p.Banner(); !active {
			p.banner = b
		}
		p.guard("banner", func() { p.ui.ShowBanner(b) })
	case PlanetDamaged:
		p.log.Debug("planet hit", "planet", e.Planet, "hits", e.Hits)
	case ShipDamaged:
		p.log.Debug("ship damaged", "amount", e.Amount, "health", e.Health)
	}
}

func (p *Presenter) play(c Cue) {
	p.guard("audio", func() {
		if err := p.audio.Play(c); err != nil {
			p.log.Warn("audio cue failed", "cue", c, "error", err)
		}
	})
}

// guard runs a sink call, logging and swallowing any panic.
func (p *Presenter) guard(what string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Warn("presentation sink panicked", "sink", what, "panic", r)
		}
	}()
	fn()
}

func (p *Presenter) age() {
	popups := p.popups[:0]
	for _, pp := range p.popups {
		pp.TTL--
		if pp.TTL > 0 {
			popups = append(popups, pp)
		}
	}
	p.popups = popups

	flashes := p.flashes[:0]
	for _, f := range p.flashes {
		f.TTL--
		if f.TTL > 0 {
			flashes = append(flashes, f)
		}
	}
	p.flashes = flashes

	if p.banner.Ticks > 0 {
		p.banner.Ticks--
	}
}

// Popups returns the floating texts still on screen.
func (p *Presenter) Popups() []Popup { return p.popups }

// Flashes returns the flashes still lit.
func (p *Presenter) Flashes() []ActiveFlash { return p.flashes }

// Banner returns the active banner, if any.
func (p *Presenter) Banner() (Banner, bool) {
	return p.banner, p.banner.Ticks > 0
}

// Stats returns the last published HUD values.
func (p *Presenter) Stats() Stats { return p.stats }

// LevelHistory returns the level-up events seen so far.
func (p *Presenter) LevelHistory() []DifficultyChanged { return p.history }

// Reset drops every overlay.
func (p *Presenter) Reset() {
	p.popups = nil
	p.flashes = nil
	p.banner = Banner{}
	p.history = nil
	p.stats = Stats{}
}
