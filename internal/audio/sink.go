// Package audio plays the simulation's sound cues through the system
// speaker. Every cue is synthesized on demand; there are no assets.
package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/planet-defense/internal/games/defense"
	"github.com/vovakirdan/planet-defense/internal/logging"
)

// DefaultSampleRate is used when Options leaves the rate unset.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrNotStarted is returned by Play before Start succeeds.
var ErrNotStarted = errors.New("audio: speaker not started")

// Options configures a Speaker.
type Options struct {
	SampleRate beep.SampleRate
	Volume     float64 // 0 mutes, 1 is full scale
	Logger     *log.Logger
}

// Speaker is a defense.AudioSink backed by the beep speaker. All cues are
// mixed into one stream handed to the speaker goroutine.
type Speaker struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	volume  float64
	mixer   *beep.Mixer
	started bool
	log     *log.Logger
}

// NewSpeaker creates a speaker sink. Call Start before playing.
func NewSpeaker(opts Options) *Speaker {
	if opts.SampleRate <= 0 {
		opts.SampleRate = DefaultSampleRate
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return &Speaker{
		rate:   opts.SampleRate,
		volume: opts.Volume,
		mixer:  &beep.Mixer{},
		log:    opts.Logger,
	}
}

// Start initializes the output device. Calling it again is a no-op.
func (s *Speaker) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(s.mixer)
	s.started = true
	s.log.Debug("speaker started", "rate", int(s.rate))
	return nil
}

// Play queues the sound for c. Unknown cues are ignored.
func (s *Speaker) Play(c defense.Cue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return ErrNotStarted
	}
	st := CueStreamer(c, s.rate, s.volume)
	if st == nil {
		return nil
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
	return nil
}

// SetVolume changes the level used for cues queued afterwards.
func (s *Speaker) SetVolume(v float64) {
	s.mu.Lock()
	s.volume = v
	s.mu.Unlock()
}

// Close silences queued cues. The device itself stays open for the life of
// the process.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return nil
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	return nil
}

// Mute is a sink that drops every cue.
type Mute struct{}

// Play does nothing.
func (Mute) Play(defense.Cue) error { return nil }

// Open returns a started speaker, or Mute when muted or when no output
// device is available. The failure is logged, not returned.
func Open(muted bool, volume float64, logger *log.Logger) defense.AudioSink {
	if logger == nil {
		logger = logging.Discard()
	}
	if muted {
		return Mute{}
	}
	sp := NewSpeaker(Options{Volume: volume, Logger: logger})
	if err := sp.Start(); err != nil {
		logger.Warn("audio disabled", "error", err)
		return Mute{}
	}
	return sp
}
