package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/planet-defense/internal/games/defense"
)

// Cue lengths.
const (
	explosionLength = 420 * time.Millisecond
	laserHitLength  = 70 * time.Millisecond
	healNoteLength  = 80 * time.Millisecond
	levelUpLength   = 260 * time.Millisecond
)

// CueStreamer builds the procedural sound for a cue at the given volume.
// It returns nil for cues without a sound.
func CueStreamer(c defense.Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case defense.CueExplosion:
		// Noise burst over a falling rumble.
		noise := Envelope(Tone(1, explosionLength, WaveNoise, rate), explosionLength, 5*time.Millisecond, 350*time.Millisecond, rate)
		rumble := Envelope(Glide(90, 40, explosionLength, WaveSaw, rate), explosionLength, 10*time.Millisecond, 300*time.Millisecond, rate)
		s = beep.Mix(gain(noise, 0.6), gain(rumble, 0.4))
	case defense.CueLaserHit:
		s = note(660, laserHitLength, WaveSquare, rate)
	case defense.CueHeal:
		// Rising C major arpeggio.
		s = beep.Seq(
			note(523.25, healNoteLength, WaveSine, rate),
			note(659.25, healNoteLength, WaveSine, rate),
			note(783.99, healNoteLength, WaveSine, rate),
		)
	case defense.CueDifficultyUp:
		s = Envelope(Glide(440, 880, levelUpLength, WaveSquare, rate), levelUpLength, 10*time.Millisecond, 80*time.Millisecond, rate)
	default:
		return nil
	}
	return gain(s, volume)
}
