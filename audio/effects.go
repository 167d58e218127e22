package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Effect timings
const (
	hitDuration     = 60 * time.Millisecond
	hitAttack       = 2 * time.Millisecond
	hitRelease      = 40 * time.Millisecond
	noteDuration    = 90 * time.Millisecond
	noteAttack      = 5 * time.Millisecond
	noteRelease     = 60 * time.Millisecond
	spawnDuration   = 120 * time.Millisecond
	spawnAttack     = 40 * time.Millisecond
	spawnRelease    = 70 * time.Millisecond
	deathNoteLength = 180 * time.Millisecond
)

func note(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// NewEffect builds the streamer for sound at volume in [0, 1]; nil for SoundNone
func NewEffect(sound Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer

	switch sound {
	case SoundStart:
		// A4 then E5
		s = beep.Seq(
			note(440, noteDuration, noteAttack, noteRelease, WaveSine, rate),
			note(659.25, noteDuration, noteAttack, noteRelease, WaveSine, rate),
		)
	case SoundHit:
		s = note(220, hitDuration, hitAttack, hitRelease, WaveSaw, rate)
	case SoundKill:
		// B5 then E6
		s = beep.Seq(
			note(987.77, noteDuration, noteAttack, noteRelease, WaveSquare, rate),
			note(1318.51, noteDuration, noteAttack, noteRelease, WaveSquare, rate),
		)
	case SoundDeath:
		s = beep.Seq(
			note(392, deathNoteLength, noteAttack, noteRelease, WaveSine, rate),
			note(311.13, deathNoteLength, noteAttack, noteRelease, WaveSine, rate),
			note(196, 2*deathNoteLength, noteAttack, deathNoteLength, WaveSine, rate),
		)
	case SoundSpawn:
		s = note(0, spawnDuration, spawnAttack, spawnRelease, WaveNoise, rate)
	default:
		return nil
	}

	return newVolume(s, volume)
}
