package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/not-rogue/rng"
)

// WaveType selects an oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// waveform maps a phase in [0, 1) to a sample in [-1, 1]
type waveform func(phase float64) float64

func sine(p float64) float64 { return math.Sin(2 * math.Pi * p) }

func square(p float64) float64 {
	if p < 0.5 {
		return 1
	}
	return -1
}

func saw(p float64) float64 { return 2*p - 1 }

// shape returns the waveform for w; noise ignores phase and draws from src
func (w WaveType) shape(src *rng.FastRand) waveform {
	switch w {
	case WaveSquare:
		return square
	case WaveSaw:
		return saw
	case WaveNoise:
		return func(float64) float64 {
			return float64(src.NextU32())/math.MaxUint32*2 - 1
		}
	}
	return sine
}

// NewOscillator streams a mono wave of freq Hz for duration, duplicated on both channels.
// Noise is seeded from freq so an effect sounds the same every time.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	shape := wave.shape(rng.NewFastRand(uint64(freq*1000) + 1))
	step := freq / float64(rate)
	remaining := rate.N(duration)
	phase := 0.0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if remaining <= 0 {
			return 0, false
		}
		n := min(len(samples), remaining)
		for i := range samples[:n] {
			v := shape(phase)
			samples[i] = [2]float64{v, v}
			_, phase = math.Modf(phase + step)
		}
		remaining -= n
		return n, true
	})
}

// envelope scales a stream by a linear attack, hold, release gain curve and
// cuts it at total samples
type envelope struct {
	src     beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

// NewEnvelope shapes s over duration with the given attack and release ramps
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		src:     s,
		total:   rate.N(duration),
		attack:  rate.N(attack),
		release: rate.N(release),
	}
}

// gain returns the level at sample pos
func (e *envelope) gain(pos int) float64 {
	switch {
	case e.attack > 0 && pos < e.attack:
		return float64(pos) / float64(e.attack)
	case e.release > 0 && pos >= e.total-e.release:
		return max(float64(e.total-pos)/float64(e.release), 0)
	}
	return 1
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	left := e.total - e.pos
	if left <= 0 {
		return 0, false
	}
	if len(samples) > left {
		samples = samples[:left]
	}

	n, ok := e.src.Stream(samples)
	for i := range samples[:n] {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.src.Err() }

// newVolume scales s linearly by vol in [0, 1]. effects.Volume is logarithmic,
// and log2(0) is -Inf, so zero and below mute instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
