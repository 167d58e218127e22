package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/not-rogue/engine"
)

// DefaultSampleRate is used when Config.SampleRate is zero
const DefaultSampleRate = beep.SampleRate(48000)

// Config for NewSoundManager
type Config struct {
	Volume     float64
	SampleRate beep.SampleRate
	Logger     logrus.FieldLogger
}

// SoundManager mixes effects onto the speaker. Every method is safe before
// Initialize and after Cleanup, where playback is a no-op
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	log         logrus.FieldLogger
	initialized bool
}

// NewSoundManager creates an uninitialized manager
func NewSoundManager(cfg Config) *SoundManager {
	rate := cfg.SampleRate
	if rate == 0 {
		rate = DefaultSampleRate
	}
	log := cfg.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		rate:   rate,
		volume: cfg.Volume,
		log:    log.WithField("component", "audio"),
	}
}

// Initialize opens the speaker. Calling it again is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.WithField("sample_rate", int(sm.rate)).Info("audio initialized")
	return nil
}

// Cleanup drops queued effects and stops playback
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// Play queues sound on the mixer
func (sm *SoundManager) Play(sound Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := NewEffect(sound, sm.rate, sm.volume)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Active returns the number of effects still playing
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}

// EventTypes returns the events that trigger sounds
func (sm *SoundManager) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventGameStarted,
		engine.EventGameEnded,
		engine.EventCombat,
		engine.EventEnemyKilled,
		engine.EventEnemySpawned,
	}
}

// HandleEvent plays the sound mapped to ev
func (sm *SoundManager) HandleEvent(ev engine.GameEvent) {
	if sound := SoundFor(ev); sound != SoundNone {
		sm.Play(sound)
	}
}
