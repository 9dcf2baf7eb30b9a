// Package audio plays short synthesized effects for game events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

const sampleRate = beep.SampleRate(48000)

const defaultVolume = 0.35

// SoundManager mixes one-shot effects into a single speaker stream.
// All methods are no-ops until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a silent sound manager.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: defaultVolume,
	}
}

// SetVolume sets the linear volume of effects played from now on.
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = core.ClampF(v, 0, 1)
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops every playing effect.
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

// Handle plays the effect of each event produced by a tick.
func (sm *SoundManager) Handle(events []core.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	for _, ev := range events {
		s := Effect(ev, sm.volume)
		if s == nil {
			continue
		}
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
	}
}

// Effect returns the streamer for an event, or nil when the event is silent.
func Effect(ev core.Event, vol float64) beep.Streamer {
	switch ev {
	case core.EventFired:
		return sequence(sampleRate, vol*0.6,
			note{freq: 1320, dur: 40 * time.Millisecond, wave: WaveSquare},
			note{freq: 990, dur: 30 * time.Millisecond, wave: WaveSquare},
		)
	case core.EventAlienDestroyed:
		return sequence(sampleRate, vol,
			note{dur: 90 * time.Millisecond, wave: WaveNoise},
		)
	case core.EventShipHit:
		return sequence(sampleRate, vol,
			note{freq: 110, dur: 250 * time.Millisecond, wave: WaveSaw},
			note{dur: 200 * time.Millisecond, wave: WaveNoise},
		)
	case core.EventLevelUp:
		return sequence(sampleRate, vol*0.8,
			note{freq: 523.25, dur: 80 * time.Millisecond, wave: WaveSquare},
			note{freq: 659.25, dur: 80 * time.Millisecond, wave: WaveSquare},
			note{freq: 783.99, dur: 140 * time.Millisecond, wave: WaveSquare},
		)
	case core.EventGameOver:
		return sequence(sampleRate, vol,
			note{freq: 392, dur: 180 * time.Millisecond, wave: WaveSine},
			note{freq: 311.13, dur: 180 * time.Millisecond, wave: WaveSine},
			note{freq: 196, dur: 400 * time.Millisecond, wave: WaveSine},
		)
	case core.EventGameStarted:
		return sequence(sampleRate, vol*0.8,
			note{freq: 659.25, dur: 70 * time.Millisecond, wave: WaveSine},
			note{freq: 987.77, dur: 110 * time.Millisecond, wave: WaveSine},
		)
	default:
		return nil
	}
}
