package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/portfolio-term/constants"
)

// Output is the playback device behind a SoundManager
type Output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
	Close()
}

// speakerOutput plays through the beep speaker package
type speakerOutput struct{}

func (speakerOutput) Init(sr beep.SampleRate, bufferSize int) error { return speaker.Init(sr, bufferSize) }
func (speakerOutput) Play(s beep.Streamer)                          { speaker.Play(s) }
func (speakerOutput) Lock()                                         { speaker.Lock() }
func (speakerOutput) Unlock()                                       { speaker.Unlock() }
func (speakerOutput) Close()                                        { speaker.Close() }

// SoundManager mixes one-shot effects onto a single device stream
// Every method is safe on an uninitialized or silent manager
type SoundManager struct {
	mu     sync.Mutex
	cfg    Config
	output Output
	mixer  *beep.Mixer

	initialized bool
	silent      bool
	muted       atomic.Bool
}

// NewSoundManager creates a manager playing through the system speaker
func NewSoundManager(cfg Config) *SoundManager {
	return NewSoundManagerWithOutput(cfg, speakerOutput{})
}

// NewSoundManagerWithOutput creates a manager playing through out
func NewSoundManagerWithOutput(cfg Config, out Output) *SoundManager {
	return &SoundManager{
		cfg:    cfg,
		output: out,
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the output device
// Disabled config or a failing device leaves the manager silent; the device error is returned for logging
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	sm.initialized = true

	if !sm.cfg.Enabled {
		sm.silent = true
		return ErrAudioDisabled
	}

	sr := beep.SampleRate(sm.cfg.SampleRate)
	if err := sm.output.Init(sr, sr.N(constants.AudioBuffer)); err != nil {
		sm.silent = true
		return fmt.Errorf("audio device: %w", err)
	}

	sm.output.Play(sm.mixer)
	return nil
}

// Play mixes a fresh instance of s, false when nothing will sound
func (sm *SoundManager) Play(s SoundType) bool {
	if sm.muted.Load() {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.silent {
		return false
	}
	streamer := Effect(s, sm.cfg)
	if streamer == nil {
		return false
	}

	sm.output.Lock()
	sm.mixer.Add(streamer)
	sm.output.Unlock()
	return true
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			if !old {
				sm.clear()
			}
			return !old
		}
	}
}

// SetMuted sets mute, dropping queued sounds when muting
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
	if muted {
		sm.clear()
	}
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsSilent reports whether the manager has no working device
func (sm *SoundManager) IsSilent() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.silent
}

// Active returns the number of sounds still playing
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized || sm.silent {
		return 0
	}
	sm.output.Lock()
	defer sm.output.Unlock()
	return sm.mixer.Len()
}

func (sm *SoundManager) clear() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized || sm.silent {
		return
	}
	sm.output.Lock()
	sm.mixer.Clear()
	sm.output.Unlock()
}

// Cleanup stops all sounds and closes the device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if !sm.silent {
		sm.output.Lock()
		sm.mixer.Clear()
		sm.output.Unlock()
		sm.output.Close()
	}
	sm.initialized = false
	sm.silent = false
}
