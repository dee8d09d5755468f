// Package audio plays the optional sound cues of the connection sequence
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/darpan/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager mixes the cue streamers into a single speaker output
type SoundManager struct {
	mu          sync.Mutex
	sweep       *beep.Ctrl
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker, safe to call repeatedly
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and detaches the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.sweep != nil {
		sm.sweep.Paused = true
		sm.sweep = nil
	}

	// beep has no speaker close, clearing the mixer silences output
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Enabled reports whether the speaker is open
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayKey plays the short keystroke tick
func (sm *SoundManager) PlayKey() {
	sm.play(beep.Take(sampleRate.N(parameter.KeyClickDuration), NewClickGenerator(sampleRate, parameter.KeyClickFreq)))
}

// PlayError plays the mismatch buzz
func (sm *SoundManager) PlayError() {
	sm.play(beep.Take(sampleRate.N(parameter.ErrorBuzzDuration), NewBuzzGenerator(sampleRate, parameter.ErrorBuzzFreq)))
}

// PlayConnect plays the rising connect sweep, restarting it if one is already sounding
func (sm *SoundManager) PlayConnect() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if sm.sweep != nil {
		sm.sweep.Paused = true
	}
	gen := NewSweepGenerator(sampleRate, parameter.ConnectSweepFrom, parameter.ConnectSweepTo, parameter.ConnectSweepDuration)
	sm.sweep = &beep.Ctrl{Streamer: gen}
	sm.mixer.Add(sm.sweep)
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
