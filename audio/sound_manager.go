// Package audio synthesizes the alarm played when a countdown reaches zero.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	chimeRepeats = 3
	chimeGap     = 250 * time.Millisecond
)

// SoundManager owns the speaker and plays the finish alarm
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager; call Initialize before use
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Ring plays the alarm: a few bell strikes separated by short silences.
// No-op when the speaker is not initialized.
func (sm *SoundManager) Ring() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(alarmSequence(sampleRate))
	speaker.Unlock()
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// alarmSequence builds the complete alarm streamer
func alarmSequence(sr beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, 2*chimeRepeats)
	for i := 0; i < chimeRepeats; i++ {
		parts = append(parts, NewChimeGenerator(sr, 880, 600*time.Millisecond))
		parts = append(parts, beep.Silence(sr.N(chimeGap)))
	}
	return beep.Seq(parts...)
}
