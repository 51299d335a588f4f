package audio

import (
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/stepclimb/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioCueSampleRate)
)

// SoundManager plays the climb cues through a single speaker mixer
// Every Play call is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	enabled     bool
	volume      float64
	initialized bool
	muted       bool
}

// NewSoundManager creates a manager; a disabled manager never touches the speaker
func NewSoundManager(enabled bool, volume float64) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		enabled: enabled,
		volume:  volume,
	}
}

// Initialize sets up the speaker, safe to call more than once
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioCueBuffer)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything queued
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

// Active reports whether cues reach the speaker
func (sm *SoundManager) Active() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports the mute flag
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayStep plays the short click for one climbed step
func (sm *SoundManager) PlayStep() {
	sm.play("step", func() (beep.Streamer, error) {
		return StepCue(sm.volume)
	})
}

// PlayFinale plays the arpeggio for reaching the top
func (sm *SoundManager) PlayFinale() {
	sm.play("finale", func() (beep.Streamer, error) {
		return FinaleCue(sm.volume)
	})
}

func (sm *SoundManager) play(name string, build func() (beep.Streamer, error)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s, err := build()
	if err != nil {
		log.Printf("audio: %s cue: %v", name, err)
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// StepCue is a short sine click with a linear fade out
func StepCue(volume float64) (beep.Streamer, error) {
	return tone(parameter.StepToneHz, sampleRate.N(parameter.StepToneDuration), volume)
}

// FinaleCue is the rising arpeggio played once on the top step
func FinaleCue(volume float64) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(parameter.FinaleTonesHz))
	for _, hz := range parameter.FinaleTonesHz {
		s, err := tone(hz, sampleRate.N(parameter.FinaleToneDuration), volume)
		if err != nil {
			return nil, err
		}
		notes = append(notes, s)
	}
	return beep.Seq(notes...), nil
}

func tone(hz float64, samples int, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, hz)
	if err != nil {
		return nil, fmt.Errorf("sine %vHz: %w", hz, err)
	}
	faded := &FadeOut{Streamer: beep.Take(samples, sine), total: samples}
	return &effects.Gain{Streamer: faded, Gain: volume - 1}, nil
}

// FadeOut scales a finite streamer linearly from full level to silence over total samples
type FadeOut struct {
	Streamer beep.Streamer
	total    int
	pos      int
}

func (f *FadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		env := 1.0
		if f.total > 0 {
			env = math.Max(0, 1-float64(f.pos)/float64(f.total))
		}
		samples[i][0] *= env
		samples[i][1] *= env
		f.pos++
	}
	return n, ok
}

func (f *FadeOut) Err() error {
	return f.Streamer.Err()
}
