package parameter

import "time"

// Audio cues
const (
	AudioCueSampleRate = 44100
	// AudioCueBuffer is the speaker buffer length
	AudioCueBuffer = 100 * time.Millisecond

	AudioDefaultVolume = 0.6

	StepToneHz       = 660.0
	StepToneDuration = 40 * time.Millisecond

	// FinaleToneDuration is the length of each arpeggio note
	FinaleToneDuration = 150 * time.Millisecond
)

// FinaleTonesHz play in sequence when the top step is reached
var FinaleTonesHz = []float64{523.25, 659.25, 783.99, 1046.50}
