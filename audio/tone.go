package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// attackSeconds is the linear fade-in applied to every tone
const attackSeconds = 0.005

// ToneGenerator streams an endless sine tone, optionally with harmonics
// Bound it with beep.Take
type ToneGenerator struct {
	sr       beep.SampleRate
	freq     float64
	harmonic bool
	gain     float64
	pos      int
}

// NewToneGenerator creates a tone generator at freq Hz
func NewToneGenerator(sr beep.SampleRate, freq float64, harmonic bool, gain float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq, harmonic: harmonic, gain: gain}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := math.Sin(2 * math.Pi * g.freq * t)
		if g.harmonic {
			sample = 0.6*sample +
				0.3*math.Sin(2*math.Pi*g.freq*2*t) +
				0.15*math.Sin(2*math.Pi*g.freq*3*t)
		}

		envelope := math.Min(t/attackSeconds, 1.0)
		sample *= envelope * g.gain

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
