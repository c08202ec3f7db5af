package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ChimeGenerator generates a bell strike: a fundamental plus an inharmonic
// partial under an exponential decay
type ChimeGenerator struct {
	sr      beep.SampleRate
	freq    float64
	pos     int
	samples int
}

// NewChimeGenerator creates a chime of the given pitch and length
func NewChimeGenerator(sr beep.SampleRate, freq float64, length time.Duration) *ChimeGenerator {
	return &ChimeGenerator{
		sr:      sr,
		freq:    freq,
		samples: sr.N(length),
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}

	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}

		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-6 * t)

		// Short attack to avoid a click
		if attack := t / 0.005; attack < 1 {
			envelope *= attack
		}

		sample := 0.7*math.Sin(2*math.Pi*g.freq*t) + 0.3*math.Sin(2*math.Pi*g.freq*2.76*t)
		sample *= 0.25 * envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
