package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// ChirpGenerator is a sine sweep from one frequency to another with a linear
// fade-out. It ends after its duration.
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
	volume   float64
}

// NewChirpGenerator creates a sweep lasting length samples.
func NewChirpGenerator(sr beep.SampleRate, from, to float64, length int, volume float64) *ChirpGenerator {
	return &ChirpGenerator{
		sr:     sr,
		from:   from,
		to:     to,
		length: length,
		volume: volume,
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.length {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.length {
			return i, true
		}
		progress := float64(g.pos) / float64(g.length)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := math.Sin(g.phase) * g.volume * (1 - progress)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}
