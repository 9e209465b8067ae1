package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// tone is a decaying oscillator with an optional linear pitch sweep.
type tone struct {
	rate     beep.SampleRate
	wave     Wave
	from, to float64 // Hz
	decay    float64 // envelope exp(-t*decay)
	total    int
	pos      int
	phase    float64
	seed     uint32
}

// NewTone returns a finite streamer sweeping from one frequency to another.
func NewTone(rate beep.SampleRate, wave Wave, from, to float64, d time.Duration, decay float64) beep.Streamer {
	return &tone{
		rate:  rate,
		wave:  wave,
		from:  from,
		to:    to,
		decay: decay,
		total: rate.N(d),
		seed:  0x9e3779b9,
	}
}

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.rate)
		progress := float64(g.pos) / float64(g.total)
		freq := g.from + (g.to-g.from)*progress

		var v float64
		switch g.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * g.phase)
		case WaveSquare:
			v = 1
			if g.phase >= 0.5 {
				v = -1
			}
		case WaveNoise:
			g.seed = g.seed*1664525 + 1013904223
			v = float64(g.seed)/float64(math.MaxUint32)*2 - 1
		}

		g.phase += freq / float64(g.rate)
		g.phase -= math.Floor(g.phase)

		v *= math.Exp(-t * g.decay)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *tone) Err() error {
	return nil
}

// synthesize returns the built-in sound used when a cue file is unavailable.
func synthesize(name string, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch name {
	case "shoot":
		s = NewTone(rate, WaveSquare, 1200, 600, 80*time.Millisecond, 30)
	case "death":
		s = NewTone(rate, WaveSine, 300, 60, 600*time.Millisecond, 4)
	default: // explosion
		s = NewTone(rate, WaveNoise, 0, 0, 350*time.Millisecond, 10)
	}
	return quieter(s, 0.4)
}

// quieter scales a stream's amplitude by a linear factor in (0, 1].
func quieter(s beep.Streamer, factor float64) beep.Streamer {
	if factor <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(factor)}
}
