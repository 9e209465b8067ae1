// Package audio plays the game's one-shot sound cues through the system
// speaker using beep. Cue files are decoded once at startup; cues without
// a usable file get a synthesized replacement.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/space-odyssey/internal/sim"
)

// DefaultSampleRate is used when the config leaves the rate unset.
const DefaultSampleRate = beep.SampleRate(44100)

// Player mixes cues into the speaker. It satisfies sim.CuePlayer.
type Player struct {
	mu     sync.Mutex
	cues   Cues
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// Open initializes the speaker and starts an empty mixer.
// volume is a base-2 exponent: 0 leaves cues unchanged, -1 halves them.
func Open(cues Cues, rate beep.SampleRate, volume float64) (*Player, error) {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}

	p := &Player{
		cues:   cues,
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Play starts a cue without waiting for it to finish.
func (p *Player) Play(c sim.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	buf, ok := p.cues[c]
	if !ok {
		return
	}

	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if p.volume != 0 && !math.IsNaN(p.volume) {
		s = &effects.Volume{Streamer: s, Base: 2, Volume: p.volume}
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops all sounds and releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Silent is a cue player that plays nothing. SSH sessions and hosts
// without an audio device use it.
type Silent struct{}

// Play does nothing.
func (Silent) Play(sim.Cue) {}

// Close does nothing.
func (Silent) Close() {}

// CloseablePlayer is a cue player that owns a device.
type CloseablePlayer interface {
	sim.CuePlayer
	Close()
}

var (
	_ CloseablePlayer = (*Player)(nil)
	_ CloseablePlayer = Silent{}
)
