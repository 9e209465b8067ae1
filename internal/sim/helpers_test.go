package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/space-odyssey/internal/config"
	"github.com/vovakirdan/space-odyssey/internal/core"
	"github.com/vovakirdan/space-odyssey/internal/geom"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func approxVec(a, b geom.Vec2) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

// scriptedRandom replays fixed values; exhausted queues return lo / true.
type scriptedRandom struct {
	ints  []int
	coins []bool
}

func (s *scriptedRandom) IntRange(lo, hi int) int {
	if len(s.ints) == 0 {
		return lo
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func (s *scriptedRandom) Coin() bool {
	if len(s.coins) == 0 {
		return true
	}
	v := s.coins[0]
	s.coins = s.coins[1:]
	return v
}

type recordingCues struct {
	played []Cue
}

func (r *recordingCues) Play(c Cue) {
	r.played = append(r.played, c)
}

func (r *recordingCues) count(c Cue) int {
	n := 0
	for _, p := range r.played {
		if p == c {
			n++
		}
	}
	return n
}

type recordingCanvas struct {
	backgrounds int
	ships       int
	rocks       int
	shots       int
	logos       int
	texts       []string
	outlines    int
}

func (c *recordingCanvas) Background()                    { c.backgrounds++ }
func (c *recordingCanvas) Ship(_, _ geom.Vec2, _ float64) { c.ships++ }
func (c *recordingCanvas) Rock(_, _ geom.Vec2, _ float64) { c.rocks++ }
func (c *recordingCanvas) Shot(_, _ geom.Vec2, _ float64) { c.shots++ }
func (c *recordingCanvas) Logo(geom.Vec2)                 { c.logos++ }
func (c *recordingCanvas) Text(l Label)                   { c.texts = append(c.texts, l.Text) }
func (c *recordingCanvas) Outline(geom.Circle)            { c.outlines++ }

// newTestWorld returns a world with default config, already in game mode.
func newTestWorld(t *testing.T) (*World, *recordingCues) {
	t.Helper()
	cues := &recordingCues{}
	w := NewWorld(config.DefaultOdysseyConfig(), &scriptedRandom{}, cues)
	w.mode.Play()
	return w, cues
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Press(a)
	}
	return in
}

func hold(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

func click(x, y float64) core.InputFrame {
	in := core.NewInputFrame()
	in.ClickAt(geom.V(x, y))
	return in
}
