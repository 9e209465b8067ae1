package sim

import "github.com/vovakirdan/space-odyssey/internal/geom"

// Canvas is the draw surface a frontend hands to World.Render.
// All coordinates are world units; frontends scale to their own surface.
type Canvas interface {
	Background()
	Ship(center, size geom.Vec2, rotation float64)
	Rock(topLeft, size geom.Vec2, rotation float64)
	Shot(pos, size geom.Vec2, rotation float64)
	Logo(center geom.Vec2)
	Text(l Label)
	// Outline draws a collision circle when the debug overlay is on.
	Outline(c geom.Circle)
}

// Cue is a one-shot sound effect.
type Cue int

const (
	CueShoot Cue = iota
	CueDeath
	CueExplosion
)

// String returns the cue name used for asset lookup and logs.
func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueDeath:
		return "death"
	case CueExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// CuePlayer plays sound cues. Play must not block the frame loop.
type CuePlayer interface {
	Play(c Cue)
}

// NopCues discards every cue.
type NopCues struct{}

// Play does nothing.
func (NopCues) Play(Cue) {}
