package sim

import "github.com/vovakirdan/space-odyssey/internal/geom"

// HitRadiusDivisor scales an entity's width into its collision radius.
// A 50-unit asteroid gets a radius of 20, a 10-unit bullet a radius of 4.
const HitRadiusDivisor = 2.5

// Body is the state every entity shares.
// Rotation is in degrees and is never wrapped.
type Body struct {
	Pos      geom.Vec2
	Size     geom.Vec2
	Rotation float64
	Speed    float64 // units per second
}

// Entity is the contract of everything that lives in the world.
type Entity interface {
	Update(dt float64)
	Draw(dst Canvas)
	Collides(other Entity) bool
}

// hitbox returns the collision circle of a known entity kind.
func hitbox(e Entity) (geom.Circle, bool) {
	switch v := e.(type) {
	case *Player:
		return v.Hitbox(), true
	case *Asteroid:
		return v.Hitbox(), true
	case *Bullet:
		return v.Hitbox(), true
	default:
		return geom.Circle{}, false
	}
}

func collides(self geom.Circle, other Entity) bool {
	c, ok := hitbox(other)
	return ok && self.Intersects(c)
}

func (b Body) radius() float64 {
	return b.Size.X / HitRadiusDivisor
}
