package sim

import "github.com/vovakirdan/space-odyssey/internal/geom"

// Asteroid drifts in a straight line. Pos is its top-left corner.
type Asteroid struct {
	Body
	dead bool
}

// NewAsteroid creates a square asteroid.
func NewAsteroid(pos geom.Vec2, size int, rotation, speed float64) *Asteroid {
	s := float64(size)
	return &Asteroid{Body: Body{
		Pos:      pos,
		Size:     geom.V(s, s),
		Rotation: rotation,
		Speed:    speed,
	}}
}

// Update moves the asteroid along its heading.
func (a *Asteroid) Update(dt float64) {
	a.Pos = a.Pos.Add(Displacement(a.Rotation, a.Speed, dt))
}

// Draw renders the asteroid.
func (a *Asteroid) Draw(dst Canvas) {
	dst.Rock(a.Pos, a.Size, a.Rotation)
}

// Hitbox is centered on the visual center of the asteroid.
func (a *Asteroid) Hitbox() geom.Circle {
	return geom.Circle{Center: a.Pos.Add(a.Size.Scale(0.5)), Radius: a.radius()}
}

// Collides reports whether the asteroid touches another entity.
func (a *Asteroid) Collides(other Entity) bool {
	return collides(a.Hitbox(), other)
}
