package sim

import "github.com/vovakirdan/space-odyssey/internal/geom"

// Bullet flies straight along its spawn rotation.
type Bullet struct {
	Body
	dead bool
}

// NewBullet creates a bullet at pos.
func NewBullet(pos, size geom.Vec2, rotation, speed float64) *Bullet {
	return &Bullet{Body: Body{
		Pos:      pos,
		Size:     size,
		Rotation: rotation,
		Speed:    speed,
	}}
}

// Update moves the bullet along its heading.
func (b *Bullet) Update(dt float64) {
	b.Pos = b.Pos.Add(Displacement(b.Rotation, b.Speed, dt))
}

// Draw renders the bullet.
func (b *Bullet) Draw(dst Canvas) {
	dst.Shot(b.Pos, b.Size, b.Rotation)
}

// Hitbox is centered on the bullet position.
func (b *Bullet) Hitbox() geom.Circle {
	return geom.Circle{Center: b.Pos, Radius: b.radius()}
}

// Collides reports whether the bullet touches another entity.
func (b *Bullet) Collides(other Entity) bool {
	return collides(b.Hitbox(), other)
}
