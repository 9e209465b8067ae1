package sim

import (
	"github.com/vovakirdan/space-odyssey/internal/core"
	"github.com/vovakirdan/space-odyssey/internal/geom"
)

// Player is the ship. Its position is the center of the sprite.
type Player struct {
	Body
	TurnRate float64 // degrees per second

	turnLeft  bool
	turnRight bool
	thrust    bool
	reverse   bool
}

// NewPlayer creates a ship at center facing up.
func NewPlayer(center geom.Vec2, size, speed, turnRate float64) *Player {
	return &Player{
		Body: Body{
			Pos:   center,
			Size:  geom.V(size, size),
			Speed: speed,
		},
		TurnRate: turnRate,
	}
}

// Steer latches the movement actions held this frame for the next Update.
func (p *Player) Steer(in core.InputFrame) {
	p.turnRight = in.IsHeld(core.ActionTurnRight)
	p.turnLeft = in.IsHeld(core.ActionTurnLeft)
	p.thrust = in.IsHeld(core.ActionThrust)
	p.reverse = in.IsHeld(core.ActionReverse)
}

// Update turns and moves the ship. There is no inertia: without thrust
// input the ship stays where it is.
func (p *Player) Update(dt float64) {
	if p.turnRight {
		p.Rotation += p.TurnRate * dt
	}
	if p.turnLeft {
		p.Rotation -= p.TurnRate * dt
	}

	dir := steerVector(p.Rotation, p.thrust, p.reverse)
	p.Pos = p.Pos.Add(dir.Scale(p.Speed * dt))
}

// Draw renders the ship.
func (p *Player) Draw(dst Canvas) {
	dst.Ship(p.Pos, p.Size, p.Rotation)
}

// Hitbox is centered on the ship position.
func (p *Player) Hitbox() geom.Circle {
	return geom.Circle{Center: p.Pos, Radius: p.radius()}
}

// Collides reports whether the ship touches another entity.
func (p *Player) Collides(other Entity) bool {
	return collides(p.Hitbox(), other)
}

// MoveTo repositions the ship without touching its rotation.
func (p *Player) MoveTo(pos geom.Vec2) {
	p.Pos = pos
}
