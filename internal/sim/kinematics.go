package sim

import (
	"math"

	"github.com/vovakirdan/space-odyssey/internal/geom"
)

// Displacement returns how far an entity facing rotationDeg moves in dt
// seconds at the given speed. Heading 0 points along +X.
func Displacement(rotationDeg, speed, dt float64) geom.Vec2 {
	return geom.Heading(rotationDeg).Scale(speed * dt)
}

// steerVector combines the thrust inputs into a unit direction for a ship
// facing rotationDeg, where rotation 0 is "up" on screen.
// Opposite inputs cancel to zero.
func steerVector(rotationDeg float64, thrust, reverse bool) geom.Vec2 {
	rad := rotationDeg * geom.DegToRad
	sin, cos := math.Sin(rad), math.Cos(rad)

	var dir geom.Vec2
	if thrust {
		dir = dir.Add(geom.V(sin, -cos))
	}
	if reverse {
		dir = dir.Add(geom.V(-sin, cos))
	}
	return dir.Normalize()
}
