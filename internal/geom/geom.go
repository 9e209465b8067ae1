// Package geom provides the 2D vector math used by the simulation:
// vectors, rectangles, circle-circle intersection and angles between points.
// It has no dependencies outside the standard library math package.
package geom

import "math"

// DegToRad converts degrees to radians.
const DegToRad = math.Pi / 180.0

// Vec2 is a 2D vector or point in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the difference between two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies the vector by a scalar.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Length returns the magnitude of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector in the same direction.
// The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Distance returns the Euclidean distance between two points.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

// Heading returns the unit vector for a rotation given in degrees,
// measured from the +X axis with Y growing downwards.
func Heading(deg float64) Vec2 {
	r := deg * DegToRad
	return Vec2{X: math.Cos(r), Y: math.Sin(r)}
}

// Angle returns the angle in radians of the direction from one point to another.
// The result lies in [-Pi, Pi].
func Angle(from, to Vec2) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// Circle is a bounding circle used for collision tests.
type Circle struct {
	Center Vec2
	Radius float64
}

// Intersects reports whether two circles touch or overlap.
// Touching circles count as colliding.
func (c Circle) Intersects(o Circle) bool {
	r := c.Radius + o.Radius
	d := c.Center.Sub(o.Center)
	return d.X*d.X+d.Y*d.Y <= r*r
}

// Rect is an axis-aligned rectangle in world units.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// CenteredRect returns a rectangle of the given size centered at c.
func CenteredRect(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Contains reports whether p lies inside the rectangle, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
