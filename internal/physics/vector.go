// Package physics provides the world-space math and the fixed-step
// simulation used by cowpult: vectors and points, AABB hitboxes, the
// per-tick integrator and the two-body collision resolver.
//
// Everything here is pure and allocation-free. Nothing depends on the
// terminal, input devices or level files.
package physics

import "math"

// Vector is a displacement, velocity or acceleration in world units.
type Vector struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// V creates a Vector.
func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Between returns the vector pointing from p0 to p1.
func Between(p0, p1 Position) Vector {
	return Vector{X: p1.X - p0.X, Y: p1.Y - p0.Y}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul scales v by s.
func (v Vector) Mul(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Div divides both components by s. Division by zero follows IEEE rules.
func (v Vector) Div(s float64) Vector {
	return Vector{X: v.X / s, Y: v.Y / s}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Dot returns the scalar product of v and o.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Magnitude returns the Euclidean length of v.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns v scaled to unit length.
// A zero vector yields NaN components; check IsZero first.
func (v Vector) Normalize() Vector {
	return v.Div(v.Magnitude())
}

// Position is a point in world space. World units are not terminal cells;
// the frame package converts between the two.
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// P creates a Position.
func P(x, y float64) Position {
	return Position{X: x, Y: y}
}

// Offset returns p moved by v.
func (p Position) Offset(v Vector) Position {
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}

// ContainedWithin reports whether p lies inside the axis-aligned box spanned
// by corners a and b. Bounds are inclusive and the corners may be given in
// any order.
func (p Position) ContainedWithin(a, b Position) bool {
	xMin, xMax := math.Min(a.X, b.X), math.Max(a.X, b.X)
	yMin, yMax := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)

	return xMin <= p.X && p.X <= xMax && yMin <= p.Y && p.Y <= yMax
}
