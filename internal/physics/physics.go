// Package physics provides collision detection and vector utilities.
package physics

import "math"

// Vec2 is a 2D position or direction in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Heading returns the unit vector at the given angle in degrees.
func Heading(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Clamp limits both components of v to [-bound, bound].
func (v Vec2) Clamp(bound float64) Vec2 {
	return Vec2{X: clamp(v.X, -bound, bound), Y: clamp(v.Y, -bound, bound)}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	return math.Sqrt(DistanceSquared(a, b))
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// PointInCircle checks if a point is within radius of a target position.
func PointInCircle(p, c Vec2, radius float64) bool {
	return DistanceSquared(p, c) <= radius*radius
}

// CirclesOverlap checks if two circles overlap.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	minDist := ra + rb
	return DistanceSquared(a, b) < minDist*minDist
}

// StepToward moves from toward target by exactly step units.
// Returns from unchanged when the two points coincide.
func StepToward(from, target Vec2, step float64) Vec2 {
	dir := target.Sub(from)
	if dir.Len() == 0 {
		return from
	}
	return from.Add(dir.Normalize().Scale(step))
}
