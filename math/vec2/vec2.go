// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vec2

import "math"

// Epsilon is the length below which a vector is treated as zero for
// normalization purposes.
const Epsilon float32 = 1e-6

// Vec2 is a 2 element vector. It is also used as a world-space point.
type Vec2 struct {
	X float32
	Y float32
}

// V returns the vector (x, y).
func V(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

// Add (+) returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub (-) returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Negate returns -v.
func (v Vec2) Negate() Vec2 { return Vec2{-v.X, -v.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Div returns v / s.
func (v Vec2) Div(s float32) Vec2 { return Vec2{v.X / s, v.Y / s} }

// MulC returns the componentwise product of v and o.
func (v Vec2) MulC(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// DivC returns the componentwise quotient of v and o.
func (v Vec2) DivC(o Vec2) Vec2 { return Vec2{v.X / o.X, v.Y / o.Y} }

// Dot returns the dot product v . o.
func (v Vec2) Dot(o Vec2) float32 { return v.X*o.X + v.Y*o.Y }

// Cross returns the perp-dot (2D cross) product v x o, a scalar equal to
// the z component of the 3D cross product of (v,0) and (o,0).
func (v Vec2) Cross(o Vec2) float32 { return v.X*o.Y - v.Y*o.X }

// CrossScalar returns v x s, the 2D analogue of crossing a vector with a
// scalar (out-of-plane) angular quantity: (s*v.Y, -s*v.X).
func (v Vec2) CrossScalar(s float32) Vec2 { return Vec2{s * v.Y, -s * v.X} }

// Perp returns v rotated -90 degrees: (v.Y, -v.X).
func (v Vec2) Perp() Vec2 { return Vec2{v.Y, -v.X} }

// LengthSquared returns |v|^2.
func (v Vec2) LengthSquared() float32 { return v.X*v.X + v.Y*v.Y }

// Length returns |v|.
func (v Vec2) Length() float32 { return float32(math.Sqrt(float64(v.LengthSquared()))) }

// Normalize returns v scaled to unit length. For a vector shorter than
// Epsilon the result is v unchanged — callers that need a guaranteed
// direction for a degenerate vector should use NormalizeOr instead.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l < Epsilon {
		return v
	}
	return v.Div(l)
}

// NormalizeOr returns v scaled to unit length, or def when |v| < Epsilon.
func (v Vec2) NormalizeOr(def Vec2) Vec2 {
	l := v.Length()
	if l < Epsilon {
		return def
	}
	return v.Div(l)
}

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vec2) Rotate(angle float32) Vec2 {
	s, c := float32(math.Sin(float64(angle))), float32(math.Cos(float64(angle)))
	return Vec2{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}

// Zero is the additive identity.
var Zero = Vec2{0, 0}

// Clamp returns v restricted to the closed interval [lo, hi] componentwise.
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Min returns the lesser of a and b.
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of a and b.
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Sign returns -1, 0, or 1 according to the sign of v.
func Sign(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
