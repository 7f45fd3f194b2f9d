// Package geometry holds the vector math and shape tests shared by the tile
// builder, the obstacle index and the player engine.
//
// Coordinates are screen space: X grows right, Y grows down.
// Angles are degrees: 0 points up (0, -1) and increase clockwise.
package geometry

import "math"

// Epsilon is the tolerance used for collinearity and touching tests.
const Epsilon = 1e-9

// Vec2 is a 2D vector (value type)
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Len returns the magnitude
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// LenSq returns the squared magnitude
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// IsZero reports whether both components are zero
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalize returns the unit vector, or the zero vector for zero input
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Perp returns v rotated 90 degrees clockwise on screen: (-y, x).
// For the up normal (0,-1) this is (1,0).
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// Lerp interpolates between v and o
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Distance returns |a - b|
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// NormalFromAngle converts an outward angle in degrees into a unit normal.
// x = sin(θ), y = -cos(θ)
func NormalFromAngle(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	return Vec2{math.Sin(rad), -math.Cos(rad)}.Normalize()
}

// NormalizeDegrees maps an angle into [0, 360)
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// AngleTo returns the angle in degrees needed to rotate v onto o,
// mapped into [0, 360). A zero vector is treated as pointing along +X.
func AngleTo(v, o Vec2) float64 {
	deg := (math.Atan2(o.Y, o.X) - math.Atan2(v.Y, v.X)) * 180 / math.Pi
	return NormalizeDegrees(deg)
}

// Reflect reflects v about the unit normal n: v - 2(v·n)n
func Reflect(v, n Vec2) Vec2 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Attenuate keeps the tangential part of v and scales the part along the
// unit normal n by bounciness. bounciness is the fraction retained:
// 1 is perfectly elastic, 0 removes all motion along the normal.
func Attenuate(v, n Vec2, bounciness float64) Vec2 {
	along := n.Scale(v.Dot(n))
	return v.Sub(along).Add(along.Scale(bounciness))
}

// Sign returns -1, 0 or 1
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Clamp restricts x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
