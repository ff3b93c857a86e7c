// Package gamemath holds the small vector helpers shared by the controller,
// the rigid-body host and the renderer. No engine dependencies.
package gamemath

import "math"

// Vec2 is a 2D vector in world units (y up).
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// LenSq returns the squared magnitude.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalize returns the unit vector in the direction of v, or the zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// ClampMagnitude rescales v to max when it is longer, keeping its direction.
func ClampMagnitude(v Vec2, max float64) Vec2 {
	if max < 0 {
		max = 0
	}
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}

// Damp multiplies the whole vector by coefficient.
func Damp(v Vec2, coefficient float64) Vec2 {
	return v.Scale(coefficient)
}

// Sign returns -1, 0 or 1.
func Sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
