package physics

import "math"

// Vec2 is a 2D vector. Methods on the value receiver return new vectors;
// Set and Normalize mutate in place.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div returns v divided by s. Panics if s is zero.
func (v Vec2) Div(s float64) Vec2 {
	if s == 0 {
		panic("physics: Vec2 divided by zero")
	}
	return Vec2{v.X / s, v.Y / s}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Abs returns the component-wise absolute value.
func (v Vec2) Abs() Vec2 {
	return Vec2{math.Abs(v.X), math.Abs(v.Y)}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Lerp linearly interpolates from v to o by t. t is not clamped.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Reflect reflects v off a surface with the given unit normal.
func (v Vec2) Reflect(normal Vec2) Vec2 {
	d := 2 * v.Dot(normal)
	return Vec2{v.X - d*normal.X, v.Y - d*normal.Y}
}

// Clamp clamps each component of v into [lo, hi].
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{clamp(v.X, lo.X, hi.X), clamp(v.Y, lo.Y, hi.Y)}
}

// Normalized returns a unit vector in the direction of v, or the zero vector
// if v has zero length.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Set assigns both components.
func (v *Vec2) Set(x, y float64) {
	v.X = x
	v.Y = y
}

// Normalize scales v to unit length in place. A zero vector stays zero.
func (v *Vec2) Normalize() {
	*v = v.Normalized()
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
