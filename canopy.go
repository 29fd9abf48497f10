package canopy

import (
	"image/color"

	"github.com/phanxgames/canopy/physics"
)

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API. It is the physics package's vector.
type Vec2 = physics.Vec2

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to Ebitengine.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is the default Scene.ClearColor.
var ColorBlack = Color{0, 0, 0, 1}

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// boundsRect returns the bounding rectangle of b in world space.
func boundsRect(b physics.Bounds) Rect {
	if b.Kind == physics.ShapeCircle {
		return Rect{X: b.X - b.Radius, Y: b.Y - b.Radius, Width: 2 * b.Radius, Height: 2 * b.Radius}
	}
	return Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}
