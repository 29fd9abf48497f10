package physics

import "math"

// ShapeKind selects the geometry of a collider.
type ShapeKind uint8

const (
	ShapeBox    ShapeKind = iota + 1 // axis-aligned box, centered on the owner
	ShapeCircle                      // circle, centered on the owner
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeBox:
		return "box"
	case ShapeCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// Shape is the extent of a collider. When Auto is set the extent is taken
// from the owner's sprite size at bounds time.
type Shape struct {
	Kind   ShapeKind
	Size   Vec2    // box width and height
	Radius float64 // circle radius
	Auto   bool
}

// Box returns a box shape of the given width and height.
func Box(w, h float64) Shape {
	return Shape{Kind: ShapeBox, Size: Vec2{w, h}}
}

// Circle returns a circle shape of the given radius.
func Circle(r float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: r}
}

// AutoBox returns a box sized from the owner's sprite.
func AutoBox() Shape {
	return Shape{Kind: ShapeBox, Auto: true}
}

// AutoCircle returns a circle sized from the owner's sprite.
func AutoCircle() Shape {
	return Shape{Kind: ShapeCircle, Auto: true}
}

// Bounds is the world-space extent of a collider at one instant.
// Boxes use X, Y (top-left), Width and Height; circles use X, Y (center)
// and Radius.
type Bounds struct {
	Kind   ShapeKind
	X, Y   float64
	Width  float64
	Height float64
	Radius float64
}

// Empty reports whether the bounds have no area. Empty bounds never collide.
// Bounds of an unknown kind are not empty, so Overlaps rejects them loudly.
func (b Bounds) Empty() bool {
	switch b.Kind {
	case ShapeBox:
		return b.Width <= 0 || b.Height <= 0
	case ShapeCircle:
		return b.Radius <= 0
	default:
		return false
	}
}

// Center returns the center point of the bounds.
func (b Bounds) Center() Vec2 {
	if b.Kind == ShapeBox {
		return Vec2{b.X + b.Width/2, b.Y + b.Height/2}
	}
	return Vec2{b.X, b.Y}
}

// boundsAt computes the bounds of s centered on center. sprite is the
// fallback extent used when s is Auto; ok reports whether one exists.
func (s Shape) boundsAt(center Vec2, sprite Vec2, ok bool) Bounds {
	switch s.Kind {
	case ShapeBox:
		size := s.Size
		if s.Auto {
			size = Vec2{}
			if ok {
				size = sprite
			}
		}
		return Bounds{
			Kind:   ShapeBox,
			X:      center.X - size.X/2,
			Y:      center.Y - size.Y/2,
			Width:  size.X,
			Height: size.Y,
		}
	case ShapeCircle:
		r := s.Radius
		if s.Auto {
			r = 0
			if ok {
				r = math.Max(sprite.X, sprite.Y) / 2
			}
		}
		return Bounds{Kind: ShapeCircle, X: center.X, Y: center.Y, Radius: r}
	default:
		return Bounds{}
	}
}
