package physics

import "fmt"

// Overlaps reports whether a and b intersect when both are grown by margin.
// Empty bounds never overlap anything. Circle tests are strict, so exact
// tangency at margin 0 is not an overlap.
func Overlaps(a, b Bounds, margin float64) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	switch {
	case a.Kind == ShapeBox && b.Kind == ShapeBox:
		return boxBox(a, b, margin)
	case a.Kind == ShapeCircle && b.Kind == ShapeCircle:
		return circleCircle(a, b, margin)
	case a.Kind == ShapeCircle && b.Kind == ShapeBox:
		return circleBox(a, b, margin)
	case a.Kind == ShapeBox && b.Kind == ShapeCircle:
		return circleBox(b, a, margin)
	default:
		panic(fmt.Sprintf("physics: no overlap test for %v vs %v", a.Kind, b.Kind))
	}
}

func boxBox(a, b Bounds, margin float64) bool {
	return a.X < b.X+b.Width+margin &&
		a.X+a.Width+margin > b.X &&
		a.Y < b.Y+b.Height+margin &&
		a.Y+a.Height+margin > b.Y
}

func circleCircle(a, b Bounds, margin float64) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	r := a.Radius + b.Radius + margin
	return dx*dx+dy*dy < r*r
}

// circleBox finds the point of box closest to the circle center and compares
// its squared distance to the squared radius.
func circleBox(c, box Bounds, margin float64) bool {
	nx := clamp(c.X, box.X, box.X+box.Width)
	ny := clamp(c.Y, box.Y, box.Y+box.Height)
	dx := c.X - nx
	dy := c.Y - ny
	r := c.Radius + margin
	return dx*dx+dy*dy < r*r
}
