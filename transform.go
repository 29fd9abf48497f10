package canopy

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform returns the object's local affine matrix
// [a, b, c, d, tx, ty]. Composition order is Scale -> Rotate -> Translate(X, Y).
func computeLocalTransform(o *GameObject) [6]float64 {
	sin, cos := math.Sincos(o.Rotation)
	return [6]float64{
		cos * o.ScaleX,
		sin * o.ScaleX,
		-sin * o.ScaleY,
		cos * o.ScaleY,
		o.X,
		o.Y,
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// parentTransform returns the world matrix of o's parent, or identity for a
// root object.
func (o *GameObject) parentTransform() [6]float64 {
	if o.Parent == nil {
		return identityTransform
	}
	return o.Parent.WorldTransform()
}

// WorldTransform returns the object's local-to-world matrix, composed from
// the current transforms of all its ancestors.
func (o *GameObject) WorldTransform() [6]float64 {
	m := computeLocalTransform(o)
	for p := o.Parent; p != nil; p = p.Parent {
		m = multiplyAffine(computeLocalTransform(p), m)
	}
	return m
}

// --- Transform property setters ---

// Position returns the object's local X and Y.
func (o *GameObject) Position() Vec2 {
	return Vec2{X: o.X, Y: o.Y}
}

// SetPosition sets the object's local X and Y.
func (o *GameObject) SetPosition(x, y float64) {
	o.X = x
	o.Y = y
}

// SetScale sets the object's ScaleX and ScaleY.
func (o *GameObject) SetScale(sx, sy float64) {
	o.ScaleX = sx
	o.ScaleY = sy
}

// SetRotation sets the object's rotation in radians.
func (o *GameObject) SetRotation(r float64) {
	o.Rotation = r
}

// GlobalPosition returns the object's origin in world space.
func (o *GameObject) GlobalPosition() Vec2 {
	x, y := transformPoint(o.parentTransform(), o.X, o.Y)
	return Vec2{X: x, Y: y}
}

// SetGlobalPosition moves the object so its origin lands on p in world space.
func (o *GameObject) SetGlobalPosition(p Vec2) {
	o.X, o.Y = transformPoint(invertAffine(o.parentTransform()), p.X, p.Y)
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this object's local coordinate space.
func (o *GameObject) WorldToLocal(wx, wy float64) (lx, ly float64) {
	return transformPoint(invertAffine(o.WorldTransform()), wx, wy)
}

// LocalToWorld converts a local-space point to world-space.
func (o *GameObject) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(o.WorldTransform(), lx, ly)
}
