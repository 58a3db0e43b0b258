// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Transform is a 2D rigid transform: translation plus rotation. It caches
// the sine and cosine of the rotation angle so that repeated vector
// rotations (narrow phase, solver, integration) avoid recomputing
// trigonometry every call.
type Transform struct {
	Position Vec2
	angle    float32
	sin      float32
	cos      float32
}

// NewTransform returns the identity transform: no rotation, positioned
// at the origin.
func NewTransform() *Transform {
	return &Transform{cos: 1}
}

// NewTransformAt returns a transform at the given position with the
// given angle in radians.
func NewTransformAt(position Vec2, angle float32) *Transform {
	t := &Transform{Position: position}
	t.SetAngle(angle)
	return t
}

// Angle returns the transform's rotation in radians, always within
// [0, 2*PI).
func (t *Transform) Angle() float32 { return t.angle }

// Sin returns the cached sine of the transform's angle.
func (t *Transform) Sin() float32 { return t.sin }

// Cos returns the cached cosine of the transform's angle.
func (t *Transform) Cos() float32 { return t.cos }

// SetAngle normalizes angle to [0, 2*PI) and recomputes the cached
// sine/cosine pair.
func (t *Transform) SetAngle(angle float32) {
	t.angle = Nang(angle)
	t.sin = Sin(t.angle)
	t.cos = Cos(t.angle)
}

// SetPosition updates the transform's translation.
func (t *Transform) SetPosition(p Vec2) { t.Position = p }

// Rotate returns v rotated by the transform's cached angle, without
// translation. Equivalent to v.Rotate(t.Angle()) but avoids recomputing
// sin/cos.
func (t *Transform) Rotate(v Vec2) Vec2 {
	return Vec2{v.X*t.cos - v.Y*t.sin, v.X*t.sin + v.Y*t.cos}
}

// InverseRotate returns v rotated by the negation of the transform's
// angle, without translation.
func (t *Transform) InverseRotate(v Vec2) Vec2 {
	return Vec2{v.X*t.cos + v.Y*t.sin, -v.X*t.sin + v.Y*t.cos}
}

// Apply returns v transformed into world space: rotated then translated.
func (t *Transform) Apply(v Vec2) Vec2 {
	return t.Rotate(v).Add(t.Position)
}

// ApplyInverse returns the world-space point v transformed back into
// this transform's local space: the inverse of Apply.
func (t *Transform) ApplyInverse(v Vec2) Vec2 {
	return t.InverseRotate(v.Sub(t.Position))
}
