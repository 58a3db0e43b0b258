// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "github.com/warrengalyen/proxima/math/lin"

// AABB is an axis-aligned bounding box in world coordinates, given as a
// corner and extents so it matches the layout callers expect when
// handing boxes to renderers or spatial structures.
type AABB struct {
	X, Y          float32
	Width, Height float32
}

// Min returns the box's corner with the smallest X and Y.
func (b AABB) Min() lin.Vec2 { return lin.Vec2{X: b.X, Y: b.Y} }

// Max returns the box's corner with the largest X and Y.
func (b AABB) Max() lin.Vec2 { return lin.Vec2{X: b.X + b.Width, Y: b.Y + b.Height} }

// Empty reports whether the box has zero or negative area.
func (b AABB) Empty() bool { return b.Width <= 0 || b.Height <= 0 }

// Overlaps reports whether b and o intersect.
func (b AABB) Overlaps(o AABB) bool {
	return b.X < o.X+o.Width && b.X+b.Width > o.X &&
		b.Y < o.Y+o.Height && b.Y+b.Height > o.Y
}

// Contains reports whether point p lies within b.
func (b AABB) Contains(p lin.Vec2) bool {
	return p.X >= b.X && p.X <= b.X+b.Width && p.Y >= b.Y && p.Y <= b.Y+b.Height
}

// Union returns the smallest AABB containing both b and o.
func (b AABB) Union(o AABB) AABB {
	minX, minY := lin.Min(b.X, o.X), lin.Min(b.Y, o.Y)
	maxX, maxY := lin.Max(b.X+b.Width, o.X+o.Width), lin.Max(b.Y+b.Height, o.Y+o.Height)
	return AABB{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// fromMinMax builds an AABB from opposing corners, ordering them so the
// result always has non-negative width/height.
func fromMinMax(min, max lin.Vec2) AABB {
	if min.X > max.X {
		min.X, max.X = max.X, min.X
	}
	if min.Y > max.Y {
		min.Y, max.Y = max.Y, min.Y
	}
	return AABB{X: min.X, Y: min.Y, Width: max.X - min.X, Height: max.Y - min.Y}
}
