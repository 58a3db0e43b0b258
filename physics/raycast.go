// Copyright © 2014-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

// raycast.go contains ray casting logic, kept separate from the narrow
// phase used by the solver and often used to answer "what is under the
// cursor".

import "github.com/warrengalyen/proxima/math/lin"

// Ray is a half-line starting at Origin and extending in Direction,
// which is expected (but not required) to be unit length.
type Ray struct {
	Origin    lin.Vec2
	Direction lin.Vec2
}

// RaycastHit describes where a ray met a shape.
type RaycastHit struct {
	Body     int
	Point    lin.Vec2
	Normal   lin.Vec2
	Fraction float32 // distance along Direction, in Direction's own units.
}

// castRayCircle calculates the nearest point where ray r enters circle
// shape at transform t, within maxDistance. hit is false if the ray
// misses or the circle is entirely behind the ray's origin.
func castRayCircle(r Ray, shape *Circle, t *lin.Transform, maxDistance float32) (hit RaycastHit, ok bool) {
	toCenter := t.Position.Sub(r.Origin)
	proj := toCenter.Dot(r.Direction)
	centerDistSqr := toCenter.Dot(toCenter) - proj*proj
	radiusSqr := shape.radius * shape.radius
	if centerDistSqr > radiusSqr {
		return hit, false
	}

	halfChord := lin.Sqrt(radiusSqr - centerDistSqr)
	dist := proj - halfChord
	if dist < 0 {
		dist = proj + halfChord
		if dist < 0 {
			return hit, false
		}
	}
	if dist > maxDistance {
		return hit, false
	}

	point := r.Origin.Add(r.Direction.Scale(dist))
	normal := point.Sub(t.Position).Unit()
	return RaycastHit{Point: point, Normal: normal, Fraction: dist}, true
}

// castRayPolygon walks every edge of shape and returns the nearest
// entry point, if any, within maxDistance.
func castRayPolygon(r Ray, shape *Polygon, t *lin.Transform, maxDistance float32) (hit RaycastHit, ok bool) {
	localOrigin := t.ApplyInverse(r.Origin)
	localDir := t.InverseRotate(r.Direction)

	best := maxDistance
	found := false
	var bestNormal lin.Vec2

	n := len(shape.vertices)
	for i := 0; i < n; i++ {
		v1 := shape.vertices[(i-1+n)%n]
		v2 := shape.vertices[i]
		edge := v2.Sub(v1)
		normal := shape.normals[i]

		denom := normal.Dot(localDir)
		if denom >= 0 {
			continue // edge faces away from or is parallel to the ray.
		}
		toEdge := v1.Sub(localOrigin)
		dist := normal.Dot(toEdge) / denom
		if dist < 0 || dist > best {
			continue
		}
		point := localOrigin.Add(localDir.Scale(dist))
		along := point.Sub(v1).Dot(edge) / edge.Dot(edge)
		if along < 0 || along > 1 {
			continue
		}
		best = dist
		bestNormal = normal
		found = true
	}
	if !found {
		return hit, false
	}
	worldPoint := t.Apply(localOrigin.Add(localDir.Scale(best)))
	worldNormal := t.Rotate(bestNormal)
	return RaycastHit{Point: worldPoint, Normal: worldNormal, Fraction: best}, true
}

// castRayShape dispatches to the appropriate shape-specific cast.
func castRayShape(r Ray, shape Shape, t *lin.Transform, maxDistance float32) (RaycastHit, bool) {
	switch s := shape.(type) {
	case *Circle:
		return castRayCircle(r, s, t, maxDistance)
	case *Polygon:
		return castRayPolygon(r, s, t, maxDistance)
	default:
		return RaycastHit{}, false
	}
}
