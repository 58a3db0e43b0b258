// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "github.com/warrengalyen/proxima/math/lin"

// collide runs the narrow phase for two bodies whose AABBs the broad
// phase already flagged as overlapping. Returns nil if the shapes are
// not actually touching.
func collide(a, b *Body, aIdx, bIdx int) *Manifold {
	var m *Manifold
	switch sa := a.shape.(type) {
	case *Circle:
		switch sb := b.shape.(type) {
		case *Circle:
			m = collideCircles(aIdx, bIdx, sa, &a.transform, sb, &b.transform)
		case *Polygon:
			m = flipManifold(collideCirclePolygon(bIdx, aIdx, sb, &b.transform, sa, &a.transform))
		}
	case *Polygon:
		switch sb := b.shape.(type) {
		case *Circle:
			m = collideCirclePolygon(aIdx, bIdx, sa, &a.transform, sb, &b.transform)
		case *Polygon:
			m = collidePolygons(aIdx, bIdx, sa, &a.transform, sb, &b.transform)
		}
	}
	if m == nil {
		return nil
	}
	m.Friction = combinedFriction(a.shape.Material(), b.shape.Material())
	m.Restitution = combinedRestitution(a.shape.Material(), b.shape.Material())
	return m
}

func flipManifold(m *Manifold) *Manifold {
	if m == nil {
		return nil
	}
	m.BodyA, m.BodyB = m.BodyB, m.BodyA
	m.Normal = m.Normal.Neg()
	return m
}

// collideCircles tests two circles for overlap and, if touching,
// returns a single-point manifold with the normal pointing from A to B.
func collideCircles(aIdx, bIdx int, a *Circle, ta *lin.Transform, b *Circle, tb *lin.Transform) *Manifold {
	delta := tb.Position.Sub(ta.Position)
	distSqr := delta.LenSqr()
	radius := a.radius + b.radius
	if distSqr > radius*radius {
		return nil
	}

	dist := lin.Sqrt(distSqr)
	var normal lin.Vec2
	penetration := radius - dist
	if dist == 0 {
		normal = lin.Vec2{X: 1, Y: 0}
		penetration = a.radius
	} else {
		normal = delta.Scale(1 / dist)
	}
	point := ta.Position.Add(normal.Scale(a.radius))
	return &Manifold{
		BodyA: aIdx, BodyB: bIdx, Normal: normal,
		Points: []Contact{{Point: point, Penetration: penetration, id: 0}},
	}
}

// collideCirclePolygon tests a polygon against a circle by clamping the
// circle's center to the polygon and checking the penetration along
// whichever edge normal is closest.
func collideCirclePolygon(aIdx, bIdx int, poly *Polygon, tPoly *lin.Transform, circle *Circle, tCircle *lin.Transform) *Manifold {
	center := tPoly.ApplyInverse(tCircle.Position)

	separation := -lin.Large
	edgeIndex := 0
	for i, v := range poly.vertices {
		s := poly.normals[i].Dot(center.Sub(v))
		if s > circle.radius {
			return nil
		}
		if s > separation {
			separation = s
			edgeIndex = i
		}
	}

	n := len(poly.vertices)
	v1 := poly.vertices[(edgeIndex-1+n)%n]
	v2 := poly.vertices[edgeIndex]

	if separation < lin.Epsilon {
		normal := tPoly.Rotate(poly.normals[edgeIndex])
		mid := tPoly.Apply(v1.Lerp(v2, 0.5))
		return &Manifold{
			BodyA: aIdx, BodyB: bIdx, Normal: normal,
			Points: []Contact{{Point: mid, Penetration: circle.radius - separation, id: edgeIndex}},
		}
	}

	d1 := center.Dist(v1)
	d2 := center.Dist(v2)
	var localNormal lin.Vec2
	var onCircleSurface bool

	switch {
	case center.Sub(v1).Dot(v2.Sub(v1)) <= 0:
		if d1 > circle.radius {
			return nil
		}
		localNormal = center.Sub(v1)
		onCircleSurface = true
	case center.Sub(v2).Dot(v1.Sub(v2)) <= 0:
		if d2 > circle.radius {
			return nil
		}
		localNormal = center.Sub(v2)
		onCircleSurface = true
	default:
		localNormal = poly.normals[edgeIndex]
		if center.Sub(v1).Dot(localNormal) > circle.radius {
			return nil
		}
	}

	var unitNormal lin.Vec2
	var penetration float32
	if onCircleSurface {
		length := localNormal.Len()
		if length == 0 {
			unitNormal = poly.normals[edgeIndex]
			penetration = circle.radius
		} else {
			unitNormal = localNormal.Scale(1 / length)
			penetration = circle.radius - length
		}
	} else {
		unitNormal = localNormal
		penetration = circle.radius - separation
	}

	worldNormal := tPoly.Rotate(unitNormal)
	point := tCircle.Position.Sub(worldNormal.Scale(circle.radius))
	return &Manifold{
		BodyA: aIdx, BodyB: bIdx, Normal: worldNormal,
		Points: []Contact{{Point: point, Penetration: penetration, id: edgeIndex}},
	}
}

// collidePolygons runs the Separating Axis Theorem over both polygons'
// face normals, then clips the incident edge against the reference
// edge's side planes (Sutherland-Hodgman) to produce up to two contact
// points.
func collidePolygons(aIdx, bIdx int, a *Polygon, ta *lin.Transform, b *Polygon, tb *lin.Transform) *Manifold {
	sepA, edgeA := findMaxSeparation(a, ta, b, tb)
	if sepA >= 0 {
		return nil
	}
	sepB, edgeB := findMaxSeparation(b, tb, a, ta)
	if sepB >= 0 {
		return nil
	}

	var ref, inc *Polygon
	var tRef, tInc *lin.Transform
	var refIndex int
	var flip bool
	const tol = 0.95

	if sepB > sepA*tol+0.001*lin.Epsilon {
		ref, tRef, refIndex = b, tb, edgeB
		inc, tInc = a, ta
		flip = true
	} else {
		ref, tRef, refIndex = a, ta, edgeA
		inc, tInc = b, tb
		flip = false
	}

	incidentEdge := findIncidentEdge(ref, tRef, refIndex, inc, tInc)

	n, m := len(ref.vertices), len(inc.vertices)
	// normals[i] is the normal of the edge ending at vertices[i], so the
	// face for refIndex spans vertices[refIndex-1] to vertices[refIndex].
	v1 := tRef.Apply(ref.vertices[(refIndex-1+n)%n])
	v2 := tRef.Apply(ref.vertices[refIndex])
	refEdge := v2.Sub(v1).Unit()
	refNormal := tRef.Rotate(ref.normals[refIndex])

	incident := [2]lin.Vec2{
		tInc.Apply(inc.vertices[(incidentEdge-1+m)%m]),
		tInc.Apply(inc.vertices[incidentEdge]),
	}

	clip1, ok := clipSegment(incident, refEdge.Neg(), -refEdge.Dot(v1))
	if !ok {
		return nil
	}
	clip2, ok := clipSegment(clip1, refEdge, refEdge.Dot(v2))
	if !ok {
		return nil
	}

	refFaceSep := refNormal.Dot(v1)
	points := make([]Contact, 0, 2)
	for i, p := range clip2 {
		separation := refNormal.Dot(p) - refFaceSep
		if separation <= 0 {
			points = append(points, Contact{
				Point:       p,
				Penetration: -separation,
				id:          MaxVertexCount*incidentEdge + i,
			})
		}
	}
	if len(points) == 0 {
		return nil
	}

	// refNormal points away from the reference polygon; when that is b,
	// negate it so the normal still points from a to b.
	normal := refNormal
	if flip {
		normal = normal.Neg()
	}
	return &Manifold{BodyA: aIdx, BodyB: bIdx, Normal: normal, Points: points}
}

// findMaxSeparation returns the largest separation of b from any face
// of a, and the index of the face that produced it. A positive result
// means the polygons are definitely not overlapping along that axis.
func findMaxSeparation(a *Polygon, ta *lin.Transform, b *Polygon, tb *lin.Transform) (float32, int) {
	best := -lin.Large
	bestIndex := 0
	for i, v := range a.vertices {
		normal := a.normals[i]
		worldNormal := ta.Rotate(normal)
		worldVertex := ta.Apply(v)

		min := lin.Large
		for _, bv := range b.vertices {
			d := worldNormal.Dot(tb.Apply(bv).Sub(worldVertex))
			if d < min {
				min = d
			}
		}
		if min > best {
			best = min
			bestIndex = i
		}
	}
	return best, bestIndex
}

// findIncidentEdge returns the index of inc's edge whose normal is most
// anti-parallel to the reference polygon's refIndex-th face normal.
func findIncidentEdge(ref *Polygon, tRef *lin.Transform, refIndex int, inc *Polygon, tInc *lin.Transform) int {
	refNormal := tRef.Rotate(ref.normals[refIndex])

	best := lin.Large
	bestIndex := 0
	for i, n := range inc.normals {
		worldNormal := tInc.Rotate(n)
		d := refNormal.Dot(worldNormal)
		if d < best {
			best = d
			bestIndex = i
		}
	}
	return bestIndex
}

// clipSegment clips the segment v against the half-plane
// normal.Dot(p) <= offset, returning the clipped segment. ok is false
// if the whole segment falls outside the plane.
func clipSegment(v [2]lin.Vec2, normal lin.Vec2, offset float32) ([2]lin.Vec2, bool) {
	d0 := normal.Dot(v[0]) - offset
	d1 := normal.Dot(v[1]) - offset

	var out [2]lin.Vec2
	count := 0
	if d0 <= 0 {
		out[count] = v[0]
		count++
	}
	if d1 <= 0 {
		out[count] = v[1]
		count++
	}
	if d0*d1 < 0 {
		t := d0 / (d0 - d1)
		out[count] = v[0].Add(v[1].Sub(v[0]).Scale(t))
		count++
	}
	if count < 2 {
		return out, false
	}
	return out, true
}
