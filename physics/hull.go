// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "github.com/warrengalyen/proxima/math/lin"

// buildConvexHull reduces an arbitrary point set to its counter-clockwise
// convex hull using a gift-wrap (Jarvis march) sweep: starting from the
// lowest-x point, repeatedly pick the point that keeps every other point
// to the left of the current edge.
//
// Colinear candidates are broken by distance: when two candidates lie on
// the same line from the current hull point, the farther of the two
// wins, so the sweep always advances along the outer boundary instead of
// stalling on an interior point that happens to share a direction.
func buildConvexHull(points []lin.Vec2) ([]lin.Vec2, error) {
	n := len(points)
	if n < 3 {
		return nil, ErrInvalidVertexCount
	}

	lowest := 0
	for i := 1; i < n; i++ {
		if points[lowest].X > points[i].X {
			lowest = i
		}
	}

	hull := make([]lin.Vec2, 0, MaxVertexCount)
	current := lowest
	next := -1
	for {
		hull = append(hull, points[current])
		next = (current + 1) % n
		for i := 0; i < n; i++ {
			if i == current || i == next {
				continue
			}
			c := lin.CCW(points[current], points[next], points[i])
			if c < 0 {
				next = i
			} else if c == 0 {
				toCandidate := points[current].DistSqr(points[i])
				toNext := points[current].DistSqr(points[next])
				if toCandidate > toNext {
					next = i
				}
			}
		}
		current = next
		if current == lowest {
			break
		}
		if len(hull) > MaxVertexCount {
			return nil, ErrDegenerateHull
		}
	}

	if len(hull) < 3 {
		return nil, ErrDegenerateHull
	}
	return hull, nil
}
