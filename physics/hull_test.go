// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"errors"
	"testing"

	"github.com/warrengalyen/proxima/math/lin"
)

func TestBuildConvexHullSquare(t *testing.T) {
	points := []lin.Vec2{{X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1}}
	hull, err := buildConvexHull(points)
	if err != nil {
		t.Fatalf("buildConvexHull returned %v", err)
	}
	if len(hull) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(hull))
	}
	n := len(hull)
	for i := 0; i < n; i++ {
		c := lin.CCW(hull[i], hull[(i+1)%n], hull[(i+2)%n])
		if c < 0 {
			t.Errorf("hull is not counter-clockwise at vertex %d", i)
		}
	}
}

// An interior point should never survive the sweep.
func TestBuildConvexHullDropsInteriorPoint(t *testing.T) {
	points := []lin.Vec2{
		{X: 2, Y: 0}, {X: 0, Y: 2}, {X: -2, Y: 0}, {X: 0, Y: -2},
		{X: 0, Y: 0},
	}
	hull, err := buildConvexHull(points)
	if err != nil {
		t.Fatalf("buildConvexHull returned %v", err)
	}
	for _, v := range hull {
		if v == (lin.Vec2{X: 0, Y: 0}) {
			t.Error("interior point survived the hull sweep")
		}
	}
	if len(hull) != 4 {
		t.Errorf("expected 4 vertices, got %d", len(hull))
	}
}

// Colinear points along the bottom edge of a box: the hull should advance
// to the farther of the two, not stall on the nearer one.
func TestBuildConvexHullColinearTieBreak(t *testing.T) {
	points := []lin.Vec2{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 2, Y: 2}, {X: 0, Y: 2},
	}
	hull, err := buildConvexHull(points)
	if err != nil {
		t.Fatalf("buildConvexHull returned %v", err)
	}
	for _, v := range hull {
		if v == (lin.Vec2{X: 1, Y: 0}) {
			t.Error("colinear midpoint should have been skipped")
		}
	}
	if len(hull) != 4 {
		t.Errorf("expected 4 vertices, got %d", len(hull))
	}
}

func TestBuildConvexHullTooFewPoints(t *testing.T) {
	if _, err := buildConvexHull([]lin.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}}); !errors.Is(err, ErrInvalidVertexCount) {
		t.Errorf("expected ErrInvalidVertexCount, got %v", err)
	}
}

func TestBuildConvexHullStartsFromLowestX(t *testing.T) {
	points := []lin.Vec2{{X: 3, Y: 0}, {X: -4, Y: 1}, {X: 0, Y: 3}, {X: 0, Y: -3}}
	hull, err := buildConvexHull(points)
	if err != nil {
		t.Fatalf("buildConvexHull returned %v", err)
	}
	if hull[0] != (lin.Vec2{X: -4, Y: 1}) {
		t.Errorf("hull should start at the lowest-x point, got %v", hull[0])
	}
}
