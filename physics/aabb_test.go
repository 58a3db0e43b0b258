// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"testing"

	"github.com/warrengalyen/proxima/math/lin"
)

func TestAABBOverlaps(t *testing.T) {
	a := AABB{X: 0, Y: 0, Width: 2, Height: 2}
	b := AABB{X: 1, Y: 1, Width: 2, Height: 2}
	if !a.Overlaps(b) {
		t.Error("expected overlap")
	}
	c := AABB{X: 5, Y: 5, Width: 1, Height: 1}
	if a.Overlaps(c) {
		t.Error("expected no overlap")
	}
}

func TestAABBContains(t *testing.T) {
	a := AABB{X: 0, Y: 0, Width: 4, Height: 4}
	if !a.Contains(lin.Vec2{X: 2, Y: 2}) {
		t.Error("expected point to be contained")
	}
	if a.Contains(lin.Vec2{X: 5, Y: 5}) {
		t.Error("expected point to not be contained")
	}
}

func TestAABBUnion(t *testing.T) {
	a := AABB{X: 0, Y: 0, Width: 2, Height: 2}
	b := AABB{X: 3, Y: -1, Width: 1, Height: 1}
	u := a.Union(b)
	want := AABB{X: 0, Y: -1, Width: 4, Height: 3}
	if u != want {
		t.Errorf("Union got %+v, want %+v", u, want)
	}
}

func TestFromMinMaxOrdersCorners(t *testing.T) {
	box := fromMinMax(lin.Vec2{X: 3, Y: 3}, lin.Vec2{X: 1, Y: 1})
	want := AABB{X: 1, Y: 1, Width: 2, Height: 2}
	if box != want {
		t.Errorf("fromMinMax got %+v, want %+v", box, want)
	}
}

func TestAABBEmpty(t *testing.T) {
	if !(AABB{}).Empty() {
		t.Error("zero-value AABB should be empty")
	}
	if (AABB{Width: 1, Height: 1}).Empty() {
		t.Error("unit AABB should not be empty")
	}
}
