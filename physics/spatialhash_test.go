// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"errors"
	"testing"
)

func TestNewSpatialHashInvalidCellSize(t *testing.T) {
	if _, err := newSpatialHash(0); !errors.Is(err, ErrInvalidCellSize) {
		t.Errorf("expected ErrInvalidCellSize, got %v", err)
	}
	if _, err := newSpatialHash(-1); !errors.Is(err, ErrInvalidCellSize) {
		t.Errorf("expected ErrInvalidCellSize, got %v", err)
	}
}

func TestSpatialHashPairsFindsOverlap(t *testing.T) {
	h, err := newSpatialHash(1)
	if err != nil {
		t.Fatalf("newSpatialHash returned %v", err)
	}
	h.insert(0, AABB{X: 0, Y: 0, Width: 1, Height: 1})
	h.insert(1, AABB{X: 0.5, Y: 0.5, Width: 1, Height: 1})
	h.insert(2, AABB{X: 100, Y: 100, Width: 1, Height: 1})

	pairs := h.pairs()
	if len(pairs) != 1 {
		t.Fatalf("expected 1 candidate pair, got %d: %v", len(pairs), pairs)
	}
	if pairs[0] != (BodyPair{A: 0, B: 1}) {
		t.Errorf("got %+v, want {0 1}", pairs[0])
	}
}

func TestSpatialHashPairsDeduplicates(t *testing.T) {
	h, _ := newSpatialHash(1)
	// a box spanning several cells should still only report each pair once.
	h.insert(0, AABB{X: 0, Y: 0, Width: 3, Height: 3})
	h.insert(1, AABB{X: 0, Y: 0, Width: 3, Height: 3})
	pairs := h.pairs()
	if len(pairs) != 1 {
		t.Errorf("expected exactly 1 pair after dedup, got %d", len(pairs))
	}
}

func TestSpatialHashNegativeCoordinates(t *testing.T) {
	h, _ := newSpatialHash(1)
	h.insert(0, AABB{X: -5, Y: -5, Width: 1, Height: 1})
	h.insert(1, AABB{X: -4.5, Y: -4.5, Width: 1, Height: 1})
	pairs := h.pairs()
	if len(pairs) != 1 {
		t.Errorf("expected bodies in neighboring negative cells to pair, got %d pairs", len(pairs))
	}
}

func TestSpatialHashQuery(t *testing.T) {
	h, _ := newSpatialHash(1)
	h.insert(0, AABB{X: 0, Y: 0, Width: 1, Height: 1})
	h.insert(1, AABB{X: 10, Y: 10, Width: 1, Height: 1})
	found := h.query(AABB{X: 0, Y: 0, Width: 1, Height: 1})
	if len(found) != 1 || found[0] != 0 {
		t.Errorf("query got %v, want [0]", found)
	}
}

func TestSpatialHashClear(t *testing.T) {
	h, _ := newSpatialHash(1)
	h.insert(0, AABB{X: 0, Y: 0, Width: 1, Height: 1})
	h.insert(1, AABB{X: 0, Y: 0, Width: 1, Height: 1})
	h.pairs()
	h.clear()
	if len(h.cells) != 0 || len(h.seen) != 0 {
		t.Error("clear should empty both cells and the dedup set")
	}
}

func TestNewBodyPairNormalizesOrder(t *testing.T) {
	if p := newBodyPair(5, 2); p != (BodyPair{A: 2, B: 5}) {
		t.Errorf("newBodyPair got %+v, want {2 5}", p)
	}
}
