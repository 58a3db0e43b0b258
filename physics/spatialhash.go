// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "sort"

// BodyPair identifies two candidate bodies, by index into a World, that
// the broad phase thinks might be touching. A is always less than B.
type BodyPair struct {
	A, B int
}

func newBodyPair(a, b int) BodyPair {
	if a > b {
		a, b = b, a
	}
	return BodyPair{A: a, B: b}
}

// spatialHash is a uniform grid broad phase: bodies are inserted into
// every cell their AABB overlaps, and candidate pairs are read back out
// as the set of bodies sharing at least one cell. It is rebuilt every
// step rather than updated incrementally, which keeps it simple at the
// body counts this package targets.
type spatialHash struct {
	cellSize float32
	cells    map[cellKey][]int
	seen     map[BodyPair]bool
}

type cellKey struct{ x, y int32 }

// newSpatialHash returns an empty grid with the given cell size.
// ErrInvalidCellSize is returned if cellSize is not positive.
func newSpatialHash(cellSize float32) (*spatialHash, error) {
	if cellSize <= 0 {
		return nil, ErrInvalidCellSize
	}
	return &spatialHash{
		cellSize: cellSize,
		cells:    make(map[cellKey][]int),
		seen:     make(map[BodyPair]bool),
	}, nil
}

// clear empties the grid so it can be reused for the next step.
func (h *spatialHash) clear() {
	for k := range h.cells {
		delete(h.cells, k)
	}
	for k := range h.seen {
		delete(h.seen, k)
	}
}

func (h *spatialHash) cellCoord(v float32) int32 {
	// floor division so that negative coordinates hash consistently.
	q := v / h.cellSize
	c := int32(q)
	if q < 0 && float32(c) != q {
		c--
	}
	return c
}

// insert adds body index idx, with the given world-space AABB, to every
// cell the box overlaps. An empty box is not inserted.
func (h *spatialHash) insert(idx int, box AABB) {
	if box.Empty() {
		return
	}
	minX, minY := h.cellCoord(box.X), h.cellCoord(box.Y)
	maxX, maxY := h.cellCoord(box.X+box.Width), h.cellCoord(box.Y+box.Height)
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			key := cellKey{x, y}
			h.cells[key] = append(h.cells[key], idx)
		}
	}
}

// pairs returns the deduplicated set of candidate body-index pairs
// sharing at least one cell.
func (h *spatialHash) pairs() []BodyPair {
	result := make([]BodyPair, 0, len(h.seen))
	for _, bucket := range h.cells {
		for i := 0; i < len(bucket); i++ {
			for j := i + 1; j < len(bucket); j++ {
				pair := newBodyPair(bucket[i], bucket[j])
				if pair.A == pair.B || h.seen[pair] {
					continue
				}
				h.seen[pair] = true
				result = append(result, pair)
			}
		}
	}
	return result
}

// query returns every body index whose cell overlaps box, deduplicated
// and in ascending order.
func (h *spatialHash) query(box AABB) []int {
	minX, minY := h.cellCoord(box.X), h.cellCoord(box.Y)
	maxX, maxY := h.cellCoord(box.X+box.Width), h.cellCoord(box.Y+box.Height)
	found := map[int]bool{}
	result := []int{}
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for _, idx := range h.cells[cellKey{x, y}] {
				if !found[idx] {
					found[idx] = true
					result = append(result, idx)
				}
			}
		}
	}
	sort.Ints(result)
	return result
}
