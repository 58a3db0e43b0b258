// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "errors"

// Errors returned by the constructors and mutators in this package. None
// of these panic: invalid input is always reported through a return value
// so that an embedding application can decide how to react.
var (
	// ErrInvalidRadius is returned when a circle's radius is not positive.
	ErrInvalidRadius = errors.New("physics: radius must be positive")

	// ErrInvalidVertexCount is returned when a polygon is built from fewer
	// than 3 or more than MaxVertexCount points.
	ErrInvalidVertexCount = errors.New("physics: polygon needs between 3 and 8 vertices")

	// ErrDegenerateHull is returned when the convex hull sweep could not
	// find a valid closed polygon in the supplied points.
	ErrDegenerateHull = errors.New("physics: points do not form a polygon")

	// ErrInvalidCellSize is returned when a spatial hash is constructed
	// with a non-positive cell size.
	ErrInvalidCellSize = errors.New("physics: cell size must be positive")

	// ErrWorldFull is returned by World.AddBody when the world is already
	// at MaxBodyCount.
	ErrWorldFull = errors.New("physics: world is at capacity")

	// ErrBodyNotFound is returned by World.RemoveBody and World.GetBody
	// when the index does not refer to a live body.
	ErrBodyNotFound = errors.New("physics: body not found")

	// ErrNilShape is returned when a body is constructed from a nil shape.
	ErrNilShape = errors.New("physics: shape is nil")
)
