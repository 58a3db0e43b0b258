// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package physics is a real-time simulation of real-world physics.
// Physics applies simulated forces to virtual 2D objects known as bodies.
// Physics updates bodies positions and orientations based on forces and
// collisions with other bodies.
//
// Package physics ports the pipeline of the proxima 2D physics engine:
//
//	world.go       : world step/update loop, collision dispatch.
//	body.go        : rigid body state, mass/inertia resolution.
//	shape.go       : circle/polygon shapes, derived mass data.
//	material.go    : shape materials and their pairwise combine rules.
//	errors.go      : sentinel error values.
//	hull.go        : gift-wrapped convex hull construction.
//	aabb.go        : axis aligned bounding boxes.
//	spatialhash.go : uniform grid broad phase.
//	collision.go   : narrow phase manifold generation (SAT + clipping).
//	raycast.go     : ray vs shape intersection.
//	manifold.go    : contact manifolds and the persistent contact cache.
//	solver.go      : sequential impulse solver with warm-starting.
package physics

import "github.com/warrengalyen/proxima/math/lin"

// Tunable constants for the simulation. Names and default values come
// from the original engine this package was ported from.
const (
	// MaxVertexCount bounds the number of vertices a polygon shape may have.
	MaxVertexCount = 8

	// PixelsPerUnit converts between pixel coordinates, a convenience for
	// callers that think in screen pixels, and the simulation's own units.
	PixelsPerUnit float32 = 16.0

	// BaumgarteFactor scales how aggressively the solver's positional bias
	// corrects penetration each step.
	BaumgarteFactor float32 = 0.24

	// BaumgarteSlop is the penetration depth allowed to persist without
	// correction, avoiding jitter from resolving to exactly zero overlap.
	BaumgarteSlop float32 = 0.01

	// IterationCount is the number of sequential-impulse passes run over
	// the contact cache each step.
	IterationCount = 12

	// MaxBodyCount bounds how many bodies a single World may hold.
	MaxBodyCount = 4096
)

// DefaultGravity is the gravity vector used by NewWorld callers that do
// not supply their own.
var DefaultGravity = lin.Vec2{X: 0, Y: 9.8}

// PixelsToUnits converts a pixel measurement into simulation units.
func PixelsToUnits(pixels float32) float32 { return pixels / PixelsPerUnit }

// UnitsToPixels converts a simulation unit measurement into pixels.
func UnitsToPixels(units float32) float32 { return units * PixelsPerUnit }

// PixelsToUnitsVec converts a pixel-space vector into simulation units.
func PixelsToUnitsVec(p lin.Vec2) lin.Vec2 {
	return lin.Vec2{X: PixelsToUnits(p.X), Y: PixelsToUnits(p.Y)}
}

// UnitsToPixelsVec converts a simulation-unit vector into pixel space.
func UnitsToPixelsVec(u lin.Vec2) lin.Vec2 {
	return lin.Vec2{X: UnitsToPixels(u.X), Y: UnitsToPixels(u.Y)}
}
