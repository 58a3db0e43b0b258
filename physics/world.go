// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"log/slog"

	"github.com/warrengalyen/proxima/math/lin"
)

// CollisionHandler is the capability a World dispatches to around each
// step's constraint resolution. It replaces the source engine's plain
// function-pointer-plus-context callback pair with a single interface
// the World stores and calls directly.
type CollisionHandler interface {
	// PreStep runs once per cached manifold before velocity integration.
	// Setting manifold.Points to nil cancels resolution for that pair
	// this step.
	PreStep(pair BodyPair, manifold *Manifold)

	// PostStep runs once per cached manifold after position integration.
	PostStep(pair BodyPair, manifold *Manifold)
}

// RaycastCallback receives one hit per body struck by a World.Raycast
// query. Returning false stops the query early.
type RaycastCallback func(hit RaycastHit) bool

// World owns a population of bodies and advances them under gravity and
// contact constraints. A World is not safe for concurrent use; a step
// is atomic from the caller's perspective.
type World struct {
	gravity lin.Vec2
	bodies  []*Body

	cellSize float32
	hash     *spatialHash
	cache    *ContactCache
	solver   *solver
	handler  CollisionHandler

	// accumulator and timestamp drive the fixed-step Update loop.
	accumulator  float32
	timestamp    float32
	timestampSet bool
}

// NewWorld returns an empty World using the given gravity and broad
// phase cell size. ErrInvalidCellSize is returned if cellSize is not
// positive.
func NewWorld(gravity lin.Vec2, cellSize float32) (*World, error) {
	hash, err := newSpatialHash(cellSize)
	if err != nil {
		return nil, err
	}
	return &World{
		gravity:  gravity,
		cellSize: cellSize,
		hash:     hash,
		cache:    newContactCache(),
		solver:   newSolver(),
	}, nil
}

// AddBody appends b to the world, returning its index. ErrWorldFull is
// returned if the world is already at MaxBodyCount.
func (w *World) AddBody(b *Body) (int, error) {
	if len(w.bodies) >= MaxBodyCount {
		return -1, ErrWorldFull
	}
	b.id = len(w.bodies)
	w.bodies = append(w.bodies, b)
	return b.id, nil
}

// RemoveBody removes the body at index using a swap-with-last so the
// operation is O(1); the body previously at the end takes over index's
// slot and its ID is updated to match. ErrBodyNotFound is returned for
// an out-of-range index.
//
// Removal must not be called from within a RaycastCallback: Raycast
// invokes it while walking the body indices of a spatial hash query, and
// removal invalidates those indices mid-iteration.
func (w *World) RemoveBody(index int) error {
	if index < 0 || index >= len(w.bodies) {
		return ErrBodyNotFound
	}
	last := len(w.bodies) - 1
	w.bodies[index] = w.bodies[last]
	w.bodies[index].id = index
	w.bodies[last] = nil
	w.bodies = w.bodies[:last]

	live := map[BodyPair]bool{}
	for pair := range w.cache.manifolds {
		if pair.A != index && pair.B != index && pair.A != last && pair.B != last {
			live[pair] = true
		}
	}
	w.cache.prune(live)
	return nil
}

// GetBody returns the body at index. ErrBodyNotFound is returned for an
// out-of-range index.
func (w *World) GetBody(index int) (*Body, error) {
	if index < 0 || index >= len(w.bodies) {
		return nil, ErrBodyNotFound
	}
	return w.bodies[index], nil
}

// BodyCount returns the number of live bodies in the world.
func (w *World) BodyCount() int { return len(w.bodies) }

// GetGravity returns the world's gravity vector.
func (w *World) GetGravity() lin.Vec2 { return w.gravity }

// SetGravity replaces the world's gravity vector.
func (w *World) SetGravity(gravity lin.Vec2) { w.gravity = gravity }

// SetCollisionHandler installs the capability invoked around each
// step's constraint resolution. A nil handler disables the callbacks.
func (w *World) SetCollisionHandler(handler CollisionHandler) { w.handler = handler }

// Clear removes every body and cached contact from the world, but keeps
// the world itself usable.
func (w *World) Clear() {
	w.bodies = w.bodies[:0]
	w.hash.clear()
	w.cache = newContactCache()
}

// Step advances the simulation by exactly dt seconds, running the full
// pre-step/integrate/solve/post-step pipeline once. dt <= 0 is a no-op.
func (w *World) Step(dt float32) {
	if dt <= 0 {
		return
	}

	w.preStep()

	if w.handler != nil {
		for pair, m := range w.cache.manifolds {
			w.handler.PreStep(pair, m)
		}
	}

	for _, b := range w.bodies {
		b.ApplyGravity(w.gravity)
		b.integrateVelocity(dt)
	}

	w.solver.solve(w.bodies, w.cache, dt)

	for _, b := range w.bodies {
		b.integratePosition(dt)
	}

	if w.handler != nil {
		for pair, m := range w.cache.manifolds {
			w.handler.PostStep(pair, m)
		}
	}

	for _, b := range w.bodies {
		b.ClearForces()
	}
	w.hash.clear()
}

// preStep rebuilds the broad phase from every body's current AABB, then
// narrow-phases every candidate pair it reports, reconciling the
// contact cache: pairs no longer touching are dropped, touching pairs
// get a fresh manifold with any carried-over warm-start impulses.
func (w *World) preStep() {
	for i, b := range w.bodies {
		w.hash.insert(i, b.AABB())
	}

	live := map[BodyPair]bool{}
	for _, pair := range w.hash.pairs() {
		a, b := w.bodies[pair.A], w.bodies[pair.B]
		if a.invMass+b.invMass <= 0 {
			continue // two bodies that can never move have nothing to resolve.
		}
		manifold := collide(a, b, pair.A, pair.B)
		if manifold == nil {
			continue
		}
		live[pair] = true
		w.cache.update(pair, manifold)
	}
	w.cache.prune(live)
}

// Update advances the simulation in fixed dt increments, accumulating
// the elapsed wall-clock time between calls and draining it in whole
// multiples of dt. now is the caller's monotonic clock reading, in
// seconds; the engine never sees wall-clock dt directly, only the fixed
// step size, so the simulation runs at a deterministic logical rate
// regardless of caller cadence.
func (w *World) Update(now float32, dt float32) {
	if dt <= 0 {
		return
	}
	if !w.timestampSet {
		w.timestamp = now
		w.timestampSet = true
		return
	}

	elapsed := now - w.timestamp
	w.timestamp = now
	if elapsed < 0 {
		slog.Warn("physics: clock went backwards", "elapsed", elapsed)
		return
	}
	w.accumulator += elapsed

	for w.accumulator >= dt {
		w.Step(dt)
		w.accumulator -= dt
	}
}

// Raycast queries every body in the world for intersection with ray,
// up to maxDistance, invoking callback once per hit in no particular
// order. The broad phase used here is a scratch hash, separate from the
// one reused across Step calls, so a Raycast is safe to call between
// steps but is not reentrant with an in-progress Step.
func (w *World) Raycast(r Ray, maxDistance float32, callback RaycastCallback) {
	scratch, err := newSpatialHash(w.cellSize)
	if err != nil {
		return
	}
	for i, b := range w.bodies {
		scratch.insert(i, b.AABB())
	}

	end := r.Origin.Add(r.Direction.Scale(maxDistance))
	travel := fromMinMax(
		lin.Vec2{X: lin.Min(r.Origin.X, end.X), Y: lin.Min(r.Origin.Y, end.Y)},
		lin.Vec2{X: lin.Max(r.Origin.X, end.X), Y: lin.Max(r.Origin.Y, end.Y)},
	)

	for _, idx := range scratch.query(travel) {
		b := w.bodies[idx]
		hit, ok := castRayShape(r, b.shape, &b.transform, maxDistance)
		if !ok {
			continue
		}
		hit.Body = idx
		if !callback(hit) {
			return
		}
	}
}
