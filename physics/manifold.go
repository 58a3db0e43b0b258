// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "github.com/warrengalyen/proxima/math/lin"

// Contact is a single point of contact between two overlapping shapes,
// expressed in world space.
type Contact struct {
	Point       lin.Vec2
	Penetration float32

	// id identifies this point across steps so the solver can carry its
	// accumulated impulses forward (warm-starting) instead of resolving
	// every contact from rest each step.
	id int

	normalImpulse  float32
	tangentImpulse float32
}

// Manifold is the set of contact points generated by the narrow phase
// for one pair of overlapping bodies, along with the shared contact
// normal pointing from body A to body B and the pairwise material
// properties the solver resolves the contact with.
type Manifold struct {
	BodyA, BodyB int
	Normal       lin.Vec2
	Friction     float32
	Restitution  float32
	Points       []Contact
}

// ContactCache holds one Manifold per currently-touching body pair, and
// carries accumulated impulses from one step to the next so resting
// contacts (a box sitting on the ground) do not need to rebuild their
// impulses from zero every frame.
type ContactCache struct {
	manifolds map[BodyPair]*Manifold
}

func newContactCache() *ContactCache {
	return &ContactCache{manifolds: make(map[BodyPair]*Manifold)}
}

// update replaces the manifold for pair, carrying forward the
// accumulated normal and tangent impulse of any contact point whose id
// matches one from the previous step, and reusing the previous step's
// combined friction/restitution rather than the values collide just
// derived from the bodies' current materials.
func (c *ContactCache) update(pair BodyPair, fresh *Manifold) {
	if fresh == nil || len(fresh.Points) == 0 {
		delete(c.manifolds, pair)
		return
	}
	if prev, ok := c.manifolds[pair]; ok {
		fresh.Friction = prev.Friction
		fresh.Restitution = prev.Restitution
		for i := range fresh.Points {
			for _, old := range prev.Points {
				if old.id == fresh.Points[i].id {
					fresh.Points[i].normalImpulse = old.normalImpulse
					fresh.Points[i].tangentImpulse = old.tangentImpulse
					break
				}
			}
		}
	}
	c.manifolds[pair] = fresh
}

// prune drops any cached manifold whose pair is not present in live,
// called once per step after the broad phase has produced the current
// set of touching pairs.
func (c *ContactCache) prune(live map[BodyPair]bool) {
	for pair := range c.manifolds {
		if !live[pair] {
			delete(c.manifolds, pair)
		}
	}
}

// Manifolds returns every currently-touching pair's manifold. The
// returned slice is a snapshot; mutating it does not affect the cache.
func (c *ContactCache) Manifolds() []*Manifold {
	result := make([]*Manifold, 0, len(c.manifolds))
	for _, m := range c.manifolds {
		result = append(result, m)
	}
	return result
}
