// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "github.com/warrengalyen/proxima/math/lin"

// solver resolves a step's contact manifolds into velocity changes
// using sequential impulses: each contact's normal and friction
// constraint is solved in isolation, in turn, and the pass is repeated
// IterationCount times so the constraints converge toward a mutually
// consistent solution, a scaled-down Gauss-Seidel pass over the
// contact equations rather than building and inverting the full
// constraint matrix.
type solver struct{}

func newSolver() *solver { return &solver{} }

// solve applies one step's worth of resolution to every manifold
// currently in cache: reapply last tick's cached impulses (warm start),
// then run IterationCount passes of direct impulse resolution.
func (s *solver) solve(bodies []*Body, cache *ContactCache, dt float32) {
	inverseDt := float32(0)
	if dt > 0 {
		inverseDt = 1 / dt
	}

	for _, m := range cache.manifolds {
		warmStart(bodies[m.BodyA], bodies[m.BodyB], m)
	}
	for i := 0; i < IterationCount; i++ {
		for _, m := range cache.manifolds {
			resolveCollision(bodies[m.BodyA], bodies[m.BodyB], m, inverseDt)
		}
	}
}

// warmStart applies each contact's impulse scalars carried over from
// the previous step, matched onto this step's manifold by contact id in
// ContactCache.update, so a resting stack starts already near
// equilibrium instead of from zero.
func warmStart(a, b *Body, m *Manifold) {
	for i := range m.Points {
		p := &m.Points[i]
		if p.normalImpulse == 0 && p.tangentImpulse == 0 {
			continue
		}
		tangent := lin.Vec2{X: m.Normal.Y, Y: -m.Normal.X}
		impulse := m.Normal.Scale(p.normalImpulse).Add(tangent.Scale(p.tangentImpulse))
		rA := p.Point.Sub(a.transform.Position)
		rB := p.Point.Sub(b.transform.Position)
		applyImpulse(a, impulse.Neg(), rA)
		applyImpulse(b, impulse, rB)
	}
}

// resolveCollision resolves every contact point in m between a and b
// for one solver iteration.
func resolveCollision(a, b *Body, m *Manifold, inverseDt float32) {
	if a.invMass+b.invMass <= 0 {
		if a.kind == StaticBody {
			a.linearVelocity, a.angularVelocity = lin.Vec2{}, 0
		}
		if b.kind == StaticBody {
			b.linearVelocity, b.angularVelocity = lin.Vec2{}, 0
		}
		return
	}

	friction := m.Friction
	restitution := m.Restitution

	for i := range m.Points {
		p := &m.Points[i]
		rA := p.Point.Sub(a.transform.Position)
		rB := p.Point.Sub(b.transform.Position)

		relVelocity := relativeVelocityAt(b, rB, a, rA)
		vn := relVelocity.Dot(m.Normal)
		if vn >= 0 {
			continue // separating or at rest relative to each other.
		}

		crossA := rA.Cross(m.Normal)
		crossB := rB.Cross(m.Normal)
		normalMass := a.invMass + b.invMass + a.invInertia*crossA*crossA + b.invInertia*crossB*crossB
		if normalMass <= 0 {
			continue
		}

		bias := -(BaumgarteFactor * inverseDt) * lin.Min(0, -p.Penetration+BaumgarteSlop)
		normalScalar := (-(1+restitution)*vn + bias) / normalMass
		p.normalImpulse = normalScalar

		normalImpulse := m.Normal.Scale(normalScalar)
		applyImpulse(a, normalImpulse.Neg(), rA)
		applyImpulse(b, normalImpulse, rB)

		relVelocity = relativeVelocityAt(b, rB, a, rA)
		tangent := lin.Vec2{X: m.Normal.Y, Y: -m.Normal.X}

		crossA = rA.Cross(tangent)
		crossB = rB.Cross(tangent)
		tangentMass := a.invMass + b.invMass + a.invInertia*crossA*crossA + b.invInertia*crossB*crossB
		if tangentMass <= 0 {
			continue
		}

		tangentScalar := -relVelocity.Dot(tangent) / tangentMass
		maxTangent := friction * normalScalar
		tangentScalar = lin.Clamp(tangentScalar, -maxTangent, maxTangent)
		p.tangentImpulse = tangentScalar

		tangentImpulse := tangent.Scale(tangentScalar)
		applyImpulse(a, tangentImpulse.Neg(), rA)
		applyImpulse(b, tangentImpulse, rB)
	}
}

// relativeVelocityAt returns the velocity of point rB on b relative to
// point rA on a, both moment arms measured from their body's center.
// The rotational contribution is the unit left normal of the moment arm
// scaled by angular velocity, matching the source engine's formula.
func relativeVelocityAt(b *Body, rB lin.Vec2, a *Body, rA lin.Vec2) lin.Vec2 {
	vb := b.linearVelocity.Add(rB.LeftNormal().Scale(b.angularVelocity))
	va := a.linearVelocity.Add(rA.LeftNormal().Scale(a.angularVelocity))
	return vb.Sub(va)
}

func applyImpulse(b *Body, impulse lin.Vec2, r lin.Vec2) {
	b.linearVelocity = b.linearVelocity.Add(impulse.Scale(b.invMass))
	b.angularVelocity += b.invInertia * r.Cross(impulse)
}
