// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "github.com/warrengalyen/proxima/math/lin"

// BodyType controls how a Body responds to forces and collisions.
type BodyType int

// Enumerate the kinds of bodies a World can hold.
const (
	// StaticBody never moves and has infinite mass. Typically used for
	// ground and walls.
	StaticBody BodyType = iota

	// KinematicBody is moved directly by the application, ignores forces
	// and gravity, but still pushes dynamic bodies it touches.
	KinematicBody

	// DynamicBody is fully simulated: affected by forces, gravity and
	// collisions with every other body type.
	DynamicBody
)

// BodyFlags are per-body overrides layered on top of BodyType.
type BodyFlags int

// Enumerate the per-body mass overrides.
const (
	// FlagInfiniteMass pins a dynamic body's linear mass to infinite,
	// useful for an object that should push but never be pushed.
	FlagInfiniteMass BodyFlags = 1 << iota

	// FlagInfiniteInertia pins a dynamic body's rotational inertia to
	// infinite, preventing collisions from ever spinning it.
	FlagInfiniteInertia
)

// Body is a single rigid object tracked by a World. Bodies are created
// with NewBody and are always added to exactly one World via
// World.AddBody.
type Body struct {
	id    int
	shape Shape
	kind  BodyType
	flags BodyFlags

	transform lin.Transform

	linearVelocity  lin.Vec2
	angularVelocity float32
	force           lin.Vec2
	torque          float32

	linearDamping  float32
	angularDamping float32
	gravityScale   float32

	mass       float32
	invMass    float32
	inertia    float32
	invInertia float32

	aabb      AABB
	aabbDirty bool

	userData any
}

// NewBody constructs a Body of the given kind around shape, positioned
// at position with the given angle in radians. ErrNilShape is returned,
// with a nil Body, if shape is nil.
func NewBody(kind BodyType, shape Shape, position lin.Vec2, angle float32) (*Body, error) {
	if shape == nil {
		return nil, ErrNilShape
	}
	b := &Body{
		id:           -1,
		shape:        shape,
		kind:         kind,
		transform:    *lin.NewTransformAt(position, angle),
		gravityScale: 1,
		aabbDirty:    true,
	}
	b.resolveMass()
	return b, nil
}

// ID returns the body's index within its World, or -1 if it has not
// been added to one.
func (b *Body) ID() int { return b.id }

// Type returns the body's motion kind.
func (b *Body) Type() BodyType { return b.kind }

// SetType changes the body's motion kind and re-resolves its mass data:
// static and kinematic bodies always carry infinite mass and inertia.
func (b *Body) SetType(kind BodyType) {
	b.kind = kind
	b.resolveMass()
}

// Flags returns the body's mass override flags.
func (b *Body) Flags() BodyFlags { return b.flags }

// SetFlags replaces the body's mass override flags and re-resolves mass.
func (b *Body) SetFlags(flags BodyFlags) {
	b.flags = flags
	b.resolveMass()
}

// Shape returns the body's collision shape.
func (b *Body) Shape() Shape { return b.shape }

// SetShape replaces the body's collision shape and re-resolves mass
// data and the cached AABB. ErrNilShape is returned if shape is nil.
func (b *Body) SetShape(shape Shape) error {
	if shape == nil {
		return ErrNilShape
	}
	b.shape = shape
	b.resolveMass()
	b.aabbDirty = true
	return nil
}

// Transform returns the body's current position and orientation.
func (b *Body) Transform() lin.Transform { return b.transform }

// Position returns the body's current position.
func (b *Body) Position() lin.Vec2 { return b.transform.Position }

// Angle returns the body's current orientation in radians.
func (b *Body) Angle() float32 { return b.transform.Angle() }

// SetTransform moves the body directly, bypassing integration. Intended
// for teleporting a body or for a kinematic body driven by the
// application.
func (b *Body) SetTransform(position lin.Vec2, angle float32) {
	b.transform.SetPosition(position)
	b.transform.SetAngle(angle)
	b.aabbDirty = true
}

// LinearVelocity returns the body's current linear velocity.
func (b *Body) LinearVelocity() lin.Vec2 { return b.linearVelocity }

// SetLinearVelocity directly sets the body's linear velocity.
func (b *Body) SetLinearVelocity(v lin.Vec2) { b.linearVelocity = v }

// AngularVelocity returns the body's current angular velocity in
// radians per second.
func (b *Body) AngularVelocity() float32 { return b.angularVelocity }

// SetAngularVelocity directly sets the body's angular velocity.
func (b *Body) SetAngularVelocity(w float32) { b.angularVelocity = w }

// ApplyForce accumulates a force acting through the body's center of
// mass, to be integrated on the next World.Step.
func (b *Body) ApplyForce(force lin.Vec2) { b.force = b.force.Add(force) }

// ApplyTorque accumulates a torque, to be integrated on the next
// World.Step.
func (b *Body) ApplyTorque(torque float32) { b.torque += torque }

// ApplyImpulse applies an instantaneous change in momentum at point,
// given in world space, immediately updating velocity and angular
// velocity.
func (b *Body) ApplyImpulse(impulse lin.Vec2, point lin.Vec2) {
	b.linearVelocity = b.linearVelocity.Add(impulse.Scale(b.invMass))
	r := point.Sub(b.transform.Position)
	b.angularVelocity += b.invInertia * r.Cross(impulse)
}

// ClearForces resets accumulated force and torque. Called once per
// World.Step after integration.
func (b *Body) ClearForces() {
	b.force = lin.Vec2{}
	b.torque = 0
}

// ApplyGravity accumulates gravity, scaled by the body's mass and
// gravity scale, as a force. World.Step calls this once per body before
// integrating velocity; exposed so a caller can drive a body outside
// the normal step loop.
func (b *Body) ApplyGravity(gravity lin.Vec2) {
	b.ApplyForce(gravity.Scale(b.gravityScale * b.mass))
}

// ContainsPoint reports whether point, given in world space, lies
// within the body's shape.
func (b *Body) ContainsPoint(point lin.Vec2) bool {
	local := b.transform.ApplyInverse(point)
	switch s := b.shape.(type) {
	case *Circle:
		return local.LenSqr() <= s.radius*s.radius
	case *Polygon:
		for i, v := range s.vertices {
			if s.normals[i].Dot(local.Sub(v)) > 0 {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Mass returns the body's mass, or zero for a static or kinematic body.
func (b *Body) Mass() float32 { return b.mass }

// InverseMass returns the reciprocal of Mass, or zero for a body with
// infinite mass.
func (b *Body) InverseMass() float32 { return b.invMass }

// Inertia returns the body's rotational inertia about its center of mass.
func (b *Body) Inertia() float32 { return b.inertia }

// InverseInertia returns the reciprocal of Inertia, or zero for a body
// with infinite inertia.
func (b *Body) InverseInertia() float32 { return b.invInertia }

// SetLinearDamping sets the fraction of linear velocity removed each
// second, clamped to non-negative.
func (b *Body) SetLinearDamping(damping float32) { b.linearDamping = clampNonNegative(damping) }

// SetAngularDamping sets the fraction of angular velocity removed each
// second, clamped to non-negative.
func (b *Body) SetAngularDamping(damping float32) { b.angularDamping = clampNonNegative(damping) }

// SetGravityScale scales how much of the World's gravity this body
// feels; 0 disables gravity for the body, negative values invert it.
func (b *Body) SetGravityScale(scale float32) { b.gravityScale = scale }

// UserData returns the opaque value previously set with SetUserData.
func (b *Body) UserData() any { return b.userData }

// SetUserData attaches an opaque value to the body, for the caller's
// own bookkeeping.
func (b *Body) SetUserData(data any) { b.userData = data }

// AABB returns the body's world-space bounding box, recomputing it if
// the body moved or its shape changed since the last call.
func (b *Body) AABB() AABB {
	if b.aabbDirty {
		b.aabb = b.shape.AABB(&b.transform)
		b.aabbDirty = false
	}
	return b.aabb
}

// resolveMass derives mass and inertia from the shape and material,
// honoring BodyType and BodyFlags overrides. Static and kinematic
// bodies always carry infinite mass and inertia regardless of flags.
func (b *Body) resolveMass() {
	if b.kind != DynamicBody {
		b.mass, b.invMass = 0, 0
		b.inertia, b.invInertia = 0, 0
		return
	}

	b.mass = b.shape.Mass()
	b.inertia = b.shape.Inertia()

	if b.flags&FlagInfiniteMass != 0 || b.mass <= 0 {
		b.invMass = 0
	} else {
		b.invMass = 1 / b.mass
	}
	if b.flags&FlagInfiniteInertia != 0 || b.inertia <= 0 {
		b.invInertia = 0
	} else {
		b.invInertia = 1 / b.inertia
	}
}

// integrateVelocity folds the body's accumulated force and torque into
// its velocity over dt: v += (force * invMass) * dt;
// omega += (torque * invInertia) * dt. A no-op for a body with infinite
// mass (static, or flagged), matching gravity and applied forces having
// no effect on it. Damping, if set, is applied after the force
// integration.
func (b *Body) integrateVelocity(dt float32) {
	if b.invMass <= 0 || dt <= 0 {
		return
	}
	b.linearVelocity = b.linearVelocity.Add(b.force.Scale(b.invMass * dt))
	b.angularVelocity += b.torque * b.invInertia * dt

	if b.linearDamping > 0 {
		b.linearVelocity = b.linearVelocity.Scale(lin.Pow(1-b.linearDamping, dt))
	}
	if b.angularDamping > 0 {
		b.angularVelocity *= lin.Pow(1-b.angularDamping, dt)
	}
}

// integratePosition advances the body's transform by its current
// velocity over dt: position += v * dt; angle += omega * dt, normalized
// to [0, 2*PI). A no-op for a static body or dt <= 0.
func (b *Body) integratePosition(dt float32) {
	if b.kind == StaticBody || dt <= 0 {
		return
	}
	pos := b.transform.Position.Add(b.linearVelocity.Scale(dt))
	b.transform.SetPosition(pos)
	b.transform.SetAngle(b.transform.Angle() + b.angularVelocity*dt)
	b.aabbDirty = true
}
