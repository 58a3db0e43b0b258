// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"math"

	"github.com/warrengalyen/proxima/math/lin"
)

// ShapeType enumerates the shape variants handled by collision and by
// Shape.Type().
type ShapeType int

// Enumerate the shapes handled by physics.
const (
	CircleShapeType ShapeType = iota
	PolygonShapeType
)

func (t ShapeType) String() string {
	switch t {
	case CircleShapeType:
		return "circle"
	case PolygonShapeType:
		return "polygon"
	default:
		return "unknown"
	}
}

// Shape is a physics collision primitive in local space, centered at
// the origin. Combine a shape with a Transform to position it in world
// space. A Shape may be referenced by more than one Body; releasing a
// body never releases its shape.
type Shape interface {
	Type() ShapeType

	Material() Material
	SetMaterial(m Material)
	SetDensity(density float32)
	SetFriction(friction float32)
	SetRestitution(restitution float32)

	// Area, Mass and Inertia are cached at construction and whenever a
	// mutator invalidates them.
	Area() float32
	Mass() float32
	Inertia() float32

	// AABB returns the shape's axis aligned bounding box for the given
	// world transform.
	AABB(tx *lin.Transform) AABB
}

// Circle is a disc shape defined by a radius around the local origin.
type Circle struct {
	material Material
	radius   float32
	area     float32
	mass     float32
	inertia  float32
}

// NewCircle returns a Circle with the given material and radius.
// ErrInvalidRadius is returned, and a nil Circle, if radius is not
// positive.
func NewCircle(material Material, radius float32) (*Circle, error) {
	if radius <= 0 {
		return nil, ErrInvalidRadius
	}
	c := &Circle{material: material, radius: radius}
	c.computeMass()
	return c, nil
}

// Radius returns the circle's radius.
func (c *Circle) Radius() float32 { return c.radius }

// SetRadius updates the circle's radius and recomputes its cached mass
// data. A non-positive radius is ignored.
func (c *Circle) SetRadius(radius float32) {
	if radius <= 0 {
		return
	}
	c.radius = radius
	c.computeMass()
}

func (c *Circle) Type() ShapeType       { return CircleShapeType }
func (c *Circle) Material() Material    { return c.material }
func (c *Circle) Area() float32         { return c.area }
func (c *Circle) Mass() float32         { return c.mass }
func (c *Circle) Inertia() float32      { return c.inertia }
func (c *Circle) SetMaterial(m Material) {
	c.material = m
	c.computeMass()
}
func (c *Circle) SetDensity(d float32) {
	c.material.Density = clampNonNegative(d)
	c.computeMass()
}
func (c *Circle) SetFriction(f float32)    { c.material.Friction = clampNonNegative(f) }
func (c *Circle) SetRestitution(r float32) { c.material.Restitution = clampNonNegative(r) }

// computeMass derives area, mass and rotational inertia for a circle:
// area = pi*r^2, mass = density*area, inertia = 1/2*m*r^2.
func (c *Circle) computeMass() {
	c.area = math.Pi * c.radius * c.radius
	c.mass = c.material.Density * c.area
	c.inertia = 0.5 * c.mass * c.radius * c.radius
}

// AABB returns (center-r, center-r, 2r, 2r) at the transform's position.
func (c *Circle) AABB(tx *lin.Transform) AABB {
	d := c.radius * 2
	return AABB{X: tx.Position.X - c.radius, Y: tx.Position.Y - c.radius, Width: d, Height: d}
}

// Polygon is a convex polygon of between 3 and MaxVertexCount vertices.
// Normals[i] is the left unit normal of the edge from Vertices[i-1] to
// Vertices[i], and the vertices are wound so that every normal points
// outward (lin.CCW is negative for each consecutive triple).
type Polygon struct {
	material Material
	vertices []lin.Vec2
	normals  []lin.Vec2
	area     float32
	mass     float32
	inertia  float32
}

// NewPolygon builds a convex polygon from arbitrary input points by
// running them through a gift-wrapped convex hull sweep. Returns
// ErrInvalidVertexCount if fewer than 3 or more than MaxVertexCount
// points are supplied, or ErrDegenerateHull if no hull could be formed.
func NewPolygon(material Material, points []lin.Vec2) (*Polygon, error) {
	if len(points) < 3 || len(points) > MaxVertexCount {
		return nil, ErrInvalidVertexCount
	}
	hull, err := buildConvexHull(points)
	if err != nil {
		return nil, err
	}
	p := &Polygon{material: material}
	p.setVertices(hull)
	return p, nil
}

// NewRectangle returns an axis-aligned, origin-centered rectangle
// polygon with the given full width and height.
func NewRectangle(material Material, width, height float32) (*Polygon, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidVertexCount
	}
	hw, hh := width*0.5, height*0.5
	verts := []lin.Vec2{
		{X: -hw, Y: -hh},
		{X: -hw, Y: hh},
		{X: hw, Y: hh},
		{X: hw, Y: -hh},
	}
	p := &Polygon{material: material}
	p.setVertices(verts)
	return p, nil
}

// Vertices returns the polygon's local-space vertices, in the winding
// described on Polygon.
func (p *Polygon) Vertices() []lin.Vec2 { return p.vertices }

// Normals returns the left unit normal of each edge, aligned by index
// with Vertices.
func (p *Polygon) Normals() []lin.Vec2 { return p.normals }

// SetVertices re-hulls and replaces the polygon's vertices. Input
// outside [3, MaxVertexCount] is ignored.
func (p *Polygon) SetVertices(points []lin.Vec2) error {
	if len(points) < 3 || len(points) > MaxVertexCount {
		return ErrInvalidVertexCount
	}
	hull, err := buildConvexHull(points)
	if err != nil {
		return err
	}
	p.setVertices(hull)
	return nil
}

// SetRectangleDimensions replaces the polygon's vertices with an
// axis-aligned, origin-centered rectangle of the given full dimensions.
func (p *Polygon) SetRectangleDimensions(width, height float32) {
	if width <= 0 || height <= 0 {
		return
	}
	hw, hh := width*0.5, height*0.5
	p.setVertices([]lin.Vec2{
		{X: -hw, Y: -hh}, {X: -hw, Y: hh}, {X: hw, Y: hh}, {X: hw, Y: -hh},
	})
}

func (p *Polygon) setVertices(verts []lin.Vec2) {
	n := len(verts)
	// A hull from buildConvexHull is wound the other way round from
	// NewRectangle; reverse it so every left normal points outward.
	var signedArea float32
	for i := range verts {
		signedArea += verts[i].Cross(verts[(i+1)%n])
	}
	if signedArea > 0 {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			verts[i], verts[j] = verts[j], verts[i]
		}
	}
	p.vertices = verts
	p.normals = make([]lin.Vec2, len(verts))
	for i := range verts {
		prev := verts[(i-1+n)%n]
		edge := verts[i].Sub(prev)
		p.normals[i] = edge.LeftNormal()
	}
	p.computeMass()
}

func (p *Polygon) Type() ShapeType       { return PolygonShapeType }
func (p *Polygon) Material() Material    { return p.material }
func (p *Polygon) Area() float32         { return p.area }
func (p *Polygon) Mass() float32         { return p.mass }
func (p *Polygon) Inertia() float32      { return p.inertia }
func (p *Polygon) SetMaterial(m Material) {
	p.material = m
	p.computeMass()
}
func (p *Polygon) SetDensity(d float32) {
	p.material.Density = clampNonNegative(d)
	p.computeMass()
}
func (p *Polygon) SetFriction(f float32)    { p.material.Friction = clampNonNegative(f) }
func (p *Polygon) SetRestitution(r float32) { p.material.Restitution = clampNonNegative(r) }

// computeMass derives the polygon's area, mass and rotational inertia
// using a triangle fan from the origin. Area is the absolute value of
// half the sum of the cross products of consecutive fan edges; inertia
// is density * sum(cross*(a.a + a.b + b.b)) / (6 * sum(cross)) over the
// same fan, which is positive for either winding.
func (p *Polygon) computeMass() {
	var area, inertiaNumer float32
	for i := range p.vertices {
		a := p.vertices[i]
		b := p.vertices[(i+1)%len(p.vertices)]
		cross := a.Cross(b)
		area += cross * 0.5

		intx2 := a.X*a.X + a.X*b.X + b.X*b.X
		inty2 := a.Y*a.Y + a.Y*b.Y + b.Y*b.Y
		inertiaNumer += cross * (intx2 + inty2)
	}
	p.area = lin.Abs(area)
	p.mass = p.material.Density * p.area
	p.inertia = 0
	if area != 0 {
		// area is the signed fan sum here, so 6*sum(cross) == 12*area.
		p.inertia = p.material.Density * inertiaNumer / (12 * area)
	}
}

// AABB transforms every vertex and takes the component-wise min/max.
func (p *Polygon) AABB(tx *lin.Transform) AABB {
	min := tx.Apply(p.vertices[0])
	max := min
	for _, v := range p.vertices[1:] {
		w := tx.Apply(v)
		min = lin.Vec2{X: lin.Min(min.X, w.X), Y: lin.Min(min.Y, w.Y)}
		max = lin.Vec2{X: lin.Max(max.X, w.X), Y: lin.Max(max.Y, w.Y)}
	}
	return fromMinMax(min, max)
}

// ShapeRadius returns s's radius and true if s is a Circle, or (0,
// false) otherwise. Modeled on the source engine's "wrong-kind access
// returns zero" rule.
func ShapeRadius(s Shape) (float32, bool) {
	if c, ok := s.(*Circle); ok {
		return c.radius, true
	}
	return 0, false
}

// ShapeVertices returns s's local-space vertices and true if s is a
// Polygon, or (nil, false) otherwise.
func ShapeVertices(s Shape) ([]lin.Vec2, bool) {
	if p, ok := s.(*Polygon); ok {
		return p.vertices, true
	}
	return nil, false
}
