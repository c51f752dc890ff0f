// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"math"
	"sync/atomic"

	"github.com/gazed/rigid2d/math/vec2"
)

// BodyID is a stable identifier for a Body, unique within the World
// that created it. The teacher (gazed-vu/physics/body.go) calls the
// equivalent field bid and packs it into the high bits of a pair key;
// rigid2d exports the type since callers reference bodies by id
// through the World facade rather than through a Body handle.
type BodyID uint32

// bodyUUID is a cheap, monotonically increasing id source, exactly as
// gazed-vu/physics/body.go's package-level bodyUUID counter. Atomics
// replace the teacher's mutex since a single counter op has no need
// for a full lock.
var bodyUUID uint32

func nextBodyID() BodyID {
	return BodyID(atomic.AddUint32(&bodyUUID, 1))
}

// Body is a convex polygon with mass, pose, and velocity. Bodies are
// created with NewBody, Rect, or Circle, then added to a World with
// World.AddBody. Once added, a Body's fields are owned by the World:
// external code should mutate it only through World methods so that
// the spatial index and collision pairs stay consistent.
type Body struct {
	id BodyID

	// rest is the body's local-frame shape: vertices centered on their
	// own area-weighted centroid, unrotated. vertices is rest rotated
	// by angle and translated by position — recomputed on every pose
	// change rather than derived lazily, matching the teacher's
	// always-current b.world transform.
	rest     []vec2.Vec2
	vertices []vec2.Vec2
	axes     []vec2.Vec2 // outward edge normals, unit length.

	position       vec2.Vec2
	angle          float32
	velocity       vec2.Vec2
	angularVelocity float32

	mass        float32
	inertia     float32
	invMass     float32
	invInertia  float32
	friction    float32
	restitution float32
	airFriction float32
	isStatic    bool

	bounds Bounds

	// gridCells are the spatial index cells this body currently
	// occupies, recorded here so removal/update from the grid is O(k)
	// in cells rather than a full-grid scan. Invariant: equals the set
	// the grid itself has the body's id filed under (P2).
	gridCells []uint64
}

// ID returns the body's stable identifier.
func (b *Body) ID() BodyID { return b.id }

// NewBody constructs a convex polygon body from a CCW vertex list
// (local, rest-frame coordinates) placed at position with the given
// orientation. vertices must have at least 3 entries and describe a
// convex, non-degenerate, counter-clockwise polygon; violations return
// an *Error with Kind InvalidGeometry. Options with invalid values
// (mass <= 0, friction/restitution outside [0,1]) return InvalidParameter.
func NewBody(vertices []vec2.Vec2, position vec2.Vec2, angle float32, opts ...BodyOption) (*Body, error) {
	cfg := bodyDefaults
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateBodyConfig(&cfg); err != nil {
		return nil, err
	}
	if err := validatePolygon(vertices); err != nil {
		return nil, err
	}

	centroid, area := polygonCentroidArea(vertices)
	rest := make([]vec2.Vec2, len(vertices))
	for i, v := range vertices {
		rest[i] = v.Sub(centroid)
	}

	b := &Body{
		id:          nextBodyID(),
		rest:        rest,
		vertices:    make([]vec2.Vec2, len(rest)),
		axes:        make([]vec2.Vec2, len(rest)),
		friction:    cfg.friction,
		restitution: cfg.restitution,
		airFriction: cfg.airFriction,
		isStatic:    cfg.isStatic,
	}

	if b.isStatic {
		b.mass, b.invMass = 0, 0
		b.inertia, b.invInertia = 0, 0 // inertia is a sentinel; never used directly for statics.
	} else {
		b.mass = cfg.mass
		b.invMass = 1 / cfg.mass
		b.inertia = polygonInertia(rest, cfg.mass, area)
		if b.inertia > 0 {
			b.invInertia = 1 / b.inertia
		}
	}

	b.position = position
	b.angle = angle
	b.recomputeVertices()
	return b, nil
}

// Rect builds a w x h rectangle body centered on its own centroid.
func Rect(w, h float32, position vec2.Vec2, angle float32, opts ...BodyOption) (*Body, error) {
	hw, hh := w/2, h/2
	verts := []vec2.Vec2{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}
	return NewBody(verts, position, angle, opts...)
}

// circleSegmentScale tunes how vertex count grows with radius for
// Circle's polygonal approximation (spec §4.3: "~round(radius^(1/3) * K)").
const circleSegmentScale = 3.5
const circleMinSegments = 8

// Circle builds a polygonal approximation of a circle of the given
// radius, with an angular offset of half a segment so a body resting
// on a flat floor has a flat-bottomed silhouette and can roll.
func Circle(radius float32, position vec2.Vec2, opts ...BodyOption) (*Body, error) {
	n := int(math.Round(float64(circleSegmentScale) * math.Cbrt(float64(radius))))
	if n < circleMinSegments {
		n = circleMinSegments
	}
	verts := make([]vec2.Vec2, n)
	offset := math.Pi / float64(n) // half a segment
	for i := 0; i < n; i++ {
		theta := offset + 2*math.Pi*float64(i)/float64(n)
		verts[i] = vec2.V(radius*float32(math.Cos(theta)), radius*float32(math.Sin(theta)))
	}
	return NewBody(verts, position, 0, opts...)
}

func validateBodyConfig(c *BodyConfig) error {
	if !c.isStatic && c.mass <= 0 {
		return errorf("NewBody", InvalidParameter, "mass must be > 0, got %v", c.mass)
	}
	if c.friction < 0 || c.friction > 1 {
		return errorf("NewBody", InvalidParameter, "friction must be in [0,1], got %v", c.friction)
	}
	if c.restitution < 0 || c.restitution > 1 {
		return errorf("NewBody", InvalidParameter, "restitution must be in [0,1], got %v", c.restitution)
	}
	if c.airFriction < 0 {
		return errorf("NewBody", InvalidParameter, "air friction must be >= 0, got %v", c.airFriction)
	}
	return nil
}

func validatePolygon(vertices []vec2.Vec2) error {
	if len(vertices) < 3 {
		return errorf("NewBody", InvalidGeometry, "need at least 3 vertices, got %d", len(vertices))
	}
	n := len(vertices)
	_, area := polygonCentroidArea(vertices)
	if vec2.ApproxZero(area) {
		return errorf("NewBody", InvalidGeometry, "polygon has zero area")
	}
	if area < 0 {
		return errorf("NewBody", InvalidGeometry, "vertices must be wound counter-clockwise")
	}
	for i := 0; i < n; i++ {
		a, b, c := vertices[i], vertices[(i+1)%n], vertices[(i+2)%n]
		cross := b.Sub(a).Cross(c.Sub(b))
		if cross < 0 {
			return errorf("NewBody", InvalidGeometry, "polygon is not convex at vertex %d", (i+1)%n)
		}
	}
	return nil
}

// polygonCentroidArea returns the signed area-weighted centroid and
// the signed area of a polygon. Positive area means CCW winding.
func polygonCentroidArea(vertices []vec2.Vec2) (vec2.Vec2, float32) {
	n := len(vertices)
	var area float32
	var cx, cy float32
	for i := 0; i < n; i++ {
		a, b := vertices[i], vertices[(i+1)%n]
		cr := a.Cross(b)
		area += cr
		cx += (a.X + b.X) * cr
		cy += (a.Y + b.Y) * cr
	}
	area /= 2
	if vec2.ApproxZero(area) {
		return vertices[0], 0
	}
	cx /= 6 * area
	cy /= 6 * area
	return vec2.V(cx, cy), area
}

// polygonInertia computes the moment of inertia about the centroid via
// the standard polygon formula from spec §4.3:
//
//	I = (m/6) * sum(|v[i+1] x v[i]| * (v[i+1].v[i+1] + v[i+1].v[i] + v[i].v[i])) / sum(|v[i+1] x v[i]|)
//
// vertices must already be centered on the centroid (rest-frame).
func polygonInertia(vertices []vec2.Vec2, mass, area float32) float32 {
	n := len(vertices)
	var numerator, denominator float32
	for i := 0; i < n; i++ {
		v0, v1 := vertices[i], vertices[(i+1)%n]
		cr := float32(math.Abs(float64(v1.Cross(v0))))
		numerator += cr * (v1.Dot(v1) + v1.Dot(v0) + v0.Dot(v0))
		denominator += cr
	}
	if vec2.ApproxZero(denominator) {
		return 0
	}
	return (mass / 6) * numerator / denominator
}

// recomputeVertices rebuilds vertices, axes, and bounds from rest,
// position, and angle. Called after every pose mutation.
func (b *Body) recomputeVertices() {
	n := len(b.rest)
	for i, r := range b.rest {
		b.vertices[i] = r.Rotate(b.angle).Add(b.position)
	}
	for i := 0; i < n; i++ {
		edge := b.vertices[(i+1)%n].Sub(b.vertices[i]).Normalize()
		b.axes[i] = edge.Perp()
	}
	b.bounds = boundsFromVertices(b.vertices)
}

// TranslatePosition adds delta to the body's position and every vertex.
func (b *Body) TranslatePosition(delta vec2.Vec2) {
	b.position = b.position.Add(delta)
	for i := range b.vertices {
		b.vertices[i] = b.vertices[i].Add(delta)
	}
	b.bounds = boundsFromVertices(b.vertices)
}

// SetPosition moves the body so its centroid is at p.
func (b *Body) SetPosition(p vec2.Vec2) {
	b.TranslatePosition(p.Sub(b.position))
}

// translateAngle rotates the body's vertices by delta radians about its
// position, recomputing axes and bounds. It does not update b.angle
// itself — the exported TranslateAngle (and SetAngle through it) records
// the new angle.
func (b *Body) translateAngle(delta float32) {
	for i, v := range b.vertices {
		b.vertices[i] = v.Sub(b.position).Rotate(delta).Add(b.position)
	}
	n := len(b.vertices)
	for i := 0; i < n; i++ {
		edge := b.vertices[(i+1)%n].Sub(b.vertices[i]).Normalize()
		b.axes[i] = edge.Perp()
	}
	b.bounds = boundsFromVertices(b.vertices)
}

// TranslateAngle rotates the body by delta radians about its position.
func (b *Body) TranslateAngle(delta float32) {
	b.translateAngle(delta)
	b.angle += delta
}

// SetAngle rotates the body to the absolute orientation a.
func (b *Body) SetAngle(a float32) {
	b.TranslateAngle(a - b.angle)
}

// ApplyVelocity adds v to the body's linear velocity.
func (b *Body) ApplyVelocity(v vec2.Vec2) { b.velocity = b.velocity.Add(v) }

// SetVelocity replaces the body's linear velocity.
func (b *Body) SetVelocity(v vec2.Vec2) { b.velocity = v }

// ApplyAngularVelocity adds w to the body's angular velocity.
func (b *Body) ApplyAngularVelocity(w float32) { b.angularVelocity += w }

// Position returns the body's centroid in world space.
func (b *Body) Position() vec2.Vec2 { return b.position }

// Angle returns the body's orientation in radians.
func (b *Body) Angle() float32 { return b.angle }

// Velocity returns the body's linear velocity.
func (b *Body) Velocity() vec2.Vec2 { return b.velocity }

// AngularVelocity returns the body's angular velocity.
func (b *Body) AngularVelocity() float32 { return b.angularVelocity }

// Vertices returns the body's current world-space vertices. The
// returned slice is owned by the body; callers must not mutate it.
func (b *Body) Vertices() []vec2.Vec2 { return b.vertices }

// Bounds returns the body's current tight AABB.
func (b *Body) Bounds() Bounds { return b.bounds }

// IsStatic reports whether the body ignores forces and impulses.
func (b *Body) IsStatic() bool { return b.isStatic }

// InverseMass returns 1/mass, or 0 for a static body.
func (b *Body) InverseMass() float32 { return b.invMass }

// InverseInertia returns 1/inertia, or 0 for a static body.
func (b *Body) InverseInertia() float32 { return b.invInertia }

// Friction returns the body's Coulomb friction coefficient.
func (b *Body) Friction() float32 { return b.friction }

// Restitution returns the body's bounciness coefficient.
func (b *Body) Restitution() float32 { return b.restitution }

// ContainsPoint reports whether p lies within the body's current
// convex hull. Per spec §4.3 this walks the CCW edges and requires a
// strictly negative cross product on every edge; points exactly on an
// edge are reported as outside. Used only by the narrow phase.
func (b *Body) ContainsPoint(p vec2.Vec2) bool {
	n := len(b.vertices)
	for i := 0; i < n; i++ {
		v0, v1 := b.vertices[i], b.vertices[(i+1)%n]
		if p.Sub(v0).Cross(v1.Sub(v0)) >= 0 {
			return false
		}
	}
	return true
}

// Support returns the index of the vertex that maximizes dot(vertex,
// direction), with ties broken by first occurrence.
func (b *Body) Support(direction vec2.Vec2) int {
	best := 0
	bestDot := b.vertices[0].Dot(direction)
	for i := 1; i < len(b.vertices); i++ {
		d := b.vertices[i].Dot(direction)
		if d > bestDot {
			bestDot = d
			best = i
		}
	}
	return best
}

// integrateForces applies gravity and air drag to the body's linear
// velocity for one tick, as spec §4.8 step 1. Static bodies are
// untouched.
func (b *Body) integrateForces(gravity vec2.Vec2, dt float32) {
	if b.isStatic {
		return
	}
	b.velocity = b.velocity.Add(gravity.Scale(dt))
	if b.airFriction > 0 {
		damping := float32(math.Pow(float64(1-b.airFriction), float64(dt)))
		b.velocity = b.velocity.Scale(damping)
	}
}

// integratePose advances position and angle by one tick of velocity,
// as spec §4.8 step 5. Static bodies are untouched.
func (b *Body) integratePose(dt float32) {
	if b.isStatic {
		return
	}
	b.TranslatePosition(b.velocity.Scale(dt))
	b.TranslateAngle(b.angularVelocity * dt)
}

func (b *Body) assertFiniteState(op string) {
	assertFinite(op, "position.x", b.position.X)
	assertFinite(op, "position.y", b.position.Y)
	assertFinite(op, "angle", b.angle)
	assertFinite(op, "velocity.x", b.velocity.X)
	assertFinite(op, "velocity.y", b.velocity.Y)
	assertFinite(op, "angularVelocity", b.angularVelocity)
}
