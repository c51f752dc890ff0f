// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/gazed/rigid2d/math/vec2"
)

// world.go is the package facade (spec §6), grounded on
// gazed-vu/physics/physics.go's own World type: a body store plus the
// spatial index plus one Update/Step entry point. uuid.UUID session
// ids replace the teacher's own ad hoc numbering so multiple worlds
// running in the same process can be told apart in logs, the one place
// this package reaches for google/uuid over the teacher's own simpler
// id scheme (see SPEC_FULL.md DOMAIN STACK / DESIGN.md).

// World owns a set of bodies, steps them forward in time, and reports
// the contacts discovered along the way. A World is not safe for
// concurrent use; callers serialize access the same way the teacher's
// own engine loop serializes calls into vu/physics.
type World struct {
	id uuid.UUID

	bodies map[BodyID]*Body
	index  *grid

	// pairs is the current frame's manifolds keyed by pair id; pairOrder
	// is the same pairs in a stable sweep order (see broadPhase's sort
	// and SPEC_FULL.md's determinism note) so GetCollisionPairs and the
	// solver always walk pairs in the same sequence for a given body
	// configuration, which a plain map can't guarantee.
	pairs     map[uint64]*CollisionPair
	pairOrder []uint64

	constraintSet constraints

	gravity            vec2.Vec2
	velocityIterations int
	slop               float32
	baumgarteBeta      float32

	frame uint64
	time  float64
}

// NewWorld constructs an empty World using worldDefaults overridden by
// opts. Invalid overrides (bucket size <= 0, velocity iterations <= 0)
// return an *Error with Kind InvalidParameter.
func NewWorld(opts ...WorldOption) (*World, error) {
	cfg := worldDefaults
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.bucketSize <= 0 {
		return nil, errorf("NewWorld", InvalidParameter, "bucket size must be > 0, got %v", cfg.bucketSize)
	}
	if cfg.velocityIterations <= 0 {
		return nil, errorf("NewWorld", InvalidParameter, "velocity iterations must be > 0, got %d", cfg.velocityIterations)
	}
	return &World{
		id:                 uuid.New(),
		bodies:             map[BodyID]*Body{},
		index:              newGrid(cfg.bucketSize),
		pairs:              map[uint64]*CollisionPair{},
		gravity:            cfg.gravity,
		velocityIterations: cfg.velocityIterations,
		slop:               cfg.slop,
		baumgarteBeta:      cfg.baumgarteBeta,
	}, nil
}

// ID returns this world's session-unique identifier, stable for the
// lifetime of the World.
func (w *World) ID() uuid.UUID { return w.id }

// CreateRect builds a rectangle body and adds it to the world.
func (w *World) CreateRect(width, height float32, position vec2.Vec2, angle float32, opts ...BodyOption) (BodyID, error) {
	b, err := Rect(width, height, position, angle, opts...)
	if err != nil {
		return 0, err
	}
	w.AddBody(b)
	return b.id, nil
}

// CreateCircle builds a polygonal circle approximation and adds it to
// the world.
func (w *World) CreateCircle(radius float32, position vec2.Vec2, opts ...BodyOption) (BodyID, error) {
	b, err := Circle(radius, position, opts...)
	if err != nil {
		return 0, err
	}
	w.AddBody(b)
	return b.id, nil
}

// CreatePolygon builds a convex polygon body from CCW vertices and adds
// it to the world.
func (w *World) CreatePolygon(vertices []vec2.Vec2, position vec2.Vec2, angle float32, opts ...BodyOption) (BodyID, error) {
	b, err := NewBody(vertices, position, angle, opts...)
	if err != nil {
		return 0, err
	}
	w.AddBody(b)
	return b.id, nil
}

// AddBody registers an already-constructed body with the world and
// inserts it into the spatial index. Adding a body whose id is already
// in this world logs a warning and leaves the world unchanged.
func (w *World) AddBody(b *Body) {
	if _, exists := w.bodies[b.id]; exists {
		slog.Warn("physics: AddBody called on an id already present", "body", b.id)
		return
	}
	w.bodies[b.id] = b
	w.index.insert(b)
}

// RemoveBody drops a body from the world and the spatial index. Per
// spec §7, removing an unknown id is a silent no-op.
func (w *World) RemoveBody(id BodyID) {
	b, ok := w.bodies[id]
	if !ok {
		return
	}
	w.index.remove(b)
	delete(w.bodies, id)
}

// body looks up a body by id, returning an *Error with Kind
// UnknownBody if absent.
func (w *World) body(op string, id BodyID) (*Body, error) {
	b, ok := w.bodies[id]
	if !ok {
		return nil, errorf(op, UnknownBody, "no body with id %d", id)
	}
	return b, nil
}

// SetPosition moves a body so its centroid is at p. Unknown ids are a
// silent no-op, per spec §7's mutation rule.
func (w *World) SetPosition(id BodyID, p vec2.Vec2) {
	if b, ok := w.bodies[id]; ok {
		b.SetPosition(p)
		w.index.update(b)
	}
}

// TranslatePosition adds delta to a body's position. Unknown ids are a
// silent no-op.
func (w *World) TranslatePosition(id BodyID, delta vec2.Vec2) {
	if b, ok := w.bodies[id]; ok {
		b.TranslatePosition(delta)
		w.index.update(b)
	}
}

// SetAngle rotates a body to the absolute orientation a. Unknown ids
// are a silent no-op.
func (w *World) SetAngle(id BodyID, a float32) {
	if b, ok := w.bodies[id]; ok {
		b.SetAngle(a)
		w.index.update(b)
	}
}

// TranslateAngle rotates a body by delta radians. Unknown ids are a
// silent no-op.
func (w *World) TranslateAngle(id BodyID, delta float32) {
	if b, ok := w.bodies[id]; ok {
		b.TranslateAngle(delta)
		w.index.update(b)
	}
}

// SetVelocity replaces a body's linear velocity. Unknown ids are a
// silent no-op.
func (w *World) SetVelocity(id BodyID, v vec2.Vec2) {
	if b, ok := w.bodies[id]; ok {
		b.SetVelocity(v)
	}
}

// ApplyVelocity adds v to a body's linear velocity. Unknown ids are a
// silent no-op.
func (w *World) ApplyVelocity(id BodyID, v vec2.Vec2) {
	if b, ok := w.bodies[id]; ok {
		b.ApplyVelocity(v)
	}
}

// ApplyAngularVelocity adds w to a body's angular velocity. Unknown ids
// are a silent no-op.
func (w *World) ApplyAngularVelocity(id BodyID, omega float32) {
	if b, ok := w.bodies[id]; ok {
		b.ApplyAngularVelocity(omega)
	}
}

// GetPosition returns a body's centroid, or an *Error with Kind
// UnknownBody if id is absent.
func (w *World) GetPosition(id BodyID) (vec2.Vec2, error) {
	b, err := w.body("GetPosition", id)
	if err != nil {
		return vec2.Vec2{}, err
	}
	return b.Position(), nil
}

// GetVertices returns a body's current world-space vertices, or an
// *Error with Kind UnknownBody if id is absent. The returned slice is
// owned by the body; callers must not mutate it.
func (w *World) GetVertices(id BodyID) ([]vec2.Vec2, error) {
	b, err := w.body("GetVertices", id)
	if err != nil {
		return nil, err
	}
	return b.Vertices(), nil
}

// GetBounds returns a body's current AABB, or an *Error with Kind
// UnknownBody if id is absent.
func (w *World) GetBounds(id BodyID) (Bounds, error) {
	b, err := w.body("GetBounds", id)
	if err != nil {
		return Bounds{}, err
	}
	return b.Bounds(), nil
}

// GetBody returns a body by id, or an *Error with Kind UnknownBody if
// absent.
func (w *World) GetBody(id BodyID) (*Body, error) {
	return w.body("GetBody", id)
}

// GetBodies returns every body currently in the world. The returned map
// is owned by the World; callers must not mutate it.
func (w *World) GetBodies() map[BodyID]*Body { return w.bodies }

// GetCollisionPairs returns the contact manifolds discovered on the
// most recent Step, in a stable, deterministic order.
func (w *World) GetCollisionPairs() []*CollisionPair {
	out := make([]*CollisionPair, len(w.pairOrder))
	for i, id := range w.pairOrder {
		out[i] = w.pairs[id]
	}
	return out
}

// AddConstraint registers an auxiliary constraint (spec §9), solved
// once per Step alongside the contact pairs.
func (w *World) AddConstraint(c Constraint) { w.constraintSet.add(c) }

// RemoveConstraint unregisters a previously added constraint. Removing
// one not currently registered is a no-op.
func (w *World) RemoveConstraint(c Constraint) { w.constraintSet.remove(c) }

// Frame returns the number of Step calls made so far.
func (w *World) Frame() uint64 { return w.frame }

// Time returns the total simulated time elapsed across every Step call.
func (w *World) Time() float64 { return w.time }

// Step advances the simulation by dt seconds: integrate forces, detect
// collisions, solve contact velocities, integrate poses, and refresh
// the spatial index, in that fixed order (spec §4.8).
func (w *World) Step(dt float32) {
	w.step(dt)
}
