// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "github.com/gazed/rigid2d/math/vec2"

// Contact is a single contact point produced by the narrow phase
// (spec §3). AnchorRef and AnchorInc are the contact point expressed
// in each body's own local (unrotated, uncentered-by-position) frame,
// computed once at manifold-build time so the solver can re-derive the
// world-space anchor every sub-iteration without re-running SAT.
type Contact struct {
	Vertex     vec2.Vec2 // world-space location at creation.
	ReferenceID BodyID
	IncidentID  BodyID
	AnchorRef  vec2.Vec2
	AnchorInc  vec2.Vec2

	// massCoefficient is 1/len(manifold.Contacts), applied to this
	// contact's share of the normal impulse so a 2-point manifold
	// doesn't double the impulse the 1-point case would apply.
	massCoefficient float32

	// normalImpulse and tangentImpulse are the solver's scratch
	// accumulators, not part of the spec's public contact shape but
	// kept per-contact so repeated solver sweeps operate in place
	// without reallocating, mirroring the teacher's warmImpulse field
	// on pointOfContact (gazed-vu/physics/contact.go).
	normalImpulse  float32
	tangentImpulse float32
}

// CollisionPair is a contact manifold between an ordered pair of
// bodies (spec §3): Reference owns the penetrated face, Incident owns
// the penetrating vertex/vertices. Pair identity is order-independent
// — see pairID — even though Reference/Incident within one manifold
// are not interchangeable.
type CollisionPair struct {
	ReferenceID BodyID
	IncidentID  BodyID
	Contacts    []Contact
	Depth       float32
	Normal      vec2.Vec2
	Tangent     vec2.Vec2
	Friction    float32
	Restitution float32

	// frame is the step index this manifold was generated during.
	// Pairs with frame < the world's current frame are stale and are
	// discarded at the start of the next solve (spec §4.7).
	frame uint64

	// id is this pair's order-independent identifier, cached so the
	// solver and world don't recompute pairID every sweep.
	id uint64
}

// PairID returns the pair's order-independent identifier.
func (p *CollisionPair) PairID() uint64 { return p.id }
