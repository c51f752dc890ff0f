// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"math"

	"github.com/gazed/rigid2d/math/vec2"
)

// narrow.go implements the SAT overlap test and manifold construction
// of spec §4.6. The teacher's narrow phase (gazed-vu/physics/gjk.go,
// epa.go, clipping.go) solves the 3D convex-hull case with GJK/EPA —
// a fundamentally different algorithm family from 2D polygon SAT, so
// this is instead grounded on spec §4.6's own description and on the
// face-vertex penetration technique also used by the "cp" (Chipmunk2D
// port) reference file's Arbiter/contact generation in
// other_examples/47944bd3_undefinedopcode-cp__space.go.go, adapted to
// the exact axis and sign conventions spec.md spells out.

// satOverlap implements the cheap overlap test: project both bodies
// onto each of their own outward edge normals; any axis with disjoint
// intervals proves separation.
func satOverlap(a, b *Body) bool {
	return !separatingAxisExists(a, b) && !separatingAxisExists(b, a)
}

func separatingAxisExists(x, y *Body) bool {
	for _, axis := range x.axes {
		minX, maxX := projectOnto(x.vertices, axis)
		minY, maxY := projectOnto(y.vertices, axis)
		if maxX < minY || maxY < minX {
			return true
		}
	}
	return false
}

func projectOnto(vertices []vec2.Vec2, axis vec2.Vec2) (min, max float32) {
	min = vertices[0].Dot(axis)
	max = min
	for _, v := range vertices[1:] {
		d := v.Dot(axis)
		min = vec2.Min(min, d)
		max = vec2.Max(max, d)
	}
	return
}

// maxContactsPerManifold caps the number of contact points a single
// manifold carries, per spec §4.6 ("implementations must cap or clip").
const maxContactsPerManifold = 2

// buildManifold runs the full SAT axis search and, if the bodies
// overlap, constructs the contact manifold between them. It reports ok
// = false when the bodies are separated, and also when no vertex of
// either body lies strictly inside the other. It does not call
// satOverlap; the axis scan here is its own separation test.
func buildManifold(a, b *Body, frame uint64) (pair CollisionPair, ok bool) {
	minDepth := float32(math.MaxFloat32)
	var reference, incident *Body
	var normal vec2.Vec2

	scan := func(x, y *Body) {
		for i, outward := range x.axes {
			inward := outward.Negate()
			support := y.Support(inward)
			depth := inward.Dot(y.vertices[support].Sub(x.vertices[i]))
			if depth < minDepth {
				minDepth = depth
				reference, incident = x, y
				normal = outward
			}
		}
	}
	scan(a, b)
	scan(b, a)

	if minDepth < 0 {
		return CollisionPair{}, false
	}

	contacts := collectContacts(reference, incident)
	if len(contacts) == 0 {
		return CollisionPair{}, false
	}
	coefficient := 1 / float32(len(contacts))
	for i := range contacts {
		contacts[i].ReferenceID = reference.id
		contacts[i].IncidentID = incident.id
		contacts[i].massCoefficient = coefficient
		contacts[i].AnchorRef = contacts[i].Vertex.Sub(reference.position).Rotate(-reference.angle)
		contacts[i].AnchorInc = contacts[i].Vertex.Sub(incident.position).Rotate(-incident.angle)
	}

	pair = CollisionPair{
		ReferenceID: reference.id,
		IncidentID:  incident.id,
		Contacts:    contacts,
		Depth:       minDepth,
		Normal:      normal,
		Tangent:     normal.Perp(),
		Friction:    float32(math.Sqrt(float64(reference.friction*reference.friction + incident.friction*incident.friction))),
		Restitution: 1 + vec2.Max(reference.restitution, incident.restitution),
		frame:       frame,
		id:          pairID(reference.id, incident.id),
	}
	return pair, true
}

// collectContacts scans both bodies' vertices, keeping points that
// fall strictly inside the opposite body, per spec §4.6. Capped at
// maxContactsPerManifold.
func collectContacts(reference, incident *Body) []Contact {
	var contacts []Contact
	for _, v := range incident.vertices {
		if len(contacts) >= maxContactsPerManifold {
			return contacts
		}
		if reference.ContainsPoint(v) {
			contacts = append(contacts, Contact{Vertex: v})
		}
	}
	for _, v := range reference.vertices {
		if len(contacts) >= maxContactsPerManifold {
			return contacts
		}
		if incident.ContainsPoint(v) {
			contacts = append(contacts, Contact{Vertex: v})
		}
	}
	return contacts
}
