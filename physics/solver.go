// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "github.com/gazed/rigid2d/math/vec2"

// solver.go is a scaled-down sequential-impulse (Gauss-Seidel) contact
// solver, in the same spirit as gazed-vu/physics/solver.go's PGS
// btSequentialImpulseConstraintSolver port — but grounded directly on
// spec §4.7's own derivation (predicted separation, Baumgarte bias,
// Coulomb-clamped friction) rather than the teacher's warm-started
// Jacobian/persistent-manifold machinery, since spec §4.7 describes a
// simpler per-step solve with no warm starting and no convergence-based
// early exit.

// solveVelocity runs one sweep of sequential impulses over every
// active pair's contacts, per spec §4.7. dt is the per-sub-step delta
// used in the predicted-separation term (spec §4.8 step 4: Δt/N).
func solveVelocity(pairs []*CollisionPair, bodies map[BodyID]*Body, dt, slop, beta float32) {
	for _, pair := range pairs {
		reference := bodies[pair.ReferenceID]
		incident := bodies[pair.IncidentID]
		if reference == nil || incident == nil {
			continue // a body was removed mid-frame.
		}
		for i := range pair.Contacts {
			solveContact(pair, &pair.Contacts[i], reference, incident, dt, slop, beta)
		}
	}
}

func solveContact(pair *CollisionPair, c *Contact, reference, incident *Body, dt, slop, beta float32) {
	// pair.Normal points from reference toward incident. The solver works
	// along the reversed axis (incident toward reference), so that an
	// approaching pair has vn > 0 and the impulse applied below (+ on the
	// reference, - on the incident) pushes the two bodies apart.
	normal, tangent := pair.Normal.Negate(), pair.Tangent.Negate()

	ra := c.AnchorRef.Rotate(reference.angle)
	rb := c.AnchorInc.Rotate(incident.angle)

	vr := relativeVelocity(reference, incident, ra, rb)
	vn := vr.Dot(normal)
	vt := vr.Dot(tangent)

	adjustedSeparation := pair.Depth + rb.Add(incident.position).Sub(ra.Add(reference.position)).Dot(normal)
	predicted := rb.Add(incident.velocity).Sub(ra.Add(reference.velocity)).Dot(normal)*dt + adjustedSeparation

	s := predicted
	if s < 0 {
		return
	}
	s = vec2.Max(s-slop*vec2.Sign(s), 0)
	bias := s * beta

	kn := effectiveMass(reference, incident, ra, rb, normal)
	var mn float32
	if kn != 0 {
		mn = 1 / kn
	}
	kt := effectiveMass(reference, incident, ra, rb, tangent)
	var mt float32
	if kt != 0 {
		mt = 1 / kt
	}

	jn := mn * c.massCoefficient * (vn*pair.Restitution + bias)
	if jn < 0 {
		jn = 0
	}

	jt := -vt * mt
	maxFriction := pair.Friction * jn
	jt = vec2.Clamp(jt, -maxFriction, maxFriction)

	impulse := normal.Scale(jn).Sub(tangent.Scale(jt))

	if !reference.isStatic {
		reference.velocity = reference.velocity.Add(impulse.Scale(reference.invMass))
		reference.angularVelocity += ra.Cross(impulse) * reference.invInertia
	}
	if !incident.isStatic {
		incident.velocity = incident.velocity.Sub(impulse.Scale(incident.invMass))
		incident.angularVelocity -= rb.Cross(impulse) * incident.invInertia
	}

	c.normalImpulse = jn
	c.tangentImpulse = jt
}

// angularPointVelocity returns the velocity contributed at offset r by
// an angular rate of omega: spec §4.7 step 2 defines "r x omega" as
// (-omega*r.y, omega*r.x) — the standard omega x r rigid-body point
// velocity term, despite the operand order the spec prose names it
// with (omega x r, not r x omega; vec2.Vec2.CrossScalar implements the
// C1 "v x s" form instead, which is this negated — see DESIGN.md).
func angularPointVelocity(r vec2.Vec2, omega float32) vec2.Vec2 {
	return vec2.V(-omega*r.Y, omega*r.X)
}

// relativeVelocity returns the relative velocity of incident w.r.t.
// reference at the contact, per spec §4.7 step 2:
// vr = (v_b + r_b x w_b) - (v_a + r_a x w_a).
func relativeVelocity(reference, incident *Body, ra, rb vec2.Vec2) vec2.Vec2 {
	vb := incident.velocity.Add(angularPointVelocity(rb, incident.angularVelocity))
	va := reference.velocity.Add(angularPointVelocity(ra, reference.angularVelocity))
	return vb.Sub(va)
}

// effectiveMass computes the effective mass along axis n for the
// contact at anchors ra (reference) and rb (incident), per spec §4.7
// step 6: k = ma^-1 + mb^-1 + ia^-1*(ra x n)^2 + ib^-1*(rb x n)^2.
func effectiveMass(reference, incident *Body, ra, rb, n vec2.Vec2) float32 {
	raCrossN := ra.Cross(n)
	rbCrossN := rb.Cross(n)
	return reference.invMass + incident.invMass +
		reference.invInertia*raCrossN*raCrossN +
		incident.invInertia*rbCrossN*rbCrossN
}
