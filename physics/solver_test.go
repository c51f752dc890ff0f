// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"testing"

	"github.com/gazed/rigid2d/math/vec2"
)

func TestAngularPointVelocity(t *testing.T) {
	r := vec2.V(1, 0)
	got := angularPointVelocity(r, 2)
	want := vec2.V(0, 2) // omega x r for r=(1,0), omega=2: (-omega*r.y, omega*r.x) = (0,2).
	if !vec2.Equal(got, want) {
		t.Errorf("angularPointVelocity(%v, 2) = %v, want %v", r, got, want)
	}
}

func TestRelativeVelocityBothAtRest(t *testing.T) {
	a, _ := Rect(2, 2, vec2.V(0, 0), 0, Static(true))
	b, _ := Rect(2, 2, vec2.V(0, 2), 0)
	vr := relativeVelocity(a, b, vec2.Zero, vec2.Zero)
	if !vec2.Equal(vr, vec2.Zero) {
		t.Errorf("relativeVelocity at rest = %v, want zero", vr)
	}
}

func TestEffectiveMassStaticVsDynamic(t *testing.T) {
	floor, _ := Rect(20, 2, vec2.V(0, 0), 0, Static(true))
	box, _ := Rect(2, 2, vec2.V(0, 1.5), 0, Mass(4))
	n := vec2.V(0, 1)
	k := effectiveMass(floor, box, vec2.Zero, vec2.Zero, n)
	if !vec2.ApproxEqual(k, floor.invMass+box.invMass) {
		t.Errorf("effectiveMass with zero anchors = %v, want invMass sum %v", k, floor.invMass+box.invMass)
	}
}

func TestSolveVelocityStopsPenetratingApproach(t *testing.T) {
	floor, _ := Rect(20, 2, vec2.V(0, 0), 0, Static(true))
	box, _ := Rect(2, 2, vec2.V(0, -1.5), 0)
	box.SetVelocity(vec2.V(0, 10)) // falling toward the floor.

	pair, ok := buildManifold(floor, box, 1)
	if !ok {
		t.Fatalf("expected a manifold")
	}
	bodies := map[BodyID]*Body{floor.id: floor, box.id: box}
	solveVelocity([]*CollisionPair{&pair}, bodies, 1.0/60, 1.0, 10.0)

	if box.Velocity().Y >= 10 {
		t.Errorf("expected the solver to reduce the approaching velocity, got %v", box.Velocity().Y)
	}
}

func TestSolveVelocitySkipsBothStatic(t *testing.T) {
	a, _ := Rect(2, 2, vec2.V(0, 0), 0, Static(true))
	b, _ := Rect(2, 2, vec2.V(1.9, 0), 0, Static(true))
	pair, ok := buildManifold(a, b, 1)
	if !ok {
		t.Fatalf("expected a manifold")
	}
	bodies := map[BodyID]*Body{a.id: a, b.id: b}
	solveVelocity([]*CollisionPair{&pair}, bodies, 1.0/60, 1.0, 10.0)
	if !vec2.Equal(a.Velocity(), vec2.Zero) || !vec2.Equal(b.Velocity(), vec2.Zero) {
		t.Errorf("expected both static bodies to remain at rest, got %v and %v", a.Velocity(), b.Velocity())
	}
}
