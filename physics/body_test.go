// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"testing"

	"github.com/gazed/rigid2d/math/vec2"
)

func TestNewBodyRejectsTooFewVertices(t *testing.T) {
	_, err := NewBody([]vec2.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}}, vec2.Zero, 0)
	if err == nil {
		t.Fatal("expected an error for a 2-vertex polygon")
	}
	if perr, ok := err.(*Error); !ok || perr.Kind != InvalidGeometry {
		t.Errorf("got %v, want *Error{Kind: InvalidGeometry}", err)
	}
}

func TestNewBodyRejectsZeroArea(t *testing.T) {
	verts := []vec2.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	_, err := NewBody(verts, vec2.Zero, 0)
	if err == nil {
		t.Fatal("expected an error for a degenerate zero-area polygon")
	}
}

func TestNewBodyRejectsInvalidMass(t *testing.T) {
	_, err := Rect(1, 1, vec2.Zero, 0, Mass(0))
	if err == nil {
		t.Fatal("expected an error for zero mass")
	}
	if perr, ok := err.(*Error); !ok || perr.Kind != InvalidParameter {
		t.Errorf("got %v, want *Error{Kind: InvalidParameter}", err)
	}
}

func TestRectMassProperties(t *testing.T) {
	b, err := Rect(4, 2, vec2.Zero, 0, Mass(8))
	if err != nil {
		t.Fatalf("Rect: %v", err)
	}
	if !vec2.ApproxEqual(b.mass, 8) {
		t.Errorf("mass = %v, want 8", b.mass)
	}
	if !vec2.ApproxEqual(b.invMass, 0.125) {
		t.Errorf("invMass = %v, want 0.125", b.invMass)
	}
	if b.inertia <= 0 {
		t.Errorf("inertia = %v, want > 0", b.inertia)
	}
}

func TestStaticBodyHasZeroInverseMass(t *testing.T) {
	b, err := Rect(1, 1, vec2.Zero, 0, Static(true))
	if err != nil {
		t.Fatalf("Rect: %v", err)
	}
	if b.invMass != 0 || b.invInertia != 0 {
		t.Errorf("static body invMass=%v invInertia=%v, want both 0", b.invMass, b.invInertia)
	}
}

func TestTranslatePosition(t *testing.T) {
	b, _ := Rect(2, 2, vec2.V(0, 0), 0)
	before := append([]vec2.Vec2(nil), b.Vertices()...)
	b.TranslatePosition(vec2.V(5, -3))
	if !vec2.Equal(b.Position(), vec2.V(5, -3)) {
		t.Errorf("Position() = %v, want (5,-3)", b.Position())
	}
	for i, v := range b.Vertices() {
		want := before[i].Add(vec2.V(5, -3))
		if !vec2.Equal(v, want) {
			t.Errorf("vertex %d = %v, want %v", i, v, want)
		}
	}
}

func TestSetAngleRoundTrip(t *testing.T) {
	b, _ := Rect(2, 2, vec2.V(1, 1), 0)
	b.SetAngle(1.2)
	if !vec2.ApproxEqual(b.Angle(), 1.2) {
		t.Errorf("Angle() = %v, want 1.2", b.Angle())
	}
	b.SetAngle(0)
	if !vec2.ApproxEqual(b.Angle(), 0) {
		t.Errorf("Angle() = %v, want 0", b.Angle())
	}
}

func TestContainsPoint(t *testing.T) {
	b, _ := Rect(2, 2, vec2.V(0, 0), 0)
	if !b.ContainsPoint(vec2.V(0, 0)) {
		t.Errorf("expected center to be contained")
	}
	if b.ContainsPoint(vec2.V(10, 10)) {
		t.Errorf("expected far point to not be contained")
	}
}

func TestSupport(t *testing.T) {
	b, _ := Rect(2, 2, vec2.V(0, 0), 0)
	idx := b.Support(vec2.V(1, 0))
	if b.vertices[idx].X <= 0 {
		t.Errorf("Support(+x) picked vertex %v, want a vertex with positive x", b.vertices[idx])
	}
}

func TestIntegrateForcesSkipsStatic(t *testing.T) {
	b, _ := Rect(1, 1, vec2.Zero, 0, Static(true))
	b.integrateForces(vec2.V(0, 100), 1)
	if !vec2.Equal(b.Velocity(), vec2.Zero) {
		t.Errorf("static body velocity changed: %v", b.Velocity())
	}
}

func TestIntegrateForcesAppliesGravity(t *testing.T) {
	b, _ := Rect(1, 1, vec2.Zero, 0)
	b.integrateForces(vec2.V(0, 100), 0.5)
	if !vec2.Equal(b.Velocity(), vec2.V(0, 50)) {
		t.Errorf("Velocity() = %v, want (0,50)", b.Velocity())
	}
}
