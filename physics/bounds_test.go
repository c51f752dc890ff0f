// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"testing"

	"github.com/gazed/rigid2d/math/vec2"
)

func TestBoundsFromVertices(t *testing.T) {
	verts := []vec2.Vec2{{X: -1, Y: -2}, {X: 3, Y: 1}, {X: 0, Y: 5}}
	b := boundsFromVertices(verts)
	if b.Min != (vec2.Vec2{X: -1, Y: -2}) || b.Max != (vec2.Vec2{X: 3, Y: 5}) {
		t.Errorf("boundsFromVertices: got min %v max %v", b.Min, b.Max)
	}
}

func TestBoundsOverlapsWith(t *testing.T) {
	a := Bounds{Min: vec2.V(0, 0), Max: vec2.V(10, 10)}
	touching := Bounds{Min: vec2.V(10, 0), Max: vec2.V(20, 10)}
	if !a.OverlapsWith(touching) {
		t.Errorf("expected edge-touching bounds to overlap")
	}
	disjoint := Bounds{Min: vec2.V(11, 0), Max: vec2.V(20, 10)}
	if a.OverlapsWith(disjoint) {
		t.Errorf("expected disjoint bounds to not overlap")
	}
}
