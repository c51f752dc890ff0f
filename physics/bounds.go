// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "github.com/gazed/rigid2d/math/vec2"

// Bounds is an axis aligned bounding box, specified by a bottom-left
// corner Min and a top-right corner Max where Min <= Max componentwise.
// The vu engine calls the equivalent shape an Abox; rigid2d keeps the
// spec's Bounds name since here it is a derived property of a Body
// rather than a standalone collidable shape.
type Bounds struct {
	Min vec2.Vec2
	Max vec2.Vec2
}

// OverlapsWith reports whether b and o share any area.
func (b Bounds) OverlapsWith(o Bounds) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y
}

// boundsFromVertices derives the tight AABB of a vertex list. Panics on
// an empty slice — callers must only call this with a body's (always
// non-empty) vertex list.
func boundsFromVertices(vertices []vec2.Vec2) Bounds {
	b := Bounds{Min: vertices[0], Max: vertices[0]}
	for _, v := range vertices[1:] {
		b.Min.X = vec2.Min(b.Min.X, v.X)
		b.Min.Y = vec2.Min(b.Min.Y, v.Y)
		b.Max.X = vec2.Max(b.Max.X, v.X)
		b.Max.Y = vec2.Max(b.Max.Y, v.Y)
	}
	return b
}
