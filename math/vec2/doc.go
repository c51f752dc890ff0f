// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package vec2 provides the 2D vector algebra needed by the rigid2d
// physics engine: addition, rotation, the perp-dot product, and the
// handful of min/max/clamp helpers the solver and spatial index lean on.
//
// Unlike gazed-vu/math/lin, which mutates vectors in place through
// pointer receivers to avoid allocation in 3D rendering loops, vec2
// uses value receivers throughout. A Vec2 is two float32s; passing and
// returning it by value never touches the heap, so the allocation
// discipline the teacher achieves with scratch pointers falls out for
// free here. Every operation is pure: it never modifies its receiver
// or arguments.
package vec2
