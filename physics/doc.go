// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package physics is a real-time simulation of 2D rigid-body physics.
// Physics applies simulated forces — gravity, air drag, and contact
// impulses — to convex polygonal bodies, producing per-frame positions,
// orientations, velocities, and the set of active contact manifolds a
// renderer would need to draw them.
//
// A World owns a set of Bodies, a uniform-grid spatial index used for
// broad-phase pair culling, and the set of currently active
// CollisionPairs. Advancing the simulation one tick is a single call to
// World.Step:
//
//	w, _ := physics.NewWorld()
//	id, _ := w.CreateRect(10, 10, vec2.V(0, 0), 0)
//	w.Step(1.0 / 60.0)
//	pos, _ := w.GetPosition(id)
//
// Package physics is the core simulation pipeline of rigid2d. Rendering,
// input handling, and host/embedding glue are left to callers.
package physics
