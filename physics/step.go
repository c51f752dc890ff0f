// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

// step.go is the fixed-order integrator spec §4.8 mandates, grounded
// on gazed-vu/physics/physics.go's Update (apply forces, detect,
// solve, integrate, in that order every tick) but restructured around
// the grid broad phase and SAT narrow phase this package uses instead
// of the teacher's GJK/EPA pipeline.

// step advances the world by dt, split into sub steps sub-iterations
// of Δt/sub each for the velocity solve, per spec §4.8 step 4.
func (w *World) step(dt float32) {
	for _, body := range w.bodies {
		body.integrateForces(w.gravity, dt)
	}

	candidates := broadPhase(w.index, w.bodies)

	w.constraintSet.solveVelocity(dt)
	w.constraintSet.solvePosition(dt)

	w.frame++
	next := make(map[uint64]*CollisionPair, len(candidates))
	order := make([]uint64, 0, len(candidates))
	for _, c := range candidates {
		a, b := w.bodies[c.a], w.bodies[c.b]
		if a == nil || b == nil {
			continue
		}
		manifold, ok := buildManifold(a, b, w.frame)
		if !ok {
			continue
		}
		id := manifold.PairID()
		pair := manifold
		next[id] = &pair
		order = append(order, id)
	}
	w.pairs = next
	w.pairOrder = order

	ordered := make([]*CollisionPair, len(order))
	for i, id := range order {
		ordered[i] = w.pairs[id]
	}

	sub := float32(1)
	if w.velocityIterations > 0 {
		sub = float32(w.velocityIterations)
	}
	subDt := dt / sub
	for i := 0; i < w.velocityIterations; i++ {
		solveVelocity(ordered, w.bodies, subDt, w.slop, w.baumgarteBeta)
	}

	for _, body := range w.bodies {
		body.integratePose(dt)
		body.assertFiniteState("Step")
		w.index.update(body)
	}

	w.time += float64(dt)
}
