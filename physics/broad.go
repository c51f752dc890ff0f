// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "sort"

// broad.go drives the spatial index and produces de-duplicated,
// bounds-overlap-filtered candidate pairs (spec §4.5). Grounded on
// gazed-vu/physics/broad.go's own broad_get_collision_pairs, but
// replacing its O(n^2) all-pairs distance scan with the grid so the
// candidate set scales with occupancy rather than body count, as
// spec §4.4/§4.5 require.

// candidatePair is an unordered body-id pair with a < b, the broad
// phase's output shape per spec §4.5.
type candidatePair struct {
	a, b BodyID
}

// broadPhase enumerates every cell's C(n,2) id pairs, de-duplicates
// across cells by pair id, and rejects pairs whose bounds don't
// overlap. bodies looks up a Body by id for the bounds check.
func broadPhase(g *grid, bodies map[BodyID]*Body) []candidatePair {
	seen := map[uint64]bool{}
	var out []candidatePair
	g.forEachCell(func(ids []BodyID) {
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				a, b := ids[i], ids[j]
				id := pairID(a, b)
				if seen[id] {
					continue
				}
				seen[id] = true
				bodyA, bodyB := bodies[a], bodies[b]
				if bodyA == nil || bodyB == nil {
					continue // body removed mid-frame.
				}
				if !bodyA.bounds.OverlapsWith(bodyB.bounds) {
					continue
				}
				if a > b {
					a, b = b, a
				}
				out = append(out, candidatePair{a: a, b: b})
			}
		}
	})
	// grid.cells is a Go map, so forEachCell's iteration order is
	// randomized; sort so the narrow phase and solver always sweep
	// pairs in the same order for a given body configuration (spec §5
	// determinism requirement — see DESIGN.md).
	sort.Slice(out, func(i, j int) bool { return pairID(out[i].a, out[i].b) < pairID(out[j].a, out[j].b) })
	return out
}
