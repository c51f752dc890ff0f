// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"testing"

	"github.com/gazed/rigid2d/math/vec2"
)

func TestGridInsertRemove(t *testing.T) {
	g := newGrid(10)
	b, err := Rect(4, 4, vec2.V(5, 5), 0)
	if err != nil {
		t.Fatalf("Rect: %v", err)
	}
	g.insert(b)
	if len(b.gridCells) == 0 {
		t.Fatalf("expected body to occupy at least one cell")
	}
	count := 0
	g.forEachCell(func(ids []BodyID) { count += len(ids) })
	// a single body never produces a >1 occupant cell.
	if count != 0 {
		t.Errorf("expected no multi-occupant cells for a single body, got %d", count)
	}
	g.remove(b)
	if len(b.gridCells) != 0 {
		t.Errorf("expected gridCells cleared after remove, got %v", b.gridCells)
	}
	if len(g.cells) != 0 {
		t.Errorf("expected all cells pruned after remove, got %d cells", len(g.cells))
	}
}

func TestGridNegativeCoordinates(t *testing.T) {
	g := newGrid(10)
	a, _ := Rect(4, 4, vec2.V(-25, -25), 0)
	b, _ := Rect(4, 4, vec2.V(-23, -23), 0)
	g.insert(a)
	g.insert(b)
	shared := 0
	g.forEachCell(func(ids []BodyID) {
		if len(ids) == 2 {
			shared++
		}
	})
	if shared == 0 {
		t.Errorf("expected overlapping negative-coordinate bodies to share a cell")
	}
}

func TestGridCandidatesCoverBruteForceOverlaps(t *testing.T) {
	rng := newDeterministicRNG(1)
	bodies := make([]*Body, 100)
	g := newGrid(50)
	for i := range bodies {
		x := rng.float32(-500, 500)
		y := rng.float32(-500, 500)
		b, err := Rect(10, 10, vec2.V(x, y), 0)
		if err != nil {
			t.Fatalf("Rect: %v", err)
		}
		bodies[i] = b
		g.insert(b)
	}

	candidates := map[uint64]bool{}
	g.forEachCell(func(ids []BodyID) {
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				candidates[pairID(ids[i], ids[j])] = true
			}
		}
	})

	bruteOverlaps := 0
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if bodies[i].Bounds().OverlapsWith(bodies[j].Bounds()) {
				bruteOverlaps++
				id := pairID(bodies[i].id, bodies[j].id)
				if !candidates[id] {
					t.Errorf("brute-force overlap %d,%d missing from grid candidates", bodies[i].id, bodies[j].id)
				}
			}
		}
	}
}

// deterministicRNG is a tiny linear congruential generator so grid
// query tests are reproducible without depending on math/rand's
// stream format across versions.
type deterministicRNG struct{ state uint64 }

func newDeterministicRNG(seed uint64) *deterministicRNG { return &deterministicRNG{state: seed} }

func (r *deterministicRNG) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

func (r *deterministicRNG) float32(lo, hi float32) float32 {
	f := float32(r.next()>>40) / float32(1<<24)
	return lo + f*(hi-lo)
}
