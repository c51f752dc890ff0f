// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"log/slog"
	"math"
)

// grid.go implements the uniform-grid spatial index (spec §4.4). The
// teacher's own grid/ package (dungeon and maze generation over a
// dense, fixed-size board) solves a different problem — a bounded,
// positive-coordinate tile map — and doesn't fit a dynamic, negative-
// coordinate-capable broad-phase index, so this is grounded instead on
// the bucket/cell vocabulary of gazed-vu/physics/broad.go's simulation
// islands (a map keyed by a derived integer) and spec §9's explicit
// Szudzik + zigzag cell-key design.

// grid maps bodies to the integer cells their bounds intersect and
// supports enumerating, for each occupied cell, the ids placed there.
type grid struct {
	bucketSize float32
	cells      map[uint64][]BodyID
}

func newGrid(bucketSize float32) *grid {
	return &grid{
		bucketSize: bucketSize,
		cells:      map[uint64][]BodyID{},
	}
}

// cellCoord maps a world coordinate to its integer cell coordinate.
func (g *grid) cellCoord(v float32) int32 {
	return int32(math.Floor(float64(v / g.bucketSize)))
}

// cellRange returns the inclusive [minCell, maxCell] coordinate range a
// body's bounds intersects.
func (g *grid) cellRange(b Bounds) (minX, minY, maxX, maxY int32) {
	minX = g.cellCoord(b.Min.X)
	minY = g.cellCoord(b.Min.Y)
	maxX = g.cellCoord(b.Max.X)
	maxY = g.cellCoord(b.Max.Y)
	return
}

// insert files id under every cell its bounds intersects. Precondition:
// body.gridCells is empty (not already indexed).
func (g *grid) insert(body *Body) {
	if len(body.gridCells) != 0 {
		slog.Warn("grid: insert called on body already indexed", "body", body.id)
		g.remove(body)
	}
	minX, minY, maxX, maxY := g.cellRange(body.bounds)
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			key := cellKey(x, y)
			g.cells[key] = append(g.cells[key], body.id)
			body.gridCells = append(body.gridCells, key)
		}
	}
}

// remove drops id from every cell recorded on the body, pruning cells
// that become empty, and clears the body's recorded cells.
func (g *grid) remove(body *Body) {
	for _, key := range body.gridCells {
		bucket := g.cells[key]
		for i, id := range bucket {
			if id == body.id {
				bucket[i] = bucket[len(bucket)-1]
				bucket = bucket[:len(bucket)-1]
				break
			}
		}
		if len(bucket) == 0 {
			delete(g.cells, key)
		} else {
			g.cells[key] = bucket
		}
	}
	body.gridCells = body.gridCells[:0]
}

// update re-indexes a body whose bounds may have changed. The spec
// notes reindexing only on an actual cell-range change is an
// optional optimization; this implementation always does the
// straightforward remove-then-insert for correctness and simplicity.
func (g *grid) update(body *Body) {
	g.remove(body)
	g.insert(body)
}

// forEachCell calls fn once per cell holding two or more ids, with its
// occupant ids; cells with a single occupant yield no pairs and are
// skipped.
// The returned slice is owned by the grid; fn must not retain it.
func (g *grid) forEachCell(fn func(ids []BodyID)) {
	for _, ids := range g.cells {
		if len(ids) > 1 {
			fn(ids)
		}
	}
}
