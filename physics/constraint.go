// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

// constraint.go is the pluggable extension point spec §9 describes:
// "the design treats contact constraints as primary and leaves
// auxiliary constraints as a tagged-variant extension point solved
// between broad and narrow phases". Spring and fixed-distance
// constraints themselves are out of scope (spec §1) — no built-in
// Constraint implementation ships here, and World.Step never looks at
// the registry unless a caller populates it.

// Constraint is a single-body or two-body auxiliary constraint solved
// once per step, outside of the contact solver proper. Spring and
// fixed-distance constraints are the two variants spec §9 names as
// examples; a host embedding rigid2d implements this interface to add
// either without touching the contact pipeline.
type Constraint interface {
	// SolveVelocity applies this step's impulse contribution. Called
	// once per step, after the broad phase and before the narrow
	// phase, per spec §9.
	SolveVelocity(dt float32)

	// SolvePosition optionally applies a positional correction. A
	// constraint that needs no positional correction may implement
	// this as a no-op.
	SolvePosition(dt float32)
}

// constraints holds the registered auxiliary constraints for a World.
// Empty by default; rigid2d ships no concrete Constraint.
type constraints struct {
	items []Constraint
}

func (c *constraints) add(con Constraint) { c.items = append(c.items, con) }

func (c *constraints) remove(con Constraint) {
	for i, existing := range c.items {
		if existing == con {
			c.items[i] = c.items[len(c.items)-1]
			c.items = c.items[:len(c.items)-1]
			return
		}
	}
}

func (c *constraints) solveVelocity(dt float32) {
	for _, con := range c.items {
		con.SolveVelocity(dt)
	}
}

func (c *constraints) solvePosition(dt float32) {
	for _, con := range c.items {
		con.SolvePosition(dt)
	}
}
