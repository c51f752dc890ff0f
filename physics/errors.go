// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "fmt"

// Kind classifies the precondition an *Error reports.
type Kind int

const (
	// InvalidGeometry: vertex count < 3, non-convex, non-CCW winding,
	// or zero area. Detected at construction.
	InvalidGeometry Kind = iota

	// InvalidParameter: mass <= 0, restitution/friction outside [0,1],
	// or bucket size <= 0.
	InvalidParameter

	// UnknownBody: a query referenced a body id not present in the world.
	UnknownBody
)

func (k Kind) String() string {
	switch k {
	case InvalidGeometry:
		return "invalid geometry"
	case InvalidParameter:
		return "invalid parameter"
	case UnknownBody:
		return "unknown body"
	default:
		return "unknown error kind"
	}
}

// Error reports a precondition violation. Op names the operation that
// failed, Kind classifies why, and Detail carries the specific cause.
type Error struct {
	Op     string
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("rigid2d: %s: %s: %s", e.Op, e.Kind, e.Detail)
}

func errorf(op string, kind Kind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// assertFinite panics if x is not finite. Non-finite positions or
// velocities after a step indicate a construction or input bug rather
// than a recoverable runtime condition, so this is a fatal assertion
// and not a returned error — mirroring the teacher's own
// panic(fmt.Errorf(...)) path for degenerate geometry in epa.go.
func assertFinite(op string, label string, x float32) {
	if x != x || x > maxFinite || x < -maxFinite {
		panic(fmt.Errorf("rigid2d: %s: non-finite value for %s: %v", op, label, x))
	}
}

// maxFinite bounds what counts as "finite" for assertFinite's purposes;
// math.MaxFloat32 itself is finite but a value that large already
// indicates a blown-up simulation.
const maxFinite = 3.4e37
