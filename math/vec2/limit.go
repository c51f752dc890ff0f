// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vec2

import "math"

// Tolerance is the single-precision imprecision budget. Anything with
// less difference than this is considered equal.
const Tolerance float32 = 0.000001

// ApproxEqual checks that two floating point numbers are essentially
// the same, within Tolerance.
func ApproxEqual(a, b float32) bool {
	diff := a - b
	return diff < Tolerance && diff > -Tolerance
}

// ApproxZero checks if the floating point number is essentially zero.
func ApproxZero(v float32) bool {
	return math.Abs(float64(v)) < float64(Tolerance)
}

// Equal checks that two vectors are essentially the same, within
// Tolerance on each axis.
func Equal(a, b Vec2) bool {
	return ApproxEqual(a.X, b.X) && ApproxEqual(a.Y, b.Y)
}
