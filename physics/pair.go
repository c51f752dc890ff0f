// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

// pair.go computes an order-independent identifier for a body pair.
// The teacher's own pairID (gazed-vu/physics/body.go) sorts the two
// ids and packs them into the high/low halves of a uint64, which only
// works because its ids fit in 32 bits. Per spec §9 this design uses
// Szudzik's elegant pairing instead, so a 16-bit id space still packs
// into a uint64 without needing the ids to be disjoint half-ranges,
// and so negative-friendly zigzag folding composes with it for grid
// cell keys (see grid.go).

// pairID returns an order-independent identifier for bodies a and b.
// pairID(a,b) == pairID(b,a) for all a, b.
func pairID(a, b BodyID) uint64 {
	x, y := uint64(a), uint64(b)
	if x < y {
		x, y = y, x
	}
	// Szudzik's elegant pairing: x >= y: x*x + x + y.
	return x*x + x + y
}

// unpair recovers the unordered pair {a, b} that produced id via
// pairID. The caller cannot recover which of the two was passed as a
// vs b to pairID — only the set.
func unpair(id uint64) (BodyID, BodyID) {
	sqrtFloor := isqrt(id)
	if id-sqrtFloor*sqrtFloor < sqrtFloor {
		x := id - sqrtFloor*sqrtFloor
		return BodyID(sqrtFloor), BodyID(x)
	}
	x := sqrtFloor
	y := id - sqrtFloor*sqrtFloor - sqrtFloor
	return BodyID(x), BodyID(y)
}

// isqrt returns floor(sqrt(n)) for a uint64 using integer-only Newton's
// method, avoiding the precision loss math.Sqrt would introduce for
// large n once squared back.
func isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// zigzag folds a signed 32-bit cell coordinate into an unsigned one so
// it can feed Szudzik pairing: non-negative n -> 2n, negative n -> -2n-1.
// This is the standard protobuf-style zigzag encoding named in spec §9.
func zigzag(n int32) uint64 {
	if n >= 0 {
		return uint64(n) * 2
	}
	return uint64(-n)*2 - 1
}

// cellKey folds a signed 2D cell coordinate into a single uint64 via
// zigzag + Szudzik pairing. The mapping is injective: distinct (x,y)
// pairs always produce distinct keys.
func cellKey(x, y int32) uint64 {
	zx, zy := zigzag(x), zigzag(y)
	if zx >= zy {
		return zx*zx + zx + zy
	}
	return zy*zy + zx
}
