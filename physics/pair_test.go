// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "testing"

func TestPairIDOrderIndependent(t *testing.T) {
	a, b := BodyID(5), BodyID(3)
	if pairID(a, b) != pairID(b, a) {
		t.Errorf("pairID(%d,%d) = %d, pairID(%d,%d) = %d; want equal", a, b, pairID(a, b), b, a, pairID(b, a))
	}
}

// TestPairIDRoundTrip is spec scenario 5: for all (a,b) with a,b in
// [0, 1000], unpair(pair(a,b)) yields {a,b} as a set.
func TestPairIDRoundTrip(t *testing.T) {
	for a := BodyID(0); a <= 1000; a++ {
		for b := BodyID(0); b <= 1000; b++ {
			id := pairID(a, b)
			x, y := unpair(id)
			want1, want2 := a, b
			if want1 > want2 {
				want1, want2 = want2, want1
			}
			got1, got2 := x, y
			if got1 > got2 {
				got1, got2 = got2, got1
			}
			if got1 != want1 || got2 != want2 {
				t.Fatalf("unpair(pairID(%d,%d)) = {%d,%d}, want {%d,%d}", a, b, got1, got2, want1, want2)
			}
		}
	}
}

func TestPairIDDistinctForDistinctPairs(t *testing.T) {
	seen := map[uint64]bool{}
	for a := BodyID(0); a < 20; a++ {
		for b := a; b < 20; b++ {
			id := pairID(a, b)
			if seen[id] {
				t.Fatalf("collision: pairID(%d,%d) = %d already produced by a different pair", a, b, id)
			}
			seen[id] = true
		}
	}
}

func TestCellKeyInjective(t *testing.T) {
	seen := map[uint64]struct{ x, y int32 }{}
	for x := int32(-10); x <= 10; x++ {
		for y := int32(-10); y <= 10; y++ {
			key := cellKey(x, y)
			if prior, ok := seen[key]; ok {
				t.Fatalf("cellKey(%d,%d) collides with cellKey(%d,%d): both %d", x, y, prior.x, prior.y, key)
			}
			seen[key] = struct{ x, y int32 }{x, y}
		}
	}
}

func TestZigzag(t *testing.T) {
	cases := map[int32]uint64{0: 0, 1: 2, -1: 1, 2: 4, -2: 3}
	for n, want := range cases {
		if got := zigzag(n); got != want {
			t.Errorf("zigzag(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestIsqrt(t *testing.T) {
	cases := map[uint64]uint64{0: 0, 1: 1, 2: 1, 3: 1, 4: 2, 15: 3, 16: 4, 1 << 40: 1 << 20}
	for n, want := range cases {
		if got := isqrt(n); got != want {
			t.Errorf("isqrt(%d) = %d, want %d", n, got, want)
		}
	}
}
