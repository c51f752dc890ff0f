// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "testing"

func TestCollisionPairPairID(t *testing.T) {
	pair := CollisionPair{ReferenceID: 2, IncidentID: 9, id: pairID(2, 9)}
	if pair.PairID() != pairID(9, 2) {
		t.Errorf("PairID() = %d, want order-independent id %d", pair.PairID(), pairID(9, 2))
	}
}
