package arena

import "testing"

func mustAt(t *testing.T, ring, slot int) Position {
	t.Helper()
	p, err := At(ring, slot)
	if err != nil {
		t.Fatalf("At(%d, %d) failed: %v", ring, slot, err)
	}
	return p
}

func TestAt(t *testing.T) {
	for ring := 0; ring < int(Ring.Size()); ring++ {
		for slot := 0; slot < int(Slot.Size()); slot++ {
			p := mustAt(t, ring, slot)
			if int(p.Ring) != ring || int(p.Slot) != slot {
				t.Errorf("At(%d, %d) = %+v", ring, slot, p)
			}
		}
	}

	if _, err := At(4, 0); err == nil {
		t.Error("At(4, 0) should fail")
	}
	if _, err := At(0, 12); err == nil {
		t.Error("At(0, 12) should fail")
	}
	if _, err := At(-1, 0); err == nil {
		t.Error("At(-1, 0) should fail")
	}
}

func TestApplyMoveRing(t *testing.T) {
	p := mustAt(t, 2, 7)
	p.ApplyMove(mustParseMove(t, "r3 -1"))
	if p != mustAt(t, 2, 6) {
		t.Errorf("got %+v, want ring 2 slot 6", p)
	}

	// other rings are untouched
	q := mustAt(t, 1, 7)
	q.ApplyMove(mustParseMove(t, "r3 -1"))
	if q != mustAt(t, 1, 7) {
		t.Errorf("ring 1 should be unaffected, got %+v", q)
	}
}

func TestApplyMoveSpokePull(t *testing.T) {
	// pushing spoke 1 negative pulls the occupant through the hub onto
	// the opposite spoke
	p := mustAt(t, 0, 1)
	p.ApplyMove(mustParseMove(t, "c2 -1"))
	if p != mustAt(t, 0, 7) {
		t.Errorf("got %+v, want ring 0 slot 7", p)
	}
}

func TestApplyMoveOppositeSpoke(t *testing.T) {
	// an occupant on the opposite spoke moves with inverted direction
	p := mustAt(t, 0, 7)
	p.ApplyMove(mustParseMove(t, "c2 1"))
	if p != mustAt(t, 0, 1) {
		t.Errorf("got %+v, want ring 0 slot 1", p)
	}
}

func TestApplyMoveFoldThrough(t *testing.T) {
	// a deep push crosses the hub: the occupant re-emerges on the
	// opposite spoke with its ring reflected
	p := mustAt(t, 3, 1)
	p.ApplyMove(mustParseMove(t, "c2 2"))
	if p != mustAt(t, 2, 7) {
		t.Errorf("got %+v, want ring 2 slot 7", p)
	}
}

func TestApplyMoveUnrelatedSpoke(t *testing.T) {
	p := mustAt(t, 1, 3)
	p.ApplyMove(mustParseMove(t, "c2 2"))
	if p != mustAt(t, 1, 3) {
		t.Errorf("slot 3 should be unaffected by spoke 1, got %+v", p)
	}
}
