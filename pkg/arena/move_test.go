package arena

import (
	"errors"
	"testing"
)

func mustParseMove(t *testing.T, s string) Move {
	t.Helper()
	m, err := ParseMove(s)
	if err != nil {
		t.Fatalf("ParseMove(%q) failed: %v", s, err)
	}
	return m
}

func TestParseMove(t *testing.T) {
	want, err := NewMove(Slot, 2, 1, false)
	if err != nil {
		t.Fatalf("NewMove failed: %v", err)
	}
	if got := mustParseMove(t, "c3 -1"); got != want {
		t.Errorf("ParseMove(\"c3 -1\") = %+v, want %+v", got, want)
	}
}

func TestParseMoveErrors(t *testing.T) {
	cases := []struct {
		in   string
		want MoveParseErrorDetails
	}{
		{"r1", ParseInvalidFormat},
		{"r1 2 3", ParseInvalidFormat},
		{"x1 2", ParseInvalidDimension},
		{"rx 2", ParseNotANumber},
		{"r1 y", ParseNotANumber},
		{"r9 1", ParseInvalidCoordinate},
		{"c13 1", ParseInvalidCoordinate},
	}
	for _, c := range cases {
		_, err := ParseMove(c.in)
		var perr *MoveParseError
		if !errors.As(err, &perr) {
			t.Errorf("ParseMove(%q) = %v, want *MoveParseError", c.in, err)
			continue
		}
		if perr.Details != c.want {
			t.Errorf("ParseMove(%q) details = %d, want %d", c.in, perr.Details, c.want)
		}
	}
}

func TestNormalized(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"r1 9", "r1 -3"},
		{"c8 -2", "c2 2"},
		{"c9 4", "c3 4"},
	}
	for _, c := range cases {
		in := mustParseMove(t, c.in)
		want := mustParseMove(t, c.want)
		if got := in.Normalized(); got != want {
			t.Errorf("Normalized(%q) = %+v, want %+v (%q)", c.in, got, want, c.want)
		}
	}
}

func TestNormalizedIdempotent(t *testing.T) {
	for _, d := range []Dimension{Ring, Slot} {
		for coordinate := Num(0); coordinate < d.Size(); coordinate++ {
			for amount := Num(0); amount <= 2*d.Changes().Size(); amount++ {
				for _, positive := range []bool{true, false} {
					m := Move{Dimension: d, Coordinate: coordinate, Amount: amount, Positive: positive}
					once := m.Normalized()
					if twice := once.Normalized(); twice != once {
						t.Fatalf("Normalized not idempotent for %+v: %+v != %+v", m, once, twice)
					}
				}
			}
		}
	}
}

func TestMoveString(t *testing.T) {
	if got := mustParseMove(t, "c1 4").String(); got != "c1 4" {
		t.Errorf("String() = %q, want %q", got, "c1 4")
	}
	if got := mustParseMove(t, "r3 11").String(); got != "r3 -1" {
		t.Errorf("String() = %q, want %q", got, "r3 -1")
	}
}

func TestMoveStringRoundTrip(t *testing.T) {
	for _, s := range []string{"r1 3", "r4 -2", "c1 4", "c6 -3", "c2 2"} {
		m := mustParseMove(t, s)
		if back := mustParseMove(t, m.String()); back.Normalized() != m.Normalized() {
			t.Errorf("round trip of %q changed the move: %q", s, m.String())
		}
	}
}
