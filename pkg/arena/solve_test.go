package arena

import (
	"strings"
	"testing"
)

func steps(t *testing.T, moves []Move) string {
	t.Helper()
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, ", ")
}

func TestSolveSimple(t *testing.T) {
	a := NewSolvableArena()
	place(t, a, "c2", "124", AnyAttack)
	place(t, a, "c3", "3", AnyAttack)

	solution, ok := Solve(a, 1, false, nil)
	if !ok {
		t.Fatal("is solvable")
	}
	if got := steps(t, solution); got != "r3 -1" {
		t.Errorf("solution = %q, want %q", got, "r3 -1")
	}
}

func TestSolveTwoSteps(t *testing.T) {
	a := NewSolvableArena()
	place(t, a, "c2", "124", AnyAttack)
	place(t, a, "c3", "3", AnyAttack)
	place(t, a, "c4", "2", AnyAttack)
	place(t, a, "c5", "123", AnyAttack)

	solution, ok := Solve(a, 2, false, nil)
	if !ok {
		t.Fatal("is solvable")
	}
	if got := steps(t, solution); got != "r3 -1, c4 -1" {
		t.Errorf("solution = %q, want %q", got, "r3 -1, c4 -1")
	}
}

func TestSolveExample1(t *testing.T) {
	a := NewSolvableArena()
	place(t, a, "c2", "23", AnyAttack)
	place(t, a, "c6", "1234", AnyAttack)
	place(t, a, "c8", "14", AnyAttack)

	solution, ok := Solve(a, 3, true, nil)
	if !ok {
		t.Fatal("is solvable in 3")
	}
	checkSolution(t, a, solution)
}

func TestSolveExample2(t *testing.T) {
	a := NewSolvableArena()
	place(t, a, "c2", "12", AnyAttack)
	place(t, a, "c3", "4", AnyAttack)
	place(t, a, "c5", "12", AnyAttack)
	place(t, a, "c8", "12", AnyAttack)
	place(t, a, "c9", "123", AnyAttack)
	place(t, a, "c11", "3", AnyAttack)
	place(t, a, "c11", "4", AnyAttack)

	solution, ok := Solve(a, 3, true, nil)
	if !ok {
		t.Fatal("is solvable in 3")
	}
	checkSolution(t, a, solution)
}

// checkSolution applies the moves to a copy of the board and verifies the
// result is coverable.
func checkSolution(t *testing.T, a *SolvableArena, solution []Move) {
	t.Helper()
	after := a.Clone()
	for _, m := range solution {
		after.ApplyMove(m)
	}
	if !after.IsSolved() {
		t.Errorf("applying %q does not leave a coverable board", steps(t, solution))
	}
}

func TestSolveZeroBudget(t *testing.T) {
	unsolved := NewSolvableArena()
	place(t, unsolved, "c2", "124", AnyAttack)
	place(t, unsolved, "c3", "3", AnyAttack)
	if _, ok := Solve(unsolved, 0, false, nil); ok {
		t.Error("a zero budget should only succeed on an already coverable board")
	}

	solved := NewSolvableArena()
	place(t, solved, "c2", "1234", AnyAttack)
	solution, ok := Solve(solved, 0, false, nil)
	if !ok {
		t.Fatal("an already coverable board succeeds with any budget")
	}
	if len(solution) != 0 {
		t.Errorf("solution = %q, want no moves", steps(t, solution))
	}
}

func TestSolveSharedCache(t *testing.T) {
	a := NewSolvableArena()
	place(t, a, "c2", "124", AnyAttack)
	place(t, a, "c3", "3", AnyAttack)

	cache := NewSolveCache()
	if _, ok := Solve(a, 1, false, cache); !ok {
		t.Fatal("is solvable")
	}
	states := cache.Len()
	if states == 0 {
		t.Fatal("search should populate the cache")
	}

	// the second call over the same cache answers from stored states
	if _, ok := Solve(a, 1, false, cache); !ok {
		t.Fatal("still solvable with a warm cache")
	}
	lookups, hits := cache.Stats()
	if hits == 0 {
		t.Errorf("warm cache saw %d lookups but no hits", lookups)
	}
}

func TestSolveAuto(t *testing.T) {
	a := NewSolvableArena()
	place(t, a, "c2", "124", AnyAttack)
	place(t, a, "c3", "3", AnyAttack)
	place(t, a, "c4", "2", AnyAttack)
	place(t, a, "c5", "123", AnyAttack)

	solution, turns, ok := SolveAuto(a, false, 3)
	if !ok {
		t.Fatal("is solvable")
	}
	if turns != 2 {
		t.Errorf("turns = %d, want 2", turns)
	}
	if got := steps(t, solution); got != "r3 -1, c4 -1" {
		t.Errorf("solution = %q, want %q", got, "r3 -1, c4 -1")
	}
}

func TestSolveAutoUnsolvable(t *testing.T) {
	// five enemies force two attack areas but no single slot pair can ever
	// collect them within one move of this layout; a tight cap keeps the
	// test fast
	a := NewSolvableArena()
	place(t, a, "c1", "12", AnyAttack)
	place(t, a, "c4", "12", AnyAttack)
	place(t, a, "c7", "12", AnyAttack)
	place(t, a, "c10", "12", AnyAttack)
	a.GroupOverride = 1

	if _, _, ok := SolveAuto(a, true, 1); ok {
		t.Error("four spread columns can't collapse to one group in one move")
	}
}
