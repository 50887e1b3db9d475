package arena

// MaxAutoTurns is the deepest budget SolveAuto will try when no explicit
// cap is given, matching the interactive solver's 1..100 deepening loop.
// Practical boards solve within a handful of turns; the branching factor
// (~96 moves per ply) makes large budgets unusable anyway.
const MaxAutoTurns = 100

// Solve searches for a move sequence of at most turns moves that leaves
// the board coverable. With fast set the first completed solution is
// returned immediately; otherwise the whole move tree is explored and the
// best solution wins (fewer moves, then the smaller sum of normalized
// amounts). cache may be nil for a one-shot call; passing the same cache
// across calls reuses solvability already discovered.
//
// ok == false means no solution exists within the budget, which is
// distinct from any input error: every enumerated move is valid by
// construction.
func Solve(a *SolvableArena, turns int, fast bool, cache *SolveCache) (moves []Move, ok bool) {
	if cache == nil {
		cache = NewSolveCache()
	}

	if solved, known := cache.Lookup(a); known {
		if solved {
			return []Move{}, true
		}
	} else if a.IsSolved() {
		cache.Store(a, true)
		return []Move{}, true
	} else {
		cache.Store(a, false)
	}

	if turns <= 0 {
		return nil, false
	}

	var best []Move
	haveBest := false

	// fixed enumeration order: Ring moves before Slot moves, coordinates
	// ascending, amounts 1..size of the changed axis, positive only
	// (amount k negative reaches the same state as range-k positive)
	for _, d := range []Dimension{Ring, Slot} {
		for coordinate := Num(0); coordinate < d.Size(); coordinate++ {
			for amount := Num(1); amount <= d.Changes().Size(); amount++ {
				m := Move{Dimension: d, Coordinate: coordinate, Amount: amount, Positive: true}
				next := a.Clone()
				next.ApplyMove(m)

				rest, solved := Solve(next, turns-1, fast, cache)
				if !solved {
					continue
				}
				solution := append([]Move{m}, rest...)

				if fast {
					return solution, true
				}
				if !haveBest || betterSolution(solution, best) {
					best = solution
					haveBest = true
				}
			}
		}
	}

	return best, haveBest
}

// betterSolution reports whether a beats b: fewer moves wins, a tie goes
// to the visually smaller solution by normalized amount sum.
func betterSolution(a, b []Move) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return normalizedAmountSum(a) < normalizedAmountSum(b)
}

func normalizedAmountSum(moves []Move) int {
	sum := 0
	for _, m := range moves {
		sum += int(m.Normalized().Amount)
	}
	return sum
}

// SolveAuto looks for a minimal-turn solution by iterative deepening:
// budgets 1, 2, 3, ... up to maxTurns (0 means MaxAutoTurns) with one
// shared cache, stopping at the first budget that yields a result. It
// returns the solution and the budget that produced it.
func SolveAuto(a *SolvableArena, fast bool, maxTurns int) (moves []Move, turns int, ok bool) {
	if maxTurns <= 0 {
		maxTurns = MaxAutoTurns
	}
	cache := NewSolveCache()
	for t := 1; t <= maxTurns; t++ {
		if solution, solved := Solve(a, t, fast, cache); solved {
			return solution, t, true
		}
	}
	return nil, 0, false
}
