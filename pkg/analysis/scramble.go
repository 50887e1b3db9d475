// Package analysis provides statistical difficulty sampling for arenas.
// A scramble run perturbs a board with random moves and measures how often
// and how cheaply the planner can bring it back to a coverable state.
package analysis

import (
	"math/rand"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/yourusername/ringarena/pkg/arena"
)

// ScrambleOptions controls a scramble run.
type ScrambleOptions struct {
	Trials   int   // Number of scrambled boards to sample (default 100)
	Depth    int   // Random moves applied per trial (default 3)
	MaxTurns int   // Solve budget cap per trial (default Depth)
	Seed     int64 // RNG seed (0 = use current time)
	Fast     bool  // Accept the first solution instead of the best one
}

// ScrambleResult aggregates a scramble run. Turn and amount statistics
// cover solved trials only.
type ScrambleResult struct {
	Trials         int     // Trials executed
	Solved         int     // Trials the planner solved within the cap
	SolvedFraction float64 // Solved / Trials

	MeanTurns    float64 // Mean solution length
	TurnsStdDev  float64 // Standard deviation of solution length
	MeanAmount   float64 // Mean sum of normalized move amounts
	AmountStdDev float64 // Standard deviation of that sum

	CacheStates int // Distinct boards memoized across all trials
}

// Scramble samples randomized perturbations of the arena. The run is
// deterministic for a fixed non-zero seed. One solve cache is shared
// across all trials, so later trials benefit from earlier exploration.
func Scramble(a *arena.SolvableArena, opts ScrambleOptions) *ScrambleResult {
	if opts.Trials <= 0 {
		opts.Trials = 100
	}
	if opts.Depth <= 0 {
		opts.Depth = 3
	}
	if opts.MaxTurns <= 0 {
		opts.MaxTurns = opts.Depth
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	cache := arena.NewSolveCache()

	var turns, amounts []float64
	result := &ScrambleResult{Trials: opts.Trials}

	for trial := 0; trial < opts.Trials; trial++ {
		scrambled := a.Clone()
		for i := 0; i < opts.Depth; i++ {
			scrambled.ApplyMove(randomMove(rng))
		}

		solution, solvedIn, ok := solveWithCache(scrambled, opts.MaxTurns, opts.Fast, cache)
		if !ok {
			continue
		}
		result.Solved++
		turns = append(turns, float64(solvedIn))
		amounts = append(amounts, float64(normalizedAmountSum(solution)))
	}

	result.SolvedFraction = float64(result.Solved) / float64(result.Trials)
	if len(turns) > 0 {
		result.MeanTurns = stat.Mean(turns, nil)
		result.MeanAmount = stat.Mean(amounts, nil)
	}
	if len(turns) > 1 {
		result.TurnsStdDev = stat.StdDev(turns, nil)
		result.AmountStdDev = stat.StdDev(amounts, nil)
	}
	result.CacheStates = cache.Len()

	return result
}

// solveWithCache is iterative deepening over a caller-owned cache.
func solveWithCache(a *arena.SolvableArena, maxTurns int, fast bool, cache *arena.SolveCache) ([]arena.Move, int, bool) {
	for t := 1; t <= maxTurns; t++ {
		if solution, ok := arena.Solve(a, t, fast, cache); ok {
			return solution, len(solution), true
		}
	}
	return nil, 0, false
}

// randomMove draws a uniformly random positive-direction move.
func randomMove(rng *rand.Rand) arena.Move {
	d := arena.Ring
	if rng.Intn(2) == 1 {
		d = arena.Slot
	}
	return arena.Move{
		Dimension:  d,
		Coordinate: arena.Num(rng.Intn(int(d.Size()))),
		Amount:     arena.Num(1 + rng.Intn(int(d.Changes().Size()))),
		Positive:   true,
	}
}

func normalizedAmountSum(moves []arena.Move) int {
	sum := 0
	for _, m := range moves {
		sum += int(m.Normalized().Amount)
	}
	return sum
}
