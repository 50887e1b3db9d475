package arena

import (
	"github.com/yourusername/ringarena/internal/arenakey"
)

// SolveCache memoizes the solvability of boards seen during a planning
// search. One cache belongs to one top-level Solve invocation (or to one
// iterative-deepening run) and is threaded by reference through the whole
// recursion; it is not safe for concurrent use.
type SolveCache struct {
	entries map[arenakey.Key]bool

	// statistics
	lookups uint64
	hits    uint64
}

// NewSolveCache returns an empty cache.
func NewSolveCache() *SolveCache {
	return &SolveCache{entries: make(map[arenakey.Key]bool)}
}

// stateOf converts an arena into the neutral key representation.
func stateOf(a *SolvableArena) arenakey.State {
	s := arenakey.State{
		Hammer: a.Equipment.Hammer,
		Boots:  a.Equipment.IronBoots,
		Groups: a.GroupOverride,
	}
	for _, e := range a.Entities {
		var code uint8
		switch e.Required {
		case BootsOrHammer:
			code = arenakey.CellBootsOrHammer
		case NeedsJump:
			code = arenakey.CellJump
		case NeedsHammer:
			code = arenakey.CellHammer
		default:
			code = arenakey.CellEnemy
		}
		s.Cells[e.Position.Ring][e.Position.Slot] = code
	}
	return s
}

// KeyID returns the printable canonical state ID of the board, as used by
// external consumers to correlate requests and responses.
func (a *SolvableArena) KeyID() string {
	return arenakey.MakeKey(stateOf(a)).ID()
}

// Lookup reports whether the board's solvability is already recorded.
func (c *SolveCache) Lookup(a *SolvableArena) (solved, ok bool) {
	c.lookups++
	solved, ok = c.entries[arenakey.MakeKey(stateOf(a))]
	if ok {
		c.hits++
	}
	return solved, ok
}

// Store records the board's solvability.
func (c *SolveCache) Store(a *SolvableArena, solved bool) {
	c.entries[arenakey.MakeKey(stateOf(a))] = solved
}

// Len returns the number of distinct boards recorded.
func (c *SolveCache) Len() int {
	return len(c.entries)
}

// Stats returns lookup and hit counters.
func (c *SolveCache) Stats() (lookups, hits uint64) {
	return c.lookups, c.hits
}
