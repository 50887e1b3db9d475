package arena

import "fmt"

// Attack is one concrete attack tool.
type Attack uint8

const (
	Jump Attack = 1 << iota
	Hammer
	IronBoots
)

// AttackSet is a set of attack tools, stored as a bitmask.
type AttackSet uint8

// AllAttacks is the unconstrained whitelist.
const AllAttacks = AttackSet(Jump | Hammer | IronBoots)

// Contains reports whether the set includes the given tool.
func (s AttackSet) Contains(a Attack) bool {
	return s&AttackSet(a) != 0
}

// Intersect returns the tools present in both sets.
func (s AttackSet) Intersect(other AttackSet) AttackSet {
	return s & other
}

// Empty reports whether no tool remains.
func (s AttackSet) Empty() bool {
	return s == 0
}

// RequiredAttack constrains how an enemy must be attacked.
type RequiredAttack uint8

const (
	// AnyAttack places no constraint.
	AnyAttack RequiredAttack = iota
	// BootsOrHammer enemies must be hit with iron boots or a hammer.
	BootsOrHammer
	// NeedsJump enemies must be attacked with a jump.
	NeedsJump
	// NeedsHammer enemies must be attacked with a hammer.
	NeedsHammer
)

// Attacks returns the concrete tools able to damage an enemy with this
// requirement.
func (r RequiredAttack) Attacks() AttackSet {
	switch r {
	case BootsOrHammer:
		return AttackSet(IronBoots | Hammer)
	case NeedsJump:
		return AttackSet(Jump | IronBoots)
	case NeedsHammer:
		return AttackSet(Hammer)
	default:
		return AllAttacks
	}
}

// Symbol returns the single-character code for this requirement, as used
// by the board rendering and the command interpreter.
func (r RequiredAttack) Symbol() byte {
	switch r {
	case BootsOrHammer:
		return 'P'
	case NeedsJump:
		return 'J'
	case NeedsHammer:
		return 'H'
	default:
		return 'E'
	}
}

// Enemy is a board occupant with an optional attack requirement.
type Enemy struct {
	Position Position
	Required RequiredAttack
}

// Pos exposes the enemy's mutable position.
func (e *Enemy) Pos() *Position {
	return &e.Position
}

// Clone returns an independent copy.
func (e *Enemy) Clone() *Enemy {
	c := *e
	return &c
}

// ArenaSymbol implements Symboler.
func (e *Enemy) ArenaSymbol() byte {
	return e.Required.Symbol()
}

// Equipment records which throwable/wearable tools the player owns.
type Equipment struct {
	Hammer    bool
	IronBoots bool
}

// DefaultEquipment has everything available.
func DefaultEquipment() Equipment {
	return Equipment{Hammer: true, IronBoots: true}
}

// SolvableArena is an enemy arena together with the solving parameters:
// an optional manual group-count override (0 = derive from the enemy
// count) and the available equipment.
type SolvableArena struct {
	Arena[*Enemy]
	GroupOverride Num
	Equipment     Equipment
}

// NewSolvableArena returns an empty arena with default equipment.
func NewSolvableArena() *SolvableArena {
	return &SolvableArena{
		Arena:     *NewArena[*Enemy](),
		Equipment: DefaultEquipment(),
	}
}

// NumGroups returns the attack-area budget: the manual override if set,
// otherwise ceil(enemies / 4).
func (a *SolvableArena) NumGroups() Num {
	if a.GroupOverride != 0 {
		return a.GroupOverride
	}
	n := a.Len()
	groups := n / 4
	if n%4 != 0 {
		groups++
	}
	return Num(groups)
}

// IsSolved reports whether a coverage exists for the current board.
func (a *SolvableArena) IsSolved() bool {
	_, ok := FindCoverage(a)
	return ok
}

// Clone returns a deep copy of the arena and its solving parameters.
func (a *SolvableArena) Clone() *SolvableArena {
	return &SolvableArena{
		Arena:         *a.Arena.Clone(),
		GroupOverride: a.GroupOverride,
		Equipment:     a.Equipment,
	}
}

// AddEnemy places an enemy at a validated position, replacing any previous
// occupant of that cell.
func (a *SolvableArena) AddEnemy(ring, slot int, required RequiredAttack) error {
	pos, err := At(ring, slot)
	if err != nil {
		return fmt.Errorf("add enemy: %w", err)
	}
	a.Add(&Enemy{Position: pos, Required: required})
	return nil
}
