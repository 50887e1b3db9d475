package arena

import (
	"fmt"
	"sort"
)

// AreaKind discriminates the two attack shapes.
type AreaKind uint8

const (
	// LongArea covers one full slot across all rings.
	LongArea AreaKind = iota
	// WideArea covers two adjacent slots, inner rings only.
	WideArea
)

// Area is one placed attack shape. Slot is the covered slot for a long
// area and the left slot for a wide one. Whitelist is the set of tools
// still valid for every enemy the area has been assigned to cover; it
// starts unconstrained and shrinks by intersection.
type Area struct {
	Kind      AreaKind
	Slot      Num
	Whitelist AttackSet
}

// LongAreaAt builds a long area covering the enemy's slot.
func LongAreaAt(e *Enemy) Area {
	return Area{Kind: LongArea, Slot: e.Position.Slot, Whitelist: e.Required.Attacks()}
}

// WideAreaAt builds a wide area covering the enemy. With leftBound the
// enemy sits on the area's right slot, otherwise on its left slot.
func WideAreaAt(e *Enemy, leftBound bool) Area {
	left := e.Position.Slot
	if leftBound {
		left = (left + Slot.Size() - 1) % Slot.Size()
	}
	return Area{Kind: WideArea, Slot: left, Whitelist: e.Required.Attacks()}
}

// RightSlot returns the second slot claimed by a wide area.
func (a Area) RightSlot() Num {
	return Slot.Next(a.Slot)
}

// Covers reports whether the area reaches the given cell.
func (a Area) Covers(p Position) bool {
	switch a.Kind {
	case LongArea:
		return p.Slot == a.Slot
	default:
		return p.Ring < Ring.Size()/2 && (p.Slot == a.Slot || p.Slot == a.RightSlot())
	}
}

// Limit intersects the whitelist with the enemy's tool requirement.
// It fails when no tool remains.
func (a *Area) Limit(e *Enemy) bool {
	a.Whitelist = a.Whitelist.Intersect(e.Required.Attacks())
	return !a.Whitelist.Empty()
}

// String formats the area the way the command interpreter prints it:
// "c<slot>" for long areas, "h<left><right>" for wide ones (1-indexed).
func (a Area) String() string {
	if a.Kind == LongArea {
		return fmt.Sprintf("c%d", a.Slot+1)
	}
	return fmt.Sprintf("h%d%d", a.Slot+1, a.RightSlot()+1)
}

// Coverage is an ordered assignment of attack areas that together cover
// every enemy, never exceeding the arena's group budget.
type Coverage struct {
	Areas []Area
}

// clone returns an independent copy for a backtracking branch.
func (c Coverage) clone() Coverage {
	areas := make([]Area, len(c.Areas))
	copy(areas, c.Areas)
	return Coverage{Areas: areas}
}

// claimedSlots returns the bitmask of slots already claimed by placed
// areas.
func (c Coverage) claimedSlots() uint16 {
	var claimed uint16
	for _, a := range c.Areas {
		claimed |= 1 << a.Slot
		if a.Kind == WideArea {
			claimed |= 1 << a.RightSlot()
		}
	}
	return claimed
}

// CanHold reports whether the candidate area claims only unclaimed slots.
func (c Coverage) CanHold(candidate Area) bool {
	claimed := c.claimedSlots()
	if claimed&(1<<candidate.Slot) != 0 {
		return false
	}
	if candidate.Kind == WideArea && claimed&(1<<candidate.RightSlot()) != 0 {
		return false
	}
	return true
}

// coveringIndex returns the index of the area covering the cell, or -1.
func (c Coverage) coveringIndex(p Position) int {
	for i, a := range c.Areas {
		if a.Covers(p) {
			return i
		}
	}
	return -1
}

// CoveringArea returns the area covering the cell, if any.
func (c Coverage) CoveringArea(p Position) (Area, bool) {
	if i := c.coveringIndex(p); i >= 0 {
		return c.Areas[i], true
	}
	return Area{}, false
}

// Covers reports whether some placed area reaches the cell.
func (c Coverage) Covers(p Position) bool {
	return c.coveringIndex(p) >= 0
}

// outer reports whether the enemy stands on the outer half of the rings,
// where only long areas reach.
func outer(e *Enemy) bool {
	return e.Position.Ring >= Ring.Size()/2
}

// hammerEnemyCoverable rejects the one combination a whitelist can't
// express: an enemy that must be hammered, covered by a long area, with no
// throwing hammer available. Boots could still satisfy a boots-or-hammer
// enemy on a long area, but a hammer-only enemy needs the hammer thrown.
func hammerEnemyCoverable(e *Enemy, a Area, eq Equipment) bool {
	return !(a.Kind == LongArea && e.Required == NeedsHammer && !eq.Hammer)
}

// FindCoverage searches for a complete coverage of the arena's enemies
// within its group budget. It returns the first coverage found by the
// deterministic depth-first search, or ok == false when none exists.
func FindCoverage(a *SolvableArena) (Coverage, bool) {
	enemies := make([]*Enemy, len(a.Entities))
	copy(enemies, a.Entities)
	// outer enemies first: their equipment failures are hard, then inner
	// enemies by increasing ring and slot
	sort.SliceStable(enemies, func(i, j int) bool {
		oi, oj := outer(enemies[i]), outer(enemies[j])
		if oi != oj {
			return oi
		}
		pi, pj := enemies[i].Position, enemies[j].Position
		if pi.Ring != pj.Ring {
			return pi.Ring < pj.Ring
		}
		return pi.Slot < pj.Slot
	})

	return Coverage{}.finalize(enemies, a, int(a.NumGroups()))
}

// finalize assigns areas to the remaining enemies, backtracking over the
// placement choices for inner enemies.
func (c Coverage) finalize(enemies []*Enemy, a *SolvableArena, numGroups int) (Coverage, bool) {
	eq := a.Equipment

	for i, enemy := range enemies {
		if outer(enemy) {
			// outer rings are reached by thrown tools only; missing
			// equipment is unfixable by placement
			var present bool
			switch enemy.Required {
			case BootsOrHammer:
				present = eq.IronBoots || eq.Hammer
			case NeedsHammer:
				present = eq.Hammer
			default:
				present = true
			}
			if !present {
				return Coverage{}, false
			}

			if j := c.coveringIndex(enemy.Position); j >= 0 {
				if !c.Areas[j].Limit(enemy) {
					return Coverage{}, false
				}
				continue
			}

			if len(c.Areas) >= numGroups {
				return Coverage{}, false
			}
			c.Areas = append(c.Areas, LongAreaAt(enemy))
			continue
		}

		// inner enemy
		if j := c.coveringIndex(enemy.Position); j >= 0 {
			if !hammerEnemyCoverable(enemy, c.Areas[j], eq) {
				return Coverage{}, false
			}
			if !c.Areas[j].Limit(enemy) {
				return Coverage{}, false
			}
			continue
		}

		if len(c.Areas) >= numGroups {
			return Coverage{}, false
		}

		rest := enemies[i+1:]
		tryArea := func(candidate Area) (Coverage, bool) {
			next := c.clone()
			next.Areas = append(next.Areas, candidate)
			return next.finalize(rest, a, numGroups)
		}

		// jump enemies can't be covered by wide areas
		if enemy.Required != NeedsJump {
			if left := WideAreaAt(enemy, true); c.CanHold(left) {
				if res, ok := tryArea(left); ok {
					return res, true
				}
			}
			if right := WideAreaAt(enemy, false); c.CanHold(right) {
				if res, ok := tryArea(right); ok {
					return res, true
				}
			}
		}

		long := LongAreaAt(enemy)
		if hammerEnemyCoverable(enemy, long, eq) && c.CanHold(long) {
			if res, ok := tryArea(long); ok {
				return res, true
			}
		}

		return Coverage{}, false
	}

	return c, true
}
