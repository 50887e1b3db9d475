package arena

import (
	"fmt"
	"strings"
)

// Entity is anything that occupies a board cell. Pos exposes the mutable
// position so the container can move entities in place; Clone produces an
// independent copy for search branches.
type Entity[E any] interface {
	Pos() *Position
	Clone() E
}

// Symboler is implemented by entities that can draw themselves as a single
// character in the ASCII board rendering.
type Symboler interface {
	ArenaSymbol() byte
}

// Arena is a keyed-by-position collection of entities, at most one per
// cell. The board has at most 48 cells, so lookups are linear scans.
type Arena[E Entity[E]] struct {
	Entities []E
}

// NewArena returns an empty arena.
func NewArena[E Entity[E]]() *Arena[E] {
	return &Arena[E]{Entities: make([]E, 0, 16)}
}

// Add inserts an entity. If the cell is already occupied the occupant is
// replaced in place; otherwise the entity is appended.
func (a *Arena[E]) Add(e E) {
	at := *e.Pos()
	for i := range a.Entities {
		if *a.Entities[i].Pos() == at {
			a.Entities[i] = e
			return
		}
	}
	a.Entities = append(a.Entities, e)
}

// Remove drops the entity at the given cell, if any.
func (a *Arena[E]) Remove(at Position) {
	for i := range a.Entities {
		if *a.Entities[i].Pos() == at {
			a.Entities = append(a.Entities[:i], a.Entities[i+1:]...)
			return
		}
	}
}

// At returns the entity occupying the cell.
func (a *Arena[E]) At(at Position) (E, bool) {
	for _, e := range a.Entities {
		if *e.Pos() == at {
			return e, true
		}
	}
	var zero E
	return zero, false
}

// Len returns the number of occupied cells.
func (a *Arena[E]) Len() int {
	return len(a.Entities)
}

// ApplyMove applies the move to every entity in place. Entities not on the
// affected ring or spoke are unaffected.
func (a *Arena[E]) ApplyMove(m Move) {
	for _, e := range a.Entities {
		e.Pos().ApplyMove(m)
	}
}

// Clone returns a deep copy of the arena.
func (a *Arena[E]) Clone() *Arena[E] {
	entities := make([]E, len(a.Entities))
	for i, e := range a.Entities {
		entities[i] = e.Clone()
	}
	return &Arena[E]{Entities: entities}
}

// String renders the board as an ASCII diamond, innermost ring at the
// center. Entities implementing Symboler draw their own character; empty
// cells are dots.
func (a *Arena[E]) String() string {
	sym := func(slot, ring Num) byte {
		e, ok := a.At(Position{Ring: ring, Slot: slot})
		if !ok {
			return '.'
		}
		if s, ok := any(e).(Symboler); ok {
			return s.ArenaSymbol()
		}
		return 'E'
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %c       %c %c       %c  (%d enemies)\n",
		sym(10, 3), sym(11, 3), sym(0, 3), sym(1, 3), a.Len())
	fmt.Fprintf(&b, "    %c     %c %c     %c  \n",
		sym(10, 2), sym(11, 2), sym(0, 2), sym(1, 2))
	fmt.Fprintf(&b, "      %c   %c %c   %c    \n",
		sym(10, 1), sym(11, 1), sym(0, 1), sym(1, 1))
	fmt.Fprintf(&b, "        %c %c %c %c      \n",
		sym(10, 0), sym(11, 0), sym(0, 0), sym(1, 0))
	fmt.Fprintf(&b, "%c %c %c %c         %c %c %c %c\n",
		sym(9, 3), sym(9, 2), sym(9, 1), sym(9, 0),
		sym(2, 0), sym(2, 1), sym(2, 2), sym(2, 3))
	fmt.Fprintf(&b, "%c %c %c %c         %c %c %c %c\n",
		sym(8, 3), sym(8, 2), sym(8, 1), sym(8, 0),
		sym(3, 0), sym(3, 1), sym(3, 2), sym(3, 3))
	fmt.Fprintf(&b, "        %c %c %c %c      \n",
		sym(7, 0), sym(6, 0), sym(5, 0), sym(4, 0))
	fmt.Fprintf(&b, "      %c   %c %c   %c    \n",
		sym(7, 1), sym(6, 1), sym(5, 1), sym(4, 1))
	fmt.Fprintf(&b, "    %c     %c %c     %c  \n",
		sym(7, 2), sym(6, 2), sym(5, 2), sym(4, 2))
	fmt.Fprintf(&b, "  %c       %c %c       %c",
		sym(7, 3), sym(6, 3), sym(5, 3), sym(4, 3))
	return b.String()
}
