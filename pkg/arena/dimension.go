// Package arena models a ring-shaped puzzle board: four concentric rings
// of twelve slots each, intersected by push/pull spokes. It provides the
// move algebra over that board, a coverage solver that decides whether
// every enemy can be eliminated with a limited number of attack areas, and
// a turn-bounded move planner that searches for a sequence of moves
// leading to a coverable board.
package arena

import "fmt"

// Num is the coordinate value type. All board coordinates fit in one byte.
type Num = uint8

// Dimension selects one of the two board axes.
type Dimension uint8

const (
	// Ring is the radial axis: 4 concentric rings, 0 = innermost.
	Ring Dimension = iota
	// Slot is the angular axis: 12 positions around the board.
	Slot
)

// NumRings and NumSlots are the axis sizes.
const (
	NumRings Num = 4
	NumSlots Num = 12
)

// Size returns the number of valid coordinates on this axis.
func (d Dimension) Size() Num {
	if d == Ring {
		return NumRings
	}
	return NumSlots
}

// Name returns the human-readable axis name.
func (d Dimension) Name() string {
	if d == Ring {
		return "Ring"
	}
	return "Slot"
}

// Changes returns the axis a move along this dimension changes.
// Rotating a ring changes slots; pushing a spoke changes rings.
func (d Dimension) Changes() Dimension {
	if d == Ring {
		return Slot
	}
	return Ring
}

// Next returns the coordinate after c in the positive direction, wrapping
// at the axis size.
func (d Dimension) Next(c Num) Num {
	return (c + 1) % d.Size()
}

// Adapt range-checks a raw integer and narrows it to a coordinate on this
// axis. Values that do not fit in a Num or are >= the axis size fail with
// an *OutOfRangeError; nothing is ever clamped.
func (d Dimension) Adapt(raw int) (Num, error) {
	if raw < 0 || raw > 255 {
		return 0, &OutOfRangeError{Dimension: d, Value: raw, Conversion: true}
	}
	n := Num(raw)
	if n >= d.Size() {
		return 0, &OutOfRangeError{Dimension: d, Value: raw}
	}
	return n, nil
}

func (d Dimension) String() string {
	return d.Name()
}

// OutOfRangeError reports a raw value that is not a valid coordinate on an
// axis. Conversion is set when the value does not even fit the coordinate
// integer type.
type OutOfRangeError struct {
	Dimension  Dimension
	Value      int
	Conversion bool
}

func (e *OutOfRangeError) Error() string {
	if e.Conversion {
		return fmt.Sprintf("can't convert %d to a %s coordinate", e.Value, e.Dimension)
	}
	return fmt.Sprintf("%d is too large for %s (0..%d)", e.Value, e.Dimension, e.Dimension.Size())
}
