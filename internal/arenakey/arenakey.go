// Package arenakey implements compact state keys for ring-arena boards.
//
// A key canonically identifies a solvable arena: occupant kind per cell,
// available equipment and any manual group override. Keys are value types,
// independent of enemy insertion order, so they can index Go maps directly.
// The printable ID form is a short base64 string used by external
// consumers to echo states.
package arenakey

// Board geometry, mirrored here so the package stays free of the engine
// dependency (the engine converts its own types into a State).
const (
	NumRings = 4
	NumSlots = 12
)

// Occupant codes for State cells.
const (
	CellEmpty uint8 = iota
	CellEnemy
	CellBootsOrHammer
	CellJump
	CellHammer
)

// State is the neutral board representation keys are built from.
type State struct {
	Cells  [NumRings][NumSlots]uint8 // occupant code per cell
	Hammer bool                      // throwing hammer available
	Boots  bool                      // iron boots available
	Groups uint8                     // manual group override, 0 = automatic
}

// Key is the compact binary key: 3 bits per cell (48 cells), 2 equipment
// bits and 8 override bits, packed little-end first into 5 uint32s.
type Key struct {
	Data [5]uint32
}

// keyBits is the number of bits a key actually uses.
const keyBits = NumRings*NumSlots*3 + 2 + 8

// Base64 alphabet used for printable key IDs.
const base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// IDLength is the length of a printable key ID.
const IDLength = (keyBits + 5) / 6

// MakeKey packs a state into its canonical key.
func MakeKey(s State) Key {
	var key Key
	bit := 0
	put := func(v uint32, width int) {
		for i := 0; i < width; i++ {
			if v&(1<<i) != 0 {
				key.Data[bit/32] |= 1 << (bit % 32)
			}
			bit++
		}
	}

	for ring := 0; ring < NumRings; ring++ {
		for slot := 0; slot < NumSlots; slot++ {
			put(uint32(s.Cells[ring][slot]), 3)
		}
	}
	if s.Hammer {
		put(1, 1)
	} else {
		put(0, 1)
	}
	if s.Boots {
		put(1, 1)
	} else {
		put(0, 1)
	}
	put(uint32(s.Groups), 8)

	return key
}

// ID returns the printable base64 form of the key.
func (k Key) ID() string {
	id := make([]byte, IDLength)
	for i := range id {
		var chunk uint32
		for j := 0; j < 6; j++ {
			bit := i*6 + j
			if bit < len(k.Data)*32 && k.Data[bit/32]&(1<<(bit%32)) != 0 {
				chunk |= 1 << j
			}
		}
		id[i] = base64Chars[chunk]
	}
	return string(id)
}
