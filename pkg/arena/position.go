package arena

// Position is a validated (ring, slot) cell on the board. Value semantics:
// two positions are equal iff both fields match.
type Position struct {
	Ring Num
	Slot Num
}

// At validates both coordinates and builds a Position. The first failing
// axis wins.
func At(ring, slot int) (Position, error) {
	r, err := Ring.Adapt(ring)
	if err != nil {
		return Position{}, err
	}
	s, err := Slot.Adapt(slot)
	if err != nil {
		return Position{}, err
	}
	return Position{Ring: r, Slot: s}, nil
}

// ApplyMove transforms the position in place according to m.
//
// A Ring move rotates the whole ring m.Coordinate: positions on other
// rings are untouched, positions on that ring shift by the amount in slot
// units, wrapping mod 12.
//
// A Slot move pushes the spoke m.Coordinate. The opposite spoke
// (coordinate+6 mod 12) is pulled at the same time, so positions there
// move with inverted direction. A push deep enough crosses the hub: the
// position re-emerges on the opposite spoke, its ring reflected back into
// range (fold-through).
func (p *Position) ApplyMove(m Move) {
	switch m.Dimension {
	case Ring:
		if p.Ring != m.Coordinate {
			return
		}
		size := Slot.Size()
		offset := m.Amount
		if !m.Positive {
			offset = size - m.Amount%size
		}
		p.Slot = (p.Slot + offset) % size

	case Slot:
		positive := m.Positive
		if p.Slot == (m.Coordinate+Slot.Size()/2)%Slot.Size() {
			positive = !positive
		} else if p.Slot != m.Coordinate {
			return
		}

		size := Ring.Size()
		double := 2 * size
		offset := m.Amount
		if !positive {
			offset = double - m.Amount%double
		}
		mirror := (p.Ring + offset) % double
		if mirror >= size {
			// crossed the hub: fold onto the opposite spoke
			p.Slot = (p.Slot + Slot.Size()/2) % Slot.Size()
		}
		p.Ring = min(mirror, double-1-mirror)
	}
}
