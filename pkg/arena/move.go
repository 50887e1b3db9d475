package arena

import (
	"fmt"
	"strconv"
	"strings"
)

// Move is one board mutation: rotate ring Coordinate by Amount slots
// (Dimension == Ring), or push spoke Coordinate by Amount rings
// (Dimension == Slot). Positive means clockwise or outward, depending on
// the dimension.
type Move struct {
	Dimension  Dimension
	Coordinate Num
	Amount     Num
	Positive   bool
}

// NewMove validates the coordinate against the dimension and builds a
// Move. The amount is not range-checked: any amount is meaningful under
// the modular arithmetic of ApplyMove.
func NewMove(d Dimension, coordinate, amount int, positive bool) (Move, error) {
	c, err := d.Adapt(coordinate)
	if err != nil {
		return Move{}, fmt.Errorf("invalid coordinate: %w", err)
	}
	if amount < 0 || amount > 255 {
		return Move{}, fmt.Errorf("invalid amount: %d does not fit a coordinate", amount)
	}
	return Move{Dimension: d, Coordinate: c, Amount: Num(amount), Positive: positive}, nil
}

// Normalized returns the canonical equivalent move: the smallest amount,
// the preferred direction, and for spoke pushes the lower-half coordinate.
// Normalization is idempotent.
func (m Move) Normalized() Move {
	switch m.Dimension {
	case Ring:
		// turn by the lowest amount possible
		m.Amount %= Slot.Size()
		if m.Amount > Slot.Size()/2 {
			m.Amount = Slot.Size() - m.Amount
			m.Positive = !m.Positive
		}
	case Slot:
		// prefer lower coordinates
		if m.Coordinate > Slot.Size()/2 {
			m.Coordinate -= Slot.Size() / 2
			m.Positive = !m.Positive
		}

		// prefer the absolute smaller amount, then the positive direction
		m.Amount %= Ring.Size() * 2
		if m.Amount > Ring.Size() {
			m.Amount = Ring.Size()*2 - m.Amount
			m.Positive = !m.Positive
		}
		if m.Amount == Ring.Size() {
			m.Positive = true
		}
	}
	return m
}

// String formats the normalized move in the short textual form parsed by
// ParseMove, e.g. "r3 -1" or "c2 2". Coordinates are 1-indexed for humans.
func (m Move) String() string {
	n := m.Normalized()
	letter := 'r'
	if n.Dimension == Slot {
		letter = 'c'
	}
	sign := ""
	if !n.Positive {
		sign = "-"
	}
	return fmt.Sprintf("%c%d %s%d", letter, n.Coordinate+1, sign, n.Amount)
}

// ParseMove parses the short textual move form "r<ring> [-]<amount>" /
// "c<slot> [-]<amount>" (1-indexed coordinates). Failures are reported as
// a *MoveParseError carrying the offending input and a discriminated
// detail.
func ParseMove(s string) (Move, error) {
	args := strings.Fields(s)
	if len(args) != 2 {
		return Move{}, &MoveParseError{Value: s, Details: ParseInvalidFormat}
	}

	arg := args[0]
	var d Dimension
	switch {
	case strings.HasPrefix(arg, "r"):
		d = Ring
	case strings.HasPrefix(arg, "c"):
		d = Slot
	default:
		return Move{}, &MoveParseError{Value: s, Details: ParseInvalidDimension}
	}

	raw, err := strconv.Atoi(arg[1:])
	if err != nil {
		return Move{}, &MoveParseError{Value: s, Details: ParseNotANumber, Argument: "coordinate", Cause: err}
	}
	if raw > 0 {
		raw--
	}
	coordinate, err := d.Adapt(raw)
	if err != nil {
		return Move{}, &MoveParseError{Value: s, Details: ParseInvalidCoordinate, Cause: err}
	}

	arg = args[1]
	positive := true
	if strings.HasPrefix(arg, "-") {
		positive = false
		arg = arg[1:]
	}
	amount, err := strconv.Atoi(arg)
	if err != nil || amount < 0 || amount > 255 {
		if err == nil {
			err = fmt.Errorf("%d does not fit a coordinate", amount)
		}
		return Move{}, &MoveParseError{Value: s, Details: ParseNotANumber, Argument: "amount", Cause: err}
	}

	return Move{Dimension: d, Coordinate: coordinate, Amount: Num(amount), Positive: positive}, nil
}

// MoveParseErrorDetails discriminates the ways a textual move can be
// malformed.
type MoveParseErrorDetails uint8

const (
	ParseInvalidFormat MoveParseErrorDetails = iota
	ParseInvalidDimension
	ParseNotANumber
	ParseInvalidCoordinate
)

// MoveParseError reports a textual move that could not be parsed.
type MoveParseError struct {
	Value    string
	Details  MoveParseErrorDetails
	Argument string // which numeric field, for ParseNotANumber
	Cause    error
}

func (e *MoveParseError) Error() string {
	switch e.Details {
	case ParseInvalidFormat:
		return fmt.Sprintf("invalid format for %q: needs to be '<r|c><coordinate> [-]<amount>'", e.Value)
	case ParseInvalidDimension:
		return fmt.Sprintf("invalid dimension identifier for %q: needs to be 'r' or 'c'", e.Value)
	case ParseNotANumber:
		return fmt.Sprintf("%s is not a number for %q: %v", e.Argument, e.Value, e.Cause)
	default:
		return fmt.Sprintf("invalid coordinate for %q: %v", e.Value, e.Cause)
	}
}

func (e *MoveParseError) Unwrap() error {
	return e.Cause
}
