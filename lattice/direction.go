package lattice

import "fmt"

// Direction is one of the four orthogonal lattice steps.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// All lists every direction in enumeration order. Callers that need
// deterministic neighbour scans iterate over All.
var All = [4]Direction{Up, Down, Left, Right}

var deltas = [4]Vec{
	Up:    {X: 0, Y: 1},
	Down:  {X: 0, Y: -1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

var letters = [4]byte{Up: 'U', Down: 'D', Left: 'L', Right: 'R'}

var names = [4]string{Up: "Up", Down: "Down", Left: "Left", Right: "Right"}

// Delta returns the unit vector of d.
func (d Direction) Delta() Vec { return deltas[d&3] }

// Opposite returns the reverse direction. Opposite is an involution.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool { return d == Left || d == Right }

// Letter returns the one-letter code of d.
func (d Direction) Letter() byte { return letters[d&3] }

// String returns the name of d.
func (d Direction) String() string {
	if d > Right {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return names[d]
}

// ParseDirection accepts a one-letter code (either case) or a full name.
func ParseDirection(s string) (Direction, error) {
	for _, d := range All {
		if s == d.String() || (len(s) == 1 && (s[0] == d.Letter() || s[0] == d.Letter()+'a'-'A')) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// FromDelta maps a unit vector back to its direction.
func FromDelta(v Vec) (Direction, error) {
	for _, d := range All {
		if deltas[d] == v {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrNotUnitDelta, v)
}
