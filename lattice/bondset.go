package lattice

import (
	"fmt"
	"math/bits"
	"strings"
)

// BondSet is a set of directions packed into the low four bits of a byte.
// A cell's BondSet names the neighbours that are its children in the tree.
type BondSet uint8

// Empty is the set with no directions.
const Empty BondSet = 0

// Bonds builds a set from the given directions.
func Bonds(dirs ...Direction) BondSet {
	var s BondSet
	for _, d := range dirs {
		s = s.Set(d)
	}
	return s
}

// Set returns s with d added.
func (s BondSet) Set(d Direction) BondSet { return s | 1<<(d&3) }

// Unset returns s with d removed.
func (s BondSet) Unset(d Direction) BondSet { return s &^ (1 << (d & 3)) }

// Contains reports whether d is in s.
func (s BondSet) Contains(d Direction) bool { return s&(1<<(d&3)) != 0 }

// IsEmpty reports whether s has no directions.
func (s BondSet) IsEmpty() bool { return s&0xF == 0 }

// Len returns the number of directions in s.
func (s BondSet) Len() int { return bits.OnesCount8(uint8(s & 0xF)) }

// Dirs returns the members of s in enumeration order.
func (s BondSet) Dirs() []Direction {
	out := make([]Direction, 0, s.Len())
	for _, d := range All {
		if s.Contains(d) {
			out = append(out, d)
		}
	}
	return out
}

// String returns the letters of s in enumeration order, e.g. "UR".
func (s BondSet) String() string {
	var b strings.Builder
	for _, d := range All {
		if s.Contains(d) {
			b.WriteByte(d.Letter())
		}
	}
	return b.String()
}

// ParseBondSet parses a string of direction letters. Order does not matter;
// repeated or unknown letters are rejected.
func ParseBondSet(letters string) (BondSet, error) {
	var s BondSet
	for _, r := range letters {
		if r == ' ' {
			continue
		}
		d, err := ParseDirection(string(r))
		if err != nil {
			return Empty, err
		}
		if s.Contains(d) {
			return Empty, fmt.Errorf("%w: %q in %q", ErrDuplicateDirection, r, letters)
		}
		s = s.Set(d)
	}
	return s, nil
}
