package lattice

import (
	"fmt"
	"strconv"
	"strings"
)

// Vec is a cell position on the lattice.
type Vec struct {
	X, Y int
}

// Origin is the position of the root cell.
var Origin = Vec{}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y int) Vec { return Vec{X: x, Y: y} }

// Add returns v+w.
func (v Vec) Add(w Vec) Vec { return Vec{X: v.X + w.X, Y: v.Y + w.Y} }

// Sub returns v−w.
func (v Vec) Sub(w Vec) Vec { return Vec{X: v.X - w.X, Y: v.Y - w.Y} }

// Step returns the neighbouring position in direction d.
func (v Vec) Step(d Direction) Vec { return v.Add(d.Delta()) }

// IsOrigin reports whether v is the root position.
func (v Vec) IsOrigin() bool { return v == Origin }

// Manhattan returns |v.X−w.X| + |v.Y−w.Y|.
func (v Vec) Manhattan(w Vec) int {
	return abs(v.X-w.X) + abs(v.Y-w.Y)
}

// Less orders positions by X, then Y. It is the canonical order used wherever
// iteration over a set of cells must be reproducible.
func (v Vec) Less(w Vec) bool {
	if v.X != w.X {
		return v.X < w.X
	}
	return v.Y < w.Y
}

// Compare is Less in the three-way form expected by slices.SortFunc.
func (v Vec) Compare(w Vec) int {
	switch {
	case v.Less(w):
		return -1
	case w.Less(v):
		return 1
	default:
		return 0
	}
}

// String formats v as "x,y", the key syntax of template records.
func (v Vec) String() string {
	return strconv.Itoa(v.X) + "," + strconv.Itoa(v.Y)
}

// ParseVec parses the "x,y" form produced by String. Surrounding and inner
// whitespace is tolerated.
func ParseVec(s string) (Vec, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Vec{}, fmt.Errorf("lattice: position %q: want \"x,y\"", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Vec{}, fmt.Errorf("lattice: position %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Vec{}, fmt.Errorf("lattice: position %q: %w", s, err)
	}
	return Vec{X: x, Y: y}, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
