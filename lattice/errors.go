package lattice

import "errors"

var (
	// ErrUnknownDirection indicates a direction letter outside U, D, L, R.
	ErrUnknownDirection = errors.New("lattice: unknown direction")
	// ErrDuplicateDirection indicates a bond-set string lists a direction twice.
	ErrDuplicateDirection = errors.New("lattice: duplicate direction in bond set")
	// ErrNotUnitDelta indicates a vector that is not a single orthogonal step.
	ErrNotUnitDelta = errors.New("lattice: vector is not a unit step")
)
