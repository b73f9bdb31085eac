package level

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/peptide/template"
)

// SolvedThreshold is the progress a complete assembly needs to win.
const SolvedThreshold = 0.95

// ErrInvalidRange indicates a range that cannot normalise a score.
var ErrInvalidRange = errors.New("level: invalid energy range")

// Progress normalises energy against r: (energy - max) / (min - max).
// A degenerate range (min == max) yields 1 at or below the single value and
// 0 above it.
func Progress(energy float64, r template.Range) (float64, error) {
	if !r.Valid() {
		return 0, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, r.Min, r.Max)
	}
	if r.Min == r.Max {
		if energy <= r.Max {
			return 1, nil
		}
		return 0, nil
	}
	return (energy - r.Max) / (r.Min - r.Max), nil
}

// Solved reports whether a level is won: the assembly has the template's
// size and its progress reaches SolvedThreshold.
func Solved(progress float64, complete bool) bool {
	return complete && progress >= SolvedThreshold
}
