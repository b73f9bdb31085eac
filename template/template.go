package template

import (
	"fmt"
	"math"

	"github.com/katalvlaran/peptide/peptide"
)

// Range is the span of energies reachable by complete assemblies of a
// template. Min is the best fold.
type Range struct {
	Min, Max float64
}

// UnknownRange is the range of a template that has not been solved:
// Min = +Inf, Max = −Inf.
func UnknownRange() Range {
	return Range{Min: math.Inf(1), Max: math.Inf(-1)}
}

// Valid reports whether r is finite and ordered.
func (r Range) Valid() bool {
	return !math.IsInf(r.Min, 0) && !math.IsInf(r.Max, 0) &&
		!math.IsNaN(r.Min) && !math.IsNaN(r.Max) && r.Min <= r.Max
}

// Include widens r to cover e.
func (r Range) Include(e float64) Range {
	return Range{Min: math.Min(r.Min, e), Max: math.Max(r.Max, e)}
}

// Template is a puzzle target: a fixed shape plus display text and the
// energy range used to normalise a player's score.
type Template struct {
	ID          string
	Title       string
	Description string
	Range       Range
	Shape       *peptide.Peptide
}

// New builds a template around shape with an unknown range, rejecting
// shapes that are not a single rooted tree.
func New(title, description string, shape *peptide.Peptide) (Template, error) {
	t := Template{
		Title:       title,
		Description: description,
		Range:       UnknownRange(),
		Shape:       shape,
	}
	if err := t.Validate(); err != nil {
		return Template{}, err
	}
	return t, nil
}

// Validate checks that the shape is present and a valid tree.
func (t Template) Validate() error {
	if t.Shape == nil {
		return fmt.Errorf("%w: no shape", ErrMalformedTemplate)
	}
	if err := t.Shape.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedTemplate, err)
	}
	return nil
}

// Size returns the number of cells a complete assembly has.
func (t Template) Size() int {
	if t.Shape == nil {
		return 0
	}
	return t.Shape.Len()
}

// Start returns a fresh assembly for t: its root unit alone.
func (t Template) Start() *peptide.Peptide {
	return peptide.ForTemplate(t.Shape)
}
