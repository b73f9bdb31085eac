package template

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/peptide/lattice"
	"github.com/katalvlaran/peptide/peptide"
	"github.com/katalvlaran/peptide/unit"
)

// Option is one legal placement: a unit of Type at the empty cell Pos, bonded
// from its parent in direction Dir.
type Option struct {
	Type unit.Type
	Pos  lattice.Vec
	Dir  lattice.Direction
}

// From returns the position of the parent the option grows from.
func (o Option) From() lattice.Vec {
	return o.Pos.Sub(o.Dir.Delta())
}

// Apply performs o on a.
func (o Option) Apply(a *peptide.Peptide) error {
	_, err := a.Attach(o.From(), o.Dir, o.Type)
	return err
}

// FindPosition returns the template cell whose path equals path. The search
// is breadth first from the root, following children in direction order and
// carrying the type history of each branch; a branch is dropped once its
// history is as long as path without matching.
func FindPosition(shape *peptide.Peptide, path []unit.Type) (lattice.Vec, bool) {
	type step struct {
		pos     lattice.Vec
		history []unit.Type
	}
	if !shape.Has(lattice.Origin) {
		return lattice.Vec{}, false
	}
	queue := []step{{pos: lattice.Origin}}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		if slices.Equal(cur.history, path) {
			return cur.pos, true
		}
		if len(cur.history) >= len(path) {
			continue
		}
		u, ok := shape.Get(cur.pos)
		if !ok {
			continue
		}
		for _, d := range u.Children.Dirs() {
			next := cur.pos.Step(d)
			child, ok := shape.Get(next)
			if !ok {
				continue
			}
			history := append(slices.Clone(cur.history), child.Type)
			queue = append(queue, step{pos: next, history: history})
		}
	}
	return lattice.Vec{}, false
}

// Locate maps an occupied assembly cell to its template counterpart.
func (t Template) Locate(a *peptide.Peptide, pos lattice.Vec) (lattice.Vec, bool) {
	if !a.Has(pos) {
		return lattice.Vec{}, false
	}
	return FindPosition(t.Shape, a.Path(pos))
}

// EnumerateOptions lists every legal placement on a, visiting assembly cells
// in canonical order. Cells without a template counterpart contribute nothing.
func EnumerateOptions(t Template, a *peptide.Peptide) []Option {
	var out []Option
	for _, pos := range a.Positions() {
		out = append(out, t.optionsAt(a, pos)...)
	}
	return out
}

// Options lists the legal placements growing from the single cell pos.
// It returns peptide.ErrEmpty if pos is not occupied and ErrUnmatched if
// the cell has no template counterpart.
func Options(t Template, a *peptide.Peptide, pos lattice.Vec) ([]Option, error) {
	if !a.Has(pos) {
		return nil, fmt.Errorf("%w: %v", peptide.ErrEmpty, pos)
	}
	if _, ok := t.Locate(a, pos); !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnmatched, pos)
	}
	return t.optionsAt(a, pos), nil
}

// optionsAt emits, for each distinct child type of the matching template
// cell that a still has fewer of than the template, one option per empty
// neighbour of pos.
func (t Template) optionsAt(a *peptide.Peptide, pos lattice.Vec) []Option {
	tpos, ok := t.Locate(a, pos)
	if !ok {
		return nil
	}
	tu, _ := t.Shape.Get(tpos)

	var out []Option
	var done [len(unit.All)]bool
	for _, d := range tu.Children.Dirs() {
		child, ok := t.Shape.Get(tpos.Step(d))
		if !ok || done[child.Type] {
			continue
		}
		done[child.Type] = true
		if a.ChildrenOfType(pos, child.Type) >= t.Shape.ChildrenOfType(tpos, child.Type) {
			continue
		}
		for _, d2 := range lattice.All {
			next := pos.Step(d2)
			if a.Has(next) {
				continue
			}
			out = append(out, Option{Type: child.Type, Pos: next, Dir: d2})
		}
	}
	return out
}

// Complete reports whether a has as many cells as the template shape.
func (t Template) Complete(a *peptide.Peptide) bool {
	return a.Len() == t.Size()
}
