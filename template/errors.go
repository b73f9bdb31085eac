package template

import "errors"

var (
	// ErrMalformedTemplate indicates a shape that is not a single rooted tree,
	// or a record that cannot describe one. It wraps the specific cause.
	ErrMalformedTemplate = errors.New("template: malformed template")
	// ErrDuplicatePosition indicates two record keys naming the same cell.
	ErrDuplicatePosition = errors.New("template: duplicate position")
	// ErrAmbiguousShape indicates a record giving both a shape map and notation.
	ErrAmbiguousShape = errors.New("template: both shape and notation given")
	// ErrUnmatched indicates an assembly cell with no counterpart in the
	// template. Interactive callers treat it as "selection no longer valid".
	ErrUnmatched = errors.New("template: position has no template counterpart")
)
