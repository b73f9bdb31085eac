// Package template defines the target shape a puzzle asks for and matches a
// player's peptide against it.
//
// Matching is structural, not geometric. A cell is addressed by its path:
// the sequence of unit types on the way down from the root (see
// peptide.Peptide.Path). FindPosition resolves a path to the template cell
// with the same path, so the player may lay the chain out in any direction
// as long as the type sequence agrees with the template.
//
// EnumerateOptions lists every legal next placement: for each matched cell,
// every child type the template still allows there (capped per type by the
// number of children of that type in the template) on every empty
// neighbouring cell.
//
// Records:
//
//	Templates are stored as YAML records (see Record): a title, a description,
//	an optional score range and a shape, given either as a position map or in
//	the notation of package notation. Decode rejects malformed shapes with
//	ErrMalformedTemplate wrapping the specific cause.
//
// Complexity (n = template cells, m = assembly cells):
//
//   - FindPosition: O(n · depth) for history copies.
//   - EnumerateOptions: O(m · (depth + n·depth)).
package template
