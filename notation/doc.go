// Package notation reads and writes peptide shapes as text:
//
//	Arg at (0, 0) -> (Right), Leu at (1, 0) -> (Up, Right), Asp at (2, 0), Cys at (1, 1)
//
// Each cell is a unit type (letter, abbreviation or name), its position, and
// optionally the directions of its children (names or letters U, D, L, R).
// Cells are separated by commas. Parse does not check tree invariants; the
// caller validates the result (template.New does).
package notation
