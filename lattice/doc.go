// Package lattice provides the 2D integer grid that peptides are laid out on:
// integer vectors, the four orthogonal directions, and a compact 4-bit set of
// directions used to record tree bonds.
//
// What:
//
//   - Vec is an integer 2-vector; the origin is the root cell of every peptide.
//   - Direction is one of Up, Down, Left, Right, always enumerated in that order.
//   - BondSet records which neighbouring cells are children of a cell.
//
// Conventions:
//
//   - Up is +Y, Down is −Y, Left is −X, Right is +X.
//   - Directions are written as one-letter codes U, D, L, R; a BondSet is the
//     concatenation of its letters in enumeration order ("" when empty).
//
// Complexity:
//
//   - Every operation is O(1); BondSet.Dirs allocates at most four entries.
//
// Errors:
//
//   - ErrUnknownDirection: a letter is not one of U, D, L, R.
//   - ErrDuplicateDirection: a bond-set string repeats a letter.
//   - ErrNotUnitDelta: a vector is not one of the four unit steps.
package lattice
