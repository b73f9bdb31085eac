// Package peptide implements the assembly: a rooted tree of units stored as a
// flat map from lattice position to Unit.
//
// Representation:
//
//	There are no parent pointers. A Unit records only the directions of its
//	children (a lattice.BondSet); the parent of a cell is found by scanning its
//	four neighbours for the one whose BondSet points back at it. The root is
//	always the cell at lattice.Origin.
//
// Invariants (checked by Validate):
//
//   - exactly one root, at the origin, with no parent;
//   - every bond points at an occupied cell;
//   - every other cell has exactly one parent and is reachable from the root.
//
// Value semantics:
//
//	A *Peptide is mutable and never shared implicitly; Clone returns an
//	independent copy. Equal, Key and Hash depend only on the set of
//	position→Unit pairs, never on insertion order.
//
// Complexity (n = number of cells):
//
//   - Insert, Bond, Attach, Parent, ChildrenOfType: O(1).
//   - Remove: O(size of removed subtree).
//   - Path: O(depth).
//   - Key, Hash, Positions: O(n log n).
//   - Validate: O(n).
package peptide
