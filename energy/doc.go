// Package energy scores a peptide. Lower energy is a better fold.
//
// The energy of a peptide is the sum, over every occupied cell, of:
//
//  1. Intrinsic cost of the unit type.
//  2. Hydrophobic term: Hydrophobic × (4 − occupied neighbours), so a fully
//     buried unit contributes nothing.
//  3. Adjacency term: for each lattice neighbour that is neither this cell's
//     child nor its parent, half the catalog bonus for that pair. Every such
//     contact is seen from both cells, so the pair earns the full bonus once.
//
// plus, once per unordered pair of cells anywhere on the lattice, the
// electrostatic term q₁·q₂ / manhattan(p₁, p₂).
//
// Determinism:
//
//	Cells are visited in canonical position order, so Score is bit-for-bit
//	reproducible for equal peptides regardless of how they were built.
//
// Complexity:
//
//	O(n²) for n cells; the electrostatic sum dominates.
package energy
