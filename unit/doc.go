// Package unit is the catalog of unit types a peptide is assembled from.
//
// Every physical constant of the energy model lives in a single table indexed
// by Type: intrinsic cost, charge, hydrophobic energy per exposed side, and the
// adjacency bonuses a unit earns from non-bonded lattice neighbours. Nothing
// outside this package switches on a Type to look a constant up.
//
// The table is fixed at compile time and never mutated.
package unit
