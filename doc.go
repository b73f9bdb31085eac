// Package peptide is the root of a lattice peptide-folding puzzle engine.
//
// Players grow a tree of amino-acid units on a 2D square lattice so that it
// matches a target template in structure, then fold it into the layout with
// the lowest energy. The library is render-agnostic: it exposes queries,
// mutations and move enumeration, and leaves drawing and input to callers.
//
// Packages, bottom-up:
//
//	lattice/     directions, integer vectors and 4-bit bond sets
//	unit/        the six unit types and their fixed property catalog
//	peptide/     the assembly: a rooted tree keyed by lattice position
//	energy/      scoring: cost, hydrophobic exposure, contacts and charges
//	notation/    compact text form of shapes ("Arg at (0, 0) -> (Right)")
//	template/    targets, structural matching, legal placements, YAML records
//	search/      exhaustive enumeration of a template's energy range
//	generator/   random templates, single or in concurrent batches
//	level/       level files, the built-in campaign, score normalisation
//	puzzle/      one play-through: selection, placement, removal, progress
//	cmd/peptide  command-line tool: solve, generate, show, levels
//
// Quick ASCII example, a folded hairpin whose charged ends touch:
//
//	A─A
//	│ │
//	R D
//
//	go get github.com/katalvlaran/peptide
package peptide
