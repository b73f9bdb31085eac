// Package generator creates random puzzle templates.
//
// A template is grown from a random root by a random number of
// peptide.MutateGrowth steps (4 to 12 by default, inclusive), given a
// title and a UUID drawn from the same random stream, and then solved with
// search.Solve to fill in its energy range.
//
// Not every grown shape is solvable. Sibling cells that share a type share
// a path, and the matcher always resolves that path to the first sibling in
// direction order, so a branch hanging off a later sibling can never be
// offered. Such a shape, or one that exhausts the node budget, is regrown
// from the same stream (DefaultRetries times unless WithRetries says
// otherwise). The last failure is returned unchanged in meaning:
// errors.Is(err, search.ErrUnsolvable) or errors.Is(err,
// search.ErrSearchAborted) still holds.
//
// Determinism:
//
//	Every random choice comes from one *rand.Rand. WithSeed(s) makes
//	Generate reproducible; Batch derives an independent stream per template
//	up front, so its output for a given seed does not depend on how the
//	workers are scheduled.
//
// Concurrency:
//
//	Generate is synchronous. Batch runs generations on an errgroup with at
//	most Workers goroutines; no *rand.Rand or assembly is shared between
//	them. The first failure cancels the rest.
//
// Cost:
//
//	Dominated by the exhaustive search. Pass budgets through WithSearch
//	for large growth bounds.
package generator
