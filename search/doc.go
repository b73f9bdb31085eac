// Package search enumerates every assembly reachable for a template and
// reports the energy range of the complete ones.
//
// What
//
//   - Breadth-first search over assemblies, starting from the template's root
//     alone. Each step applies one template.Option to a clone of the current
//     assembly, so frontier entries never share state.
//   - A dequeued assembly already seen (by canonical key, see
//     peptide.Peptide.Key) is discarded without expansion.
//   - Every newly seen assembly with as many cells as the template is
//     scored with energy.Score and folded into the running range.
//
// Cost
//
//	The search is exhaustive: the number of assemblies grows
//	exponentially with template depth and branching, and the only pruning
//	is the per-type branching cap of template.EnumerateOptions. Memory grows
//	with the number of distinct assemblies seen. Run it offline (authoring,
//	generation, load time), never per player action, and bound it with
//	WithMaxNodes, WithTimeLimit or WithContext.
//
// Result
//
//	Complete    queue drained, at least one complete assembly; err == nil.
//	Unsolvable  queue drained, none complete; err is ErrUnsolvable and the
//	            range is template.UnknownRange.
//	Partial     budget or context stopped the search after some complete
//	            assemblies; err wraps ErrSearchAborted; range so far.
//	Aborted     stopped before any complete assembly; err wraps
//	            ErrSearchAborted.
//
// Usage
//
//	res, err := search.Solve(tmpl,
//	    search.WithContext(ctx),
//	    search.WithMaxNodes(1_000_000),
//	    search.WithLogger(logger),
//	)
//	if err != nil { /* errors.Is(err, search.ErrSearchAborted) ... */ }
//	tmpl.Range = res.Range
package search
