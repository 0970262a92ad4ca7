// Package engine is the single entry point of spantree: feed it weighted
// edge triples, get Tau and Rho back.
//
// Overview:
//
//   - Analyze(ctx, edges, opts...) builds a fresh graph, splits it into
//     connected components, reduces every component with the star-mesh
//     scheduler, and extracts the metrics. Stateless across calls.
//   - Within one component elimination is inherently sequential — each
//     step changes the degrees that select the next step — but distinct
//     components share nothing and reduce in parallel, bounded by
//     WithWorkers.
//
// Cancellation and progress:
//
//   - ctx is polled between eliminations in every worker; cancelling
//     aborts the whole call with reduce.ErrCancelled and no Result.
//   - WithProgress(fn, every) reports global eliminated/total counts at a
//     bounded cadence, monotonically non-decreasing, serialized so fn
//     needs no locking of its own.
//
// Disconnected inputs:
//
//   - Not an error. Result.Disconnected is set, whole-graph Tau is 0
//     (no spanning tree joins the parts), per-component values are all
//     present, and Rho covers the union through the forest count.
//
// Example:
//
//	edges := []engine.Edge{
//	    engine.UnitEdge(1, 2),
//	    engine.UnitEdge(2, 3),
//	    engine.UnitEdge(3, 1),
//	}
//	res, err := engine.Analyze(ctx, edges)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Tau=%s Rho=%.4f\n", entropy.FormatTau(res.LogTau), res.Rho)
package engine
