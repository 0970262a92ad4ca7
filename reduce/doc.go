// Package reduce collapses a weighted graph to nothing — and that is the
// point: the sequence of collapses carries the spanning-tree count.
//
// Overview:
//
//   - Reduce eliminates every node of a core.Graph, one at a time, using
//     the electrical-network equivalence laws (pendant, series, star-mesh;
//     parallel merges happen implicitly at insertion).
//   - Each elimination of a node with incident conductance sum W
//     multiplies a running correction factor by W, held as a sum of ln(W)
//     terms. For a connected graph, the terminal sum equals ln(Tau).
//
// Core correctness invariant (maintained at every step):
//
//	Tau(original) == exp(accumulated ln W terms) × Tau(current residual)
//
// where Tau of a single remaining node is 1. The per-step factor W is
// exact: eliminating node n from the weighted Laplacian by one step of
// Gaussian elimination pivots on L[n][n] = W and leaves precisely the
// Laplacian of the star-mesh rewrite, so the reduced determinant — the
// matrix-tree count — divides by W and nothing else.
//
// Scheduling policy:
//
//   - Minimum current degree first, ties by smallest node id. Star-mesh
//     at degree k emits up to k·(k-1)/2 edges, so cheap nodes go first and
//     the residual stays sparse until the dense heart of the graph is all
//     that remains.
//   - The priority structure is a binary min-heap owned by the run (never
//     package state) with lazy decrease-key: degree changes push fresh
//     entries and stale ones are dropped on pop.
//
// Termination:
//
//   - Each connected component shrinks to a single node, which then
//     retires as an isolated elimination with no factor; the terminal
//     graph is empty. Disconnected inputs therefore work fine: LogTau
//     sums per-component contributions. Callers wanting per-component
//     values run Reduce on induced subgraphs (see engine).
//
// Cancellation and progress:
//
//   - The context is polled between eliminations; cancellation yields
//     ErrCancelled and no Outcome — never a partially-valid accumulator.
//   - WithProgress(fn, every) reports done/total at a bounded cadence,
//     monotonically non-decreasing, with a guaranteed terminal report.
//
// See also:
//
//   - kirchhoff.Tau: the O(N³) determinant oracle these results are
//     verified against in tests.
//   - engine.Analyze: the orchestration layer with component splitting.
package reduce
