// Package spantree counts spanning trees of large weighted networks by
// electrical-network reduction instead of Laplacian determinants.
//
// 🚀 What is spantree?
//
//	A library for two structural invariants of a weighted graph:
//		• Tau — the (weighted) spanning-tree count, exact up to float64 rounding
//		• Rho — the normalized structural entropy ln(Tau)/|V|
//	computed by collapsing the graph in place with the parallel, series and
//	star-mesh equivalence laws, so graphs far beyond the O(N³) determinant
//	barrier remain tractable.
//
// ✨ Why choose spantree?
//
//   - Log-domain accumulation – Tau values of astronomic magnitude never overflow
//   - Min-degree elimination order – edge blow-up stays bounded on sparse networks
//   - Deterministic – fixed tie-breaking, reproducible down to the last bit
//   - Component-parallel – disconnected components reduce concurrently
//
// Everything is organized under focused subpackages:
//
//	core/      — the mutable weighted simple graph (arena + active flags)
//	reduce/    — transformation laws and the degree-prioritized scheduler
//	entropy/   — Tau/Rho extraction, normalization, huge-number formatting
//	engine/    — the one-call orchestration API with progress & cancellation
//	gen/       — deterministic graph generators for tests and experiments
//	kirchhoff/ — brute-force Matrix-Tree oracle for small graphs
//
// Quick ASCII example:
//
//	    A───B
//	    │ ╳ │        K4: Tau = 16 (Cayley: n^(n-2), n = 4)
//	    C───D
//
// Start with engine.Analyze for the single-call API, or the spantree
// command under cmd/ for file-based analysis.
//
//	go get github.com/katalvlaran/spantree
package spantree
