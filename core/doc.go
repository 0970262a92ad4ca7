// Package core provides the arena-backed weighted simple graph that the
// reduction engine mutates in place.
//
// Overview:
//
//   - Node ids are dense integers 0..Order-1, assigned once at
//     construction. Eliminated nodes are flagged inactive, never deleted,
//     so adjacency lookups stay stable across the whole reduction.
//   - At most one edge exists per unordered pair. AddOrMergeEdge applies
//     the Parallel law (conductance addition) on collision, which is an
//     exact rewrite and therefore contributes no correction factor.
//   - Self-loops are rejected at insertion: a loop can never participate
//     in a spanning tree, so storing one would only distort degrees.
//
// Key operations (all O(degree) or better — nothing scans the arena):
//
//   - AddOrMergeEdge(u, v, w): insert or Parallel-merge, w > 0 enforced.
//   - Neighbors(u): detached, id-sorted snapshot of the open neighborhood,
//     safe to iterate while the graph underneath is rewritten.
//   - Degree(u), EdgeWeight(u, v), RemoveEdge(u, v), Deactivate(u).
//   - Components(): BFS partition of active nodes, for per-component runs.
//   - Induced(nodes): dense re-indexed subgraph for component-parallel work.
//
// Ownership and concurrency:
//
//   - A Graph has a single mutating owner (the reduction scheduler).
//     There is no internal locking; callers that want concurrency must
//     hand each goroutine a node-disjoint Induced subgraph.
//
// Error handling:
//
//   - All failures are sentinel errors (ErrInvalidWeight, ErrSelfLoop,
//     ErrNodeOutOfRange, ErrNodeInactive, ErrNodeConnected), wrapped with
//     offending values via %w so errors.Is keeps working.
package core
