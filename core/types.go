// Package core defines the central Graph type used by the reduction
// engine: a mutable, weighted simple graph over a fixed arena of
// integer node identifiers.
//
// Nodes are never physically removed. Each node carries an
// active/inactive flag so identifiers stay stable while the reduction
// scheduler collapses the graph around them. Parallel edges do not
// exist as stored objects: any insertion colliding with an existing
// unordered pair is merged on the spot by conductance addition (the
// Parallel law, which is exact and contributes no correction factor).
//
// This file declares the Graph struct, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrInvalidWeight   - non-positive or non-finite conductance supplied.
//	ErrSelfLoop        - both endpoints of a proposed edge are equal.
//	ErrNodeOutOfRange  - node id outside the arena [0, Order).
//	ErrNodeInactive    - operation referenced an eliminated node.
//	ErrNodeConnected   - Deactivate called on a node that still has edges.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrInvalidWeight indicates a conductance that is zero, negative, NaN or infinite.
	ErrInvalidWeight = errors.New("core: edge weight must be positive and finite")

	// ErrSelfLoop indicates an edge whose endpoints coincide; self-loops
	// contribute no spanning trees and are rejected rather than stored.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNodeOutOfRange indicates a node id outside the fixed arena.
	ErrNodeOutOfRange = errors.New("core: node id out of range")

	// ErrNodeInactive indicates an operation on an already-eliminated node.
	ErrNodeInactive = errors.New("core: node is inactive")

	// ErrNodeConnected indicates Deactivate on a node with remaining edges;
	// callers must disconnect a node before marking it eliminated.
	ErrNodeConnected = errors.New("core: node still has incident edges")
)

// Arc is one entry of a node's neighborhood: the opposite endpoint and
// the conductance of the connecting edge.
type Arc struct {
	// To is the neighbor's node id.
	To int

	// Weight is the edge conductance (always positive).
	Weight float64
}

// Graph is the mutable weighted simple graph the reduction engine
// rewrites in place.
//
// Node ids are dense indices 0..Order-1 assigned at construction time.
// adjacency[u][v] holds the conductance of edge {u,v}; the undirected
// edge is mirrored in both maps. active[u] marks whether u still
// participates in the residual graph.
//
// Graph is NOT safe for concurrent mutation. The reduction scheduler is
// the single owner of a Graph instance; concurrent use is only sound
// across node-disjoint regions (see engine's per-component subgraphs).
type Graph struct {
	adjacency []map[int]float64 // adjacency[u][v] = conductance of {u,v}
	active    []bool            // active[u] = false once u is eliminated
	edgeCount int               // number of stored (merged) edges
}

// NewGraph creates a Graph over the arena of node ids 0..n-1, all
// active, with no edges. Negative n is treated as zero.
// Complexity: O(n).
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{
		adjacency: make([]map[int]float64, n),
		active:    make([]bool, n),
	}
	for i := 0; i < n; i++ {
		g.adjacency[i] = make(map[int]float64)
		g.active[i] = true
	}

	return g
}
