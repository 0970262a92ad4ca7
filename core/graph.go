package core

import (
	"fmt"
	"math"
	"sort"
)

// Order returns the size of the node arena (active and eliminated alike).
// Complexity: O(1).
func (g *Graph) Order() int { return len(g.adjacency) }

// EdgeCount returns the number of stored edges after merging.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Active reports whether node u exists in the arena and has not been
// eliminated. Out-of-range ids report false rather than erroring, so
// callers can probe freely.
// Complexity: O(1).
func (g *Graph) Active(u int) bool {
	return u >= 0 && u < len(g.active) && g.active[u]
}

// ActiveCount returns the number of nodes still participating in the
// residual graph.
// Complexity: O(Order); intended for setup and diagnostics, not inner loops.
func (g *Graph) ActiveCount() int {
	count := 0
	for _, a := range g.active {
		if a {
			count++
		}
	}

	return count
}

// AddOrMergeEdge inserts the undirected edge {u,v} with conductance w,
// or merges w into the existing edge by the Parallel law (w_eq = w1 + w2).
//
// Validation order:
//  1. w must be positive and finite (ErrInvalidWeight).
//  2. u and v must lie in [0, Order) (ErrNodeOutOfRange).
//  3. u != v (ErrSelfLoop); a self-loop is rejected, never stored.
//  4. both endpoints must be active (ErrNodeInactive).
//
// Complexity: O(1) expected (two map writes).
func (g *Graph) AddOrMergeEdge(u, v int, w float64) error {
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidWeight, w)
	}
	if u < 0 || u >= len(g.adjacency) {
		return fmt.Errorf("%w: %d", ErrNodeOutOfRange, u)
	}
	if v < 0 || v >= len(g.adjacency) {
		return fmt.Errorf("%w: %d", ErrNodeOutOfRange, v)
	}
	if u == v {
		return fmt.Errorf("%w: node %d", ErrSelfLoop, u)
	}
	if !g.active[u] {
		return fmt.Errorf("%w: %d", ErrNodeInactive, u)
	}
	if !g.active[v] {
		return fmt.Errorf("%w: %d", ErrNodeInactive, v)
	}

	if _, exists := g.adjacency[u][v]; !exists {
		g.edgeCount++
	}
	// Mirror the merged conductance on both endpoints.
	g.adjacency[u][v] += w
	g.adjacency[v][u] = g.adjacency[u][v]

	return nil
}

// Degree returns the number of active neighbors of u, or 0 for
// out-of-range or inactive nodes.
// Complexity: O(1).
func (g *Graph) Degree(u int) int {
	if !g.Active(u) {
		return 0
	}

	return len(g.adjacency[u])
}

// EdgeWeight returns the conductance of edge {u,v}, or 0 if the edge
// (or either endpoint) is absent.
// Complexity: O(1) expected.
func (g *Graph) EdgeWeight(u, v int) float64 {
	if !g.Active(u) || !g.Active(v) {
		return 0
	}

	return g.adjacency[u][v]
}

// Neighbors returns a snapshot of u's active neighborhood, sorted by
// ascending neighbor id for determinism. The snapshot is detached from
// the graph: mutating the graph afterwards does not invalidate it,
// which is what lets the scheduler enumerate a star and then rewrite it.
//
// Complexity: O(deg log deg) for the sort.
func (g *Graph) Neighbors(u int) ([]Arc, error) {
	if u < 0 || u >= len(g.adjacency) {
		return nil, fmt.Errorf("%w: %d", ErrNodeOutOfRange, u)
	}
	if !g.active[u] {
		return nil, fmt.Errorf("%w: %d", ErrNodeInactive, u)
	}

	arcs := make([]Arc, 0, len(g.adjacency[u]))
	for v, w := range g.adjacency[u] {
		arcs = append(arcs, Arc{To: v, Weight: w})
	}
	sort.Slice(arcs, func(i, j int) bool { return arcs[i].To < arcs[j].To })

	return arcs, nil
}

// RemoveEdge deletes edge {u,v} from both adjacency maps. Removing an
// absent edge is a no-op, so disconnection loops need no existence checks.
// Complexity: O(1) expected.
func (g *Graph) RemoveEdge(u, v int) {
	if u < 0 || u >= len(g.adjacency) || v < 0 || v >= len(g.adjacency) {
		return
	}
	if _, exists := g.adjacency[u][v]; exists {
		g.edgeCount--
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
}

// Deactivate marks u as eliminated. The node must already be fully
// disconnected (ErrNodeConnected otherwise): elimination order is the
// scheduler's business, and a node with live edges being dropped would
// silently corrupt the correction factor.
// Complexity: O(1).
func (g *Graph) Deactivate(u int) error {
	if u < 0 || u >= len(g.adjacency) {
		return fmt.Errorf("%w: %d", ErrNodeOutOfRange, u)
	}
	if !g.active[u] {
		return fmt.Errorf("%w: %d", ErrNodeInactive, u)
	}
	if len(g.adjacency[u]) != 0 {
		return fmt.Errorf("%w: %d has %d edges", ErrNodeConnected, u, len(g.adjacency[u]))
	}
	g.active[u] = false

	return nil
}

// Components partitions the active nodes into connected components via
// BFS over the adjacency maps. Components are ordered by their smallest
// contained node id, and nodes within a component are sorted ascending.
//
// Complexity: O(V + E).
func (g *Graph) Components() [][]int {
	n := len(g.adjacency)
	seen := make([]bool, n)
	var components [][]int

	for start := 0; start < n; start++ {
		if !g.active[start] || seen[start] {
			continue
		}
		// BFS from start over active nodes only.
		component := []int{start}
		seen[start] = true
		for head := 0; head < len(component); head++ {
			u := component[head]
			for v := range g.adjacency[u] {
				if !seen[v] {
					seen[v] = true
					component = append(component, v)
				}
			}
		}
		sort.Ints(component)
		components = append(components, component)
	}

	return components
}

// Induced extracts the subgraph induced by nodes into a fresh Graph
// with dense ids 0..len(nodes)-1 (in the order given), returning the
// new graph. Edges with exactly one endpoint inside nodes are dropped;
// the caller is expected to pass a union of whole components.
//
// Complexity: O(len(nodes) + incident edges).
func (g *Graph) Induced(nodes []int) (*Graph, error) {
	index := make(map[int]int, len(nodes))
	for i, u := range nodes {
		if u < 0 || u >= len(g.adjacency) {
			return nil, fmt.Errorf("%w: %d", ErrNodeOutOfRange, u)
		}
		if !g.active[u] {
			return nil, fmt.Errorf("%w: %d", ErrNodeInactive, u)
		}
		index[u] = i
	}

	sub := NewGraph(len(nodes))
	for _, u := range nodes {
		for v, w := range g.adjacency[u] {
			if u >= v {
				continue // visit each unordered pair once
			}
			j, inside := index[v]
			if !inside {
				continue
			}
			if err := sub.AddOrMergeEdge(index[u], j, w); err != nil {
				return nil, err
			}
		}
	}

	return sub, nil
}
