// Package reduce implements the degree-prioritized reduction scheduler:
// the ACTIVE → TERMINAL state machine that collapses a weighted graph to
// isolated nodes while accumulating the log-domain correction factor.
//
// Elimination order matters for cost, not correctness: star-mesh at a
// node of degree k creates up to k·(k-1)/2 edges, so the scheduler always
// eliminates a node of minimum current degree first, keeping the residual
// sparse for as long as possible on heavy-tailed degree distributions.
//
// Complexity:
//
//   - Time:  O((V + E') log V) heap traffic, where E' counts edges of the
//     evolving residual (each elimination re-pushes its touched
//     neighbors; stale entries are skipped on pop).
//   - Space: O(V + E') for the graph plus heap entries under the
//     lazy-decrease-key strategy.
package reduce

import (
	"context"
	"fmt"
	"math"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"

	"github.com/katalvlaran/spantree/core"
)

// Outcome is the terminal state of one Reduce run.
//
// LogTau is the natural logarithm of the correction-factor product: for a
// connected input it IS ln(Tau) of the original graph, since the terminal
// residual (a single node per component) has Tau = 1 by definition. For a
// disconnected input it is the sum over components, i.e. the log of the
// spanning-forest count with one tree per component.
type Outcome struct {
	// LogTau is ln of the accumulated correction factor.
	LogTau float64

	// Eliminations is the number of nodes deactivated, isolated ones included.
	Eliminations int
}

// candidate is one heap entry: a node and the degree it was pushed with.
// Entries whose degree no longer matches the node's current degree are
// stale and skipped on pop (lazy decrease-key).
type candidate struct {
	node   int
	degree int
}

// byDegreeThenID orders candidates by (degree, node id) ascending. The id
// tie-break makes the elimination sequence fully deterministic, which
// tests rely on.
func byDegreeThenID(a, b interface{}) int {
	ca, cb := a.(candidate), b.(candidate)
	if ca.degree != cb.degree {
		return utils.IntComparator(ca.degree, cb.degree)
	}

	return utils.IntComparator(ca.node, cb.node)
}

// Reduce collapses every active node of g, applying the law matching each
// eliminated node's degree and accumulating ln(W) per elimination.
//
// The graph is mutated to its terminal state: all nodes inactive, no
// edges. Reduce is the single owner of g for the duration of the call.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. ctx must not already be cancelled (ErrCancelled).
//
// Cancellation is cooperative: ctx is polled between elimination steps;
// on cancellation the run stops with ErrCancelled and no Outcome, since
// the accumulator is meaningless before termination.
func Reduce(ctx context.Context, g *core.Graph, opts ...Option) (Outcome, error) {
	// 1) Build options from defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph.
	if g == nil {
		return Outcome{}, ErrNilGraph
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// 3) Seed the priority structure with every active node at its
	//    current degree.
	total := 0
	heap := binaryheap.NewWith(byDegreeThenID)
	for u := 0; u < g.Order(); u++ {
		if g.Active(u) {
			heap.Push(candidate{node: u, degree: g.Degree(u)})
			total++
		}
	}

	r := &runner{g: g, options: cfg, heap: heap, total: total}

	// 4) Run the elimination loop to the terminal state.
	if err := r.process(ctx); err != nil {
		return Outcome{}, err
	}

	// 5) Terminal check: an empty heap must mean an empty residual.
	if remaining := g.ActiveCount(); remaining != 0 {
		return Outcome{}, fmt.Errorf("%w: %d active nodes unreachable by the scheduler", ErrInternalConsistency, remaining)
	}

	return Outcome{LogTau: r.logTau, Eliminations: r.done}, nil
}

// runner holds the mutable state of a single Reduce execution.
type runner struct {
	g       *core.Graph      // single-owner graph, rewritten in place
	options Options          // progress configuration
	heap    *binaryheap.Heap // min-heap of candidates, (degree, id) order
	logTau  float64          // running sum of ln(W) correction terms
	done    int              // eliminations completed
	total   int              // active nodes at start
}

// process pops candidates until the heap drains, eliminating each node
// that is still active with an up-to-date degree.
func (r *runner) process(ctx context.Context) error {
	for !r.heap.Empty() {
		// Cooperative cancellation between steps.
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrCancelled, err)
		}

		v, _ := r.heap.Pop()
		c := v.(candidate)

		// Skip entries for nodes already eliminated.
		if !r.g.Active(c.node) {
			continue
		}
		// Skip stale entries: a fresher one is (or was) in the heap.
		if c.degree != r.g.Degree(c.node) {
			continue
		}

		if err := r.eliminate(c.node); err != nil {
			return err
		}
	}

	return nil
}

// eliminate removes node n from the residual by the law matching its
// degree, updates the accumulator, and re-prioritizes touched neighbors.
func (r *runner) eliminate(n int) error {
	// 1) Snapshot the open neighborhood before any mutation.
	arcs, err := r.g.Neighbors(n)
	if err != nil {
		return fmt.Errorf("%w: snapshot of node %d: %w", ErrInternalConsistency, n, err)
	}

	kind := Classify(len(arcs))

	// 2) Accumulate the correction factor for degree ≥ 1.
	if kind != KindIsolated {
		w := StarTotal(arcs)
		if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: node %d star total %g", ErrInternalConsistency, n, w)
		}
		r.logTau += math.Log(w)
	}

	// 3) Disconnect n, then rewrite its star per the selected law.
	for _, a := range arcs {
		r.g.RemoveEdge(n, a.To)
	}

	switch kind {
	case KindIsolated, KindPendant:
		// Nothing to rewrite: no neighbor pair exists.

	case KindSeries:
		// Harmonic merge between the two neighbors. In a simple graph the
		// endpoints are distinct, so the degenerate self-loop branch of the
		// series law (a == b) cannot arise here.
		if err = r.mergeEdge(n, arcs[0].To, arcs[1].To, SeriesWeight(arcs[0].Weight, arcs[1].Weight)); err != nil {
			return err
		}

	case KindStarMesh:
		// Clique over the former neighbors; colliding pairs Parallel-merge
		// inside AddOrMergeEdge.
		w := StarTotal(arcs)
		for i := 0; i < len(arcs); i++ {
			for j := i + 1; j < len(arcs); j++ {
				if err = r.mergeEdge(n, arcs[i].To, arcs[j].To, StarWeight(arcs[i].Weight, arcs[j].Weight, w)); err != nil {
					return err
				}
			}
		}
	}

	// 4) Retire n from the residual.
	if err = r.g.Deactivate(n); err != nil {
		return fmt.Errorf("%w: deactivate node %d: %w", ErrInternalConsistency, n, err)
	}
	r.done++

	// 5) Re-prioritize exactly the touched neighbors (their degrees may
	//    have shrunk by one or grown by up to len(arcs)-2). No full rescan.
	for _, a := range arcs {
		r.heap.Push(candidate{node: a.To, degree: r.g.Degree(a.To)})
	}

	// 6) Bounded-cadence progress, with a guaranteed terminal report.
	if fn := r.options.Progress; fn != nil {
		if r.done%r.options.ProgressEvery == 0 || r.done == r.total {
			fn(r.done, r.total)
		}
	}

	return nil
}

// mergeEdge inserts the rewritten edge {u,v}. Any rejection here means a
// law produced an impossible edge, which is a broken invariant rather
// than a user error.
func (r *runner) mergeEdge(eliminated, u, v int, w float64) error {
	if err := r.g.AddOrMergeEdge(u, v, w); err != nil {
		return fmt.Errorf("%w: rewriting star of node %d as edge {%d,%d} w=%g: %w",
			ErrInternalConsistency, eliminated, u, v, w, err)
	}

	return nil
}
