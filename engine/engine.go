// Package engine orchestrates a full analysis: graph construction from
// edge triples, component splitting, concurrent reduction, and metric
// extraction — one call in, (Tau, Rho) out.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/entropy"
	"github.com/katalvlaran/spantree/reduce"
)

// Analyze computes Tau and Rho for the weighted graph described by edges.
//
// Steps:
//  1. Validate and apply options.
//  2. Map caller-side node ids onto a dense arena (sorted ascending, so
//     dense ids — and therefore elimination tie-breaks — are independent
//     of edge order) and build the core graph; duplicate pairs merge by
//     the Parallel law.
//  3. Split into connected components; extract each as an induced
//     subgraph that its worker exclusively owns.
//  4. Reduce components concurrently (bounded by WithWorkers), each with
//     its own accumulator; ctx cancellation aborts all of them.
//  5. Extract metrics; a disconnected input sets Result.Disconnected
//     rather than failing, per-component values always present.
//
// Errors: ErrNoEdges, core.ErrInvalidWeight, core.ErrSelfLoop (all at
// ingestion, nothing partially applied), reduce.ErrCancelled mid-run,
// reduce.ErrInternalConsistency for broken invariants (fatal, verbatim).
func Analyze(ctx context.Context, edges []Edge, opts ...Option) (*Result, error) {
	// 1) Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// 2) Ingestion: dense id assignment + graph construction.
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}
	ids, index := denseIndex(edges)
	g := core.NewGraph(len(ids))
	for i, e := range edges {
		if err := g.AddOrMergeEdge(index[e.U], index[e.V], e.W); err != nil {
			return nil, fmt.Errorf("engine: edge #%d (%d,%d,%g): %w", i, e.U, e.V, e.W, err)
		}
	}

	// 3) Component split. Dense ids are sorted caller ids, so components
	//    arrive ordered by their smallest caller-side node id already.
	componentNodes := g.Components()
	subgraphs := make([]*core.Graph, len(componentNodes))
	for i, nodes := range componentNodes {
		sub, err := g.Induced(nodes)
		if err != nil {
			return nil, fmt.Errorf("engine: component %d: %w", i, err)
		}
		subgraphs[i] = sub
	}

	// 4) Concurrent reduction, one accumulator per component.
	tracker := newProgressTracker(cfg.Progress, g.Order())
	outcomes := make([]reduce.Outcome, len(subgraphs))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(cfg.Workers)
	for i := range subgraphs {
		i := i
		group.Go(func() error {
			out, err := reduce.Reduce(groupCtx, subgraphs[i], cfg.reduceOptions(tracker.componentFunc())...)
			if err != nil {
				return err
			}
			outcomes[i] = out
			if cfg.Logger != nil {
				cfg.Logger.Debug("component reduced",
					"component", i,
					"nodes", len(componentNodes[i]),
					"logTau", out.LogTau)
			}

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	// 5) Metric extraction and result assembly.
	stats := make([]entropy.ComponentStat, len(outcomes))
	for i, out := range outcomes {
		stats[i] = entropy.ComponentStat{Nodes: len(componentNodes[i]), LogTau: out.LogTau}
	}
	metrics, err := entropy.Extract(stats, g.EdgeCount(), entropy.WithNormalization(cfg.Normalization))
	disconnected := false
	if err != nil {
		if !isDisconnected(err) {
			return nil, err
		}
		disconnected = true
	}

	result := &Result{
		Nodes:        metrics.Nodes,
		Edges:        metrics.Edges,
		Disconnected: disconnected,
		Components:   make([]Component, len(metrics.Components)),
		LogTau:       metrics.LogTau,
		Tau:          metrics.Tau,
		Rho:          metrics.Rho,
	}
	for i, cm := range metrics.Components {
		result.Components[i] = Component{
			ID:       i,
			Smallest: ids[componentNodes[i][0]],
			Nodes:    cm.Nodes,
			Edges:    subgraphEdgeCount(edges, index, componentNodes[i]),
			LogTau:   cm.LogTau,
			Tau:      cm.Tau,
			Rho:      cm.Rho,
		}
	}

	return result, nil
}

// isDisconnected keeps the informational sentinel from leaking as a
// failure while still failing on anything else Extract may report.
func isDisconnected(err error) bool {
	return errors.Is(err, entropy.ErrDisconnected)
}

// denseIndex assigns dense arena ids 0..n-1 to the distinct caller-side
// ids, in ascending order for determinism, returning both directions of
// the mapping.
func denseIndex(edges []Edge) ([]int64, map[int64]int) {
	seen := make(map[int64]struct{}, len(edges)*2)
	for _, e := range edges {
		seen[e.U] = struct{}{}
		seen[e.V] = struct{}{}
	}
	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	index := make(map[int64]int, len(ids))
	for dense, id := range ids {
		index[id] = dense
	}

	return ids, index
}

// subgraphEdgeCount counts the merged edges of one component. Input
// duplicates collapse into the pair set, matching core's EdgeCount view.
func subgraphEdgeCount(edges []Edge, index map[int64]int, nodes []int) int {
	member := make(map[int]struct{}, len(nodes))
	for _, u := range nodes {
		member[u] = struct{}{}
	}
	type pair struct{ a, b int }
	pairs := make(map[pair]struct{})
	for _, e := range edges {
		u, v := index[e.U], index[e.V]
		if _, ok := member[u]; !ok {
			continue
		}
		if u > v {
			u, v = v, u
		}
		pairs[pair{u, v}] = struct{}{}
	}

	return len(pairs)
}

// progressTracker aggregates per-component reduce progress into one
// global done/total stream. Reduce reports cumulative counts, so each
// component adapter tracks its previous value and contributes deltas.
type progressTracker struct {
	mu    sync.Mutex
	fn    ProgressFunc
	done  int
	total int
}

func newProgressTracker(fn ProgressFunc, total int) *progressTracker {
	return &progressTracker{fn: fn, total: total}
}

// componentFunc returns a reduce.ProgressFunc bound to one component, or
// nil when reporting is disabled.
func (t *progressTracker) componentFunc() reduce.ProgressFunc {
	if t.fn == nil {
		return nil
	}
	prev := 0

	return func(done, _ int) {
		t.mu.Lock()
		t.done += done - prev
		prev = done
		t.fn(t.done, t.total)
		t.mu.Unlock()
	}
}
