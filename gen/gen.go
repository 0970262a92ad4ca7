// Package gen builds small deterministic graphs — complete, cycle, path,
// star, wheel, random tree, disjoint unions — for tests, examples and
// experiments with the reduction engine.
//
// Determinism:
//   - Node ids are dense 0..n-1 in construction order.
//   - Edge emission order is lexicographic by (i, j), i < j.
//   - RandomTree is reproducible for a fixed seed.
//
// Closed forms worth remembering (unit weights):
//   - Complete(n):  Tau = n^(n-2)   (Cayley)
//   - Cycle(n):     Tau = n
//   - Path(n), Star(n), RandomTree(n): Tau = 1 (trees)
package gen

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/spantree/core"
)

// Sentinel errors for graph construction.
var (
	// ErrTooFewNodes indicates n below the generator's minimum.
	ErrTooFewNodes = errors.New("gen: too few nodes")
)

// Generator minima; cycles and wheels need enough nodes to close.
const (
	minGraphNodes = 1
	minCycleNodes = 3
	minWheelNodes = 4
)

// Options configures edge conductances for the generators.
type Options struct {
	// Weight is the uniform conductance assigned to every edge. Default 1.0.
	Weight float64
}

// Option is a functional option for the generators.
type Option func(*Options)

// WithWeight sets the uniform edge conductance. Must be positive and
// finite; anything else panics, per the option-constructor contract.
func WithWeight(w float64) Option {
	return func(o *Options) {
		if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			panic("gen: edge weight must be positive and finite")
		}
		o.Weight = w
	}
}

// DefaultOptions returns the generator baseline: unit conductances.
func DefaultOptions() Options {
	return Options{Weight: 1.0}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Complete returns K_n: every unordered pair {i,j} connected once.
func Complete(n int, opts ...Option) (*core.Graph, error) {
	if n < minGraphNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minGraphNodes, ErrTooFewNodes)
	}
	cfg := buildOptions(opts)

	g := core.NewGraph(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddOrMergeEdge(i, j, cfg.Weight); err != nil {
				return nil, fmt.Errorf("Complete: edge {%d,%d}: %w", i, j, err)
			}
		}
	}

	return g, nil
}

// Cycle returns C_n: 0—1—…—(n-1)—0.
func Cycle(n int, opts ...Option) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewNodes)
	}
	cfg := buildOptions(opts)

	g := core.NewGraph(n)
	for i := 0; i < n; i++ {
		if err := g.AddOrMergeEdge(i, (i+1)%n, cfg.Weight); err != nil {
			return nil, fmt.Errorf("Cycle: edge {%d,%d}: %w", i, (i+1)%n, err)
		}
	}

	return g, nil
}

// Path returns P_n: the chain 0—1—…—(n-1). Every interior node has
// degree 2, so reducing a path exercises only the series law.
func Path(n int, opts ...Option) (*core.Graph, error) {
	if n < minGraphNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minGraphNodes, ErrTooFewNodes)
	}
	cfg := buildOptions(opts)

	g := core.NewGraph(n)
	for i := 0; i+1 < n; i++ {
		if err := g.AddOrMergeEdge(i, i+1, cfg.Weight); err != nil {
			return nil, fmt.Errorf("Path: edge {%d,%d}: %w", i, i+1, err)
		}
	}

	return g, nil
}

// Star returns S_n: hub 0 connected to leaves 1..n-1.
func Star(n int, opts ...Option) (*core.Graph, error) {
	if n < minGraphNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minGraphNodes, ErrTooFewNodes)
	}
	cfg := buildOptions(opts)

	g := core.NewGraph(n)
	for leaf := 1; leaf < n; leaf++ {
		if err := g.AddOrMergeEdge(0, leaf, cfg.Weight); err != nil {
			return nil, fmt.Errorf("Star: edge {0,%d}: %w", leaf, err)
		}
	}

	return g, nil
}

// Wheel returns W_n: hub 0 plus the cycle 1..n-1, every rim node spoked
// to the hub. The hub's high degree makes wheels a compact star-mesh
// stress case.
func Wheel(n int, opts ...Option) (*core.Graph, error) {
	if n < minWheelNodes {
		return nil, fmt.Errorf("Wheel: n=%d < min=%d: %w", n, minWheelNodes, ErrTooFewNodes)
	}
	cfg := buildOptions(opts)

	g := core.NewGraph(n)
	rim := n - 1
	for i := 1; i <= rim; i++ {
		next := i%rim + 1
		if err := g.AddOrMergeEdge(i, next, cfg.Weight); err != nil {
			return nil, fmt.Errorf("Wheel: rim edge {%d,%d}: %w", i, next, err)
		}
		if err := g.AddOrMergeEdge(0, i, cfg.Weight); err != nil {
			return nil, fmt.Errorf("Wheel: spoke {0,%d}: %w", i, err)
		}
	}

	return g, nil
}

// RandomTree returns a uniform-attachment tree on n nodes: node i > 0
// attaches to a node drawn from [0, i). Reproducible for a fixed seed.
func RandomTree(n int, seed int64, opts ...Option) (*core.Graph, error) {
	if n < minGraphNodes {
		return nil, fmt.Errorf("RandomTree: n=%d < min=%d: %w", n, minGraphNodes, ErrTooFewNodes)
	}
	cfg := buildOptions(opts)
	rng := rand.New(rand.NewSource(seed))

	g := core.NewGraph(n)
	for i := 1; i < n; i++ {
		parent := rng.Intn(i)
		if err := g.AddOrMergeEdge(parent, i, cfg.Weight); err != nil {
			return nil, fmt.Errorf("RandomTree: edge {%d,%d}: %w", parent, i, err)
		}
	}

	return g, nil
}

// Disjoint returns the disjoint union of the given graphs, re-indexing
// each part's nodes after the previous part's arena. Inactive nodes and
// their edges are not carried over.
func Disjoint(parts ...*core.Graph) (*core.Graph, error) {
	totalNodes := 0
	for _, p := range parts {
		totalNodes += p.Order()
	}

	g := core.NewGraph(totalNodes)
	offset := 0
	for pi, p := range parts {
		for u := 0; u < p.Order(); u++ {
			if !p.Active(u) {
				if err := g.Deactivate(offset + u); err != nil {
					return nil, fmt.Errorf("Disjoint: part %d node %d: %w", pi, u, err)
				}

				continue
			}
			arcs, err := p.Neighbors(u)
			if err != nil {
				return nil, fmt.Errorf("Disjoint: part %d node %d: %w", pi, u, err)
			}
			for _, a := range arcs {
				if u >= a.To {
					continue // each unordered pair once
				}
				if err = g.AddOrMergeEdge(offset+u, offset+a.To, a.Weight); err != nil {
					return nil, fmt.Errorf("Disjoint: part %d edge {%d,%d}: %w", pi, u, a.To, err)
				}
			}
		}
		offset += p.Order()
	}

	return g, nil
}
