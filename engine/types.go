// Package engine defines the input/output contracts and configuration of
// the one-call analysis API.
//
// Inputs are plain (U, V, W) conductance triples with caller-side node
// ids; the engine maps them onto a dense arena, splits components,
// reduces, and extracts Tau and Rho. Each call is stateless and owns a
// fresh graph; nothing persists between calls.
//
// Errors (sentinel):
//
//	ErrNoEdges             if the edge list is empty.
//	core.ErrInvalidWeight  for a non-positive or non-finite weight
//	                       (rejected at ingestion, nothing partially applied).
//	core.ErrSelfLoop       for a self-referencing pair (rejected, not dropped).
//	reduce.ErrCancelled    if the context was cancelled mid-run.
package engine

import (
	"errors"
	"runtime"

	charmlog "github.com/charmbracelet/log"

	"github.com/katalvlaran/spantree/entropy"
	"github.com/katalvlaran/spantree/reduce"
)

// Sentinel errors returned by Analyze.
var (
	// ErrNoEdges indicates an empty input: the engine's contract is a
	// finite sequence of edge triples, so there is nothing to analyze.
	ErrNoEdges = errors.New("engine: no edges supplied")
)

// Edge is one weighted input triple. Node ids are caller-side (for
// example raw SNAP vertex numbers) and need not be dense or small;
// the engine assigns its own dense arena ids internally.
type Edge struct {
	U, V int64   // endpoints, caller-side ids
	W    float64 // conductance; must be positive and finite
}

// UnitEdge is the unweighted-input helper: a triple with conductance 1.0.
// Weights are never defaulted implicitly — a zero W in a hand-built Edge
// is rejected, not coerced.
func UnitEdge(u, v int64) Edge {
	return Edge{U: u, V: v, W: 1.0}
}

// Component is one connected component's result.
type Component struct {
	ID       int     // index in Result.Components, ordered by smallest node id
	Smallest int64   // smallest caller-side node id in the component
	Nodes    int     // node count
	Edges    int     // merged edge count
	LogTau   float64 // ln of the spanning-tree count
	Tau      float64 // exp(LogTau); may round to +Inf, LogTau is authoritative
	Rho      float64 // normalized structural entropy
}

// Result is the whole-graph analysis outcome.
//
// For a disconnected input, Disconnected is true and the whole-graph Tau
// is 0 (LogTau -Inf) since no spanning tree joins the parts; the
// per-component values remain valid, and Rho covers the union via the
// spanning-forest count.
type Result struct {
	Nodes        int         // distinct node ids seen in the input
	Edges        int         // stored edges after Parallel merging
	Disconnected bool        // more than one connected component
	Components   []Component // per component, ordered by smallest node id

	LogTau float64
	Tau    float64
	Rho    float64
}

// ProgressFunc receives global progress: nodes eliminated so far across
// all components, and the total node count. Monotonically non-decreasing;
// may be invoked from multiple worker goroutines, but never concurrently.
type ProgressFunc func(done, total int)

// Options configures one Analyze call.
type Options struct {
	// Workers bounds concurrent component reductions. Default: GOMAXPROCS.
	Workers int

	// Progress and ProgressEvery mirror reduce.WithProgress, aggregated
	// across components. Nil disables reporting.
	Progress      ProgressFunc
	ProgressEvery int

	// Normalization selects the Rho denominator (per-node by default).
	Normalization entropy.Normalization

	// Logger, when set, receives debug-level per-component reduction
	// lines. Silent by default.
	Logger *charmlog.Logger
}

// Option is a functional option for Analyze.
type Option func(*Options)

// WithWorkers bounds the component-reduction concurrency. Must be
// positive; zero or negative panics.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("engine: worker count must be positive")
		}
		o.Workers = n
	}
}

// WithProgress installs an aggregated progress callback invoked every
// `every` eliminations per component. Must pass a positive cadence.
func WithProgress(fn ProgressFunc, every int) Option {
	return func(o *Options) {
		if every <= 0 {
			panic("engine: progress cadence must be positive")
		}
		o.Progress = fn
		o.ProgressEvery = every
	}
}

// WithNormalization selects the Rho denominator.
func WithNormalization(n entropy.Normalization) Option {
	return func(o *Options) { o.Normalization = n }
}

// WithLogger attaches a logger for per-component debug lines.
func WithLogger(l *charmlog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the Analyze baseline: all cores, no progress
// reporting, per-node normalization, no logging.
func DefaultOptions() Options {
	return Options{
		Workers:       runtime.GOMAXPROCS(0),
		Progress:      nil,
		ProgressEvery: 1024,
		Normalization: entropy.NormPerNode,
		Logger:        nil,
	}
}

// reduceOptions translates engine options into per-component reduce
// options; fn is the component-local progress adapter.
func (o Options) reduceOptions(fn reduce.ProgressFunc) []reduce.Option {
	if fn == nil {
		return nil
	}

	return []reduce.Option{reduce.WithProgress(fn, o.ProgressEvery)}
}
