// Package reduce defines the transformation kinds, configuration options
// and sentinel errors of the graph reduction scheduler.
//
// The scheduler eliminates nodes one at a time, always picking an active
// node of minimum current degree (ties broken by smallest id), and applies
// the electrical-equivalence law matching that degree:
//
//	degree 0 → Isolated: mark inactive, no correction factor
//	degree 1 → Pendant:  drop the forced edge, correction factor w
//	degree 2 → Series:   harmonic merge (w1·w2)/(w1+w2), factor w1+w2
//	degree ≥3 → StarMesh: clique of (wi·wj)/W over the neighbors, factor W
//
// The Parallel law (conductance addition for colliding pairs) is applied
// implicitly by core.AddOrMergeEdge and never appears in the scheduler's
// dispatch; it is an exact rewrite with no correction factor.
//
// Every elimination of a node with degree ≥ 1 multiplies the running
// correction factor by W, the sum of conductances incident to the
// eliminated node. The factor is accumulated as a sum of ln(W) terms so
// that spanning-tree counts of astronomic magnitude never overflow.
//
// Errors (sentinel):
//
//	ErrNilGraph            if the provided graph pointer is nil.
//	ErrCancelled           if the context was cancelled before termination;
//	                       no partial accumulator value is ever returned.
//	ErrInternalConsistency if a structural invariant broke mid-reduction;
//	                       fatal, surfaced verbatim, never silently corrected.
package reduce

import "errors"

// Sentinel errors returned by Reduce.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Reduce.
	ErrNilGraph = errors.New("reduce: graph is nil")

	// ErrCancelled indicates the run stopped before reaching the terminal
	// state. The accumulator is meaningless before termination, so no
	// metrics accompany this error. Wraps the context's own error, so both
	// errors.Is(err, ErrCancelled) and errors.Is(err, context.Canceled) hold.
	ErrCancelled = errors.New("reduce: reduction cancelled")

	// ErrInternalConsistency indicates a broken invariant (for example a
	// non-positive star total, or a rewrite colliding with an eliminated
	// node). Not user-recoverable.
	ErrInternalConsistency = errors.New("reduce: internal consistency violation")
)

// Kind is the closed tagged variant of elimination transformations,
// selected by the scheduler from the eliminated node's computed degree.
type Kind uint8

const (
	// KindIsolated marks a degree-0 node: excluded from the residual with
	// no accumulator contribution.
	KindIsolated Kind = iota

	// KindPendant marks a degree-1 node: its single forced edge appears in
	// every spanning configuration, contributing exactly its conductance.
	KindPendant

	// KindSeries marks a degree-2 node: the classical series law.
	KindSeries

	// KindStarMesh marks a node of degree ≥ 3: the generalized Wye-Delta
	// (star-mesh) elimination.
	KindStarMesh
)

// String returns the transformation name for logs and test diagnostics.
func (k Kind) String() string {
	switch k {
	case KindIsolated:
		return "Isolated"
	case KindPendant:
		return "Pendant"
	case KindSeries:
		return "Series"
	case KindStarMesh:
		return "StarMesh"
	default:
		return "Unknown"
	}
}

// ProgressFunc receives monotonically non-decreasing progress:
// eliminations completed so far and the total active nodes at start.
type ProgressFunc func(done, total int)

// Options configures a single Reduce run.
//
// Progress      – optional callback, nil disables reporting.
// ProgressEvery – invoke Progress every N eliminations (bounded cadence);
//
//	the terminal elimination always reports, so callers see done == total.
type Options struct {
	Progress      ProgressFunc
	ProgressEvery int
}

// Option is a functional option for configuring Reduce.
type Option func(*Options)

// defaultProgressEvery keeps callback overhead negligible on large runs
// while still giving visible motion on mid-sized ones.
const defaultProgressEvery = 1024

// WithProgress installs a progress callback invoked every `every`
// eliminations. Must pass a positive cadence; zero or negative panics,
// matching the option-constructor contract used across this module.
func WithProgress(fn ProgressFunc, every int) Option {
	return func(o *Options) {
		if every <= 0 {
			panic("reduce: progress cadence must be positive")
		}
		o.Progress = fn
		o.ProgressEvery = every
	}
}

// DefaultOptions returns the Options baseline: no progress reporting,
// default cadence should a callback be installed later.
func DefaultOptions() Options {
	return Options{
		Progress:      nil,
		ProgressEvery: defaultProgressEvery,
	}
}
