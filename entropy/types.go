// Package entropy defines the metric types, normalization modes and
// sentinel errors of the extraction step.
//
// Rho compares a network's structural redundancy against asymptotic
// theory: the Farey-graph analysis this engine descends from reports a
// limiting per-node entropy constant, FareyReference. A network with
// Rho above the constant is more spanning-tree-rich ("more robust")
// than the reference family at the same scale.
//
// Errors (sentinel):
//
//	ErrNoComponents  if Extract received an empty component list.
//	ErrBadComponent  if a component has no nodes or a NaN accumulator.
//	ErrDisconnected  informational: whole-graph Tau is 0 because the
//	                 input has multiple components; per-component values
//	                 in the returned Metrics remain valid.
package entropy

import "errors"

// Sentinel errors returned by Extract.
var (
	// ErrNoComponents indicates an empty component list.
	ErrNoComponents = errors.New("entropy: no components to extract metrics from")

	// ErrBadComponent indicates a component with no nodes or a NaN LogTau.
	ErrBadComponent = errors.New("entropy: malformed component stat")

	// ErrDisconnected flags a whole-graph Tau of 0 due to multiple
	// components. Informational, not fatal: the Metrics alongside it are
	// fully populated.
	ErrDisconnected = errors.New("entropy: graph is disconnected, whole-graph Tau is 0")
)

// FareyReference is the asymptotic per-node spanning-tree entropy of the
// Farey graph family, the yardstick the original analysis compares
// networks against.
const FareyReference = 0.9457

// Normalization selects the denominator of Rho.
type Normalization uint8

const (
	// NormPerNode divides ln(Tau) by the node count (the default; this is
	// the scale FareyReference lives on).
	NormPerNode Normalization = iota

	// NormPerEdge divides ln(Tau) by the edge count, for comparing
	// networks of similar order but very different density.
	NormPerEdge
)

// String returns the normalization name used in config files and flags.
func (n Normalization) String() string {
	switch n {
	case NormPerEdge:
		return "per-edge"
	default:
		return "per-node"
	}
}

// ComponentStat is the raw per-component outcome handed in by the caller:
// original node count and the reduction accumulator.
type ComponentStat struct {
	// Nodes is the component's node count before reduction.
	Nodes int

	// LogTau is the component's accumulated ln(Tau).
	LogTau float64
}

// ComponentMetrics is one component's extracted metrics.
type ComponentMetrics struct {
	Nodes  int     // nodes in the component
	LogTau float64 // ln of the spanning-tree count
	Tau    float64 // exp(LogTau); may be +Inf, LogTau stays authoritative
	Rho    float64 // normalized structural entropy
}

// Metrics is the extraction result for the whole input.
type Metrics struct {
	Nodes      int                // nodes over the union
	Edges      int                // edges over the union
	Components []ComponentMetrics // per component, caller's order preserved

	LogTau float64 // whole-graph ln(Tau); -Inf when disconnected
	Tau    float64 // whole-graph Tau; 0 when disconnected
	Rho    float64 // entropy over the union (spanning-forest based)
}

// Options configures metric extraction.
type Options struct {
	Normalization Normalization
}

// Option is a functional option for Extract.
type Option func(*Options)

// WithNormalization selects the Rho denominator.
func WithNormalization(n Normalization) Option {
	return func(o *Options) { o.Normalization = n }
}

// DefaultOptions returns the extraction baseline: per-node natural-log
// normalization.
func DefaultOptions() Options {
	return Options{Normalization: NormPerNode}
}
