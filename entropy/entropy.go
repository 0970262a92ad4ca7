// Package entropy turns terminal reduction state into the two reported
// invariants: Tau (spanning-tree count) and Rho (normalized structural
// entropy), plus the formatting needed to display Tau values that no
// float64 can hold literally.
package entropy

import (
	"fmt"
	"math"
)

// Extract converts per-component accumulators into the final metrics.
//
// Per component: LogTau is authoritative; Tau = exp(LogTau) may round to
// +Inf for dense graphs and is provided for convenience only.
//
// Whole graph: with more than one component no spanning tree connects
// the parts, so Tau = 0 and LogTau = -Inf; Extract still fills every
// per-component entry and returns ErrDisconnected alongside the result
// (informational — callers decide whether a forest answer suffices).
// Rho is always computed over the union from the per-component sum
// (the log of the spanning-forest count), so disconnected networks stay
// comparable against the reference constant.
//
// Preconditions and validation (in order):
//  1. at least one component (ErrNoComponents).
//  2. every component has Nodes ≥ 1 and a non-NaN LogTau (ErrBadComponent).
func Extract(components []ComponentStat, totalEdges int, opts ...Option) (*Metrics, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate input shape.
	if len(components) == 0 {
		return nil, ErrNoComponents
	}

	totalNodes := 0
	forestLog := 0.0
	for i, c := range components {
		if c.Nodes < 1 {
			return nil, fmt.Errorf("%w: component %d has %d nodes", ErrBadComponent, i, c.Nodes)
		}
		if math.IsNaN(c.LogTau) {
			return nil, fmt.Errorf("%w: component %d LogTau is NaN", ErrBadComponent, i)
		}
		totalNodes += c.Nodes
		forestLog += c.LogTau
	}

	// 3) Per-component metrics.
	m := &Metrics{
		Nodes:      totalNodes,
		Edges:      totalEdges,
		Components: make([]ComponentMetrics, len(components)),
	}
	for i, c := range components {
		m.Components[i] = ComponentMetrics{
			Nodes:  c.Nodes,
			LogTau: c.LogTau,
			Tau:    math.Exp(c.LogTau),
			Rho:    normalize(c.LogTau, c.Nodes, totalEdges, cfg.Normalization),
		}
	}

	// 4) Whole-graph aggregate.
	m.Rho = normalize(forestLog, totalNodes, totalEdges, cfg.Normalization)
	if len(components) > 1 {
		m.LogTau = math.Inf(-1)
		m.Tau = 0

		return m, ErrDisconnected
	}
	m.LogTau = forestLog
	m.Tau = math.Exp(forestLog)

	return m, nil
}

// normalize maps a log-count onto the entropy scale selected by norm.
// Division by the union's edge count (not the component's) keeps
// per-edge values of different components on one scale.
func normalize(logTau float64, nodes, edges int, norm Normalization) float64 {
	switch norm {
	case NormPerEdge:
		if edges == 0 {
			return 0
		}

		return logTau / float64(edges)
	default: // NormPerNode
		return logTau / float64(nodes)
	}
}

// FormatTau renders a natural-log count as "A.AAA x 10^B" scientific
// notation, the only faithful display once Tau outgrows float64.
// logTau of 0 renders as "1" (a tree), -Inf as "0" (disconnected).
func FormatTau(logTau float64) string {
	if logTau == 0 {
		return "1"
	}
	if math.IsInf(logTau, -1) {
		return "0"
	}

	log10 := logTau / math.Ln10
	exponent := math.Floor(log10)
	coefficient := math.Pow(10, log10-exponent)

	return fmt.Sprintf("%.3f x 10^%d", coefficient, int64(exponent))
}
