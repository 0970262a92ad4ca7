package reduce

import "github.com/katalvlaran/spantree/core"

// This file holds the pure transformation laws. Each function touches
// nothing but its arguments: the scheduler owns all graph mutation, so
// the laws stay trivially testable against closed-form values.

// Classify maps the eliminated node's current degree to the
// transformation kind the scheduler must apply. Degrees below zero
// cannot occur for an active node and classify as Isolated.
func Classify(degree int) Kind {
	switch {
	case degree <= 0:
		return KindIsolated
	case degree == 1:
		return KindPendant
	case degree == 2:
		return KindSeries
	default:
		return KindStarMesh
	}
}

// SeriesWeight is the harmonic combination of two conductances in
// series: (w1·w2)/(w1+w2). Equals StarWeight(w1, w2, w1+w2) — the
// series law is exactly the k=2 star-mesh.
func SeriesWeight(w1, w2 float64) float64 {
	return w1 * w2 / (w1 + w2)
}

// StarWeight is the conductance of the mesh edge replacing the pair
// (vi, vj) of a star with total incident conductance W: (wi·wj)/W.
func StarWeight(wi, wj, total float64) float64 {
	return wi * wj / total
}

// StarTotal sums the conductances of a star snapshot. This is W, the
// per-elimination correction factor: by the matrix-tree theorem,
// eliminating the star's center divides the spanning-tree count of the
// graph by exactly W (the Schur complement of the weighted Laplacian at
// the center is the star-mesh graph's Laplacian, and the pivot is W).
func StarTotal(arcs []core.Arc) float64 {
	total := 0.0
	for _, a := range arcs {
		total += a.Weight
	}

	return total
}
