// Package kirchhoff evaluates the matrix-tree theorem directly: the
// spanning-tree count of a weighted graph as the determinant of any
// principal minor of its Laplacian.
//
// This is the O(N³) path the reduction engine exists to avoid. It stays
// in the module as the exactness oracle for tests and as a convenience
// for small graphs where a determinant is simpler than a reduction run.
package kirchhoff

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/spantree/core"
)

// Sentinel errors for the determinant oracle.
var (
	// ErrNilGraph indicates that a nil *core.Graph was supplied.
	ErrNilGraph = errors.New("kirchhoff: graph is nil")

	// ErrTooLarge guards against accidentally running the cubic oracle on
	// an input sized for the reduction engine.
	ErrTooLarge = errors.New("kirchhoff: graph too large for the determinant oracle")
)

// MaxOracleNodes bounds the active node count Tau accepts. The cubic
// cost and float64 conditioning both degrade past this scale; use the
// reduction engine instead.
const MaxOracleNodes = 64

// Tau returns the weighted spanning-tree count of the active subgraph of
// g: the determinant of the Laplacian with one row and column removed.
//
// Conventions:
//   - A graph with zero or one active node has Tau = 1 (empty product).
//   - A disconnected graph has Tau = 0 (its Laplacian minor is singular).
//
// Complexity: O(N³) time, O(N²) space, N = active nodes.
func Tau(g *core.Graph) (float64, error) {
	// 1) Validate.
	if g == nil {
		return 0, ErrNilGraph
	}

	// 2) Collect active nodes in ascending id order.
	nodes := make([]int, 0, g.Order())
	for u := 0; u < g.Order(); u++ {
		if g.Active(u) {
			nodes = append(nodes, u)
		}
	}
	n := len(nodes)
	if n > MaxOracleNodes {
		return 0, fmt.Errorf("%w: %d active nodes > %d", ErrTooLarge, n, MaxOracleNodes)
	}
	if n <= 1 {
		return 1, nil
	}

	// 3) Build the reduced Laplacian: drop the last node's row and column.
	//    L[i][i] = sum of incident conductances, L[i][j] = -w(i,j).
	index := make(map[int]int, n)
	for i, u := range nodes {
		index[u] = i
	}
	m := n - 1
	lap := make([][]float64, m)
	for i := 0; i < m; i++ {
		lap[i] = make([]float64, m)
	}
	for i := 0; i < m; i++ {
		u := nodes[i]
		arcs, err := g.Neighbors(u)
		if err != nil {
			return 0, err
		}
		for _, a := range arcs {
			lap[i][i] += a.Weight
			if j, ok := index[a.To]; ok && j < m {
				lap[i][j] -= a.Weight
			}
		}
	}

	// 4) Gaussian elimination with partial pivoting; the determinant is
	//    the signed product of pivots. The minor of a Laplacian is
	//    positive semi-definite, so a vanishing pivot means Tau = 0.
	det := 1.0
	for col := 0; col < m; col++ {
		// Select the largest pivot in this column for stability.
		pivot := col
		for row := col + 1; row < m; row++ {
			if math.Abs(lap[row][col]) > math.Abs(lap[pivot][col]) {
				pivot = row
			}
		}
		if lap[pivot][col] == 0 {
			return 0, nil
		}
		if pivot != col {
			lap[pivot], lap[col] = lap[col], lap[pivot]
			det = -det
		}
		det *= lap[col][col]

		for row := col + 1; row < m; row++ {
			factor := lap[row][col] / lap[col][col]
			if factor == 0 {
				continue
			}
			for k := col; k < m; k++ {
				lap[row][k] -= factor * lap[col][k]
			}
		}
	}

	// Rounding can leave a tiny negative residue where the true value is 0.
	if det < 0 && det > -1e-9 {
		det = 0
	}

	return det, nil
}

// LogTau returns ln(Tau(g)), with ln(0) = -Inf for disconnected graphs.
// Prefer this form when comparing against the reduction accumulator.
func LogTau(g *core.Graph) (float64, error) {
	tau, err := Tau(g)
	if err != nil {
		return 0, err
	}

	return math.Log(tau), nil
}
