// Package core_test contains unit tests for the arena-backed Graph:
// merge-on-insert semantics, validation order, neighborhood snapshots,
// deactivation rules and component discovery.
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/core"
)

// ------------------------------------------------------------------------
// 1. Construction and validation.
// ------------------------------------------------------------------------

func TestNewGraph_NegativeSizeIsEmpty(t *testing.T) {
	g := core.NewGraph(-3)
	require.Equal(t, 0, g.Order())
	require.Equal(t, 0, g.ActiveCount())
}

func TestAddOrMergeEdge_RejectsBadWeights(t *testing.T) {
	g := core.NewGraph(2)
	for _, w := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := g.AddOrMergeEdge(0, 1, w)
		require.ErrorIs(t, err, core.ErrInvalidWeight, "weight %g must be rejected", w)
	}
	// Nothing may have been partially applied.
	require.Equal(t, 0, g.EdgeCount())
	require.Equal(t, 0.0, g.EdgeWeight(0, 1))
}

func TestAddOrMergeEdge_RejectsSelfLoop(t *testing.T) {
	g := core.NewGraph(3)
	err := g.AddOrMergeEdge(1, 1, 2.5)
	require.ErrorIs(t, err, core.ErrSelfLoop)
	require.Equal(t, 0, g.Degree(1))
}

func TestAddOrMergeEdge_RejectsOutOfRange(t *testing.T) {
	g := core.NewGraph(2)
	require.ErrorIs(t, g.AddOrMergeEdge(-1, 0, 1), core.ErrNodeOutOfRange)
	require.ErrorIs(t, g.AddOrMergeEdge(0, 2, 1), core.ErrNodeOutOfRange)
}

func TestAddOrMergeEdge_RejectsInactiveEndpoint(t *testing.T) {
	g := core.NewGraph(2)
	require.NoError(t, g.Deactivate(1))
	require.ErrorIs(t, g.AddOrMergeEdge(0, 1, 1), core.ErrNodeInactive)
}

// ------------------------------------------------------------------------
// 2. Parallel law: merge-on-insert idempotence.
// ------------------------------------------------------------------------

func TestParallelMerge_SumsConductances(t *testing.T) {
	// Inserting (0,1,2.0) then (0,1,3.0) must equal inserting (0,1,5.0) once.
	g := core.NewGraph(2)
	require.NoError(t, g.AddOrMergeEdge(0, 1, 2.0))
	require.NoError(t, g.AddOrMergeEdge(0, 1, 3.0))

	direct := core.NewGraph(2)
	require.NoError(t, direct.AddOrMergeEdge(0, 1, 5.0))

	require.Equal(t, 1, g.EdgeCount(), "parallel edges must merge, not accumulate")
	require.Equal(t, direct.EdgeWeight(0, 1), g.EdgeWeight(0, 1))
	require.Equal(t, 5.0, g.EdgeWeight(1, 0), "merged weight must be mirrored")
}

func TestParallelMerge_OrderIndependent(t *testing.T) {
	a := core.NewGraph(2)
	require.NoError(t, a.AddOrMergeEdge(0, 1, 2.0))
	require.NoError(t, a.AddOrMergeEdge(0, 1, 3.0))

	b := core.NewGraph(2)
	require.NoError(t, b.AddOrMergeEdge(1, 0, 3.0))
	require.NoError(t, b.AddOrMergeEdge(1, 0, 2.0))

	require.Equal(t, a.EdgeWeight(0, 1), b.EdgeWeight(0, 1))
}

// ------------------------------------------------------------------------
// 3. Neighborhood snapshots and degrees.
// ------------------------------------------------------------------------

func TestNeighbors_SortedSnapshot(t *testing.T) {
	g := core.NewGraph(4)
	require.NoError(t, g.AddOrMergeEdge(2, 3, 1.0))
	require.NoError(t, g.AddOrMergeEdge(2, 0, 2.0))
	require.NoError(t, g.AddOrMergeEdge(2, 1, 3.0))

	arcs, err := g.Neighbors(2)
	require.NoError(t, err)
	require.Equal(t, []core.Arc{{To: 0, Weight: 2.0}, {To: 1, Weight: 3.0}, {To: 3, Weight: 1.0}}, arcs)

	// The snapshot must survive mutation of the graph underneath.
	g.RemoveEdge(2, 0)
	g.RemoveEdge(2, 1)
	g.RemoveEdge(2, 3)
	require.Len(t, arcs, 3)
	require.Equal(t, 0, g.Degree(2))
}

func TestNeighbors_ErrorsOnInactiveAndOutOfRange(t *testing.T) {
	g := core.NewGraph(1)
	_, err := g.Neighbors(5)
	require.ErrorIs(t, err, core.ErrNodeOutOfRange)

	require.NoError(t, g.Deactivate(0))
	_, err = g.Neighbors(0)
	require.ErrorIs(t, err, core.ErrNodeInactive)
}

func TestDegree_ZeroForInactive(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddOrMergeEdge(0, 1, 1))
	require.Equal(t, 1, g.Degree(0))
	require.Equal(t, 0, g.Degree(2))
	require.Equal(t, 0, g.Degree(99))
}

// ------------------------------------------------------------------------
// 4. Edge removal and deactivation contract.
// ------------------------------------------------------------------------

func TestRemoveEdge_IsIdempotent(t *testing.T) {
	g := core.NewGraph(2)
	require.NoError(t, g.AddOrMergeEdge(0, 1, 1))
	g.RemoveEdge(0, 1)
	g.RemoveEdge(0, 1) // no-op
	require.Equal(t, 0, g.EdgeCount())
	require.Equal(t, 0.0, g.EdgeWeight(0, 1))
}

func TestDeactivate_RequiresDisconnection(t *testing.T) {
	g := core.NewGraph(2)
	require.NoError(t, g.AddOrMergeEdge(0, 1, 1))

	err := g.Deactivate(0)
	require.ErrorIs(t, err, core.ErrNodeConnected)

	g.RemoveEdge(0, 1)
	require.NoError(t, g.Deactivate(0))
	require.False(t, g.Active(0))
	require.Equal(t, 1, g.ActiveCount())

	// Double deactivation is an error, not a silent no-op.
	require.ErrorIs(t, g.Deactivate(0), core.ErrNodeInactive)
}

// ------------------------------------------------------------------------
// 5. Components and induced subgraphs.
// ------------------------------------------------------------------------

func TestComponents_TwoTrianglesAndIsolated(t *testing.T) {
	// Triangle {0,1,2}, triangle {3,4,5}, isolated node 6.
	g := core.NewGraph(7)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}} {
		require.NoError(t, g.AddOrMergeEdge(e[0], e[1], 1))
	}

	components := g.Components()
	require.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}, {6}}, components)
}

func TestInduced_RemapsDenseIDs(t *testing.T) {
	g := core.NewGraph(6)
	require.NoError(t, g.AddOrMergeEdge(3, 4, 2.0))
	require.NoError(t, g.AddOrMergeEdge(4, 5, 7.0))

	sub, err := g.Induced([]int{3, 4, 5})
	require.NoError(t, err)
	require.Equal(t, 3, sub.Order())
	require.Equal(t, 2, sub.EdgeCount())
	require.Equal(t, 2.0, sub.EdgeWeight(0, 1))
	require.Equal(t, 7.0, sub.EdgeWeight(1, 2))
	require.Equal(t, 0.0, sub.EdgeWeight(0, 2))
}

func TestInduced_RejectsInactiveMember(t *testing.T) {
	g := core.NewGraph(2)
	require.NoError(t, g.Deactivate(1))
	_, err := g.Induced([]int{0, 1})
	require.ErrorIs(t, err, core.ErrNodeInactive)
}
