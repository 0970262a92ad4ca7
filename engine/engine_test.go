// Package engine_test exercises the orchestration layer end to end:
// ingestion validation, component handling, concurrency options,
// cancellation and progress aggregation.
package engine_test

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/engine"
	"github.com/katalvlaran/spantree/entropy"
	"github.com/katalvlaran/spantree/reduce"
)

// AnalyzeSuite runs the engine over representative inputs.
type AnalyzeSuite struct {
	suite.Suite
}

// k4Edges returns K4 on caller ids 10, 20, 30, 40 — deliberately sparse
// and unordered ids to exercise the dense mapping.
func k4Edges() []engine.Edge {
	ids := []int64{40, 10, 30, 20}
	var edges []engine.Edge
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			edges = append(edges, engine.UnitEdge(ids[i], ids[j]))
		}
	}

	return edges
}

// TestK4 verifies the headline closed form through the full stack.
func (s *AnalyzeSuite) TestK4() {
	res, err := engine.Analyze(context.Background(), k4Edges())
	require.NoError(s.T(), err)

	require.Equal(s.T(), 4, res.Nodes)
	require.Equal(s.T(), 6, res.Edges)
	require.False(s.T(), res.Disconnected)
	require.Len(s.T(), res.Components, 1)
	require.InDelta(s.T(), 16.0, res.Tau, 1e-9)
	require.InDelta(s.T(), math.Log(16)/4, res.Rho, 1e-9)
	require.Equal(s.T(), int64(10), res.Components[0].Smallest)
}

// TestDuplicatePairsMerge verifies the Parallel law at ingestion:
// (u,v,2) then (u,v,3) behaves exactly like (u,v,5).
func (s *AnalyzeSuite) TestDuplicatePairsMerge() {
	split, err := engine.Analyze(context.Background(), []engine.Edge{
		{U: 1, V: 2, W: 2.0},
		{U: 2, V: 1, W: 3.0},
		{U: 2, V: 3, W: 1.0},
	})
	require.NoError(s.T(), err)

	direct, err := engine.Analyze(context.Background(), []engine.Edge{
		{U: 1, V: 2, W: 5.0},
		{U: 2, V: 3, W: 1.0},
	})
	require.NoError(s.T(), err)

	require.Equal(s.T(), direct.Edges, split.Edges)
	require.InDelta(s.T(), direct.LogTau, split.LogTau, 1e-12)
}

// TestInsertionOrderIndependence permutes the edge list and expects an
// identical result.
func (s *AnalyzeSuite) TestInsertionOrderIndependence() {
	edges := k4Edges()
	reversed := make([]engine.Edge, len(edges))
	for i, e := range edges {
		reversed[len(edges)-1-i] = e
	}

	a, err := engine.Analyze(context.Background(), edges)
	require.NoError(s.T(), err)
	b, err := engine.Analyze(context.Background(), reversed)
	require.NoError(s.T(), err)

	require.Equal(s.T(), a.LogTau, b.LogTau, "dense ids are sorted, so order must not matter at all")
}

// TestTwoTriangles covers the disconnected contract: whole Tau 0,
// per-component Tau 3 each.
func (s *AnalyzeSuite) TestTwoTriangles() {
	edges := []engine.Edge{
		engine.UnitEdge(1, 2), engine.UnitEdge(2, 3), engine.UnitEdge(3, 1),
		engine.UnitEdge(7, 8), engine.UnitEdge(8, 9), engine.UnitEdge(9, 7),
	}
	res, err := engine.Analyze(context.Background(), edges)
	require.NoError(s.T(), err, "disconnection is informational, not a failure")

	require.True(s.T(), res.Disconnected)
	require.Equal(s.T(), 0.0, res.Tau)
	require.True(s.T(), math.IsInf(res.LogTau, -1))
	require.Len(s.T(), res.Components, 2)
	for _, c := range res.Components {
		require.InDelta(s.T(), 3.0, c.Tau, 1e-9)
		require.Equal(s.T(), 3, c.Nodes)
		require.Equal(s.T(), 3, c.Edges)
	}
	require.Equal(s.T(), int64(1), res.Components[0].Smallest)
	require.Equal(s.T(), int64(7), res.Components[1].Smallest)
	// Union Rho: spanning-forest count over all six nodes.
	require.InDelta(s.T(), math.Log(9)/6, res.Rho, 1e-9)
}

// TestManyComponentsParallel pushes several components through a bounded
// worker pool.
func (s *AnalyzeSuite) TestManyComponentsParallel() {
	var edges []engine.Edge
	for c := int64(0); c < 8; c++ {
		base := c * 100
		edges = append(edges,
			engine.UnitEdge(base+1, base+2),
			engine.UnitEdge(base+2, base+3),
			engine.UnitEdge(base+3, base+1))
	}

	res, err := engine.Analyze(context.Background(), edges, engine.WithWorkers(3))
	require.NoError(s.T(), err)
	require.Len(s.T(), res.Components, 8)
	for _, c := range res.Components {
		require.InDelta(s.T(), 3.0, c.Tau, 1e-9)
	}
}

// TestIngestionValidation verifies the error contract: nothing partially
// applied, typed sentinels surfaced.
func (s *AnalyzeSuite) TestIngestionValidation() {
	_, err := engine.Analyze(context.Background(), nil)
	require.ErrorIs(s.T(), err, engine.ErrNoEdges)

	_, err = engine.Analyze(context.Background(), []engine.Edge{{U: 1, V: 2, W: -1}})
	require.ErrorIs(s.T(), err, core.ErrInvalidWeight)

	_, err = engine.Analyze(context.Background(), []engine.Edge{{U: 1, V: 2, W: 0}})
	require.ErrorIs(s.T(), err, core.ErrInvalidWeight, "zero weight is rejected, never defaulted")

	_, err = engine.Analyze(context.Background(), []engine.Edge{engine.UnitEdge(5, 5)})
	require.ErrorIs(s.T(), err, core.ErrSelfLoop)
}

// TestCancellation verifies that a pre-cancelled context yields
// ErrCancelled and never a spurious result.
func (s *AnalyzeSuite) TestCancellation() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := engine.Analyze(ctx, k4Edges())
	require.Nil(s.T(), res)
	require.ErrorIs(s.T(), err, reduce.ErrCancelled)
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestProgressAggregation verifies global monotonic progress across
// concurrent components.
func (s *AnalyzeSuite) TestProgressAggregation() {
	var edges []engine.Edge
	for c := int64(0); c < 4; c++ {
		base := c * 10
		edges = append(edges,
			engine.UnitEdge(base+1, base+2),
			engine.UnitEdge(base+2, base+3),
			engine.UnitEdge(base+3, base+1))
	}

	var mu sync.Mutex
	var dones []int
	res, err := engine.Analyze(context.Background(), edges,
		engine.WithWorkers(4),
		engine.WithProgress(func(done, total int) {
			mu.Lock()
			defer mu.Unlock()
			require.Equal(s.T(), 12, total)
			dones = append(dones, done)
		}, 1))
	require.NoError(s.T(), err)
	require.NotNil(s.T(), res)

	require.NotEmpty(s.T(), dones)
	prev := 0
	for _, d := range dones {
		require.GreaterOrEqual(s.T(), d, prev)
		prev = d
	}
	require.Equal(s.T(), 12, dones[len(dones)-1])
}

// TestPerEdgeNormalization threads the option through to entropy.
func (s *AnalyzeSuite) TestPerEdgeNormalization() {
	res, err := engine.Analyze(context.Background(), k4Edges(),
		engine.WithNormalization(entropy.NormPerEdge))
	require.NoError(s.T(), err)
	require.InDelta(s.T(), math.Log(16)/6, res.Rho, 1e-9)
}

// TestWeightedTriangle checks the weighted path through the whole stack:
// weights 2, 3, 4 give Tau = 26.
func (s *AnalyzeSuite) TestWeightedTriangle() {
	res, err := engine.Analyze(context.Background(), []engine.Edge{
		{U: 1, V: 2, W: 2},
		{U: 2, V: 3, W: 3},
		{U: 1, V: 3, W: 4},
	})
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 26.0, res.Tau, 1e-9)
}

func TestAnalyzeSuite(t *testing.T) {
	suite.Run(t, new(AnalyzeSuite))
}

func TestWithWorkers_PanicsOnZero(t *testing.T) {
	require.Panics(t, func() {
		_, _ = engine.Analyze(context.Background(), []engine.Edge{engine.UnitEdge(1, 2)}, engine.WithWorkers(0))
	})
}
