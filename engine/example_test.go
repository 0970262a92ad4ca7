package engine_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/spantree/engine"
	"github.com/katalvlaran/spantree/entropy"
)

// ExampleAnalyze computes Tau and Rho for K4, the classic Cayley check:
// 4^(4-2) = 16 spanning trees.
func ExampleAnalyze() {
	edges := []engine.Edge{
		engine.UnitEdge(1, 2), engine.UnitEdge(1, 3), engine.UnitEdge(1, 4),
		engine.UnitEdge(2, 3), engine.UnitEdge(2, 4), engine.UnitEdge(3, 4),
	}

	res, err := engine.Analyze(context.Background(), edges)
	if err != nil {
		fmt.Println("analyze:", err)
		return
	}

	fmt.Printf("Tau = %.0f (%s)\n", res.Tau, entropy.FormatTau(res.LogTau))
	fmt.Printf("Rho = %.4f\n", res.Rho)
	// Output:
	// Tau = 16 (1.600 x 10^1)
	// Rho = 0.6931
}

// ExampleAnalyze_disconnected shows the informational handling of inputs
// with multiple components.
func ExampleAnalyze_disconnected() {
	edges := []engine.Edge{
		engine.UnitEdge(1, 2), engine.UnitEdge(2, 3), engine.UnitEdge(3, 1),
		engine.UnitEdge(7, 8), engine.UnitEdge(8, 9), engine.UnitEdge(9, 7),
	}

	res, err := engine.Analyze(context.Background(), edges)
	if err != nil {
		fmt.Println("analyze:", err)
		return
	}

	fmt.Printf("disconnected = %v, whole-graph Tau = %.0f\n", res.Disconnected, res.Tau)
	for _, c := range res.Components {
		fmt.Printf("component %d: nodes = %d, Tau = %.0f\n", c.ID, c.Nodes, c.Tau)
	}
	// Output:
	// disconnected = true, whole-graph Tau = 0
	// component 0: nodes = 3, Tau = 3
	// component 1: nodes = 3, Tau = 3
}
