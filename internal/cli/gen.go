package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/engine"
	"github.com/katalvlaran/spantree/gen"
)

// genCommand builds `spantree gen SHAPE N`: construct a named topology
// and analyze it, handy for sanity checks against closed forms
// (complete 4 → Tau 16, cycle 5 → Tau 5, path 5 → Tau 1).
func (c *CLI) genCommand() *cobra.Command {
	var (
		weight float64
		seed   int64
	)

	cmd := &cobra.Command{
		Use:       "gen SHAPE N",
		Short:     "Analyze a generated test topology",
		Long:      `Gen builds one of the named topologies (complete, cycle, path, star, wheel, tree) on N nodes and runs the analysis on it.`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"complete", "cycle", "path", "star", "wheel", "tree"},
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("node count %q: %w", args[1], err)
			}

			g, err := buildShape(args[0], n, seed, gen.WithWeight(weight))
			if err != nil {
				return err
			}
			c.Logger.Info("topology generated", "shape", args[0], "nodes", g.Order(), "edges", g.EdgeCount())

			res, err := engine.Analyze(cmd.Context(), edgesFromGraph(g),
				engine.WithLogger(c.Logger))
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)

			return nil
		},
	}

	cmd.Flags().Float64Var(&weight, "weight", 1.0, "uniform edge conductance")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed (tree shape only)")

	return cmd
}

// buildShape dispatches on the topology name.
func buildShape(shape string, n int, seed int64, opts ...gen.Option) (*core.Graph, error) {
	switch shape {
	case "complete":
		return gen.Complete(n, opts...)
	case "cycle":
		return gen.Cycle(n, opts...)
	case "path":
		return gen.Path(n, opts...)
	case "star":
		return gen.Star(n, opts...)
	case "wheel":
		return gen.Wheel(n, opts...)
	case "tree":
		return gen.RandomTree(n, seed, opts...)
	default:
		return nil, fmt.Errorf("unknown shape %q (want complete, cycle, path, star, wheel or tree)", shape)
	}
}

// edgesFromGraph flattens a generated graph back into engine triples.
func edgesFromGraph(g *core.Graph) []engine.Edge {
	edges := make([]engine.Edge, 0, g.EdgeCount())
	for u := 0; u < g.Order(); u++ {
		if !g.Active(u) {
			continue
		}
		arcs, err := g.Neighbors(u)
		if err != nil {
			continue
		}
		for _, a := range arcs {
			if u < a.To {
				edges = append(edges, engine.Edge{U: int64(u), V: int64(a.To), W: a.Weight})
			}
		}
	}

	return edges
}
