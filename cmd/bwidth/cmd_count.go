// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/boolwidth/counting"
	"github.com/katalvlaran/boolwidth/graph"
)

func newCountCmd(root *rootFlags) *cobra.Command {
	var linearPath, kind, algorithm string
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count independent or dominating sets by size over a linear decomposition",
		Long: `Count independent or dominating sets of the graph, bucketed by size, by
dynamic programming over a linear decomposition (--linear).

--kind maximal counts the inclusion-maximal independent sets instead. It
branches on the graph directly and needs no decomposition; --algorithm
selects components (default), pivot or plain branching.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := loadGraph(root.graph)
			if err != nil {
				return err
			}
			if kind == "maximal" {
				return countMaximal(cmd, root, g, algorithm)
			}
			if linearPath == "" {
				return fmt.Errorf("--linear is required")
			}
			lin, err := loadLinear(linearPath, g)
			if err != nil {
				return err
			}

			opts := []counting.Option{counting.WithLogger(root.logger(cmd))}
			var h counting.Histogram
			switch kind {
			case "independent":
				h, err = counting.CountIndependentSets(lin, opts...)
			case "dominating":
				h, err = counting.CountDominatingSets(lin, opts...)
			default:
				return fmt.Errorf("unknown --kind %q (want independent, dominating or maximal)", kind)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for k, c := range h {
				if c.Sign() != 0 {
					fmt.Fprintf(out, "%d\t%s\n", k, c)
				}
			}
			fmt.Fprintf(out, "total\t%s\n", h.Total())

			return nil
		},
	}
	cmd.Flags().StringVar(&linearPath, "linear", "", "linear decomposition file (required)")
	cmd.Flags().StringVar(&kind, "kind", "independent", "independent, dominating or maximal")
	cmd.Flags().StringVar(&algorithm, "algorithm", counting.ComponentBranching.String(),
		"maximal set branching: components, pivot or plain")

	return cmd
}

func countMaximal(cmd *cobra.Command, root *rootFlags, g *graph.Graph, algorithm string) error {
	var a counting.MISAlgorithm
	switch algorithm {
	case counting.ComponentBranching.String():
		a = counting.ComponentBranching
	case counting.PivotBranching.String():
		a = counting.PivotBranching
	case counting.PlainBranching.String():
		a = counting.PlainBranching
	default:
		return fmt.Errorf("unknown --algorithm %q (want components, pivot or plain)", algorithm)
	}
	c, err := counting.CountMaximalIndependentSets(g,
		counting.WithLogger(root.logger(cmd)), counting.WithMISAlgorithm(a))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "maximal\t%s\n", c)

	return nil
}
