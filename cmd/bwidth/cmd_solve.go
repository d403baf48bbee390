// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/boolwidth/sigmarho"
)

func newSolveCmd(root *rootFlags) *cobra.Command {
	var (
		treePath, linearPath string
		problem              string
		maximize, minimize   bool
		workers              int
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a (σ,ρ) problem over a decomposition",
		Long: `Solve one of the predefined (σ,ρ) problems, or all of them with
--problem all, by dynamic programming over the given decomposition.
Problems: ` + strings.Join(problemNames(), ", ") + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if maximize && minimize {
				return errors.New("--maximize and --minimize are mutually exclusive")
			}
			g, err := loadGraph(root.graph)
			if err != nil {
				return err
			}
			tree, err := loadDecomposition(g, treePath, linearPath)
			if err != nil {
				return err
			}
			log := root.logger(cmd)
			out := cmd.OutOrStdout()

			if strings.EqualFold(problem, "all") {
				results, err := sigmarho.SolveAll(cmd.Context(), tree, sigmarho.Problems(),
					sigmarho.WithLogger(log), sigmarho.WithWorkers(workers))
				if err != nil {
					return err
				}
				for _, r := range results {
					fmt.Fprintf(out, "%s\t%s\t%s\n", r.Problem, r.Optimum, valueText(r.Value, r.Feasible))
				}

				return nil
			}

			p, err := sigmarho.ParseProblem(problem)
			if err != nil {
				return err
			}
			opt := p.DefaultOptimum()
			switch {
			case maximize:
				opt = sigmarho.Maximize
			case minimize:
				opt = sigmarho.Minimize
			}
			value, err := sigmarho.ComputeOptimalValue(tree, sigmarho.MustInstance(p, g.Size()), opt,
				sigmarho.WithLogger(log))
			feasible := !errors.Is(err, sigmarho.ErrInfeasible)
			if err != nil && feasible {
				return err
			}
			fmt.Fprintf(out, "%s\t%s\t%s\n", p, opt, valueText(value, feasible))

			return nil
		},
	}
	cmd.Flags().StringVar(&treePath, "tree", "", "tree decomposition file")
	cmd.Flags().StringVar(&linearPath, "linear", "", "linear decomposition file")
	cmd.Flags().StringVarP(&problem, "problem", "p", "", "problem name or \"all\"")
	cmd.Flags().BoolVar(&maximize, "maximize", false, "maximize the set size")
	cmd.Flags().BoolVar(&minimize, "minimize", false, "minimize the set size")
	cmd.Flags().IntVar(&workers, "workers", 4, "concurrent solves with --problem all")
	_ = cmd.MarkFlagRequired("problem")

	return cmd
}

func problemNames() []string {
	ps := sigmarho.Problems()
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.String()
	}

	return names
}

func valueText(v int, feasible bool) string {
	if !feasible {
		return "infeasible"
	}

	return fmt.Sprint(v)
}
