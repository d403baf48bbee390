// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/boolwidth/decomposition"
	"github.com/katalvlaran/boolwidth/search"
)

func newBestCmd(root *rootFlags) *cobra.Command {
	var (
		paths   []string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "best",
		Short: "Pick the linear decomposition of lowest boolean-dimension",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(paths) == 0 {
				return errors.New("at least one --linear is required")
			}
			g, err := loadGraph(root.graph)
			if err != nil {
				return err
			}
			cands := make([]*decomposition.Linear, len(paths))
			for i, p := range paths {
				if cands[i], err = loadLinear(p, g); err != nil {
					return err
				}
			}
			res, err := search.BestLinear(cmd.Context(), cands,
				search.WithLogger(root.logger(cmd)), search.WithWorkers(workers))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%.4f\n", paths[res.Index], res.Dimension, res.BooleanWidth)

			return nil
		},
	}
	cmd.Flags().StringArrayVar(&paths, "linear", nil, "candidate linear decomposition file (repeatable)")
	cmd.Flags().IntVar(&workers, "workers", 4, "concurrent evaluations")

	return cmd
}
