// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/boolwidth/representative"
)

func newWidthCmd(root *rootFlags) *cobra.Command {
	var treePath, linearPath string
	cmd := &cobra.Command{
		Use:   "width",
		Short: "Report the boolean-dimension and boolean-width of a decomposition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := loadGraph(root.graph)
			if err != nil {
				return err
			}
			tree, err := loadDecomposition(g, treePath, linearPath)
			if err != nil {
				return err
			}
			dim, err := representative.Dimension(tree, representative.WithLogger(root.logger(cmd)))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "boolean-dimension\t%d\nboolean-width\t%.4f\n", dim, math.Log2(float64(dim)))

			return nil
		},
	}
	cmd.Flags().StringVar(&treePath, "tree", "", "tree decomposition file")
	cmd.Flags().StringVar(&linearPath, "linear", "", "linear decomposition file")

	return cmd
}
