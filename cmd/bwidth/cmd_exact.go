// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/boolwidth/exact"
	"github.com/katalvlaran/boolwidth/interchange"
)

func newExactCmd(root *rootFlags) *cobra.Command {
	var (
		linear      bool
		out         string
		maxVertices int
	)
	cmd := &cobra.Command{
		Use:   "exact",
		Short: "Compute a decomposition of minimum boolean-width",
		Long: `Search all bipartitions (or all vertex orders with --linear) for a
decomposition of minimum boolean-dimension and write it in the interchange
format. Exponential: graphs above --max-vertices are refused.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := loadGraph(root.graph)
			if err != nil {
				return err
			}
			log := root.logger(cmd)
			opts := []exact.Option{exact.WithLogger(log), exact.WithMaxVertices(maxVertices)}

			if linear {
				lin, res, err := exact.DecomposeLinear(g, opts...)
				if err != nil {
					return err
				}
				log.Info("exact linear decomposition", "dimension", res.Dimension, "boolean_width", res.BooleanWidth)

				return writeOutput(cmd.OutOrStdout(), out, func(w io.Writer) error {
					return interchange.WriteLinear(w, lin, describe(res))
				})
			}
			tree, res, err := exact.Decompose(g, opts...)
			if err != nil {
				return err
			}
			log.Info("exact decomposition", "dimension", res.Dimension, "boolean_width", res.BooleanWidth)

			return writeOutput(cmd.OutOrStdout(), out, func(w io.Writer) error {
				return interchange.WriteTree(w, tree, describe(res))
			})
		},
	}
	cmd.Flags().BoolVar(&linear, "linear", false, "restrict the search to linear decompositions")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&maxVertices, "max-vertices", exact.DefaultMaxVertices, "largest graph accepted")

	return cmd
}

// writeOutput runs write against path, or against stdout when path is
// empty. The file's close error is returned too.
func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) (err error) {
	if path == "" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	return write(f)
}

func describe(res exact.Result) string {
	return fmt.Sprintf("boolean-dimension %d, boolean-width %.4f", res.Dimension, res.BooleanWidth)
}
