// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
	graph   string
}

func (f *rootFlags) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "bwidth",
		Short: "Boolean-width decompositions and (σ,ρ) dynamic programming",
		Long: `Compute decompositions of small graphs that minimize boolean-width,
measure existing decompositions, and solve vertex subset problems over them.

Graphs are YAML documents with 1-based vertex ids:

  vertices: 4
  edges: [[1, 2], [2, 3], [3, 4]]

Decompositions use the plain text interchange format: one node (tree) or
one vertex (linear) per line, "c" lines are comments.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log debug events to stderr")
	root.PersistentFlags().StringVarP(&flags.graph, "graph", "g", "", "graph YAML file (required)")

	root.AddCommand(
		newExactCmd(flags),
		newWidthCmd(flags),
		newSolveCmd(flags),
		newCountCmd(flags),
		newBestCmd(flags),
	)

	return root
}
