// SPDX-License-Identifier: MIT

// Package boolwidth computes boolean-width decompositions of graphs and
// solves vertex subset problems by dynamic programming over them.
//
// What is in the module:
//
//	fixedset/        bitsets over a fixed integer range, ordered and hashable
//	graph/           simple undirected graphs with FixedSet adjacency
//	builder/         deterministic graph fixtures (paths, grids, random graphs)
//	decomposition/   tree (laminar) and linear (vertex order) decompositions
//	representative/  canonical subsets per d-neighborhood class at every cut
//	sigmarho/        the (σ,ρ) family: independent, dominating, perfect code …
//	counting/        independent and dominating sets counted by size
//	exact/           decompositions of minimum boolean-width for small graphs
//	search/          parallel best-of selection among candidate decompositions
//	interchange/     plain text decomposition files
//	cmd/bwidth       command line front end
//
// Typical flow:
//
//	g := builder.MustBuild(builder.Grid(3, 4))
//	tree, res, _ := exact.Decompose(g)
//	ds, _ := sigmarho.ComputeOptimalValue(tree,
//		sigmarho.MustInstance(sigmarho.DominatingSet, g.Size()), sigmarho.Minimize)
//
// The DP runs in time polynomial in n and in the boolean-dimension of the
// decomposition (res.Dimension); the exact decomposer itself is exponential
// in n and is meant for graphs of a dozen or so vertices.
//
//	go get github.com/katalvlaran/boolwidth
package boolwidth
