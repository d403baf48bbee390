// SPDX-License-Identifier: MIT

// Package builder provides deterministic graph fixtures for tests, examples
// and benchmarks of the decomposition and dynamic-programming packages.
//
// A Constructor appends a block of fresh vertices to a Draft and connects
// them; BuildGraph runs constructors in order and freezes the Draft into a
// *graph.Graph. Composing several constructors therefore yields their
// disjoint union, which is handy for component and infeasibility tests.
//
// Topologies:
//
//	Path(n)                  P_n, n ≥ 1
//	Cycle(n)                 C_n, n ≥ 3
//	Complete(n)              K_n, n ≥ 1
//	Star(n)                  center 0 plus n-1 leaves, n ≥ 2
//	Wheel(n)                 C_{n-1} plus a hub, n ≥ 4
//	Grid(rows, cols)         4-neighborhood grid, row-major ids
//	CompleteBipartite(a, b)  K_{a,b}, left side first
//	RandomSparse(n, p)       G(n, p), requires WithSeed/WithRand for 0 < p < 1
//	RandomRegular(n, d)      d-regular by stub matching, requires an RNG
//
// Options:
//
//	WithSeed(seed) / WithRand(r)  random source for stochastic constructors.
//	WithShuffledLabels()          permute vertex ids of the final graph.
//
// Determinism: same constructors, same order and same seed give the same graph.
package builder
