// SPDX-License-Identifier: MIT

// Package exact computes decompositions of minimum boolean-dimension by
// exhaustive dynamic programming over vertex subsets.
//
// Decompose searches every bipartition of every subset A of V. The width of
// A is the larger of the best split's width and the number of distinct
// neighborhoods N(X) ∩ (V\A) over X ⊆ A; that neighborhood family is derived
// incrementally from A minus one vertex instead of being recomputed.
// DecomposeLinear runs the one-vertex-removed analogue and returns the
// optimal vertex sequence.
//
// Both are exponential: Decompose does O(3^n) split evaluations and
// DecomposeLinear O(n·2^n). Graphs with more than WithMaxVertices vertices
// (16 by default) are refused with ErrTooLarge. Every call owns its memo
// tables, so concurrent calls are safe.
package exact
