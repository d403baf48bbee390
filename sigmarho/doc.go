// SPDX-License-Identifier: MIT

// Package sigmarho solves (σ,ρ) vertex-subset problems by dynamic
// programming over a tree decomposition.
//
// A (σ,ρ)-set S of a graph satisfies |N(v) ∩ S| ∈ σ for every v ∈ S and
// |N(v) ∩ S| ∈ ρ for every v ∉ S. Independent set is ({0}, ℕ), dominating
// set is (ℕ, ℕ\{0}), perfect code is ({0}, {1}), and so on; Problem lists
// the twelve classic variants and NewCustomInstance accepts any pair.
//
// ComputeOptimalValue builds a representative table with d = Instance.D()
// (or reuses one passed with WithTable) and fills, bottom-up, one table per
// decomposition node indexed by (representative of S ∩ node, representative
// of the outside set). Leaves are initialized from neighbor counts, internal
// nodes combine their children through three representative lookups, and the
// answer is the root entry at (∅, ∅). Unreachable combinations carry the
// pessimal value of the Optimum, which absorbs addition.
//
// Every call owns its own tables, so concurrent solves over the same tree
// are safe. SolveAll runs several problems in parallel over one shared,
// read-only representative table.
//
// Complexity per internal node: O(|R_L| · |R_R| · |R_W̄| · n²/64) where R_X
// is the representative list of cut X.
package sigmarho
