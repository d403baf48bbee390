// SPDX-License-Identifier: MIT

// Package representative implements the d-neighborhood equivalence that
// collapses the subsets on one side of a cut into a small set of canonical
// representatives.
//
// For a cut (A, V\A) and a constant d, the signature of X ⊆ A maps every
// vertex w of the vector V\A to min(d, |N(w) ∩ X|). Subsets sharing a
// signature are interchangeable for sigma-rho dynamic programming, so each
// signature class keeps exactly one representative: the smallest member
// found by a level-by-level expansion from ∅, under the FixedSet order.
//
// Entry points:
//
//	DValue(sigma, rho)     the problem constant d.
//	NewCut / Build         signature arithmetic and the list for one cut.
//	NewTable(tree, d)      lists for every node of a decomposition and its complement.
//	NewLinearTable(lin)    the d = 1 specialization over a vertex sequence.
//	Dimension(tree)        boolean-dimension of a tree decomposition.
//
// The number of representatives at a cut with d = 1 is the boolean-dimension
// of that cut. Tables are built once and are read-only afterwards; concurrent
// readers are safe.
package representative
