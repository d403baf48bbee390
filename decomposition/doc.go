// SPDX-License-Identifier: MIT

// Package decomposition holds the two decomposition shapes consumed by the
// representative tables and the dynamic-programming solvers.
//
// Tree is a rooted binary laminar family over the vertex set of a graph:
// the root is V, every internal node has exactly two disjoint children whose
// union is the node, and every leaf is a singleton. Nodes are FixedSets and
// are addressed by value.
//
// Linear is a vertex sequence (a path decomposition). Its cuts are the
// prefixes of the sequence; Tree converts it into the equivalent chain.
//
// Insertion order matters: Insert reconstructs parent/child relations
// positionally, attaching each node to the most recently inserted strict
// superset that still lacks two children. The first child attached is the
// left one. This is the order used by the interchange file format.
//
// Errors:
//
//	ErrDuplicateNode    - the node is already in the tree.
//	ErrInvalidNode      - empty node, wrong range or vertices outside the graph.
//	ErrParentNotFound   - no eligible parent for Insert, or unknown parent.
//	ErrParentFull       - the designated parent already has two children.
//	ErrNotLaminar       - Validate found a violated tree invariant.
//	ErrNotPermutation   - a linear sequence is not a permutation of V.
package decomposition
