// SPDX-License-Identifier: MIT

// Package graph provides the simple undirected Graph consumed by the
// decomposition, representative and dynamic-programming packages.
//
// A Graph has a fixed vertex universe [0, n) and stores, per vertex, its open
// neighborhood as a fixedset.FixedSet over that universe. Neighborhood queries
// are therefore O(n/64) word operations, which is what the representative
// construction and the sigma-rho solver spend most of their time on.
//
// Mutation (Connect, Disconnect, RemoveVertex) is meant for setup and for
// preprocessing done by callers. Once a solve starts the graph must be treated
// as read-only; concurrent readers are safe, concurrent writers are not.
//
// Errors:
//
//	ErrNegativeSize     - New called with n < 0.
//	ErrVertexOutOfRange - a vertex id outside [0, n).
//	ErrVertexRemoved    - an operation on a vertex removed by RemoveVertex.
//	ErrSelfLoop         - Connect(v, v).
package graph
