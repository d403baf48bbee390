// SPDX-License-Identifier: MIT

package graph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/boolwidth/fixedset"
)

// Sentinel errors for graph construction and mutation.
var (
	// ErrNegativeSize indicates a negative vertex count.
	ErrNegativeSize = errors.New("graph: negative size")

	// ErrVertexOutOfRange indicates a vertex id outside [0, n).
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrVertexRemoved indicates an operation on a removed vertex.
	ErrVertexRemoved = errors.New("graph: vertex removed")

	// ErrSelfLoop indicates an attempt to connect a vertex to itself.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")
)

// Edge is an undirected edge between two vertices.
type Edge struct {
	U, V int
}

// Graph is a simple undirected graph over the universe [0, n).
type Graph struct {
	n        int
	vertices fixedset.FixedSet
	adj      []fixedset.FixedSet
}

// New returns an edgeless graph with vertices 0..n-1.
// Complexity: O(n²/64).
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	g := &Graph{
		n:        n,
		vertices: fixedset.Full(0, n),
		adj:      make([]fixedset.FixedSet, n),
	}
	empty := fixedset.Empty(0, n)
	for i := range g.adj {
		g.adj[i] = empty
	}

	return g, nil
}

// FromEdges returns a graph on n vertices holding the given edges.
// Duplicate edges are merged.
func FromEdges(n int, edges []Edge) (*Graph, error) {
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = g.Connect(e.U, e.V); err != nil {
			return nil, fmt.Errorf("FromEdges: edge (%d,%d): %w", e.U, e.V, err)
		}
	}

	return g, nil
}

// MustFromEdges is FromEdges for fixtures; it panics on error.
func MustFromEdges(n int, edges []Edge) *Graph {
	g, err := FromEdges(n, edges)
	if err != nil {
		panic(err)
	}

	return g
}

// checkVertex validates v against the universe and the live vertex set.
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, g.n)
	}
	if !g.vertices.Contains(v) {
		return fmt.Errorf("%w: %d", ErrVertexRemoved, v)
	}

	return nil
}

// mustVertex panics for ids outside the universe. Queries on ids outside
// [0, n) are bounds violations, not recoverable conditions.
func (g *Graph) mustVertex(v int) {
	if v < 0 || v >= g.n {
		panic(fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, g.n))
	}
}
