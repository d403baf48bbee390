// SPDX-License-Identifier: MIT

package graph

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/boolwidth/fixedset"
)

// Size returns n, the size of the vertex universe [0, n).
func (g *Graph) Size() int { return g.n }

// Order returns the number of live vertices.
func (g *Graph) Order() int { return g.vertices.Count() }

// Vertices returns the set of live vertices.
func (g *Graph) Vertices() fixedset.FixedSet { return g.vertices }

// EmptySet returns the empty set over the graph universe.
func (g *Graph) EmptySet() fixedset.FixedSet { return fixedset.Empty(0, g.n) }

// Connect adds the undirected edge {u, v}. Connecting an existing edge is a no-op.
func (g *Graph) Connect(u, v int) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if u == v {
		return ErrSelfLoop
	}
	g.adj[u] = g.adj[u].Add(v)
	g.adj[v] = g.adj[v].Add(u)

	return nil
}

// Disconnect removes the undirected edge {u, v} if present.
func (g *Graph) Disconnect(u, v int) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	g.adj[u] = g.adj[u].Remove(v)
	g.adj[v] = g.adj[v].Remove(u)

	return nil
}

// RemoveVertex drops v and all of its incident edges. The universe keeps its
// size; v simply stops being a member of Vertices.
func (g *Graph) RemoveVertex(v int) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	for w := range g.adj[v].All() {
		g.adj[w] = g.adj[w].Remove(v)
	}
	g.adj[v] = g.EmptySet()
	g.vertices = g.vertices.Remove(v)

	return nil
}

// HasEdge reports whether {u, v} is an edge. Ids outside the universe report false.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n {
		return false
	}

	return g.adj[u].Contains(v)
}

// OpenNeighborhood returns N(v). Panics with ErrVertexOutOfRange for v outside [0, n).
func (g *Graph) OpenNeighborhood(v int) fixedset.FixedSet {
	g.mustVertex(v)

	return g.adj[v]
}

// ClosedNeighborhood returns N[v] = N(v) ∪ {v}.
func (g *Graph) ClosedNeighborhood(v int) fixedset.FixedSet {
	g.mustVertex(v)

	return g.adj[v].Add(v)
}

// Neighborhood returns the union of N(v) over v in set.
// Complexity: O(|set|·n/64).
func (g *Graph) Neighborhood(set fixedset.FixedSet) fixedset.FixedSet {
	b := fixedset.NewBuilder(0, g.n)
	for v := range set.All() {
		b.AddSet(g.OpenNeighborhood(v))
	}

	return b.Set()
}

// Degree returns |N(v)|.
func (g *Graph) Degree(v int) int {
	g.mustVertex(v)

	return g.adj[v].Count()
}

// Edges returns every edge once with U < V, sorted by (U, V).
func (g *Graph) Edges() []Edge {
	var out []Edge
	for u := range g.vertices.All() {
		for v := range g.adj[u].All() {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for u := range g.vertices.All() {
		total += g.adj[u].Count()
	}

	return total / 2
}

// Clone returns an independent copy. FixedSets are immutable, so the copy
// shares them and only the adjacency slice is duplicated.
func (g *Graph) Clone() *Graph {
	adj := make([]fixedset.FixedSet, len(g.adj))
	copy(adj, g.adj)

	return &Graph{n: g.n, vertices: g.vertices, adj: adj}
}

// Components returns the connected components of the live vertices, ordered
// by their smallest vertex.
// Complexity: O(n·n/64).
func (g *Graph) Components() []fixedset.FixedSet {
	return g.ComponentsOf(g.vertices)
}

// ComponentsOf returns the connected components of the subgraph induced by
// set, ordered by their smallest vertex. Vertices of set that are not live
// are ignored.
func (g *Graph) ComponentsOf(set fixedset.FixedSet) []fixedset.FixedSet {
	var comps []fixedset.FixedSet
	seen := fixedset.NewBuilder(0, g.n)
	for start := range set.All() {
		if seen.Contains(start) || !g.vertices.Contains(start) {
			continue
		}
		comp := fixedset.NewBuilder(0, g.n)
		queue := linkedlistqueue.New()
		queue.Enqueue(start)
		seen.Add(start)
		for !queue.Empty() {
			item, _ := queue.Dequeue()
			v := item.(int)
			comp.Add(v)
			for w := range g.adj[v].Intersection(set).All() {
				if !seen.Contains(w) {
					seen.Add(w)
					queue.Enqueue(w)
				}
			}
		}
		comps = append(comps, comp.Set())
	}

	return comps
}
