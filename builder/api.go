// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/boolwidth/graph"
)

// Draft is the growing vertex/edge list that constructors append to.
type Draft struct {
	n     int
	edges []graph.Edge
}

// AddVertices reserves k fresh vertices and returns the id of the first one.
func (d *Draft) AddVertices(k int) int {
	base := d.n
	d.n += k

	return base
}

// AddEdge records the undirected edge {u, v}. Validation happens when the
// draft is frozen.
func (d *Draft) AddEdge(u, v int) {
	d.edges = append(d.edges, graph.Edge{U: u, V: v})
}

// Len returns the number of vertices reserved so far.
func (d *Draft) Len() int { return d.n }

// Constructor appends a deterministic topology to a Draft.
type Constructor func(d *Draft, cfg builderConfig) error

// BuildGraph resolves bopts, applies every constructor in order and freezes
// the result. Constructor errors are wrapped with "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	d := &Draft{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	edges := d.edges
	if cfg.shuffle {
		if cfg.rng == nil {
			return nil, fmt.Errorf("BuildGraph: shuffled labels: %w", ErrNeedRandSource)
		}
		perm := cfg.rng.Perm(d.n)
		edges = make([]graph.Edge, len(d.edges))
		for i, e := range d.edges {
			edges[i] = graph.Edge{U: perm[e.U], V: perm[e.V]}
		}
	}

	g, err := graph.FromEdges(d.n, edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Build is BuildGraph for a single constructor.
func Build(c Constructor, opts ...BuilderOption) (*graph.Graph, error) {
	return BuildGraph(opts, c)
}

// MustBuild is Build for fixtures; it panics on error.
func MustBuild(c Constructor, opts ...BuilderOption) *graph.Graph {
	g, err := Build(c, opts...)
	if err != nil {
		panic(err)
	}

	return g
}
