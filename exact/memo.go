// SPDX-License-Identifier: MIT

package exact

import (
	"fmt"

	"github.com/katalvlaran/boolwidth/fixedset"
	"github.com/katalvlaran/boolwidth/graph"
)

// memo is the private state of one run, keyed by FixedSet.Key.
type memo struct {
	g *graph.Graph

	// width[A] is the best achievable width of a decomposition of A.
	width map[string]int
	// nbs[A] lists the distinct sets N(X) ∩ (V\A) for X ⊆ A.
	nbs map[string][]fixedset.FixedSet
	// split[A] is the chosen left child of A; absent for singletons.
	split map[string]fixedset.FixedSet
}

func newMemo(g *graph.Graph) *memo {
	m := &memo{
		g:     g,
		width: make(map[string]int),
		nbs:   make(map[string][]fixedset.FixedSet),
		split: make(map[string]fixedset.FixedSet),
	}
	empty := g.EmptySet()
	m.width[empty.Key()] = 1
	m.nbs[empty.Key()] = []fixedset.FixedSet{empty}

	return m
}

// neighborhoods derives the family of A from that of A-v: every base U
// yields U-v and (U-v) ∪ (N(v) \ A). nbs[A-v] must be present.
func (m *memo) neighborhoods(a fixedset.FixedSet, v int) []fixedset.FixedSet {
	outside := m.g.Vertices().Difference(a)
	nv := m.g.OpenNeighborhood(v).Intersection(outside)
	seen := make(map[string]struct{})
	var out []fixedset.FixedSet
	for _, base := range m.nbs[a.Remove(v).Key()] {
		without := base.Remove(v)
		for _, u := range [2]fixedset.FixedSet{without, without.Union(nv)} {
			if _, dup := seen[u.Key()]; dup {
				continue
			}
			seen[u.Key()] = struct{}{}
			out = append(out, u)
		}
	}

	return out
}

func (m *memo) record(a fixedset.FixedSet, best int) {
	v, _ := a.First()
	nbs := m.neighborhoods(a, v)
	m.nbs[a.Key()] = nbs
	m.width[a.Key()] = max(best, len(nbs))
}

func checkSize(method string, g *graph.Graph, o Options) error {
	if g.Order() > o.MaxVertices {
		return fmt.Errorf("%s: %w: %d vertices > %d", method, ErrTooLarge, g.Order(), o.MaxVertices)
	}

	return nil
}
