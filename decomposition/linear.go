// SPDX-License-Identifier: MIT

package decomposition

import (
	"fmt"
	"math"

	"github.com/katalvlaran/boolwidth/fixedset"
	"github.com/katalvlaran/boolwidth/graph"
)

// Linear is a linear decomposition: an ordering of the vertices of g.
type Linear struct {
	g   *graph.Graph
	seq []int
}

// NewLinear validates that seq is a permutation of g.Vertices() and wraps it.
// The slice is copied.
func NewLinear(g *graph.Graph, seq []int) (*Linear, error) {
	seen := fixedset.NewBuilder(0, g.Size())
	for i, v := range seq {
		if !g.Vertices().Contains(v) {
			return nil, fmt.Errorf("%w: position %d: vertex %d not in graph", ErrNotPermutation, i, v)
		}
		if seen.Contains(v) {
			return nil, fmt.Errorf("%w: position %d: vertex %d repeated", ErrNotPermutation, i, v)
		}
		seen.Add(v)
	}
	if len(seq) != g.Order() {
		return nil, fmt.Errorf("%w: %d of %d vertices", ErrNotPermutation, len(seq), g.Order())
	}

	return &Linear{g: g, seq: append([]int(nil), seq...)}, nil
}

// Graph returns the decomposed graph.
func (l *Linear) Graph() *graph.Graph { return l.g }

// Len returns the number of vertices in the sequence.
func (l *Linear) Len() int { return len(l.seq) }

// At returns the i-th vertex of the sequence.
func (l *Linear) At(i int) int { return l.seq[i] }

// Sequence returns a copy of the vertex order.
func (l *Linear) Sequence() []int { return append([]int(nil), l.seq...) }

// Prefix returns the set of the first i vertices.
func (l *Linear) Prefix(i int) fixedset.FixedSet {
	b := fixedset.NewBuilder(0, l.g.Size())
	for _, v := range l.seq[:i] {
		b.Add(v)
	}

	return b.Set()
}

// Reverse returns the decomposition with the sequence reversed.
func (l *Linear) Reverse() *Linear {
	rev := make([]int, len(l.seq))
	for i, v := range l.seq {
		rev[len(l.seq)-1-i] = v
	}

	return &Linear{g: l.g, seq: rev}
}

// Tree converts the sequence into a chain decomposition. Each internal node
// is a prefix of length k ≥ 2; its left child is the prefix of length k-1 and
// its right child is the singleton of the k-th vertex.
func (l *Linear) Tree() *Tree {
	t := NewTree(l.g)
	if len(l.seq) == 0 {
		return t
	}
	prefix := l.g.Vertices()
	mustInsert(t.Insert(prefix))
	for k := len(l.seq) - 1; k >= 1; k-- {
		last := l.seq[k]
		shorter := prefix.Remove(last)
		mustInsert(t.InsertWithParent(shorter, prefix))
		mustInsert(t.InsertWithParent(fixedset.New(0, l.g.Size(), last), prefix))
		prefix = shorter
	}

	return t
}

// mustInsert panics on a chain insertion error; a validated permutation
// always yields a laminar chain.
func mustInsert(err error) {
	if err != nil {
		panic(fmt.Errorf("Linear.Tree: %w", err))
	}
}

// Dimension returns the boolean-dimension of the decomposition: the largest
// number of distinct sets N(X) ∩ (V\A) over X ⊆ A, taken over all prefixes A.
// Neighborhoods are tracked incrementally: adding v maps every known
// neighborhood U to U-v and (U-v) ∪ (N(v) ∩ right).
// Complexity: O(n · dim · n/64).
func (l *Linear) Dimension() int {
	right := l.g.Vertices()
	empty := l.g.EmptySet()
	neighborhoods := map[string]fixedset.FixedSet{empty.Key(): empty}
	best := 1
	for _, v := range l.seq {
		right = right.Remove(v)
		nv := l.g.OpenNeighborhood(v).Intersection(right)
		next := make(map[string]fixedset.FixedSet, 2*len(neighborhoods))
		for _, u := range neighborhoods {
			without := u.Remove(v)
			with := without.Union(nv)
			next[without.Key()] = without
			next[with.Key()] = with
		}
		neighborhoods = next
		best = max(best, len(neighborhoods))
	}

	return best
}

// BooleanWidth returns log2 of Dimension.
func (l *Linear) BooleanWidth() float64 {
	return math.Log2(float64(l.Dimension()))
}
