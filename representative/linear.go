// SPDX-License-Identifier: MIT

package representative

import (
	"fmt"

	"github.com/katalvlaran/boolwidth/decomposition"
	"github.com/katalvlaran/boolwidth/fixedset"
	"github.com/katalvlaran/boolwidth/graph"
)

// LinearList is the d = 1 list of one cut of a linear decomposition. The
// signature of a representative X ⊆ A is the plain set N(X) ∩ (V\A).
type LinearList struct {
	side  fixedset.FixedSet
	reps  []fixedset.FixedSet
	nbs   []fixedset.FixedSet
	byNb  map[string]int
	byRep map[string]int
}

func newLinearList(side fixedset.FixedSet) *LinearList {
	return &LinearList{side: side, byNb: make(map[string]int), byRep: make(map[string]int)}
}

// update stores rep for nb, replacing a larger representative of the same
// neighborhood.
func (l *LinearList) update(rep, nb fixedset.FixedSet) {
	if i, ok := l.byNb[nb.Key()]; ok {
		if rep.Less(l.reps[i]) {
			delete(l.byRep, l.reps[i].Key())
			l.reps[i] = rep
			l.byRep[rep.Key()] = i
		}

		return
	}
	i := len(l.reps)
	l.reps = append(l.reps, rep)
	l.nbs = append(l.nbs, nb)
	l.byNb[nb.Key()] = i
	l.byRep[rep.Key()] = i
}

// Side returns A.
func (l *LinearList) Side() fixedset.FixedSet { return l.side }

// Len returns the number of representatives.
func (l *LinearList) Len() int { return len(l.reps) }

// At returns the i-th representative and its neighborhood.
func (l *LinearList) At(i int) (rep, nb fixedset.FixedSet) { return l.reps[i], l.nbs[i] }

// IndexOf returns the index of the representative whose neighborhood is nb.
func (l *LinearList) IndexOf(nb fixedset.FixedSet) (int, bool) {
	i, ok := l.byNb[nb.Key()]

	return i, ok
}

// RepOf returns the representative whose neighborhood is nb.
func (l *LinearList) RepOf(nb fixedset.FixedSet) (fixedset.FixedSet, error) {
	i, ok := l.byNb[nb.Key()]
	if !ok {
		return nb, fmt.Errorf("%w: neighborhood %v at cut %v", ErrMissingRepresentative, nb, l.side)
	}

	return l.reps[i], nil
}

// NeighborhoodOf returns the neighborhood stored for rep.
func (l *LinearList) NeighborhoodOf(rep fixedset.FixedSet) (fixedset.FixedSet, bool) {
	i, ok := l.byRep[rep.Key()]
	if !ok {
		return rep, false
	}

	return l.nbs[i], true
}

// LinearTable holds the d = 1 lists for every prefix and every suffix of a
// linear decomposition, plus the cuts ∅ and V.
type LinearTable struct {
	g      *graph.Graph
	lists  map[string]*LinearList
	maxDim int
}

// NewLinearTable builds the lists incrementally: moving v from the right
// side to the left maps each entry (X, U) to (X, U-v) and
// (X+v, (U-v) ∪ (N(v) ∩ right)). The sequence is processed forwards and
// backwards so that prefixes and suffixes are both present.
// Complexity: O(n · dim · n/64).
func NewLinearTable(lin *decomposition.Linear, opts ...Option) (*LinearTable, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	g := lin.Graph()
	t := &LinearTable{g: g, lists: make(map[string]*LinearList)}

	empty := g.EmptySet()
	base := newLinearList(empty)
	base.update(empty, empty)
	t.lists[empty.Key()] = base
	t.lists[g.Vertices().Key()] = base
	t.maxDim = 1

	t.fill(lin.Sequence(), o)
	t.fill(lin.Reverse().Sequence(), o)
	o.Logger.Debug("linear representative table built", "cuts", len(t.lists), "max_dimension", t.maxDim)

	return t, nil
}

func (t *LinearTable) fill(seq []int, o Options) {
	left := t.g.EmptySet()
	right := t.g.Vertices()
	reps := t.lists[left.Key()]
	for _, v := range seq {
		left = left.Add(v)
		right = right.Remove(v)
		nv := t.g.OpenNeighborhood(v).Intersection(right)

		next := newLinearList(left)
		for i := range reps.reps {
			rep, nb := reps.At(i)
			without := nb.Remove(v)
			next.update(rep, without)
			next.update(rep.Add(v), without.Union(nv))
		}
		reps = next
		t.maxDim = max(t.maxDim, reps.Len())
		t.lists[left.Key()] = reps
		o.Logger.Debug("cut built", "side", left.String(), "representatives", reps.Len())
		o.OnCut(left, reps.Len())
	}
}

// Graph returns the graph the table was built for.
func (t *LinearTable) Graph() *graph.Graph { return t.g }

// Len returns the number of cuts.
func (t *LinearTable) Len() int { return len(t.lists) }

// MaxDimension returns the size of the largest list.
func (t *LinearTable) MaxDimension() int { return t.maxDim }

// Lookup returns the list whose side is cut.
func (t *LinearTable) Lookup(cut fixedset.FixedSet) (*LinearList, error) {
	l, ok := t.lists[cut.Key()]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrMissingCut, cut)
	}

	return l, nil
}
