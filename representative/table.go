// SPDX-License-Identifier: MIT

package representative

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/boolwidth/decomposition"
	"github.com/katalvlaran/boolwidth/fixedset"
	"github.com/katalvlaran/boolwidth/graph"
)

// Table holds one List per cut of a tree decomposition: every node A and
// its complement V\A, including the empty cut.
type Table struct {
	g      *graph.Graph
	d      int
	lists  map[string]*List
	maxDim int
}

// NewTable validates tree and builds the lists for all of its cuts,
// visiting nodes breadth-first from the root.
func NewTable(tree *decomposition.Tree, d int, opts ...Option) (*Table, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if d < 0 || d > MaxD {
		return nil, fmt.Errorf("NewTable: %w: %d not in [0,%d]", ErrInvalidD, d, MaxD)
	}
	if err = tree.Validate(); err != nil {
		return nil, fmt.Errorf("NewTable: %w", err)
	}

	g := tree.Graph()
	t := &Table{g: g, d: d, lists: make(map[string]*List)}
	if err = t.fill(g.EmptySet(), o); err != nil {
		return nil, err
	}

	queue := linkedlistqueue.New()
	if root, ok := tree.Root(); ok {
		queue.Enqueue(root)
	}
	for !queue.Empty() {
		item, _ := queue.Dequeue()
		node := item.(fixedset.FixedSet)
		if err = t.fill(node, o); err != nil {
			return nil, err
		}
		if err = t.fill(g.Vertices().Difference(node), o); err != nil {
			return nil, err
		}
		if l, r, ok := tree.Children(node); ok {
			queue.Enqueue(l)
			queue.Enqueue(r)
		}
	}
	o.Logger.Debug("representative table built",
		"cuts", len(t.lists), "d", d, "max_dimension", t.maxDim)

	return t, nil
}

func (t *Table) fill(side fixedset.FixedSet, o Options) error {
	if _, ok := t.lists[side.Key()]; ok {
		return nil
	}
	cut, err := NewCut(t.g, side, t.d)
	if err != nil {
		return err
	}
	l := Build(cut)
	t.lists[side.Key()] = l
	t.maxDim = max(t.maxDim, l.Len())
	o.Logger.Debug("cut built", "side", side.String(), "representatives", l.Len())
	o.OnCut(side, l.Len())

	return nil
}

// Graph returns the graph the table was built for.
func (t *Table) Graph() *graph.Graph { return t.g }

// D returns the cap the signatures were computed with.
func (t *Table) D() int { return t.d }

// Len returns the number of cuts.
func (t *Table) Len() int { return len(t.lists) }

// MaxDimension returns the size of the largest list.
func (t *Table) MaxDimension() int { return t.maxDim }

// Lookup returns the list of the cut whose side is cut.
func (t *Table) Lookup(cut fixedset.FixedSet) (*List, error) {
	l, ok := t.lists[cut.Key()]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrMissingCut, cut)
	}

	return l, nil
}

// Dimension returns the boolean-dimension of a tree decomposition: the
// largest number of representatives at any cut with d = 1.
func Dimension(tree *decomposition.Tree, opts ...Option) (int, error) {
	t, err := NewTable(tree, 1, opts...)
	if err != nil {
		return 0, err
	}

	return t.MaxDimension(), nil
}

// BooleanWidth returns log2 of Dimension.
func BooleanWidth(tree *decomposition.Tree, opts ...Option) (float64, error) {
	dim, err := Dimension(tree, opts...)
	if err != nil {
		return 0, err
	}

	return math.Log2(float64(dim)), nil
}
