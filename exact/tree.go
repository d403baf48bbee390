// SPDX-License-Identifier: MIT

package exact

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/boolwidth/decomposition"
	"github.com/katalvlaran/boolwidth/fixedset"
	"github.com/katalvlaran/boolwidth/graph"
)

// Decompose returns a tree decomposition of g of minimum boolean-dimension.
//
// Splits of A are enumerated in binary counting order over the ascending
// elements of A, and the first split reaching the minimum is kept.
func Decompose(g *graph.Graph, opts ...Option) (*decomposition.Tree, Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, Result{}, err
	}
	if err = checkSize("Decompose", g, o); err != nil {
		return nil, Result{}, err
	}

	tree := decomposition.NewTree(g)
	if g.Order() == 0 {
		return tree, newResult(1), nil
	}

	m := newMemo(g)
	m.solveTree(g.Vertices())
	if err = m.buildTree(tree); err != nil {
		return nil, Result{}, fmt.Errorf("Decompose: %w", err)
	}
	res := newResult(m.width[g.Vertices().Key()])
	o.Logger.Debug("exact tree decomposition",
		"vertices", g.Order(), "subsets", len(m.width), "dimension", res.Dimension)

	return tree, res, nil
}

func (m *memo) solveTree(a fixedset.FixedSet) {
	elems := a.Slice()
	k := len(elems)
	best := math.MaxInt
	if k == 1 {
		best = 0
	}

	lo, hi := a.Lo(), a.Hi()
	for mask := 1; mask < 1<<k-1; mask++ {
		bd := fixedset.NewBuilder(lo, hi)
		for i, v := range elems {
			if mask&(1<<i) != 0 {
				bd.Add(v)
			}
		}
		s := bd.Set()
		rest := a.Difference(s)
		if _, ok := m.width[s.Key()]; !ok {
			m.solveTree(s)
		}
		if _, ok := m.width[rest.Key()]; !ok {
			m.solveTree(rest)
		}
		if w := max(m.width[s.Key()], m.width[rest.Key()]); w < best {
			best = w
			m.split[a.Key()] = s
		}
	}

	v, _ := a.First()
	if _, ok := m.nbs[a.Remove(v).Key()]; !ok {
		m.solveTree(a.Remove(v))
	}
	m.record(a, best)
}

type pending struct {
	node, parent fixedset.FixedSet
}

// buildTree replays the stored splits breadth-first from V.
func (m *memo) buildTree(tree *decomposition.Tree) error {
	root := m.g.Vertices()
	queue := linkedlistqueue.New()
	queue.Enqueue(pending{node: root, parent: root})
	for !queue.Empty() {
		item, _ := queue.Dequeue()
		p := item.(pending)
		if err := tree.InsertWithParent(p.node, p.parent); err != nil {
			return err
		}
		s, ok := m.split[p.node.Key()]
		if !ok {
			continue
		}
		queue.Enqueue(pending{node: s, parent: p.node})
		queue.Enqueue(pending{node: p.node.Difference(s), parent: p.node})
	}

	return tree.Validate()
}
