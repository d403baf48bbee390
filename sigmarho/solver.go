// SPDX-License-Identifier: MIT

package sigmarho

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/boolwidth/decomposition"
	"github.com/katalvlaran/boolwidth/fixedset"
	"github.com/katalvlaran/boolwidth/graph"
	"github.com/katalvlaran/boolwidth/representative"
)

// nodeTable is T[inside][outside] for one decomposition node, indexed by
// positions in the representative lists of the node and its complement.
type nodeTable [][]int

func newNodeTable(rows, cols, fill int) nodeTable {
	t := make(nodeTable, rows)
	for i := range t {
		t[i] = make([]int, cols)
		for j := range t[i] {
			t[i][j] = fill
		}
	}

	return t
}

// solver is the per-call context; nothing in it outlives the call.
type solver struct {
	g      *graph.Graph
	tree   *decomposition.Tree
	cuts   *representative.Table
	inst   Instance
	opt    Optimum
	log    *slog.Logger
	tables map[string]nodeTable
}

// ComputeOptimalValue returns the optimal size of a (σ,ρ)-set of the graph
// of tree under opt. It returns ErrInfeasible when no such set exists.
func ComputeOptimalValue(tree *decomposition.Tree, inst Instance, opt Optimum, opts ...Option) (int, error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, err
	}
	g := tree.Graph()
	if inst.Sigma.Hi() < g.Size() || inst.Rho.Hi() < g.Size() {
		return 0, fmt.Errorf("ComputeOptimalValue: count range [0,%d) for %d vertices: %w",
			inst.Sigma.Hi(), g.Size(), ErrInstanceMismatch)
	}
	if tree.Len() == 0 && g.Order() == 0 {
		// Only ∅, which satisfies every constraint vacuously.
		return 0, nil
	}

	cuts := o.Table
	if cuts == nil {
		if cuts, err = representative.NewTable(tree, inst.D(), representative.WithLogger(o.Logger)); err != nil {
			return 0, fmt.Errorf("ComputeOptimalValue: %w", err)
		}
	} else if cuts.D() < inst.D() {
		return 0, fmt.Errorf("ComputeOptimalValue: table d=%d, instance needs %d: %w",
			cuts.D(), inst.D(), ErrTableTooCoarse)
	} else if err = tree.Validate(); err != nil {
		return 0, fmt.Errorf("ComputeOptimalValue: %w", err)
	} else if err = checkTable(cuts, tree); err != nil {
		return 0, fmt.Errorf("ComputeOptimalValue: %w", err)
	}

	s := &solver{
		g:      g,
		tree:   tree,
		cuts:   cuts,
		inst:   inst,
		opt:    opt,
		log:    o.Logger,
		tables: make(map[string]nodeTable),
	}

	return s.run()
}

// checkTable rejects a reused table that was built for another graph or
// lacks a cut of tree.
func checkTable(cuts *representative.Table, tree *decomposition.Tree) error {
	g := tree.Graph()
	if cuts.Graph() != g {
		return fmt.Errorf("%w: table built for another graph", ErrTableMismatch)
	}
	for _, node := range tree.Nodes() {
		for _, side := range [2]fixedset.FixedSet{node, g.Vertices().Difference(node)} {
			if _, err := cuts.Lookup(side); err != nil {
				return fmt.Errorf("%w: %w", ErrTableMismatch, err)
			}
		}
	}

	return nil
}

func (s *solver) run() (int, error) {
	order := s.tree.PostOrder()
	for i, node := range order {
		var err error
		if s.tree.IsLeaf(node) {
			err = s.fillLeaf(node)
		} else {
			err = s.fillInternal(node)
		}
		if err != nil {
			return 0, fmt.Errorf("ComputeOptimalValue: node %v: %w", node, err)
		}
		s.log.Debug("processed node", "done", i+1, "total", len(order), "size", node.Count())
	}

	root := order[len(order)-1]
	inside, outside, err := s.lists(root)
	if err != nil {
		return 0, err
	}
	empty := s.g.EmptySet()
	i, err := inside.Locate(empty)
	if err != nil {
		return 0, err
	}
	j, err := outside.Locate(empty)
	if err != nil {
		return 0, err
	}
	value := s.tables[root.Key()][i][j]
	if value == s.opt.Pessimal() {
		return 0, fmt.Errorf("%v: %w", s.inst.Problem, ErrInfeasible)
	}

	return value, nil
}

// lists returns the representative lists of node and of V\node.
func (s *solver) lists(node fixedset.FixedSet) (inside, outside *representative.List, err error) {
	if inside, err = s.cuts.Lookup(node); err != nil {
		return nil, nil, err
	}
	if outside, err = s.cuts.Lookup(s.g.Vertices().Difference(node)); err != nil {
		return nil, nil, err
	}

	return inside, outside, nil
}

// fillLeaf handles node = {v}: for every outside representative Y, v may
// join S when |N(v) ∩ Y| ∈ σ and stay out when it is in ρ. When {v} is not
// its own representative it shares the entry of ∅, hence Optimal rather
// than assignment.
func (s *solver) fillLeaf(node fixedset.FixedSet) error {
	inside, outside, err := s.lists(node)
	if err != nil {
		return err
	}
	self, err := inside.Locate(node)
	if err != nil {
		return err
	}
	none, err := inside.Locate(s.g.EmptySet())
	if err != nil {
		return err
	}

	v, _ := node.First()
	nv := s.g.OpenNeighborhood(v)
	t := newNodeTable(inside.Len(), outside.Len(), s.opt.Pessimal())
	for j := 0; j < outside.Len(); j++ {
		y, _ := outside.At(j)
		count := nv.IntersectionCount(y)
		if s.inst.Satisfies(true, count) {
			t[self][j] = s.opt.Optimal(t[self][j], 1)
		}
		if s.inst.Satisfies(false, count) {
			t[none][j] = s.opt.Optimal(t[none][j], 0)
		}
	}
	s.tables[node.Key()] = t

	return nil
}

// fillInternal combines the children L and R of node W. For representatives
// ra of L, rb of R and rw̄ of V\W, the partner of ra outside L is the
// representative of rb ∪ rw̄, the partner of rb is that of ra ∪ rw̄, and the
// combined set is represented at W by ra ∪ rb.
func (s *solver) fillInternal(node fixedset.FixedSet) error {
	left, right, _ := s.tree.Children(node)
	tl, okL := s.tables[left.Key()]
	tr, okR := s.tables[right.Key()]
	if !okL || !okR {
		return ErrMissingEntry
	}
	lIn, lOut, err := s.lists(left)
	if err != nil {
		return err
	}
	rIn, rOut, err := s.lists(right)
	if err != nil {
		return err
	}
	wIn, wOut, err := s.lists(node)
	if err != nil {
		return err
	}

	t := newNodeTable(wIn.Len(), wOut.Len(), s.opt.Pessimal())
	for a := 0; a < lIn.Len(); a++ {
		ra, _ := lIn.At(a)
		for b := 0; b < rIn.Len(); b++ {
			rb, _ := rIn.At(b)
			w, err := wIn.Locate(ra.Union(rb))
			if err != nil {
				return err
			}
			for j := 0; j < wOut.Len(); j++ {
				rwOut, _ := wOut.At(j)
				aOut, err := lOut.Locate(rb.Union(rwOut))
				if err != nil {
					return err
				}
				bOut, err := rOut.Locate(ra.Union(rwOut))
				if err != nil {
					return err
				}
				combined := s.opt.Combine(tl[a][aOut], tr[b][bOut])
				t[w][j] = s.opt.Optimal(t[w][j], combined)
			}
		}
	}
	s.tables[node.Key()] = t
	delete(s.tables, left.Key())
	delete(s.tables, right.Key())

	return nil
}
