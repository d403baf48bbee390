// SPDX-License-Identifier: MIT

package exact

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/boolwidth/decomposition"
	"github.com/katalvlaran/boolwidth/fixedset"
	"github.com/katalvlaran/boolwidth/graph"
)

// DecomposeLinear returns a vertex sequence of g of minimum linear
// boolean-dimension.
//
// width[A] = max(|nbs[A]|, min over a ∈ A of width[A-a]). The sequence is
// recovered backwards from V by removing, at each step, the smallest vertex
// a with width[A-a] <= width[V].
func DecomposeLinear(g *graph.Graph, opts ...Option) (*decomposition.Linear, Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, Result{}, err
	}
	if err = checkSize("DecomposeLinear", g, o); err != nil {
		return nil, Result{}, err
	}
	if g.Order() == 0 {
		lin, err := decomposition.NewLinear(g, nil)
		if err != nil {
			return nil, Result{}, err
		}

		return lin, newResult(1), nil
	}

	m := newMemo(g)
	all := g.Vertices()
	m.solveLinear(all)
	bound := m.width[all.Key()]

	seq, err := m.backtrack(all, bound)
	if err != nil {
		return nil, Result{}, fmt.Errorf("DecomposeLinear: %w", err)
	}

	lin, err := decomposition.NewLinear(g, seq)
	if err != nil {
		return nil, Result{}, fmt.Errorf("DecomposeLinear: %w", err)
	}
	o.Logger.Debug("exact linear decomposition",
		"vertices", g.Order(), "subsets", len(m.width), "dimension", bound)

	return lin, newResult(bound), nil
}

func (m *memo) solveLinear(a fixedset.FixedSet) {
	best := math.MaxInt
	for v := range a.All() {
		prev := a.Remove(v)
		if _, ok := m.width[prev.Key()]; !ok {
			m.solveLinear(prev)
		}
		best = min(best, m.width[prev.Key()])
	}
	m.record(a, best)
}

// backtrack removes, from A = all down to ∅, the smallest vertex a with
// width[A-a] <= bound and returns the removals reversed.
func (m *memo) backtrack(all fixedset.FixedSet, bound int) ([]int, error) {
	seq := make([]int, 0, all.Count())
	for a := all; !a.IsEmpty(); {
		found := false
		for v := range a.All() {
			if w, ok := m.width[a.Remove(v).Key()]; ok && w <= bound {
				seq = append(seq, v)
				a = a.Remove(v)
				found = true

				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: no vertex of %v keeps width <= %d", ErrSearchExhausted, a, bound)
		}
	}
	slices.Reverse(seq)

	return seq, nil
}
