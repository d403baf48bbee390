// SPDX-License-Identifier: MIT

package counting

import (
	"fmt"

	"github.com/katalvlaran/boolwidth/decomposition"
	"github.com/katalvlaran/boolwidth/representative"
)

// CountIndependentSets returns the number of independent sets of every size.
//
// The state at prefix A is a representative X of A standing for all
// independent X' ⊆ A with N(X') ∩ (V\A) = N(X) ∩ (V\A). Moving v from the
// right side to A maps the class with neighborhood U to U-v (v left out)
// and, when v ∉ U, to (U-v) ∪ (N(v) ∩ right) with sizes shifted by one.
// Complexity: O(n · dim · n/64 + n² · dim) big-integer additions.
func CountIndependentSets(lin *decomposition.Linear, opts ...Option) (Histogram, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	cuts, err := representative.NewLinearTable(lin, representative.WithLogger(o.Logger))
	if err != nil {
		return nil, fmt.Errorf("CountIndependentSets: %w", err)
	}
	g := lin.Graph()
	n := g.Size()

	left := g.EmptySet()
	right := g.Vertices()
	prev, err := cuts.Lookup(left)
	if err != nil {
		return nil, err
	}
	table := []Histogram{newHistogram(n)}
	table[0][0].SetInt64(1)

	for step, v := range lin.Sequence() {
		left = left.Add(v)
		right = right.Remove(v)
		next, err := cuts.Lookup(left)
		if err != nil {
			return nil, err
		}
		nv := g.OpenNeighborhood(v).Intersection(right)
		nextTable := make([]Histogram, next.Len())
		for i := range nextTable {
			nextTable[i] = newHistogram(n)
		}

		for i, h := range table {
			_, nb := prev.At(i)
			without := nb.Remove(v)
			j, ok := next.IndexOf(without)
			if !ok {
				return nil, fmt.Errorf("CountIndependentSets: %w: %v", representative.ErrMissingRepresentative, without)
			}
			nextTable[j].addShifted(h, 0)

			if nb.Contains(v) {
				continue
			}
			with := without.Union(nv)
			if j, ok = next.IndexOf(with); !ok {
				return nil, fmt.Errorf("CountIndependentSets: %w: %v", representative.ErrMissingRepresentative, with)
			}
			nextTable[j].addShifted(h, 1)
		}
		prev, table = next, nextTable
		o.Logger.Debug("counting step", "kind", "independent", "step", step+1, "classes", len(table))
	}

	return table[0], nil
}
