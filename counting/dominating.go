// SPDX-License-Identifier: MIT

package counting

import (
	"fmt"

	"github.com/katalvlaran/boolwidth/decomposition"
	"github.com/katalvlaran/boolwidth/fixedset"
	"github.com/katalvlaran/boolwidth/representative"
)

// CountDominatingSets returns the number of dominating sets of every size.
//
// The state at prefix A (rest B) is a pair (ra, rb): ra represents the
// chosen X ⊆ A by N(X) ∩ B, rb represents the still unknown S ∩ B by
// N(S ∩ B) ∩ A. An entry counts the X of each size whose unchosen vertices
// in A are dominated by X or by the set rb stands for. When v moves to A it
// may stay out only if X or the successor rb' already dominates it.
// Complexity: O(n · dim_A · dim_B · n/64) map lookups.
func CountDominatingSets(lin *decomposition.Linear, opts ...Option) (Histogram, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	cuts, err := representative.NewLinearTable(lin, representative.WithLogger(o.Logger))
	if err != nil {
		return nil, fmt.Errorf("CountDominatingSets: %w", err)
	}
	g := lin.Graph()
	n := g.Size()

	a := g.EmptySet()
	b := g.Vertices()
	listA, err := cuts.Lookup(a)
	if err != nil {
		return nil, err
	}
	listB, err := cuts.Lookup(b)
	if err != nil {
		return nil, err
	}
	table := [][]Histogram{{newHistogram(n)}}
	table[0][0][0].SetInt64(1)

	locate := func(l *representative.LinearList, nb fixedset.FixedSet) (int, error) {
		i, ok := l.IndexOf(nb)
		if !ok {
			return 0, fmt.Errorf("CountDominatingSets: %w: %v at %v",
				representative.ErrMissingRepresentative, nb, l.Side())
		}

		return i, nil
	}

	for step, v := range lin.Sequence() {
		a2 := a.Add(v)
		b2 := b.Remove(v)
		listA2, err := cuts.Lookup(a2)
		if err != nil {
			return nil, err
		}
		listB2, err := cuts.Lookup(b2)
		if err != nil {
			return nil, err
		}
		nvA := g.OpenNeighborhood(v).Intersection(a)
		nvB := g.OpenNeighborhood(v).Intersection(b2)

		next := make([][]Histogram, listA2.Len())
		for i := range next {
			next[i] = make([]Histogram, listB2.Len())
		}
		add := func(i, j int, src Histogram, shift int) {
			if next[i][j] == nil {
				next[i][j] = newHistogram(n)
			}
			next[i][j].addShifted(src, shift)
		}

		for jb2 := 0; jb2 < listB2.Len(); jb2++ {
			_, nbB2 := listB2.At(jb2)
			for ia := 0; ia < listA.Len(); ia++ {
				_, nbA := listA.At(ia)

				if nbA.Contains(v) || nbB2.Contains(v) {
					jb, err := locate(listB, nbB2.Remove(v))
					if err != nil {
						return nil, err
					}
					if h := table[ia][jb]; h != nil {
						ia2, err := locate(listA2, nbA.Remove(v))
						if err != nil {
							return nil, err
						}
						add(ia2, jb2, h, 0)
					}
				}

				jb, err := locate(listB, nbB2.Remove(v).Union(nvA))
				if err != nil {
					return nil, err
				}
				if h := table[ia][jb]; h != nil {
					ia2, err := locate(listA2, nbA.Remove(v).Union(nvB))
					if err != nil {
						return nil, err
					}
					add(ia2, jb2, h, 1)
				}
			}
		}
		a, b = a2, b2
		listA, listB, table = listA2, listB2, next
		o.Logger.Debug("counting step", "kind", "dominating", "step", step+1,
			"classes", listA.Len()*listB.Len())
	}

	if table[0][0] == nil {
		return newHistogram(n), nil
	}

	return table[0][0], nil
}
