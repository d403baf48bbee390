// SPDX-License-Identifier: MIT

package counting

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/boolwidth/fixedset"
	"github.com/katalvlaran/boolwidth/graph"
)

// MISAlgorithm selects the branching scheme of CountMaximalIndependentSets.
type MISAlgorithm int

const (
	// ComponentBranching branches on the highest-degree candidate and
	// multiplies counts over connected components whenever including a
	// vertex may have split the remaining graph.
	ComponentBranching MISAlgorithm = iota
	// PivotBranching branches only on the candidates in the closed
	// neighborhood of a pivot with the fewest candidate neighbors.
	PivotBranching
	// PlainBranching branches on every candidate in turn.
	PlainBranching
)

func (a MISAlgorithm) String() string {
	switch a {
	case ComponentBranching:
		return "components"
	case PivotBranching:
		return "pivot"
	case PlainBranching:
		return "plain"
	}

	return fmt.Sprintf("MISAlgorithm(%d)", int(a))
}

// misCounter holds one count. Every branch state is a pair (P, X): P are
// the vertices that may still join the set, X the excluded vertices that
// some later choice must dominate.
type misCounter struct {
	g     *graph.Graph
	calls int
}

// CountMaximalIndependentSets returns the number of inclusion-maximal
// independent sets of g. The empty graph has exactly one, ∅.
// Worst case O(3^(n/3)) branches.
func CountMaximalIndependentSets(g *graph.Graph, opts ...Option) (*big.Int, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	c := &misCounter{g: g}
	p, x := g.Vertices(), g.EmptySet()

	var count *big.Int
	switch o.MIS {
	case ComponentBranching:
		count = c.components(p, x, true)
	case PivotBranching:
		count = c.pivot(p, x)
	case PlainBranching:
		count = c.plain(p, x)
	default:
		return nil, fmt.Errorf("CountMaximalIndependentSets: %w: algorithm %v", ErrOptionViolation, o.MIS)
	}
	o.Logger.Debug("maximal independent sets counted",
		"algorithm", o.MIS.String(), "branches", c.calls, "count", count.String())

	return count, nil
}

// include returns the state after v joins the set.
func (c *misCounter) include(p, x fixedset.FixedSet, v int) (fixedset.FixedSet, fixedset.FixedSet) {
	return p.Difference(c.g.ClosedNeighborhood(v)), x.Difference(c.g.OpenNeighborhood(v))
}

func (c *misCounter) components(p, x fixedset.FixedSet, split bool) *big.Int {
	c.calls++
	if p.IsEmpty() && x.IsEmpty() {
		return big.NewInt(1)
	}
	for w := range x.All() {
		if !c.g.OpenNeighborhood(w).Intersects(p) {
			return new(big.Int)
		}
	}

	if split {
		if comps := c.g.ComponentsOf(p.Union(x)); len(comps) > 1 {
			prod := big.NewInt(1)
			for _, comp := range comps {
				prod.Mul(prod, c.components(p.Intersection(comp), x.Intersection(comp), false))
				if prod.Sign() == 0 {
					break
				}
			}

			return prod
		}
	}

	pivot, best := -1, -1
	for u := range p.All() {
		if d := c.g.Degree(u); d > best {
			pivot, best = u, d
		}
	}
	ip, ix := c.include(p, x, pivot)
	count := c.components(ip, ix, true)

	return count.Add(count, c.components(p.Remove(pivot), x.Add(pivot), false))
}

func (c *misCounter) pivot(p, x fixedset.FixedSet) *big.Int {
	c.calls++
	if p.IsEmpty() && x.IsEmpty() {
		return big.NewInt(1)
	}
	pivot, fewest := -1, -1
	for u := range p.Union(x).All() {
		if k := c.g.OpenNeighborhood(u).IntersectionCount(p); fewest < 0 || k < fewest {
			pivot, fewest = u, k
		}
	}

	count := new(big.Int)
	for _, v := range p.Intersection(c.g.ClosedNeighborhood(pivot)).Slice() {
		ip, ix := c.include(p, x, v)
		count.Add(count, c.pivot(ip, ix))
		p, x = p.Remove(v), x.Add(v)
	}

	return count
}

func (c *misCounter) plain(p, x fixedset.FixedSet) *big.Int {
	c.calls++
	if p.IsEmpty() && x.IsEmpty() {
		return big.NewInt(1)
	}
	count := new(big.Int)
	for _, v := range p.Slice() {
		ip, ix := c.include(p, x, v)
		count.Add(count, c.plain(ip, ix))
		p, x = p.Remove(v), x.Add(v)
	}

	return count
}
