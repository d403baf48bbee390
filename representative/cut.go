// SPDX-License-Identifier: MIT

package representative

import (
	"fmt"

	"github.com/katalvlaran/boolwidth/fixedset"
	"github.com/katalvlaran/boolwidth/graph"
)

// Signature is the capped count vector of a subset against the vector of a
// Cut, one byte per vector vertex in ascending vertex order. Signatures are
// values; equal signatures have equal keys.
type Signature struct {
	key string
}

// Key returns the structural map key of s.
func (s Signature) Key() string { return s.key }

// Equal reports structural equality.
func (s Signature) Equal(o Signature) bool { return s.key == o.key }

// Counts returns the capped counts in vector order.
func (s Signature) Counts() []int {
	out := make([]int, len(s.key))
	for i := 0; i < len(s.key); i++ {
		out[i] = int(s.key[i])
	}

	return out
}

// Cut is a bipartition (side, vector) of the vertices of a graph together
// with the cap d. Representatives live in side; signatures count into vector.
type Cut struct {
	g       *graph.Graph
	side    fixedset.FixedSet
	vector  fixedset.FixedSet
	members []int
	pos     []int
	d       int
}

// NewCut returns the cut (side, V\side) with cap d.
func NewCut(g *graph.Graph, side fixedset.FixedSet, d int) (*Cut, error) {
	if d < 0 || d > MaxD {
		return nil, fmt.Errorf("%w: %d not in [0,%d]", ErrInvalidD, d, MaxD)
	}
	vector := g.Vertices().Difference(side)
	c := &Cut{
		g:       g,
		side:    side,
		vector:  vector,
		members: vector.Slice(),
		pos:     make([]int, g.Size()),
		d:       d,
	}
	for i := range c.pos {
		c.pos[i] = -1
	}
	for i, w := range c.members {
		c.pos[w] = i
	}

	return c, nil
}

// Side returns A.
func (c *Cut) Side() fixedset.FixedSet { return c.side }

// Vector returns V\A.
func (c *Cut) Vector() fixedset.FixedSet { return c.vector }

// D returns the cap.
func (c *Cut) D() int { return c.d }

// Empty returns the all-zero signature, the signature of ∅.
func (c *Cut) Empty() Signature {
	return Signature{key: string(make([]byte, len(c.members)))}
}

// Of computes the signature of x from scratch.
// Complexity: O(|vector| · n/64).
func (c *Cut) Of(x fixedset.FixedSet) Signature {
	b := make([]byte, len(c.members))
	for i, w := range c.members {
		b[i] = byte(min(c.d, c.g.OpenNeighborhood(w).IntersectionCount(x)))
	}

	return Signature{key: string(b)}
}

// Extend returns the signature of X ∪ {w} given sig, the signature of X,
// assuming w ∉ X.
// Complexity: O(|N(w) ∩ vector| + n/64).
func (c *Cut) Extend(sig Signature, w int) Signature {
	b := []byte(sig.key)
	for v := range c.g.OpenNeighborhood(w).Intersection(c.vector).All() {
		if p := c.pos[v]; int(b[p]) < c.d {
			b[p]++
		}
	}

	return Signature{key: string(b)}
}
