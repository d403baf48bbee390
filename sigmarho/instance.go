// SPDX-License-Identifier: MIT

package sigmarho

import (
	"fmt"

	"github.com/katalvlaran/boolwidth/fixedset"
	"github.com/katalvlaran/boolwidth/representative"
)

// Custom tags instances built by NewCustomInstance.
const Custom Problem = -1

// Instance is an immutable (σ,ρ) pair over the count range [0, n+1).
type Instance struct {
	Problem Problem
	Sigma   fixedset.FixedSet
	Rho     fixedset.FixedSet
}

// NewInstance returns the (σ,ρ) pair of p for graphs of n vertices.
func NewInstance(p Problem, n int) (Instance, error) {
	if !p.valid() {
		return Instance{}, fmt.Errorf("%w: %d", ErrUnknownProblem, int(p))
	}
	if n < 0 {
		return Instance{}, fmt.Errorf("NewInstance: negative size %d: %w", n, ErrInstanceMismatch)
	}
	sigma, rho := p.sets()

	return Instance{Problem: p, Sigma: sigma.build(n + 1), Rho: rho.build(n + 1)}, nil
}

// MustInstance is NewInstance for fixtures; it panics on error.
func MustInstance(p Problem, n int) Instance {
	inst, err := NewInstance(p, n)
	if err != nil {
		panic(err)
	}

	return inst
}

func (s setSpec) build(m int) fixedset.FixedSet {
	b := fixedset.NewBuilder(0, m)
	if s.full {
		b.AddSet(fixedset.Full(0, m))
		for _, e := range s.elems {
			if e < m {
				b.Remove(e)
			}
		}

		return b.Set()
	}
	for _, e := range s.elems {
		if e < m {
			b.Add(e)
		}
	}

	return b.Set()
}

// NewCustomInstance wraps an arbitrary (σ,ρ) pair. Both sets must share
// the range [0, m) with m ≥ 1.
func NewCustomInstance(sigma, rho fixedset.FixedSet) (Instance, error) {
	if sigma.Lo() != 0 || rho.Lo() != 0 || sigma.Hi() != rho.Hi() || sigma.Hi() < 1 {
		return Instance{}, fmt.Errorf("NewCustomInstance: ranges [%d,%d) and [%d,%d): %w",
			sigma.Lo(), sigma.Hi(), rho.Lo(), rho.Hi(), ErrInstanceMismatch)
	}

	return Instance{Problem: Custom, Sigma: sigma, Rho: rho}, nil
}

// D returns the signature cap needed to decide membership in σ and ρ.
func (i Instance) D() int { return representative.DValue(i.Sigma, i.Rho) }

// Satisfies reports whether a vertex with count neighbors in S may be
// inside (in = true) or outside S.
func (i Instance) Satisfies(in bool, count int) bool {
	if in {
		return i.Sigma.Contains(count)
	}

	return i.Rho.Contains(count)
}

func (i Instance) String() string {
	return fmt.Sprintf("%v(σ=%v, ρ=%v)", i.Problem, i.Sigma, i.Rho)
}
