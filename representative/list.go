// SPDX-License-Identifier: MIT

package representative

import (
	"fmt"

	"github.com/katalvlaran/boolwidth/fixedset"
)

// List is the one-to-one map between representatives and signatures of a
// single cut. Entries keep their insertion index; DP tables address
// representatives by that index.
type List struct {
	cut   *Cut
	reps  []fixedset.FixedSet
	sigs  []Signature
	bySig map[string]int
}

func newList(cut *Cut) *List {
	return &List{cut: cut, bySig: make(map[string]int)}
}

func (l *List) add(rep fixedset.FixedSet, sig Signature) int {
	i := len(l.reps)
	l.reps = append(l.reps, rep)
	l.sigs = append(l.sigs, sig)
	l.bySig[sig.key] = i

	return i
}

// Build computes the representatives of cut by breadth-first expansion from
// ∅: every representative of the previous level is extended by each vertex
// of the side it does not contain. An extension is kept when its signature
// is new; when it matches a representative found on the same level it
// replaces that one if it is smaller.
// Complexity: O(|reps| · |side| · (|vector| + n/64)).
func Build(cut *Cut) *List {
	l := newList(cut)
	l.add(cut.g.EmptySet(), cut.Empty())

	last := []int{0}
	for len(last) > 0 {
		var next []int
		for _, ri := range last {
			r, sig := l.reps[ri], l.sigs[ri]
			for v := range cut.side.All() {
				if r.Contains(v) {
					continue
				}
				ext := cut.Extend(sig, v)
				if ext.key == sig.key {
					continue
				}
				cand := r.Add(v)
				if j, ok := l.bySig[ext.key]; ok {
					if l.reps[j].Count() == cand.Count() && cand.Less(l.reps[j]) {
						l.reps[j] = cand
					}
					continue
				}
				next = append(next, l.add(cand, ext))
			}
		}
		last = next
	}

	return l
}

// Cut returns the cut the list belongs to.
func (l *List) Cut() *Cut { return l.cut }

// Len returns the number of representatives.
func (l *List) Len() int { return len(l.reps) }

// At returns the i-th representative and its signature.
func (l *List) At(i int) (fixedset.FixedSet, Signature) { return l.reps[i], l.sigs[i] }

// Representatives returns the representatives in insertion order.
func (l *List) Representatives() []fixedset.FixedSet {
	out := make([]fixedset.FixedSet, len(l.reps))
	copy(out, l.reps)

	return out
}

// IndexOf returns the index of the representative with signature sig.
func (l *List) IndexOf(sig Signature) (int, bool) {
	i, ok := l.bySig[sig.key]

	return i, ok
}

// RepOf returns the representative with signature sig.
func (l *List) RepOf(sig Signature) (fixedset.FixedSet, bool) {
	i, ok := l.bySig[sig.key]
	if !ok {
		return l.cut.g.EmptySet(), false
	}

	return l.reps[i], true
}

// Locate returns the index of the representative equivalent to x.
func (l *List) Locate(x fixedset.FixedSet) (int, error) {
	i, ok := l.bySig[l.cut.Of(x).key]
	if !ok {
		return 0, fmt.Errorf("%w: %v at cut %v", ErrMissingRepresentative, x, l.cut.side)
	}

	return i, nil
}
