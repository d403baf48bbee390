// SPDX-License-Identifier: MIT

package fixedset

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Builder is a mutable scratch set used while a FixedSet is being assembled,
// e.g. while parsing a file or enumerating subsets. Sets returned by Set are
// snapshots and never observe later mutation.
type Builder struct {
	lo, hi int
	b      *bitset.BitSet
}

// NewBuilder returns an empty Builder over [lo, hi).
func NewBuilder(lo, hi int) *Builder {
	if lo > hi {
		panic(fmt.Errorf("%w: lo=%d > hi=%d", ErrInvalidRange, lo, hi))
	}

	return &Builder{lo: lo, hi: hi, b: bitset.New(uint(hi - lo))}
}

// BuilderFrom returns a Builder seeded with the content of s.
func BuilderFrom(s FixedSet) *Builder {
	return &Builder{lo: s.lo, hi: s.hi, b: s.bits().Clone()}
}

func (bd *Builder) check(i int) {
	if i < bd.lo || i >= bd.hi {
		panic(fmt.Errorf("%w: %d not in [%d,%d)", ErrOutOfRange, i, bd.lo, bd.hi))
	}
}

// Add inserts i in place.
func (bd *Builder) Add(i int) *Builder {
	bd.check(i)
	bd.b.Set(uint(i - bd.lo))

	return bd
}

// Remove deletes i in place.
func (bd *Builder) Remove(i int) *Builder {
	bd.check(i)
	bd.b.Clear(uint(i - bd.lo))

	return bd
}

// AddSet unions s into the builder in place.
func (bd *Builder) AddSet(s FixedSet) *Builder {
	if s.lo != bd.lo || s.hi != bd.hi {
		panic(fmt.Errorf("%w: [%d,%d) vs [%d,%d)", ErrRangeMismatch, bd.lo, bd.hi, s.lo, s.hi))
	}
	bd.b.InPlaceUnion(s.bits())

	return bd
}

// Contains reports whether i is currently in the builder.
func (bd *Builder) Contains(i int) bool {
	if i < bd.lo || i >= bd.hi {
		return false
	}

	return bd.b.Test(uint(i - bd.lo))
}

// Reset empties the builder in place.
func (bd *Builder) Reset() *Builder {
	bd.b.ClearAll()

	return bd
}

// Set snapshots the builder into an immutable FixedSet.
func (bd *Builder) Set() FixedSet {
	return FixedSet{lo: bd.lo, hi: bd.hi, b: bd.b.Clone()}
}
