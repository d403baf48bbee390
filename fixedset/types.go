// SPDX-License-Identifier: MIT

package fixedset

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Sentinel errors. They are carried by panics, never returned, since every
// one of them signals a programmer error.
var (
	// ErrOutOfRange indicates an element outside the declared [lo, hi) range.
	ErrOutOfRange = errors.New("fixedset: element out of range")

	// ErrRangeMismatch indicates an operation on two sets with different ranges.
	ErrRangeMismatch = errors.New("fixedset: range mismatch")

	// ErrInvalidRange indicates lo > hi at construction.
	ErrInvalidRange = errors.New("fixedset: invalid range")
)

// wordSize is the number of bits per storage word.
const wordSize = 64

// FixedSet is an immutable set of integers in [lo, hi).
//
// The zero value is the empty set over the empty range [0, 0).
type FixedSet struct {
	lo, hi int
	b      *bitset.BitSet
}

// New returns the set over [lo, hi) holding elems.
// Panics with ErrInvalidRange if lo > hi and with ErrOutOfRange for any
// element outside the range.
func New(lo, hi int, elems ...int) FixedSet {
	if lo > hi {
		panic(fmt.Errorf("%w: lo=%d > hi=%d", ErrInvalidRange, lo, hi))
	}
	b := bitset.New(uint(hi - lo))
	for _, e := range elems {
		if e < lo || e >= hi {
			panic(fmt.Errorf("%w: %d not in [%d,%d)", ErrOutOfRange, e, lo, hi))
		}
		b.Set(uint(e - lo))
	}

	return FixedSet{lo: lo, hi: hi, b: b}
}

// Empty returns the empty set over [lo, hi).
func Empty(lo, hi int) FixedSet { return New(lo, hi) }

// Full returns the set holding every integer of [lo, hi).
func Full(lo, hi int) FixedSet { return New(lo, hi).Complement() }

// Lo returns the inclusive lower bound of the range.
func (s FixedSet) Lo() int { return s.lo }

// Hi returns the exclusive upper bound of the range.
func (s FixedSet) Hi() int { return s.hi }

// bits returns the storage, materializing it for the zero value.
func (s FixedSet) bits() *bitset.BitSet {
	if s.b == nil {
		return bitset.New(uint(s.hi - s.lo))
	}

	return s.b
}

// words returns exactly the storage words that cover the range.
func (s FixedSet) words() []uint64 {
	n := (s.hi - s.lo + wordSize - 1) / wordSize
	w := s.bits().Words()
	if len(w) > n {
		w = w[:n]
	}

	return w
}

// checkElem panics when i is outside the range.
func (s FixedSet) checkElem(i int) {
	if i < s.lo || i >= s.hi {
		panic(fmt.Errorf("%w: %d not in [%d,%d)", ErrOutOfRange, i, s.lo, s.hi))
	}
}

// mustMatch panics when o lives over a different range.
func (s FixedSet) mustMatch(o FixedSet) {
	if s.lo != o.lo || s.hi != o.hi {
		panic(fmt.Errorf("%w: [%d,%d) vs [%d,%d)", ErrRangeMismatch, s.lo, s.hi, o.lo, o.hi))
	}
}
