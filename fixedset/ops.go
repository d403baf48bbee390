// SPDX-License-Identifier: MIT

package fixedset

import (
	"encoding/binary"
	"iter"
	"math/bits"
	"strconv"
	"strings"
)

// Contains reports whether i is in s. Elements outside the range are never contained.
func (s FixedSet) Contains(i int) bool {
	if i < s.lo || i >= s.hi {
		return false
	}

	return s.bits().Test(uint(i - s.lo))
}

// Add returns s ∪ {i}. Panics with ErrOutOfRange if i is outside the range.
func (s FixedSet) Add(i int) FixedSet {
	s.checkElem(i)
	c := s.bits().Clone()
	c.Set(uint(i - s.lo))

	return FixedSet{lo: s.lo, hi: s.hi, b: c}
}

// Remove returns s \ {i}. Removing an absent element yields an equal set.
// Panics with ErrOutOfRange if i is outside the range.
func (s FixedSet) Remove(i int) FixedSet {
	s.checkElem(i)
	c := s.bits().Clone()
	c.Clear(uint(i - s.lo))

	return FixedSet{lo: s.lo, hi: s.hi, b: c}
}

// Union returns s ∪ o.
func (s FixedSet) Union(o FixedSet) FixedSet {
	s.mustMatch(o)

	return FixedSet{lo: s.lo, hi: s.hi, b: s.bits().Union(o.bits())}
}

// Intersection returns s ∩ o.
func (s FixedSet) Intersection(o FixedSet) FixedSet {
	s.mustMatch(o)

	return FixedSet{lo: s.lo, hi: s.hi, b: s.bits().Intersection(o.bits())}
}

// Difference returns s \ o.
func (s FixedSet) Difference(o FixedSet) FixedSet {
	s.mustMatch(o)

	return FixedSet{lo: s.lo, hi: s.hi, b: s.bits().Difference(o.bits())}
}

// Complement returns [lo, hi) \ s. Bits beyond hi are never set.
func (s FixedSet) Complement() FixedSet {
	return FixedSet{lo: s.lo, hi: s.hi, b: s.bits().Complement()}
}

// Count returns |s|.
func (s FixedSet) Count() int { return int(s.bits().Count()) }

// IntersectionCount returns |s ∩ o| without materializing the intersection.
func (s FixedSet) IntersectionCount(o FixedSet) int {
	s.mustMatch(o)

	return int(s.bits().IntersectionCardinality(o.bits()))
}

// Intersects reports whether s ∩ o is non-empty.
func (s FixedSet) Intersects(o FixedSet) bool { return s.IntersectionCount(o) > 0 }

// IsEmpty reports whether s has no elements.
func (s FixedSet) IsEmpty() bool { return s.bits().None() }

// First returns the smallest element, or false when s is empty.
func (s FixedSet) First() (int, bool) {
	i, ok := s.bits().NextSet(0)
	if !ok {
		return 0, false
	}

	return int(i) + s.lo, true
}

// Last returns the largest element, or false when s is empty.
func (s FixedSet) Last() (int, bool) {
	w := s.words()
	for i := len(w) - 1; i >= 0; i-- {
		if w[i] != 0 {
			return i*wordSize + bits.Len64(w[i]) - 1 + s.lo, true
		}
	}

	return 0, false
}

// All yields the elements of s in ascending order.
// The sequence is finite and may be ranged over any number of times.
func (s FixedSet) All() iter.Seq[int] {
	b := s.bits()
	return func(yield func(int) bool) {
		for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
			if !yield(int(i) + s.lo) {
				return
			}
		}
	}
}

// Slice returns the elements of s in ascending order.
func (s FixedSet) Slice() []int {
	out := make([]int, 0, s.Count())
	for v := range s.All() {
		out = append(out, v)
	}

	return out
}

// IsSubsetOf reports whether every element of s is in o.
func (s FixedSet) IsSubsetOf(o FixedSet) bool {
	s.mustMatch(o)

	return o.bits().IsSuperSet(s.bits())
}

// Equal reports structural equality: same range and same elements.
func (s FixedSet) Equal(o FixedSet) bool {
	if s.lo != o.lo || s.hi != o.hi {
		return false
	}
	a, b := s.words(), o.words()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Key returns a structural key: equal sets over the same range have equal keys.
// Keys of sets over different ranges must not be mixed in one map.
func (s FixedSet) Key() string {
	w := s.words()
	buf := make([]byte, 0, 8*len(w))
	for _, x := range w {
		buf = binary.LittleEndian.AppendUint64(buf, x)
	}

	return string(buf)
}

// String renders s as "{1, 4, 7}".
func (s FixedSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for v := range s.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte('}')

	return sb.String()
}
