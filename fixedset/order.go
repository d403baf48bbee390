// SPDX-License-Identifier: MIT

package fixedset

import "math/bits"

// Compare orders sets by cardinality first; on a tie the lowest element in
// which the two sets differ decides, and the set containing it sorts first.
// Returns -1, 0 or +1.
//
// Example: {0, 5} < {1, 2} because 0 is the lowest differing element and
// only {0, 5} contains it.
func (s FixedSet) Compare(o FixedSet) int {
	s.mustMatch(o)
	cs, co := s.Count(), o.Count()
	switch {
	case cs < co:
		return -1
	case cs > co:
		return 1
	}

	a, b := s.words(), o.words()
	for i := range a {
		x := a[i] ^ b[i]
		if x == 0 {
			continue
		}
		low := uint64(1) << uint(bits.TrailingZeros64(x))
		if a[i]&low != 0 {
			return -1
		}

		return 1
	}

	return 0
}

// Less reports whether s sorts strictly before o under Compare.
func (s FixedSet) Less(o FixedSet) bool { return s.Compare(o) < 0 }
