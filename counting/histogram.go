// SPDX-License-Identifier: MIT

package counting

import (
	"math/big"
	"strings"
)

// Histogram maps a solution size k to the number of solutions of that size.
type Histogram []*big.Int

func newHistogram(n int) Histogram {
	h := make(Histogram, n+1)
	for i := range h {
		h[i] = new(big.Int)
	}

	return h
}

// addShifted adds src[k] into h[k+shift] for all k that fit.
func (h Histogram) addShifted(src Histogram, shift int) {
	for k := 0; k+shift < len(h) && k < len(src); k++ {
		if src[k].Sign() != 0 {
			h[k+shift].Add(h[k+shift], src[k])
		}
	}
}

// Count returns the number of solutions of size k.
func (h Histogram) Count(k int) *big.Int {
	if k < 0 || k >= len(h) {
		return new(big.Int)
	}

	return new(big.Int).Set(h[k])
}

// Total returns the number of solutions of any size.
func (h Histogram) Total() *big.Int {
	sum := new(big.Int)
	for _, c := range h {
		sum.Add(sum, c)
	}

	return sum
}

// Min returns the smallest size with a nonzero count.
func (h Histogram) Min() (int, bool) {
	for k, c := range h {
		if c.Sign() != 0 {
			return k, true
		}
	}

	return 0, false
}

// Max returns the largest size with a nonzero count.
func (h Histogram) Max() (int, bool) {
	for k := len(h) - 1; k >= 0; k-- {
		if h[k].Sign() != 0 {
			return k, true
		}
	}

	return 0, false
}

// String renders "[1 3 0 0]".
func (h Histogram) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}
