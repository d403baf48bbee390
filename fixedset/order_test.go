// SPDX-License-Identifier: MIT

package fixedset_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boolwidth/fixedset"
)

func TestCompare_Cases(t *testing.T) {
	cases := []struct {
		name string
		a, b fixedset.FixedSet
		want int
	}{
		{"smaller cardinality first", fixedset.New(0, 10, 9), fixedset.New(0, 10, 0, 1), -1},
		{"larger cardinality last", fixedset.New(0, 10, 0, 1), fixedset.New(0, 10, 9), 1},
		{"lowest differing bit set wins", fixedset.New(0, 10, 0, 5), fixedset.New(0, 10, 1, 2), -1},
		{"lowest differing bit unset loses", fixedset.New(0, 10, 1, 2), fixedset.New(0, 10, 0, 5), 1},
		{"equal sets", fixedset.New(0, 10, 3, 4), fixedset.New(0, 10, 4, 3), 0},
		{"difference in second word", fixedset.New(0, 130, 1, 70), fixedset.New(0, 130, 1, 100), -1},
		{"empty sets", fixedset.Empty(0, 3), fixedset.Empty(0, 3), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Compare(tc.b))
			assert.Equal(t, tc.want < 0, tc.a.Less(tc.b))
		})
	}
}

func TestCompare_TotalOrder(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	sets := make([]fixedset.FixedSet, 60)
	for i := range sets {
		sets[i] = randomSet(r, 0, 12)
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].Less(sets[j]) })

	for i := 1; i < len(sets); i++ {
		require.LessOrEqual(t, sets[i-1].Compare(sets[i]), 0)
		require.Equal(t, -sets[i-1].Compare(sets[i]), sets[i].Compare(sets[i-1]), "antisymmetry")
	}
	for i := range sets {
		for j := range sets {
			require.Equal(t, sets[i].Equal(sets[j]), sets[i].Compare(sets[j]) == 0)
		}
	}
}
