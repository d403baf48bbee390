// SPDX-License-Identifier: MIT

package fixedset_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boolwidth/fixedset"
)

// randomSet draws a set over [lo, hi) where each element is present with probability 1/2.
func randomSet(r *rand.Rand, lo, hi int) fixedset.FixedSet {
	b := fixedset.NewBuilder(lo, hi)
	for i := lo; i < hi; i++ {
		if r.Intn(2) == 1 {
			b.Add(i)
		}
	}

	return b.Set()
}

func TestNew_ContainsAndCount(t *testing.T) {
	s := fixedset.New(0, 10, 1, 3, 3, 9)
	require.Equal(t, 3, s.Count())
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(9))
	assert.False(t, s.Contains(2))
	assert.False(t, s.Contains(-1), "out of range is never contained")
	assert.False(t, s.Contains(10))
	assert.Equal(t, "{1, 3, 9}", s.String())
}

func TestNew_NonZeroLowerBound(t *testing.T) {
	s := fixedset.New(5, 70, 5, 69, 64)
	require.Equal(t, []int{5, 64, 69}, s.Slice())
	first, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, 5, first)
	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, 69, last)
	assert.Equal(t, 62, s.Complement().Count())
}

func TestAddRemove_ReturnNewValues(t *testing.T) {
	s := fixedset.New(0, 8, 2)
	t2 := s.Add(5)
	t3 := t2.Remove(2)
	assert.Equal(t, []int{2}, s.Slice(), "receiver must stay untouched")
	assert.Equal(t, []int{2, 5}, t2.Slice())
	assert.Equal(t, []int{5}, t3.Slice())
	assert.True(t, t3.Remove(2).Equal(t3), "removing an absent element is a no-op")
}

func TestBoundsViolationsPanic(t *testing.T) {
	s := fixedset.New(0, 4)
	assert.PanicsWithError(t, "fixedset: element out of range: 4 not in [0,4)", func() { s.Add(4) })
	assert.Panics(t, func() { s.Remove(-1) })
	assert.Panics(t, func() { fixedset.New(0, 4, 7) })
	assert.Panics(t, func() { fixedset.New(3, 2) })
	assert.Panics(t, func() { s.Union(fixedset.New(0, 5)) })
	assert.Panics(t, func() { s.IsSubsetOf(fixedset.New(1, 4)) })
}

func TestComplement_MasksTopWord(t *testing.T) {
	for _, hi := range []int{0, 1, 63, 64, 65, 127, 128, 130} {
		empty := fixedset.Empty(0, hi)
		full := empty.Complement()
		require.Equal(t, hi, full.Count(), "hi=%d", hi)
		require.True(t, full.Equal(fixedset.Full(0, hi)))
		if hi > 0 {
			last, ok := full.Last()
			require.True(t, ok)
			require.Equal(t, hi-1, last)
		}
	}
}

func TestAlgebraLaws(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, hi := range []int{1, 17, 64, 100, 200} {
		universe := fixedset.Full(0, hi)
		for trial := 0; trial < 25; trial++ {
			a := randomSet(r, 0, hi)
			b := randomSet(r, 0, hi)
			notA := a.Complement()

			require.True(t, a.Union(notA).Equal(universe))
			require.True(t, a.Intersection(notA).IsEmpty())
			require.True(t, notA.Complement().Equal(a))
			require.Equal(t, a.Count()+b.Count(), a.Union(b).Count()+a.Intersection(b).Count())
			require.Equal(t, a.Intersection(b).Count(), a.IntersectionCount(b))
			require.True(t, a.Difference(b).Equal(a.Intersection(b.Complement())))
			require.True(t, a.Intersection(b).IsSubsetOf(a))
			require.True(t, a.IsSubsetOf(a.Union(b)))
		}
	}
}

func TestFirstLast_Empty(t *testing.T) {
	s := fixedset.Empty(0, 10)
	_, ok := s.First()
	assert.False(t, ok)
	_, ok = s.Last()
	assert.False(t, ok)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, "{}", s.String())
}

func TestAll_IsRestartable(t *testing.T) {
	s := fixedset.New(0, 130, 0, 64, 129)
	var first, second []int
	for v := range s.All() {
		first = append(first, v)
	}
	for v := range s.All() {
		second = append(second, v)
	}
	assert.Equal(t, []int{0, 64, 129}, first)
	assert.Equal(t, first, second)

	// early break must stop the iteration cleanly
	var got []int
	for v := range s.All() {
		got = append(got, v)
		break
	}
	assert.Equal(t, []int{0}, got)
}

func TestKey_Structural(t *testing.T) {
	a := fixedset.New(0, 70, 1, 65)
	b := fixedset.New(0, 70).Add(65).Add(1)
	c := fixedset.New(0, 70, 1)
	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())

	m := map[string]int{a.Key(): 1}
	m[b.Key()]++
	assert.Len(t, m, 1)
	assert.Equal(t, 2, m[a.Key()])
}

func TestEqual_DifferentRanges(t *testing.T) {
	assert.False(t, fixedset.New(0, 5, 1).Equal(fixedset.New(0, 6, 1)))
	assert.True(t, fixedset.FixedSet{}.Equal(fixedset.Empty(0, 0)))
}

func TestBuilder_SnapshotIsolation(t *testing.T) {
	bd := fixedset.NewBuilder(0, 10)
	bd.Add(1).Add(2)
	snap := bd.Set()
	bd.Add(3).Remove(1)
	assert.Equal(t, []int{1, 2}, snap.Slice())
	assert.Equal(t, []int{2, 3}, bd.Set().Slice())
	assert.True(t, bd.Contains(3))
	bd.AddSet(fixedset.New(0, 10, 9))
	assert.Equal(t, []int{2, 3, 9}, bd.Set().Slice())
	bd.Reset()
	assert.True(t, bd.Set().IsEmpty())

	seeded := fixedset.BuilderFrom(snap).Add(7).Set()
	assert.Equal(t, []int{1, 2, 7}, seeded.Slice())
	assert.Equal(t, []int{1, 2}, snap.Slice())
}
