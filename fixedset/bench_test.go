// SPDX-License-Identifier: MIT

package fixedset_test

import (
	"math/rand"
	"testing"
)

func BenchmarkUnion_1024(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	x, y := randomSet(r, 0, 1024), randomSet(r, 0, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Union(y)
	}
}

func BenchmarkKey_1024(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	x := randomSet(r, 0, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Key()
	}
}

func BenchmarkIntersectionCount_1024(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	x, y := randomSet(r, 0, 1024), randomSet(r, 0, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.IntersectionCount(y)
	}
}
