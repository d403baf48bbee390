// SPDX-License-Identifier: MIT

package exact_test

import (
	"testing"

	"github.com/katalvlaran/boolwidth/builder"
	"github.com/katalvlaran/boolwidth/exact"
)

func BenchmarkDecompose_Cycle8(b *testing.B) {
	g := builder.MustBuild(builder.Cycle(8))
	for i := 0; i < b.N; i++ {
		if _, _, err := exact.Decompose(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecomposeLinear_Grid3x4(b *testing.B) {
	g := builder.MustBuild(builder.Grid(3, 4))
	for i := 0; i < b.N; i++ {
		if _, _, err := exact.DecomposeLinear(g); err != nil {
			b.Fatal(err)
		}
	}
}
