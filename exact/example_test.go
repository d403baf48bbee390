// SPDX-License-Identifier: MIT

package exact_test

import (
	"fmt"

	"github.com/katalvlaran/boolwidth/builder"
	"github.com/katalvlaran/boolwidth/exact"
)

func ExampleDecompose() {
	g := builder.MustBuild(builder.Path(5))
	tree, res, _ := exact.Decompose(g)

	fmt.Println(tree.Len(), res.Dimension, res.BooleanWidth)
	// Output: 9 2 1
}

func ExampleDecomposeLinear() {
	g := builder.MustBuild(builder.Star(5))
	lin, res, _ := exact.DecomposeLinear(g)

	fmt.Println(lin.Len(), res.Dimension, lin.Dimension())
	// Output: 5 2 2
}
