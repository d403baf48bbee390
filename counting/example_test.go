// SPDX-License-Identifier: MIT

package counting_test

import (
	"fmt"

	"github.com/katalvlaran/boolwidth/builder"
	"github.com/katalvlaran/boolwidth/counting"
	"github.com/katalvlaran/boolwidth/decomposition"
)

func ExampleCountIndependentSets() {
	g := builder.MustBuild(builder.Complete(3))
	lin, _ := decomposition.NewLinear(g, []int{0, 1, 2})

	is, _ := counting.CountIndependentSets(lin)
	ds, _ := counting.CountDominatingSets(lin)
	fmt.Println(is, is.Total())
	fmt.Println(ds, ds.Total())
	// Output:
	// [1 3 0 0] 4
	// [0 3 3 1] 7
}
