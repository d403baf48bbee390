// SPDX-License-Identifier: MIT

package interchange_test

import (
	"os"

	"github.com/katalvlaran/boolwidth/builder"
	"github.com/katalvlaran/boolwidth/exact"
	"github.com/katalvlaran/boolwidth/interchange"
)

func ExampleWriteTree() {
	g := builder.MustBuild(builder.Path(3))
	tree, _, _ := exact.Decompose(g)

	_ = interchange.WriteTree(os.Stdout, tree, "P3")
	// Output:
	// c P3
	// 1 2 3
	// 1
	// 2 3
	// 2
	// 3
}
