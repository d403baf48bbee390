// SPDX-License-Identifier: MIT

// Command bwidth computes boolean-width decompositions and solves
// (σ,ρ) problems over them.
//
// Usage:
//
//	bwidth exact --graph g.yaml [--linear] [--out tree.txt]
//	bwidth width --graph g.yaml (--tree tree.txt | --linear order.txt)
//	bwidth solve --graph g.yaml --tree tree.txt --problem DominatingSet
//	bwidth count --graph g.yaml --linear order.txt --kind independent
//	bwidth best  --graph g.yaml --linear a.txt --linear b.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bwidth:", err)
		os.Exit(1)
	}
}
