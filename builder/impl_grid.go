// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodGrid              = "Grid"
	methodCompleteBipartite = "CompleteBipartite"
	minGridDim              = 1
	minPartition            = 1
)

// Grid returns a Constructor for a rows×cols orthogonal grid. Cell (r, c)
// gets id base + r*cols + c; edges go right and down.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := d.AddVertices(rows * cols)
		id := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					d.AddEdge(id(r, c), id(r, c+1))
				}
				if r+1 < rows {
					d.AddEdge(id(r, c), id(r+1, c))
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{a,b}; the a left vertices
// come first in the block.
func CompleteBipartite(a, b int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if a < minPartition || b < minPartition {
			return fmt.Errorf("%s: partition sizes must be ≥ %d, got %d and %d: %w",
				methodCompleteBipartite, minPartition, a, b, ErrTooFewVertices)
		}
		left := d.AddVertices(a + b)
		right := left + a
		for i := 0; i < a; i++ {
			for j := 0; j < b; j++ {
				d.AddEdge(left+i, right+j)
			}
		}

		return nil
	}
}
