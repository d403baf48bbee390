// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"
	methodStar     = "Star"
	methodWheel    = "Wheel"

	minPathNodes     = 1
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2
	minWheelNodes    = 4
)

func checkMin(method string, n, minimum int) error {
	if n < minimum {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minimum, ErrTooFewVertices)
	}

	return nil
}

// Path returns a Constructor for the path P_n with edges (i-1, i).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if err := checkMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		base := d.AddVertices(n)
		for i := 1; i < n; i++ {
			d.AddEdge(base+i-1, base+i)
		}

		return nil
	}
}

// Cycle returns a Constructor for C_n: the path plus the closing edge (n-1, 0).
func Cycle(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if err := checkMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		base := d.AddVertices(n)
		for i := 0; i < n; i++ {
			d.AddEdge(base+i, base+(i+1)%n)
		}

		return nil
	}
}

// Complete returns a Constructor for K_n.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if err := checkMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		base := d.AddVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.AddEdge(base+i, base+j)
			}
		}

		return nil
	}
}

// Star returns a Constructor for a star whose center is the first vertex of
// the block and whose n-1 leaves follow it.
func Star(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if err := checkMin(methodStar, n, minStarNodes); err != nil {
			return err
		}
		base := d.AddVertices(n)
		for i := 1; i < n; i++ {
			d.AddEdge(base, base+i)
		}

		return nil
	}
}

// Wheel returns a Constructor for W_n: hub first, then a rim cycle of n-1 vertices.
func Wheel(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if err := checkMin(methodWheel, n, minWheelNodes); err != nil {
			return err
		}
		hub := d.AddVertices(n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			u := hub + 1 + i
			d.AddEdge(hub, u)
			d.AddEdge(u, hub+1+(i+1)%rim)
		}

		return nil
	}
}
