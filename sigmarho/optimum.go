// SPDX-License-Identifier: MIT

package sigmarho

import "math"

// Optimum is the min/max strategy of a solve together with its pessimal
// sentinel, the value of "no solution".
type Optimum struct {
	maximize bool
}

// Predefined strategies.
var (
	Minimize = Optimum{maximize: false}
	Maximize = Optimum{maximize: true}
)

// Pessimal returns math.MaxInt for Minimize and math.MinInt for Maximize.
func (o Optimum) Pessimal() int {
	if o.maximize {
		return math.MinInt
	}

	return math.MaxInt
}

// Optimal returns the better of x and y.
func (o Optimum) Optimal(x, y int) int {
	if o.maximize {
		return max(x, y)
	}

	return min(x, y)
}

// Combine adds two partial values; a pessimal operand yields pessimal.
func (o Optimum) Combine(a, b int) int {
	p := o.Pessimal()
	if a == p || b == p {
		return p
	}

	return a + b
}

// IsMaximize reports the polarity.
func (o Optimum) IsMaximize() bool { return o.maximize }

func (o Optimum) String() string {
	if o.maximize {
		return "max"
	}

	return "min"
}
