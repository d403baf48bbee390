// SPDX-License-Identifier: MIT

package sigmarho

import (
	"fmt"
	"strings"
)

// Problem tags one of the predefined (σ,ρ) problems.
type Problem int

// Predefined problems.
const (
	StrongStableSet Problem = iota
	PerfectCode
	TotallyNearlyPerfectSet
	WeaklyPerfectDominatingSet
	TotalPerfectDominatingSet
	InducedMatching
	DominatingInducedMatching
	PerfectDominatingSet
	IndependentSet
	DominatingSet
	IndependentDominatingSet
	TotalDominatingSet
)

var problemNames = [...]string{
	StrongStableSet:            "StrongStableSet",
	PerfectCode:                "PerfectCode",
	TotallyNearlyPerfectSet:    "TotallyNearlyPerfectSet",
	WeaklyPerfectDominatingSet: "WeaklyPerfectDominatingSet",
	TotalPerfectDominatingSet:  "TotalPerfectDominatingSet",
	InducedMatching:            "InducedMatching",
	DominatingInducedMatching:  "DominatingInducedMatching",
	PerfectDominatingSet:       "PerfectDominatingSet",
	IndependentSet:             "IndependentSet",
	DominatingSet:              "DominatingSet",
	IndependentDominatingSet:   "IndependentDominatingSet",
	TotalDominatingSet:         "TotalDominatingSet",
}

// Problems returns every predefined problem in declaration order.
func Problems() []Problem {
	out := make([]Problem, len(problemNames))
	for i := range out {
		out[i] = Problem(i)
	}

	return out
}

func (p Problem) valid() bool { return p >= 0 && int(p) < len(problemNames) }

// String returns the problem name, e.g. "DominatingSet".
func (p Problem) String() string {
	if p == Custom {
		return "Custom"
	}
	if !p.valid() {
		return fmt.Sprintf("Problem(%d)", int(p))
	}

	return problemNames[p]
}

// ParseProblem resolves a name case-insensitively.
func ParseProblem(name string) (Problem, error) {
	for i, s := range problemNames {
		if strings.EqualFold(s, name) {
			return Problem(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownProblem, name)
}

// DefaultOptimum returns the natural polarity of p: packing problems are
// maximized, domination problems are minimized.
func (p Problem) DefaultOptimum() Optimum {
	switch p {
	case StrongStableSet, PerfectCode, TotallyNearlyPerfectSet,
		InducedMatching, DominatingInducedMatching, IndependentSet:
		return Maximize
	default:
		return Minimize
	}
}

// sets returns the σ and ρ specifications of p.
func (p Problem) sets() (sigma, rho setSpec) {
	switch p {
	case StrongStableSet:
		return only(0), only(0, 1)
	case PerfectCode:
		return only(0), only(1)
	case TotallyNearlyPerfectSet:
		return only(0, 1), only(0, 1)
	case WeaklyPerfectDominatingSet:
		return only(0, 1), only(1)
	case TotalPerfectDominatingSet:
		return only(1), only(1)
	case InducedMatching:
		return only(1), all()
	case DominatingInducedMatching:
		return only(1), allBut(0)
	case PerfectDominatingSet:
		return all(), only(1)
	case IndependentSet:
		return only(0), all()
	case DominatingSet:
		return all(), allBut(0)
	case IndependentDominatingSet:
		return only(0), allBut(0)
	default: // TotalDominatingSet
		return allBut(0), allBut(0)
	}
}

// setSpec describes a subset of ℕ: the listed elems, or ℕ minus elems when full.
type setSpec struct {
	full  bool
	elems []int
}

func only(elems ...int) setSpec   { return setSpec{elems: elems} }
func all() setSpec                { return setSpec{full: true} }
func allBut(elems ...int) setSpec { return setSpec{full: true, elems: elems} }
