// SPDX-License-Identifier: MIT

package counting_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boolwidth/builder"
	"github.com/katalvlaran/boolwidth/counting"
	"github.com/katalvlaran/boolwidth/fixedset"
	"github.com/katalvlaran/boolwidth/graph"
)

var misAlgorithms = []counting.MISAlgorithm{
	counting.ComponentBranching,
	counting.PivotBranching,
	counting.PlainBranching,
}

// bruteMaximal counts the independent subsets of the live vertices to which
// no further live vertex can be added.
func bruteMaximal(g *graph.Graph) int64 {
	live := g.Vertices().Slice()
	var count int64
	for mask := 0; mask < 1<<len(live); mask++ {
		s := g.EmptySet()
		for i, v := range live {
			if mask&(1<<i) != 0 {
				s = s.Add(v)
			}
		}
		ok := true
		for _, v := range live {
			touches := g.OpenNeighborhood(v).Intersects(s)
			if s.Contains(v) == touches {
				ok = false

				break
			}
		}
		if ok {
			count++
		}
	}

	return count
}

func countMaximal(t *testing.T, g *graph.Graph, a counting.MISAlgorithm) int64 {
	t.Helper()
	c, err := counting.CountMaximalIndependentSets(g, counting.WithMISAlgorithm(a))
	require.NoError(t, err)

	return c.Int64()
}

func TestMaximalKnownCounts(t *testing.T) {
	triangles, err := builder.BuildGraph(nil,
		builder.Complete(3), builder.Complete(3), builder.Complete(3))
	require.NoError(t, err)
	edgeless, err := graph.New(4)
	require.NoError(t, err)
	empty, err := graph.New(0)
	require.NoError(t, err)

	tests := []struct {
		name string
		g    *graph.Graph
		want int64
	}{
		{"P4", builder.MustBuild(builder.Path(4)), 3},
		{"P6", builder.MustBuild(builder.Path(6)), 5},
		{"C5", builder.MustBuild(builder.Cycle(5)), 5},
		{"C6", builder.MustBuild(builder.Cycle(6)), 5},
		{"K4", builder.MustBuild(builder.Complete(4)), 4},
		{"3K3", triangles, 27},
		{"edgeless", edgeless, 1},
		{"empty", empty, 1},
	}
	for _, tc := range tests {
		for _, a := range misAlgorithms {
			t.Run(tc.name+"/"+a.String(), func(t *testing.T) {
				assert.Equal(t, tc.want, countMaximal(t, tc.g, a))
			})
		}
	}
}

func TestMaximalAgainstBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	for trial := 0; trial < 40; trial++ {
		n := 1 + r.Intn(10)
		g, err := builder.Build(builder.RandomSparse(n, r.Float64()), builder.WithSeed(int64(trial)))
		require.NoError(t, err)
		want := bruteMaximal(g)
		for _, a := range misAlgorithms {
			assert.Equal(t, want, countMaximal(t, g, a), "trial %d algorithm %v", trial, a)
		}
	}
}

func TestMaximalRemovedVertices(t *testing.T) {
	// P5 without its middle vertex is two disjoint edges.
	g := builder.MustBuild(builder.Path(5))
	require.NoError(t, g.RemoveVertex(2))
	for _, a := range misAlgorithms {
		assert.Equal(t, int64(4), countMaximal(t, g, a), a.String())
	}
	assert.Equal(t, int64(4), bruteMaximal(g))
}

func TestMaximalAlgorithmsAgreeOnGrid(t *testing.T) {
	g := builder.MustBuild(builder.Grid(3, 4))
	want := countMaximal(t, g, counting.PlainBranching)
	assert.Positive(t, want)
	assert.Equal(t, want, countMaximal(t, g, counting.ComponentBranching))
	assert.Equal(t, want, countMaximal(t, g, counting.PivotBranching))
}

func TestMaximalDefaultAlgorithm(t *testing.T) {
	assert.Equal(t, counting.ComponentBranching, counting.DefaultOptions().MIS)
	c, err := counting.CountMaximalIndependentSets(builder.MustBuild(builder.Cycle(5)))
	require.NoError(t, err)
	assert.Equal(t, int64(5), c.Int64())
}

func TestWithMISAlgorithm_Invalid(t *testing.T) {
	g := builder.MustBuild(builder.Path(2))
	for _, a := range []counting.MISAlgorithm{-1, 3} {
		_, err := counting.CountMaximalIndependentSets(g, counting.WithMISAlgorithm(a))
		assert.ErrorIs(t, err, counting.ErrOptionViolation, a.String())
	}
	assert.Equal(t, "MISAlgorithm(7)", counting.MISAlgorithm(7).String())
}

// A maximal independent set is exactly an independent dominating set, so
// the total equals the count of sets that are both.
func TestMaximalIsIndependentDominating(t *testing.T) {
	g := builder.MustBuild(builder.Wheel(6))
	var want int64
	n := g.Size()
	for mask := 0; mask < 1<<n; mask++ {
		s := fixedset.Empty(0, n)
		for v := 0; v < n; v++ {
			if mask&(1<<v) != 0 {
				s = s.Add(v)
			}
		}
		if s.Union(neighbors(g, s)).Equal(g.Vertices()) && !neighbors(g, s).Intersects(s) {
			want++
		}
	}
	assert.Equal(t, want, countMaximal(t, g, counting.ComponentBranching))
}

func neighbors(g *graph.Graph, s fixedset.FixedSet) fixedset.FixedSet {
	out := g.EmptySet()
	for v := range s.All() {
		out = out.Union(g.OpenNeighborhood(v))
	}

	return out
}
