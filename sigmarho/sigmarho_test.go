// SPDX-License-Identifier: MIT

package sigmarho_test

import (
	"context"
	"math"
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boolwidth/builder"
	"github.com/katalvlaran/boolwidth/decomposition"
	"github.com/katalvlaran/boolwidth/fixedset"
	"github.com/katalvlaran/boolwidth/graph"
	"github.com/katalvlaran/boolwidth/representative"
	"github.com/katalvlaran/boolwidth/sigmarho"
)

// randomTree splits vertex sets at random positions, inserting in pre-order.
func randomTree(t *testing.T, g *graph.Graph, r *rand.Rand) *decomposition.Tree {
	t.Helper()
	tree := decomposition.NewTree(g)
	var split func(node, parent fixedset.FixedSet)
	split = func(node, parent fixedset.FixedSet) {
		require.NoError(t, tree.InsertWithParent(node, parent))
		vs := node.Slice()
		if len(vs) == 1 {
			return
		}
		r.Shuffle(len(vs), func(i, j int) { vs[i], vs[j] = vs[j], vs[i] })
		k := 1 + r.Intn(len(vs)-1)
		left := fixedset.New(0, g.Size(), vs[:k]...)
		split(left, node)
		split(node.Difference(left), node)
	}
	split(g.Vertices(), g.Vertices())

	return tree
}

// brute returns the optimum over all subsets, or ok=false when none qualifies.
func brute(g *graph.Graph, inst sigmarho.Instance, opt sigmarho.Optimum) (best int, ok bool) {
	n := g.Size()
	best = opt.Pessimal()
	for mask := 0; mask < 1<<n; mask++ {
		s := fixedset.Empty(0, n)
		for v := 0; v < n; v++ {
			if mask&(1<<v) != 0 {
				s = s.Add(v)
			}
		}
		feasible := true
		for v := 0; v < n && feasible; v++ {
			feasible = inst.Satisfies(s.Contains(v), g.OpenNeighborhood(v).IntersectionCount(s))
		}
		if feasible {
			best = opt.Optimal(best, bits.OnesCount(uint(mask)))
			ok = true
		}
	}

	return best, ok
}

func TestProblems_NamesRoundTrip(t *testing.T) {
	ps := sigmarho.Problems()
	require.Len(t, ps, 12)
	for _, p := range ps {
		got, err := sigmarho.ParseProblem(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	got, err := sigmarho.ParseProblem("dominatingset")
	require.NoError(t, err)
	assert.Equal(t, sigmarho.DominatingSet, got)

	_, err = sigmarho.ParseProblem("Clique")
	assert.ErrorIs(t, err, sigmarho.ErrUnknownProblem)
	assert.Equal(t, "Problem(40)", sigmarho.Problem(40).String())
}

func TestNewInstance_Sets(t *testing.T) {
	inst := sigmarho.MustInstance(sigmarho.DominatingSet, 4)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, inst.Sigma.Slice())
	assert.Equal(t, []int{1, 2, 3, 4}, inst.Rho.Slice())
	assert.Equal(t, 1, inst.D())

	pc := sigmarho.MustInstance(sigmarho.PerfectCode, 4)
	assert.Equal(t, []int{0}, pc.Sigma.Slice())
	assert.Equal(t, []int{1}, pc.Rho.Slice())
	assert.Equal(t, 2, pc.D())

	_, err := sigmarho.NewInstance(sigmarho.Problem(99), 4)
	assert.ErrorIs(t, err, sigmarho.ErrUnknownProblem)

	_, err = sigmarho.NewCustomInstance(fixedset.New(0, 3, 0), fixedset.New(0, 4, 1))
	assert.ErrorIs(t, err, sigmarho.ErrInstanceMismatch)
	custom, err := sigmarho.NewCustomInstance(fixedset.New(0, 4, 2), fixedset.New(0, 4, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, sigmarho.Custom, custom.Problem)
	assert.Equal(t, "Custom", custom.Problem.String())
}

func TestOptimum(t *testing.T) {
	assert.Equal(t, math.MaxInt, sigmarho.Minimize.Pessimal())
	assert.Equal(t, math.MinInt, sigmarho.Maximize.Pessimal())
	assert.Equal(t, 2, sigmarho.Minimize.Optimal(2, 5))
	assert.Equal(t, 5, sigmarho.Maximize.Optimal(2, 5))
	assert.Equal(t, math.MaxInt, sigmarho.Minimize.Combine(math.MaxInt, 3))
	assert.Equal(t, math.MinInt, sigmarho.Maximize.Combine(4, math.MinInt))
	assert.Equal(t, 7, sigmarho.Maximize.Combine(4, 3))
	assert.Equal(t, sigmarho.Maximize, sigmarho.IndependentSet.DefaultOptimum())
	assert.Equal(t, sigmarho.Minimize, sigmarho.DominatingSet.DefaultOptimum())
}

func TestComputeOptimalValue_Path4(t *testing.T) {
	g := builder.MustBuild(builder.Path(4))
	lin, err := decomposition.NewLinear(g, []int{0, 1, 2, 3})
	require.NoError(t, err)
	tree := lin.Tree()

	ds, err := sigmarho.ComputeOptimalValue(tree, sigmarho.MustInstance(sigmarho.DominatingSet, 4), sigmarho.Minimize)
	require.NoError(t, err)
	assert.Equal(t, 2, ds)

	is, err := sigmarho.ComputeOptimalValue(tree, sigmarho.MustInstance(sigmarho.IndependentSet, 4), sigmarho.Maximize)
	require.NoError(t, err)
	assert.Equal(t, 2, is)
}

func TestComputeOptimalValue_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	for trial := 0; trial < 25; trial++ {
		n := 1 + r.Intn(7)
		g := builder.MustBuild(builder.RandomSparse(n, r.Float64()), builder.WithRand(r))
		tree := randomTree(t, g, r)
		for _, p := range sigmarho.Problems() {
			inst := sigmarho.MustInstance(p, n)
			opt := p.DefaultOptimum()
			want, feasible := brute(g, inst, opt)
			got, err := sigmarho.ComputeOptimalValue(tree, inst, opt)
			if !feasible {
				assert.ErrorIs(t, err, sigmarho.ErrInfeasible, "trial %d %v", trial, p)
				continue
			}
			require.NoError(t, err, "trial %d %v", trial, p)
			assert.Equal(t, want, got, "trial %d %v edges %v", trial, p, g.Edges())
		}
	}
}

func TestComputeOptimalValue_BothPolarities(t *testing.T) {
	g := builder.MustBuild(builder.Cycle(6))
	tree := randomTree(t, g, rand.New(rand.NewSource(1)))
	inst := sigmarho.MustInstance(sigmarho.IndependentDominatingSet, 6)

	lo, err := sigmarho.ComputeOptimalValue(tree, inst, sigmarho.Minimize)
	require.NoError(t, err)
	hi, err := sigmarho.ComputeOptimalValue(tree, inst, sigmarho.Maximize)
	require.NoError(t, err)
	assert.Equal(t, 2, lo)
	assert.Equal(t, 3, hi)
}

func TestComputeOptimalValue_Infeasible(t *testing.T) {
	g := builder.MustBuild(builder.Path(1))
	tree := randomTree(t, g, rand.New(rand.NewSource(1)))
	_, err := sigmarho.ComputeOptimalValue(tree, sigmarho.MustInstance(sigmarho.TotalDominatingSet, 1), sigmarho.Minimize)
	assert.ErrorIs(t, err, sigmarho.ErrInfeasible)
}

func TestComputeOptimalValue_EmptyGraph(t *testing.T) {
	g, err := graph.New(0)
	require.NoError(t, err)
	v, err := sigmarho.ComputeOptimalValue(decomposition.NewTree(g), sigmarho.MustInstance(sigmarho.DominatingSet, 0), sigmarho.Minimize)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestComputeOptimalValue_CustomInstance(t *testing.T) {
	// Every vertex of S has exactly two neighbors in S; outsiders are free.
	g := builder.MustBuild(builder.Wheel(6))
	tree := randomTree(t, g, rand.New(rand.NewSource(5)))
	full := fixedset.Full(0, 7)
	inst, err := sigmarho.NewCustomInstance(fixedset.New(0, 7, 2), full)
	require.NoError(t, err)

	want, ok := brute(g, inst, sigmarho.Maximize)
	require.True(t, ok)
	got, err := sigmarho.ComputeOptimalValue(tree, inst, sigmarho.Maximize)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 5, got)
}

func TestWithTable(t *testing.T) {
	g := builder.MustBuild(builder.Grid(2, 3))
	tree := randomTree(t, g, rand.New(rand.NewSource(3)))

	coarse, err := representative.NewTable(tree, 1)
	require.NoError(t, err)
	_, err = sigmarho.ComputeOptimalValue(tree, sigmarho.MustInstance(sigmarho.PerfectCode, 6), sigmarho.Maximize,
		sigmarho.WithTable(coarse))
	assert.ErrorIs(t, err, sigmarho.ErrTableTooCoarse)

	fine, err := representative.NewTable(tree, 2)
	require.NoError(t, err)
	inst := sigmarho.MustInstance(sigmarho.DominatingSet, 6)
	reused, err := sigmarho.ComputeOptimalValue(tree, inst, sigmarho.Minimize, sigmarho.WithTable(fine))
	require.NoError(t, err)
	fresh, err := sigmarho.ComputeOptimalValue(tree, inst, sigmarho.Minimize)
	require.NoError(t, err)
	assert.Equal(t, fresh, reused)
	assert.Equal(t, 2, fresh)

	_, err = sigmarho.ComputeOptimalValue(tree, inst, sigmarho.Minimize, sigmarho.WithTable(nil))
	assert.ErrorIs(t, err, sigmarho.ErrOptionViolation)
}

func TestWithTable_ForeignTable(t *testing.T) {
	chain := func(g *graph.Graph, seq ...int) *decomposition.Tree {
		lin, err := decomposition.NewLinear(g, seq)
		require.NoError(t, err)

		return lin.Tree()
	}
	p4 := builder.MustBuild(builder.Path(4))
	k4 := builder.MustBuild(builder.Complete(4))
	inst := sigmarho.MustInstance(sigmarho.IndependentSet, 4)

	pathTable, err := representative.NewTable(chain(p4, 0, 1, 2, 3), 1)
	require.NoError(t, err)
	own, err := sigmarho.ComputeOptimalValue(chain(k4, 0, 1, 2, 3), inst, sigmarho.Maximize)
	require.NoError(t, err)
	assert.Equal(t, 1, own)

	_, err = sigmarho.ComputeOptimalValue(chain(k4, 0, 1, 2, 3), inst, sigmarho.Maximize,
		sigmarho.WithTable(pathTable))
	assert.ErrorIs(t, err, sigmarho.ErrTableMismatch)

	_, err = sigmarho.ComputeOptimalValue(chain(p4, 2, 0, 3, 1), inst, sigmarho.Maximize,
		sigmarho.WithTable(pathTable))
	assert.ErrorIs(t, err, sigmarho.ErrTableMismatch)
	assert.ErrorIs(t, err, representative.ErrMissingCut)
}

func TestComputeOptimalValue_InstanceMismatch(t *testing.T) {
	g := builder.MustBuild(builder.Path(5))
	tree := randomTree(t, g, rand.New(rand.NewSource(3)))
	_, err := sigmarho.ComputeOptimalValue(tree, sigmarho.MustInstance(sigmarho.DominatingSet, 2), sigmarho.Minimize)
	assert.ErrorIs(t, err, sigmarho.ErrInstanceMismatch)
}

func TestSolveAll(t *testing.T) {
	r := rand.New(rand.NewSource(30))
	g := builder.MustBuild(builder.RandomSparse(7, 0.4), builder.WithRand(r))
	tree := randomTree(t, g, r)

	results, err := sigmarho.SolveAll(context.Background(), tree, sigmarho.Problems(), sigmarho.WithWorkers(3))
	require.NoError(t, err)
	require.Len(t, results, 12)
	for i, res := range results {
		p := sigmarho.Problems()[i]
		assert.Equal(t, p, res.Problem)
		want, ok := brute(g, sigmarho.MustInstance(p, 7), p.DefaultOptimum())
		assert.Equal(t, ok, res.Feasible, "%v", p)
		if ok {
			assert.Equal(t, want, res.Value, "%v", p)
		}
	}

	_, err = sigmarho.SolveAll(context.Background(), tree, sigmarho.Problems(), sigmarho.WithWorkers(0))
	assert.ErrorIs(t, err, sigmarho.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sigmarho.SolveAll(ctx, tree, sigmarho.Problems())
	assert.ErrorIs(t, err, context.Canceled)
}
