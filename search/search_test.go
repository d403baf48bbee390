// SPDX-License-Identifier: MIT

package search_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boolwidth/builder"
	"github.com/katalvlaran/boolwidth/decomposition"
	"github.com/katalvlaran/boolwidth/exact"
	"github.com/katalvlaran/boolwidth/graph"
	"github.com/katalvlaran/boolwidth/search"
)

func linears(t *testing.T, g *graph.Graph, seqs ...[]int) []*decomposition.Linear {
	t.Helper()
	out := make([]*decomposition.Linear, len(seqs))
	for i, s := range seqs {
		lin, err := decomposition.NewLinear(g, s)
		require.NoError(t, err)
		out[i] = lin
	}

	return out
}

func TestBestLinear_PicksLowestDimension(t *testing.T) {
	g := builder.MustBuild(builder.Path(6))
	cands := linears(t, g,
		[]int{0, 2, 4, 1, 3, 5}, // interleaved: several open edges per cut
		[]int{0, 1, 2, 3, 4, 5},
		[]int{5, 4, 3, 2, 1, 0},
	)
	res, err := search.BestLinear(context.Background(), cands, search.WithWorkers(2))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Index)
	assert.Equal(t, 2, res.Dimension)
	assert.InDelta(t, 1.0, res.BooleanWidth, 1e-9)
}

func TestBestLinear_MatchesSequentialScan(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	g, err := builder.Build(builder.RandomSparse(10, 0.35), builder.WithSeed(4))
	require.NoError(t, err)
	seqs := make([][]int, 40)
	for i := range seqs {
		seqs[i] = r.Perm(10)
	}
	cands := linears(t, g, seqs...)

	wantIdx, wantDim := -1, 0
	for i, c := range cands {
		if d := c.Dimension(); wantIdx < 0 || d < wantDim {
			wantIdx, wantDim = i, d
		}
	}
	for _, workers := range []int{1, 3, 16} {
		res, err := search.BestLinear(context.Background(), cands, search.WithWorkers(workers))
		require.NoError(t, err)
		assert.Equal(t, wantIdx, res.Index, "workers=%d", workers)
		assert.Equal(t, wantDim, res.Dimension)
	}
}

func TestBestTree(t *testing.T) {
	g := builder.MustBuild(builder.Grid(2, 3))
	optimal, res, err := exact.Decompose(g)
	require.NoError(t, err)
	lin, err := decomposition.NewLinear(g, []int{0, 5, 1, 4, 2, 3})
	require.NoError(t, err)

	best, err := search.BestTree(context.Background(), []*decomposition.Tree{lin.Tree(), optimal})
	require.NoError(t, err)
	assert.Equal(t, res.Dimension, best.Dimension)
	if lin.Dimension() > res.Dimension {
		assert.Equal(t, 1, best.Index)
	}
}

func TestErrors(t *testing.T) {
	ctx := context.Background()
	_, err := search.BestLinear(ctx, nil)
	assert.ErrorIs(t, err, search.ErrNoCandidates)

	a := builder.MustBuild(builder.Path(3))
	b := builder.MustBuild(builder.Path(3))
	cands := append(linears(t, a, []int{0, 1, 2}), linears(t, b, []int{0, 1, 2})...)
	_, err = search.BestLinear(ctx, cands)
	assert.ErrorIs(t, err, search.ErrGraphMismatch)

	_, err = search.BestLinear(ctx, cands[:1], search.WithWorkers(0))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = search.BestLinear(cancelled, cands[:1])
	assert.ErrorIs(t, err, context.Canceled)

	bad := decomposition.NewTree(a)
	_, err = search.BestTree(ctx, []*decomposition.Tree{bad})
	assert.Error(t, err)
}
