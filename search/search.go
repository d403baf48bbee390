// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"fmt"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/boolwidth/decomposition"
	"github.com/katalvlaran/boolwidth/graph"
	"github.com/katalvlaran/boolwidth/representative"
)

// best is the shared best-so-far.
type best struct {
	mu    sync.Mutex
	index int
	dim   int
}

// offer replaces the current best when (dim, i) is lexicographically smaller.
func (b *best) offer(i, dim int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.index < 0 || dim < b.dim || (dim == b.dim && i < b.index) {
		b.index, b.dim = i, dim

		return true
	}

	return false
}

func run(ctx context.Context, n int, score func(i int) (int, error), o Options) (Result, error) {
	if n == 0 {
		return Result{}, ErrNoCandidates
	}
	b := &best{index: -1}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dim, err := score(i)
			if err != nil {
				return fmt.Errorf("candidate %d: %w", i, err)
			}
			if b.offer(i, dim) {
				o.Logger.Debug("new best candidate", "index", i, "dimension", dim)
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}

	return Result{Index: b.index, Dimension: b.dim, BooleanWidth: math.Log2(float64(b.dim))}, nil
}

func sameGraph[T interface{ Graph() *graph.Graph }](cands []T) error {
	for i := 1; i < len(cands); i++ {
		if cands[i].Graph() != cands[0].Graph() {
			return fmt.Errorf("%w: candidate %d", ErrGraphMismatch, i)
		}
	}

	return nil
}

// BestLinear returns the candidate sequence of lowest linear
// boolean-dimension. All candidates must decompose the same graph.
func BestLinear(ctx context.Context, cands []*decomposition.Linear, opts ...Option) (Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return Result{}, err
	}
	if err = sameGraph(cands); err != nil {
		return Result{}, fmt.Errorf("BestLinear: %w", err)
	}
	res, err := run(ctx, len(cands), func(i int) (int, error) {
		return cands[i].Dimension(), nil
	}, o)
	if err != nil {
		return Result{}, fmt.Errorf("BestLinear: %w", err)
	}

	return res, nil
}

// BestTree returns the candidate tree of lowest boolean-dimension. Each
// tree is validated while its representative table is built.
func BestTree(ctx context.Context, cands []*decomposition.Tree, opts ...Option) (Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return Result{}, err
	}
	if err = sameGraph(cands); err != nil {
		return Result{}, fmt.Errorf("BestTree: %w", err)
	}
	res, err := run(ctx, len(cands), func(i int) (int, error) {
		return representative.Dimension(cands[i], representative.WithLogger(o.Logger))
	}, o)
	if err != nil {
		return Result{}, fmt.Errorf("BestTree: %w", err)
	}

	return res, nil
}
