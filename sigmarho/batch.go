// SPDX-License-Identifier: MIT

package sigmarho

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/boolwidth/decomposition"
	"github.com/katalvlaran/boolwidth/representative"
)

// Result is the outcome of one problem in SolveAll.
type Result struct {
	Problem  Problem
	Optimum  Optimum
	Value    int
	Feasible bool
}

// SolveAll solves every problem over tree with its DefaultOptimum. One
// representative table with the largest required d is built up front and
// shared read-only; each problem runs in its own solver context. Results
// come back in input order. Infeasibility is reported per result, any other
// error cancels the batch.
func SolveAll(ctx context.Context, tree *decomposition.Tree, problems []Problem, opts ...Option) ([]Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	n := tree.Graph().Size()
	insts := make([]Instance, len(problems))
	d := 0
	for i, p := range problems {
		if insts[i], err = NewInstance(p, n); err != nil {
			return nil, err
		}
		d = max(d, insts[i].D())
	}

	table := o.Table
	if table == nil && len(problems) > 0 && tree.Len() > 0 {
		if table, err = representative.NewTable(tree, d, representative.WithLogger(o.Logger)); err != nil {
			return nil, fmt.Errorf("SolveAll: %w", err)
		}
	}

	results := make([]Result, len(problems))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for i := range problems {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			solveOpts := []Option{WithLogger(o.Logger.With("problem", problems[i].String()))}
			if table != nil {
				solveOpts = append(solveOpts, WithTable(table))
			}
			opt := problems[i].DefaultOptimum()
			value, err := ComputeOptimalValue(tree, insts[i], opt, solveOpts...)
			switch {
			case errors.Is(err, ErrInfeasible):
				results[i] = Result{Problem: problems[i], Optimum: opt}
			case err != nil:
				return fmt.Errorf("SolveAll: %v: %w", problems[i], err)
			default:
				results[i] = Result{Problem: problems[i], Optimum: opt, Value: value, Feasible: true}
			}

			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
