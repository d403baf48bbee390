// SPDX-License-Identifier: MIT

package sigmarho

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/boolwidth/representative"
)

// Sentinel errors.
var (
	// ErrInfeasible indicates that no (σ,ρ)-set exists.
	ErrInfeasible = errors.New("sigmarho: no feasible set")

	// ErrUnknownProblem indicates an unrecognized problem tag or name.
	ErrUnknownProblem = errors.New("sigmarho: unknown problem")

	// ErrInstanceMismatch indicates an instance whose count range does not fit the graph.
	ErrInstanceMismatch = errors.New("sigmarho: instance does not fit the graph")

	// ErrTableTooCoarse indicates a reused table built with a smaller d than required.
	ErrTableTooCoarse = errors.New("sigmarho: representative table too coarse")

	// ErrTableMismatch indicates a reused table built for another graph or tree.
	ErrTableMismatch = errors.New("sigmarho: representative table does not match the tree")

	// ErrMissingEntry indicates that a child table was not computed before its parent.
	ErrMissingEntry = errors.New("sigmarho: missing child table")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sigmarho: invalid option supplied")
)

// Option configures a solve.
type Option func(*Options)

// Options holds solver knobs.
type Options struct {
	// Logger receives per-node progress at debug level.
	Logger *slog.Logger

	// Table, when set, is reused instead of building one per solve.
	Table *representative.Table

	// Workers bounds the number of concurrent solves in SolveAll.
	Workers int

	err error
}

// DefaultOptions returns a discarding logger, no shared table and
// GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithLogger sets the logger. A nil logger is an option violation.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: nil logger", ErrOptionViolation)

			return
		}
		o.Logger = l
	}
}

// WithTable reuses a prebuilt representative table. It must have been
// built for the same tree with d at least Instance.D().
func WithTable(t *representative.Table) Option {
	return func(o *Options) {
		if t == nil {
			o.err = fmt.Errorf("%w: nil table", ErrOptionViolation)

			return
		}
		o.Table = t
	}
}

// WithWorkers bounds SolveAll parallelism; k must be positive.
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, k)

			return
		}
		o.Workers = k
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
