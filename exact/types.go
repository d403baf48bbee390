// SPDX-License-Identifier: MIT

package exact

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
)

// DefaultMaxVertices bounds the graphs Decompose accepts unless overridden.
const DefaultMaxVertices = 16

var (
	// ErrTooLarge is returned when the graph has more vertices than allowed.
	ErrTooLarge = errors.New("exact: graph too large for exhaustive search")

	// ErrSearchExhausted is returned when reconstruction finds no step that
	// stays within the computed width.
	ErrSearchExhausted = errors.New("exact: no decomposition within the width bound")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("exact: invalid option supplied")
)

// Result summarizes an optimal decomposition.
type Result struct {
	// Dimension is the largest number of distinct neighborhoods at any cut.
	Dimension int
	// BooleanWidth is log2(Dimension).
	BooleanWidth float64
}

func newResult(dim int) Result {
	return Result{Dimension: dim, BooleanWidth: math.Log2(float64(dim))}
}

// Option configures a decomposition run.
type Option func(*Options)

// Options holds the knobs of Decompose and DecomposeLinear.
type Options struct {
	// Logger receives a summary event per run.
	Logger *slog.Logger
	// MaxVertices is the largest vertex count accepted.
	MaxVertices int

	err error
}

// DefaultOptions returns a discarding logger and DefaultMaxVertices.
func DefaultOptions() Options {
	return Options{
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		MaxVertices: DefaultMaxVertices,
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

// WithMaxVertices sets the largest vertex count accepted. k must be >= 1.
func WithMaxVertices(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: max vertices %d < 1", ErrOptionViolation, k)

			return
		}
		o.MaxVertices = k
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
