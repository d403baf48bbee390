// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
)

var (
	// ErrNoCandidates is returned for an empty candidate list.
	ErrNoCandidates = errors.New("search: no candidates")

	// ErrGraphMismatch is returned when candidates decompose different graphs.
	ErrGraphMismatch = errors.New("search: candidates belong to different graphs")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Result identifies the winning candidate.
type Result struct {
	Index        int
	Dimension    int
	BooleanWidth float64
}

// Option configures a search.
type Option func(*Options)

// Options holds search knobs.
type Options struct {
	Logger  *slog.Logger
	Workers int

	err error
}

// DefaultOptions returns a discarding logger and GOMAXPROCS workers.
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

// WithWorkers bounds the number of concurrently scored candidates.
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: workers %d < 1", ErrOptionViolation, k)

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
