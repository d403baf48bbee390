// SPDX-License-Identifier: MIT

package counting

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("counting: invalid option supplied")

// Option configures a count.
type Option func(*Options)

// Options holds counting knobs.
type Options struct {
	// Logger receives per-step debug events.
	Logger *slog.Logger
	// MIS selects the algorithm of CountMaximalIndependentSets.
	MIS MISAlgorithm

	err error
}

// DefaultOptions returns options with a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
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

// WithMISAlgorithm selects the branching scheme for maximal independent
// set counting.
func WithMISAlgorithm(a MISAlgorithm) Option {
	return func(o *Options) {
		if a < ComponentBranching || a > PlainBranching {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, a)

			return
		}
		o.MIS = a
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
