// SPDX-License-Identifier: MIT

package representative

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/boolwidth/fixedset"
)

// MaxD is the largest supported d; counts are stored in one byte per vertex.
const MaxD = 255

// Sentinel errors.
var (
	// ErrInvalidD indicates d outside [0, MaxD].
	ErrInvalidD = errors.New("representative: d out of range")

	// ErrMissingCut indicates a lookup of a cut the table was not built for.
	ErrMissingCut = errors.New("representative: cut not in table")

	// ErrMissingRepresentative indicates a signature without a representative.
	ErrMissingRepresentative = errors.New("representative: no representative for signature")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("representative: invalid option supplied")
)

// Option configures table construction.
type Option func(*Options)

// Options holds knobs shared by NewTable and NewLinearTable.
type Options struct {
	// Logger receives debug events, one per built cut.
	Logger *slog.Logger

	// OnCut is called after the list of a cut is complete.
	OnCut func(cut fixedset.FixedSet, size int)

	err error
}

// DefaultOptions returns options with a discarding logger and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnCut:  func(fixedset.FixedSet, int) {},
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

// WithOnCut registers a hook called once per completed cut.
func WithOnCut(fn func(cut fixedset.FixedSet, size int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCut = fn
		}
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// DValue returns the problem constant d = max(d(sigma), d(rho)) where, for a
// set x over [0, m), d(x) is 0 when x or its complement is empty and
// 1 + min(max x, max complement) otherwise.
func DValue(sigma, rho fixedset.FixedSet) int {
	return max(dOf(sigma), dOf(rho))
}

func dOf(x fixedset.FixedSet) int {
	last, ok := x.Last()
	if !ok {
		return 0
	}
	lastOut, ok := x.Complement().Last()
	if !ok {
		return 0
	}

	return 1 + min(last, lastOut)
}
