// SPDX-License-Identifier: MIT

package builder

import "errors"

// Sentinel errors. Callers branch with errors.Is; constructors attach the
// method name and offending parameters with %w.
var (
	// ErrTooFewVertices indicates a size parameter below the constructor minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor without a random source.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates that construction gave up, e.g. a nil
	// constructor or exhausted stub-matching attempts.
	ErrConstructFailed = errors.New("builder: construction failed")
)
