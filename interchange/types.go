// SPDX-License-Identifier: MIT

package interchange

import "errors"

var (
	// ErrMalformed indicates input that does not follow the file grammar,
	// or a linear file line with more than one id.
	ErrMalformed = errors.New("interchange: malformed input")

	// ErrVertexOutOfRange indicates an id outside 1..n.
	ErrVertexOutOfRange = errors.New("interchange: vertex id out of range")
)
