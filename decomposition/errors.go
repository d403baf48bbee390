// SPDX-License-Identifier: MIT

package decomposition

import "errors"

// Sentinel errors for structural violations.
var (
	ErrDuplicateNode  = errors.New("decomposition: node already exists")
	ErrInvalidNode    = errors.New("decomposition: invalid node")
	ErrParentNotFound = errors.New("decomposition: parent not found")
	ErrParentFull     = errors.New("decomposition: parent already has two children")
	ErrNotLaminar     = errors.New("decomposition: tree is not a laminar decomposition")
	ErrNotPermutation = errors.New("decomposition: sequence is not a permutation of the vertices")
)
