// SPDX-License-Identifier: MIT

// Package fixedset provides FixedSet, an immutable bit-packed set of integers
// drawn from a fixed half-open range [lo, hi).
//
// FixedSet is the substrate every other package in boolwidth builds on: graph
// neighborhoods, decomposition nodes, cuts and representatives are all
// FixedSets over the same vertex universe. Set algebra runs word-parallel on
// the underlying github.com/bits-and-blooms/bitset storage.
//
// Value semantics:
//
//   - Every operation (Add, Remove, Union, Intersection, Difference, Complement)
//     returns a new FixedSet; the receiver is never modified. A FixedSet can
//     therefore be stored in maps (through Key) and shared freely.
//   - Builder is the only mutable form. It is meant for scratch construction;
//     Builder.Set snapshots the current content into an immutable FixedSet.
//
// Ranges:
//
//   - Two sets are combinable only when their ranges match exactly. Combining
//     mismatched ranges, or adding/removing an element outside the range, is a
//     programmer error and panics with an error wrapping ErrRangeMismatch or
//     ErrOutOfRange.
//   - Contains is a query and simply reports false outside the range.
//
// Order:
//
// Compare defines a total order: smaller cardinality first; on equal
// cardinality the lowest differing element decides, and the set containing it
// sorts first. The representative machinery uses this order to pick canonical
// representatives deterministically.
package fixedset
