// SPDX-License-Identifier: MIT

// Package search picks the best of several candidate decompositions.
//
// Candidates are scored independently by a bounded pool of goroutines.
// A single best-so-far value is shared between them and replaced under a
// mutex when a candidate scores strictly better: a lower dimension wins
// and ties go to the lower candidate index, so the answer does not depend
// on scheduling.
package search
