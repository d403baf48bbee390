// SPDX-License-Identifier: MIT

// Package interchange reads and writes decompositions as plain text.
//
// A tree file lists one node per line as whitespace-separated 1-based
// vertex ids. Parent and child links are implied by position: each node
// becomes the next child of the most recently listed ancestor that still
// has a free slot, so listing nodes in pre-order is enough. A linear file
// lists one 1-based vertex id per line in sequence order. In both, lines
// consisting of "c" or starting with "c " are comments and blank lines are
// ignored:
//
//	c exact decomposition of P3
//	1 2 3
//	1 2
//	1
//	2
//	3
//
// Input is tokenized and parsed with participle before any decomposition is
// built, so syntax errors carry a line and column and leave nothing half
// constructed.
package interchange
