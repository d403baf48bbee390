// SPDX-License-Identifier: MIT

// Package counting counts independent and dominating sets by size with a
// dynamic program over a linear decomposition, and counts maximal
// independent sets by branching.
//
// Both counters walk the vertex sequence once. The state at a prefix A is
// indexed by representatives of the d = 1 linear representative table, and
// each entry holds a Histogram: entry k is the number of partial solutions
// of size k in that class. Moving a vertex v across the cut either leaves v
// out of the set or puts it in, and the histograms of all predecessor
// classes mapping to the same successor class are added.
//
// CountMaximalIndependentSets needs no decomposition. It branches on the
// graph itself, carrying the candidate vertices P and the excluded vertices
// X that a later choice must still dominate. The default scheme splits the
// remaining graph into connected components and multiplies their counts;
// pivot and plain Bron-Kerbosch style branching are selectable with
// WithMISAlgorithm.
//
// Counts are exact (math/big); the number of dominating sets of a graph
// overflows int64 quickly.
package counting
