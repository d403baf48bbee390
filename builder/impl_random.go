// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	methodRandomRegular     = "RandomRegular"
	minRandomVertices       = 1
	probMin                 = 0.0
	probMax                 = 1.0
	maxStubMatchingAttempts = 64
)

// RandomSparse returns a Constructor for an Erdős–Rényi graph G(n, p).
// Unordered pairs {i, j} are tried with i ascending then j ascending, so the
// outcome is fixed for a fixed seed. p ∈ {0, 1} needs no random source.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := d.AddVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMin:
				case p == probMax:
					d.AddEdge(base+i, base+j)
				case cfg.rng.Float64() < p:
					d.AddEdge(base+i, base+j)
				}
			}
		}

		return nil
	}
}

// RandomRegular returns a Constructor for a simple d-regular graph using
// stub matching with bounded reshuffles. Requires n*d even and 0 ≤ d < n.
func RandomRegular(n, deg int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomRegular, n, minRandomVertices, ErrTooFewVertices)
		}
		if deg < 0 || deg >= n || (n*deg)%2 != 0 {
			return fmt.Errorf("%s: invalid degree %d for n=%d: %w",
				methodRandomRegular, deg, n, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomRegular, ErrNeedRandSource)
		}

		base := d.AddVertices(n)
		stubs := make([]int, 0, n*deg)
		for i := 0; i < n; i++ {
			for k := 0; k < deg; k++ {
				stubs = append(stubs, i)
			}
		}
		if len(stubs) == 0 {
			return nil
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}
			for i := 0; i < len(stubs); i += 2 {
				d.AddEdge(base+stubs[i], base+stubs[i+1])
			}

			return nil
		}

		return fmt.Errorf("%s: no simple pairing after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form a simple graph.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
