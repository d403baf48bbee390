// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction.
type BuilderOption func(*builderConfig)

// builderConfig is resolved once per BuildGraph call and passed by value.
type builderConfig struct {
	rng     *rand.Rand
	shuffle bool
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit random source. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs a rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithShuffledLabels permutes the vertex ids of the finished graph using the
// configured random source. Structure is preserved; only labels move, which
// exercises code paths that must not depend on a convenient numbering.
func WithShuffledLabels() BuilderOption {
	return func(c *builderConfig) { c.shuffle = true }
}
