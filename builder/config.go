// SPDX-License-Identifier: MIT
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   - buildConfig is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuildConfig applies options in order (later overrides earlier).

package builder

import "math/rand"

// buildConfig aggregates all knobs used by constructors.
// It is passed by value to constructors (immutable to callers).
type buildConfig struct {
	// Vertex ID strategy: index -> label (deterministic).
	idFn IDFn
	// RNG for stochastic weight functions; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges; must yield values ≥ 1.
	weightFn WeightFn
}

// BuildOption mutates the buildConfig before constructors run.
type BuildOption func(*buildConfig)

// WithIDFn overrides the vertex-ID scheme (default: DefaultIDFn).
// Panics if fn is nil.
func WithIDFn(fn IDFn) BuildOption {
	if fn == nil {
		panic("WithIDFn: fn must not be nil")
	}

	return func(cfg *buildConfig) { cfg.idFn = fn }
}

// WithWeightFn overrides the edge-weight distribution (default: DefaultWeightFn).
// Panics if fn is nil.
func WithWeightFn(fn WeightFn) BuildOption {
	if fn == nil {
		panic("WithWeightFn: fn must not be nil")
	}

	return func(cfg *buildConfig) { cfg.weightFn = fn }
}

// WithRand supplies the RNG used by stochastic weight functions.
// Panics if rng is nil; use WithSeed for the common seeded case.
func WithRand(rng *rand.Rand) BuildOption {
	if rng == nil {
		panic("WithRand: rng must not be nil")
	}

	return func(cfg *buildConfig) { cfg.rng = rng }
}

// WithSeed seeds a fresh RNG for stochastic weight functions, freezing the
// produced weights for reproducible fixtures.
func WithSeed(seed int64) BuildOption {
	return func(cfg *buildConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// newBuildConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuildConfig(opts ...BuildOption) buildConfig {
	cfg := buildConfig{
		idFn:     DefaultIDFn,     // "0","1","2",...
		rng:      nil,             // no RNG unless explicitly set
		weightFn: DefaultWeightFn, // constant weight 1
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
