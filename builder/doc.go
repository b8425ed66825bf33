// SPDX-License-Identifier: MIT
// Package builder provides deterministic, functional-options-style topology
// constructors over core.Graph: paths, cycles, stars, and complete graphs.
// It centralizes vertex-ID schemes and edge-weight distributions so test
// fixtures and examples are reproducible and DRY.
//
// The package offers the following components:
//
//   - BuildGraph(bopts, cons...): the single orchestrator. Creates a fresh
//     core.Graph, resolves the configuration from options, and applies the
//     given constructors in order.
//   - Constructors: Path(n), Cycle(n), Star(n), Complete(n).
//   - Vertex-ID schemes (IDFn): DefaultIDFn (decimal "0","1",…),
//     SymbolIDFn (letters "A".."Z"), PrefixIDFn (e.g. "v0","v1",…).
//   - Edge-weight distributions (WeightFn): DefaultWeightFn (constant 1),
//     ConstantWeightFn, UniformWeightFn (seeded RNG via WithRand/WithSeed).
//
// Guarantees:
//
//   - Determinism: the same options, seed, and constructor order always
//     produce identical graphs.
//   - Idempotence: re-running a constructor over the same graph does not
//     duplicate vertices or edges (core.SetEdge overwrites per ordered pair).
//   - Weight validity: every WeightFn yields a strictly positive weight, so
//     a constructor never deletes an edge by emitting 0 and never trips the
//     core negative-weight rejection.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; structured sentinel errors (errors.Is) at build time.
package builder
