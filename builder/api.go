// SPDX-License-Identifier: MIT
// api.go — public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg,
//     runs constructors in order.
//   - Public factories (Path, Cycle, Star, Complete) are implemented in
//     impl_*.go files.
//   - Determinism: same options, seed, and constructor order ⇒ identical graphs.
//   - Safety: never panic at build time; return sentinel errors wrapped with
//     method context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/edgelist/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// buildConfig. Constructors must validate parameters early, return sentinel
// errors (no panics), and preserve determinism for the same config and call
// order.
type Constructor func(g *core.Graph, cfg buildConfig) error

// BuildGraph creates a fresh core.Graph, resolves the build configuration
// from bopts, and applies all constructors in order. Any constructor error is
// wrapped with "BuildGraph: %w" and returned immediately; the partially built
// graph is discarded.
//
// Errors: wraps constructor errors via %w; branch with errors.Is against the
// builder sentinels (ErrTooFewVertices, ErrNilConstructor).
// Complexity: O(len(bopts)) resolution plus the sum of constructor costs.
func BuildGraph(bopts []BuildOption, cons ...Constructor) (*core.Graph, error) {
	g := core.New()
	cfg := newBuildConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: constructor at index %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
