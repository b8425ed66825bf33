// SPDX-License-Identifier: MIT
// impl_star.go — implementation of the Star(n) constructor.
//
// Contract:
//   - n ≥ 2 total vertices (else ErrTooFewVertices): one center, n-1 leaves.
//   - Vertex 0 (cfg.idFn(0)) is the center.
//   - Emits edges center -> leaf for leaves 1..n-1 in stable increasing order.
//
// Complexity: O(n) vertices + O(n-1) edges.
// Determinism: deterministic IDs, emission order, and weights for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/edgelist/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a directed star S_n with edges from
// the center (index 0) to every leaf.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg buildConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		center := cfg.idFn(0)
		g.AddVertex(center)

		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			w := cfg.weightFn(cfg.rng)
			if _, err := g.SetEdge(center, leaf, w); err != nil {
				return fmt.Errorf("%s: SetEdge(%s→%s, w=%d): %w", methodStar, center, leaf, w, err)
			}
		}

		return nil
	}
}
