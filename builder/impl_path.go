// SPDX-License-Identifier: MIT
// impl_path.go — implementation of the Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1) -> i for i=1..n-1 in stable increasing order.
//   - Weights come from cfg.weightFn(cfg.rng); always ≥ 1.
//
// Complexity: O(n) vertices + O(n-1) edges.
// Determinism: deterministic IDs, emission order, and weights for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/edgelist/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple directed path P_n:
// 0→1→2→…→(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg buildConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}

		for i := 1; i < n; i++ {
			uID, vID := cfg.idFn(i-1), cfg.idFn(i)
			w := cfg.weightFn(cfg.rng)
			if _, err := g.SetEdge(uID, vID, w); err != nil {
				return fmt.Errorf("%s: SetEdge(%s→%s, w=%d): %w", methodPath, uID, vID, w, err)
			}
		}

		return nil
	}
}
