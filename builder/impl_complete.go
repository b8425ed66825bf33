// SPDX-License-Identifier: MIT
// impl_complete.go — implementation of the Complete(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits every ordered pair u -> v with u ≠ v (no self-loops), iterating
//     u then v in ascending index order for stable weight assignment.
//
// Complexity: O(n) vertices + O(n²) edges.
// Determinism: deterministic IDs, emission order, and weights for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/edgelist/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor that builds the complete directed graph K_n
// on n vertices: an edge for every ordered pair of distinct vertices.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg buildConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}

		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v {
					continue
				}
				uID, vID := cfg.idFn(u), cfg.idFn(v)
				w := cfg.weightFn(cfg.rng)
				if _, err := g.SetEdge(uID, vID, w); err != nil {
					return fmt.Errorf("%s: SetEdge(%s→%s, w=%d): %w", methodComplete, uID, vID, w, err)
				}
			}
		}

		return nil
	}
}
