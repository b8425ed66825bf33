// SPDX-License-Identifier: MIT
// impl_cycle.go — implementation of the Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices); a 2-cycle would collide with the
//     closing edge and a 1-cycle is a self-loop, neither is a cycle C_n.
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges i -> (i+1) mod n for i=0..n-1 in stable increasing order.
//
// Complexity: O(n) vertices + O(n) edges.
// Determinism: deterministic IDs, emission order, and weights for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/edgelist/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a directed cycle C_n:
// 0→1→…→(n-1)→0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg buildConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}

		for i := 0; i < n; i++ {
			uID, vID := cfg.idFn(i), cfg.idFn((i+1)%n)
			w := cfg.weightFn(cfg.rng)
			if _, err := g.SetEdge(uID, vID, w); err != nil {
				return fmt.Errorf("%s: SetEdge(%s→%s, w=%d): %w", methodCycle, uID, vID, w, err)
			}
		}

		return nil
	}
}
