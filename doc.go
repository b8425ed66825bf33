// Package edgelist is a minimal in-memory toolkit for mutable directed
// graphs with non-negative integer edge weights.
//
// 🚀 What is edgelist?
//
//	A small, deliberately strict library built around one container:
//		• core/    — the Graph: a vertex set plus an edge catalog keyed on the
//		             ordered (from, to) pair, so at most one edge exists per pair
//		• builder/ — deterministic topology constructors (path, cycle, star,
//		             complete) with pluggable ID schemes and weight distributions
//
// ✨ Why choose edgelist?
//
//   - Tiny API, total operations — mutations either succeed or are rejected
//     atomically; queries never fail
//   - Invariants by construction — no duplicate edges, no dangling endpoints,
//     no zero- or negative-weight edges in storage
//   - Pure Go — no cgo, no hidden deps
//   - Deterministic output — sorted vertex/edge listings for stable tests
//
// Quick ASCII example:
//
//	a ──3──▶ b ──4──▶ c
//
//	g := core.New()
//	g.SetEdge("a", "b", 3)
//	g.SetEdge("b", "c", 4)
//	g.RemoveVertex("b")        // cascades: both edges go with it
//
// The container is single-threaded by contract: guard a shared Graph with
// one external lock. Traversal and path algorithms are out of scope and are
// meant to be layered on top of Sources/Targets.
package edgelist
