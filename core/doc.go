// Package core provides a minimal, in-memory, mutable directed graph:
// vertices are string labels, every edge carries a non-negative int64
// weight, and at most one edge exists per ordered (from, to) pair.
//
// The Graph G = (V,E) is deliberately small in surface and strict in
// contract:
//
//   - AddVertex / RemoveVertex manage the vertex set; RemoveVertex
//     cascades to every edge incident to the vertex.
//   - SetEdge is the single edge mutator: weight > 0 inserts or
//     overwrites the edge and reports the previous weight, weight == 0
//     deletes it, weight < 0 is rejected with ErrNegativeWeight before
//     any state is touched.
//   - Sources / Targets answer adjacency queries as fresh weight maps.
//   - Vertices returns a read-only VertexSet snapshot; graph internals
//     can never be mutated through a returned view.
//
// Invariants, held after every exported operation returns:
//
//  1. Every edge's From and To are members of the vertex set.
//  2. No two edges share the same (From, To) pair — enforced by keying
//     the edge catalog on the ordered pair itself.
//  3. Every stored edge weight is strictly positive; weight 0 means
//     "no edge" and is never persisted.
//  4. The vertex set and edge catalog are always allocated; the empty
//     graph is a valid value, not a missing one.
//
// Determinism: VertexIDs(), Edges(), and String() return sorted results
// so tests and diagnostics are reproducible. String() output is a debug
// dump, not a serialization contract.
//
// Concurrency: unlike sibling graph containers in this family, core.Graph
// performs no internal locking. Every mutator is a plain read-modify-write
// over shared maps; callers that share a Graph across goroutines must
// serialize access with one external lock around the whole structure.
//
// Errors:
//
//	ErrNegativeWeight - negative weight passed to SetEdge or NewEdge.
package core
