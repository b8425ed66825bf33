// SPDX-License-Identifier: MIT
// File: view.go
// Role: Non-mutating views over a Graph: the read-only VertexSet snapshot
// and derived graphs (Transpose, InducedSubgraph). Views never mutate their
// input, and nothing obtained from a view can reach back into graph state.

package core

import "sort"

// VertexSet is a read-only snapshot of a graph's vertex set, taken at the
// time of the Vertices call. It exposes only non-mutating operations, so
// graph internals cannot be altered through it, and later graph mutations
// are not reflected in it.
type VertexSet struct {
	members map[string]struct{}
}

// Contains reports whether id is a member of the snapshot.
// Complexity: O(1).
func (s *VertexSet) Contains(id string) bool {
	_, ok := s.members[id]

	return ok
}

// Len returns the number of vertices in the snapshot. O(1).
func (s *VertexSet) Len() int {
	return len(s.members)
}

// IDs returns the snapshot's labels in sorted order.
// Complexity: O(V·logV)
func (s *VertexSet) IDs() []string {
	ids := make([]string, 0, len(s.members))
	for id := range s.members {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Vertices returns a read-only snapshot of the current vertex set.
// Complexity: O(V).
func (g *Graph) Vertices() *VertexSet {
	members := make(map[string]struct{}, len(g.vertices))
	for id := range g.vertices {
		members[id] = struct{}{}
	}

	return &VertexSet{members: members}
}

// Clone returns a deep copy of the Graph. The clone shares no state with the
// source: mutations on one are invisible to the other.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	out := New()
	for id := range g.vertices {
		out.vertices[id] = struct{}{}
	}
	for k, e := range g.edges {
		out.edges[k] = e
	}

	return out
}

// Transpose returns a new Graph with the same vertex set and every edge
// reversed: an edge u→v with weight w becomes v→u with weight w. The input
// graph is not mutated.
// Complexity: O(V + E)
func Transpose(g *Graph) *Graph {
	out := New()
	for id := range g.vertices {
		out.vertices[id] = struct{}{}
	}
	for k, e := range g.edges {
		out.edges[edgeKey{from: k.to, to: k.from}] = Edge{From: e.To, To: e.From, Weight: e.Weight}
	}

	return out
}

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex
// labels: the result contains only vertices v where keep[v] is true, and the
// edges whose endpoints are both kept. The input graph is not mutated.
// Complexity: O(V + E)
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := New()
	for id := range g.vertices {
		if keep[id] {
			out.vertices[id] = struct{}{}
		}
	}
	for k, e := range g.edges {
		if keep[k.from] && keep[k.to] {
			out.edges[k] = e
		}
	}

	return out
}
