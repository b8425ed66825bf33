// Package core: Graph method implementations.
//
// This file provides the mutation and query operations on the Graph type
// defined in types.go. The edge catalog is keyed on the ordered (from, to)
// pair, giving constant-time existence, insertion, and deletion of a single
// edge; adjacency queries scan the catalog once (O(E)), which is the intended
// representation for this container's scale.

package core

import (
	"sort"
	"strings"
)

// AddVertex inserts the vertex with the given label into the vertex set.
// Returns true iff the vertex was newly inserted; re-adding an existing
// vertex is a no-op returning false. Any string, including the empty string,
// is a valid label.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) bool {
	if _, exists := g.vertices[id]; exists {
		return false
	}
	g.vertices[id] = struct{}{}

	return true
}

// HasVertex reports whether the vertex with the given label exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, exists := g.vertices[id]

	return exists
}

// RemoveVertex deletes the vertex from the graph and cascades: every edge
// whose source or target equals id is deleted, regardless of the other
// endpoint. Returns true iff the vertex was present; removing an absent
// vertex is a no-op returning false.
// Complexity: O(E).
func (g *Graph) RemoveVertex(id string) bool {
	if _, exists := g.vertices[id]; !exists {
		return false
	}
	delete(g.vertices, id)

	// Cascade: drop every incident edge.
	for k := range g.edges {
		if k.from == id || k.to == id {
			delete(g.edges, k)
		}
	}

	return true
}

// SetEdge establishes, overwrites, or removes the directed edge from→to and
// returns the weight the edge had before the call (0 if it did not exist).
//
// Behavior:
//   - weight < 0: rejected with ErrNegativeWeight before any mutation; the
//     graph (vertices and edges alike) is left exactly as it was.
//   - weight == 0: the edge, if present, is deleted; its endpoints stay in
//     the vertex set. This is the single mechanism for removing one edge
//     without touching vertices.
//   - weight > 0: the edge is inserted, replacing any previous edge for the
//     same ordered pair.
//
// On success both endpoints are added to the vertex set if absent — the only
// operation besides AddVertex that grows the vertex set.
// Complexity: O(1) amortized.
func (g *Graph) SetEdge(from, to string, weight int64) (int64, error) {
	e, err := NewEdge(from, to, weight)
	if err != nil {
		return 0, err
	}

	k := edgeKey{from: from, to: to}
	prev := g.edges[k].Weight

	if weight == 0 {
		delete(g.edges, k)
	} else {
		g.edges[k] = e
	}

	g.AddVertex(from)
	g.AddVertex(to)

	return prev, nil
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	_, exists := g.edges[edgeKey{from: from, to: to}]

	return exists
}

// Weight returns the weight of the directed edge from→to, or 0 if no such
// edge exists.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) int64 {
	return g.edges[edgeKey{from: from, to: to}].Weight
}

// Sources returns every vertex v with an edge v→target, mapped to that
// edge's weight. The result is a fresh, non-nil map; mutating it does not
// affect the graph.
// Complexity: O(E).
func (g *Graph) Sources(target string) map[string]int64 {
	out := make(map[string]int64)
	for k, e := range g.edges {
		if k.to == target {
			out[k.from] = e.Weight
		}
	}

	return out
}

// Targets returns every vertex v with an edge source→v, mapped to that
// edge's weight. The result is a fresh, non-nil map; mutating it does not
// affect the graph.
// Complexity: O(E).
func (g *Graph) Targets(source string) map[string]int64 {
	out := make(map[string]int64)
	for k, e := range g.edges {
		if k.from == source {
			out[k.to] = e.Weight
		}
	}

	return out
}

// Degree returns the number of incoming and outgoing edges incident to id.
// A vertex absent from the graph has degree (0, 0).
// Complexity: O(E).
func (g *Graph) Degree(id string) (in, out int) {
	for k := range g.edges {
		if k.to == id {
			in++
		}
		if k.from == id {
			out++
		}
	}

	return in, out
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int {
	return len(g.vertices)
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// VertexIDs returns all vertex labels in sorted order.
// Complexity: O(V·logV)
func (g *Graph) VertexIDs() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns copies of all edges, sorted by (From, To).
// Complexity: O(E·logE)
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// Clear resets the graph to the empty state.
// Complexity: O(1) for map reallocation.
func (g *Graph) Clear() {
	g.vertices = make(map[string]struct{})
	g.edges = make(map[edgeKey]Edge)
}

// String renders a human-readable dump: the sorted vertex list followed by
// one "from -> to (weight)" line per edge, sorted by (From, To). Debug
// output only — the format and ordering are not a serialization contract.
// Complexity: O(V·logV + E·logE)
func (g *Graph) String() string {
	var sb strings.Builder
	sb.WriteString("Vertices: [")
	sb.WriteString(strings.Join(g.VertexIDs(), " "))
	sb.WriteString("]\nEdges:\n")
	for _, e := range g.Edges() {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
