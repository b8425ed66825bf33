// This file declares Edge, Graph, the edge-catalog key, the
// ErrNegativeWeight sentinel, and the New constructor.

package core

import (
	"errors"
	"fmt"
)

// ErrNegativeWeight indicates a negative weight was passed to SetEdge or
// NewEdge. The operation is rejected before any state mutation; branch on it
// with errors.Is.
var ErrNegativeWeight = errors.New("core: negative edge weight")

// Edge is an immutable directed connection From→To with a positive Weight.
//
// Edge values are owned by the graph's edge catalog: queries hand out copies,
// never references into graph state.
type Edge struct {
	// From is the source vertex label.
	From string

	// To is the target vertex label.
	To string

	// Weight is the cost of the edge. Always > 0 for a stored edge.
	Weight int64
}

// NewEdge constructs an Edge value, rejecting negative weights with
// ErrNegativeWeight. Zero weight is a valid Edge value (it denotes "no edge"
// to SetEdge) but is never stored in a graph.
// Complexity: O(1).
func NewEdge(from, to string, weight int64) (Edge, error) {
	if weight < 0 {
		return Edge{}, fmt.Errorf("%w: %d (%s -> %s)", ErrNegativeWeight, weight, from, to)
	}

	return Edge{From: from, To: to, Weight: weight}, nil
}

// String renders the edge as "from -> to (weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%s -> %s (%d)", e.From, e.To, e.Weight)
}

// edgeKey is the ordered (from, to) pair keying the edge catalog.
// Using the pair as the map key makes duplicate edges unrepresentable.
type edgeKey struct {
	from, to string
}

// Graph is the edge-list graph container.
//
// vertices is the label set; edges maps each ordered (from, to) pair to its
// Edge record. Both maps are always non-nil on a Graph obtained from New,
// Clone, Transpose, or InducedSubgraph.
//
// Graph performs no internal locking; see the package documentation for the
// external-serialization requirement.
type Graph struct {
	vertices map[string]struct{}
	edges    map[edgeKey]Edge
}

// New creates an empty Graph.
// Complexity: O(1)
func New() *Graph {
	return &Graph{
		vertices: make(map[string]struct{}),
		edges:    make(map[edgeKey]Edge),
	}
}
