package core_test

import (
	"fmt"

	"github.com/katalvlaran/edgelist/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an empty graph:
	g := core.New()

	// 2) Set edges (auto-adds vertices a, b, c):
	g.SetEdge("a", "b", 3)
	g.SetEdge("b", "c", 4)

	// 3) Inspect vertices and adjacency:
	fmt.Println("Vertices:", g.VertexIDs())
	fmt.Println("Targets of a:", g.Targets("a"))

	// 4) Remove a vertex; its edges go with it:
	g.RemoveVertex("b")
	fmt.Println("After removing b, vertices:", g.VertexIDs())
	fmt.Println("Edge a→b exists?", g.HasEdge("a", "b"))

	// Output:
	// Vertices: [a b c]
	// Targets of a: map[b:3]
	// After removing b, vertices: [a c]
	// Edge a→b exists? false
}

// ExampleGraph_SetEdge shows the previous-weight protocol: overwriting
// reports the old weight, weight 0 deletes the edge.
func ExampleGraph_SetEdge() {
	g := core.New()

	prev, _ := g.SetEdge("a", "b", 5)
	fmt.Println("first set, previous:", prev)

	prev, _ = g.SetEdge("a", "b", 7)
	fmt.Println("overwrite, previous:", prev)

	prev, _ = g.SetEdge("a", "b", 0)
	fmt.Println("delete, previous:", prev)
	fmt.Println("edges left:", g.EdgeCount(), "vertices left:", g.VertexCount())

	// Output:
	// first set, previous: 0
	// overwrite, previous: 5
	// delete, previous: 7
	// edges left: 0 vertices left: 2
}

// ExampleGraph_String renders the debug dump: sorted vertex list, then one
// line per edge.
func ExampleGraph_String() {
	g := core.New()
	g.SetEdge("a", "b", 3)
	g.SetEdge("b", "c", 4)
	g.AddVertex("d")

	fmt.Print(g)

	// Output:
	// Vertices: [a b c d]
	// Edges:
	// a -> b (3)
	// b -> c (4)
}
