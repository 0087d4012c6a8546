package core_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2024/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create a directed graph of page numbers:
	g := core.NewGraph[int]()

	// 2) Add edges (auto-adds vertices):
	_ = g.AddEdge(47, 53)
	_ = g.AddEdge(97, 13)
	_ = g.AddEdge(97, 47)

	// 3) Inspect vertices and edges:
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge 97→47 exists?", g.HasEdge(97, 47))
	fmt.Println("Edge 47→97 exists?", g.HasEdge(47, 97))

	// Output:
	// Vertices: [13 47 53 97]
	// Edge 97→47 exists? true
	// Edge 47→97 exists? false
}

// ExampleInducedSubgraph restricts a graph to a subset of its vertices.
func ExampleInducedSubgraph() {
	g := core.NewGraph[string]()
	_ = g.AddEdge("a", "b")
	_ = g.AddEdge("b", "c")
	_ = g.AddEdge("c", "d")

	sub := core.InducedSubgraph(g, []string{"b", "c", "z"})
	fmt.Println(sub.Vertices(), sub.HasEdge("b", "c"), sub.EdgeCount())

	// Output:
	// [b c] true 1
}
