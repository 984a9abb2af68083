package core_test

import (
	"fmt"

	"github.com/kvolkov/capflow/core"
)

// ExampleNewGraph builds a small directed, weighted graph and walks it.
func ExampleNewGraph() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	g.AddEdge("A", "B", 3)
	g.AddEdge("A", "C", 5)

	fmt.Println(g.Vertices())
	ids, _ := g.NeighborIDs("A")
	fmt.Println(ids)
	// Output:
	// [A B C]
	// [B C]
}
