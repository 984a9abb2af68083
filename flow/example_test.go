package flow_test

import (
	"fmt"

	"github.com/kvolkov/capflow/core"
	"github.com/kvolkov/capflow/flow"
)

// ExampleEdmondsKarp_CalculateMaximumFlow computes the throughput of a small
// two-tier network.
//
//	    S
//	  10/ \10
//	  A——15→B
//	  5\   /10
//	    T
func ExampleEdmondsKarp_CalculateMaximumFlow() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	g.AddEdge("S", "A", 10)
	g.AddEdge("S", "B", 10)
	g.AddEdge("A", "T", 5)
	g.AddEdge("B", "T", 10)
	g.AddEdge("A", "B", 15)

	ek, _ := flow.NewEdmondsKarp(g, flow.DefaultOptions())
	value, _ := ek.CalculateMaximumFlow("S", "T")
	fmt.Println(value)
	// Output:
	// 15
}

// ExampleEdmondsKarp_BuildMaximumFlow composes the per-edge assignment in
// the same call.
func ExampleEdmondsKarp_BuildMaximumFlow() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	eid, _ := g.AddEdge("s", "t", 7)

	ek, _ := flow.NewEdmondsKarp(g, flow.DefaultOptions())
	mf, _ := ek.BuildMaximumFlow("s", "t")
	fmt.Println(mf.Value, mf.EdgeFlows[eid])
	// Output:
	// 7 7
}
