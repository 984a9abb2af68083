package flow_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/kvolkov/capflow/core"
	"github.com/kvolkov/capflow/flow"
)

// buildRandomGraph constructs a directed, weighted graph with V vertices and
// roughly p probability of an edge between any ordered pair u→v.
// Capacities are uniform in [1, maxCap]. Seeded for reproducibility.
func buildRandomGraph(v int, p float64, maxCap float64, seed int64) *core.Graph {
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for i := 0; i < v; i++ {
		_ = g.AddVertex(strconv.Itoa(i))
	}
	for u := 0; u < v; u++ {
		for w := 0; w < v; w++ {
			if u == w {
				continue
			}
			if r.Float64() < p {
				_, _ = g.AddEdge(strconv.Itoa(u), strconv.Itoa(w), r.Float64()*maxCap+1.0)
			}
		}
	}

	return g
}

// BenchmarkEdmondsKarp measures solver throughput on graphs of increasing
// size and density. The graph is built once per case; each iteration pays
// for the full rebuild-and-solve cycle, which is the real cost profile of
// the solver.
func BenchmarkEdmondsKarp(b *testing.B) {
	cases := []struct {
		name     string
		vertices int
		edgeProb float64
		maxCap   float64
		seed     int64
	}{
		{"Small", 200, 0.05, 10.0, 42},
		{"Medium", 500, 0.02, 20.0, 4242},
		{"Large", 1000, 0.01, 50.0, 424242},
	}

	for _, tc := range cases {
		tc := tc
		b.Run(tc.name, func(b *testing.B) {
			g := buildRandomGraph(tc.vertices, tc.edgeProb, tc.maxCap, tc.seed)
			src := "0"
			dst := strconv.Itoa(tc.vertices - 1)

			ek, err := flow.NewEdmondsKarp(g, flow.DefaultOptions())
			if err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err = ek.CalculateMaximumFlow(src, dst); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
