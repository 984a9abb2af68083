package flow

import (
	"fmt"
	"math"

	"github.com/kvolkov/capflow/core"
)

// noArc marks a vertex with no recorded predecessor arc this phase.
const noArc = int32(-1)

// arc is one direction of a residual pair. Paired arcs sit at adjacent
// indices in the arena so that the reverse of arc i is always i^1, and
// flow(i) + flow(i^1) == 0 holds at all times: pushing δ forward grows the
// reverse arc's residual capacity by δ, enabling later flow cancellation.
type arc struct {
	from, to int32   // dense vertex indices
	capacity float64 // ≥ 0 after build validation
	flow     float64 // 0 ≤ flow ≤ capacity within epsilon

	// undirected is set on the forward arc of a pair built from an
	// undirected edge; it decides how the per-edge flow is composed.
	undirected bool
}

// residualNetwork is the arena the solver works on: dense-index vertices,
// paired arcs, per-vertex outgoing adjacency, and the phase-local scratch
// buffers of the BFS labeler and the augmenter. It is rebuilt from the
// external graph on every top-level invocation and never shared between
// invocations.
type residualNetwork struct {
	eps float64

	verts   []string         // dense index → external vertex ID
	index   map[string]int32 // external vertex ID → dense index
	arcs    []arc            // paired: reverse(i) == i^1
	out     [][]int32        // per-vertex outgoing arc indices
	edgeArc map[string]int32 // external edge ID → forward arc index

	// Phase-local labeling state, reset at the start of every BFS phase.
	visited []bool    // vertex reached this phase
	excess  []float64 // bottleneck capacity achievable to reach the vertex
	lastArc []int32   // the single arc that reached the vertex, or noArc

	sinkArcs []int32 // all arcs that reached the sink at the shallowest depth
	queue    []int32 // BFS queue storage, reused across phases

	// Augmenter scratch: seen[v] == epoch means v already lies on a path
	// augmented in the current phase.
	seen  []uint32
	epoch uint32
	path  []int32 // backtrack arc buffer, reused across attempts
}

// buildResidual turns the external capacitated graph into a residual arena.
// Every edge yields a forward arc (capacity = weight, or 1 on unweighted
// graphs) and a paired reverse arc (capacity 0 for directed edges, the full
// weight for undirected ones). Self-loops are skipped. Any capacity below
// -eps aborts the build with an EdgeError before any state is published.
func buildResidual(g *core.Graph, eps float64) (*residualNetwork, error) {
	ids := g.Vertices()
	rn := &residualNetwork{
		eps:     eps,
		verts:   ids,
		index:   make(map[string]int32, len(ids)),
		out:     make([][]int32, len(ids)),
		edgeArc: make(map[string]int32),

		visited: make([]bool, len(ids)),
		excess:  make([]float64, len(ids)),
		lastArc: make([]int32, len(ids)),
		seen:    make([]uint32, len(ids)),
	}
	for i, id := range ids {
		rn.index[id] = int32(i)
	}

	weighted := g.Weighted()
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue // self-loops carry no s-t flow
		}
		capacity := 1.0
		if weighted {
			capacity = e.Weight
		}
		if capacity < -eps {
			return nil, EdgeError{From: e.From, To: e.To, Cap: capacity}
		}
		capacity = math.Max(capacity, 0) // clamp within-tolerance negatives

		u, v := rn.index[e.From], rn.index[e.To]
		reverseCap := 0.0
		if !e.Directed {
			// Undirected edges expose capacity in both directions from the start.
			reverseCap = capacity
		}

		fi := int32(len(rn.arcs))
		rn.arcs = append(rn.arcs,
			arc{from: u, to: v, capacity: capacity, undirected: !e.Directed},
			arc{from: v, to: u, capacity: reverseCap},
		)
		rn.out[u] = append(rn.out[u], fi)
		rn.out[v] = append(rn.out[v], fi+1)
		rn.edgeArc[e.ID] = fi
	}

	return rn, nil
}

// residual reports the remaining capacity of arc i.
func (rn *residualNetwork) residual(i int32) float64 {
	return rn.arcs[i].capacity - rn.arcs[i].flow
}

// push increases arc i's flow by delta and decreases its pair's flow by the
// same amount, preserving the zero-sum pairing invariant. A resulting flow
// outside [ -eps, capacity+eps ] is an implementation defect, not an input
// condition, and panics.
func (rn *residualNetwork) push(i int32, delta float64) {
	a := &rn.arcs[i]
	a.flow += delta
	rn.arcs[i^1].flow -= delta

	if a.flow > a.capacity+rn.eps {
		panic(fmt.Sprintf("flow: arc %d→%d overflows capacity: flow=%g cap=%g",
			a.from, a.to, a.flow, a.capacity))
	}
}

// resetPhase clears the labeling state ahead of a BFS phase. excess values
// are phase-local and only meaningful for vertices marked visited, so they
// are not zeroed wholesale.
func (rn *residualNetwork) resetPhase() {
	for i := range rn.visited {
		rn.visited[i] = false
		rn.lastArc[i] = noArc
	}
	rn.sinkArcs = rn.sinkArcs[:0]
	rn.queue = rn.queue[:0]
}
