package flow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvolkov/capflow/core"
)

// TestBuildResidual_DirectedPairing verifies that every edge yields a paired
// forward/reverse arc at adjacent indices and that a directed edge starts
// with zero reverse capacity.
func TestBuildResidual_DirectedPairing(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	eid, err := g.AddEdge("A", "B", 5)
	require.NoError(t, err)

	rn, err := buildResidual(g, DefaultEpsilon)
	require.NoError(t, err)
	require.Len(t, rn.arcs, 2)

	fi := rn.edgeArc[eid]
	fwd, rev := rn.arcs[fi], rn.arcs[fi^1]
	require.Equal(t, fwd.from, rev.to)
	require.Equal(t, fwd.to, rev.from)
	require.Equal(t, 5.0, fwd.capacity)
	require.Zero(t, rev.capacity)
	require.False(t, fwd.undirected)

	// Both endpoints expose their own arc of the pair.
	require.Contains(t, rn.out[fwd.from], fi)
	require.Contains(t, rn.out[fwd.to], fi^1)
}

// TestBuildResidual_UndirectedCapacity: an undirected edge exposes the full
// weight in both directions from the start.
func TestBuildResidual_UndirectedCapacity(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	eid, err := g.AddEdge("A", "B", 4)
	require.NoError(t, err)

	rn, err := buildResidual(g, DefaultEpsilon)
	require.NoError(t, err)

	fi := rn.edgeArc[eid]
	require.Equal(t, 4.0, rn.arcs[fi].capacity)
	require.Equal(t, 4.0, rn.arcs[fi^1].capacity)
	require.True(t, rn.arcs[fi].undirected)
}

// TestBuildResidual_UnweightedUnitCapacity: unweighted networks get capacity
// 1 per edge.
func TestBuildResidual_UnweightedUnitCapacity(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	eid, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	rn, err := buildResidual(g, DefaultEpsilon)
	require.NoError(t, err)
	require.Equal(t, 1.0, rn.arcs[rn.edgeArc[eid]].capacity)
}

// TestBuildResidual_SkipsSelfLoops: self-loops carry no s-t flow and are not
// materialized in the arena.
func TestBuildResidual_SkipsSelfLoops(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops())
	_, err := g.AddEdge("A", "A", 9)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 2)
	require.NoError(t, err)

	rn, err := buildResidual(g, DefaultEpsilon)
	require.NoError(t, err)
	require.Len(t, rn.arcs, 2, "only the A→B pair may exist")
	require.Len(t, rn.edgeArc, 1)
}

// TestBuildResidual_NegativeCapacity fails before any arena state is built.
func TestBuildResidual_NegativeCapacity(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("A", "B", -3)
	require.NoError(t, err)

	_, err = buildResidual(g, DefaultEpsilon)
	var ee EdgeError
	require.ErrorAs(t, err, &ee)
	require.Equal(t, -3.0, ee.Cap)
}

// TestPush_ZeroSumPairing: pushing δ forward drives the pair's flows to +δ/−δ,
// enlarging the reverse residual by δ.
func TestPush_ZeroSumPairing(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	eid, err := g.AddEdge("A", "B", 5)
	require.NoError(t, err)

	rn, err := buildResidual(g, DefaultEpsilon)
	require.NoError(t, err)

	fi := rn.edgeArc[eid]
	rn.push(fi, 3)
	require.Equal(t, 3.0, rn.arcs[fi].flow)
	require.Equal(t, -3.0, rn.arcs[fi^1].flow)
	require.Equal(t, 2.0, rn.residual(fi))
	require.Equal(t, 3.0, rn.residual(fi^1), "cancellation headroom grows with the push")
}

// TestPush_OverflowPanics: pushing beyond capacity is a defect, not an input
// condition.
func TestPush_OverflowPanics(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	eid, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)

	rn, err := buildResidual(g, DefaultEpsilon)
	require.NoError(t, err)

	require.Panics(t, func() { rn.push(rn.edgeArc[eid], 2) })
}

// TestBFS_SinkGateBoundsPhaseDepth: once the sink is seen, already-queued
// vertices are still drained but no new vertex is admitted, so arcs into the
// sink on strictly longer paths are not collected this phase.
func TestBFS_SinkGateBoundsPhaseDepth(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	// Short route S→A→T, long route S→B→C→T.
	_, err := g.AddEdge("S", "A", 5)
	require.NoError(t, err)
	aT, err := g.AddEdge("A", "T", 3)
	require.NoError(t, err)
	_, err = g.AddEdge("S", "B", 4)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "T", 6)
	require.NoError(t, err)

	rn, err := buildResidual(g, DefaultEpsilon)
	require.NoError(t, err)

	rn.breadthFirstSearch(rn.index["S"], rn.index["T"])

	require.True(t, rn.visited[rn.index["T"]])
	require.Equal(t, []int32{rn.edgeArc[aT]}, rn.sinkArcs,
		"only the shallowest sink-entering arc may be collected")
	require.Equal(t, 3.0, rn.excess[rn.index["T"]])

	// C was labeled by an already-queued vertex but never admitted itself.
	require.True(t, rn.visited[rn.index["C"]])
	require.Len(t, rn.queue, 3, "queue holds S, A, B only")

	// The source carries the +∞ sentinel for the whole phase.
	require.True(t, math.IsInf(rn.excess[rn.index["S"]], 1))
}

// TestBFS_MultipleSinkArcsAccumulateExcess: parallel shortest paths add their
// bottlenecks into the sink's excess.
func TestBFS_MultipleSinkArcsAccumulateExcess(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("S", "A", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("S", "B", 3)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "T", 5)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "T", 1)
	require.NoError(t, err)

	rn, err := buildResidual(g, DefaultEpsilon)
	require.NoError(t, err)

	rn.breadthFirstSearch(rn.index["S"], rn.index["T"])
	require.Len(t, rn.sinkArcs, 2)
	// min(2,5) + min(3,1) = 3 accumulated across both entering arcs.
	require.Equal(t, 3.0, rn.excess[rn.index["T"]])
}
