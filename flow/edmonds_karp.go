package flow

import (
	"math"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kvolkov/capflow/core"
)

// EdmondsKarp computes maximum flows from a source to a sink in a
// capacitated *core.Graph using breadth-first shortest augmenting paths,
// with a multi-path phase optimization: a single BFS sweep records every
// arc reaching the sink at the shallowest depth and augments along all of
// them before the next sweep.
//
// The solver keeps a handle on the network and rebuilds its residual arena
// on every CalculateMaximumFlow call, so one instance can serve successive
// source/sink pairs — but not concurrent ones.
type EdmondsKarp struct {
	network *core.Graph
	epsilon float64
	verbose bool
	logger  zerolog.Logger

	// Per-invocation state, rebuilt by CalculateMaximumFlow.
	rn        *residualNetwork
	source    int32
	sink      int32
	flowValue float64
	computed  bool
}

// NewEdmondsKarp constructs a solver for the given network. If the network
// is weighted, edge weights are the capacities; otherwise every edge carries
// capacity 1. Floats are compared with opts.Epsilon tolerance.
//
// Fails fast, before any solver state exists, with ErrNilNetwork,
// ErrBadEpsilon, or an EdgeError for any capacity below -epsilon.
func NewEdmondsKarp(network *core.Graph, opts FlowOptions) (*EdmondsKarp, error) {
	if network == nil {
		return nil, ErrNilNetwork
	}
	if opts.Epsilon <= 0 {
		return nil, ErrBadEpsilon
	}
	weighted := network.Weighted()
	for _, e := range network.Edges() {
		capacity := 1.0
		if weighted {
			capacity = e.Weight
		}
		if capacity < -opts.Epsilon {
			return nil, EdgeError{From: e.From, To: e.To, Cap: capacity}
		}
	}

	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &EdmondsKarp{
		network: network,
		epsilon: opts.Epsilon,
		verbose: opts.Verbose,
		logger:  logger,
	}, nil
}

// CalculateMaximumFlow computes the maximum flow from source to sink and
// returns its value. source and sink must be distinct vertices of the
// network. The realized per-edge assignment stays queryable through Flow()
// without recomputation.
//
// The residual arena is rebuilt from the network's current vertices, edges
// and capacities on every call; nothing is reused across calls. Validation
// (unknown source/sink, equal endpoints, negative capacities) happens before
// any state is replaced, so a failed call leaves a previous result intact.
//
// Complexity: O(V·E) phases with O(E) work per phase, O(V·E²) worst case.
func (ek *EdmondsKarp) CalculateMaximumFlow(source, sink string) (float64, error) {
	if !ek.network.HasVertex(source) {
		return 0, ErrSourceNotFound
	}
	if !ek.network.HasVertex(sink) {
		return 0, ErrSinkNotFound
	}
	if source == sink {
		return 0, ErrSourceEqualsSink
	}

	rn, err := buildResidual(ek.network, ek.epsilon)
	if err != nil {
		return 0, err
	}
	ek.rn = rn
	ek.source = rn.index[source]
	ek.sink = rn.index[sink]
	ek.flowValue = 0
	ek.computed = false

	for phase := 1; ; phase++ {
		rn.breadthFirstSearch(ek.source, ek.sink)

		if !rn.visited[ek.sink] {
			// Sink unreachable in the residual network: maximum reached.
			break
		}

		increase := rn.augment(ek.source)
		ek.flowValue += increase

		if ek.verbose {
			ek.logger.Info().
				Int("phase", phase).
				Int("paths", len(rn.sinkArcs)).
				Float64("increase", increase).
				Float64("total", ek.flowValue).
				Msg("flow: phase augmented")
		}
	}
	ek.computed = true

	return ek.flowValue, nil
}

// BuildMaximumFlow computes the maximum flow from source to sink and
// composes the full result: the flow value plus the per-edge assignment.
func (ek *EdmondsKarp) BuildMaximumFlow(source, sink string) (*MaxFlow, error) {
	value, err := ek.CalculateMaximumFlow(source, sink)
	if err != nil {
		return nil, err
	}

	return &MaxFlow{Value: value, EdgeFlows: ek.Flow()}, nil
}

// FlowValue returns the flow value of the last successful
// CalculateMaximumFlow call, or 0 if none completed.
func (ek *EdmondsKarp) FlowValue() float64 {
	return ek.flowValue
}

// Flow composes the per-edge flow assignment from the final arc states of
// the last successful computation, without recomputing anything. For a
// directed edge the flow is the forward arc's (non-negative) flow; for an
// undirected edge it is the magnitude of whichever direction carries flow.
// Returns nil if no computation has completed.
func (ek *EdmondsKarp) Flow() map[string]float64 {
	if !ek.computed {
		return nil
	}
	out := make(map[string]float64, len(ek.rn.edgeArc))
	for eid, fi := range ek.rn.edgeArc {
		fwd := ek.rn.arcs[fi]
		f := fwd.flow
		if fwd.undirected {
			f = math.Max(f, ek.rn.arcs[fi^1].flow)
		}
		out[eid] = math.Max(f, 0)
	}

	return out
}

// breadthFirstSearch runs one labeling phase over the current residual
// capacities. It marks reachable vertices, records the single arc that
// reached each of them together with the bottleneck capacity achievable so
// far (excess), and collects every arc entering the sink at the shallowest
// depth. Once the sink has been seen, vertices already in the queue are
// still drained — that is what captures multiple shortest paths in one
// phase — but no new vertex is admitted, which pins the phase to the
// current shortest-path distance.
func (rn *residualNetwork) breadthFirstSearch(source, sink int32) {
	rn.resetPhase()

	rn.visited[source] = true
	rn.excess[source] = math.Inf(1)
	rn.excess[sink] = 0
	rn.queue = append(rn.queue, source)

	seenSink := false
	for head := 0; head < len(rn.queue); head++ {
		u := rn.queue[head]
		for _, ai := range rn.out[u] {
			res := rn.residual(ai)
			if res <= rn.eps {
				continue
			}
			v := rn.arcs[ai].to

			switch {
			case v == sink:
				rn.visited[sink] = true
				rn.sinkArcs = append(rn.sinkArcs, ai)
				// Each sink-entering arc heads an independent augmenting
				// path, so their bottlenecks accumulate additively.
				rn.excess[sink] += math.Min(rn.excess[u], res)
				seenSink = true
			case !rn.visited[v]:
				rn.visited[v] = true
				rn.excess[v] = math.Min(rn.excess[u], res)
				rn.lastArc[v] = ai
				if !seenSink {
					rn.queue = append(rn.queue, v)
				}
			}
		}
	}
}

// augment realizes every augmenting path found by the last BFS phase: for
// each arc entering the sink it backtracks along the recorded predecessor
// arcs to the source and, on success, pushes the path's bottleneck flow.
// Returns the total flow increase of the phase.
func (rn *residualNetwork) augment(source int32) float64 {
	var increase float64
	rn.epoch++ // one visited-marker generation per phase

	for _, ai := range rn.sinkArcs {
		a := rn.arcs[ai]
		delta := math.Min(rn.excess[a.from], a.capacity-a.flow)

		if rn.backtrack(a.from, source, delta) {
			rn.push(ai, delta)
			increase += delta
		}
	}

	return increase
}

// backtrack walks the recorded predecessor arcs from v to the source and,
// if the walk completes, pushes delta along every arc on the way. A vertex
// already stamped with the current epoch lies on a path augmented earlier
// this phase; the recorded predecessors would interleave two paths, so the
// whole attempt is dropped without pushing anything. Any flow left unrouted
// by a dropped path is picked up by a later phase.
func (rn *residualNetwork) backtrack(v, source int32, delta float64) bool {
	rn.path = rn.path[:0]
	for v != source {
		if rn.seen[v] == rn.epoch {
			return false
		}
		rn.seen[v] = rn.epoch

		ai := rn.lastArc[v]
		if ai == noArc {
			panic("flow: missing predecessor arc during augmentation")
		}
		rn.path = append(rn.path, ai)
		v = rn.arcs[ai].from
	}
	for _, ai := range rn.path {
		rn.push(ai, delta)
	}

	return true
}
