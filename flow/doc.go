// Package flow computes maximum flows on capacitated networks represented by
// *core.Graph. The solver is an Edmonds–Karp variant with a multi-path BFS
// phase: one breadth-first sweep over the residual network can discover
// several shortest augmenting paths, each ending in a different arc into the
// sink, and augment along all of them before the next sweep. On wide networks
// this cuts the number of phases without changing per-phase correctness.
//
//   - Method: breadth-first search for shortest (fewest-arc) augmenting paths,
//     gated so that once the sink is reached no new vertex is admitted to the
//     queue — already-queued vertices are still drained, which is what lets a
//     single phase yield multiple paths of the same depth.
//   - Time:   O(V · E²) in the worst case; the multi-path phase only ever
//     reduces the observed phase count.
//   - Memory: O(V + E) for the residual arena and phase-local scratch buffers.
//
// # Graph support
//
// The solver honors the *core.Graph configuration: directed, undirected and
// mixed graphs are all accepted. An undirected edge exposes residual capacity
// in both directions from the start; a directed edge starts with a zero-
// capacity paired reverse arc that only grows as flow is pushed (enabling
// flow cancellation). If the graph is unweighted every edge carries capacity
// 1. Self-loops are skipped when the residual network is built; behavior on
// multigraphs is not validated — treat the solver as simple-graph-only.
//
// # API
//
//	ek, err := flow.NewEdmondsKarp(g, flow.DefaultOptions())
//	value, err := ek.CalculateMaximumFlow("s", "t")
//	perEdge := ek.Flow() // no recomputation
//
// or, composed in one call:
//
//	mf, err := ek.BuildMaximumFlow("s", "t")
//	// mf.Value, mf.EdgeFlows
//
// Internal state is rebuilt from the network on every CalculateMaximumFlow
// call, so the same solver can serve successive source/sink pairs; nothing is
// cached between calls. One solver instance is NOT safe for concurrent use:
// the residual arena is mutated in place across the phases of a call and
// rebuilt destructively by the next one. Use one instance per concurrent
// computation or serialize access.
//
// # Errors
//
//	ErrNilNetwork       — the network passed to NewEdmondsKarp is nil.
//	ErrBadEpsilon       — options carry a non-positive epsilon.
//	EdgeError           — an edge has capacity below -epsilon.
//	ErrSourceNotFound   — the source vertex is missing from the network.
//	ErrSinkNotFound     — the sink vertex is missing from the network.
//	ErrSourceEqualsSink — source and sink name the same vertex.
//
// All validation happens before any internal state is mutated; once inputs
// pass validation there are no recoverable runtime errors. An internal
// invariant breach (negative flow, missing predecessor arc) is a defect and
// panics rather than being swallowed.
package flow
