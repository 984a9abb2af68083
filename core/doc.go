// Package core provides a thread-safe in-memory Graph implementation with a
// minimal, composable API surface.
//
// The Graph G = (V,E) supports a mix of behaviors:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Global vs. per-edge orientation in "mixed" graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are float64 and
//     double as capacities for the flow package
//   - Parallel edges / multigraphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacency[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj) to minimize lock contention
//
// Iteration is deterministic: Vertices(), Edges(), Neighbors() and
// NeighborIDs() all return results sorted by ID, so any algorithm consuming a
// Graph observes a stable order across invocations on the same topology.
//
// Configuration options (GraphOption):
//
//	– WithDirected(defaultDirected bool)
//	    Sets the default orientation of new edges.
//	– WithMixedEdges()
//	    Allows per-edge overrides via WithEdgeDirected(); without it any
//	    override returns ErrMixedEdgesNotAllowed.
//	– WithWeighted()
//	    Permits non-zero weights; otherwise AddEdge(weight≠0) → ErrBadWeight.
//	– WithMultiEdges()
//	    Allows parallel edges between the same endpoints.
//	– WithLoops()
//	    Permits self-loops (from == to).
package core
