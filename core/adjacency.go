package core

import "sort"

// Neighbors returns all edges leaving vertex 'id'.
// Directed edges are included only when e.From == id; undirected edges are
// included from either endpoint. The result is sorted by Edge.ID so callers
// observe a stable order across invocations.
// Complexity: O(d·logd), where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	for _, edgeSet := range g.adjacency[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			// Directed edges count as outgoing only from their From endpoint.
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the IDs of all vertices adjacent to id, honoring
// directed, undirected, and per-edge overrides. Sorted for determinism.
// Complexity: O(d·logd).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
		} else if !e.Directed && e.To == id {
			seen[e.From] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// AdjacencyList exposes a flattened map from vertex ID to the IDs of edges
// reachable from it. Edge ID slices are sorted.
// Complexity: O(V + E·logE).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	result := make(map[string][]string, len(g.adjacency))
	for from, toMap := range g.adjacency {
		for _, edgeMap := range toMap {
			for eid := range edgeMap {
				result[from] = append(result[from], eid)
			}
		}
		sort.Strings(result[from])
	}

	return result
}

// Degree returns the (in, out, undirected) degree counts of id.
// Self-loops count once toward the undirected tally.
// Complexity: O(E).
func (g *Graph) Degree(id string) (in, out, undirected int, err error) {
	if id == "" {
		return 0, 0, 0, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return 0, 0, 0, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.edges {
		switch {
		case e.From == id && e.To == id:
			undirected++ // self-loop
		case !e.Directed && (e.From == id || e.To == id):
			undirected++
		case e.From == id:
			out++
		case e.To == id:
			in++
		}
	}

	return in, out, undirected, nil
}
