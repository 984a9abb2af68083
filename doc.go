// Package capflow is a small toolkit for modeling capacitated flow networks
// and computing maximum flows on them.
//
// Everything is organized under two subpackages:
//
//	core/ — the Graph, Vertex and Edge primitives: thread-safe construction,
//	        deterministic (sorted) iteration, directed/undirected/mixed edges,
//	        real-valued capacities.
//	flow/ — the Edmonds–Karp maximum-flow solver with a multi-path BFS phase:
//	        one breadth-first sweep can discover several shortest augmenting
//	        paths, cutting the number of phases on wide networks.
//
// A tiny CLI lives in cmd/capflow: it loads a network description from YAML
// (with environment overrides) and prints the maximum flow together with the
// realized per-edge assignment.
//
//	go get github.com/kvolkov/capflow
package capflow
