// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Whole-graph copies: Clone, CloneEmpty, AsUndirected.
// Determinism:
//   - Copies preserve insertion order, so algorithms give identical results on a clone.

package core

// CloneEmpty returns a graph with the same configuration and nodes but no edges.
//
// Complexity: O(V)
func (g *Graph[N, E]) CloneEmpty() *Graph[N, E] {
	clone := newGraph[N, E](g.config())
	for _, id := range g.nodeOrder {
		clone.insertNode(g.nodes[id])
	}
	return clone
}

// Clone returns a copy of g with its own indexes. Payloads are copied by value,
// so maps inside payloads (Metadata) stay shared.
//
// Complexity: O(V + E)
func (g *Graph[N, E]) Clone() *Graph[N, E] {
	clone := g.CloneEmpty()
	for _, eid := range g.edgeOrder {
		clone.insertEdge(g.edges[eid])
	}
	return clone
}

// AsUndirected returns a copy of g whose edges are traversable both ways.
// Returns g's clone unchanged when g is already undirected.
//
// Complexity: O(V + E)
func (g *Graph[N, E]) AsUndirected() *Graph[N, E] {
	cfg := g.config()
	cfg.directed = false
	clone := newGraph[N, E](cfg)
	for _, id := range g.nodeOrder {
		clone.insertNode(g.nodes[id])
	}
	for _, eid := range g.edgeOrder {
		clone.insertEdge(g.edges[eid])
	}
	return clone
}
