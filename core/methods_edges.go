// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle and queries: AddEdge, Edge, HasEdge, Edges, EdgeCount.
// Policy:
//   - An edge whose source or target is absent is skipped, logged at warn level,
//     and reported as ErrEdgeReferencesMissingNode. The graph is left untouched,
//     so callers assembling graphs from partially loaded data may carry on.

package core

import "fmt"

// AddEdge inserts e.
//
// Steps:
//  1. Reject an empty id (ErrEmptyEdgeID) or a duplicate id (ErrDuplicateEdge).
//  2. If either endpoint is absent, log a warning and return an error wrapping
//     ErrEdgeReferencesMissingNode. Nothing is stored.
//  3. Store e and index it under out[source] and in[target].
//
// Complexity: O(1) amortized.
func (g *Graph[N, E]) AddEdge(e E) error {
	id := e.EdgeID()
	if id == "" {
		return ErrEmptyEdgeID
	}
	if _, exists := g.edges[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateEdge, id)
	}

	src, dst := e.SourceID(), e.TargetID()
	_, hasSrc := g.nodes[src]
	_, hasDst := g.nodes[dst]
	if !hasSrc || !hasDst {
		g.logger.Warn("skipping edge with missing endpoint",
			"edge", id, "source", src, "target", dst,
			"sourcePresent", hasSrc, "targetPresent", hasDst)
		return fmt.Errorf("%w: edge %q (%s -> %s)", ErrEdgeReferencesMissingNode, id, src, dst)
	}

	g.insertEdge(e)
	return nil
}

// insertEdge stores e without validation. Callers guarantee both endpoints exist.
func (g *Graph[N, E]) insertEdge(e E) {
	id := e.EdgeID()
	g.edges[id] = e
	g.edgeOrder = append(g.edgeOrder, id)
	g.out[e.SourceID()] = append(g.out[e.SourceID()], id)
	g.in[e.TargetID()] = append(g.in[e.TargetID()], id)
}

// Edge returns the payload stored under id.
func (g *Graph[N, E]) Edge(id string) (E, bool) {
	e, ok := g.edges[id]
	return e, ok
}

// HasEdge reports whether at least one edge connects from to to. On undirected
// graphs the orientation is ignored.
//
// Complexity: O(deg(from))
func (g *Graph[N, E]) HasEdge(from, to string) bool {
	for _, eid := range g.out[from] {
		if g.edges[eid].TargetID() == to {
			return true
		}
	}
	if !g.directed {
		for _, eid := range g.in[from] {
			if g.edges[eid].SourceID() == to {
				return true
			}
		}
	}
	return false
}

// Edges returns every edge payload in insertion order.
//
// Complexity: O(E)
func (g *Graph[N, E]) Edges() []E {
	out := make([]E, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		out = append(out, g.edges[id])
	}
	return out
}

// EdgeCount returns the number of stored edges.
func (g *Graph[N, E]) EdgeCount() int { return len(g.edgeOrder) }
