// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Node lifecycle and queries: AddNode, Node, HasNode, Nodes, NodeIDs, NodeCount, Rank.
// Determinism:
//   - Nodes() and NodeIDs() follow insertion order.

package core

import "fmt"

// AddNode inserts n.
//
// Errors:
//   - ErrEmptyNodeID if n has an empty id.
//   - ErrDuplicateNode if a node with the same id exists; the stored payload is kept.
//
// Complexity: O(1) amortized.
func (g *Graph[N, E]) AddNode(n N) error {
	id := n.VertexID()
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}
	g.insertNode(n)
	return nil
}

// insertNode stores n without validation. Callers guarantee a fresh, non-empty id.
func (g *Graph[N, E]) insertNode(n N) {
	id := n.VertexID()
	g.nodes[id] = n
	g.nodeRank[id] = len(g.nodeOrder)
	g.nodeOrder = append(g.nodeOrder, id)
}

// Node returns the payload stored under id.
func (g *Graph[N, E]) Node(id string) (N, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether id is present.
func (g *Graph[N, E]) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns every node payload in insertion order.
//
// Complexity: O(V)
func (g *Graph[N, E]) Nodes() []N {
	out := make([]N, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, g.nodes[id])
	}
	return out
}

// NodeIDs returns every node id in insertion order. The slice is a copy.
//
// Complexity: O(V)
func (g *Graph[N, E]) NodeIDs() []string {
	return append([]string(nil), g.nodeOrder...)
}

// NodeCount returns the number of nodes.
func (g *Graph[N, E]) NodeCount() int { return len(g.nodeOrder) }

// Rank returns the insertion position of id, or -1 when absent. Algorithms use
// it as the canonical tie-breaker so results do not depend on map iteration.
func (g *Graph[N, E]) Rank(id string) int {
	r, ok := g.nodeRank[id]
	if !ok {
		return -1
	}
	return r
}

// Directed reports the construction-time directedness.
func (g *Graph[N, E]) Directed() bool { return g.directed }
