// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Extraction. Every function returns a NEW graph; the input is never mutated.
// Determinism:
//   - Selected nodes and surviving edges keep the source insertion order.
//   - Directedness and logger carry over.

package core

import "fmt"

// InducedSubgraph returns the subgraph induced by ids: exactly those nodes and
// every edge whose endpoints are both among them. Duplicate ids are ignored.
//
// Errors:
//   - ErrNilGraph for a nil graph.
//   - ErrNodeNotFound if any id is absent.
//
// Complexity: O(V + E)
func InducedSubgraph[N VertexData, E EdgeData](g *Graph[N, E], ids []string) (*Graph[N, E], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !g.HasNode(id) {
			return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
		keep[id] = true
	}
	return project(g, keep, nil), nil
}

// EgoNetwork returns the subgraph induced by every node within radius hops of
// any seed, following edges in both directions. Radius 0 keeps only the seeds.
//
// Errors:
//   - ErrNilGraph for a nil graph.
//   - ErrInvalidInput for a negative radius or an empty seed list.
//   - ErrNodeNotFound if a seed is absent.
//
// Complexity: O(V + E)
func EgoNetwork[N VertexData, E EdgeData](g *Graph[N, E], seeds []string, radius int) (*Graph[N, E], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if radius < 0 {
		return nil, fmt.Errorf("%w: radius must be non-negative, got %d", ErrInvalidInput, radius)
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("%w: at least one seed is required", ErrInvalidInput)
	}

	depth := make(map[string]int, len(seeds))
	frontier := make([]string, 0, len(seeds))
	for _, s := range seeds {
		if !g.HasNode(s) {
			return nil, fmt.Errorf("%w: seed %q", ErrNodeNotFound, s)
		}
		if _, dup := depth[s]; dup {
			continue
		}
		depth[s] = 0
		frontier = append(frontier, s)
	}

	// multi-source BFS, one ring per radius step
	for d := 1; d <= radius && len(frontier) > 0; d++ {
		var next []string
		for _, u := range frontier {
			for _, v := range g.Neighbors(u, Both) {
				if _, seen := depth[v]; seen {
					continue
				}
				depth[v] = d
				next = append(next, v)
			}
		}
		frontier = next
	}

	keep := make(map[string]bool, len(depth))
	for id := range depth {
		keep[id] = true
	}
	return project(g, keep, nil), nil
}

// Filter returns the subgraph induced by the nodes satisfying pred.
//
// Complexity: O(V + E) plus the cost of pred.
func Filter[N VertexData, E EdgeData](g *Graph[N, E], pred func(N) bool) (*Graph[N, E], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if pred == nil {
		return nil, fmt.Errorf("%w: nil node predicate", ErrInvalidInput)
	}
	keep := make(map[string]bool, g.NodeCount())
	for _, id := range g.nodeOrder {
		if pred(g.nodes[id]) {
			keep[id] = true
		}
	}
	return project(g, keep, nil), nil
}

// FilterEdges returns a graph with every node of g and only the edges
// satisfying pred.
//
// Complexity: O(V + E) plus the cost of pred.
func FilterEdges[N VertexData, E EdgeData](g *Graph[N, E], pred func(E) bool) (*Graph[N, E], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if pred == nil {
		return nil, fmt.Errorf("%w: nil edge predicate", ErrInvalidInput)
	}
	keep := make(map[string]bool, g.NodeCount())
	for _, id := range g.nodeOrder {
		keep[id] = true
	}
	return project(g, keep, pred), nil
}

// EdgeInduced returns the subgraph formed by the listed edges and their
// endpoints. Unknown edge ids are ignored.
//
// Complexity: O(V + E)
func EdgeInduced[N VertexData, E EdgeData](g *Graph[N, E], edgeIDs []string) *Graph[N, E] {
	want := make(map[string]bool, len(edgeIDs))
	keep := make(map[string]bool)
	for _, eid := range edgeIDs {
		e, ok := g.edges[eid]
		if !ok {
			continue
		}
		want[eid] = true
		keep[e.SourceID()] = true
		keep[e.TargetID()] = true
	}
	return project(g, keep, func(e E) bool { return want[e.EdgeID()] })
}

// project copies the kept nodes and the edges whose endpoints are both kept
// and, when edgePred is non-nil, satisfy it.
func project[N VertexData, E EdgeData](g *Graph[N, E], keep map[string]bool, edgePred func(E) bool) *Graph[N, E] {
	out := newGraph[N, E](g.config())
	for _, id := range g.nodeOrder {
		if keep[id] {
			out.insertNode(g.nodes[id])
		}
	}
	for _, eid := range g.edgeOrder {
		e := g.edges[eid]
		if !keep[e.SourceID()] || !keep[e.TargetID()] {
			continue
		}
		if edgePred != nil && !edgePred(e) {
			continue
		}
		out.insertEdge(e)
	}
	return out
}
