// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - BFSResult carries Order (visit sequence), Depth (hops from start) and
//     Parent (predecessor in the BFS tree), plus PathTo and Layers helpers.
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - WithDirection follows citations forwards (core.Out), backwards
//     (core.In) or both ways. Undirected graphs always use both.
//   - WithFilterNeighbor prunes individual steps; WithMaxDepth bounds the walk.
//
// Determinism
//
//	Neighbours are expanded in edge insertion order, so the visit sequence
//	is reproducible for a given graph.
//
// Complexity
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil (core.ErrNilGraph) if the graph pointer is nil.
//   - ErrStartVertexNotFound (matches core.ErrNodeNotFound).
//   - ErrOptionViolation (matches core.ErrInvalidInput) for a negative MaxDepth
//     or an unknown direction.
//   - ctx.Err() on cancellation and wrapped OnVisit errors.
package bfs
