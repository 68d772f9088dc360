// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search traversal, cycle detection,
// and topological sort on a core.Graph.
//
// What:
//
//   - DFS explores as far as possible along each branch before backtracking.
//     It records post-order, pre-order, parent links, depths and
//     discovery/finish timestamps, and supports hooks, cancellation, depth
//     limiting, neighbour filtering, direction selection and forest mode.
//   - DetectCycle reports whether a cycle exists and returns one witness as a
//     closed vertex sequence. Directed graphs use three-colour back-edge
//     detection; undirected graphs ignore the edge a vertex was reached by.
//   - TopologicalSort orders a directed graph so that every edge points
//     forward, failing with ErrCycleDetected exactly when a cycle exists.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers.
//   - Option / DFSOptions / DFSResult: traversal configuration and output.
//   - CycleResult: HasCycle plus the witness Cycle.
//   - TopoOption: WithCancelContext for TopologicalSort.
//
// Determinism:
//
//	Roots are taken in node insertion order and neighbours in edge insertion
//	order. TopologicalSort breaks ties by insertion order.
//
// Errors:
//
//   - ErrGraphNil (core.ErrNilGraph), ErrStartVertexNotFound
//     (matches core.ErrNodeNotFound).
//   - ErrUndirectedGraph (matches core.ErrInvalidInput) from TopologicalSort.
//   - ErrCycleDetected from TopologicalSort.
//   - ctx.Err() and wrapped hook errors.
package dfs
