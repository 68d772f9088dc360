// SPDX-License-Identifier: MIT
// Package dijkstra finds minimum-weight paths in a citation graph with
// non-negative, pluggable edge weights.
//
// Overview:
//
//   - ShortestPath answers a single source/target query and stops as soon as
//     the target is settled.
//   - Distances settles every reachable node and returns the distance and
//     predecessor maps.
//   - A lazy decrease-key min-heap orders vertices by distance, then by node
//     insertion order, so equal-cost alternatives resolve the same way on
//     every run.
//
// Weights (highest precedence first):
//
//   - WithWeightFunc(fn): any function of the edge payload.
//   - WithWeightProperty(key, invert): a numeric edge property, optionally
//     inverted as 1/max(v, Epsilon) so that higher scores mean shorter hops.
//     Edges without the property weigh core.DefaultWeight.
//   - The payload's own core.Weighted weight, or core.DefaultWeight.
//
// Filters are applied during an O(E) pre-scan, before the search starts:
//
//   - WithNodeTypes(types...): both endpoints must carry a listed type.
//   - WithEdgeFilter(pred): user predicates, including the builders
//     PropertyAtLeast, PropertyEquals and RelationIs.
//
// The pre-scan also resolves every usable edge weight; a negative or NaN
// weight aborts with ErrNegativeWeight before any vertex is settled.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph: nil graph.
//   - ErrVertexNotFound: source or target absent (matches core.ErrNodeNotFound).
//   - ErrNegativeWeight, ErrBadOption: both match core.ErrInvalidInput.
//   - ctx.Err(): cancellation observed between settled vertices.
//
// An unreachable target is not an error: Path.Found is false and
// Path.Distance is +Inf.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); the heap may hold one stale entry per relaxation.
package dijkstra
