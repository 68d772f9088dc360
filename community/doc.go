// SPDX-License-Identifier: MIT
// Package community clusters citation graphs into groups of densely linked
// nodes.
//
// What:
//
//   - Louvain: modularity local moving plus aggregation.
//   - Leiden: Louvain with a refinement phase; communities are connected.
//   - LabelPropagation: weighted majority labels, updated in place.
//   - Infomap: two-level map equation over random-walk flow.
//   - Spectral: normalised-Laplacian embedding clustered by k-means++.
//   - Hierarchical: agglomerative clustering on hop distance, returned as a
//     Dendrogram that can be cut by height or cluster count.
//
// Every routine reads the weighted undirected projection of the graph
// (core.WeightOf per edge, parallel and reciprocal edges summed). Infomap on
// a directed graph is the one exception and follows edge direction.
//
// Options:
//
//   - Options are validated with go-playground/validator; a bad value fails
//     with core.ErrInvalidInput before any work starts.
//   - MaxIterations caps passes per level, MinImprovement ends a pass or a
//     level whose objective gain is too small, Seed fixes every random choice.
//
// Determinism:
//
//   - Nodes are visited in insertion order and communities are numbered by
//     their first member, so identical input and options give identical
//     results.
//
// Errors:
//
//   - core.ErrNilGraph, core.ErrEmptyGraph, core.ErrInsufficientNodes and
//     core.ErrInvalidInput are returned as errors.
//   - Hitting MaxIterations is not an error: the Result carries a usable
//     partition and Result.Err returns a *core.ConvergenceError.
//   - A cancelled context aborts with ctx.Err().
package community
