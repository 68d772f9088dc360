// SPDX-License-Identifier: MIT

// Package quality scores node sets and partitions of a core.Graph.
//
// Every function is pure: it reads the graph and returns a number.
//
//   - Modularity: (1/2m) Σ_ij [A_ij − γ k_i k_j / 2m] δ(c_i, c_j) on the
//     undirected, weighted projection. A self-loop of weight w adds 2w to A_ii.
//     Nodes missing from the partition count as singletons.
//   - Conductance: cut(S) / min(vol(S), vol(V\S)), weighted; 0 when the
//     denominator is 0.
//   - Density: 2|E_S| / (|S|(|S|−1)) on undirected graphs and
//     |E_S| / (|S|(|S|−1)) on directed ones, counting distinct node pairs and
//     ignoring self-loops; 0 for |S| < 2.
//   - Coverage: the fraction of edges whose endpoints share a part.
//
// Partitions are given as [][]string; parts must be disjoint and reference
// existing nodes, otherwise core.ErrInvalidInput is returned.
package quality
