// SPDX-License-Identifier: MIT
// Package decompose splits a citation graph into structural layers.
//
// What:
//
//   - KCore: per-node coreness by Batagelj–Zaversnik peeling; cores are nested.
//   - CorePeriphery: a Borgatti–Everett discrete core/periphery split with a
//     correlation-based fit score.
//   - Biconnected: Hopcroft–Tarjan blocks, articulation points and bridges.
//   - KTruss and TrussNumbers: edge peeling by triangle support.
//
// Every routine works on the undirected simple projection of the input
// (core.SimpleAdjacency): directed edges are followed both ways, self-loops
// are ignored and parallel edges collapse. Biconnected is the exception for
// parallel edges, which it keeps so that a doubled link is not a bridge.
//
// Determinism:
//
//   - Node lists follow insertion order; score ties break by insertion order.
//
// Errors:
//
//   - core.ErrNilGraph for a nil graph.
//   - core.ErrInvalidInput for a negative k (KCoreSubgraph), k < 2 (KTruss)
//     or a bad option.
//   - core.ErrEmptyGraph / core.ErrInsufficientNodes from CorePeriphery.
package decompose
