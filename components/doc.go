// SPDX-License-Identifier: MIT

// Package components partitions a core.Graph into connected and strongly
// connected components.
//
// What:
//
//   - Connected: weakly connected components (edge orientation ignored).
//   - StronglyConnected: Tarjan's algorithm with an explicit stack, so deep
//     citation chains cannot exhaust the goroutine stack. On an undirected
//     graph it coincides with Connected.
//   - Largest and Condensation: convenience views over a Result.
//
// Guarantees:
//
//   - Components are pairwise disjoint and their union is every node.
//   - Members are listed in node insertion order and components are ordered
//     by their first member, so IDs are stable for a given graph.
//
// Complexity: O(V + E) time and O(V) memory for both algorithms.
package components
