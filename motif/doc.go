// SPDX-License-Identifier: MIT
// Package motif finds small recurring patterns in citation graphs.
//
//   - Triangles: sorted-neighbour intersection over the undirected simple
//     projection, with the global and per-node clustering coefficients.
//   - Stars: hubs with at least minDegree distinct neighbours in a direction.
//   - CoCitations: pairs of works cited together by the same citing works.
//   - BibliographicCoupling: pairs of works citing the same references.
//
// The citation motifs need a directed graph and may be restricted to edges of
// given relation types with WithRelation. All listings are deterministic:
// node lists follow insertion order and pairs are sorted by strength, then by
// insertion order of their endpoints.
package motif
