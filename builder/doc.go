// SPDX-License-Identifier: MIT
// Package builder generates deterministic citation-graph fixtures.
//
// What:
//
//   - Topologies: Path, Cycle, Star, Complete, DisjointCliques.
//   - Bibliographic shapes: Authorship (author -> work bipartite links) and
//     CitationDAG (every work cites earlier works only).
//   - RandomSparse: an Erdős–Rényi sample over n works.
//
// How:
//
//   - BuildGraph(gopts, bopts, cons...) creates a core graph with gopts,
//     resolves bopts into one builderConfig and applies cons in order.
//   - Vertex ids come from the configured IDFn (decimal by default); edge ids
//     are "e<k>" in emission order, so two runs with equal input agree.
//   - Adding a vertex that already exists is a no-op, which lets
//     constructors share ids when composed.
//   - Edge weights stay unset (core.DefaultWeight) unless WithWeightFn or one
//     of its shorthands is given.
//
// Errors:
//
//   - ErrTooFewVertices, ErrInvalidProbability and ErrNeedRandSource wrap
//     core.ErrInvalidInput.
//   - Option constructors (WithX) panic on meaningless values; constructors
//     never panic.
package builder
