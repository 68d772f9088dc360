// SPDX-License-Identifier: MIT

// Package core provides the generic in-memory Graph used by every analysis
// package in this module.
//
// A Graph[N, E] stores node payloads N and edge payloads E. The only thing the
// graph asks of a payload is identity: nodes implement VertexData (a stable id)
// and edges implement EdgeData (an id plus source and target ids). Optional
// capabilities are discovered by type assertion:
//
//   - Typed           node type tag, used by pathfinding node-type filters
//   - Weighted        numeric edge weight (DefaultWeight when absent)
//   - PropertyReader  named numeric/boolean edge fields for weights and predicates
//
// Vertex and Edge are the concrete citation-graph payloads produced by the data
// layer; any other types satisfying the constraints work too.
//
// Construction:
//
//	g := core.NewGraph[core.Vertex, core.Edge](core.WithDirected(true))
//	_ = g.AddNode(core.Vertex{ID: "W1", Type: "work"})
//	err := g.AddEdge(core.Edge{ID: "c1", Source: "W1", Target: "W2"})
//	// err wraps ErrEdgeReferencesMissingNode: W2 is absent, the edge is skipped
//	// and a warning is logged. The graph is still valid.
//
// Policies:
//
//   - Directedness is fixed by WithDirected at construction.
//   - Every edge is stored once; undirected graphs traverse it both ways.
//   - Duplicate node ids are rejected with ErrDuplicateNode (never overwritten).
//   - Dangling edges are a local, non-fatal skip: logged at warn level and
//     returned as ErrEdgeReferencesMissingNode. Build collects them in BuildReport.
//   - Nodes(), Edges(), Neighbors() follow insertion order, so every algorithm
//     built on this package is deterministic for identical input lists.
//
// Once built, a Graph is treated as an immutable snapshot. Extraction
// (InducedSubgraph, EgoNetwork, Filter, FilterEdges, EdgeInduced) returns new
// graphs. Fingerprint gives a content hash suitable as a memoisation key.
//
// Errors:
//
//	ErrNilGraph                  – nil graph passed to an algorithm
//	ErrInvalidInput              – malformed option or argument
//	ErrEmptyGraph                – zero nodes
//	ErrInsufficientNodes         – fewer nodes than an algorithm's minimum
//	ErrConvergenceFailure        – iteration cap reached (see ConvergenceError)
//	ErrEdgeReferencesMissingNode – dangling edge
//	ErrNodeNotFound              – unknown node id
//	ErrDuplicateNode / ErrDuplicateEdge / ErrEmptyNodeID / ErrEmptyEdgeID
package core
