// SPDX-License-Identifier: MIT

// Package citegraph is an in-memory toolkit for analysing academic citation
// graphs: works, authors, venues and the cites/authored links between them.
//
// What is in the box?
//
//	core/       - Graph[N, E] over pluggable node and edge payloads, extraction
//	              views (induced, ego, filters) and content fingerprints
//	bfs/, dfs/  - traversals with hooks, cycle detection, topological order
//	components/ - connected and strongly connected components, condensation
//	dijkstra/   - weighted shortest paths over edge properties and filters
//	decompose/  - k-core, k-truss, biconnected blocks, core-periphery
//	motif/      - triangles, stars, co-citation, bibliographic coupling
//	quality/    - modularity, conductance, density and coverage
//	community/  - Louvain, Leiden, label propagation, Infomap, spectral and
//	              hierarchical clustering
//	builder/    - deterministic fixture graphs (paths, cliques, citation DAGs)
//	codec/      - YAML/JSON graph documents and TOML/YAML analysis configs
//
// The citegraph command (cmd/citegraph) exposes every analysis over graph
// documents.
//
// Determinism: every routine orders its output by node insertion rank, and
// the randomised ones take an explicit seed, so equal input gives equal
// output.
//
// Quick example:
//
//	    W1───W2        W4───W5
//	      \  │    ->     \  │
//	       W3─────────────W6
//
//	Louvain splits the two triangles at the single bridging citation.
//
//	go get github.com/Mearman/Academic-Explorer-sub005
package citegraph
