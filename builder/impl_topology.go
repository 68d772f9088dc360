// SPDX-License-Identifier: MIT
//
// File: impl_topology.go
// Role: Classic topologies over "work" vertices linked by the configured
//       relation.
// Determinism:
//   - Vertices are added by index ascending; edges in the documented order.
//   - On directed graphs Path and Cycle point from index i to i+1 and Star
//     points from the hub outwards. Complete emits both directions.

package builder

// Minimum sizes.
const (
	MinPathNodes   = 2
	MinCycleNodes  = 3
	MinStarNodes   = 2
	MinCliqueNodes = 1
)

// Path builds P_n: 0–1–…–(n-1).
//
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		const method = "Path"
		if err := requireMin(method, "n", n, MinPathNodes); err != nil {
			return err
		}
		ids, err := addVertices(g, method, cfg.idFn, 0, n, cfg.nodeType)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, method, ids[i], ids[i+1], cfg.relation); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle builds C_n: a path closed by (n-1)–0.
//
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		const method = "Cycle"
		if err := requireMin(method, "n", n, MinCycleNodes); err != nil {
			return err
		}
		ids, err := addVertices(g, method, cfg.idFn, 0, n, cfg.nodeType)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, method, ids[i], ids[(i+1)%n], cfg.relation); err != nil {
				return err
			}
		}
		return nil
	}
}

// Star builds a hub (index 0) with n-1 leaves.
//
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		const method = "Star"
		if err := requireMin(method, "n", n, MinStarNodes); err != nil {
			return err
		}
		ids, err := addVertices(g, method, cfg.idFn, 0, n, cfg.nodeType)
		if err != nil {
			return err
		}
		for _, leaf := range ids[1:] {
			if err := addEdge(g, cfg, method, ids[0], leaf, cfg.relation); err != nil {
				return err
			}
		}
		return nil
	}
}

// Complete builds K_n over indices 0..n-1, pairs in (i, j) order with i < j.
// On a directed graph each pair is emitted as i→j then j→i.
//
// Complexity: O(n^2).
func Complete(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		const method = "Complete"
		if err := requireMin(method, "n", n, MinCliqueNodes); err != nil {
			return err
		}
		ids, err := addVertices(g, method, cfg.idFn, 0, n, cfg.nodeType)
		if err != nil {
			return err
		}
		return addClique(g, cfg, method, ids)
	}
}

// DisjointCliques builds k copies of K_size with consecutive indices:
// clique c holds indices c·size .. c·size+size-1. No edge joins two cliques.
//
// Complexity: O(k · size^2).
func DisjointCliques(k, size int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		const method = "DisjointCliques"
		if err := requireMin(method, "k", k, 1); err != nil {
			return err
		}
		if err := requireMin(method, "size", size, MinCliqueNodes); err != nil {
			return err
		}
		for c := 0; c < k; c++ {
			ids, err := addVertices(g, method, cfg.idFn, c*size, size, cfg.nodeType)
			if err != nil {
				return err
			}
			if err := addClique(g, cfg, method, ids); err != nil {
				return err
			}
		}
		return nil
	}
}

func addClique(g *Graph, cfg builderConfig, method string, ids []string) error {
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if err := addEdge(g, cfg, method, ids[i], ids[j], cfg.relation); err != nil {
				return err
			}
			if g.Directed() {
				if err := addEdge(g, cfg, method, ids[j], ids[i], cfg.relation); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
