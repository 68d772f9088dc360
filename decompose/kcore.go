// SPDX-License-Identifier: MIT

package decompose

import (
	"fmt"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// CoreDecomposition holds the coreness of every node.
type CoreDecomposition struct {
	// Coreness maps node id -> largest k whose k-core contains the node.
	Coreness map[string]int

	// MaxCore is the largest coreness in the graph (0 when edgeless).
	MaxCore int

	ids []string // insertion order
}

// Core returns the members of the k-core in insertion order. Core(k+1) is
// always a subset of Core(k); k <= 0 returns every node.
func (d *CoreDecomposition) Core(k int) []string {
	out := make([]string, 0, len(d.ids))
	for _, id := range d.ids {
		if d.Coreness[id] >= k {
			out = append(out, id)
		}
	}
	return out
}

// KCore computes the core decomposition of g by repeatedly removing the
// node of smallest remaining degree (bucket queue, ascending k).
//
// An empty graph yields an empty decomposition.
//
// Complexity: O(V + E)
func KCore[N core.VertexData, E core.EdgeData](g *core.Graph[N, E]) (*CoreDecomposition, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	a := core.SimpleAdjacency(g)
	coreness := peel(a)

	d := &CoreDecomposition{Coreness: make(map[string]int, a.Len()), ids: a.IDs}
	for i, id := range a.IDs {
		d.Coreness[id] = coreness[i]
		d.MaxCore = max(d.MaxCore, coreness[i])
	}
	return d, nil
}

// KCoreSubgraph returns the subgraph induced by the k-core of g.
//
// Errors: core.ErrNilGraph, core.ErrInvalidInput for k < 0.
func KCoreSubgraph[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], k int) (*core.Graph[N, E], error) {
	if k < 0 {
		return nil, fmt.Errorf("decompose: k must be non-negative, got %d: %w", k, core.ErrInvalidInput)
	}
	d, err := KCore(g)
	if err != nil {
		return nil, err
	}
	return core.InducedSubgraph(g, d.Core(k))
}

// peel returns the coreness of every index.
func peel(a *core.Adjacency) []int {
	n := a.Len()
	deg := make([]int, n)
	maxDeg := 0
	for v := range deg {
		deg[v] = a.Degree(v)
		maxDeg = max(maxDeg, deg[v])
	}

	// bin[d] = start of the degree-d block in vert
	bin := make([]int, maxDeg+1)
	for _, d := range deg {
		bin[d]++
	}
	start := 0
	for d := range bin {
		num := bin[d]
		bin[d] = start
		start += num
	}
	pos := make([]int, n)
	vert := make([]int, n)
	for v := 0; v < n; v++ {
		pos[v] = bin[deg[v]]
		vert[pos[v]] = v
		bin[deg[v]]++
	}
	for d := maxDeg; d >= 1; d-- {
		bin[d] = bin[d-1]
	}
	bin[0] = 0

	for i := 0; i < n; i++ {
		v := vert[i]
		for _, u := range a.Adj[v] {
			if deg[u] <= deg[v] {
				continue
			}
			// move u to the front of its block, then shrink the block
			du, pu := deg[u], pos[u]
			pw := bin[du]
			if w := vert[pw]; u != w {
				pos[u], vert[pu] = pw, w
				pos[w], vert[pw] = pu, u
			}
			bin[du]++
			deg[u]--
		}
	}
	return deg
}
