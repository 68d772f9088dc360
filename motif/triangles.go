// SPDX-License-Identifier: MIT

package motif

import (
	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// Triangle is three mutually adjacent node ids in insertion order.
type Triangle [3]string

// TriangleResult summarises the triangles of a graph.
type TriangleResult struct {
	// Triangles are sorted lexicographically by insertion rank.
	Triangles []Triangle

	Count int

	// ConnectedTriples is the number of paths of length two, Σ d(v)·(d(v)-1)/2.
	ConnectedTriples int

	// ClusteringCoefficient is 3·Count/ConnectedTriples clamped to [0, 1],
	// or 0 when there are no triples.
	ClusteringCoefficient float64

	// LocalClustering maps node id -> fraction of its neighbour pairs that
	// are adjacent (0 for degree < 2).
	LocalClustering map[string]float64
}

// Triangles enumerates every triangle of the undirected simple projection of g.
// Edge direction, self-loops and parallel edges do not matter.
//
// Complexity: O(E·dmax)
func Triangles[N core.VertexData, E core.EdgeData](g *core.Graph[N, E]) (*TriangleResult, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	a := core.SimpleAdjacency(g)
	perNode := make([]int, a.Len())
	res := &TriangleResult{LocalClustering: make(map[string]float64, a.Len())}

	for u, nbrs := range a.Adj {
		for _, v := range nbrs {
			if v <= u {
				continue
			}
			for _, w := range a.Common(u, v) {
				if w <= v {
					continue
				}
				res.Triangles = append(res.Triangles, Triangle{a.IDs[u], a.IDs[v], a.IDs[w]})
				perNode[u]++
				perNode[v]++
				perNode[w]++
			}
		}
	}
	res.Count = len(res.Triangles)

	for i, id := range a.IDs {
		d := a.Degree(i)
		pairs := d * (d - 1) / 2
		res.ConnectedTriples += pairs
		if pairs > 0 {
			res.LocalClustering[id] = float64(perNode[i]) / float64(pairs)
		} else {
			res.LocalClustering[id] = 0
		}
	}
	if res.ConnectedTriples > 0 {
		res.ClusteringCoefficient = min(1, 3*float64(res.Count)/float64(res.ConnectedTriples))
	}
	return res, nil
}
