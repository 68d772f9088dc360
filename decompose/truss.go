// SPDX-License-Identifier: MIT

package decompose

import (
	"fmt"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// pair is an undirected node pair with lo < hi.
type pair struct{ lo, hi int }

func makePair(u, v int) pair {
	if u > v {
		u, v = v, u
	}
	return pair{u, v}
}

// TrussNumbers returns, for every non-loop edge id, the largest k such that
// the edge belongs to the k-truss. Every such edge has truss number >= 2.
// Parallel and reciprocal edges share the number of their node pair.
//
// Complexity: O(E^1.5) for triangle support plus O(kmax·E) for peeling.
func TrussNumbers[N core.VertexData, E core.EdgeData](g *core.Graph[N, E]) (map[string]int, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	a := core.SimpleAdjacency(g)
	byPair := trussByPair(a)

	out := make(map[string]int, g.EdgeCount())
	for _, e := range g.Edges() {
		u, v := a.Index[e.SourceID()], a.Index[e.TargetID()]
		if u == v {
			continue
		}
		out[e.EdgeID()] = byPair[makePair(u, v)]
	}
	return out, nil
}

// KTruss returns the edge-induced subgraph of the k-truss: every surviving
// edge lies in at least k-2 triangles of the survivors. Self-loops never
// survive; with k = 2 every other edge does.
//
// Errors: core.ErrNilGraph, core.ErrInvalidInput for k < 2.
func KTruss[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], k int) (*core.Graph[N, E], error) {
	if k < 2 {
		return nil, fmt.Errorf("decompose: k-truss needs k >= 2, got %d: %w", k, core.ErrInvalidInput)
	}
	truss, err := TrussNumbers(g)
	if err != nil {
		return nil, err
	}
	var keep []string
	for _, e := range g.Edges() {
		if t, ok := truss[e.EdgeID()]; ok && t >= k {
			keep = append(keep, e.EdgeID())
		}
	}
	return core.EdgeInduced(g, keep), nil
}

// trussByPair peels pairs by ascending triangle support.
func trussByPair(a *core.Adjacency) map[pair]int {
	support := make(map[pair]int, a.EdgeCount())
	var all []pair
	for u, nbrs := range a.Adj {
		for _, v := range nbrs {
			if u < v {
				p := pair{u, v}
				support[p] = len(a.Common(u, v))
				all = append(all, p)
			}
		}
	}

	alive := make(map[pair]bool, len(all))
	for _, p := range all {
		alive[p] = true
	}
	truss := make(map[pair]int, len(all))
	remaining := len(all)

	for k := 2; remaining > 0; k++ {
		var queue []pair
		for _, p := range all {
			if alive[p] && support[p] <= k-2 {
				queue = append(queue, p)
			}
		}
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			if !alive[p] {
				continue
			}
			alive[p] = false
			truss[p] = k
			remaining--
			for _, w := range a.Common(p.lo, p.hi) {
				e1, e2 := makePair(p.lo, w), makePair(p.hi, w)
				if !alive[e1] || !alive[e2] {
					continue
				}
				for _, q := range [2]pair{e1, e2} {
					support[q]--
					if support[q] <= k-2 {
						queue = append(queue, q)
					}
				}
			}
		}
	}
	return truss
}
