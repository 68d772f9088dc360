// SPDX-License-Identifier: MIT

package components

import (
	"slices"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// Connected returns the weakly connected components of g: edges are followed
// in both directions regardless of the graph's directedness.
//
// An empty graph yields an empty Result.
//
// Complexity: O(V + E)
func Connected[N core.VertexData, E core.EdgeData](g *core.Graph[N, E]) (*Result, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	ids := g.NodeIDs()
	membership := make(map[string]int, len(ids))
	var comps []Component

	queue := make([]string, 0, len(ids))
	for _, root := range ids {
		if _, seen := membership[root]; seen {
			continue
		}
		cid := len(comps)
		membership[root] = cid
		queue = append(queue[:0], root)
		members := []string{root}
		for head := 0; head < len(queue); head++ {
			for _, nbr := range g.Neighbors(queue[head], core.Both) {
				if _, seen := membership[nbr]; seen {
					continue
				}
				membership[nbr] = cid
				queue = append(queue, nbr)
				members = append(members, nbr)
			}
		}
		sortByRank(g, members)
		comps = append(comps, Component{ID: cid, Members: members, Size: len(members)})
	}
	return &Result{Components: comps, Membership: membership}, nil
}

// sortByRank orders ids by node insertion order.
func sortByRank[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], ids []string) {
	slices.SortFunc(ids, func(a, b string) int { return g.Rank(a) - g.Rank(b) })
}
