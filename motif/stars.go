// SPDX-License-Identifier: MIT

package motif

import (
	"fmt"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// Star is a hub together with its leaves.
type Star struct {
	Hub string

	// Leaves are the hub's distinct neighbours in insertion order.
	Leaves []string

	Degree int
}

// Stars returns every hub with at least minDegree distinct neighbours in
// direction dir, hubs in insertion order. Self-loops do not count. On
// undirected graphs dir is ignored.
//
// Errors: core.ErrNilGraph, core.ErrInvalidInput for minDegree < 1 or an
// unknown direction.
//
// Complexity: O(V + E)
func Stars[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], minDegree int, dir core.Direction) ([]Star, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if minDegree < 1 {
		return nil, fmt.Errorf("motif: minDegree must be >= 1, got %d: %w", minDegree, core.ErrInvalidInput)
	}
	switch dir {
	case core.Out, core.In, core.Both:
	default:
		return nil, fmt.Errorf("motif: unknown direction %d: %w", dir, core.ErrInvalidInput)
	}

	var stars []Star
	for _, hub := range g.NodeIDs() {
		nbrs := g.Neighbors(hub, dir)
		leaves := make([]string, 0, len(nbrs))
		for _, v := range nbrs {
			if v != hub {
				leaves = append(leaves, v)
			}
		}
		if len(leaves) < minDegree {
			continue
		}
		sortByRank(g, leaves)
		stars = append(stars, Star{Hub: hub, Leaves: leaves, Degree: len(leaves)})
	}
	return stars, nil
}
