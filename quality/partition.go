// SPDX-License-Identifier: MIT

package quality

import (
	"fmt"
	"math"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// Membership inverts a partition: node id -> index of its part.
func Membership(partition [][]string) map[string]int {
	m := make(map[string]int)
	for i, part := range partition {
		for _, id := range part {
			m[id] = i
		}
	}
	return m
}

// FromMembership groups g's nodes by label. Parts are ordered by their first
// member in insertion order, members keep insertion order, and nodes without
// a label are left out.
func FromMembership[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], membership map[string]int) [][]string {
	index := make(map[int]int)
	var parts [][]string
	for _, id := range g.NodeIDs() {
		label, ok := membership[id]
		if !ok {
			continue
		}
		i, seen := index[label]
		if !seen {
			i = len(parts)
			index[label] = i
			parts = append(parts, nil)
		}
		parts[i] = append(parts[i], id)
	}
	return parts
}

// validate checks that parts are disjoint and name existing nodes, and
// returns the membership map.
func validate[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], partition [][]string) (map[string]int, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	m := make(map[string]int, g.NodeCount())
	for i, part := range partition {
		for _, id := range part {
			if !g.HasNode(id) {
				return nil, fmt.Errorf("%w: part %d names unknown node %q", core.ErrInvalidInput, i, id)
			}
			if prev, dup := m[id]; dup && prev != i {
				return nil, fmt.Errorf("%w: node %q appears in parts %d and %d", core.ErrInvalidInput, id, prev, i)
			}
			m[id] = i
		}
	}
	return m, nil
}

// nodeSet validates a single set of node ids.
func nodeSet[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], set []string) (map[string]bool, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	in := make(map[string]bool, len(set))
	for _, id := range set {
		if !g.HasNode(id) {
			return nil, fmt.Errorf("%w: unknown node %q", core.ErrInvalidInput, id)
		}
		in[id] = true
	}
	return in, nil
}

// edgeWeight resolves an edge's weight and rejects negative or infinite values.
func edgeWeight[E core.EdgeData](e E) (float64, error) {
	w := core.WeightOf(e)
	if w < 0 || math.IsInf(w, 1) {
		return 0, fmt.Errorf("%w: edge %q has weight %v", core.ErrInvalidInput, e.EdgeID(), w)
	}
	return w, nil
}
