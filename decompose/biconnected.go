// SPDX-License-Identifier: MIT

package decompose

import (
	"slices"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// Block is one biconnected component.
type Block struct {
	ID int

	// Edges lists the component's edge ids in discovery order.
	Edges []string

	// Nodes lists the component's nodes in insertion order.
	Nodes []string

	// IsBridge is true when the component is a single edge.
	IsBridge bool
}

// BiconnectedResult is the block decomposition of a graph.
// Isolated nodes and self-loops belong to no block.
type BiconnectedResult struct {
	Components []Block

	// ArticulationPoints lists cut vertices in insertion order.
	ArticulationPoints []string

	// Bridges lists the edge ids of single-edge blocks in discovery order.
	Bridges []string
}

// IsArticulationPoint reports whether id is a cut vertex.
func (r *BiconnectedResult) IsArticulationPoint(id string) bool {
	return slices.Contains(r.ArticulationPoints, id)
}

// arc is one traversable direction of an edge.
type arc struct {
	edge string
	to   int
}

// bccFrame is an explicit DFS stack entry.
type bccFrame struct {
	v      int
	via    string // id of the tree edge that reached v, "" at a root
	next   int
	isRoot bool
}

// Biconnected computes biconnected components with Hopcroft–Tarjan low-links
// on an explicit stack, so deep graphs do not exhaust the goroutine stack.
// Edges are followed in both directions; parallel edges are kept, so a doubled
// link is never a bridge.
//
// Complexity: O(V + E)
func Biconnected[N core.VertexData, E core.EdgeData](g *core.Graph[N, E]) (*BiconnectedResult, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	ids := g.NodeIDs()
	n := len(ids)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}
	arcs := make([][]arc, n)
	for i, id := range ids {
		for _, e := range g.IncidentEdges(id, core.Both) {
			if e.SourceID() == e.TargetID() {
				continue
			}
			arcs[i] = append(arcs[i], arc{edge: e.EdgeID(), to: index[core.OtherEnd(e, id)]})
		}
	}

	disc := make([]int, n)
	low := make([]int, n)
	for i := range disc {
		disc[i] = -1
	}
	isCut := make([]bool, n)
	res := &BiconnectedResult{}

	type stackedEdge struct {
		id   string
		u, w int
	}
	var edgeStack []stackedEdge
	clock := 0

	emit := func(until string) {
		var edges []string
		seen := make(map[int]bool)
		for {
			top := edgeStack[len(edgeStack)-1]
			edgeStack = edgeStack[:len(edgeStack)-1]
			edges = append(edges, top.id)
			seen[top.u], seen[top.w] = true, true
			if top.id == until {
				break
			}
		}
		slices.Reverse(edges)
		members := make([]int, 0, len(seen))
		for v := range seen {
			members = append(members, v)
		}
		slices.Sort(members)
		names := make([]string, len(members))
		for k, v := range members {
			names[k] = ids[v]
		}
		b := Block{ID: len(res.Components), Edges: edges, Nodes: names, IsBridge: len(edges) == 1}
		if b.IsBridge {
			res.Bridges = append(res.Bridges, edges[0])
		}
		res.Components = append(res.Components, b)
	}

	for root := 0; root < n; root++ {
		if disc[root] != -1 {
			continue
		}
		disc[root], low[root] = clock, clock
		clock++
		rootChildren := 0
		stack := []bccFrame{{v: root, isRoot: true}}

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			if f.next < len(arcs[f.v]) {
				a := arcs[f.v][f.next]
				f.next++
				if a.edge == f.via {
					continue
				}
				w := a.to
				switch {
				case disc[w] == -1:
					edgeStack = append(edgeStack, stackedEdge{id: a.edge, u: f.v, w: w})
					disc[w], low[w] = clock, clock
					clock++
					stack = append(stack, bccFrame{v: w, via: a.edge})
				case disc[w] < disc[f.v]:
					// back edge to an ancestor; the reverse arc is skipped below
					edgeStack = append(edgeStack, stackedEdge{id: a.edge, u: f.v, w: w})
					low[f.v] = min(low[f.v], disc[w])
				}
				continue
			}

			done := *f
			stack = stack[:len(stack)-1]
			if done.isRoot {
				break
			}
			p := stack[len(stack)-1].v
			low[p] = min(low[p], low[done.v])
			if low[done.v] >= disc[p] {
				if stack[len(stack)-1].isRoot {
					rootChildren++
				} else {
					isCut[p] = true
				}
				emit(done.via)
			}
		}
		if rootChildren > 1 {
			isCut[root] = true
		}
	}

	for i, cut := range isCut {
		if cut {
			res.ArticulationPoints = append(res.ArticulationPoints, ids[i])
		}
	}
	return res, nil
}
