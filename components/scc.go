// SPDX-License-Identifier: MIT

package components

import (
	"slices"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// tarjanState holds per-node state during Tarjan's DFS.
type tarjanState struct {
	index   int
	lowlink int
	onStack bool
}

// frame is one level of the explicit DFS stack: a node and the position of
// the next successor to examine.
type frame struct {
	node string
	succ []string
	next int
}

// StronglyConnected finds all strongly connected components using Tarjan's
// algorithm. Only outgoing edges are followed on directed graphs; on an
// undirected graph the result equals Connected.
//
// Complexity: O(V + E)
func StronglyConnected[N core.VertexData, E core.EdgeData](g *core.Graph[N, E]) (*Result, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	ids := g.NodeIDs()
	state := make(map[string]*tarjanState, len(ids))
	var stack []string
	var found [][]string
	counter := 0

	push := func(u string) frame {
		state[u] = &tarjanState{index: counter, lowlink: counter, onStack: true}
		counter++
		stack = append(stack, u)
		return frame{node: u, succ: g.Neighbors(u, core.Out)}
	}

	for _, root := range ids {
		if _, seen := state[root]; seen {
			continue
		}
		call := []frame{push(root)}
		for len(call) > 0 {
			top := &call[len(call)-1]
			if top.next < len(top.succ) {
				v := top.succ[top.next]
				top.next++
				sv, seen := state[v]
				switch {
				case !seen:
					call = append(call, push(v))
				case sv.onStack:
					su := state[top.node]
					su.lowlink = min(su.lowlink, sv.index)
				}
				continue
			}

			// all successors done: close u and propagate its lowlink
			u := top.node
			su := state[u]
			call = call[:len(call)-1]
			if len(call) > 0 {
				parent := state[call[len(call)-1].node]
				parent.lowlink = min(parent.lowlink, su.lowlink)
			}
			if su.lowlink != su.index {
				continue
			}
			var members []string
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				state[w].onStack = false
				members = append(members, w)
				if w == u {
					break
				}
			}
			found = append(found, members)
		}
	}

	return canonical(g, found), nil
}

// canonical sorts members by insertion order, orders components by their
// first member and assigns IDs.
func canonical[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], found [][]string) *Result {
	for _, members := range found {
		sortByRank(g, members)
	}
	slices.SortFunc(found, func(a, b []string) int { return g.Rank(a[0]) - g.Rank(b[0]) })

	res := &Result{
		Components: make([]Component, len(found)),
		Membership: make(map[string]int, g.NodeCount()),
	}
	for cid, members := range found {
		res.Components[cid] = Component{ID: cid, Members: members, Size: len(members)}
		for _, id := range members {
			res.Membership[id] = cid
		}
	}
	return res
}

// CondensationEdge is an edge of the condensation DAG, where each strongly
// connected component is contracted to a single node.
type CondensationEdge struct {
	From      int
	To        int
	EdgeCount int
}

// Condensation aggregates the edges of g between distinct components of r.
// Edges are reported in order of first occurrence in g.
//
// Complexity: O(E)
func Condensation[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], r *Result) []CondensationEdge {
	type key struct{ from, to int }
	pos := make(map[key]int)
	var out []CondensationEdge
	for _, e := range g.Edges() {
		from, okF := r.Membership[e.SourceID()]
		to, okT := r.Membership[e.TargetID()]
		if !okF || !okT || from == to {
			continue
		}
		k := key{from, to}
		if i, ok := pos[k]; ok {
			out[i].EdgeCount++
			continue
		}
		pos[k] = len(out)
		out = append(out, CondensationEdge{From: from, To: to, EdgeCount: 1})
	}
	return out
}
