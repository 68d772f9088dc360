// SPDX-License-Identifier: MIT
//
// File: cycle.go
// Role: Cycle detection with a witness cycle.
// Determinism:
//   - Roots are taken in node insertion order and neighbours in edge insertion
//     order, so the same graph always yields the same witness.
//
// Complexity:
//   - Time:   O(V + E)
//   - Memory: O(V)

package dfs

import (
	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// CycleResult reports whether a graph has a cycle and, if so, one witness.
type CycleResult struct {
	HasCycle bool

	// Cycle is closed: Cycle[0] == Cycle[len(Cycle)-1]. A self-loop on v
	// is reported as [v v]. Nil when HasCycle is false.
	Cycle []string
}

// DetectCycle searches g for a cycle using three-colour DFS.
//
// Directed graphs report the first back edge (an edge into a Gray vertex).
// Undirected graphs ignore only the edge a vertex was reached through, so two
// parallel edges between the same pair do form a cycle while a single edge
// does not.
func DetectCycle[N core.VertexData, E core.EdgeData](g *core.Graph[N, E]) (CycleResult, error) {
	if g == nil {
		return CycleResult{}, ErrGraphNil
	}
	f := &cycleFinder[N, E]{
		graph: g,
		state: make(map[string]int, g.NodeCount()),
		path:  make([]string, 0, g.NodeCount()),
		index: make(map[string]int, g.NodeCount()),
	}
	for _, v := range g.NodeIDs() {
		if f.state[v] != White {
			continue
		}
		if f.visit(v) {
			return CycleResult{HasCycle: true, Cycle: f.cycle}, nil
		}
	}
	return CycleResult{}, nil
}

type cycleFinder[N core.VertexData, E core.EdgeData] struct {
	graph *core.Graph[N, E]
	state map[string]int
	path  []string       // current DFS path
	index map[string]int // vertex -> position in path while Gray
	cycle []string
}

// cycleFrame is one Gray vertex on the explicit stack.
type cycleFrame[E core.EdgeData] struct {
	id    string
	via   string // edge the vertex was entered through, "" for roots
	edges []E
	next  int
}

// visit explores the tree under root on an explicit stack and reports
// whether a cycle was found. f.path mirrors the stack.
func (f *cycleFinder[N, E]) visit(root string) bool {
	stack := []cycleFrame[E]{f.enter(root, "")}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.edges) {
			f.path = f.path[:len(f.path)-1]
			delete(f.index, top.id)
			f.state[top.id] = Black
			stack = stack[:len(stack)-1]
			continue
		}
		e := top.edges[top.next]
		top.next++
		if e.EdgeID() == top.via {
			continue
		}
		nbr := core.OtherEnd(e, top.id)
		switch f.state[nbr] {
		case White:
			stack = append(stack, f.enter(nbr, e.EdgeID()))
		case Gray:
			seg := f.path[f.index[nbr]:]
			f.cycle = make([]string, 0, len(seg)+1)
			f.cycle = append(f.cycle, seg...)
			f.cycle = append(f.cycle, nbr)
			return true
		}
	}
	return false
}

func (f *cycleFinder[N, E]) enter(id, via string) cycleFrame[E] {
	f.state[id] = Gray
	f.index[id] = len(f.path)
	f.path = append(f.path, id)
	return cycleFrame[E]{id: id, via: via, edges: f.graph.IncidentEdges(id, core.Out)}
}
