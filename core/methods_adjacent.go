// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighbourhood queries by Direction: IncidentEdges, Neighbors, Degree.
// Determinism:
//   - Results follow edge insertion order (out-list first, then in-list for Both).
//   - On undirected graphs Out and In behave as Both.

package core

import "github.com/charmbracelet/log"

// effective maps a requested direction onto the graph's semantics.
func (g *Graph[N, E]) effective(dir Direction) Direction {
	if !g.directed {
		return Both
	}
	return dir
}

// IncidentEdges returns the edges incident to id in direction dir. A self-loop
// appears once. Unknown ids yield nil.
//
// Complexity: O(d)
func (g *Graph[N, E]) IncidentEdges(id string, dir Direction) []E {
	ids := g.incidentIDs(id, g.effective(dir))
	if len(ids) == 0 {
		return nil
	}
	out := make([]E, 0, len(ids))
	for _, eid := range ids {
		out = append(out, g.edges[eid])
	}
	return out
}

func (g *Graph[N, E]) incidentIDs(id string, dir Direction) []string {
	switch dir {
	case Out:
		return g.out[id]
	case In:
		return g.in[id]
	}
	outs, ins := g.out[id], g.in[id]
	if len(ins) == 0 {
		return outs
	}
	ids := make([]string, 0, len(outs)+len(ins))
	ids = append(ids, outs...)
	for _, eid := range ins {
		// self-loops are already listed in outs
		if g.edges[eid].SourceID() == id {
			continue
		}
		ids = append(ids, eid)
	}
	return ids
}

// Neighbors returns the unique ids adjacent to id in direction dir, in
// first-seen order. A self-loop lists id itself.
//
// Complexity: O(d)
func (g *Graph[N, E]) Neighbors(id string, dir Direction) []string {
	ids := g.incidentIDs(id, g.effective(dir))
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, eid := range ids {
		nbr := OtherEnd(g.edges[eid], id)
		if _, dup := seen[nbr]; dup {
			continue
		}
		seen[nbr] = struct{}{}
		out = append(out, nbr)
	}
	return out
}

// Degree counts edge endpoints at id in direction dir. With Both (and on
// undirected graphs) a self-loop counts twice.
//
// Complexity: O(1)
func (g *Graph[N, E]) Degree(id string, dir Direction) int {
	switch g.effective(dir) {
	case Out:
		return len(g.out[id])
	case In:
		return len(g.in[id])
	default:
		return len(g.out[id]) + len(g.in[id])
	}
}

// Logger returns the logger the graph was built with.
func (g *Graph[N, E]) Logger() *log.Logger { return g.logger }
