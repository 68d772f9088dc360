// SPDX-License-Identifier: MIT
//
// File: projection.go
// Role: Integer-indexed snapshots of the undirected projection, shared by the
//       decomposition, motif and clustering packages.
// Determinism:
//   - Index i is the node's insertion rank; neighbour lists are sorted ascending.

package core

import "slices"

// Adjacency is the simple undirected projection of a graph: self-loops are
// dropped, parallel and reciprocal edges collapse to one neighbour entry.
type Adjacency struct {
	IDs   []string       // index -> node id, insertion order
	Index map[string]int // node id -> index
	Adj   [][]int        // sorted, duplicate-free neighbour indices
}

// SimpleAdjacency builds the Adjacency of g.
//
// Complexity: O(V + E log E)
func SimpleAdjacency[N VertexData, E EdgeData](g *Graph[N, E]) *Adjacency {
	n := g.NodeCount()
	a := &Adjacency{
		IDs:   g.NodeIDs(),
		Index: make(map[string]int, n),
		Adj:   make([][]int, n),
	}
	for i, id := range a.IDs {
		a.Index[id] = i
	}
	for _, eid := range g.edgeOrder {
		e := g.edges[eid]
		u, v := a.Index[e.SourceID()], a.Index[e.TargetID()]
		if u == v {
			continue
		}
		a.Adj[u] = append(a.Adj[u], v)
		a.Adj[v] = append(a.Adj[v], u)
	}
	for i, nbrs := range a.Adj {
		slices.Sort(nbrs)
		a.Adj[i] = slices.Compact(nbrs)
	}
	return a
}

// Len returns the number of nodes.
func (a *Adjacency) Len() int { return len(a.IDs) }

// Degree returns the number of distinct neighbours of node i.
func (a *Adjacency) Degree(i int) int { return len(a.Adj[i]) }

// Connected reports whether i and j are adjacent.
//
// Complexity: O(log d)
func (a *Adjacency) Connected(i, j int) bool {
	_, ok := slices.BinarySearch(a.Adj[i], j)
	return ok
}

// EdgeCount returns the number of distinct undirected pairs.
func (a *Adjacency) EdgeCount() int {
	total := 0
	for _, nbrs := range a.Adj {
		total += len(nbrs)
	}
	return total / 2
}

// Common returns the sorted neighbours shared by i and j.
//
// Complexity: O(d(i) + d(j))
func (a *Adjacency) Common(i, j int) []int {
	x, y := a.Adj[i], a.Adj[j]
	var out []int
	for p, q := 0, 0; p < len(x) && q < len(y); {
		switch {
		case x[p] < y[q]:
			p++
		case x[p] > y[q]:
			q++
		default:
			out = append(out, x[p])
			p++
			q++
		}
	}
	return out
}

// Names maps indices back to node ids, preserving order.
func (a *Adjacency) Names(idx []int) []string {
	out := make([]string, len(idx))
	for k, i := range idx {
		out[k] = a.IDs[i]
	}
	return out
}
