// SPDX-License-Identifier: MIT
//
// File: topological.go
// Role: Topological ordering of a directed graph.
// Determinism:
//   - Among vertices whose predecessors are all placed, the one inserted
//     earliest goes first. The order is therefore unique for a given graph.
//
// Complexity:
//   - Time:   O((V + E) log V)
//   - Memory: O(V)

package dfs

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext sets the cancellation context. A nil context is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for Kahn's algorithm.
type topoSorter[N core.VertexData, E core.EdgeData] struct {
	graph    *core.Graph[N, E]
	opts     topoOptions
	indegree map[string]int
	ready    rankQueue
	order    []string
}

// TopologicalSort orders every vertex of g so that u precedes v for every
// edge u→v.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - ErrUndirectedGraph (matches core.ErrInvalidInput) for undirected graphs.
//   - ErrCycleDetected if and only if g contains a cycle (a self-loop counts).
//   - ctx.Err() when the context from WithCancelContext is cancelled.
func TopologicalSort[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	n := g.NodeCount()
	t := &topoSorter[N, E]{
		graph:    g,
		opts:     opts,
		indegree: make(map[string]int, n),
		order:    make([]string, 0, n),
	}
	for _, v := range g.NodeIDs() {
		t.indegree[v] = g.Degree(v, core.In)
		if t.indegree[v] == 0 {
			t.ready = append(t.ready, rankedID{id: v, rank: g.Rank(v)})
		}
	}
	heap.Init(&t.ready)

	if err := t.drain(); err != nil {
		return nil, err
	}
	if len(t.order) < n {
		return nil, fmt.Errorf("%w: %d of %d vertices lie on or behind a cycle",
			ErrCycleDetected, n-len(t.order), n)
	}
	return t.order, nil
}

// drain repeatedly places the earliest-inserted ready vertex and releases
// its successors.
func (t *topoSorter[N, E]) drain() error {
	for t.ready.Len() > 0 {
		select {
		case <-t.opts.ctx.Done():
			return t.opts.ctx.Err()
		default:
		}

		u := heap.Pop(&t.ready).(rankedID).id
		t.order = append(t.order, u)
		for _, e := range t.graph.IncidentEdges(u, core.Out) {
			v := e.TargetID()
			t.indegree[v]--
			if t.indegree[v] == 0 {
				heap.Push(&t.ready, rankedID{id: v, rank: t.graph.Rank(v)})
			}
		}
	}
	return nil
}

// rankedID is a vertex keyed by its insertion rank.
type rankedID struct {
	id   string
	rank int
}

// rankQueue is a min-heap of rankedID by rank.
type rankQueue []rankedID

func (q rankQueue) Len() int           { return len(q) }
func (q rankQueue) Less(i, j int) bool { return q[i].rank < q[j].rank }
func (q rankQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *rankQueue) Push(x any)        { *q = append(*q, x.(rankedID)) }
func (q *rankQueue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}
