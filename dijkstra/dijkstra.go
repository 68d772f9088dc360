// SPDX-License-Identifier: MIT
// Package dijkstra implements Dijkstra's shortest-path algorithm with
// pluggable weights and pre-search filters.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"slices"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// ShortestPath finds a minimum-weight path from source to target.
//
// ShortestPath(g, s, s) is always the one-node path of distance 0. An
// unreachable target is reported through Path.Found, not an error.
//
// Errors:
//   - ErrNilGraph for a nil graph.
//   - ErrVertexNotFound (matches core.ErrNodeNotFound) for an absent endpoint.
//   - ErrBadOption or ErrNegativeWeight (both match core.ErrInvalidInput).
//   - ctx.Err() on cancellation.
//
// Complexity: O((V + E) log V)
func ShortestPath[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], source, target string, opts ...Option) (Path, error) {
	unreachable := Path{Distance: math.Inf(1)}
	if g == nil {
		return unreachable, ErrNilGraph
	}
	if !g.HasNode(target) {
		return unreachable, fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}
	r, err := newRunner(g, source, opts)
	if err != nil {
		return unreachable, err
	}
	if source == target {
		return Path{Found: true, Nodes: []string{source}, Edges: []string{}, Distance: 0}, nil
	}
	if err := r.run(target); err != nil {
		return unreachable, err
	}
	return r.pathTo(target), nil
}

// Distances computes shortest distances from source to every node.
// Unreached nodes map to +Inf. prev maps each reached non-source node to its
// predecessor on a shortest path.
//
// Complexity: O((V + E) log V)
func Distances[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], source string, opts ...Option) (map[string]float64, map[string]string, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	r, err := newRunner(g, source, opts)
	if err != nil {
		return nil, nil, err
	}
	if err := r.run(""); err != nil {
		return nil, nil, err
	}
	dist := make(map[string]float64, g.NodeCount())
	for _, id := range g.NodeIDs() {
		if d, ok := r.dist[id]; ok && r.settled[id] {
			dist[id] = d
		} else {
			dist[id] = math.Inf(1)
		}
	}
	prev := make(map[string]string, len(r.prev))
	for v, step := range r.prev {
		if r.settled[v] {
			prev[v] = step.from
		}
	}
	return dist, prev, nil
}

// step records how a vertex was reached.
type step struct {
	from string
	edge string
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[N core.VertexData, E core.EdgeData] struct {
	g       *core.Graph[N, E]
	opts    Options
	source  string
	weight  map[string]float64 // resolved weight of every usable edge
	dist    map[string]float64
	prev    map[string]step
	settled map[string]bool
	pq      nodePQ
}

// newRunner validates inputs and resolves the usable edges and their weights.
func newRunner[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], source string, opts []Option) (*runner[N, E], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}

	weightOf, err := resolveWeight[E](cfg)
	if err != nil {
		return nil, err
	}
	keep, err := resolveFilter(g, cfg)
	if err != nil {
		return nil, err
	}

	weights := make(map[string]float64, g.EdgeCount())
	for _, e := range g.Edges() {
		if !keep(e) {
			continue
		}
		w := weightOf(e)
		if w < 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("%w: edge %q (%s→%s) weight=%v",
				ErrNegativeWeight, e.EdgeID(), e.SourceID(), e.TargetID(), w)
		}
		weights[e.EdgeID()] = w
	}

	n := g.NodeCount()
	return &runner[N, E]{
		g:       g,
		opts:    cfg,
		source:  source,
		weight:  weights,
		dist:    make(map[string]float64, n),
		prev:    make(map[string]step, n),
		settled: make(map[string]bool, n),
	}, nil
}

// resolveWeight picks the weight source by precedence.
func resolveWeight[E core.EdgeData](cfg Options) (func(E) float64, error) {
	switch fn := cfg.weightFn.(type) {
	case nil:
	case func(E) float64:
		return fn, nil
	case func(core.EdgeData) float64:
		return func(e E) float64 { return fn(e) }, nil
	default:
		return nil, fmt.Errorf("%w: weight function type %T does not match the edge payload", ErrBadOption, fn)
	}
	if key := cfg.WeightProperty; key != "" {
		invert := cfg.InvertWeight
		return func(e E) float64 {
			v, ok := core.NumericProperty(e, key)
			if !ok {
				return core.DefaultWeight
			}
			if invert {
				return 1 / math.Max(v, Epsilon)
			}
			return v
		}, nil
	}
	return core.WeightOf[E], nil
}

// resolveFilter combines node-type and edge filters into one edge predicate.
func resolveFilter[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], cfg Options) (func(E) bool, error) {
	preds := make([]func(E) bool, 0, len(cfg.filters))
	for _, raw := range cfg.filters {
		switch f := raw.(type) {
		case func(E) bool:
			preds = append(preds, f)
		case EdgePredicate:
			preds = append(preds, func(e E) bool { return f(e) })
		default:
			return nil, fmt.Errorf("%w: edge filter type %T does not match the edge payload", ErrBadOption, f)
		}
	}
	var typed func(id string) bool
	if len(cfg.NodeTypes) > 0 {
		allowed := slices.Clone(cfg.NodeTypes)
		typed = func(id string) bool {
			n, _ := g.Node(id)
			return slices.Contains(allowed, core.TypeOf(n))
		}
	}
	return func(e E) bool {
		if typed != nil && (!typed(e.SourceID()) || !typed(e.TargetID())) {
			return false
		}
		for _, p := range preds {
			if !p(e) {
				return false
			}
		}
		return true
	}, nil
}

// run settles vertices in order of distance, stopping early once target
// (when non-empty) is settled.
func (r *runner[N, E]) run(target string) error {
	r.dist[r.source] = 0
	heap.Push(&r.pq, &nodeItem{id: r.source, dist: 0, rank: r.g.Rank(r.source)})

	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.settled[u] || item.dist > r.dist[u] {
			continue
		}
		if item.dist > r.opts.MaxDistance {
			break
		}
		r.settled[u] = true
		if u == target {
			return nil
		}
		r.relax(u)
	}
	return nil
}

// relax improves the tentative distance of every neighbour of u reachable
// through a usable edge. Only strict improvements replace a predecessor, so
// the first-inserted edge wins ties.
func (r *runner[N, E]) relax(u string) {
	du := r.dist[u]
	for _, e := range r.g.IncidentEdges(u, r.opts.Direction) {
		w, ok := r.weight[e.EdgeID()]
		if !ok {
			continue
		}
		v := core.OtherEnd(e, u)
		if r.settled[v] {
			continue
		}
		nd := du + w
		if nd > r.opts.MaxDistance {
			continue
		}
		if cur, seen := r.dist[v]; seen && nd >= cur {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = step{from: u, edge: e.EdgeID()}
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd, rank: r.g.Rank(v)})
	}
}

// pathTo rebuilds the settled path to target.
func (r *runner[N, E]) pathTo(target string) Path {
	if !r.settled[target] {
		return Path{Nodes: []string{}, Edges: []string{}, Distance: math.Inf(1)}
	}
	var nodes, edges []string
	for cur := target; cur != r.source; {
		st := r.prev[cur]
		nodes = append(nodes, cur)
		edges = append(edges, st.edge)
		cur = st.from
	}
	nodes = append(nodes, r.source)
	slices.Reverse(nodes)
	slices.Reverse(edges)
	return Path{Found: true, Nodes: nodes, Edges: edges, Distance: r.dist[target]}
}

// nodeItem is a vertex with a tentative distance.
type nodeItem struct {
	id   string
	dist float64
	rank int
}

// nodePQ is a min-heap of *nodeItem ordered by distance, then insertion rank.
// Stale entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].rank < pq[j].rank
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
