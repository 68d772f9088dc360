// SPDX-License-Identifier: MIT

package motif

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// ErrUndirectedGraph is returned by the citation motifs on an undirected
// graph. It matches core.ErrInvalidInput.
var ErrUndirectedGraph = fmt.Errorf("motif: citation motifs need a directed graph: %w", core.ErrInvalidInput)

// Pair is two works linked through shared citations.
type Pair struct {
	// A precedes B in insertion order.
	A, B string

	// Count is len(Common).
	Count int

	// Common lists, in insertion order, the works citing both (co-citation)
	// or the references cited by both (bibliographic coupling).
	Common []string
}

// Option configures the citation motifs.
type Option func(*options)

type options struct {
	relations map[string]struct{}
}

// WithRelation restricts the citation motifs to edges whose relation is one
// of rels. By default every edge counts as a citation.
func WithRelation(rels ...string) Option {
	return func(o *options) {
		if o.relations == nil {
			o.relations = make(map[string]struct{}, len(rels))
		}
		for _, r := range rels {
			o.relations[r] = struct{}{}
		}
	}
}

// CoCitations returns the pairs of nodes cited together by at least minCount
// distinct citing nodes.
//
// Errors: core.ErrNilGraph, ErrUndirectedGraph, core.ErrInvalidInput for
// minCount < 1.
//
// Complexity: O(Σ out-degree²)
func CoCitations[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], minCount int, opts ...Option) ([]Pair, error) {
	return pairsThrough(g, minCount, core.Out, opts)
}

// BibliographicCoupling returns the pairs of nodes that both cite at least
// minShared common targets.
//
// Errors: as CoCitations.
//
// Complexity: O(Σ in-degree²)
func BibliographicCoupling[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], minShared int, opts ...Option) ([]Pair, error) {
	return pairsThrough(g, minShared, core.In, opts)
}

// pairsThrough groups, for every pivot node, its distinct neighbours in dir
// and counts each neighbour pair once per pivot.
func pairsThrough[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], minCount int, dir core.Direction, opts []Option) ([]Pair, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}
	if minCount < 1 {
		return nil, fmt.Errorf("motif: threshold must be >= 1, got %d: %w", minCount, core.ErrInvalidInput)
	}
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	type key struct{ a, b string }
	common := make(map[key][]string)
	var order []key

	for _, pivot := range g.NodeIDs() {
		seen := make(map[string]bool)
		var ends []string
		for _, e := range g.IncidentEdges(pivot, dir) {
			if !cfg.accepts(e) {
				continue
			}
			other := core.OtherEnd(e, pivot)
			if other == pivot || seen[other] {
				continue
			}
			seen[other] = true
			ends = append(ends, other)
		}
		sortByRank(g, ends)
		for i := range ends {
			for j := i + 1; j < len(ends); j++ {
				k := key{ends[i], ends[j]}
				if _, ok := common[k]; !ok {
					order = append(order, k)
				}
				common[k] = append(common[k], pivot)
			}
		}
	}

	var out []Pair
	for _, k := range order {
		via := common[k]
		if len(via) < minCount {
			continue
		}
		out = append(out, Pair{A: k.a, B: k.b, Count: len(via), Common: via})
	}
	slices.SortFunc(out, func(x, y Pair) int {
		if c := cmp.Compare(y.Count, x.Count); c != 0 {
			return c
		}
		if c := cmp.Compare(g.Rank(x.A), g.Rank(y.A)); c != 0 {
			return c
		}
		return cmp.Compare(g.Rank(x.B), g.Rank(y.B))
	})
	return out, nil
}

func (o options) accepts(e core.EdgeData) bool {
	if o.relations == nil {
		return true
	}
	rel, ok := core.PropertyOf(e, "relation")
	if !ok {
		return false
	}
	s, _ := rel.(string)
	_, hit := o.relations[s]
	return hit
}

// sortByRank orders ids by node insertion order.
func sortByRank[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], ids []string) {
	slices.SortFunc(ids, func(a, b string) int { return g.Rank(a) - g.Rank(b) })
}
