// SPDX-License-Identifier: MIT

package community

import (
	"fmt"
	"math"
	"slices"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// wedge is a weighted link to another node.
type wedge struct {
	to int
	w  float64
}

// wgraph is the weighted undirected projection used by the modularity
// routines. Index i is the node's insertion rank at level 0 and the
// community's first-occurrence order at later levels.
type wgraph struct {
	n     int
	nbrs  [][]wedge // sorted by to, merged, no self entries
	loop  []float64 // A_ii; a self-loop of weight w contributes 2w
	deg   []float64 // Σ_j A_ij including the loop
	total float64   // Σ deg = 2m
}

// newWGraph projects g. Parallel and reciprocal edges add up.
func newWGraph[N core.VertexData, E core.EdgeData](g *core.Graph[N, E]) (*wgraph, error) {
	n := g.NodeCount()
	acc := make([]map[int]float64, n)
	w := &wgraph{n: n, loop: make([]float64, n), deg: make([]float64, n)}
	for _, e := range g.Edges() {
		x := core.WeightOf(e)
		if x < 0 || math.IsInf(x, 1) {
			return nil, fmt.Errorf("community: edge %q has weight %v: %w", e.EdgeID(), x, core.ErrInvalidInput)
		}
		u, v := g.Rank(e.SourceID()), g.Rank(e.TargetID())
		if u == v {
			w.loop[u] += 2 * x
			continue
		}
		for _, p := range [2][2]int{{u, v}, {v, u}} {
			if acc[p[0]] == nil {
				acc[p[0]] = make(map[int]float64)
			}
			acc[p[0]][p[1]] += x
		}
	}
	w.nbrs = make([][]wedge, n)
	for i, m := range acc {
		w.nbrs[i] = sortedEdges(m)
	}
	w.finishDegrees()
	return w, nil
}

func sortedEdges(m map[int]float64) []wedge {
	out := make([]wedge, 0, len(m))
	for to, x := range m {
		out = append(out, wedge{to: to, w: x})
	}
	slices.SortFunc(out, func(a, b wedge) int { return a.to - b.to })
	return out
}

func (w *wgraph) finishDegrees() {
	w.total = 0
	for i := 0; i < w.n; i++ {
		d := w.loop[i]
		for _, e := range w.nbrs[i] {
			d += e.w
		}
		w.deg[i] = d
		w.total += d
	}
}

// aggregate collapses every label class (labels in [0, k)) into one node.
// Internal weight becomes the super-node's loop, so degrees and modularity
// carry over unchanged.
func (w *wgraph) aggregate(labels []int, k int) *wgraph {
	next := &wgraph{n: k, loop: make([]float64, k), deg: make([]float64, k), nbrs: make([][]wedge, k)}
	acc := make([]map[int]float64, k)
	for i := 0; i < w.n; i++ {
		ci := labels[i]
		next.loop[ci] += w.loop[i]
		for _, e := range w.nbrs[i] {
			cj := labels[e.to]
			if ci == cj {
				next.loop[ci] += e.w
				continue
			}
			if acc[ci] == nil {
				acc[ci] = make(map[int]float64)
			}
			acc[ci][cj] += e.w
		}
	}
	for c, m := range acc {
		next.nbrs[c] = sortedEdges(m)
	}
	next.finishDegrees()
	return next
}

// modularity evaluates Q for labels at resolution gamma.
func (w *wgraph) modularity(labels []int, gamma float64) float64 {
	if w.total == 0 {
		return 0
	}
	in := make(map[int]float64)
	tot := make(map[int]float64)
	for i := 0; i < w.n; i++ {
		c := labels[i]
		tot[c] += w.deg[i]
		in[c] += w.loop[i]
		for _, e := range w.nbrs[i] {
			if labels[e.to] == c {
				in[c] += e.w
			}
		}
	}
	q := 0.0
	for c, t := range tot {
		q += in[c]/w.total - gamma*(t/w.total)*(t/w.total)
	}
	return q
}

// identity returns labels 0..n-1.
func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// compact relabels in place to 0..k-1 by first occurrence and returns k.
func compact(labels []int) int {
	remap := make(map[int]int)
	for i, l := range labels {
		c, ok := remap[l]
		if !ok {
			c = len(remap)
			remap[l] = c
		}
		labels[i] = c
	}
	return len(remap)
}

// neighbourWeights accumulates, for node i, the link weight into each label
// class other than i itself. touched lists the classes seen, ascending.
type neighbourWeights struct {
	weight  []float64
	mark    []bool
	touched []int
}

func newNeighbourWeights(n int) *neighbourWeights {
	return &neighbourWeights{weight: make([]float64, n), mark: make([]bool, n)}
}

func (nw *neighbourWeights) collect(w *wgraph, i int, labels []int) {
	for _, c := range nw.touched {
		nw.weight[c] = 0
		nw.mark[c] = false
	}
	nw.touched = nw.touched[:0]
	for _, e := range w.nbrs[i] {
		c := labels[e.to]
		if !nw.mark[c] {
			nw.mark[c] = true
			nw.touched = append(nw.touched, c)
		}
		nw.weight[c] += e.w
	}
	slices.Sort(nw.touched)
}
