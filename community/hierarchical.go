// SPDX-License-Identifier: MIT

package community

import (
	"fmt"
	"math"
	"strings"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// Linkage selects how the distance between two clusters is derived from the
// distances between their members.
type Linkage int

const (
	// Single uses the closest pair of members.
	Single Linkage = iota
	// Complete uses the farthest pair of members.
	Complete
	// Average uses the mean over all member pairs.
	Average
)

// String returns the lowercase name of the linkage.
func (l Linkage) String() string {
	switch l {
	case Single:
		return "single"
	case Complete:
		return "complete"
	case Average:
		return "average"
	default:
		return "unknown"
	}
}

// ParseLinkage maps "single", "complete" or "average" to a Linkage.
func ParseLinkage(s string) (Linkage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return Single, nil
	case "complete":
		return Complete, nil
	case "average":
		return Average, nil
	}
	return 0, fmt.Errorf("community: unknown linkage %q: %w", s, core.ErrInvalidInput)
}

// Merge joins two clusters. Cluster ids below len(Leaves) are leaves; merge t
// creates cluster len(Leaves)+t.
type Merge struct {
	Left, Right int
	Distance    float64
	Size        int // leaves under the new cluster
}

// Dendrogram is the merge tree built by Hierarchical.
type Dendrogram struct {
	Leaves  []string // insertion order
	Merges  []Merge
	Heights []float64 // Merges[t].Distance, non-decreasing
}

// Hierarchical runs agglomerative clustering from singletons, always merging
// the closest pair of clusters under linkage. Node distance is the hop count
// on the undirected projection; unreachable pairs are len(nodes) apart.
// Among equally close pairs the one with the lowest cluster positions merges
// first.
//
// Errors: core.ErrNilGraph, core.ErrEmptyGraph, core.ErrInvalidInput for an
// unknown linkage or bad options, ctx.Err() on cancellation.
//
// Complexity: O(V^3) time, O(V^2) space.
func Hierarchical[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], linkage Linkage, opts ...Option) (*Dendrogram, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if linkage < Single || linkage > Average {
		return nil, fmt.Errorf("community: unknown linkage %d: %w", linkage, core.ErrInvalidInput)
	}
	if err := core.RequireNodes(g, 1); err != nil {
		return nil, err
	}

	a := core.SimpleAdjacency(g)
	n := a.Len()
	dist := hopDistances(a)

	d := &Dendrogram{Leaves: a.IDs}
	active := make([]bool, n)
	cluster := make([]int, n)
	size := make([]int, n)
	for i := range active {
		active[i], cluster[i], size[i] = true, i, 1
	}

	for t := 0; t < n-1; t++ {
		if err := o.cancelled(); err != nil {
			return nil, err
		}
		bi, bj, best := -1, -1, math.Inf(1)
		for i := 0; i < n; i++ {
			if !active[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if active[j] && dist[i][j] < best {
					bi, bj, best = i, j, dist[i][j]
				}
			}
		}

		for x := 0; x < n; x++ {
			if !active[x] || x == bi || x == bj {
				continue
			}
			var nd float64
			switch linkage {
			case Single:
				nd = min(dist[bi][x], dist[bj][x])
			case Complete:
				nd = max(dist[bi][x], dist[bj][x])
			case Average:
				nd = (float64(size[bi])*dist[bi][x] + float64(size[bj])*dist[bj][x]) / float64(size[bi]+size[bj])
			}
			dist[bi][x], dist[x][bi] = nd, nd
		}

		merged := size[bi] + size[bj]
		d.Merges = append(d.Merges, Merge{Left: cluster[bi], Right: cluster[bj], Distance: best, Size: merged})
		d.Heights = append(d.Heights, best)
		cluster[bi], size[bi] = n+t, merged
		active[bj] = false
	}
	return d, nil
}

// hopDistances runs a BFS from every node.
func hopDistances(a *core.Adjacency) [][]float64 {
	n := a.Len()
	unreachable := float64(n)
	dist := make([][]float64, n)
	queue := make([]int, 0, n)
	for s := 0; s < n; s++ {
		row := make([]float64, n)
		for i := range row {
			row[i] = -1
		}
		row[s] = 0
		queue = append(queue[:0], s)
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			for _, v := range a.Adj[u] {
				if row[v] < 0 {
					row[v] = row[u] + 1
					queue = append(queue, v)
				}
			}
		}
		for i := range row {
			if row[i] < 0 {
				row[i] = unreachable
			}
		}
		dist[s] = row
	}
	return dist
}

// CutAtK returns the partition with exactly k clusters, obtained by applying
// the first len(Leaves)-k merges. Clusters are ordered by their first leaf.
//
// Errors: core.ErrInvalidInput when k is outside [1, len(Leaves)].
func (d *Dendrogram) CutAtK(k int) ([][]string, error) {
	n := len(d.Leaves)
	if k < 1 || k > n {
		return nil, fmt.Errorf("community: cut needs 1 <= k <= %d, got %d: %w", n, k, core.ErrInvalidInput)
	}
	return d.cut(func(t int, _ Merge) bool { return t < n-k }), nil
}

// CutAtHeight returns the partition formed by every merge at distance <= h.
func (d *Dendrogram) CutAtHeight(h float64) [][]string {
	return d.cut(func(_ int, m Merge) bool { return m.Distance <= h })
}

// cut unions the leaves of every accepted merge.
func (d *Dendrogram) cut(accept func(t int, m Merge) bool) [][]string {
	n := len(d.Leaves)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}

	rep := make([]int, n+len(d.Merges)) // cluster id -> a leaf under it
	for i := 0; i < n; i++ {
		rep[i] = i
	}
	for t, m := range d.Merges {
		rep[n+t] = rep[m.Left]
		if !accept(t, m) {
			continue
		}
		ra, rb := find(rep[m.Left]), find(rep[m.Right])
		if ra != rb {
			parent[max(ra, rb)] = min(ra, rb)
		}
	}

	index := make(map[int]int)
	var out [][]string
	for i, id := range d.Leaves {
		r := find(i)
		c, ok := index[r]
		if !ok {
			c = len(out)
			index[r] = c
			out = append(out, nil)
		}
		out[c] = append(out[c], id)
	}
	return out
}
