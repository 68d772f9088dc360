// SPDX-License-Identifier: MIT

package quality

import (
	"fmt"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// Modularity scores partition against the configuration null model at the
// given resolution γ (1 is the classic definition). A graph without edge
// weight scores 0.
//
// Errors: core.ErrNilGraph, core.ErrInvalidInput for a negative resolution,
// an invalid partition or a negative edge weight.
//
// Complexity: O(V + E)
func Modularity[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], partition [][]string, resolution float64) (float64, error) {
	membership, err := validate(g, partition)
	if err != nil {
		return 0, err
	}
	if resolution < 0 {
		return 0, fmt.Errorf("%w: resolution must be non-negative, got %v", core.ErrInvalidInput, resolution)
	}

	// nodes outside the partition get their own label
	next := len(partition)
	for _, id := range g.NodeIDs() {
		if _, ok := membership[id]; !ok {
			membership[id] = next
			next++
		}
	}

	internal := make([]float64, next) // Σ A_ij inside each community, i.e. 2x internal weight
	degree := make([]float64, next)   // Σ k_i per community
	var m2 float64                    // 2m
	for _, e := range g.Edges() {
		w, err := edgeWeight(e)
		if err != nil {
			return 0, err
		}
		cu, cv := membership[e.SourceID()], membership[e.TargetID()]
		degree[cu] += w
		degree[cv] += w
		m2 += 2 * w
		if cu == cv {
			internal[cu] += 2 * w
		}
	}
	if m2 == 0 {
		return 0, nil
	}

	var q float64
	for c := range internal {
		q += internal[c]/m2 - resolution*(degree[c]/m2)*(degree[c]/m2)
	}
	return q, nil
}

// Conductance returns cut(S) / min(vol(S), vol(V\S)) over edge weights, with
// orientation ignored. It is 0 when that minimum is 0.
//
// Complexity: O(E)
func Conductance[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], set []string) (float64, error) {
	in, err := nodeSet(g, set)
	if err != nil {
		return 0, err
	}
	var cut, volIn, volOut float64
	for _, e := range g.Edges() {
		w, err := edgeWeight(e)
		if err != nil {
			return 0, err
		}
		su, sv := in[e.SourceID()], in[e.TargetID()]
		switch {
		case su && sv:
			volIn += 2 * w
		case !su && !sv:
			volOut += 2 * w
		default:
			cut += w
			volIn += w
			volOut += w
		}
	}
	return ratio(cut, min(volIn, volOut)), nil
}

// Density returns the fraction of possible node pairs inside set that are
// joined by at least one edge.
//
// Complexity: O(E)
func Density[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], set []string) (float64, error) {
	in, err := nodeSet(g, set)
	if err != nil {
		return 0, err
	}
	return density(g, in, len(in)), nil
}

func density[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], in map[string]bool, size int) float64 {
	if size < 2 {
		return 0
	}
	pairs := make(map[[2]string]struct{})
	for _, e := range g.Edges() {
		u, v := e.SourceID(), e.TargetID()
		if u == v || !in[u] || !in[v] {
			continue
		}
		if !g.Directed() && g.Rank(v) < g.Rank(u) {
			u, v = v, u
		}
		pairs[[2]string{u, v}] = struct{}{}
	}
	possible := float64(size) * float64(size-1)
	if !g.Directed() {
		possible /= 2
	}
	return float64(len(pairs)) / possible
}

// Coverage returns the fraction of edges whose endpoints lie in the same
// part. Edges touching a node outside the partition are not covered. A graph
// without edges scores 0.
//
// Complexity: O(V + E)
func Coverage[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], partition [][]string) (float64, error) {
	membership, err := validate(g, partition)
	if err != nil {
		return 0, err
	}
	total := g.EdgeCount()
	if total == 0 {
		return 0, nil
	}
	covered := 0
	for _, e := range g.Edges() {
		cu, okU := membership[e.SourceID()]
		cv, okV := membership[e.TargetID()]
		if okU && okV && cu == cv {
			covered++
		}
	}
	return float64(covered) / float64(total), nil
}

// SetScore bundles the per-part scores reported by clustering results.
type SetScore struct {
	Density     float64
	Conductance float64
}

// Scores computes Density and Conductance for every part in one pass over
// the edges.
//
// Complexity: O(V + E)
func Scores[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], partition [][]string) ([]SetScore, error) {
	membership, err := validate(g, partition)
	if err != nil {
		return nil, err
	}
	k := len(partition)
	cut := make([]float64, k)
	vol := make([]float64, k)
	pairs := make([]map[[2]string]struct{}, k)
	var total float64
	for _, e := range g.Edges() {
		w, err := edgeWeight(e)
		if err != nil {
			return nil, err
		}
		total += 2 * w
		u, v := e.SourceID(), e.TargetID()
		cu, okU := membership[u]
		cv, okV := membership[v]
		if okU {
			vol[cu] += w
		}
		if okV {
			vol[cv] += w
		}
		if okU && okV && cu == cv {
			if u == v {
				continue
			}
			if !g.Directed() && g.Rank(v) < g.Rank(u) {
				u, v = v, u
			}
			if pairs[cu] == nil {
				pairs[cu] = make(map[[2]string]struct{})
			}
			pairs[cu][[2]string{u, v}] = struct{}{}
			continue
		}
		if okU {
			cut[cu] += w
		}
		if okV {
			cut[cv] += w
		}
	}

	sizes := make([]int, k)
	for _, c := range membership {
		sizes[c]++
	}
	out := make([]SetScore, k)
	for c := range out {
		out[c].Conductance = ratio(cut[c], min(vol[c], total-vol[c]))
		if n := sizes[c]; n >= 2 {
			possible := float64(n) * float64(n-1)
			if !g.Directed() {
				possible /= 2
			}
			out[c].Density = float64(len(pairs[c])) / possible
		}
	}
	return out, nil
}

func ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}
