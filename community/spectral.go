// SPDX-License-Identifier: MIT

package community

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// Partition is one block of a spectral split.
type Partition struct {
	ID      int
	Members []string // insertion order
	Size    int

	// EdgeCut counts edges with exactly one endpoint in the block.
	EdgeCut int
}

// SpectralResult is the outcome of Spectral.
type SpectralResult struct {
	Partitions []Partition
	Membership map[string]int

	// Balance is the smallest block size over the largest.
	Balance float64

	Modularity float64

	// Iterations counts k-means rounds; Converged is false when the round
	// cap stopped assignments from settling.
	Iterations int
	Converged  bool
}

// Err returns a *core.ConvergenceError when k-means hit its round cap.
func (r *SpectralResult) Err() error {
	if r == nil || r.Converged {
		return nil
	}
	return &core.ConvergenceError{Algorithm: "spectral", Iterations: r.Iterations}
}

// Spectral splits g into at most k blocks using the normalised Laplacian
// L = I − D^-1/2 A D^-1/2 of the weighted undirected projection.
//
// The eigenvectors of the k smallest eigenvalues (mat.EigenSym) form an
// n×k embedding whose rows are scaled to unit length; k-means++ seeded from
// Seed then clusters the rows. Blocks that end up empty are dropped, so fewer
// than k partitions may be returned.
//
// Errors: core.ErrNilGraph, core.ErrEmptyGraph, core.ErrInvalidInput for
// k < 2 or bad options, core.ErrInsufficientNodes when the graph has fewer
// than k nodes.
//
// Complexity: O(V^3) for the eigendecomposition.
func Spectral[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], k int, opts ...Option) (*SpectralResult, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if k < 2 {
		return nil, fmt.Errorf("community: spectral needs k >= 2, got %d: %w", k, core.ErrInvalidInput)
	}
	if err := core.RequireNodes(g, k); err != nil {
		return nil, err
	}
	w, err := newWGraph(g)
	if err != nil {
		return nil, err
	}

	embedding, err := spectralEmbedding(w, k)
	if err != nil {
		return nil, err
	}
	if err := o.cancelled(); err != nil {
		return nil, err
	}
	labels, rounds, converged, err := kmeans(embedding, k, o)
	if err != nil {
		return nil, err
	}
	base, err := finish(g, labels, o, run{algorithm: "spectral", converged: converged, iterations: rounds}, scoreNone)
	if err != nil {
		return nil, err
	}

	res := &SpectralResult{
		Membership: base.Membership,
		Modularity: base.Modularity,
		Iterations: rounds,
		Converged:  converged,
	}
	cut := make([]int, len(base.Communities))
	for _, e := range g.Edges() {
		cu, cv := base.Membership[e.SourceID()], base.Membership[e.TargetID()]
		if cu != cv {
			cut[cu]++
			cut[cv]++
		}
	}
	smallest, largest := math.MaxInt, 0
	for i, c := range base.Communities {
		res.Partitions = append(res.Partitions, Partition{ID: c.ID, Members: c.Members, Size: c.Size, EdgeCut: cut[i]})
		smallest = min(smallest, c.Size)
		largest = max(largest, c.Size)
	}
	res.Balance = float64(smallest) / float64(largest)
	return res, nil
}

// spectralEmbedding returns the row-normalised eigenvectors of the k
// smallest eigenvalues of the normalised Laplacian, one row per node.
func spectralEmbedding(w *wgraph, k int) ([][]float64, error) {
	n := w.n
	inv := make([]float64, n)
	for i, d := range w.deg {
		if d > 0 {
			inv[i] = 1 / math.Sqrt(d)
		}
	}
	lap := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		if w.deg[i] > 0 {
			lap.SetSym(i, i, 1-w.loop[i]*inv[i]*inv[i])
		}
		for _, e := range w.nbrs[i] {
			if e.to > i {
				lap.SetSym(i, e.to, -e.w*inv[i]*inv[e.to])
			}
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(lap, true); !ok {
		return nil, fmt.Errorf("community: eigendecomposition failed: %w", core.ErrConvergenceFailure)
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs) // columns ordered by ascending eigenvalue

	rows := make([][]float64, n)
	for i := range rows {
		row := make([]float64, k)
		for j := 0; j < k; j++ {
			row[j] = vecs.At(i, j)
		}
		if norm := floats.Norm(row, 2); norm > 0 {
			floats.Scale(1/norm, row)
		}
		rows[i] = row
	}
	return rows, nil
}

// kmeans clusters points into k groups with k-means++ seeding and Lloyd
// rounds. Ties go to the lower centre index.
func kmeans(points [][]float64, k int, o Options) ([]int, int, bool, error) {
	rng := rand.New(rand.NewSource(o.Seed))
	n := len(points)

	centres := make([][]float64, 0, k)
	centres = append(centres, append([]float64(nil), points[rng.Intn(n)]...))
	dist := make([]float64, n)
	for len(centres) < k {
		total := 0.0
		for i, p := range points {
			d := math.Inf(1)
			for _, c := range centres {
				d = min(d, floats.Distance(p, c, 2))
			}
			dist[i] = d * d
			total += dist[i]
		}
		pick := len(centres) % n
		if total > 0 {
			target := rng.Float64() * total
			for i, d := range dist {
				if d == 0 {
					continue
				}
				pick = i
				if target -= d; target <= 0 {
					break
				}
			}
		}
		centres = append(centres, append([]float64(nil), points[pick]...))
	}

	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}
	dim := len(points[0])
	for round := 1; round <= o.MaxIterations; round++ {
		if err := o.cancelled(); err != nil {
			return nil, round - 1, false, err
		}
		changed := 0
		for i, p := range points {
			best, bestD := 0, math.Inf(1)
			for c, centre := range centres {
				if d := floats.Distance(p, centre, 2); d < bestD-gainEpsilon {
					best, bestD = c, d
				}
			}
			if labels[i] != best {
				labels[i] = best
				changed++
			}
		}
		if changed == 0 {
			return labels, round, true, nil
		}
		counts := make([]int, k)
		sums := make([][]float64, k)
		for c := range sums {
			sums[c] = make([]float64, dim)
		}
		for i, p := range points {
			counts[labels[i]]++
			floats.Add(sums[labels[i]], p)
		}
		for c := range centres {
			if counts[c] > 0 {
				floats.ScaleTo(centres[c], 1/float64(counts[c]), sums[c])
			}
		}
	}
	return labels, o.MaxIterations, false, nil
}
