// SPDX-License-Identifier: MIT

package community

import (
	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// Louvain maximises modularity by alternating local moving and aggregation.
//
// Phase 1 visits nodes in insertion order and moves each one to the
// neighbouring community with the largest modularity gain; ties keep the
// current community, otherwise the smallest community index wins. Passes
// repeat until one improves Q by at most MinImprovement or MaxIterations is
// reached. Phase 2 collapses communities into weighted super-nodes and the
// process repeats until a level improves Q by at most MinImprovement, no
// node moves, or MaxLevels is reached.
//
// Edge direction is ignored. Communities report their density.
//
// Errors: core.ErrNilGraph, core.ErrEmptyGraph, core.ErrInvalidInput (options
// or a negative weight), ctx.Err() on cancellation. A pass cap shortfall is a
// partial success: see Result.Err.
//
// Complexity: O(levels · passes · E) time, O(V + E) space.
func Louvain[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], opts ...Option) (*Result, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := core.RequireNodes(g, 1); err != nil {
		return nil, err
	}
	w, err := newWGraph(g)
	if err != nil {
		return nil, err
	}

	st := run{algorithm: "louvain", converged: true}
	assign := identity(w.n) // original node -> node of cur
	cur := w
	prevQ := cur.modularity(identity(cur.n), o.Resolution)

	for cur.total > 0 && (o.MaxLevels == 0 || st.levels < o.MaxLevels) {
		labels := identity(cur.n)
		moved, passes, converged, err := localMove(cur, labels, o)
		st.iterations += passes
		if err != nil {
			return nil, err
		}
		if !moved {
			break
		}
		st.levels++
		st.converged = st.converged && converged

		k := compact(labels)
		for i := range assign {
			assign[i] = labels[assign[i]]
		}
		q := cur.modularity(labels, o.Resolution)
		cur = cur.aggregate(labels, k)
		if q-prevQ <= o.MinImprovement || k == 1 {
			break
		}
		prevQ = q
	}
	return finish(g, assign, o, st, scoreDensity)
}

// localMove runs modularity local-moving passes over w, updating labels in
// place. It reports whether any node moved, the passes run, and whether the
// last pass fell under MinImprovement before the pass cap.
func localMove(w *wgraph, labels []int, o Options) (moved bool, passes int, converged bool, err error) {
	gamma := o.Resolution
	tot := make([]float64, w.n)
	for i := 0; i < w.n; i++ {
		tot[labels[i]] += w.deg[i]
	}
	nw := newNeighbourWeights(w.n)
	q := w.modularity(labels, gamma)

	for passes < o.MaxIterations {
		if err := o.cancelled(); err != nil {
			return moved, passes, false, err
		}
		passes++
		moves := 0
		for i := 0; i < w.n; i++ {
			ci := labels[i]
			ki := w.deg[i]
			nw.collect(w, i, labels)
			tot[ci] -= ki

			best := ci
			bestGain := nw.weight[ci] - gamma*tot[ci]*ki/w.total
			for _, c := range nw.touched {
				if c == ci {
					continue
				}
				if gain := nw.weight[c] - gamma*tot[c]*ki/w.total; gain > bestGain+gainEpsilon {
					best, bestGain = c, gain
				}
			}
			tot[best] += ki
			if best != ci {
				labels[i] = best
				moves++
			}
		}
		if moves == 0 {
			return moved, passes, true, nil
		}
		moved = true
		next := w.modularity(labels, gamma)
		gain := next - q
		q = next
		if gain <= o.MinImprovement {
			return moved, passes, true, nil
		}
	}
	return moved, passes, false, nil
}
