// SPDX-License-Identifier: MIT

package community

import (
	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// LabelPropagation lets every node adopt the label carrying the most link
// weight among its neighbours. Nodes update in place, in insertion order;
// ties go to the lowest label. Sweeps stop once no label changes or after
// MaxIterations sweeps.
//
// The routine optimises no explicit objective, so community density and
// conductance are left at 0. Modularity is still reported.
//
// Errors: as Louvain.
//
// Complexity: O(sweeps · E)
func LabelPropagation[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], opts ...Option) (*Result, error) {
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

	labels := identity(w.n)
	nw := newNeighbourWeights(w.n)
	st := run{algorithm: "label-propagation", levels: 1}

	for st.iterations < o.MaxIterations {
		if err := o.cancelled(); err != nil {
			return nil, err
		}
		st.iterations++
		changed := 0
		for i := 0; i < w.n; i++ {
			nw.collect(w, i, labels)
			if len(nw.touched) == 0 {
				continue
			}
			best := nw.touched[0]
			for _, l := range nw.touched[1:] {
				if nw.weight[l] > nw.weight[best]+gainEpsilon {
					best = l
				}
			}
			if best != labels[i] {
				labels[i] = best
				changed++
			}
		}
		if changed == 0 {
			st.converged = true
			break
		}
	}
	return finish(g, labels, o, st, scoreNone)
}
