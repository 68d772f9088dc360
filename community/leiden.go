// SPDX-License-Identifier: MIT

package community

import (
	"math/rand"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// Leiden improves on Louvain with a refinement phase between local moving
// and aggregation.
//
// Refinement splits every community into sub-communities built by merging
// well-connected singletons into well-connected neighbouring sub-communities
// of the same community, visiting nodes in an order drawn from Seed.
// Aggregation then collapses the refined partition while the next level
// starts from the unrefined one. Every returned community induces a
// connected subgraph.
//
// Edge direction is ignored. Communities report their conductance.
//
// Errors: as Louvain.
//
// Complexity: O(levels · passes · E) time, O(V + E) space.
func Leiden[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], opts ...Option) (*Result, error) {
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

	rng := rand.New(rand.NewSource(o.Seed))
	st := run{algorithm: "leiden", converged: true}
	assign := identity(w.n)
	cur := w
	labels := identity(cur.n) // community of each node of cur
	prevQ := cur.modularity(labels, o.Resolution)

	for cur.total > 0 && (o.MaxLevels == 0 || st.levels < o.MaxLevels) {
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
		q := cur.modularity(labels, o.Resolution)
		refined := refine(cur, labels, k, o.Resolution, rng)
		kr := compact(refined)
		if kr == cur.n || q-prevQ <= o.MinImprovement {
			break
		}
		prevQ = q

		nextLabels := make([]int, kr)
		for i := 0; i < cur.n; i++ {
			nextLabels[refined[i]] = labels[i]
		}
		for i := range assign {
			assign[i] = refined[assign[i]]
		}
		cur = cur.aggregate(refined, kr)
		labels = nextLabels
	}

	final := make([]int, len(assign))
	for i, node := range assign {
		final[i] = labels[node]
	}
	splitDisconnected(core.SimpleAdjacency(g), final)
	return finish(g, final, o, st, scoreConductance)
}

// refine returns a sub-partition of labels (classes 0..k-1). Only nodes still
// in singleton sub-communities move, and only into a sub-community of the
// same community they are linked to, so every sub-community stays connected.
func refine(w *wgraph, labels []int, k int, gamma float64, rng *rand.Rand) []int {
	refined := identity(w.n)
	size := make([]int, w.n)
	subTot := make([]float64, w.n)
	subExt := make([]float64, w.n) // weight from the sub-community to the rest of its community
	commTot := make([]float64, k)
	for i := 0; i < w.n; i++ {
		size[i] = 1
		subTot[i] = w.deg[i]
		commTot[labels[i]] += w.deg[i]
		for _, e := range w.nbrs[i] {
			if labels[e.to] == labels[i] {
				subExt[i] += e.w
			}
		}
	}
	wellConnected := func(ext, tot float64, c int) bool {
		return ext >= gamma*tot*(commTot[c]-tot)/w.total
	}

	nw := newNeighbourWeights(w.n)
	for _, v := range rng.Perm(w.n) {
		sv := refined[v]
		c := labels[v]
		if size[sv] != 1 || !wellConnected(subExt[sv], subTot[sv], c) {
			continue
		}
		nw.collect(w, v, refined)

		best, bestGain := -1, 0.0
		for _, s := range nw.touched {
			if s == sv || labels[s] != c || !wellConnected(subExt[s], subTot[s], c) {
				continue
			}
			if gain := nw.weight[s] - gamma*w.deg[v]*subTot[s]/w.total; gain > bestGain+gainEpsilon {
				best, bestGain = s, gain
			}
		}
		if best < 0 {
			continue
		}
		subExt[best] += subExt[sv] - 2*nw.weight[best]
		subTot[best] += subTot[sv]
		size[best]++
		size[sv], subTot[sv], subExt[sv] = 0, 0, 0
		refined[v] = best
	}
	return refined
}

// splitDisconnected gives every connected piece of a label class its own
// label. Splitting never lowers modularity.
func splitDisconnected(a *core.Adjacency, labels []int) {
	next := 0
	for _, l := range labels {
		next = max(next, l+1)
	}
	seenLabel := make(map[int]bool)
	visited := make([]bool, a.Len())
	for root := 0; root < a.Len(); root++ {
		if visited[root] {
			continue
		}
		l := labels[root]
		fresh := l
		if seenLabel[l] {
			fresh = next
			next++
		}
		seenLabel[l] = true
		queue := []int{root}
		visited[root] = true
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			labels[u] = fresh
			for _, v := range a.Adj[u] {
				if !visited[v] && labels[v] == l {
					visited[v] = true
					queue = append(queue, v)
				}
			}
		}
	}
}
