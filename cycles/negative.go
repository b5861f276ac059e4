package cycles

import (
	"github.com/mbelenko/grafo/core"
)

// NegativeCycle searches g for a cycle of negative total weight and
// returns a witness: the cycle's vertices in traversal order, closed
// by repeating the first vertex. The boolean reports whether a cycle
// was found.
//
// The search runs Bellman-Ford from a virtual source (all distances
// start at zero, covering every component). An improvement in the
// V-th relaxation round proves a negative cycle; the witness is
// recovered by walking predecessor links V steps back into the cycle
// and collecting it.
//
// Complexity: O(V·E) time, O(V+E) space.
func NegativeCycle(g *core.Graph, opts ...Option) ([]string, bool, error) {
	if g == nil {
		return nil, false, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	type arc struct {
		from, to string
		weight   int64
	}
	edges := g.Edges()
	arcs := make([]arc, 0, 2*len(edges))
	for _, e := range edges {
		arcs = append(arcs, arc{from: e.From, to: e.To, weight: e.Weight})
		if !g.Directed() && e.From != e.To {
			arcs = append(arcs, arc{from: e.To, to: e.From, weight: e.Weight})
		}
	}

	n := g.VertexCount()
	dist := make(map[string]int64, n)
	prev := make(map[string]string, n)

	// Full n rounds; only an improvement in the last one matters.
	var lastImproved string
	for round := 0; round < n; round++ {
		select {
		case <-o.Ctx.Done():
			return nil, false, o.Ctx.Err()
		default:
		}

		lastImproved = ""
		for _, a := range arcs {
			if cand := dist[a.from] + a.weight; cand < dist[a.to] {
				dist[a.to] = cand
				prev[a.to] = a.from
				lastImproved = a.to
			}
		}
		if lastImproved == "" {
			return nil, false, nil // converged, no negative cycle
		}
	}

	// lastImproved still changed in round n, so its predecessor chain
	// is at least n long and must contain the cycle. n steps back
	// lands inside it.
	v := lastImproved
	for i := 0; i < n; i++ {
		v = prev[v]
	}
	witness := []string{v}
	for u := prev[v]; u != v; u = prev[u] {
		witness = append(witness, u)
	}
	// Predecessors walk the cycle backwards; reverse and close it.
	for i, j := 0, len(witness)-1; i < j; i, j = i+1, j-1 {
		witness[i], witness[j] = witness[j], witness[i]
	}
	witness = append(witness, witness[0])

	return witness, true, nil
}
