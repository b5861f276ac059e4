package shortestpath

import (
	"fmt"

	"github.com/mbelenko/grafo/core"
)

// arc is one directed relaxation step. Undirected edges expand into
// two arcs, one per direction.
type arc struct {
	from, to string
	weight   int64
}

// BellmanFord computes shortest distances from source to every vertex
// of g, tolerating negative edge weights. It runs V-1 rounds of
// relaxation over all arcs in edge insertion order, then one extra
// verification round: any improvement there proves a negative cycle
// and the run fails with ErrNegativeCycle naming the offending edge.
//
// Rounds stop early once a full pass improves nothing.
//
// Complexity: O(V·E) time, O(V+E) space.
func BellmanFord(g *core.Graph, source string, opts ...Option) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	arcs := expandArcs(g)
	res := &Tree{
		Source: source,
		Dist:   make(map[string]int64, g.VertexCount()),
		Prev:   make(map[string]string, g.VertexCount()),
	}
	for _, v := range g.Vertices() {
		res.Dist[v] = Inf
	}
	res.Dist[source] = 0

	for round := 1; round < g.VertexCount(); round++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		improved := false
		for _, a := range arcs {
			if res.Dist[a.from] == Inf {
				continue
			}
			if cand := res.Dist[a.from] + a.weight; cand < res.Dist[a.to] {
				res.Dist[a.to] = cand
				res.Prev[a.to] = a.from
				improved = true
			}
		}
		if !improved {
			return res, nil // fixed point reached, no cycle possible
		}
	}

	// Verification round: a V-th improvement means distances never
	// converge, so a reachable negative cycle exists.
	for _, a := range arcs {
		if res.Dist[a.from] == Inf {
			continue
		}
		if res.Dist[a.from]+a.weight < res.Dist[a.to] {
			return nil, fmt.Errorf("%w: via edge %s→%s weight=%d",
				ErrNegativeCycle, a.from, a.to, a.weight)
		}
	}

	return res, nil
}

// expandArcs flattens g's edges into relaxation arcs in insertion
// order, mirroring undirected edges.
func expandArcs(g *core.Graph) []arc {
	edges := g.Edges()
	arcs := make([]arc, 0, 2*len(edges))
	for _, e := range edges {
		arcs = append(arcs, arc{from: e.From, to: e.To, weight: e.Weight})
		if !g.Directed() && e.From != e.To {
			arcs = append(arcs, arc{from: e.To, to: e.From, weight: e.Weight})
		}
	}

	return arcs
}
