package mst

import (
	"sort"

	"github.com/mbelenko/grafo/core"
)

// Kruskal computes a minimum spanning forest by scanning all edges in
// ascending weight order (stable over insertion order for ties) and
// accepting every edge whose endpoints lie in different union-find
// components. Self-loops are skipped: they can never join components.
//
// Complexity: O(E log E + α(V)·E) time, O(V+E) space.
func Kruskal(g *core.Graph, opts ...Option) (*Forest, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := checkInput(g, o); err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	index := make(map[string]int, len(vertices))
	for i, v := range vertices {
		index[v] = i
	}

	edges := make([]core.Edge, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return effectiveWeight(edges[i], o) < effectiveWeight(edges[j], o)
	})

	uf := newUnionFind(len(vertices))
	forest := &Forest{}
	for _, e := range edges {
		if !uf.union(index[e.From], index[e.To]) {
			continue // would close a cycle
		}
		forest.Edges = append(forest.Edges, e)
		forest.TotalWeight += effectiveWeight(e, o)
		if len(forest.Edges) == len(vertices)-1 {
			break
		}
	}
	forest.Components = len(vertices) - len(forest.Edges)

	return forest, nil
}
