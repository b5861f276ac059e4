// Package adjacency: the adjacency-list representation.

package adjacency

import (
	"fmt"

	"github.com/mbelenko/grafo/core"
)

// List is the adjacency-list view of a graph: for each vertex, its
// ordered neighbor entries (neighbor, weight, edge ID). Edge IDs are
// retained so multigraph conversions keep per-edge identity instead of
// collapsing parallel edges to a single weight.
type List struct {
	// Tag is the TypeTag of the source graph.
	Tag core.TypeTag

	// Order is the vertex iteration order (source insertion order).
	Order []string

	// Entries maps each vertex to its neighbor sequence in edge
	// insertion order, exactly as core.Graph.Neighbors reports it.
	Entries map[string][]core.Neighbor
}

// ListFromGraph builds the adjacency-list view of g.
// The result shares no storage with g.
// Complexity: O(V + E).
func ListFromGraph(g *core.Graph) (*List, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	order := g.Vertices()
	l := &List{
		Tag:     g.Type(),
		Order:   order,
		Entries: make(map[string][]core.Neighbor, len(order)),
	}
	for _, id := range order {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("adjacency: ListFromGraph %q: %w", id, err)
		}
		l.Entries[id] = nbrs
	}

	return l, nil
}

// ToGraph rebuilds a core.Graph from the list. Undirected edges appear
// in both endpoint entries under the same edge ID and are added once,
// so the round trip is lossless for simple graphs and multigraphs alike.
// Complexity: O(V + E).
func (l *List) ToGraph() (*core.Graph, error) {
	g := core.NewGraphOf(l.Tag)
	for _, id := range l.Order {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("adjacency: List.ToGraph vertex %q: %w", id, err)
		}
	}

	seen := make(map[string]struct{})
	for _, u := range l.Order {
		for _, n := range l.Entries[u] {
			if !g.HasVertex(n.ID) {
				return nil, fmt.Errorf("%w: %q in entry of %q", ErrUnknownVertex, n.ID, u)
			}
			// Skip the mirrored occurrence of an undirected edge.
			if n.EdgeID != "" {
				if _, dup := seen[n.EdgeID]; dup {
					continue
				}
				seen[n.EdgeID] = struct{}{}
			}
			var err error
			if l.Tag.Weighted {
				_, err = g.AddWeightedEdge(u, n.ID, n.Weight)
			} else {
				_, err = g.AddEdge(u, n.ID)
			}
			if err != nil {
				return nil, fmt.Errorf("adjacency: List.ToGraph edge %s-%s: %w", u, n.ID, err)
			}
		}
	}

	return g, nil
}
