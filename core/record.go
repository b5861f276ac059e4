// Package core: the import/export Record.
//
// Record is the only boundary format of the module: external parsers and
// serializers (edge-list files, DOT, ...) translate their formats to and
// from Record; the core never touches files or the network itself.

package core

import "fmt"

// EdgeRecord is one edge tuple of a Record: endpoints, the weight
// (meaningful only when the Record's tag is weighted), and the edge ID
// (meaningful only for multigraphs, to preserve parallel-edge identity).
type EdgeRecord struct {
	From   string
	To     string
	Weight int64
	ID     string
}

// Record is a self-contained, order-preserving description of a graph:
// the TypeTag, the vertex sequence, and the edge tuple sequence.
// Rebuilding a Graph from a Record reproduces iteration order exactly.
type Record struct {
	Tag      TypeTag
	Vertices []string
	Edges    []EdgeRecord
}

// Export produces the Record describing g. The Record shares no storage
// with g. Complexity: O(V + E).
func (g *Graph) Export() Record {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rec := Record{
		Tag:      g.tag,
		Vertices: append([]string(nil), g.vertexOrder...),
		Edges:    make([]EdgeRecord, 0, len(g.edgeOrder)),
	}
	for _, eid := range g.edgeOrder {
		e := g.edges[eid]
		rec.Edges = append(rec.Edges, EdgeRecord{
			From:   e.From,
			To:     e.To,
			Weight: g.reportWeight(e),
			ID:     e.ID,
		})
	}

	return rec
}

// FromRecord builds a new Graph from rec.
// Every edge endpoint must appear in rec.Vertices (ErrVertexNotFound
// otherwise). Edge IDs are reassigned in sequence order.
// Complexity: O(V + E).
func FromRecord(rec Record) (*Graph, error) {
	g := NewGraphOf(rec.Tag)
	for _, id := range rec.Vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("core: FromRecord vertex %q: %w", id, err)
		}
	}
	for _, er := range rec.Edges {
		var err error
		if rec.Tag.Weighted {
			_, err = g.AddWeightedEdge(er.From, er.To, er.Weight)
		} else {
			_, err = g.AddEdge(er.From, er.To)
		}
		if err != nil {
			return nil, fmt.Errorf("core: FromRecord edge %s-%s: %w", er.From, er.To, err)
		}
	}

	return g, nil
}
