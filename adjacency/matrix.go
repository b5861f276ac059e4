// Package adjacency: the dense adjacency-matrix representation.

package adjacency

import (
	"fmt"
	"math"
	"sort"

	"github.com/mbelenko/grafo/core"
)

// NoEdge is the explicit no-edge sentinel stored in matrix cells.
// +Inf lies outside the weight domain entirely, so it can never collide
// with a legitimate weight (including zero and negative weights).
func NoEdge() float64 { return math.Inf(1) }

// maxExactWeight bounds the weights a float64 cell stores without
// rounding: every integer in [-2^53, 2^53] is exactly representable.
const maxExactWeight = int64(1) << 53

// Matrix is the dense adjacency-matrix view of a graph: a square grid
// indexed by the lexicographically sorted vertex ordering. A cell holds
// the edge weight, or NoEdge when no edge connects the pair.
//
// A Matrix cannot represent parallel edges; its Tag therefore always has
// Multigraph == false, even when built from a multigraph under a
// collapse policy. Cells are float64, which holds every integer weight
// up to magnitude 2^53 exactly; MatrixFromGraph rejects weights beyond
// that with ErrWeightRange so round trips are never silently lossy.
type Matrix struct {
	// Tag is the TypeTag of the represented graph (never a multigraph).
	Tag core.TypeTag

	// IDs is the fixed vertex ordering (sorted ascending).
	IDs []string

	// Index maps each vertex ID to its row/column in Cells.
	Index map[string]int

	// Cells is the V×V weight grid; Cells[i][j] is the weight of the
	// edge IDs[i]→IDs[j], or NoEdge.
	Cells [][]float64
}

// MatrixFromGraph builds the adjacency-matrix view of g.
//
// Multigraphs cannot be represented losslessly: without an explicit
// collapse policy (WithCollapse), the conversion fails with
// ErrRepresentationLossy. Undirected graphs produce a symmetric matrix.
// Complexity: O(V² + E).
func MatrixFromGraph(g *core.Graph, opts ...Option) (*Matrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g.Multigraph() && cfg.Collapse == CollapseNone {
		return nil, fmt.Errorf("%w: use WithCollapse to collapse parallel edges", ErrRepresentationLossy)
	}

	ids := g.Vertices()
	sort.Strings(ids)
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	cells := make([][]float64, len(ids))
	for i := range cells {
		row := make([]float64, len(ids))
		for j := range row {
			row[j] = NoEdge()
		}
		cells[i] = row
	}

	for _, e := range g.Edges() {
		if e.Weight > maxExactWeight || e.Weight < -maxExactWeight {
			return nil, fmt.Errorf("%w: edge %s weight %d", ErrWeightRange, e.ID, e.Weight)
		}
		i, j := index[e.From], index[e.To]
		w := float64(e.Weight)
		if keep := cells[i][j]; !math.IsInf(keep, 1) {
			// A cell is already occupied: only possible for multigraphs.
			switch cfg.Collapse {
			case CollapseFirst:
				w = keep
			case CollapseMin:
				w = math.Min(keep, w)
			}
		}
		cells[i][j] = w
		if !g.Directed() {
			cells[j][i] = w
		}
	}

	tag := g.Type()
	tag.Multigraph = false

	return &Matrix{Tag: tag, IDs: ids, Index: index, Cells: cells}, nil
}

// At returns the cell value for the ordered pair (u, v), or
// ErrUnknownVertex. Complexity: O(1).
func (m *Matrix) At(u, v string) (float64, error) {
	i, ok := m.Index[u]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVertex, u)
	}
	j, ok := m.Index[v]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVertex, v)
	}

	return m.Cells[i][j], nil
}

// HasEdge reports whether the cell for (u, v) holds a weight rather than
// the NoEdge sentinel. Unknown vertices report false.
func (m *Matrix) HasEdge(u, v string) bool {
	w, err := m.At(u, v)

	return err == nil && !math.IsInf(w, 1)
}

// ToGraph rebuilds a simple core.Graph from the matrix. For undirected
// matrices every unordered pair is added once. Vertices follow the
// matrix ordering, edges follow row-major cell order.
// Complexity: O(V²).
func (m *Matrix) ToGraph() (*core.Graph, error) {
	g := core.NewGraphOf(m.Tag)
	for _, id := range m.IDs {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("adjacency: Matrix.ToGraph vertex %q: %w", id, err)
		}
	}

	n := len(m.IDs)
	for i := 0; i < n; i++ {
		jStart := 0
		if !m.Tag.Directed {
			jStart = i // symmetric: visit each unordered pair once
		}
		for j := jStart; j < n; j++ {
			w := m.Cells[i][j]
			if math.IsInf(w, 1) {
				continue
			}
			var err error
			if m.Tag.Weighted {
				_, err = g.AddWeightedEdge(m.IDs[i], m.IDs[j], int64(w))
			} else {
				_, err = g.AddEdge(m.IDs[i], m.IDs[j])
			}
			if err != nil {
				return nil, fmt.Errorf("adjacency: Matrix.ToGraph edge %s-%s: %w", m.IDs[i], m.IDs[j], err)
			}
		}
	}

	return g, nil
}
