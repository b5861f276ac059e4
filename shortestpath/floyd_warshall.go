package shortestpath

import (
	"fmt"
	"sort"

	"github.com/mbelenko/grafo/core"
)

// FloydWarshall computes all-pairs shortest distances over a dense
// matrix indexed by the sorted vertex set. Negative edge weights are
// allowed; a negative value appearing on the diagonal proves a
// negative cycle and fails the run with ErrNegativeCycle.
//
// Parallel edges collapse to their minimum weight, which is the only
// weight a shortest path could use.
//
// Complexity: O(V³) time, O(V²) space.
func FloydWarshall(g *core.Graph, opts ...Option) (*AllPairs, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := newAllPairs(g.Vertices())
	n := len(m.IDs)
	for _, e := range g.Edges() {
		i, j := m.Index[e.From], m.Index[e.To]
		m.setArc(i, j, e.Weight)
		if !g.Directed() {
			m.setArc(j, i, e.Weight)
		}
	}

	for k := 0; k < n; k++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		for i := 0; i < n; i++ {
			dik := m.Dist[i][k]
			if dik == Inf {
				continue
			}
			for j := 0; j < n; j++ {
				if dkj := m.Dist[k][j]; dkj != Inf && dik+dkj < m.Dist[i][j] {
					m.Dist[i][j] = dik + dkj
					m.next[i][j] = m.next[i][k]
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if m.Dist[i][i] < 0 {
			return nil, fmt.Errorf("%w: through %q", ErrNegativeCycle, m.IDs[i])
		}
	}

	return m, nil
}

// newAllPairs allocates an identity distance matrix over the sorted
// vertex set: zero diagonal, Inf everywhere else.
func newAllPairs(ids []string) *AllPairs {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)

	n := len(sorted)
	m := &AllPairs{
		IDs:   sorted,
		Index: make(map[string]int, n),
		Dist:  make([][]int64, n),
		next:  make([][]int, n),
	}
	for i, id := range sorted {
		m.Index[id] = i
		m.Dist[i] = make([]int64, n)
		m.next[i] = make([]int, n)
		for j := range m.Dist[i] {
			m.Dist[i][j] = Inf
			m.next[i][j] = -1
		}
		m.Dist[i][i] = 0
		m.next[i][i] = i
	}

	return m
}

// setArc records a direct edge i→j, keeping the lightest parallel.
func (m *AllPairs) setArc(i, j int, w int64) {
	if w < m.Dist[i][j] {
		m.Dist[i][j] = w
		m.next[i][j] = j
	}
}
