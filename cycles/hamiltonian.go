package cycles

import (
	"fmt"

	"github.com/mbelenko/grafo/core"
)

// Hamiltonian searches g for a Hamiltonian cycle: a closed walk
// visiting every vertex exactly once. The witness lists the vertices
// in visiting order, closed by repeating the start. When the full
// search space is exhausted without a cycle, the search fails with
// ErrNoHamiltonianCycle — a definitive answer, never an approximation.
//
// The search is exact backtracking anchored at the lowest-ID vertex:
// every Hamiltonian cycle passes through every vertex, so fixing the
// start loses nothing and keeps runs deterministic. Worst case is
// exponential; bound long runs with WithContext.
func Hamiltonian(g *core.Graph, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.VertexCount()
	switch {
	case n == 0:
		return nil, ErrNoHamiltonianCycle
	case n == 1:
		// A single vertex is Hamiltonian only through a self-loop.
		v := g.Vertices()[0]
		if g.HasEdge(v, v) {
			return []string{v, v}, nil
		}
		return nil, ErrNoHamiltonianCycle
	case n == 2 && !g.Directed():
		// An undirected 2-cycle must close over a distinct edge, so it
		// exists only when parallel edges connect the pair.
		ids := g.Vertices()
		u := lowestID(ids)
		v := ids[0]
		if v == u {
			v = ids[1]
		}
		if len(g.EdgesBetween(u, v)) >= 2 {
			return []string{u, v, u}, nil
		}
		return nil, ErrNoHamiltonianCycle
	}

	start := lowestID(g.Vertices())
	s := &hamSearch{
		graph:  g,
		opts:   o,
		inPath: make(map[string]bool, n),
		path:   make([]string, 0, n+1),
		start:  start,
		total:  n,
	}
	s.inPath[start] = true
	s.path = append(s.path, start)

	found, err := s.extend(start)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoHamiltonianCycle
	}

	return append(s.path, start), nil
}

type hamSearch struct {
	graph  *core.Graph
	opts   Options
	inPath map[string]bool
	path   []string
	start  string
	total  int
}

// extend tries to grow the path beyond its last vertex v.
func (s *hamSearch) extend(v string) (bool, error) {
	select {
	case <-s.opts.Ctx.Done():
		return false, s.opts.Ctx.Err()
	default:
	}

	if len(s.path) == s.total {
		return s.graph.HasEdge(v, s.start), nil
	}

	nbrs, err := s.graph.NeighborIDs(v)
	if err != nil {
		return false, fmt.Errorf("cycles: neighbors of %q: %w", v, err)
	}
	for _, next := range nbrs {
		if s.inPath[next] {
			continue
		}
		s.inPath[next] = true
		s.path = append(s.path, next)

		found, err := s.extend(next)
		if err != nil || found {
			return found, err
		}

		s.path = s.path[:len(s.path)-1]
		s.inPath[next] = false
	}

	return false, nil
}

// lowestID returns the lexicographically smallest vertex ID.
func lowestID(ids []string) string {
	lowest := ids[0]
	for _, id := range ids[1:] {
		if id < lowest {
			lowest = id
		}
	}

	return lowest
}
