// Package shortestpath implements the single-source and all-pairs
// shortest-path algorithms over core.Graph: Dijkstra, Bellman-Ford,
// Floyd-Warshall and Johnson.
//
// All four work on weighted and unweighted graphs alike: unweighted
// graphs report core.UnitWeight for every edge, so their shortest
// paths minimize hop count.
//
// Determinism: when several equally short paths exist, the recorded
// predecessor is the one from the first relaxation that reached the
// minimum. Relaxation order follows edge insertion order, so repeated
// runs over the same graph produce identical results.
//
// Algorithm selection:
//
//   - Dijkstra — single source, non-negative weights, O((V+E) log V).
//   - BellmanFord — single source, negative weights allowed,
//     O(V·E), detects negative cycles.
//   - FloydWarshall — all pairs, dense, O(V³).
//   - Johnson — all pairs, sparse, Bellman-Ford reweighting plus one
//     Dijkstra per vertex, O(V·E + V·(V+E) log V).
package shortestpath

import (
	"context"
	"errors"
	"math"
)

var (
	// ErrNilGraph is returned when the input graph is nil.
	ErrNilGraph = errors.New("shortestpath: nil graph")

	// ErrSourceNotFound is returned when the source vertex does not
	// exist in the graph.
	ErrSourceNotFound = errors.New("shortestpath: source vertex not found")

	// ErrNegativeWeight is returned by Dijkstra when any edge carries
	// a negative weight.
	ErrNegativeWeight = errors.New("shortestpath: negative edge weight not supported")

	// ErrNegativeCycle is returned by BellmanFord, FloydWarshall and
	// Johnson when the graph contains a cycle of negative total weight,
	// making shortest distances unbounded below.
	ErrNegativeCycle = errors.New("shortestpath: negative cycle detected")
)

// Inf marks an unreachable vertex in distance maps and matrices.
const Inf = int64(math.MaxInt64)

// Options configures a shortest-path run.
type Options struct {
	// Ctx cancels a run between relaxation rounds (Bellman-Ford),
	// heap extractions (Dijkstra) or pivot iterations (Floyd-Warshall,
	// Johnson). Defaults to context.Background().
	Ctx context.Context

	// MaxDistance bounds Dijkstra's exploration: vertices farther than
	// this stay at Inf. Ignored by the other algorithms.
	// Defaults to Inf (no bound).
	MaxDistance int64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxDistance: Inf,
	}
}

// WithContext attaches ctx for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithMaxDistance caps Dijkstra's search radius. Panics if limit is
// negative: a negative radius is a programming error, not a data error.
func WithMaxDistance(limit int64) Option {
	if limit < 0 {
		panic("shortestpath: WithMaxDistance requires limit >= 0")
	}
	return func(o *Options) { o.MaxDistance = limit }
}

// Tree is the result of a single-source run: distances and
// first-improvement predecessors rooted at Source.
type Tree struct {
	// Source is the vertex the run started from.
	Source string

	// Dist maps every vertex to its shortest distance from Source,
	// Inf when unreachable.
	Dist map[string]int64

	// Prev maps each reached vertex (except Source) to its predecessor
	// on a shortest path. Unreachable vertices are absent.
	Prev map[string]string
}

// PathTo reconstructs the shortest path Source→target by walking Prev.
// Returns nil when target is unreachable or unknown.
func (t *Tree) PathTo(target string) []string {
	if d, ok := t.Dist[target]; !ok || d == Inf {
		return nil
	}
	path := []string{target}
	for v := target; v != t.Source; {
		v = t.Prev[v]
		path = append(path, v)
	}
	// Reverse into Source→target order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// AllPairs is the result of an all-pairs run: a dense distance matrix
// over the lexicographically sorted vertex set.
type AllPairs struct {
	// IDs lists the vertices in sorted order; row/column i belongs
	// to IDs[i].
	IDs []string

	// Index maps a vertex ID back to its row/column.
	Index map[string]int

	// Dist[i][j] is the shortest distance IDs[i]→IDs[j], Inf when
	// unreachable, 0 on the diagonal.
	Dist [][]int64

	// next[i][j] is the row of the vertex following IDs[i] on a
	// shortest path to IDs[j], -1 when none.
	next [][]int
}

// Between reports the shortest distance u→v. The second return is
// false when either vertex is unknown or v is unreachable from u.
func (m *AllPairs) Between(u, v string) (int64, bool) {
	i, ok := m.Index[u]
	if !ok {
		return Inf, false
	}
	j, ok := m.Index[v]
	if !ok {
		return Inf, false
	}
	d := m.Dist[i][j]

	return d, d != Inf
}

// PathBetween reconstructs a shortest path u→v by following next-hop
// links. Returns nil when either vertex is unknown or v is unreachable.
func (m *AllPairs) PathBetween(u, v string) []string {
	i, oki := m.Index[u]
	j, okj := m.Index[v]
	if !oki || !okj || m.Dist[i][j] == Inf {
		return nil
	}
	path := []string{u}
	for i != j {
		i = m.next[i][j]
		path = append(path, m.IDs[i])
	}

	return path
}
