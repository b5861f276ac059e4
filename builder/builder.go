// Package builder constructs classic graph topologies — paths, cycles,
// stars, grids and complete graphs — as deterministic fixtures: the
// same shape, size and options always produce the identical graph,
// vertex for vertex and edge for edge.
//
// Vertices are named <prefix><index> with zero-based indices. Shapes
// come out undirected and unweighted by default; pass core options
// through WithGraphOptions and weight policies through WithWeightFunc
// or WithConstWeight.
package builder

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mbelenko/grafo/core"
)

// ErrBadSize is returned when a shape's size parameter is below its
// minimum: 1 for paths, stars, grids and complete graphs, 3 for cycles.
var ErrBadSize = errors.New("builder: shape size below minimum")

// Options configures fixture construction.
type Options struct {
	// Prefix prepends every vertex ID. Defaults to "v".
	Prefix string

	// GraphOpts forwards to core.NewGraph.
	GraphOpts []core.GraphOption

	// Weight maps the i-th added edge (zero-based, insertion order) to
	// its weight. Only consulted for weighted graphs. Defaults to a
	// constant core.UnitWeight.
	Weight func(i int) int64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{
		Prefix: "v",
		Weight: func(int) int64 { return core.UnitWeight },
	}
}

// WithPrefix sets the vertex ID prefix.
func WithPrefix(prefix string) Option {
	return func(o *Options) { o.Prefix = prefix }
}

// WithGraphOptions forwards graph type options to core.NewGraph.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(o *Options) { o.GraphOpts = append(o.GraphOpts, opts...) }
}

// WithWeightFunc derives each edge's weight from its insertion index.
func WithWeightFunc(fn func(i int) int64) Option {
	return func(o *Options) { o.Weight = fn }
}

// WithConstWeight gives every edge the same weight.
func WithConstWeight(w int64) Option {
	return func(o *Options) { o.Weight = func(int) int64 { return w } }
}

// Path builds the path graph v0-v1-…-v(n-1) with n-1 edges.
func Path(n int, opts ...Option) (*core.Graph, error) {
	b, err := newBuild(n, 1, opts)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err = b.connect(i-1, i); err != nil {
			return nil, err
		}
	}

	return b.graph, nil
}

// Cycle builds the ring v0-v1-…-v(n-1)-v0; n must be at least 3.
func Cycle(n int, opts ...Option) (*core.Graph, error) {
	b, err := newBuild(n, 3, opts)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err = b.connect(i, (i+1)%n); err != nil {
			return nil, err
		}
	}

	return b.graph, nil
}

// Star builds a center v0 with n leaves v1..vn.
func Star(n int, opts ...Option) (*core.Graph, error) {
	b, err := newBuild(n+1, 2, opts)
	if err != nil {
		return nil, err
	}
	for i := 1; i <= n; i++ {
		if err = b.connect(0, i); err != nil {
			return nil, err
		}
	}

	return b.graph, nil
}

// Complete builds the complete graph on n vertices: every pair
// adjacent. On directed graphs both arc directions are added.
func Complete(n int, opts ...Option) (*core.Graph, error) {
	b, err := newBuild(n, 1, opts)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = b.connect(i, j); err != nil {
				return nil, err
			}
			if b.graph.Directed() {
				if err = b.connect(j, i); err != nil {
					return nil, err
				}
			}
		}
	}

	return b.graph, nil
}

// Grid builds the rows×cols lattice: vertex (r,c) is v(r*cols+c),
// connected rightwards and downwards.
func Grid(rows, cols int, opts ...Option) (*core.Graph, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrBadSize, rows, cols)
	}
	b, err := newBuild(rows*cols, 1, opts)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			at := r*cols + c
			if c+1 < cols {
				if err = b.connect(at, at+1); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err = b.connect(at, at+cols); err != nil {
					return nil, err
				}
			}
		}
	}

	return b.graph, nil
}

// build carries the graph under construction and the edge counter
// feeding the weight function.
type build struct {
	graph *core.Graph
	opts  Options
	edges int
}

// newBuild validates the vertex count and seeds the graph with its
// vertices.
func newBuild(n, minimum int, opts []Option) (*build, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if n < minimum {
		return nil, fmt.Errorf("%w: %d vertices, need at least %d", ErrBadSize, n, minimum)
	}

	b := &build{graph: core.NewGraph(o.GraphOpts...), opts: o}
	for i := 0; i < n; i++ {
		if err := b.graph.AddVertex(b.id(i)); err != nil {
			return nil, err
		}
	}

	return b, nil
}

func (b *build) id(i int) string {
	return b.opts.Prefix + strconv.Itoa(i)
}

// connect adds the edge between the i-th and j-th vertices under the
// graph's weight regime.
func (b *build) connect(i, j int) error {
	var err error
	if b.graph.Weighted() {
		_, err = b.graph.AddWeightedEdge(b.id(i), b.id(j), b.opts.Weight(b.edges))
	} else {
		_, err = b.graph.AddEdge(b.id(i), b.id(j))
	}
	if err != nil {
		return err
	}
	b.edges++

	return nil
}
