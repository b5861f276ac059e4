// Package mst computes minimum spanning forests of undirected graphs
// with Prim's and Kruskal's algorithms.
//
// Both algorithms accept weighted graphs; unweighted graphs opt in
// through WithUnitWeights, which treats every edge as weight 1 and
// turns the result into a minimum-edge-count forest. Directed graphs
// are rejected with ErrNotApplicable.
//
// Disconnected input is not an error: each connected component yields
// its own minimum spanning tree and the result is their union, a
// minimum spanning forest.
//
// Determinism: Prim breaks equal-weight ties by edge insertion order
// and starts components from their lowest-ID vertex; Kruskal sorts
// edges stably over insertion order. Repeated runs over the same
// graph produce identical forests.
package mst

import (
	"errors"

	"github.com/mbelenko/grafo/core"
)

var (
	// ErrNilGraph is returned when the input graph is nil.
	ErrNilGraph = errors.New("mst: nil graph")

	// ErrNotApplicable is returned for directed graphs, and for
	// unweighted graphs unless WithUnitWeights is given.
	ErrNotApplicable = errors.New("mst: requires an undirected weighted graph")
)

// Options configures an MST run.
type Options struct {
	// Root is Prim's starting vertex. Empty selects the lowest-ID
	// vertex. Ignored by Kruskal.
	Root string

	// UnitWeights treats every edge as weight core.UnitWeight,
	// admitting unweighted graphs.
	UnitWeights bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{}
}

// WithRoot sets Prim's starting vertex.
func WithRoot(root string) Option {
	return func(o *Options) { o.Root = root }
}

// WithUnitWeights counts every edge as weight 1, which admits
// unweighted graphs into MST computation.
func WithUnitWeights() Option {
	return func(o *Options) { o.UnitWeights = true }
}

// Forest is a minimum spanning forest: one minimum spanning tree per
// connected component.
type Forest struct {
	// Edges holds the selected edges in the order the algorithm
	// accepted them.
	Edges []core.Edge

	// TotalWeight is the sum of the selected edge weights.
	TotalWeight int64

	// Components counts the trees in the forest; 1 means the input
	// was connected.
	Components int
}

// checkInput validates the shared Prim/Kruskal preconditions.
func checkInput(g *core.Graph, o Options) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.Directed() {
		return ErrNotApplicable
	}
	if !g.Weighted() && !o.UnitWeights {
		return ErrNotApplicable
	}

	return nil
}

// effectiveWeight reports e's weight under the run's weight policy.
func effectiveWeight(e core.Edge, o Options) int64 {
	if o.UnitWeights {
		return core.UnitWeight
	}
	return e.Weight
}
