// Package adjacency provides the alternate graph representations:
// the adjacency List and the dense adjacency Matrix, with pure,
// loss-aware conversions to and from core.Graph.
//
// Conversions are stateless transforms producing new owned structures;
// they never alias the source graph. On the simple-graph subset,
// ToGraph(FromGraph(g)) reproduces g exactly (same vertex set, edge set,
// and weights). Deviations are explicit: a Matrix cannot hold parallel
// edges, so building one from a multigraph fails with
// ErrRepresentationLossy unless a collapse policy is requested.
//
// Besides the representation views, the package carries the
// graph-variant converters AsUnweighted, AsWeighted, and AsUndirected,
// built on the same rebuild-into-a-new-graph discipline.
package adjacency

import "errors"

// Sentinel errors for representation conversions.
var (
	// ErrNilGraph is returned when a nil *core.Graph is passed to a converter.
	ErrNilGraph = errors.New("adjacency: graph is nil")

	// ErrRepresentationLossy indicates the target representation cannot
	// hold the source graph without information loss (parallel edges into
	// a dense matrix) and no collapse policy was requested.
	ErrRepresentationLossy = errors.New("adjacency: conversion would lose parallel edges")

	// ErrUnknownVertex indicates a representation references a vertex
	// absent from its own vertex sequence.
	ErrUnknownVertex = errors.New("adjacency: unknown vertex")

	// ErrVariantMismatch indicates the source graph's variant does not
	// fit the requested conversion (e.g. AsUnweighted on a graph that is
	// already unweighted).
	ErrVariantMismatch = errors.New("adjacency: graph variant does not fit this conversion")

	// ErrReciprocalConflict indicates a directed simple graph carries
	// reciprocal arcs u→v and v→u with different weights, which a single
	// undirected edge cannot represent.
	ErrReciprocalConflict = errors.New("adjacency: reciprocal arcs carry different weights")

	// ErrWeightRange indicates an edge weight whose magnitude exceeds
	// the range a float64 matrix cell holds exactly.
	ErrWeightRange = errors.New("adjacency: weight exceeds the matrix's exact range")
)

// CollapsePolicy selects how MatrixFromGraph reduces parallel edges of a
// multigraph into a single cell value.
type CollapsePolicy int

const (
	// CollapseNone refuses lossy conversion (the default):
	// MatrixFromGraph fails with ErrRepresentationLossy on multigraphs.
	CollapseNone CollapsePolicy = iota

	// CollapseFirst keeps the first-inserted parallel edge's weight.
	CollapseFirst

	// CollapseMin keeps the minimum weight among parallel edges.
	CollapseMin
)

// Option configures matrix conversion behavior.
type Option func(*Options)

// Options holds the effective conversion configuration.
type Options struct {
	// Collapse is the parallel-edge reduction policy for MatrixFromGraph.
	Collapse CollapsePolicy
}

// DefaultOptions returns the default conversion configuration:
// no collapsing (lossy conversions fail).
func DefaultOptions() Options {
	return Options{Collapse: CollapseNone}
}

// WithCollapse sets the parallel-edge reduction policy, making a
// multigraph→matrix conversion an explicit, documented loss instead of
// an error.
func WithCollapse(p CollapsePolicy) Option {
	return func(o *Options) { o.Collapse = p }
}
