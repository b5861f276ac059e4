// Package core defines the central Graph type and its immutable TypeTag,
// and provides thread-safe primitives for building, querying, and cloning
// graphs.
//
// A Graph is created with a fixed variant (directed?, weighted?,
// multigraph?) that never changes for its lifetime. All mutation goes
// through AddVertex, RemoveVertex, AddEdge/AddWeightedEdge, and
// RemoveEdge; every query produces independent snapshots, never views
// aliasing internal state.
//
// Errors:
//
//	ErrEmptyVertexID    - vertex ID is the empty string.
//	ErrVertexNotFound   - requested vertex does not exist.
//	ErrEdgeNotFound     - requested edge does not exist.
//	ErrWeightRequired   - weighted graph given an edge without a weight.
//	ErrWeightNotAllowed - unweighted graph given an explicit weight.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrWeightRequired indicates AddEdge was called on a weighted graph;
	// weighted graphs accept edges only through AddWeightedEdge.
	ErrWeightRequired = errors.New("core: weighted graph requires an edge weight")

	// ErrWeightNotAllowed indicates AddWeightedEdge was called on an
	// unweighted graph; unweighted edges carry the implied UnitWeight.
	ErrWeightNotAllowed = errors.New("core: unweighted graph does not accept edge weights")
)

// UnitWeight is the implied weight of every edge in an unweighted graph.
// Queries on unweighted graphs report this value; no explicit weight is stored.
const UnitWeight int64 = 1

// TypeTag is the immutable descriptor of a graph variant.
// Two graphs are type-compatible iff their TypeTags compare equal.
type TypeTag struct {
	// Directed reports whether edges are one-way (From→To).
	Directed bool

	// Weighted reports whether edges carry explicit weights.
	Weighted bool

	// Multigraph reports whether parallel edges between the same
	// endpoints are permitted.
	Multigraph bool
}

// Edge is a snapshot of a single graph edge.
//
// ID distinguishes parallel edges in multigraphs and records insertion
// order (IDs are assigned monotonically). For unweighted graphs, Weight
// is reported as UnitWeight.
type Edge struct {
	// ID uniquely identifies this edge within its Graph.
	ID string

	// From is the source vertex ID (first endpoint for undirected edges).
	From string

	// To is the target vertex ID (second endpoint for undirected edges).
	To string

	// Weight is the edge weight, or UnitWeight for unweighted graphs.
	Weight int64
}

// Neighbor is one entry of a vertex's adjacency sequence: the adjacent
// vertex, the connecting edge's weight, and the connecting edge's ID.
type Neighbor struct {
	// ID is the adjacent vertex ID.
	ID string

	// Weight is the connecting edge's weight (UnitWeight when unweighted).
	Weight int64

	// EdgeID identifies the connecting edge.
	EdgeID string
}

// GraphOption configures a Graph's TypeTag before creation.
type GraphOption func(g *Graph)

// WithDirected makes every edge one-way (From→To).
func WithDirected() GraphOption {
	return func(g *Graph) { g.tag.Directed = true }
}

// WithWeighted makes edges carry explicit weights via AddWeightedEdge.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.tag.Weighted = true }
}

// WithMultiEdges permits parallel edges between the same endpoints.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.tag.Multigraph = true }
}

// Graph is the canonical mutable graph object.
//
// It owns its vertex and edge sets exclusively; conversions and algebra
// operations always produce new Graphs. A single RWMutex guards all
// state; queries take read locks, mutations take the write lock. Callers
// must not mutate a Graph while an algorithm reads it (the algorithms in
// this module only use snapshot queries, so each individual call is safe).
type Graph struct {
	mu sync.RWMutex

	// tag is fixed at construction and never mutated afterwards.
	tag TypeTag

	nextEdgeID uint64

	// vertexOrder preserves vertex insertion order for deterministic
	// iteration; vertices is the membership index.
	vertexOrder []string
	vertices    map[string]struct{}

	// adjacency maps a vertex to the IDs of its traversable edges in
	// insertion order: outgoing edges when directed, all incident edges
	// when undirected.
	adjacency map[string][]string

	// edgeOrder preserves edge insertion order; edges is the catalog.
	edgeOrder []string
	edges     map[string]*Edge
}

// NewGraph creates an empty Graph with the given variant options.
// The default is undirected, unweighted, simple (no parallel edges).
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string][]string),
		edges:     make(map[string]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewGraphOf creates an empty Graph with the exact TypeTag tag.
// Useful when deriving a result graph from an existing operand.
// Complexity: O(1).
func NewGraphOf(tag TypeTag) *Graph {
	g := NewGraph()
	g.tag = tag

	return g
}

// Type returns the graph's immutable TypeTag.
func (g *Graph) Type() TypeTag {
	return g.tag
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.tag.Directed }

// Weighted reports whether edges carry explicit weights.
func (g *Graph) Weighted() bool { return g.tag.Weighted }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.tag.Multigraph }
