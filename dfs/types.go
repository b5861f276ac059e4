// Package dfs defines types and options for depth-first traversal and
// topological sorting.
package dfs

import (
	"context"
	"errors"
)

// Vertex visitation states for cycle-aware traversal.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates the start vertex ID does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrNotDirected indicates TopologicalSort was run on an undirected graph.
	ErrNotDirected = errors.New("dfs: topological sort requires a directed graph")

	// ErrCycleDetected indicates the graph admits no topological order.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional DFS behavior.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked on vertex discovery (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after a vertex's descendants are
	// fully explored (post-order).
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no
	// limit). Note the bfs convention differs: bfs.Options.MaxDepth
	// treats 0 as unlimited and rejects negative values.
	MaxDepth int

	// FilterNeighbor, if non-nil, is called per neighbor ID before
	// recursing; return false to skip it.
	FilterNeighbor func(id string) bool

	// FullTraversal restarts DFS from every unvisited vertex in
	// insertion order, covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns Options with background context, no hooks,
// no depth limit, no filtering, and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth; 0 visits only the start vertex.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest traversal over all components.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records vertices in discovery (pre-order) sequence.
	Order []string

	// Depth maps each vertex to its distance (#edges) from its tree root.
	Depth map[string]int

	// Parent maps each vertex to the vertex that discovered it; tree
	// roots are absent.
	Parent map[string]string

	// Visited flags which vertices were reached.
	Visited map[string]bool
}
