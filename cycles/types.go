// Package cycles detects cycles in graphs: plain reachability cycles,
// negative-weight cycles with a witness, and Hamiltonian cycles via
// exact backtracking.
package cycles

import (
	"context"
	"errors"
)

var (
	// ErrNilGraph is returned when the input graph is nil.
	ErrNilGraph = errors.New("cycles: nil graph")

	// ErrNoHamiltonianCycle is returned by Hamiltonian after the full
	// search space is exhausted without finding a cycle. It is a
	// definitive negative, not a timeout.
	ErrNoHamiltonianCycle = errors.New("cycles: no hamiltonian cycle exists")
)

// Options configures a cycle search.
type Options struct {
	// Ctx bounds the exponential Hamiltonian search and the negative
	// cycle relaxation rounds. Defaults to context.Background().
	Ctx context.Context
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext attaches ctx for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}
