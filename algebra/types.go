// Package algebra implements binary set-style operations over pairs of
// core.Graph values: Union, Intersection, Join, Difference, and
// Equal/NotEqual.
//
// Every binary operation first checks TypeTag equality and fails with
// ErrTypeMismatch on mismatch. Operations never mutate their operands;
// each produces a new, independently owned graph.
//
// Weight conflicts (the same edge with different weights in both
// operands of Union/Join) fail deterministically with ErrWeightConflict
// rather than guessing a merge rule; callers wanting min/max/sum must
// resolve conflicts before calling.
package algebra

import "errors"

// Sentinel errors for algebra operations.
var (
	// ErrNilGraph is returned when either operand is nil.
	ErrNilGraph = errors.New("algebra: graph is nil")

	// ErrTypeMismatch indicates the operands' TypeTags differ.
	ErrTypeMismatch = errors.New("algebra: operand type tags differ")

	// ErrWeightConflict indicates both operands define the same edge with
	// different weights; the operation refuses to pick a winner.
	ErrWeightConflict = errors.New("algebra: conflicting weights for the same edge")
)
