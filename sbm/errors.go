package sbm

import "errors"

// Sentinel errors returned by package sbm (spec.md §7 "Error kinds"). Kernels
// never panic on numerically valid input; a warm start whose length does not
// match the graph is reported as ErrInvalidGraph, not a panic.
var (
	// ErrInvalidConfig is returned when an Options field is out of range
	// (β ≤ 0, reduction rate ∉ (0,1), proposals-per-block < 1).
	ErrInvalidConfig = errors.New("sbm: invalid configuration")

	// ErrInvalidGraph is returned when the input graph cannot be partitioned
	// (currently: a vertex count mismatch against a supplied warm start).
	ErrInvalidGraph = errors.New("sbm: invalid graph")

	// ErrCancelled is returned when the caller's context is cancelled between
	// phases; the driver's best-so-far snapshot is still returned alongside
	// this error so callers can salvage partial work.
	ErrCancelled = errors.New("sbm: cancelled")
)
