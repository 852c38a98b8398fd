package digraph

import "errors"

// Sentinel errors returned by digraph constructors. Algorithms never panic on
// user-triggered error conditions; panics are reserved for programmer errors.
var (
	// ErrInvalidVertexCount is returned when N <= 0.
	ErrInvalidVertexCount = errors.New("digraph: vertex count must be > 0")

	// ErrVertexOutOfRange is returned when an edge references a vertex id
	// outside [0, N), or when a ground-truth label is negative.
	ErrVertexOutOfRange = errors.New("digraph: vertex id out of range")

	// ErrInvalidWeight is returned when an edge weight is < 1.
	ErrInvalidWeight = errors.New("digraph: edge weight must be >= 1")

	// ErrLabelCountMismatch is returned when WithLabels is given a slice whose
	// length does not equal N.
	ErrLabelCountMismatch = errors.New("digraph: label count must equal vertex count")
)
