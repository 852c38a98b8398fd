// Package bmatrix: sentinel error set. Every error returned by this package's
// exported functions is one of these sentinels (or wraps one with %w); no
// algorithm panics on a user-triggered error condition.
package bmatrix

import "errors"

var (
	// ErrInvalidIndex is returned when a row/column/block id is out of [0, B).
	ErrInvalidIndex = errors.New("bmatrix: index out of range")

	// ErrInvariantViolation is returned when an update would leave a negative
	// entry, or (for ApplyUpdate) when the two rows/cols disagree on their
	// shared (r,s)/(s,r)/(r,r)/(s,s) cells.
	ErrInvariantViolation = errors.New("bmatrix: invariant violation")

	// ErrDimensionMismatch is returned when an update vector's length != B.
	ErrDimensionMismatch = errors.New("bmatrix: dimension mismatch")
)
