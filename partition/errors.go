package partition

import "errors"

var (
	// ErrInvariantViolation is returned by CheckInvariants when the
	// assignment, M, or degree vectors have drifted out of agreement (I1-I4
	// in spec.md §8).
	ErrInvariantViolation = errors.New("partition: invariant violation")

	// ErrBlockCountMismatch is returned by FromMerges when best[] or
	// deltaS[] does not have one entry per current block.
	ErrBlockCountMismatch = errors.New("partition: best-merge slice length must equal B")
)
