package bmatrix

// New allocates a zero B×B Matrix, backed by Dense when sparse is false and
// by Sparse when sparse is true. The two backends are interchangeable
// through the Matrix interface; callers pick one for performance only.
func New(b int, sparse bool) (Matrix, error) {
	if sparse {
		return NewSparse(b)
	}

	return NewDense(b)
}
