package bmatrix

// Entry is one nonzero (index, value) pair yielded by RowNZ/ColNZ.
type Entry struct {
	Index int
	Value int64
}

// EdgeCountUpdate holds the four dense vectors of length B produced by the
// edge-count update kernel (spec.md §4.4): the new row r, row s, column r and
// column s of the inter-block edge-count matrix under a proposed merge or
// vertex move. It is ephemeral: either applied atomically via
// Matrix.ApplyUpdate, or discarded.
type EdgeCountUpdate struct {
	RowR []int64
	RowS []int64
	ColR []int64
	ColS []int64
}

// Matrix is a B×B nonnegative-integer matrix with the operations the
// partitioner needs: fast row/column iteration over nonzero entries, scalar
// row/column/diagonal/total sums, and the two structural mutations
// (ApplyUpdate, DropBlock) driven by the block-merge and MH phases.
//
// Implementations: Dense (flat slice, fast for small/medium B) and Sparse
// (map-of-maps, fast when B is large and M is mostly zero). Both are chosen
// at construction via New(b, sparse) and are interchangeable through this
// interface; storage choice has no semantic effect.
type Matrix interface {
	// Size returns B, the current matrix dimension.
	Size() int

	// Get returns M[i,j]. Returns ErrInvalidIndex if i or j is out of range.
	Get(i, j int) (int64, error)

	// RowNZ returns the nonzero entries of row i in ascending column order.
	RowNZ(i int) ([]Entry, error)

	// ColNZ returns the nonzero entries of column j in ascending row order.
	ColNZ(j int) ([]Entry, error)

	// RowSum returns sum_j M[i,j].
	RowSum(i int) (int64, error)

	// ColSum returns sum_i M[i,j].
	ColSum(j int) (int64, error)

	// Trace returns sum_i M[i,i].
	Trace() int64

	// Total returns sum_{i,j} M[i,j].
	Total() int64

	// ApplyUpdate replaces rows r,s and columns r,s with u's vectors.
	// Returns ErrInvalidIndex if r or s is out of range, ErrDimensionMismatch
	// if any vector's length != Size(), and ErrInvariantViolation if the
	// result would contain a negative entry or if u.RowR/u.ColR/u.RowS/u.ColS
	// disagree on the shared (r,r),(r,s),(s,r),(s,s) cells.
	ApplyUpdate(r, s int, u EdgeCountUpdate) error

	// DropBlock deletes row b and column b, renumbering blocks above b
	// downward by one. Returns ErrInvalidIndex if b is out of range.
	DropBlock(b int) error

	// Clone returns a deep, independent copy.
	Clone() Matrix
}

// consistentUpdate verifies that u's four vectors agree on the four cells
// they jointly describe: (r,r) from RowR[r] and ColR[r]; (r,s) from RowR[s]
// and ColS[r]; (s,r) from RowS[r] and ColR[s]; (s,s) from RowS[s] and
// ColS[s]. This is the "preserving symmetry of update" contract from
// spec.md §4.1.
func consistentUpdate(r, s int, u EdgeCountUpdate) bool {
	return u.RowR[r] == u.ColR[r] &&
		u.RowR[s] == u.ColS[r] &&
		u.RowS[r] == u.ColR[s] &&
		u.RowS[s] == u.ColS[s]
}

func anyNegative(vs ...[]int64) bool {
	for _, v := range vs {
		for _, x := range v {
			if x < 0 {
				return true
			}
		}
	}

	return false
}
