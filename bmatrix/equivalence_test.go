package bmatrix_test

import (
	"testing"

	"github.com/katalvlaran/blockmodel/bmatrix"
	"github.com/stretchr/testify/require"
)

// TestDenseSparseEquivalence drives the same sequence of updates through both
// backends and asserts they agree on every observable, confirming that the
// sparse-matrix flag is a storage choice only (spec.md §6).
func TestDenseSparseEquivalence(t *testing.T) {
	dense, err := bmatrix.New(4, false)
	require.NoError(t, err)
	sparse, err := bmatrix.New(4, true)
	require.NoError(t, err)

	updates := []struct {
		r, s int
		u    bmatrix.EdgeCountUpdate
	}{
		{0, 1, bmatrix.EdgeCountUpdate{
			RowR: []int64{1, 2, 0, 0},
			RowS: []int64{2, 3, 1, 0},
			ColR: []int64{1, 2, 0, 0},
			ColS: []int64{2, 3, 1, 0},
		}},
		{2, 3, bmatrix.EdgeCountUpdate{
			RowR: []int64{0, 1, 4, 5},
			RowS: []int64{0, 0, 5, 6},
			ColR: []int64{0, 1, 4, 5},
			ColS: []int64{0, 0, 5, 6},
		}},
	}

	for _, step := range updates {
		require.NoError(t, dense.ApplyUpdate(step.r, step.s, step.u))
		require.NoError(t, sparse.ApplyUpdate(step.r, step.s, step.u))
	}

	require.Equal(t, dense.Total(), sparse.Total())
	require.Equal(t, dense.Trace(), sparse.Trace())

	for i := 0; i < 4; i++ {
		dRow, err := dense.RowNZ(i)
		require.NoError(t, err)
		sRow, err := sparse.RowNZ(i)
		require.NoError(t, err)
		require.Equal(t, dRow, sRow)

		dSum, err := dense.RowSum(i)
		require.NoError(t, err)
		sSum, err := sparse.RowSum(i)
		require.NoError(t, err)
		require.Equal(t, dSum, sSum)
	}

	require.NoError(t, dense.DropBlock(1))
	require.NoError(t, sparse.DropBlock(1))
	require.Equal(t, dense.Size(), sparse.Size())
	require.Equal(t, dense.Total(), sparse.Total())
}
