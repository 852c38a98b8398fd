package sbm

import (
	"testing"

	"github.com/katalvlaran/blockmodel/bmatrix"
	"github.com/katalvlaran/blockmodel/partition"
	"github.com/stretchr/testify/require"
)

// fakePartition wraps an already-built Matrix and degree vectors into a
// Partition, bypassing InitializeEdgeCounts, for kernel-level tests that
// don't need a real digraph.Graph behind them.
func fakePartition(m bmatrix.Matrix, degOut, degIn, deg []int64) *partition.Partition {
	return &partition.Partition{
		B:          m.Size(),
		Assignment: make([]int, m.Size()),
		M:          m,
		DegOut:     degOut,
		DegIn:      degIn,
		Deg:        deg,
	}
}

// build3x3 assembles the fixed matrix
//
//	[2 3 0]
//	[1 4 2]
//	[0 1 5]
//
// by writing one row/column pair at a time, the same way
// partition.InitializeEdgeCounts bootstraps M from scratch.
func build3x3(t *testing.T) bmatrix.Matrix {
	t.Helper()
	m, err := bmatrix.New(3, false)
	require.NoError(t, err)

	rows := [][]int64{{2, 3, 0}, {1, 4, 2}, {0, 1, 5}}
	cols := [][]int64{{2, 1, 0}, {3, 4, 1}, {0, 2, 5}}
	for i := 0; i < 3; i++ {
		require.NoError(t, m.ApplyUpdate(i, i, bmatrix.EdgeCountUpdate{
			RowR: rows[i], RowS: rows[i], ColR: cols[i], ColS: cols[i],
		}))
	}

	return m
}

func TestComputeMergeUpdateMovesMassCorrectly(t *testing.T) {
	m := build3x3(t)
	outNbr := blockNeighbors(m, 0, true)
	inNbr := blockNeighbors(m, 0, false)
	selfCount, err := m.Get(0, 0)
	require.NoError(t, err)

	upd := computeMergeUpdate(m, 0, 1, outNbr, inNbr, selfCount)

	require.Equal(t, []int64{0, 0, 0}, upd.RowR)
	require.Equal(t, []int64{0, 0, 0}, upd.ColR)
	require.Equal(t, []int64{0, 10, 2}, upd.RowS)
	require.Equal(t, []int64{0, 10, 1}, upd.ColS)

	require.NoError(t, m.ApplyUpdate(0, 1, upd))
	total := m.Total()
	require.Equal(t, int64(18), total)
}

func TestComputeVertexMoveUpdateSingleVertex(t *testing.T) {
	m := build3x3(t)
	outNbr := neighborCounts{Blocks: []int{0, 1}, Counts: []int64{1, 1}}
	inNbr := neighborCounts{Blocks: []int{1}, Counts: []int64{1}}

	upd := computeVertexMoveUpdate(m, 0, 2, outNbr, inNbr, 0)

	require.Equal(t, []int64{1, 2, 0}, upd.RowR)
	require.Equal(t, []int64{1, 0, 1}, upd.ColR)
	require.Equal(t, []int64{1, 2, 5}, upd.RowS)
	require.Equal(t, []int64{0, 3, 5}, upd.ColS)

	require.NoError(t, m.ApplyUpdate(0, 2, upd))
	require.Equal(t, int64(18), m.Total())
}

func TestComputeVertexMoveUpdateIdentityWhenRSameAsS(t *testing.T) {
	m := build3x3(t)
	before := m.Clone()

	upd := computeVertexMoveUpdate(m, 1, 1, neighborCounts{}, neighborCounts{}, 0)
	require.NoError(t, m.ApplyUpdate(1, 1, upd))

	for i := 0; i < 3; i++ {
		gotRow, err := m.RowSum(i)
		require.NoError(t, err)
		wantRow, err := before.RowSum(i)
		require.NoError(t, err)
		require.Equal(t, wantRow, gotRow)
	}
}

func TestComputeNewBlockDegreesZeroesMergedBlock(t *testing.T) {
	m := build3x3(t)
	degOut := []int64{5, 7, 6}
	degIn := []int64{3, 8, 7}
	deg := []int64{8, 15, 13}
	p := fakePartition(m, degOut, degIn, deg)

	outNbr := blockNeighbors(m, 0, true)
	inNbr := blockNeighbors(m, 0, false)
	kOut, kIn := outNbr.total(), inNbr.total()

	newOut, newIn, newDeg := computeNewBlockDegrees(p, 0, 1, kOut, kIn, kOut+kIn)
	require.Equal(t, int64(0), newOut[0])
	require.Equal(t, int64(0), newIn[0])
	require.Equal(t, int64(0), newDeg[0])
	require.Equal(t, degOut[1]+kOut, newOut[1])
	require.Equal(t, degIn[1]+kIn, newIn[1])
}
