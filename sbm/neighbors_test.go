package sbm

import (
	"testing"

	"github.com/katalvlaran/blockmodel/digraph"
	"github.com/stretchr/testify/require"
)

func TestAggregateByBlockSumsAndSortsByBlock(t *testing.T) {
	arcs := []digraph.Arc{{To: 5, Weight: 2}, {To: 6, Weight: 3}, {To: 7, Weight: 1}}
	assignment := []int{0, 0, 0, 0, 0, 1, 0, 1} // vertices 5,7 -> block 1; vertex 6 -> block 0

	nc := aggregateByBlock(arcs, assignment)
	require.Equal(t, []int{0, 1}, nc.Blocks)
	require.Equal(t, []int64{3, 3}, nc.Counts) // block0: weight 3 (vertex 6); block1: 2+1=3 (vertices 5,7)
	require.Equal(t, int64(6), nc.total())
	require.Equal(t, int64(3), nc.weightTo(0))
	require.Equal(t, int64(0), nc.weightTo(2))
}

func TestSelfLoopWeight(t *testing.T) {
	arcs := []digraph.Arc{{To: 3, Weight: 5}, {To: 1, Weight: 2}}
	require.Equal(t, int64(2), selfLoopWeight(arcs, 1))
	require.Equal(t, int64(0), selfLoopWeight(arcs, 9))
}

func TestUnionSumsOverlappingBlocks(t *testing.T) {
	a := neighborCounts{Blocks: []int{0, 2}, Counts: []int64{1, 4}}
	b := neighborCounts{Blocks: []int{2, 3}, Counts: []int64{6, 1}}

	u := union(a, b)
	require.Equal(t, []int{0, 2, 3}, u.Blocks)
	require.Equal(t, []int64{1, 10, 1}, u.Counts)
}
