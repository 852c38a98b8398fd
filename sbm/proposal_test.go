package sbm

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSampleWeightedAlwaysReturnsConcentratedBlock(t *testing.T) {
	nc := neighborCounts{Blocks: []int{7}, Counts: []int64{42}}
	rng := rngFromSeed(1)
	for i := 0; i < 20; i++ {
		require.Equal(t, 7, sampleWeighted(nc, rng))
	}
}

func TestSampleWeightedStaysWithinDomain(t *testing.T) {
	nc := neighborCounts{Blocks: []int{2, 5, 9}, Counts: []int64{1, 1, 1}}
	rng := rngFromSeed(42)
	for i := 0; i < 100; i++ {
		s := sampleWeighted(nc, rng)
		require.Contains(t, nc.Blocks, s)
	}
}

func TestUniformRandomBlockExcludesCurrent(t *testing.T) {
	rng := rngFromSeed(7)
	for i := 0; i < 100; i++ {
		s := uniformRandomBlock(3, 5, true, rng)
		require.NotEqual(t, 3, s)
		require.GreaterOrEqual(t, s, 0)
		require.Less(t, s, 5)
	}
}

func TestUniformRandomBlockDegenerateSingleBlock(t *testing.T) {
	rng := rngFromSeed(1)
	require.Equal(t, 0, uniformRandomBlock(0, 1, true, rng))
}

func TestExcludeBlockDropsOnlyNamedBlock(t *testing.T) {
	nc := neighborCounts{Blocks: []int{0, 1, 2}, Counts: []int64{10, 20, 30}}
	out := excludeBlock(nc, 1)
	require.Equal(t, []int{0, 2}, out.Blocks)
	require.Equal(t, []int64{10, 30}, out.Counts)
}

func TestProposeWithNoNeighborsFallsBackToUniform(t *testing.T) {
	m := build3x3(t)
	p := fakePartition(m, []int64{5, 7, 6}, []int64{3, 8, 7}, []int64{8, 15, 13})
	rng := rand.New(rand.NewSource(3))

	s, kOut, kIn, k := propose(0, neighborCounts{}, neighborCounts{}, p, true, rng)
	require.Equal(t, int64(0), kOut)
	require.Equal(t, int64(0), kIn)
	require.Equal(t, int64(0), k)
	require.NotEqual(t, 0, s) // agglomerative excludes r
}
