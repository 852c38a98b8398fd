package sbm

import (
	"context"
	"testing"

	"github.com/katalvlaran/blockmodel/digraph"
	"github.com/katalvlaran/blockmodel/partition"
	"github.com/stretchr/testify/require"
)

// buildTwoTrianglesWithBridge mirrors spec.md §8 scenario S1: two tightly
// connected triples joined by a single bridge edge.
func buildTwoTrianglesWithBridge(t *testing.T) *digraph.Graph {
	t.Helper()
	b, err := digraph.NewBuilder(6)
	require.NoError(t, err)
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}, {2, 3}}
	for _, e := range edges {
		require.NoError(t, b.AddEdge(e[0], e[1], 1))
	}

	return b.Build()
}

func TestRunBlockMergeReducesBlocksAndPreservesInvariants(t *testing.T) {
	g := buildTwoTrianglesWithBridge(t)
	p, err := partition.New(g, false)
	require.NoError(t, err)
	p.BlocksToMerge = 3

	opts := DefaultOptions()
	opts.ProposalsPerBlock = 5
	opts.Seed = 42

	merged, err := runBlockMerge(context.Background(), p, opts)
	require.NoError(t, err)
	require.Less(t, merged.B, 6)
	require.GreaterOrEqual(t, merged.B, 1)

	require.NoError(t, merged.InitializeEdgeCounts(g))
	require.NoError(t, merged.CheckInvariants(g.E()))
}

func TestRunBlockMergeSingleBlockIsNoOp(t *testing.T) {
	g := buildTwoTrianglesWithBridge(t)
	assignment := make([]int, g.N())
	p, err := partition.NewWithAssignment(g, assignment, false)
	require.NoError(t, err)
	require.Equal(t, 1, p.B)
	p.BlocksToMerge = 1

	opts := DefaultOptions()
	merged, err := runBlockMerge(context.Background(), p, opts)
	require.NoError(t, err)
	require.Equal(t, 1, merged.B)
}
