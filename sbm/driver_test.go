package sbm

import (
	"context"
	"testing"

	"github.com/katalvlaran/blockmodel/digraph"
	"github.com/katalvlaran/blockmodel/partition"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestRunEndToEndOnSmallGraph(t *testing.T) {
	g := buildTwoTrianglesWithBridge(t)
	opts := DefaultOptions()
	opts.ProposalsPerBlock = 5
	opts.MaxMHIterations = 3
	opts.Seed = 123

	res, err := Run(context.Background(), g, opts, prometheus.NewRegistry())
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.B, 1)
	require.Len(t, res.Assignment, g.N())
	for _, b := range res.Assignment {
		require.GreaterOrEqual(t, b, 0)
		require.Less(t, b, res.B)
	}
}

func TestRunDebugModeChecksInvariantsBetweenPhases(t *testing.T) {
	g := buildTwoTrianglesWithBridge(t)
	opts := DefaultOptions()
	opts.ProposalsPerBlock = 5
	opts.MaxMHIterations = 3
	opts.Seed = 123
	opts.Debug = true

	res, err := Run(context.Background(), g, opts, nil)
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.B, 1)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	g := buildTwoTrianglesWithBridge(t)
	opts := DefaultOptions()
	opts.Beta = -1

	_, err := Run(context.Background(), g, opts, nil)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRunReturnsCancelledWithBestSoFar(t *testing.T) {
	g := buildTwoTrianglesWithBridge(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := DefaultOptions()
	res, err := Run(ctx, g, opts, nil)
	require.ErrorIs(t, err, ErrCancelled)
	require.Len(t, res.Assignment, g.N())
}

func TestRunRejectsMismatchedWarmStart(t *testing.T) {
	g := buildTwoTrianglesWithBridge(t)
	opts := DefaultOptions()
	opts.WarmStart = []int{0, 0, 1}

	_, err := Run(context.Background(), g, opts, nil)
	require.ErrorIs(t, err, ErrInvalidGraph)
}

func TestDecideNextEmitsOptimalWhenBracketTight(t *testing.T) {
	tr := partition.NewTriplet()
	tr.Update(onePartitionSBM(t, 8), 20.0)
	tr.Update(onePartitionSBM(t, 7), 10.0) // better, smaller -> mid=7, hi=8
	tr.Update(onePartitionSBM(t, 6), 15.0) // worse, smaller -> lo=6

	_, _, optimal := decideNext(tr, 0.5)
	require.True(t, optimal) // hi.B - lo.B == 8-6 == 2: bracket is tight
}

func TestDecideNextBisectsWhenBracketLoose(t *testing.T) {
	tr := partition.NewTriplet()
	tr.Update(onePartitionSBM(t, 10), 20.0)
	tr.Update(onePartitionSBM(t, 8), 10.0) // better, smaller -> mid=8, hi=10
	tr.Update(onePartitionSBM(t, 6), 15.0) // worse, smaller -> lo=6

	next, btm, optimal := decideNext(tr, 0.5)
	require.False(t, optimal)
	require.NotNil(t, next)
	require.Greater(t, btm, 0)
}

func onePartitionSBM(t *testing.T, n int) *partition.Partition {
	t.Helper()
	b, err := digraph.NewBuilder(n)
	require.NoError(t, err)
	p, err := partition.New(b.Build(), false)
	require.NoError(t, err)

	return p
}
