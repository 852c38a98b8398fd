package partition_test

import (
	"testing"

	"github.com/katalvlaran/blockmodel/digraph"
	"github.com/katalvlaran/blockmodel/partition"
	"github.com/stretchr/testify/require"
)

func onePartition(t *testing.T, n int) *partition.Partition {
	t.Helper()
	b, err := digraph.NewBuilder(n)
	require.NoError(t, err)
	g := b.Build()
	p, err := partition.New(g, false)
	require.NoError(t, err)

	return p
}

func TestTripletFirstUpdateSetsMid(t *testing.T) {
	tr := partition.NewTriplet()
	p := onePartition(t, 5)
	tr.Update(p, 10.0)

	require.NotNil(t, tr.Mid)
	require.Nil(t, tr.Hi)
	require.Nil(t, tr.Lo)
	require.Equal(t, 5, tr.Mid.Partition.B)
}

func TestTripletBetterSmallerBReplacesMid(t *testing.T) {
	tr := partition.NewTriplet()
	tr.Update(onePartition(t, 5), 10.0)
	tr.Update(onePartition(t, 3), 4.0) // better entropy, fewer blocks

	require.Equal(t, 3, tr.Mid.Partition.B)
	require.Equal(t, 5, tr.Hi.Partition.B)
	require.Nil(t, tr.Lo)
}

func TestTripletWorseSmallerBBecomesLo(t *testing.T) {
	tr := partition.NewTriplet()
	tr.Update(onePartition(t, 5), 4.0)
	tr.Update(onePartition(t, 3), 10.0) // worse entropy, fewer blocks

	require.Equal(t, 5, tr.Mid.Partition.B)
	require.Equal(t, 3, tr.Lo.Partition.B)
	require.Nil(t, tr.Hi)
}
