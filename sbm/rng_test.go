package sbm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveRNGIsDeterministicPerStream(t *testing.T) {
	a := deriveRNG(42, 3)
	b := deriveRNG(42, 3)
	require.Equal(t, a.Int63(), b.Int63())
}

func TestDeriveRNGDiffersAcrossStreams(t *testing.T) {
	a := deriveRNG(42, 3)
	b := deriveRNG(42, 4)
	require.NotEqual(t, a.Int63(), b.Int63())
}

func TestRNGFromSeedIsDeterministic(t *testing.T) {
	a := rngFromSeed(7)
	b := rngFromSeed(7)
	for i := 0; i < 5; i++ {
		require.Equal(t, a.Float64(), b.Float64())
	}
}
