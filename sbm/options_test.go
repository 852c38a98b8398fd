package sbm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultOptionsValidate(t *testing.T) {
	require.NoError(t, DefaultOptions().validate())
}

func TestDefaultOptionsThresholdStrategyMatchesDocumentedDefault(t *testing.T) {
	got := DefaultOptions().ThresholdStrategy
	require.Equal(t, ThresholdStrategy{Kind: Factor, Direction: Decrease, Factor: 0.02}, got)
}

func TestValidateRejectsBadFields(t *testing.T) {
	cases := []func(*Options){
		func(o *Options) { o.ProposalsPerBlock = 0 },
		func(o *Options) { o.BlockReductionRate = 0 },
		func(o *Options) { o.BlockReductionRate = 1 },
		func(o *Options) { o.Beta = 0 },
		func(o *Options) { o.ConvergenceThreshold = 0 },
		func(o *Options) { o.MaxParallelism = 0 },
		func(o *Options) { o.MaxMHIterations = 0 },
		func(o *Options) { o.ThresholdStrategy = ThresholdStrategy{Kind: MovingAverage, Window: 0} },
		func(o *Options) { o.ThresholdStrategy = ThresholdStrategy{Kind: Factor, Factor: 0} },
	}
	for _, mutate := range cases {
		o := DefaultOptions()
		mutate(&o)
		require.ErrorIs(t, o.validate(), ErrInvalidConfig)
	}
}

func TestValidateAcceptsMovingAverageAndFactor(t *testing.T) {
	o := DefaultOptions()
	o.ThresholdStrategy = ThresholdStrategy{Kind: MovingAverage, Window: 3}
	require.NoError(t, o.validate())

	o.ThresholdStrategy = ThresholdStrategy{Kind: Factor, Direction: Decrease, Factor: 0.02}
	require.NoError(t, o.validate())
}
