package sbm

import "fmt"

// ThresholdKind selects how the MH vertex phase decides an iteration has
// converged (spec.md §4.7 step 3, §6 "threshold strategy").
type ThresholdKind int

const (
	// EveryIteration compares the latest iteration's total delta-entropy
	// directly against ConvergenceThreshold.
	EveryIteration ThresholdKind = iota
	// MovingAverage compares the mean of the last Window iterations' total
	// delta-entropy against ConvergenceThreshold.
	MovingAverage
	// Factor compares the latest iteration's total delta-entropy against a
	// moving reference value, scaled by Factor and Direction.
	Factor
)

// Direction selects which side of the Factor reference counts as converged.
type Direction int

const (
	// Decrease means convergence requires staying above reference*(1-Factor)
	// (entropy gain has decreased enough relative to the reference).
	Decrease Direction = iota
	// Increase means convergence requires staying below reference*(1+Factor).
	Increase
)

// ThresholdStrategy configures the MH convergence check (spec.md §6). The
// zero value is EveryIteration.
type ThresholdStrategy struct {
	Kind      ThresholdKind
	Window    int       // used when Kind == MovingAverage; must be >= 1
	Direction Direction // used when Kind == Factor
	Factor    float64   // used when Kind == Factor; must be in (0,1)
}

// Options configures a single sbm.Run call (spec.md §6 "Options fields").
// The zero value is not valid; start from DefaultOptions.
type Options struct {
	// ProposalsPerBlock is the number K of candidate merge targets sampled
	// per block during the block-merge phase (spec.md §4.6).
	ProposalsPerBlock int

	// BlockReductionRate is the fraction of remaining blocks merged away on
	// each outer-loop iteration while the golden-section bracket is still
	// being established (spec.md §4.8 step 2b). Must be in (0,1).
	BlockReductionRate float64

	// Beta is the inverse-temperature factor in the MH acceptance
	// probability exp(-Beta * deltaS) (spec.md §4.7). Must be > 0.
	Beta float64

	// ConvergenceThreshold is the entropy-improvement cutoff consumed by
	// ThresholdStrategy (spec.md §4.7 step 3). Must be > 0.
	ConvergenceThreshold float64

	// ThresholdStrategy selects how ConvergenceThreshold is evaluated.
	ThresholdStrategy ThresholdStrategy

	// SparseMatrix selects the Matrix backend for every Partition created
	// during the run (spec.md §4.1).
	SparseMatrix bool

	// Seed is the root seed for every derived RNG stream (spec.md §5
	// "Determinism"). Two runs with the same seed, graph, and Options and
	// MaxParallelism == 1 produce bit-identical results.
	Seed int64

	// MaxParallelism bounds the number of goroutines used by the block-merge
	// phase's per-block proposal fan-out (spec.md §5a). Must be >= 1.
	MaxParallelism int

	// Debug enables zerolog debug-level phase-boundary logging.
	Debug bool

	// MaxMHIterations caps the number of full-graph sweeps the MH vertex
	// phase performs per call, guarding against a pathological convergence
	// check that never trips (spec.md §4.7). Must be >= 1.
	MaxMHIterations int

	// WarmStart, if non-nil, seeds the first partition instead of starting
	// from the one-block-per-vertex singleton partition (spec.md §6). Its
	// length must equal the graph's vertex count.
	WarmStart []int
}

// DefaultOptions returns the Options spec.md §6 lists as defaults.
func DefaultOptions() Options {
	return Options{
		ProposalsPerBlock:    10,
		BlockReductionRate:   0.5,
		Beta:                 3.0,
		ConvergenceThreshold: 5e-4,
		ThresholdStrategy:    ThresholdStrategy{Kind: Factor, Direction: Decrease, Factor: 0.02},
		SparseMatrix:         false,
		Seed:                 defaultRNGSeed,
		MaxParallelism:       1,
		Debug:                false,
		MaxMHIterations:      100,
	}
}

// validate checks every Options field in isolation, independent of the graph
// being partitioned (mirrors tsp's Stage-1 Options-only validation).
func (o Options) validate() error {
	if o.ProposalsPerBlock < 1 {
		return fmt.Errorf("%w: ProposalsPerBlock must be >= 1, got %d", ErrInvalidConfig, o.ProposalsPerBlock)
	}
	if o.BlockReductionRate <= 0 || o.BlockReductionRate >= 1 {
		return fmt.Errorf("%w: BlockReductionRate must be in (0,1), got %v", ErrInvalidConfig, o.BlockReductionRate)
	}
	if o.Beta <= 0 {
		return fmt.Errorf("%w: Beta must be > 0, got %v", ErrInvalidConfig, o.Beta)
	}
	if o.ConvergenceThreshold <= 0 {
		return fmt.Errorf("%w: ConvergenceThreshold must be > 0, got %v", ErrInvalidConfig, o.ConvergenceThreshold)
	}
	if o.MaxParallelism < 1 {
		return fmt.Errorf("%w: MaxParallelism must be >= 1, got %d", ErrInvalidConfig, o.MaxParallelism)
	}
	if o.MaxMHIterations < 1 {
		return fmt.Errorf("%w: MaxMHIterations must be >= 1, got %d", ErrInvalidConfig, o.MaxMHIterations)
	}
	switch o.ThresholdStrategy.Kind {
	case EveryIteration:
	case MovingAverage:
		if o.ThresholdStrategy.Window < 1 {
			return fmt.Errorf("%w: ThresholdStrategy.Window must be >= 1, got %d", ErrInvalidConfig, o.ThresholdStrategy.Window)
		}
	case Factor:
		if o.ThresholdStrategy.Factor <= 0 || o.ThresholdStrategy.Factor >= 1 {
			return fmt.Errorf("%w: ThresholdStrategy.Factor must be in (0,1), got %v", ErrInvalidConfig, o.ThresholdStrategy.Factor)
		}
	default:
		return fmt.Errorf("%w: unknown ThresholdStrategy.Kind %d", ErrInvalidConfig, o.ThresholdStrategy.Kind)
	}

	return nil
}
