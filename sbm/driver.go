package sbm

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/blockmodel/digraph"
	"github.com/katalvlaran/blockmodel/metrics"
	"github.com/katalvlaran/blockmodel/partition"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// Result is what Run returns: the final block assignment, its entropy, and a
// timeline of the search's progress (spec.md §6 "Outputs").
type Result struct {
	Assignment []int
	B          int
	Entropy    float64
	Timeline   []metrics.Record
}

// Run is the outer driver (spec.md §4.8): it alternates the block-merge
// phase and the MH vertex phase, tracking the best-known partition at each
// distinct block count in a golden-section bracket, until the bracket
// narrows to the point where the middle snapshot is taken as optimal.
//
// ctx is checked between phases; on cancellation Run returns ErrCancelled
// together with the best Result found so far.
func Run(ctx context.Context, g *digraph.Graph, opts Options, reg prometheus.Registerer) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	p, err := initialPartition(g, opts)
	if err != nil {
		return Result{}, err
	}

	rng := rngFromSeed(opts.Seed)
	tl := metrics.NewTimeline(reg)
	triplet := partition.NewTriplet()
	triplet.Update(p, computeOverallEntropy(p, g.N(), g.E()))

	for {
		if err := ctx.Err(); err != nil {
			return resultFromTriplet(triplet, tl), fmt.Errorf("%w: %v", ErrCancelled, err)
		}

		next, blocksToMerge, optimal := decideNext(triplet, opts.BlockReductionRate)
		if optimal {
			triplet.OptimalFound = true

			return resultFromTriplet(triplet, tl), nil
		}
		next.BlocksToMerge = blocksToMerge

		merged, err := runBlockMerge(ctx, next, opts)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				err = fmt.Errorf("%w: %v", ErrCancelled, ctxErr)
			}
			return resultFromTriplet(triplet, tl), err
		}
		if err := merged.InitializeEdgeCounts(g); err != nil {
			return resultFromTriplet(triplet, tl), err
		}
		if opts.Debug {
			if err := merged.CheckInvariants(g.E()); err != nil {
				return resultFromTriplet(triplet, tl), err
			}
		}

		if err := runMH(ctx, merged, g, opts, deriveRNG(rng.Int63(), 0), tl); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				err = fmt.Errorf("%w: %v", ErrCancelled, ctxErr)
			}
			return resultFromTriplet(triplet, tl), err
		}
		if opts.Debug {
			if err := merged.CheckInvariants(g.E()); err != nil {
				return resultFromTriplet(triplet, tl), err
			}
		}

		entropy := computeOverallEntropy(merged, g.N(), g.E())
		triplet.Update(merged, entropy)

		if opts.Debug {
			log.Debug().Int("B", merged.B).Float64("entropy", entropy).Msg("outer loop iteration complete")
		}
	}
}

func initialPartition(g *digraph.Graph, opts Options) (*partition.Partition, error) {
	if opts.WarmStart == nil {
		return partition.New(g, opts.SparseMatrix)
	}
	if len(opts.WarmStart) != g.N() {
		return nil, fmt.Errorf("%w: WarmStart has %d entries, graph has %d vertices", ErrInvalidGraph, len(opts.WarmStart), g.N())
	}

	distinct := make(map[int]int)
	assignment := make([]int, len(opts.WarmStart))
	for v, b := range opts.WarmStart {
		id, ok := distinct[b]
		if !ok {
			id = len(distinct)
			distinct[b] = id
		}
		assignment[v] = id
	}

	return partition.NewWithAssignment(g, assignment, opts.SparseMatrix)
}

// decideNext implements spec.md §4.8 step 2: decide whether the bracket has
// narrowed enough to stop, and if not, which side to bisect next via the
// golden ratio (grounded on prepare_for_partition_on_next_num_blocks).
func decideNext(t *partition.Triplet, rate float64) (next *partition.Partition, blocksToMerge int, optimal bool) {
	if t.Lo == nil {
		p := t.Mid.Partition.Clone()
		btm := int(float64(p.B) * rate)
		if btm == 0 {
			return nil, 0, true
		}

		return p, btm, false
	}

	if t.Hi != nil && t.Hi.Partition.B-t.Lo.Partition.B == 2 {
		return nil, 0, true
	}
	if t.Hi == nil && t.Mid.Partition.B-t.Lo.Partition.B == 1 {
		return nil, 0, true
	}

	var sideHigh, sideLow *partition.Snapshot
	switch {
	case t.Hi == nil:
		sideHigh, sideLow = t.Mid, t.Lo
	case t.Hi.Partition.B-t.Mid.Partition.B >= t.Mid.Partition.B-t.Lo.Partition.B:
		sideHigh, sideLow = t.Hi, t.Mid
	default:
		sideHigh, sideLow = t.Mid, t.Lo
	}

	nextB := sideLow.Partition.B + int(math.Round(0.618*float64(sideHigh.Partition.B-sideLow.Partition.B)))
	p := sideHigh.Partition.Clone()
	btm := sideHigh.Partition.B - nextB

	return p, btm, false
}

func resultFromTriplet(t *partition.Triplet, tl *metrics.Timeline) Result {
	return Result{
		Assignment: append([]int(nil), t.Mid.Partition.Assignment...),
		B:          t.Mid.Partition.B,
		Entropy:    t.Mid.Entropy,
		Timeline:   tl.Records(),
	}
}
