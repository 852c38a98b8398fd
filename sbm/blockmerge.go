package sbm

import (
	"context"

	"github.com/katalvlaran/blockmodel/partition"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// runBlockMerge is the block-merge phase (spec.md §4.6, grounded on
// block_merge.py's merge_blocks/propose_merge): for each block, sample
// ProposalsPerBlock agglomerative merge candidates and keep the one with the
// lowest delta-entropy, then commit the best BlocksToMerge of those via
// partition.FromMerges. The returned partition has no M or degree vectors;
// the caller rebuilds them with InitializeEdgeCounts.
//
// Per-block scoring is independent (spec.md §5a) and runs across up to
// opts.MaxParallelism goroutines; each block's candidate stream is derived
// from opts.Seed so results do not depend on goroutine scheduling order.
func runBlockMerge(ctx context.Context, p *partition.Partition, opts Options) (*partition.Partition, error) {
	B := p.B
	best := make([]int, B)
	bestDeltaS := make([]float64, B)
	for i := range best {
		best[i] = -1
	}

	if B > 1 {
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(opts.MaxParallelism)
		for r := 0; r < B; r++ {
			r := r
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				s, delta := scoreBlockMerges(p, r, opts)
				best[r] = s
				bestDeltaS[r] = delta

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	np, err := partition.FromMerges(p, best, bestDeltaS)
	if err != nil {
		return nil, err
	}

	if opts.Debug {
		log.Debug().Int("blocks_before", B).Int("blocks_after", np.B).Msg("block-merge phase committed")
	}

	return np, nil
}

// scoreBlockMerges runs the K-proposal loop for a single block r and returns
// its best (destination block, delta-entropy) pair. best == -1 if every
// proposal returned r itself, which only happens when B <= 1; a block with
// no neighbors still receives uniformly drawn candidates.
func scoreBlockMerges(p *partition.Partition, r int, opts Options) (int, float64) {
	outNbr := blockNeighbors(p.M, r, true)
	inNbr := blockNeighbors(p.M, r, false)
	selfCount, _ := p.M.Get(r, r)
	rng := deriveRNG(opts.Seed, uint64(r))

	best := -1
	bestDeltaS := 0.0
	for k := 0; k < opts.ProposalsPerBlock; k++ {
		s, kOut, kIn, kTot := propose(r, outNbr, inNbr, p, true, rng)
		if s == r {
			continue
		}
		upd := computeMergeUpdate(p.M, r, s, outNbr, inNbr, selfCount)
		degOutNew, degInNew, _ := computeNewBlockDegrees(p, r, s, kOut, kIn, kTot)
		delta := computeDeltaEntropy(p, r, s, upd, degOutNew, degInNew)
		if best == -1 || delta < bestDeltaS {
			best = s
			bestDeltaS = delta
		}
	}

	return best, bestDeltaS
}
