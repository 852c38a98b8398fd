package sbm

import (
	"math/rand"

	"github.com/katalvlaran/blockmodel/partition"
)

// propose implements the proposal kernel (spec.md §4.3): given the current
// block (or, for agglomerative moves, the block standing in for itself) r and
// its aggregated out/in neighbor-block weights, pick a destination block s.
//
// With probability B/(d[u]+B) (u a neighbor block sampled proportional to
// edge weight), s is chosen uniformly at random; otherwise s is sampled from
// the row+column neighbor distribution of u, biasing toward blocks already
// well connected to r's neighborhood. agglomerative excludes r itself from
// every random choice, since a block can never merge into itself.
//
// Returns the chosen block s and the (kOut, kIn, k) neighbor-weight totals
// used downstream by the edge-count update and delta-entropy kernels.
func propose(r int, outNbr, inNbr neighborCounts, p *partition.Partition, agglomerative bool, rng *rand.Rand) (s int, kOut, kIn, k int64) {
	kOut = outNbr.total()
	kIn = inNbr.total()
	k = kOut + kIn

	if k == 0 {
		return uniformRandomBlock(r, p.B, agglomerative, rng), kOut, kIn, k
	}

	combined := union(outNbr, inNbr)
	u := sampleWeighted(combined, rng)

	B := float64(p.B)
	pUniform := B / (float64(p.Deg[u]) + B)
	if rng.Float64() <= pUniform {
		return uniformRandomBlock(r, p.B, agglomerative, rng), kOut, kIn, k
	}

	rowU := blockNeighbors(p.M, u, true)
	colU := blockNeighbors(p.M, u, false)
	candidates := union(rowU, colU)
	if agglomerative {
		candidates = excludeBlock(candidates, r)
	}
	if candidates.total() == 0 {
		return uniformRandomBlock(r, p.B, agglomerative, rng), kOut, kIn, k
	}

	return sampleWeighted(candidates, rng), kOut, kIn, k
}

// sampleWeighted draws one block from nc proportional to its aggregated
// weight. nc.total() must be > 0.
func sampleWeighted(nc neighborCounts, rng *rand.Rand) int {
	target := rng.Float64() * float64(nc.total())
	var cum float64
	for i, c := range nc.Counts {
		cum += float64(c)
		if target < cum {
			return nc.Blocks[i]
		}
	}

	// Floating-point rounding landed exactly on the total; take the last
	// candidate rather than falling through with no answer.
	return nc.Blocks[len(nc.Blocks)-1]
}

// excludeBlock drops b from nc, if present.
func excludeBlock(nc neighborCounts, b int) neighborCounts {
	blocks := make([]int, 0, len(nc.Blocks))
	counts := make([]int64, 0, len(nc.Counts))
	for i, blk := range nc.Blocks {
		if blk == b {
			continue
		}
		blocks = append(blocks, blk)
		counts = append(counts, nc.Counts[i])
	}

	return neighborCounts{Blocks: blocks, Counts: counts}
}

// uniformRandomBlock picks a block in [0,B) uniformly at random, excluding
// current when exclude is set (agglomerative moves may never "merge" a block
// into itself). If B <= 1 there is no valid alternative; current is returned
// as a degenerate no-op the caller's B==1 guard is expected to short-circuit
// before ever reaching here.
func uniformRandomBlock(current, B int, exclude bool, rng *rand.Rand) int {
	if !exclude {
		return rng.Intn(B)
	}
	if B <= 1 {
		return current
	}
	s := rng.Intn(B - 1)
	if s >= current {
		s++
	}

	return s
}
