package sbm

import (
	"sort"

	"github.com/katalvlaran/blockmodel/bmatrix"
	"github.com/katalvlaran/blockmodel/digraph"
)

// neighborCounts is a proposal or update kernel's view of "the distinct
// blocks a vertex or block touches, and how much weight goes to each"
// (spec.md §4.3/§4.4 precondition: "counts arrays are pre-aggregated by
// distinct neighbor-block"). Blocks is ascending and parallel to Counts.
type neighborCounts struct {
	Blocks []int
	Counts []int64
}

// total returns the sum of Counts.
func (n neighborCounts) total() int64 {
	var sum int64
	for _, c := range n.Counts {
		sum += c
	}

	return sum
}

// weightTo returns the aggregated weight directed at block b, or 0.
func (n neighborCounts) weightTo(b int) int64 {
	for i, blk := range n.Blocks {
		if blk == b {
			return n.Counts[i]
		}
	}

	return 0
}

// aggregateByBlock groups a vertex's arcs by the current block of each arc's
// endpoint, summing weights within a block (including any self-loop, whose
// target block is the vertex's own block). This is deliberately not excluding
// self-loops: the merge and vertex-move kernels both rely on the neighbor
// aggregate already containing the reflexive contribution, with the caller
// passing the self-loop weight separately so the kernel's add-then-subtract
// arithmetic cancels it out exactly once (mirrors how the block-level
// aggregate naturally includes the diagonal entry M[r,r]).
func aggregateByBlock(arcs []digraph.Arc, assignment []int) neighborCounts {
	byBlock := make(map[int]int64, len(arcs))
	for _, a := range arcs {
		byBlock[assignment[a.To]] += a.Weight
	}

	return mapToNeighborCounts(byBlock)
}

// selfLoopWeight returns the weight of v's self-loop among arcs, or 0.
func selfLoopWeight(arcs []digraph.Arc, v int) int64 {
	var w int64
	for _, a := range arcs {
		if a.To == v {
			w += a.Weight
		}
	}

	return w
}

// blockNeighbors reads row r (outgoing=true) or column r (outgoing=false) of
// M directly, giving the block-level neighbor aggregate used by block-merge
// proposals. Unlike aggregateByBlock, nothing is excluded: the diagonal entry
// M[r,r], if nonzero, appears in the result exactly like any other block.
func blockNeighbors(m bmatrix.Matrix, r int, outgoing bool) neighborCounts {
	var entries []bmatrix.Entry
	if outgoing {
		entries, _ = m.RowNZ(r)
	} else {
		entries, _ = m.ColNZ(r)
	}
	nc := neighborCounts{Blocks: make([]int, len(entries)), Counts: make([]int64, len(entries))}
	for i, e := range entries {
		nc.Blocks[i] = e.Index
		nc.Counts[i] = e.Value
	}

	return nc
}

// mapToNeighborCounts sorts a map's keys ascending so downstream weighted
// sampling is deterministic regardless of Go's map iteration order.
func mapToNeighborCounts(byBlock map[int]int64) neighborCounts {
	blocks := make([]int, 0, len(byBlock))
	for b := range byBlock {
		blocks = append(blocks, b)
	}
	sort.Ints(blocks)
	counts := make([]int64, len(blocks))
	for i, b := range blocks {
		counts[i] = byBlock[b]
	}

	return neighborCounts{Blocks: blocks, Counts: counts}
}

// union combines two neighborCounts into one, summing weights for blocks that
// appear in both (used to build the combined out+in distribution propose()
// samples the random neighbor from, and the set Hastings sums over).
func union(a, b neighborCounts) neighborCounts {
	byBlock := make(map[int]int64, len(a.Blocks)+len(b.Blocks))
	for i, blk := range a.Blocks {
		byBlock[blk] += a.Counts[i]
	}
	for i, blk := range b.Blocks {
		byBlock[blk] += b.Counts[i]
	}

	return mapToNeighborCounts(byBlock)
}
