package partition

import "sort"

// FromMerges carries out the best agglomerative merge for each block
// (spec.md §4.6 steps 2-4): blocks are visited in ascending order of
// bestDeltaS, and each scheduled merge is committed through a union-find-like
// block map so that chained merges resolve transitively without being
// re-scored. It stops after old.BlocksToMerge successful merges (or when
// every block has been considered, whichever comes first).
//
// FromMerges does not recompute M or the degree vectors; call
// InitializeEdgeCounts on the result afterward.
func FromMerges(old *Partition, best []int, deltaS []float64) (*Partition, error) {
	if len(best) != old.B || len(deltaS) != old.B {
		return nil, ErrBlockCountMismatch
	}

	order := make([]int, old.B)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return deltaS[order[i]] < deltaS[order[j]] })

	blockMap := make([]int, old.B)
	for i := range blockMap {
		blockMap[i] = i
	}

	assignment := append([]int(nil), old.Assignment...)
	numMerge := 0
	for _, mergeFrom := range order {
		if numMerge >= old.BlocksToMerge {
			break
		}
		target := best[mergeFrom]
		if target < 0 {
			continue // no valid merge candidate was ever proposed for this block
		}
		mergeTo := blockMap[target]
		if mergeTo == mergeFrom {
			continue
		}
		for i, v := range blockMap {
			if v == mergeFrom {
				blockMap[i] = mergeTo
			}
		}
		for i, a := range assignment {
			if a == mergeFrom {
				assignment[i] = mergeTo
			}
		}
		numMerge++
	}

	remaining := distinctSorted(assignment)
	relabel := make([]int, old.B)
	for i := range relabel {
		relabel[i] = -1
	}
	for newID, oldID := range remaining {
		relabel[oldID] = newID
	}
	for i, a := range assignment {
		assignment[i] = relabel[a]
	}

	return &Partition{
		B:          len(remaining),
		Assignment: assignment,
		sparse:     old.sparse,
	}, nil
}

func distinctSorted(assignment []int) []int {
	seen := make(map[int]struct{})
	for _, a := range assignment {
		seen[a] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for a := range seen {
		out = append(out, a)
	}
	sort.Ints(out)

	return out
}
