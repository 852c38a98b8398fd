package partition

// Snapshot is one deep-copied partitioning result held by a Triplet, paired
// with the overall entropy that was computed for it (spec.md §3
// "PartitionTriplet").
type Snapshot struct {
	Partition *Partition
	Entropy   float64
}

// Triplet is the three-snapshot bracket (hi, mid, lo) the outer golden-
// section driver maintains over the number of blocks B, ordered by
// decreasing B. When all three are present, Mid always holds the lowest
// entropy of the three (spec.md §3 invariant). Any of the three may be nil
// until the bracket is established.
type Triplet struct {
	Hi  *Snapshot
	Mid *Snapshot
	Lo  *Snapshot

	// OptimalFound is set by the outer driver once the bracket has narrowed
	// enough that Mid is taken as the final answer (spec.md §4.8 step 2a).
	OptimalFound bool
}

// NewTriplet returns an empty bracket.
func NewTriplet() *Triplet { return &Triplet{} }

// Update inserts a newly evaluated partition into the bracket, re-sorting by
// B and keeping only the snapshot with the lowest entropy as Mid. Snapshots
// dominated on both axes (worse B-distance-from-optimum AND worse entropy)
// are discarded, matching prepare_for_partition_on_next_num_blocks's
// "holders for the best three partitions so far" rule.
func (t *Triplet) Update(p *Partition, entropy float64) {
	candidate := &Snapshot{Partition: p.Clone(), Entropy: entropy}

	switch {
	case t.Mid == nil:
		t.Mid = candidate
	case p.B > t.Mid.Partition.B:
		t.insertAbove(candidate)
	case p.B < t.Mid.Partition.B:
		t.insertBelow(candidate)
	default:
		// Same B as the current best: keep whichever has lower entropy.
		if candidate.Entropy < t.Mid.Entropy {
			t.Mid = candidate
		}
	}
}

// insertAbove handles a candidate with more blocks than the current Mid.
func (t *Triplet) insertAbove(candidate *Snapshot) {
	if candidate.Entropy < t.Mid.Entropy {
		// The new candidate becomes the best-so-far; the old mid slides down
		// to become the new lo side of the bracket.
		t.Lo = t.Mid
		t.Mid = candidate
		t.Hi = nil

		return
	}
	if t.Hi == nil || candidate.Partition.B < t.Hi.Partition.B {
		t.Hi = candidate
	}
}

// insertBelow handles a candidate with fewer blocks than the current Mid.
func (t *Triplet) insertBelow(candidate *Snapshot) {
	if candidate.Entropy < t.Mid.Entropy {
		t.Hi = t.Mid
		t.Mid = candidate
		t.Lo = nil

		return
	}
	if t.Lo == nil || candidate.Partition.B > t.Lo.Partition.B {
		t.Lo = candidate
	}
}
