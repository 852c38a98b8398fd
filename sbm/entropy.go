package sbm

import (
	"math"

	"github.com/katalvlaran/blockmodel/bmatrix"
	"github.com/katalvlaran/blockmodel/partition"
	"github.com/rs/zerolog/log"
)

// term returns x*ln(x/(dOut*dIn)), or 0 when x == 0 (the summand the entropy
// formulas use throughout spec.md §4.5; 0*ln(0) is taken to be 0 by
// convention, matching compute_overall_entropy/compute_delta_entropy).
// A zero degree with x != 0 also yields 0 and logs a warning.
func term(x int64, dOut, dIn int64) float64 {
	if x == 0 {
		return 0
	}
	if dOut == 0 || dIn == 0 {
		log.Warn().Int64("x", x).Int64("d_out", dOut).Int64("d_in", dIn).Msg("entropy term with zero block degree; contribution taken as 0")

		return 0
	}

	return float64(x) * math.Log(float64(x)/(float64(dOut)*float64(dIn)))
}

// h is the binary-entropy-like helper from spec.md §4.5's model term:
// h(x) = (1+x)ln(1+x) - x*ln(x).
func h(x float64) float64 {
	var xlnx float64
	if x > 0 {
		xlnx = x * math.Log(x)
	}

	return (1+x)*math.Log(1+x) - xlnx
}

// computeOverallEntropy is S_overall from spec.md §4.5:
//
//	S = E*h(B^2/E) + N*ln(B) - sum_{i,j: M[i,j]>0} M[i,j]*ln(M[i,j]/(d_out[i]*d_in[j]))
//
// An empty graph (e == 0) has no model to score; by convention entropy is 0
// (spec.md §8 scenario S4, "empty graph ... no errors").
func computeOverallEntropy(p *partition.Partition, n int, e int64) float64 {
	if e == 0 {
		return 0
	}

	x := float64(p.B) * float64(p.B) / float64(e)
	modelS := float64(e)*h(x) + float64(n)*math.Log(float64(p.B))

	var dataSum float64
	for i := 0; i < p.B; i++ {
		nz, _ := p.M.RowNZ(i)
		for _, entry := range nz {
			dataSum += term(entry.Value, p.DegOut[i], p.DegIn[entry.Index])
		}
	}

	return modelS - dataSum
}

// computeDeltaEntropy is the delta-entropy kernel from spec.md §4.5
// (grounded on compute_delta_entropy): given the four new row/column vectors
// a proposed merge or vertex move would install, and the resulting new
// out/in degree vectors, return the signed change in S_overall's data term.
// Negative is an improvement (lower entropy).
//
// The old-state sum walks M's actual nonzero entries for rows r,s and
// columns r,s, excluding both r and s from the column sums to avoid
// double-counting the four cells the row sums already cover.
func computeDeltaEntropy(p *partition.Partition, r, s int, upd bmatrix.EdgeCountUpdate, degOutNew, degInNew []int64) float64 {
	var delta float64

	for j, x := range upd.RowR {
		if x != 0 {
			delta -= term(x, degOutNew[r], degInNew[j])
		}
	}
	for j, x := range upd.RowS {
		if x != 0 {
			delta -= term(x, degOutNew[s], degInNew[j])
		}
	}
	for i, x := range upd.ColR {
		if i == r || i == s || x == 0 {
			continue
		}
		delta -= term(x, degOutNew[i], degInNew[r])
	}
	for i, x := range upd.ColS {
		if i == r || i == s || x == 0 {
			continue
		}
		delta -= term(x, degOutNew[i], degInNew[s])
	}

	rowR, _ := p.M.RowNZ(r)
	for _, e := range rowR {
		delta += term(e.Value, p.DegOut[r], p.DegIn[e.Index])
	}
	rowS, _ := p.M.RowNZ(s)
	for _, e := range rowS {
		delta += term(e.Value, p.DegOut[s], p.DegIn[e.Index])
	}
	colR, _ := p.M.ColNZ(r)
	for _, e := range colR {
		if e.Index == r || e.Index == s {
			continue
		}
		delta += term(e.Value, p.DegOut[e.Index], p.DegIn[r])
	}
	colS, _ := p.M.ColNZ(s)
	for _, e := range colS {
		if e.Index == r || e.Index == s {
			continue
		}
		delta += term(e.Value, p.DegOut[e.Index], p.DegIn[s])
	}

	return delta
}

// computeHastings is the Metropolis-Hastings correction factor from
// spec.md §4.5 "Hastings correction": the ratio of the backward proposal
// probability (returning ni to r given the new state) to the forward
// proposal probability (having proposed s from r in the old state), summed
// over the union of ni's out/in neighbor blocks.
func computeHastings(p *partition.Partition, outNbr, inNbr neighborCounts, r, s int, rowRNew, colRNew []int64, degNew []int64) float64 {
	combined := union(outNbr, inNbr)
	B := float64(p.B)

	var pForward, pBackward float64
	for i, t := range combined.Blocks {
		cnt := float64(combined.Counts[i])
		mts, _ := p.M.Get(t, s)
		mst, _ := p.M.Get(s, t)
		pForward += cnt * (float64(mts+mst) + 1) / (float64(p.Deg[t]) + B)
		pBackward += cnt * (float64(rowRNew[t]+colRNew[t]) + 1) / (float64(degNew[t]) + B)
	}
	if pForward == 0 {
		return 1
	}

	return pBackward / pForward
}
