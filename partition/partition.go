package partition

import (
	"fmt"

	"github.com/katalvlaran/blockmodel/bmatrix"
	"github.com/katalvlaran/blockmodel/digraph"
)

// Partition is the block-model state: a vertex-to-block assignment, the
// inter-block edge-count matrix M, and the three degree vectors derived from
// it (spec.md §3 "Partition"). It is mutated only by merge commits and
// accepted MH moves; see package sbm.
type Partition struct {
	B             int
	Assignment    []int
	M             bmatrix.Matrix
	DegOut        []int64
	DegIn         []int64
	Deg           []int64
	BlocksToMerge int

	sparse bool // backend to use when InitializeEdgeCounts rebuilds M
}

// New constructs the singleton partition for g: one block per vertex
// (B == g.N(), assignment[v] == v), with M set to g's adjacency collapsed
// onto identity blocks. sparse selects the Matrix backend used for M and for
// any future rebuild via InitializeEdgeCounts.
func New(g *digraph.Graph, sparse bool) (*Partition, error) {
	assignment := make([]int, g.N())
	for v := range assignment {
		assignment[v] = v
	}

	p := &Partition{
		B:          g.N(),
		Assignment: assignment,
		sparse:     sparse,
	}
	if err := p.InitializeEdgeCounts(g); err != nil {
		return nil, err
	}

	return p, nil
}

// NewWithAssignment constructs a partition from an explicit, externally
// supplied block assignment (spec.md §6 "WarmStart"), renumbered to a dense
// 0..B-1 range by the caller. len(assignment) must equal g.N().
func NewWithAssignment(g *digraph.Graph, assignment []int, sparse bool) (*Partition, error) {
	if g.N() != len(assignment) {
		return nil, fmt.Errorf("partition: NewWithAssignment: graph has %d vertices, assignment has %d", g.N(), len(assignment))
	}

	maxBlock := -1
	for _, b := range assignment {
		if b > maxBlock {
			maxBlock = b
		}
	}

	p := &Partition{
		B:          maxBlock + 1,
		Assignment: append([]int(nil), assignment...),
		sparse:     sparse,
	}
	if err := p.InitializeEdgeCounts(g); err != nil {
		return nil, err
	}

	return p, nil
}

// InitializeEdgeCounts recomputes M, DegOut, DegIn, and Deg from scratch from
// (p.Assignment, g). Required after any operation that renumbers blocks
// (spec.md §4.2). The graph's vertex count must match len(p.Assignment).
func (p *Partition) InitializeEdgeCounts(g *digraph.Graph) error {
	if g.N() != len(p.Assignment) {
		return fmt.Errorf("partition: InitializeEdgeCounts: graph has %d vertices, assignment has %d", g.N(), len(p.Assignment))
	}

	m, err := bmatrix.New(p.B, p.sparse)
	if err != nil {
		return err
	}

	// Accumulate via per-row/col ApplyUpdate is wasteful here; build the
	// dense delta directly then write one row/col pair at a time through the
	// same update vectors the kernels produce, so Matrix never needs a raw
	// Set method.
	counts := make([][]int64, p.B)
	for i := range counts {
		counts[i] = make([]int64, p.B)
	}
	for v := 0; v < g.N(); v++ {
		bv := p.Assignment[v]
		for _, a := range g.OutNeighbors(v) {
			bw := p.Assignment[a.To]
			counts[bv][bw] += a.Weight
		}
	}

	for r := 0; r < p.B; r++ {
		u := bmatrix.EdgeCountUpdate{
			RowR: counts[r],
			RowS: counts[r],
			ColR: columnOf(counts, r),
			ColS: columnOf(counts, r),
		}
		if err := m.ApplyUpdate(r, r, u); err != nil {
			return fmt.Errorf("partition: InitializeEdgeCounts: %w", err)
		}
	}

	degOut := make([]int64, p.B)
	degIn := make([]int64, p.B)
	deg := make([]int64, p.B)
	for i := 0; i < p.B; i++ {
		rs, err := m.RowSum(i)
		if err != nil {
			return err
		}
		cs, err := m.ColSum(i)
		if err != nil {
			return err
		}
		degOut[i] = rs
		degIn[i] = cs
		deg[i] = rs + cs
	}

	p.M = m
	p.DegOut = degOut
	p.DegIn = degIn
	p.Deg = deg

	return nil
}

func columnOf(counts [][]int64, j int) []int64 {
	col := make([]int64, len(counts))
	for i := range counts {
		col[i] = counts[i][j]
	}

	return col
}

// Clone returns a deep, independent copy of p.
func (p *Partition) Clone() *Partition {
	c := &Partition{
		B:             p.B,
		Assignment:    append([]int(nil), p.Assignment...),
		M:             p.M.Clone(),
		DegOut:        append([]int64(nil), p.DegOut...),
		DegIn:         append([]int64(nil), p.DegIn...),
		Deg:           append([]int64(nil), p.Deg...),
		BlocksToMerge: p.BlocksToMerge,
		sparse:        p.sparse,
	}

	return c
}

// CheckInvariants re-verifies I1-I4 from spec.md §8 against the live state.
// Intended for debug builds and tests, not the algorithm's hot path.
func (p *Partition) CheckInvariants(e int64) error {
	if p.B <= 0 || p.B > len(p.Assignment) {
		return fmt.Errorf("%w: B=%d out of range", ErrInvariantViolation, p.B)
	}
	for v, bl := range p.Assignment {
		if bl < 0 || bl >= p.B {
			return fmt.Errorf("%w: assignment[%d]=%d out of [0,%d)", ErrInvariantViolation, v, bl, p.B)
		}
	}

	var total int64
	for i := 0; i < p.B; i++ {
		rowSum, err := p.M.RowSum(i)
		if err != nil {
			return err
		}
		colSum, err := p.M.ColSum(i)
		if err != nil {
			return err
		}
		if rowSum != p.DegOut[i] {
			return fmt.Errorf("%w: d_out[%d]=%d but row_sum=%d", ErrInvariantViolation, i, p.DegOut[i], rowSum)
		}
		if colSum != p.DegIn[i] {
			return fmt.Errorf("%w: d_in[%d]=%d but col_sum=%d", ErrInvariantViolation, i, p.DegIn[i], colSum)
		}
		if p.Deg[i] != p.DegOut[i]+p.DegIn[i] {
			return fmt.Errorf("%w: d[%d]=%d but d_out+d_in=%d", ErrInvariantViolation, i, p.Deg[i], p.DegOut[i]+p.DegIn[i])
		}
		total += rowSum
		for _, entry := range mustRowNZ(p.M, i) {
			if entry.Value < 0 {
				return fmt.Errorf("%w: M[%d,%d]=%d is negative", ErrInvariantViolation, i, entry.Index, entry.Value)
			}
		}
	}
	if total != e {
		return fmt.Errorf("%w: sum(M)=%d but E=%d", ErrInvariantViolation, total, e)
	}

	return nil
}

func mustRowNZ(m bmatrix.Matrix, i int) []bmatrix.Entry {
	nz, _ := m.RowNZ(i) // i is already bounds-checked by the caller
	return nz
}
