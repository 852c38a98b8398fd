package bmatrix

import (
	"fmt"
	"sort"
)

// Sparse is a map-of-maps Matrix implementation, grounded on the teacher's
// adjacency-list shape (map[id]map[id]value) but keyed by integer block ids
// and storing int64 edge counts instead of *Edge pointers. Rows with no
// nonzero entries carry no map at all, so memory scales with B^2 only in the
// dense case.
type Sparse struct {
	b    int
	rows map[int]map[int]int64 // rows[i][j] = M[i,j], omitted when zero
	cols map[int]map[int]int64 // cols[j][i] = M[i,j], kept in lockstep with rows
}

var _ Matrix = (*Sparse)(nil)

// NewSparse allocates a b×b zero Sparse matrix. Returns ErrInvalidIndex if
// b <= 0.
func NewSparse(b int) (*Sparse, error) {
	if b <= 0 {
		return nil, ErrInvalidIndex
	}

	return &Sparse{
		b:    b,
		rows: make(map[int]map[int]int64),
		cols: make(map[int]map[int]int64),
	}, nil
}

func sparseErrorf(method string, err error) error {
	return fmt.Errorf("Sparse.%s: %w", method, err)
}

func (m *Sparse) Size() int { return m.b }

func (m *Sparse) inRange(i int) bool { return i >= 0 && i < m.b }

func (m *Sparse) Get(i, j int) (int64, error) {
	if !m.inRange(i) || !m.inRange(j) {
		return 0, sparseErrorf("Get", ErrInvalidIndex)
	}
	if row, ok := m.rows[i]; ok {
		return row[j], nil
	}

	return 0, nil
}

// set writes v at (i,j), keeping rows/cols in lockstep and pruning zero
// entries so row/col maps never accumulate explicit zeros.
func (m *Sparse) set(i, j int, v int64) {
	if v == 0 {
		if row, ok := m.rows[i]; ok {
			delete(row, j)
			if len(row) == 0 {
				delete(m.rows, i)
			}
		}
		if col, ok := m.cols[j]; ok {
			delete(col, i)
			if len(col) == 0 {
				delete(m.cols, j)
			}
		}

		return
	}
	row, ok := m.rows[i]
	if !ok {
		row = make(map[int]int64)
		m.rows[i] = row
	}
	row[j] = v
	col, ok := m.cols[j]
	if !ok {
		col = make(map[int]int64)
		m.cols[j] = col
	}
	col[i] = v
}

func (m *Sparse) RowNZ(i int) ([]Entry, error) {
	if !m.inRange(i) {
		return nil, sparseErrorf("RowNZ", ErrInvalidIndex)
	}
	row := m.rows[i]
	out := make([]Entry, 0, len(row))
	for j, v := range row {
		out = append(out, Entry{Index: j, Value: v})
	}
	sort.Slice(out, func(a, c int) bool { return out[a].Index < out[c].Index })

	return out, nil
}

func (m *Sparse) ColNZ(j int) ([]Entry, error) {
	if !m.inRange(j) {
		return nil, sparseErrorf("ColNZ", ErrInvalidIndex)
	}
	col := m.cols[j]
	out := make([]Entry, 0, len(col))
	for i, v := range col {
		out = append(out, Entry{Index: i, Value: v})
	}
	sort.Slice(out, func(a, c int) bool { return out[a].Index < out[c].Index })

	return out, nil
}

func (m *Sparse) RowSum(i int) (int64, error) {
	if !m.inRange(i) {
		return 0, sparseErrorf("RowSum", ErrInvalidIndex)
	}
	var s int64
	for _, v := range m.rows[i] {
		s += v
	}

	return s, nil
}

func (m *Sparse) ColSum(j int) (int64, error) {
	if !m.inRange(j) {
		return 0, sparseErrorf("ColSum", ErrInvalidIndex)
	}
	var s int64
	for _, v := range m.cols[j] {
		s += v
	}

	return s, nil
}

func (m *Sparse) Trace() int64 {
	var s int64
	for i := 0; i < m.b; i++ {
		if row, ok := m.rows[i]; ok {
			s += row[i]
		}
	}

	return s
}

func (m *Sparse) Total() int64 {
	var s int64
	for _, row := range m.rows {
		for _, v := range row {
			s += v
		}
	}

	return s
}

func (m *Sparse) ApplyUpdate(r, s int, u EdgeCountUpdate) error {
	if !m.inRange(r) || !m.inRange(s) {
		return sparseErrorf("ApplyUpdate", ErrInvalidIndex)
	}
	if len(u.RowR) != m.b || len(u.RowS) != m.b || len(u.ColR) != m.b || len(u.ColS) != m.b {
		return sparseErrorf("ApplyUpdate", ErrDimensionMismatch)
	}
	if anyNegative(u.RowR, u.RowS, u.ColR, u.ColS) {
		return sparseErrorf("ApplyUpdate", ErrInvariantViolation)
	}
	if !consistentUpdate(r, s, u) {
		return sparseErrorf("ApplyUpdate", ErrInvariantViolation)
	}

	for j := 0; j < m.b; j++ {
		m.set(r, j, u.RowR[j])
		m.set(s, j, u.RowS[j])
	}
	for i := 0; i < m.b; i++ {
		if i == r || i == s {
			continue
		}
		m.set(i, r, u.ColR[i])
		m.set(i, s, u.ColS[i])
	}

	return nil
}

func (m *Sparse) DropBlock(b int) error {
	if !m.inRange(b) {
		return sparseErrorf("DropBlock", ErrInvalidIndex)
	}
	newB := m.b - 1
	nrows := make(map[int]map[int]int64)
	ncols := make(map[int]map[int]int64)
	remap := func(idx int) int {
		if idx < b {
			return idx
		}

		return idx - 1
	}
	for i, row := range m.rows {
		if i == b {
			continue
		}
		ni := remap(i)
		for j, v := range row {
			if j == b {
				continue
			}
			nj := remap(j)
			if nrows[ni] == nil {
				nrows[ni] = make(map[int]int64)
			}
			nrows[ni][nj] = v
			if ncols[nj] == nil {
				ncols[nj] = make(map[int]int64)
			}
			ncols[nj][ni] = v
		}
	}
	m.b = newB
	m.rows = nrows
	m.cols = ncols

	return nil
}

func (m *Sparse) Clone() Matrix {
	nrows := make(map[int]map[int]int64, len(m.rows))
	for i, row := range m.rows {
		nr := make(map[int]int64, len(row))
		for j, v := range row {
			nr[j] = v
		}
		nrows[i] = nr
	}
	ncols := make(map[int]map[int]int64, len(m.cols))
	for j, col := range m.cols {
		nc := make(map[int]int64, len(col))
		for i, v := range col {
			nc[i] = v
		}
		ncols[j] = nc
	}

	return &Sparse{b: m.b, rows: nrows, cols: ncols}
}
