package bmatrix

import "fmt"

// Dense is a concrete row-major Matrix implementation backed by a flat
// []int64 slice. Indexing mirrors the teacher's row-major Dense float64
// matrix, adapted to int64 block-edge counts.
type Dense struct {
	b    int
	data []int64 // len == b*b, row-major: data[i*b+j] == M[i,j]
}

var _ Matrix = (*Dense)(nil)

// NewDense allocates a b×b zero Dense matrix. Returns ErrInvalidIndex if
// b <= 0.
func NewDense(b int) (*Dense, error) {
	if b <= 0 {
		return nil, ErrInvalidIndex
	}

	return &Dense{b: b, data: make([]int64, b*b)}, nil
}

func denseErrorf(method string, err error) error {
	return fmt.Errorf("Dense.%s: %w", method, err)
}

func (m *Dense) Size() int { return m.b }

func (m *Dense) offset(i, j int) (int, error) {
	if i < 0 || i >= m.b || j < 0 || j >= m.b {
		return 0, ErrInvalidIndex
	}

	return i*m.b + j, nil
}

func (m *Dense) Get(i, j int) (int64, error) {
	off, err := m.offset(i, j)
	if err != nil {
		return 0, denseErrorf("Get", err)
	}

	return m.data[off], nil
}

func (m *Dense) RowNZ(i int) ([]Entry, error) {
	if i < 0 || i >= m.b {
		return nil, denseErrorf("RowNZ", ErrInvalidIndex)
	}
	var out []Entry
	base := i * m.b
	for j := 0; j < m.b; j++ {
		if v := m.data[base+j]; v != 0 {
			out = append(out, Entry{Index: j, Value: v})
		}
	}

	return out, nil
}

func (m *Dense) ColNZ(j int) ([]Entry, error) {
	if j < 0 || j >= m.b {
		return nil, denseErrorf("ColNZ", ErrInvalidIndex)
	}
	var out []Entry
	for i := 0; i < m.b; i++ {
		if v := m.data[i*m.b+j]; v != 0 {
			out = append(out, Entry{Index: i, Value: v})
		}
	}

	return out, nil
}

func (m *Dense) RowSum(i int) (int64, error) {
	if i < 0 || i >= m.b {
		return 0, denseErrorf("RowSum", ErrInvalidIndex)
	}
	var s int64
	base := i * m.b
	for j := 0; j < m.b; j++ {
		s += m.data[base+j]
	}

	return s, nil
}

func (m *Dense) ColSum(j int) (int64, error) {
	if j < 0 || j >= m.b {
		return 0, denseErrorf("ColSum", ErrInvalidIndex)
	}
	var s int64
	for i := 0; i < m.b; i++ {
		s += m.data[i*m.b+j]
	}

	return s, nil
}

func (m *Dense) Trace() int64 {
	var s int64
	for i := 0; i < m.b; i++ {
		s += m.data[i*m.b+i]
	}

	return s
}

func (m *Dense) Total() int64 {
	var s int64
	for _, v := range m.data {
		s += v
	}

	return s
}

func (m *Dense) ApplyUpdate(r, s int, u EdgeCountUpdate) error {
	if r < 0 || r >= m.b || s < 0 || s >= m.b {
		return denseErrorf("ApplyUpdate", ErrInvalidIndex)
	}
	if len(u.RowR) != m.b || len(u.RowS) != m.b || len(u.ColR) != m.b || len(u.ColS) != m.b {
		return denseErrorf("ApplyUpdate", ErrDimensionMismatch)
	}
	if anyNegative(u.RowR, u.RowS, u.ColR, u.ColS) {
		return denseErrorf("ApplyUpdate", ErrInvariantViolation)
	}
	if !consistentUpdate(r, s, u) {
		return denseErrorf("ApplyUpdate", ErrInvariantViolation)
	}

	for j := 0; j < m.b; j++ {
		m.data[r*m.b+j] = u.RowR[j]
		m.data[s*m.b+j] = u.RowS[j]
	}
	for i := 0; i < m.b; i++ {
		// Row writes above already set (r,r),(r,s),(s,r),(s,s); column writes
		// must not clobber them with the (possibly redundant) column vectors.
		if i == r || i == s {
			continue
		}
		m.data[i*m.b+r] = u.ColR[i]
		m.data[i*m.b+s] = u.ColS[i]
	}

	return nil
}

func (m *Dense) DropBlock(b int) error {
	if b < 0 || b >= m.b {
		return denseErrorf("DropBlock", ErrInvalidIndex)
	}
	newB := m.b - 1
	nd := make([]int64, newB*newB)
	ni := 0
	for i := 0; i < m.b; i++ {
		if i == b {
			continue
		}
		nj := 0
		for j := 0; j < m.b; j++ {
			if j == b {
				continue
			}
			nd[ni*newB+nj] = m.data[i*m.b+j]
			nj++
		}
		ni++
	}
	m.b = newB
	m.data = nd

	return nil
}

func (m *Dense) Clone() Matrix {
	cp := make([]int64, len(m.data))
	copy(cp, m.data)

	return &Dense{b: m.b, data: cp}
}
