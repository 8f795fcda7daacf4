// Package matrix: elementwise and product arithmetic on Dense and Vector.
// All operations allocate fresh results and never mutate their operands;
// shape conflicts surface as ErrDimensionMismatch via errors.Is.

package matrix

import "math"

// Add returns m + b.
//
// Stage 1 (Validate): nil receivers, equal shapes.
// Stage 2 (Execute): entrywise sum over the flat storage.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c) time and memory.
func (m *Dense) Add(b *Dense) (*Dense, error) {
	if m == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if m.r != b.r || m.c != b.c {
		return nil, ErrDimensionMismatch
	}
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for i := range m.data {
		out.data[i] = m.data[i] + b.data[i]
	}

	return out, nil
}

// Sub returns m − b. Same contract as Add.
func (m *Dense) Sub(b *Dense) (*Dense, error) {
	if m == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if m.r != b.r || m.c != b.c {
		return nil, ErrDimensionMismatch
	}
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for i := range m.data {
		out.data[i] = m.data[i] - b.data[i]
	}

	return out, nil
}

// Scale returns s·m.
// Complexity: O(r·c) time and memory.
func (m *Dense) Scale(s float64) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for i := range m.data {
		out.data[i] = s * m.data[i]
	}

	return out, nil
}

// Mul returns the matrix product m·b.
//
// Stage 1 (Validate): m.Cols == b.Rows.
// Stage 2 (Execute): classic triple loop in ikj order (row-major friendly).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·n·c) time, O(r·c) memory.
func (m *Dense) Mul(b *Dense) (*Dense, error) {
	// Stage 1: Validate shapes
	if m == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if m.c != b.r {
		return nil, ErrDimensionMismatch
	}

	// Stage 2: Execute ikj product
	var (
		out  = &Dense{r: m.r, c: b.c, data: make([]float64, m.r*b.c)}
		i, k int     // output row / inner index
		j    int     // output column
		aik  float64 // cached m[i][k]
	)
	for i = 0; i < m.r; i++ {
		for k = 0; k < m.c; k++ {
			aik = m.data[i*m.c+k]
			if aik == 0 {
				continue // skip zero rows cheaply
			}
			for j = 0; j < b.c; j++ {
				out.data[i*b.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// MulVec returns the matrix-vector product m·v as a Vector.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(v) != m.Cols).
// Complexity: O(r·c) time, O(r) memory.
func (m *Dense) MulVec(v Vector) (Vector, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if len(v) != m.c {
		return nil, ErrDimensionMismatch
	}
	var (
		out = make(Vector, m.r)
		sum float64
		i   int
		j   int
	)
	for i = 0; i < m.r; i++ {
		sum = 0
		for j = 0; j < m.c; j++ {
			sum += m.data[i*m.c+j] * v[j]
		}
		out[i] = sum
	}

	return out, nil
}

// Transpose returns mᵀ.
// Complexity: O(r·c) time and memory.
func (m *Dense) Transpose() (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	out := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// Equal reports whether m and b share a shape and differ by at most eps
// in every entry. A negative eps is treated as zero (exact comparison).
// Complexity: O(r·c).
func (m *Dense) Equal(b *Dense, eps float64) bool {
	if m == nil || b == nil || m.r != b.r || m.c != b.c {
		return false
	}
	if eps < 0 {
		eps = 0
	}
	for i := range m.data {
		if math.Abs(m.data[i]-b.data[i]) > eps {
			return false
		}
	}

	return true
}
