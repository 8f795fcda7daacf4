// Package matrix: matrix and vector norms.
// Norm kinds are documented on NormKind in types.go; the choice matters for
// condition numbers (package lu documents the κ(I)=1 property per kind).

package matrix

import "math"

// Norm returns the requested norm of the matrix.
//
//   - NormOne:       max_j Σ_i |a[i][j]|
//   - NormInf:       max_i Σ_j |a[i][j]|
//   - NormFrobenius: sqrt(Σ a[i][j]²)
//
// Unknown kinds fall back to NormFrobenius (documented, deterministic).
// Complexity: O(r·c) time, O(c) memory for NormOne, O(1) otherwise.
func (m *Dense) Norm(kind NormKind) float64 {
	var (
		i, j int
		sum  float64
		best float64
	)
	switch kind {
	case NormOne:
		// Column sums: one accumulator per column, single pass.
		colSums := make([]float64, m.c)
		for i = 0; i < m.r; i++ {
			for j = 0; j < m.c; j++ {
				colSums[j] += math.Abs(m.data[i*m.c+j])
			}
		}
		for j = 0; j < m.c; j++ {
			if colSums[j] > best {
				best = colSums[j]
			}
		}

		return best
	case NormInf:
		for i = 0; i < m.r; i++ {
			sum = 0
			for j = 0; j < m.c; j++ {
				sum += math.Abs(m.data[i*m.c+j])
			}
			if sum > best {
				best = sum
			}
		}

		return best
	default: // NormFrobenius and any unknown kind
		for i = range m.data {
			sum += m.data[i] * m.data[i]
		}

		return math.Sqrt(sum)
	}
}

// Dot returns the inner product v·w.
// Errors: ErrDimensionMismatch when lengths differ.
// Complexity: O(n).
func (v Vector) Dot(w Vector) (float64, error) {
	if len(v) != len(w) {
		return 0, ErrDimensionMismatch
	}
	var sum float64
	for i := range v {
		sum += v[i] * w[i]
	}

	return sum, nil
}

// Norm returns the Euclidean (2-)norm of the vector.
// Complexity: O(n).
func (v Vector) Norm() float64 {
	var sum float64
	for i := range v {
		sum += v[i] * v[i]
	}

	return math.Sqrt(sum)
}

// NormInf returns the maximum absolute entry of the vector.
// Complexity: O(n).
func (v Vector) NormInf() float64 {
	var best float64
	for i := range v {
		if a := math.Abs(v[i]); a > best {
			best = a
		}
	}

	return best
}

// EqualVec reports whether v and w have equal length and differ by at most
// eps per entry. Negative eps is treated as zero.
// Complexity: O(n).
func EqualVec(v, w Vector, eps float64) bool {
	if len(v) != len(w) {
		return false
	}
	if eps < 0 {
		eps = 0
	}
	for i := range v {
		if math.Abs(v[i]-w[i]) > eps {
			return false
		}
	}

	return true
}
