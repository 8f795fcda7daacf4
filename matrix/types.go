// Package matrix: shared types and numeric policy constants.
// This file defines the Vector newtype, the NormKind enumeration, and the
// package-wide default tolerance. Defaults here are the single source of
// truth; solver packages reference them instead of re-declaring magic numbers.

package matrix

// DefaultEpsilon is the non-negative tolerance used by approximate
// comparisons (Equal, EqualVec). Solver packages define their own,
// documented tolerances for pivoting and convergence.
const DefaultEpsilon = 1e-9

// NormKind selects the matrix norm used by Norm and by condition-number
// computations in package lu.
//
//   - NormOne       — maximum absolute column sum (operator 1-norm).
//   - NormInf       — maximum absolute row sum (operator ∞-norm).
//   - NormFrobenius — square root of the sum of squared entries.
//
// NormOne and NormInf are operator norms: the identity matrix has norm 1
// under both, so condition numbers computed with them satisfy κ(I)=1.
// NormFrobenius of the n×n identity is √n; it is provided for callers who
// want an entrywise magnitude measure.
type NormKind int

const (
	// NormOne: max over columns of the absolute column sum.
	NormOne NormKind = iota

	// NormInf: max over rows of the absolute row sum.
	NormInf

	// NormFrobenius: sqrt(Σ aᵢⱼ²).
	NormFrobenius
)

// String returns the canonical name of the norm kind.
func (k NormKind) String() string {
	switch k {
	case NormOne:
		return "One"
	case NormInf:
		return "Inf"
	case NormFrobenius:
		return "Frobenius"
	default:
		return "Unknown"
	}
}

// Vector is an ordered sequence of real numbers. It behaves as a
// single-column matrix in products (see Dense.MulVec) and carries its own
// small arithmetic surface (Dot, Norm, Clone).
type Vector []float64

// Clone returns a deep copy of v.
// Complexity: O(n) time and memory.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}
