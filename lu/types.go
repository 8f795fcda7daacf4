// Package lu: options, sentinel errors and the Factorization snapshot type.

package lu

import (
	"errors"

	"github.com/katalvlaran/linopt/matrix"
)

// machineEps is the float64 unit roundoff (2⁻⁵²).
const machineEps = 2.220446049250313e-16

// ErrSingular is returned when partial pivoting cannot find a pivot above
// the configured tolerance: the matrix is singular (or numerically so) and
// no solve/inverse result would be trustworthy.
var ErrSingular = errors.New("lu: singular matrix")

// Options configures factorization.
//
// Fields:
//   - PivotTol — absolute threshold below which the best available pivot is
//     treated as zero. Zero (the default) selects the automatic tolerance
//     ‖A‖∞ · n · machine-epsilon, which scales with the data. Callers may
//     opt in to a smaller value to retry near-singular systems; negative
//     values are rejected by Factorize with ErrBadTolerance.
type Options struct {
	PivotTol float64
}

// ErrBadTolerance is returned when Options.PivotTol is negative or non-finite.
var ErrBadTolerance = errors.New("lu: pivot tolerance must be ≥ 0 and finite")

// DefaultOptions returns the documented defaults (automatic pivot tolerance).
func DefaultOptions() Options {
	return Options{PivotTol: 0}
}

// Factorization is the result of LU decomposition with partial pivoting:
// P·A = L·U, stored compactly. It is a value snapshot of the source matrix —
// no back-reference is kept, so mutating A afterwards does not invalidate
// it; re-factorize to pick up changes.
type Factorization struct {
	n    int       // order of the factored matrix
	lu   []float64 // combined L (strict lower, unit diagonal implied) and U (upper), row-major
	perm []int     // perm[i] = source row now occupying position i
	sign float64   // +1 or −1, parity of the row swaps
}

// Order returns n, the dimension of the factored n×n matrix.
func (f *Factorization) Order() int { return f.n }

// Permutation returns a copy of the row permutation: entry i is the source
// row of A placed at position i by pivoting.
func (f *Factorization) Permutation() []int {
	out := make([]int, len(f.perm))
	copy(out, f.perm)

	return out
}

// Determinant returns det(A) = sign · Π U[i][i].
// Complexity: O(n).
func (f *Factorization) Determinant() float64 {
	det := f.sign
	for i := 0; i < f.n; i++ {
		det *= f.lu[i*f.n+i]
	}

	return det
}

// reexported dimension sentinel: solver packages and callers match shape
// conflicts uniformly via errors.Is(err, matrix.ErrDimensionMismatch).
var errDimension = matrix.ErrDimensionMismatch
