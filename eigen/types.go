// Package eigen: options, sentinel errors and result types.

package eigen

import (
	"errors"
	"math"

	"github.com/katalvlaran/linopt/matrix"
)

// machineEps is the float64 unit roundoff (2⁻⁵²).
const machineEps = 2.220446049250313e-16

// DefaultMaxIter caps the QR sweeps spent per eigenvalue before the
// decomposition gives up with ErrNonConvergence. The classical bound of 30
// sweeps per eigenvalue makes the whole-matrix budget 30·n.
const DefaultMaxIter = 30

// ErrNonConvergence is returned when QR iteration exceeds its sweep budget
// without isolating an eigenvalue. It is surfaced to the caller rather than
// silently truncating the spectrum.
var ErrNonConvergence = errors.New("eigen: QR iteration did not converge")

// ErrBadOptions is returned when Options carry nonsensical values
// (non-positive MaxIter, negative tolerance).
var ErrBadOptions = errors.New("eigen: invalid options")

// Options configures the decomposition.
//
// Fields:
//   - MaxIter — QR sweeps allowed per eigenvalue (default DefaultMaxIter).
//   - Tol     — relative deflation threshold for subdiagonal entries;
//     zero selects machine epsilon (the classical underflow criterion).
type Options struct {
	MaxIter int
	Tol     float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{MaxIter: DefaultMaxIter, Tol: 0}
}

// Pair is one (eigenvalue, eigenvector) couple. Value may carry a nonzero
// imaginary part; conjugate pairs appear as two adjacent Pairs. Vector has
// unit Euclidean norm and canonical phase.
type Pair struct {
	Value  complex128
	Vector []complex128
}

// Result is the ordered eigendecomposition: len(Pairs) equals the order of
// the input matrix, eigenvalues repeated per algebraic multiplicity.
type Result struct {
	Pairs []Pair
}

// Values returns the eigenvalues in result order.
func (r Result) Values() []complex128 {
	out := make([]complex128, len(r.Pairs))
	for i, p := range r.Pairs {
		out[i] = p.Value
	}

	return out
}

// Residual computes ‖A·v − λ·v‖₂ for a returned pair: the verification
// contract says this must vanish within numerical tolerance.
// Complexity: O(n²).
func Residual(a *matrix.Dense, p Pair) float64 {
	var (
		n   = a.Rows()
		sum float64
		av  complex128
		x   float64
		i   int
		j   int
	)
	for i = 0; i < n; i++ {
		av = 0
		for j = 0; j < n; j++ {
			x, _ = a.At(i, j)
			av += complex(x, 0) * p.Vector[j]
		}
		av -= p.Value * p.Vector[i]
		sum += real(av)*real(av) + imag(av)*imag(av)
	}

	return math.Sqrt(sum)
}
