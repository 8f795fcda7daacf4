// Package eigen: Decompose, the public entry point.

package eigen

import (
	"fmt"
	"math/cmplx"
	"sort"

	"github.com/katalvlaran/linopt/matrix"
)

// Decompose computes the full eigendecomposition of the square matrix a.
//
// Contract:
//   - a must be non-nil and square (matrix.ErrNonSquare otherwise).
//   - a is never mutated; all work happens on private copies.
//   - Every returned Pair satisfies ‖A·v − λ·v‖ ≈ 0 (see Residual) and
//     ‖v‖₂ = 1 with canonical phase.
//   - Pairs are ordered by descending |λ|, ties by descending real part,
//     then descending imaginary part.
//
// Errors: matrix.ErrNonSquare, ErrBadOptions, ErrNonConvergence.
// Complexity: O(n³) overall; see the pipeline files for per-stage costs.
func Decompose(a *matrix.Dense, opts Options) (Result, error) {
	// Stage 1: Validate input and options.
	if a == nil {
		return Result{}, matrix.ErrNilMatrix
	}
	if !a.IsSquare() {
		return Result{}, fmt.Errorf("Decompose: %dx%d: %w", a.Rows(), a.Cols(), matrix.ErrNonSquare)
	}
	if opts.MaxIter <= 0 || opts.Tol < 0 {
		return Result{}, ErrBadOptions
	}
	n := a.Rows()

	// Stage 2: Trivial order-1 case.
	if n == 1 {
		x, _ := a.At(0, 0)

		return Result{Pairs: []Pair{{Value: complex(x, 0), Vector: []complex128{1}}}}, nil
	}

	// Stage 3: Reduce a private copy to Hessenberg form and extract the
	// spectrum via double-shift QR.
	var (
		work  = a.RawData()            // Hessenberg workspace (destroyed)
		orig  = a.RawData()            // pristine copy for inverse iteration
		anorm = a.Norm(matrix.NormInf) // scale for the tiny-pivot device
	)
	hessenberg(work, n)
	values, err := qrValues(work, n, opts.MaxIter, opts.Tol)
	if err != nil {
		return Result{}, fmt.Errorf("Decompose: %w", err)
	}

	// Stage 4: Deterministic ordering of the spectrum.
	sort.SliceStable(values, func(i, j int) bool {
		ai, aj := cmplx.Abs(values[i]), cmplx.Abs(values[j])
		if ai != aj {
			return ai > aj
		}
		if real(values[i]) != real(values[j]) {
			return real(values[i]) > real(values[j])
		}

		return imag(values[i]) > imag(values[j])
	})

	// Stage 5: One eigenvector per eigenvalue via inverse iteration on the
	// original matrix (the Hessenberg similarity is not accumulated; the
	// shift-based recovery works directly on A).
	pairs := make([]Pair, n)
	for i := 0; i < n; i++ {
		pairs[i] = Pair{
			Value:  values[i],
			Vector: eigenvector(orig, n, values[i], anorm),
		}
	}

	return Result{Pairs: pairs}, nil
}
