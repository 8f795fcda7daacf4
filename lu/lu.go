// Package lu: factorization and substitution kernels.
//
// Factorize implements Gaussian elimination with partial pivoting on a flat
// row-major buffer: at each elimination step k, the row with the largest
// absolute value in column k (among rows ≥ k) is swapped into the pivot
// position and the swap is recorded in the permutation. This bounds the
// growth of rounding error; a best pivot at or below the tolerance is a
// singularity and fails fast with ErrSingular.

package lu

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linopt/matrix"
)

// Factorize computes P·A = L·U for a square matrix A.
//
// Contract:
//   - A must be non-nil and square (matrix.ErrNonSquare otherwise).
//   - A is never mutated; the factorization owns a private copy.
//   - opts.PivotTol < 0 or non-finite ⇒ ErrBadTolerance.
//   - Singular input ⇒ ErrSingular.
//
// Complexity: O(n³) time, O(n²) memory.
func Factorize(a *matrix.Dense, opts Options) (*Factorization, error) {
	// Stage 1: Validate input shape and options.
	if a == nil {
		return nil, matrix.ErrNilMatrix
	}
	if !a.IsSquare() {
		return nil, fmt.Errorf("Factorize: %dx%d: %w", a.Rows(), a.Cols(), matrix.ErrNonSquare)
	}
	if opts.PivotTol < 0 || math.IsNaN(opts.PivotTol) || math.IsInf(opts.PivotTol, 0) {
		return nil, ErrBadTolerance
	}

	// Stage 2: Prepare the working buffer, permutation and tolerance.
	var (
		n   = a.Rows()                                 // system order
		f   = &Factorization{n: n, sign: 1}            // result under construction
		tol = opts.PivotTol                            // effective zero-pivot threshold
		i   int                                        // row index
		j   int                                        // column index
		k   int                                        // elimination step
		p   int                                        // pivot row candidate
		mag float64                                    // |candidate pivot|
		big float64                                    // best pivot magnitude so far
		fac float64                                    // elimination multiplier
	)
	f.lu = a.RawData() // private row-major copy; A stays untouched
	f.perm = make([]int, n)
	for i = 0; i < n; i++ {
		f.perm[i] = i
	}
	if tol == 0 {
		// Automatic tolerance scales with the data: ‖A‖∞ · n · ulp.
		tol = a.Norm(matrix.NormInf) * float64(n) * machineEps
	}

	// Stage 3: Eliminate column by column with partial pivoting.
	for k = 0; k < n; k++ {
		// 3.1: Select the pivot row — largest |lu[i][k]| for i ≥ k.
		big, p = 0, k
		for i = k; i < n; i++ {
			mag = math.Abs(f.lu[i*n+k])
			if mag > big {
				big, p = mag, i
			}
		}
		if big <= tol {
			return nil, fmt.Errorf("Factorize: pivot %d below tolerance %.3e: %w", k, tol, ErrSingular)
		}
		// 3.2: Swap the pivot row into place, record permutation and parity.
		if p != k {
			swapRows(f.lu, n, p, k)
			f.perm[p], f.perm[k] = f.perm[k], f.perm[p]
			f.sign = -f.sign
		}
		// 3.3: Eliminate below the pivot; store multipliers in the strict
		// lower triangle (Doolittle: unit diagonal of L is implied).
		for i = k + 1; i < n; i++ {
			fac = f.lu[i*n+k] / f.lu[k*n+k]
			f.lu[i*n+k] = fac
			for j = k + 1; j < n; j++ {
				f.lu[i*n+j] -= fac * f.lu[k*n+j]
			}
		}
	}

	// Stage 4: Finalize.
	return f, nil
}

// swapRows exchanges rows r1 and r2 of a flat n-column row-major buffer.
func swapRows(buf []float64, n, r1, r2 int) {
	var tmp float64
	for j := 0; j < n; j++ {
		tmp = buf[r1*n+j]
		buf[r1*n+j] = buf[r2*n+j]
		buf[r2*n+j] = tmp
	}
}

// SolveVec solves A·x = b for one right-hand side using the factorization.
//
// Contract: len(b) must equal the factored order (matrix.ErrDimensionMismatch).
// b is never mutated.
//
// Stage 1 (Permute+Forward): y solves L·y = P·b.
// Stage 2 (Backward): x solves U·x = y.
//
// Complexity: O(n²) time, O(n) memory.
func (f *Factorization) SolveVec(b matrix.Vector) (matrix.Vector, error) {
	// Stage 0: Validate shape.
	if len(b) != f.n {
		return nil, fmt.Errorf("SolveVec: rhs length %d vs order %d: %w", len(b), f.n, errDimension)
	}
	var (
		n   = f.n
		x   = make(matrix.Vector, n) // doubles as y then x, in place
		sum float64
		i   int
		j   int
	)

	// Stage 1: Forward substitution on the permuted rhs (L has unit diagonal).
	for i = 0; i < n; i++ {
		sum = b[f.perm[i]]
		for j = 0; j < i; j++ {
			sum -= f.lu[i*n+j] * x[j]
		}
		x[i] = sum
	}

	// Stage 2: Backward substitution through U.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for j = i + 1; j < n; j++ {
			sum -= f.lu[i*n+j] * x[j]
		}
		x[i] = sum / f.lu[i*n+i]
	}

	return x, nil
}

// SolveMatrix solves A·X = B column by column, reusing the factorization.
//
// Contract: B.Rows must equal the factored order.
// Complexity: O(n²·m) for an n×m right-hand side.
func (f *Factorization) SolveMatrix(b *matrix.Dense) (*matrix.Dense, error) {
	// Stage 1: Validate shapes.
	if b == nil {
		return nil, matrix.ErrNilMatrix
	}
	if b.Rows() != f.n {
		return nil, fmt.Errorf("SolveMatrix: rhs rows %d vs order %d: %w", b.Rows(), f.n, errDimension)
	}

	// Stage 2: Solve per column and assemble the result.
	var (
		cols   = b.Cols()
		out    *matrix.Dense
		col    matrix.Vector
		sol    matrix.Vector
		err    error
		j, i   int
	)
	out, err = matrix.NewDense(f.n, cols)
	if err != nil {
		return nil, fmt.Errorf("SolveMatrix: %w", err)
	}
	for j = 0; j < cols; j++ {
		if col, err = b.Col(j); err != nil {
			return nil, fmt.Errorf("SolveMatrix: %w", err)
		}
		if sol, err = f.SolveVec(col); err != nil {
			return nil, err
		}
		for i = 0; i < f.n; i++ {
			if err = out.Set(i, j, sol[i]); err != nil {
				return nil, fmt.Errorf("SolveMatrix: %w", err)
			}
		}
	}

	return out, nil
}

// Solve is the one-shot convenience: factorize A under default options and
// solve A·x = b. Use Factorize + SolveVec to amortize over many right-hand
// sides.
//
// Errors: matrix.ErrNonSquare, matrix.ErrDimensionMismatch, ErrSingular.
// Complexity: O(n³).
func Solve(a *matrix.Dense, b matrix.Vector) (matrix.Vector, error) {
	f, err := Factorize(a, DefaultOptions())
	if err != nil {
		return nil, err
	}

	return f.SolveVec(b)
}

// Determinant factorizes A under default options and returns det(A).
// Singular matrices have determinant 0 by definition, so ErrSingular from
// the factorization is mapped to a plain 0 here.
// Complexity: O(n³).
func Determinant(a *matrix.Dense) (float64, error) {
	f, err := Factorize(a, DefaultOptions())
	if err != nil {
		if isSingular(err) {
			return 0, nil
		}

		return 0, err
	}

	return f.Determinant(), nil
}
