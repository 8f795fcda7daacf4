// Package lu: inversion and conditioning diagnostics derived from the solver.
//
// Inverse solves A·X = I column by column, reusing one factorization.
// Cond reports κ(A) = ‖A‖·‖A⁻¹‖ under a caller-chosen norm; large values
// (≫ 1) signal ill-conditioning. That is informational, not an error — the
// only hard failure is singularity.

package lu

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linopt/matrix"
)

// isSingular reports whether err carries the ErrSingular sentinel.
func isSingular(err error) bool { return errors.Is(err, ErrSingular) }

// Inverse returns A⁻¹ for a square, non-singular matrix A.
//
// Stage 1 (Factorize): one P·A = L·U decomposition.
// Stage 2 (Execute): solve A·X = I column by column through SolveMatrix.
//
// Errors: matrix.ErrNonSquare, ErrSingular.
// Complexity: O(n³) time, O(n²) memory.
func Inverse(a *matrix.Dense) (*matrix.Dense, error) {
	// Stage 1: Factorize once.
	f, err := Factorize(a, DefaultOptions())
	if err != nil {
		return nil, err
	}

	// Stage 2: Solve against the identity.
	id, err := matrix.Identity(f.n)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	return f.SolveMatrix(id)
}

// Cond returns the condition number κ(A) = ‖A‖·‖A⁻¹‖ under the given norm.
//
// Norm choice matters and is part of the caller's contract:
//   - NormOne / NormInf are operator norms: κ(I) = 1.
//   - NormFrobenius is entrywise: κ_F(I) = n for the n×n identity.
//
// A singular matrix has no finite condition number; ErrSingular is
// returned rather than +Inf so callers cannot mistake it for a huge but
// valid value.
//
// Complexity: O(n³) (dominated by the inversion).
func Cond(a *matrix.Dense, kind matrix.NormKind) (float64, error) {
	inv, err := Inverse(a)
	if err != nil {
		return 0, err
	}

	return a.Norm(kind) * inv.Norm(kind), nil
}
