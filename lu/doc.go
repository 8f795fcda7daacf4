// Package lu solves dense linear systems: LU factorization with partial
// pivoting, Ax=b solving, matrix inversion, determinants and condition
// numbers.
//
// 🚀 What is lu?
//
//	The linear-solving core of linopt:
//	  • Factorize — P·A = L·U with row pivoting and a recorded permutation
//	  • Solve / SolveVec — forward + backward substitution over one factorization
//	  • Inverse — A⁻¹ column by column, reusing a single factorization
//	  • Determinant — pivot product × permutation parity
//	  • Cond — κ(A) = ‖A‖·‖A⁻¹‖ under a caller-chosen norm
//
// ✨ Key guarantees:
//   - Partial pivoting: each elimination step swaps in the row with the
//     largest pivot-column magnitude, bounding error growth
//   - Fail-fast singularity: a best pivot at or below the tolerance yields
//     ErrSingular — never a garbage numeric result
//   - Inputs are never mutated; a Factorization is a snapshot with no
//     back-reference to its source matrix
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linopt/lu"
//
//	x, err := lu.Solve(A, b)            // one-shot
//	f, err := lu.Factorize(A, lu.DefaultOptions())
//	x1, _ := f.SolveVec(b1)             // reuse the factorization
//	x2, _ := f.SolveVec(b2)
//
// Tolerances:
//
//	The zero-pivot tolerance defaults to ‖A‖∞ · n · machine-epsilon and can
//	be overridden through Options.PivotTol — e.g. relaxed retries for
//	near-singular systems are an explicit caller opt-in, never a default.
//
// Complexity: O(n³) factorization, O(n²) per solve, O(n³) inversion.
package lu
