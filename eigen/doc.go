// Package eigen computes the full eigendecomposition of real square
// matrices, including complex-conjugate eigenvalue pairs.
//
// 🚀 What is eigen?
//
//	The spectral-analysis layer of linopt:
//	  • Hessenberg reduction — Householder reflections zero the matrix below
//	    the first subdiagonal (a similarity transform, spectrum preserved)
//	  • Shifted QR iteration — Francis double-shift sweeps deflate the
//	    Hessenberg form into 1×1 blocks (real eigenvalues) and 2×2 blocks
//	    (real pairs or complex-conjugate pairs)
//	  • Inverse iteration — each eigenvalue is used as a shift to recover a
//	    unit-norm eigenvector in complex arithmetic
//
// ✨ Key guarantees:
//   - All n eigenvalues are returned, with algebraic multiplicity
//   - Eigenvectors are normalized to unit Euclidean norm with a canonical
//     phase (largest component real and positive) for reproducibility
//   - Results are deterministically ordered: descending |λ|, ties broken by
//     descending real part, then descending imaginary part
//   - Iteration budgets are enforced: exceeding them surfaces
//     ErrNonConvergence to the caller, never a silently truncated result
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linopt/eigen"
//
//	res, err := eigen.Decompose(A, eigen.DefaultOptions())
//	for _, p := range res.Pairs {
//	  fmt.Println(p.Value, eigen.Residual(A, p)) // ‖A·v − λ·v‖ ≈ 0
//	}
//
// Complexity: O(n³) for the reduction, O(n²) per QR sweep with at most
// MaxIter sweeps per eigenvalue, O(n³) total for eigenvectors.
package eigen
