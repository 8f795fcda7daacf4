// Package matrix provides the dense numeric containers shared by every
// linopt solver: row-major matrices, vectors, and norms.
//
// 🚀 What is matrix?
//
//	The foundation layer of linopt:
//	  • Dense  — a rows×cols float64 matrix with a flat, cache-friendly backing slice
//	  • Vector — a []float64 newtype with dot products and norms
//	  • Norms  — One (max column sum), Inf (max row sum), Frobenius
//
// ✨ Key guarantees:
//   - Fixed shape: dimensions are immutable once created; entries are mutable
//   - Strict numeric policy: NaN and ±Inf are rejected at ingestion and Set
//   - Fail-fast indexing: At/Set return ErrOutOfRange, they never panic
//   - Value semantics on demand: Clone produces a deep, independent copy
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linopt/matrix"
//
//	A, err := matrix.NewDenseFromRows([][]float64{
//	  {4, 3},
//	  {6, 3},
//	})
//	v := matrix.Vector{1, 2}
//	w, err := A.MulVec(v) // w = A·v
//
// All algorithm packages (lu, eigen, lp, milp) consume these types and
// report shape conflicts with ErrDimensionMismatch / ErrNonSquare, matched
// via errors.Is.
package matrix
