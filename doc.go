// Package linopt is your in-memory toolkit for dense linear algebra and
// linear optimization — from matrix primitives to eigendecomposition,
// two-phase simplex and mixed-integer branch-and-bound.
//
// 🚀 What is linopt?
//
//	A deterministic, pure-Go numerical library that brings together:
//		• Dense containers: row-major matrices & vectors with strict numeric policy
//		• Linear solving: LU with partial pivoting, inverse, determinant
//		• Diagnostics: condition numbers under One/Inf/Frobenius norms
//		• Spectral analysis: full eigendecomposition (complex pairs included)
//		• Linear programming: two-phase tableau simplex with anti-cycling
//		• Integer programming: best-first branch-and-bound with incumbent pruning
//
// ✨ Why choose linopt?
//
//   - Owned algorithms – every solve is implemented here, no hidden native engine
//   - Fail-fast guarantees – sentinel errors, never silent garbage results
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – stable tie-breaking, reproducible runs, no global state
//
// Under the hood, everything is organized per concern:
//
//	matrix/ — Dense & Vector containers, norms, numeric policy
//	lu/     — LU factorization, Ax=b solving, inverse & condition number
//	eigen/  — Hessenberg reduction + shifted QR eigendecomposition
//	lp/     — LP models and the two-phase simplex solver
//	milp/   — branch-and-bound for integer and binary programs
//
// Quick taste:
//
//	A := matrix.MustDenseFromRows([][]float64{{150, -100, 0}, {-100, 150, -50}, {0, -50, 50}})
//	x, err := lu.Solve(A, matrix.Vector{588.6, 686.7, 784.8})
//
// Dive into examples/ for full walkthroughs of spring systems, production
// planning and facility selection.
//
//	go get github.com/katalvlaran/linopt
package linopt
