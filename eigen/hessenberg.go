// Package eigen: Householder reduction to upper Hessenberg form.
//
// A similarity transform H = Pᵀ·A·P zeroes everything below the first
// subdiagonal; the spectrum of H equals the spectrum of A, and QR iteration
// on H costs O(n²) per sweep instead of O(n³).

package eigen

import "math"

// hessenberg reduces the flat row-major n×n buffer a to upper Hessenberg
// form in place via Householder reflections.
//
// Stage k (k = 0..n-3) builds a reflector from column k below the
// subdiagonal and applies it from both sides (similarity, so eigenvalues
// are preserved). Columns already reduced hold zeros below the subdiagonal
// and stay zero: the reflector only mixes rows ≥ k+1.
//
// Complexity: O(n³) time, O(n) extra memory for the reflector.
func hessenberg(a []float64, n int) {
	var (
		v     = make([]float64, n) // Householder vector, support k+1..n-1
		k     int                  // reduction step
		i, j  int                  // row / column indices
		norm  float64              // length of the column tail
		alpha float64              // reflection scalar
		beta  float64              // vᵀv
		tau   float64              // 2/β
		sum   float64              // projection accumulator
	)
	for k = 0; k+2 < n; k++ {
		// Stage 1: Norm of A[k+1:n][k].
		norm = 0
		for i = k + 1; i < n; i++ {
			norm += a[i*n+k] * a[i*n+k]
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue // column tail already zero
		}

		// Stage 2: Build the reflector v with v[k+1] adjusted by α.
		alpha = -math.Copysign(norm, a[(k+1)*n+k])
		for i = 0; i < n; i++ {
			v[i] = 0
		}
		for i = k + 1; i < n; i++ {
			v[i] = a[i*n+k]
		}
		v[k+1] -= alpha
		beta = 0
		for i = k + 1; i < n; i++ {
			beta += v[i] * v[i]
		}
		if beta == 0 {
			continue // degenerate reflector (column tail equals ±α·e₁)
		}
		tau = 2.0 / beta

		// Stage 3: Apply from the left, A ← P·A (rows k+1..n-1, cols k..n-1).
		for j = k; j < n; j++ {
			sum = 0
			for i = k + 1; i < n; i++ {
				sum += v[i] * a[i*n+j]
			}
			sum *= tau
			for i = k + 1; i < n; i++ {
				a[i*n+j] -= sum * v[i]
			}
		}

		// Stage 4: Apply from the right, A ← A·P (all rows, cols k+1..n-1).
		for i = 0; i < n; i++ {
			sum = 0
			for j = k + 1; j < n; j++ {
				sum += a[i*n+j] * v[j]
			}
			sum *= tau
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= sum * v[j]
			}
		}

		// Stage 5: Force exact zeros below the subdiagonal of column k.
		a[(k+1)*n+k] = alpha
		for i = k + 2; i < n; i++ {
			a[i*n+k] = 0
		}
	}
}
