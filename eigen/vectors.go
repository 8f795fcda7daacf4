// Package eigen: eigenvector recovery via inverse iteration.
//
// For each eigenvalue λ, solving (A − λI)·w = v repeatedly amplifies the
// component of v along the corresponding eigenvector. The shifted matrix is
// numerically singular on purpose; the elimination replaces a collapsed
// pivot with a tiny value (Wilkinson's device), which leaves the amplified
// direction intact. Complex arithmetic covers conjugate pairs uniformly.

package eigen

import (
	"math"
	"math/cmplx"
)

// inverseIterations is the number of refinement solves per eigenvector.
// One solve already lands on the eigenvector direction for well-separated
// eigenvalues; the extra passes polish clustered spectra.
const inverseIterations = 3

// eigenvector recovers a unit-norm eigenvector of the flat n×n matrix a
// for the eigenvalue lambda, using inverse iteration with a tiny-pivot
// fallback scaled by anorm.
//
// Complexity: O(n³) per vector (one complex elimination per refinement).
func eigenvector(a []float64, n int, lambda complex128, anorm float64) []complex128 {
	var (
		tiny = complex(anorm*float64(n)*machineEps, 0) // pivot replacement
		m    = make([]complex128, n*n)                 // shifted system, rebuilt per solve
		v    = make([]complex128, n)                   // current iterate
		i    int
		it   int
	)
	if real(tiny) == 0 {
		tiny = complex(machineEps, 0)
	}

	// Start from a deterministic, structureless vector.
	for i = 0; i < n; i++ {
		v[i] = complex(1/math.Sqrt(float64(n)), 0)
	}

	for it = 0; it < inverseIterations; it++ {
		// Rebuild M = A − λI (the elimination destroys it).
		buildShifted(m, a, n, lambda)
		solveInPlace(m, v, n, tiny)
		if !normalize(v) {
			// Solve collapsed (exactly defective direction): restart from
			// a shifted seed and keep iterating.
			for i = 0; i < n; i++ {
				v[i] = complex(float64(i+1), 0)
			}
			normalize(v)
		}
	}
	canonicalPhase(v)

	return v
}

// buildShifted fills m with A − λI.
func buildShifted(m []complex128, a []float64, n int, lambda complex128) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m[i*n+j] = complex(a[i*n+j], 0)
		}
		m[i*n+i] -= lambda
	}
}

// solveInPlace performs Gaussian elimination with partial pivoting on the
// complex system m·x = v, overwriting v with x and destroying m. Collapsed
// pivots are replaced by tiny instead of failing: for inverse iteration a
// singular shift is expected, not an error.
//
// Complexity: O(n³).
func solveInPlace(m []complex128, v []complex128, n int, tiny complex128) {
	var (
		i, j, k int
		p       int        // pivot row
		big     float64    // best pivot magnitude
		mag     float64    // candidate magnitude
		fac     complex128 // elimination multiplier
		sum     complex128
	)
	// Stage 1: Forward elimination with row pivoting.
	for k = 0; k < n; k++ {
		big, p = 0, k
		for i = k; i < n; i++ {
			mag = cmplx.Abs(m[i*n+k])
			if mag > big {
				big, p = mag, i
			}
		}
		if p != k {
			for j = k; j < n; j++ {
				m[p*n+j], m[k*n+j] = m[k*n+j], m[p*n+j]
			}
			v[p], v[k] = v[k], v[p]
		}
		if big <= real(tiny) {
			m[k*n+k] = tiny // singular shift: keep the direction alive
		}
		for i = k + 1; i < n; i++ {
			fac = m[i*n+k] / m[k*n+k]
			if fac == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				m[i*n+j] -= fac * m[k*n+j]
			}
			v[i] -= fac * v[k]
		}
	}

	// Stage 2: Back substitution.
	for i = n - 1; i >= 0; i-- {
		sum = v[i]
		for j = i + 1; j < n; j++ {
			sum -= m[i*n+j] * v[j]
		}
		v[i] = sum / m[i*n+i]
	}
}

// normalize scales v to unit Euclidean norm; returns false when the norm
// is zero or non-finite (the caller reseeds).
func normalize(v []complex128) bool {
	var sum float64
	for i := range v {
		sum += real(v[i])*real(v[i]) + imag(v[i])*imag(v[i])
	}
	nrm := math.Sqrt(sum)
	if nrm == 0 || math.IsNaN(nrm) || math.IsInf(nrm, 0) {
		return false
	}
	for i := range v {
		v[i] /= complex(nrm, 0)
	}

	return true
}

// canonicalPhase rotates v so its largest-magnitude component is real and
// positive. Eigenvectors are defined up to a complex unit factor; fixing
// the phase makes results reproducible and testable.
func canonicalPhase(v []complex128) {
	var (
		best    float64
		bestIdx int
	)
	for i := range v {
		if mag := real(v[i])*real(v[i]) + imag(v[i])*imag(v[i]); mag > best {
			best, bestIdx = mag, i
		}
	}
	if best == 0 {
		return
	}
	rot := cmplx.Conj(v[bestIdx]) / complex(cmplx.Abs(v[bestIdx]), 0)
	for i := range v {
		v[i] *= rot
	}
}
