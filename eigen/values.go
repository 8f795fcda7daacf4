// Package eigen: Francis double-shift QR iteration on a Hessenberg matrix.
//
// The working block [l..hi] shrinks as subdiagonal entries collapse to zero
// (deflation): a 1×1 trailing block yields a real eigenvalue, a 2×2 block
// yields either a real pair or a complex-conjugate pair from its
// characteristic quadratic. The implicit double shift keeps all arithmetic
// real even while converging to complex pairs; every 10 stalled sweeps an
// exceptional shift breaks symmetric stalemates (classical hqr discipline).

package eigen

import (
	"fmt"
	"math"
)

// qrValues extracts all eigenvalues of the upper Hessenberg buffer h
// (flat row-major, order n), destroying h in the process.
//
// Contract: h must be upper Hessenberg; maxIter is the sweep budget per
// eigenvalue; tol is the relative deflation threshold (≤ 0 selects machine
// epsilon). Returns the spectrum or ErrNonConvergence.
//
// Complexity: O(n²) per sweep, at most maxIter·n sweeps overall.
func qrValues(h []float64, n, maxIter int, tol float64) ([]complex128, error) {
	if tol <= 0 {
		tol = machineEps
	}

	// anorm participates in the deflation test for rows whose local scale
	// vanishes; it is the absolute sum over the Hessenberg band.
	var (
		anorm float64
		i, j  int
	)
	for i = 0; i < n; i++ {
		for j = maxInt(i-1, 0); j < n; j++ {
			anorm += math.Abs(h[i*n+j])
		}
	}

	var (
		out        = make([]complex128, n)
		hi         = n - 1  // bottom of the active block
		shift      float64  // accumulated exceptional shifts
		its        int      // sweeps spent on the current eigenvalue
		l, m, k    int      // deflation point / bulge start / sweep column
		mmin       int      // column-modification row cap
		p, q, r    float64  // bulge reflector components
		s, u, v    float64  // scale accumulators
		x, y, z, w float64  // trailing-block entries
	)
	for hi >= 0 {
		its = 0
		for {
			// Stage 1: Find the deflation point l — the smallest row of the
			// active block whose subdiagonal entry is negligible.
			l = 0
			for k = hi; k >= 1; k-- {
				s = math.Abs(h[(k-1)*n+k-1]) + math.Abs(h[k*n+k])
				if s == 0 {
					s = anorm
				}
				if math.Abs(h[k*n+k-1]) <= tol*s {
					h[k*n+k-1] = 0
					l = k
					break
				}
			}

			x = h[hi*n+hi]
			if l == hi {
				// Stage 2a: 1×1 block — a real eigenvalue.
				out[hi] = complex(x+shift, 0)
				hi--
				break
			}

			y = h[(hi-1)*n+hi-1]
			w = h[hi*n+hi-1] * h[(hi-1)*n+hi]
			if l == hi-1 {
				// Stage 2b: 2×2 block — roots of λ² − (x+y)λ + (xy − w).
				p = 0.5 * (y - x)
				q = p*p + w
				z = math.Sqrt(math.Abs(q))
				x += shift
				if q >= 0 {
					// Real pair.
					z = p + math.Copysign(z, p)
					out[hi-1] = complex(x+z, 0)
					out[hi] = out[hi-1]
					if z != 0 {
						out[hi] = complex(x-w/z, 0)
					}
				} else {
					// Complex-conjugate pair.
					out[hi-1] = complex(x+p, z)
					out[hi] = complex(x+p, -z)
				}
				hi -= 2
				break
			}

			// Stage 3: No deflation yet — budget check and shift selection.
			if its == maxIter {
				return nil, fmt.Errorf("qrValues: eigenvalue %d after %d sweeps: %w", hi, maxIter, ErrNonConvergence)
			}
			if its == 10 || its == 20 {
				// Exceptional shift: perturb the spectrum to break a stall.
				shift += x
				for i = 0; i <= hi; i++ {
					h[i*n+i] -= x
				}
				s = math.Abs(h[hi*n+hi-1]) + math.Abs(h[(hi-1)*n+hi-2])
				x = 0.75 * s
				y = x
				w = -0.4375 * s * s
			}
			its++

			// Stage 4: Locate the bulge start m — two consecutive small
			// subdiagonals let the sweep begin mid-block.
			for m = hi - 2; m >= l; m-- {
				z = h[m*n+m]
				r = x - z
				s = y - z
				p = (r*s-w)/h[(m+1)*n+m] + h[m*n+m+1]
				q = h[(m+1)*n+m+1] - z - r - s
				r = h[(m+2)*n+m+1]
				s = math.Abs(p) + math.Abs(q) + math.Abs(r)
				p /= s
				q /= s
				r /= s
				if m == l {
					break
				}
				u = math.Abs(h[m*n+m-1]) * (math.Abs(q) + math.Abs(r))
				v = math.Abs(z) * (math.Abs(h[(m-1)*n+m-1]) + math.Abs(z) + math.Abs(h[(m+1)*n+m+1]))
				if u <= tol*v {
					break
				}
			}
			for i = m + 2; i <= hi; i++ {
				h[i*n+i-2] = 0
				if i != m+2 {
					h[i*n+i-3] = 0
				}
			}

			// Stage 5: Double QR sweep — chase the bulge from m to hi.
			for k = m; k <= hi-1; k++ {
				if k != m {
					p = h[k*n+k-1]
					q = h[(k+1)*n+k-1]
					r = 0
					if k != hi-1 {
						r = h[(k+2)*n+k-1]
					}
					x = math.Abs(p) + math.Abs(q) + math.Abs(r)
					if x != 0 {
						p /= x
						q /= x
						r /= x
					}
				}
				s = math.Copysign(math.Sqrt(p*p+q*q+r*r), p)
				if s == 0 {
					continue
				}
				if k == m {
					if l != m {
						h[k*n+k-1] = -h[k*n+k-1]
					}
				} else {
					h[k*n+k-1] = -s * x
				}
				p += s
				x = p / s
				y = q / s
				z = r / s
				q /= p
				r /= p

				// Row modification.
				for j = k; j <= hi; j++ {
					p = h[k*n+j] + q*h[(k+1)*n+j]
					if k != hi-1 {
						p += r * h[(k+2)*n+j]
						h[(k+2)*n+j] -= p * z
					}
					h[(k+1)*n+j] -= p * y
					h[k*n+j] -= p * x
				}

				// Column modification.
				mmin = minInt(hi, k+3)
				for i = l; i <= mmin; i++ {
					p = x*h[i*n+k] + y*h[i*n+k+1]
					if k != hi-1 {
						p += z * h[i*n+k+2]
						h[i*n+k+2] -= p * r
					}
					h[i*n+k+1] -= p * q
					h[i*n+k] -= p
				}
			}
		}
	}

	return out, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
