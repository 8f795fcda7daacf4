package eigen_test

import (
	"math/cmplx"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linopt/eigen"
	"github.com/katalvlaran/linopt/matrix"
)

// sortSpectrum orders eigenvalues the way Decompose documents: descending
// |λ|, then descending real part, then descending imaginary part.
func sortSpectrum(vals []complex128) {
	sort.SliceStable(vals, func(i, j int) bool {
		ai, aj := cmplx.Abs(vals[i]), cmplx.Abs(vals[j])
		if ai != aj {
			return ai > aj
		}
		if real(vals[i]) != real(vals[j]) {
			return real(vals[i]) > real(vals[j])
		}

		return imag(vals[i]) > imag(vals[j])
	})
}

// assertPairs checks the verification contract for every returned pair:
// unit-norm vector and vanishing residual ‖A·v − λ·v‖.
func assertPairs(t *testing.T, a *matrix.Dense, res eigen.Result, tol float64) {
	t.Helper()
	for i, p := range res.Pairs {
		var norm float64
		for _, c := range p.Vector {
			norm += real(c)*real(c) + imag(c)*imag(c)
		}
		assert.InDelta(t, 1.0, norm, 1e-9, "‖v‖² of pair %d", i)
		assert.Less(t, eigen.Residual(a, p), tol, "residual of pair %d (λ=%v)", i, p.Value)
	}
}

// TestDecompose_Diagonal pins the trivial spectrum of a diagonal matrix
// and the descending-magnitude ordering.
func TestDecompose_Diagonal(t *testing.T) {
	a := matrix.MustDenseFromRows([][]float64{
		{2, 0},
		{0, 3},
	})

	res, err := eigen.Decompose(a, eigen.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Pairs, 2)

	assert.InDelta(t, 3.0, real(res.Pairs[0].Value), 1e-10)
	assert.InDelta(t, 0.0, imag(res.Pairs[0].Value), 1e-10)
	assert.InDelta(t, 2.0, real(res.Pairs[1].Value), 1e-10)

	assertPairs(t, a, res, 1e-8)
}

// TestDecompose_ComplexPair uses the plane rotation by 90°: its spectrum
// is the conjugate pair ±i, which no real-arithmetic shortcut can produce.
func TestDecompose_ComplexPair(t *testing.T) {
	a := matrix.MustDenseFromRows([][]float64{
		{0, -1},
		{1, 0},
	})

	res, err := eigen.Decompose(a, eigen.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Pairs, 2)

	// Ordered +i before −i (equal magnitude and real part).
	assert.InDelta(t, 0.0, real(res.Pairs[0].Value), 1e-10)
	assert.InDelta(t, 1.0, imag(res.Pairs[0].Value), 1e-10)
	assert.InDelta(t, -1.0, imag(res.Pairs[1].Value), 1e-10)

	assertPairs(t, a, res, 1e-8)
}

// TestDecompose_Symmetric3 checks a classic tridiagonal stiffness pattern:
// eigenvalues of [[2,-1,0],[-1,2,-1],[0,-1,2]] are 2±√2 and 2.
func TestDecompose_Symmetric3(t *testing.T) {
	a := matrix.MustDenseFromRows([][]float64{
		{2, -1, 0},
		{-1, 2, -1},
		{0, -1, 2},
	})

	res, err := eigen.Decompose(a, eigen.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Pairs, 3)

	const sqrt2 = 1.4142135623730951
	assert.InDelta(t, 2+sqrt2, real(res.Pairs[0].Value), 1e-9)
	assert.InDelta(t, 2.0, real(res.Pairs[1].Value), 1e-9)
	assert.InDelta(t, 2-sqrt2, real(res.Pairs[2].Value), 1e-9)
	for _, p := range res.Pairs {
		assert.InDelta(t, 0.0, imag(p.Value), 1e-9, "symmetric spectra are real")
	}

	assertPairs(t, a, res, 1e-7)
}

// TestDecompose_RankDeficient verifies that singular input is fine for the
// spectrum (eigenvalue 0 is an answer here, not an error).
func TestDecompose_RankDeficient(t *testing.T) {
	a := matrix.MustDenseFromRows([][]float64{
		{1, 1},
		{1, 1},
	})

	res, err := eigen.Decompose(a, eigen.DefaultOptions())
	require.NoError(t, err)

	assert.InDelta(t, 2.0, real(res.Pairs[0].Value), 1e-10)
	assert.InDelta(t, 0.0, real(res.Pairs[1].Value), 1e-10)
	assertPairs(t, a, res, 1e-8)
}

// TestDecompose_ShapeAndOptionErrors covers the fail-fast paths.
func TestDecompose_ShapeAndOptionErrors(t *testing.T) {
	rect := matrix.MustDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err := eigen.Decompose(rect, eigen.DefaultOptions())
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	square := matrix.MustDenseFromRows([][]float64{{1, 0}, {0, 1}})
	_, err = eigen.Decompose(square, eigen.Options{MaxIter: 0})
	assert.ErrorIs(t, err, eigen.ErrBadOptions)
	_, err = eigen.Decompose(square, eigen.Options{MaxIter: 30, Tol: -1})
	assert.ErrorIs(t, err, eigen.ErrBadOptions)
}

// TestDecompose_AgainstGonum cross-checks the full spectrum of a dense
// non-symmetric 4×4 against gonum's eigensolver.
func TestDecompose_AgainstGonum(t *testing.T) {
	rows := [][]float64{
		{4, 1, 0, 2},
		{-1, 3, 1, 0},
		{2, 0, 1, -1},
		{0, 1, 2, 5},
	}
	a := matrix.MustDenseFromRows(rows)

	res, err := eigen.Decompose(a, eigen.DefaultOptions())
	require.NoError(t, err)
	got := res.Values()

	flat := make([]float64, 0, 16)
	for _, r := range rows {
		flat = append(flat, r...)
	}
	var ge mat.Eigen
	require.True(t, ge.Factorize(mat.NewDense(4, 4, flat), mat.EigenRight))
	want := ge.Values(nil)

	sortSpectrum(got)
	sortSpectrum(want)
	for i := range want {
		assert.InDelta(t, real(want[i]), real(got[i]), 1e-8, "Re λ[%d]", i)
		assert.InDelta(t, imag(want[i]), imag(got[i]), 1e-8, "Im λ[%d]", i)
	}

	assertPairs(t, a, res, 1e-7)
}
