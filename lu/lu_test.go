package lu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linopt/lu"
	"github.com/katalvlaran/linopt/matrix"
)

// springSystem is the three-mass spring stiffness system used across the
// package tests: A·x = b with a tridiagonal stiffness matrix.
func springSystem() (*matrix.Dense, matrix.Vector) {
	a := matrix.MustDenseFromRows([][]float64{
		{150, -100, 0},
		{-100, 150, -50},
		{0, -50, 50},
	})

	return a, matrix.Vector{588.6, 686.7, 784.8}
}

// TestSolve_SpringSystem checks the worked spring example: the solution is
// x = [41.202, 55.917, 71.613] and the residual A·x − b vanishes.
func TestSolve_SpringSystem(t *testing.T) {
	a, b := springSystem()

	x, err := lu.Solve(a, b)
	require.NoError(t, err)

	want := matrix.Vector{41.202, 55.917, 71.613}
	for i := range want {
		assert.InDelta(t, want[i], x[i], 1e-9, "x[%d]", i)
	}

	// Residual property: ‖A·x − b‖ < ε for an invertible system.
	ax, err := a.MulVec(x)
	require.NoError(t, err)
	for i := range b {
		assert.InDelta(t, b[i], ax[i], 1e-9, "residual row %d", i)
	}
}

// TestSolve_PivotingRequired uses a zero leading entry: without row
// swapping the elimination would divide by zero immediately.
func TestSolve_PivotingRequired(t *testing.T) {
	a := matrix.MustDenseFromRows([][]float64{
		{0, 1},
		{1, 0},
	})

	x, err := lu.Solve(a, matrix.Vector{3, 7})
	require.NoError(t, err)
	assert.InDelta(t, 7.0, x[0], 1e-12)
	assert.InDelta(t, 3.0, x[1], 1e-12)
}

// TestSolve_Singular ensures the rank-deficient matrix [[1,1],[1,1]] fails
// with ErrSingular instead of producing a numeric result.
func TestSolve_Singular(t *testing.T) {
	a := matrix.MustDenseFromRows([][]float64{
		{1, 1},
		{1, 1},
	})

	_, err := lu.Solve(a, matrix.Vector{2, 2})
	assert.ErrorIs(t, err, lu.ErrSingular, "singular solve must fail fast")
}

// TestSolve_ShapeErrors covers non-square input and rhs length conflicts.
func TestSolve_ShapeErrors(t *testing.T) {
	rect := matrix.MustDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err := lu.Solve(rect, matrix.Vector{1, 2})
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	square := matrix.MustDenseFromRows([][]float64{{1, 0}, {0, 1}})
	_, err = lu.Solve(square, matrix.Vector{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestFactorize_BadTolerance rejects negative pivot tolerances.
func TestFactorize_BadTolerance(t *testing.T) {
	a := matrix.MustDenseFromRows([][]float64{{1, 0}, {0, 1}})

	_, err := lu.Factorize(a, lu.Options{PivotTol: -1})
	assert.ErrorIs(t, err, lu.ErrBadTolerance)
}

// TestFactorize_Reuse solves two right-hand sides over one factorization
// and checks both against direct residuals.
func TestFactorize_Reuse(t *testing.T) {
	a, b1 := springSystem()

	f, err := lu.Factorize(a, lu.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, f.Order())

	b2 := matrix.Vector{100, 0, -50}
	for _, b := range []matrix.Vector{b1, b2} {
		x, serr := f.SolveVec(b)
		require.NoError(t, serr)
		ax, merr := a.MulVec(x)
		require.NoError(t, merr)
		for i := range b {
			assert.InDelta(t, b[i], ax[i], 1e-8)
		}
	}
}

// TestDeterminant pins parity handling (a row swap flips the sign) and the
// singular case (determinant 0, no error).
func TestDeterminant(t *testing.T) {
	swap := matrix.MustDenseFromRows([][]float64{{0, 1}, {1, 0}})
	det, err := lu.Determinant(swap)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, det, 1e-12, "permutation matrix determinant")

	tri := matrix.MustDenseFromRows([][]float64{
		{2, 1, 0},
		{0, 3, 1},
		{0, 0, 4},
	})
	det, err = lu.Determinant(tri)
	require.NoError(t, err)
	assert.InDelta(t, 24.0, det, 1e-9, "upper triangular determinant")

	sing := matrix.MustDenseFromRows([][]float64{{1, 1}, {1, 1}})
	det, err = lu.Determinant(sing)
	require.NoError(t, err)
	assert.Equal(t, 0.0, det, "singular determinant is exactly 0")
}

// TestSolve_AgainstGonum cross-checks the owned solver against gonum/mat
// on a dense, well-conditioned 4×4 system.
func TestSolve_AgainstGonum(t *testing.T) {
	rows := [][]float64{
		{4, -2, 1, 3},
		{1, 5, -1, 2},
		{2, 1, 6, -1},
		{-1, 2, 1, 7},
	}
	b := matrix.Vector{5, 10, -3, 4}

	a := matrix.MustDenseFromRows(rows)
	x, err := lu.Solve(a, b)
	require.NoError(t, err)

	// Oracle: gonum's dense solver on the same data.
	flat := make([]float64, 0, 16)
	for _, r := range rows {
		flat = append(flat, r...)
	}
	ga := mat.NewDense(4, 4, flat)
	gb := mat.NewVecDense(4, []float64{5, 10, -3, 4})
	var gx mat.VecDense
	require.NoError(t, gx.SolveVec(ga, gb))

	for i := 0; i < 4; i++ {
		assert.InDelta(t, gx.AtVec(i), x[i], 1e-10, "x[%d] vs gonum", i)
	}
}
