package lp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linopt/lp"
)

// productionModel is the worked production-mix program used across the
// package: maximize 20x1+12x2+40x3+25x4 under three resource rows.
func productionModel() lp.Model {
	return lp.Model{
		Sense: lp.Maximize,
		C:     []float64{20, 12, 40, 25},
		AUb: [][]float64{
			{1, 1, 1, 1},
			{3, 2, 1, 0},
			{0, 1, 2, 3},
		},
		BUb: []float64{50, 100, 90},
	}
}

// TestSolve_ProductionMix pins the known optimum: objective 1900 at
// x = [5, 0, 45, 0], with slack only on the second resource.
func TestSolve_ProductionMix(t *testing.T) {
	res, err := lp.Solve(productionModel(), lp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, res.Status)

	assert.InDelta(t, 1900.0, res.Objective, 1e-7)
	want := []float64{5, 0, 45, 0}
	for i := range want {
		assert.InDelta(t, want[i], res.X[i], 1e-7, "x[%d]", i)
	}

	require.Len(t, res.Slack, 3)
	assert.InDelta(t, 0.0, res.Slack[0], 1e-7, "first resource is tight")
	assert.InDelta(t, 40.0, res.Slack[1], 1e-7, "second resource has headroom")
	assert.InDelta(t, 0.0, res.Slack[2], 1e-7, "third resource is tight")
}

// TestSolve_MinimizeWithPhase1 uses a ≥ constraint (negative rhs after
// normalization), forcing the auxiliary Phase-1 basis.
func TestSolve_MinimizeWithPhase1(t *testing.T) {
	m := lp.Model{
		Sense: lp.Minimize,
		C:     []float64{1, 1},
		AUb:   [][]float64{{-1, -1}}, // x1 + x2 ≥ 1
		BUb:   []float64{-1},
	}

	res, err := lp.Solve(m, lp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, res.Status)
	assert.InDelta(t, 1.0, res.Objective, 1e-9)
	assert.InDelta(t, 1.0, res.X[0]+res.X[1], 1e-9)
}

// TestSolve_Equality checks equality handling: x1 + x2 = 10 with x1 ≤ 6,
// maximizing x1.
func TestSolve_Equality(t *testing.T) {
	m := lp.Model{
		Sense: lp.Maximize,
		C:     []float64{1, 0},
		AUb:   [][]float64{{1, 0}},
		BUb:   []float64{6},
		AEq:   [][]float64{{1, 1}},
		BEq:   []float64{10},
	}

	res, err := lp.Solve(m, lp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, res.Status)
	assert.InDelta(t, 6.0, res.X[0], 1e-9)
	assert.InDelta(t, 4.0, res.X[1], 1e-9)
}

// TestSolve_Infeasible pins the Infeasible status on x ≤ 1 ∧ x ≥ 2.
func TestSolve_Infeasible(t *testing.T) {
	m := lp.Model{
		Sense: lp.Maximize,
		C:     []float64{1},
		AUb:   [][]float64{{1}, {-1}},
		BUb:   []float64{1, -2},
	}

	res, err := lp.Solve(m, lp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, lp.Infeasible, res.Status)
}

// TestSolve_Unbounded pins the Unbounded status on an unconstrained
// maximization.
func TestSolve_Unbounded(t *testing.T) {
	m := lp.Model{
		Sense: lp.Maximize,
		C:     []float64{1},
	}

	res, err := lp.Solve(m, lp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, lp.Unbounded, res.Status)
}

// TestSolve_FreeVariable exercises the x = y⁺ − y⁻ split: minimize a free
// variable bounded below only through a constraint row.
func TestSolve_FreeVariable(t *testing.T) {
	m := lp.Model{
		Sense:  lp.Minimize,
		C:      []float64{1},
		AUb:    [][]float64{{-1}}, // x ≥ −5
		BUb:    []float64{5},
		Bounds: []lp.Bound{{Lo: math.Inf(-1), Hi: math.Inf(1)}},
	}

	res, err := lp.Solve(m, lp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, res.Status)
	assert.InDelta(t, -5.0, res.X[0], 1e-9)
	assert.InDelta(t, -5.0, res.Objective, 1e-9)
}

// TestSolve_TwoSidedAndMirroredBounds exercises the shifted bound row
// (1 ≤ x ≤ 3) and the mirrored upper-only bound (x ≤ 4, no lower bound).
func TestSolve_TwoSidedAndMirroredBounds(t *testing.T) {
	two := lp.Model{
		Sense:  lp.Maximize,
		C:      []float64{1},
		Bounds: []lp.Bound{{Lo: 1, Hi: 3}},
	}
	res, err := lp.Solve(two, lp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, res.Status)
	assert.InDelta(t, 3.0, res.X[0], 1e-9)

	mirror := lp.Model{
		Sense:  lp.Maximize,
		C:      []float64{1},
		Bounds: []lp.Bound{{Lo: math.Inf(-1), Hi: 4}},
	}
	res, err = lp.Solve(mirror, lp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, res.Status)
	assert.InDelta(t, 4.0, res.X[0], 1e-9)
}

// TestSolve_BadModel covers the fail-fast validation paths.
func TestSolve_BadModel(t *testing.T) {
	_, err := lp.Solve(lp.Model{}, lp.DefaultOptions())
	assert.ErrorIs(t, err, lp.ErrBadModel, "empty objective")

	ragged := lp.Model{
		C:   []float64{1, 2},
		AUb: [][]float64{{1}},
		BUb: []float64{1},
	}
	_, err = lp.Solve(ragged, lp.DefaultOptions())
	assert.ErrorIs(t, err, lp.ErrBadModel, "ragged constraint row")

	inverted := lp.Model{
		C:      []float64{1},
		Bounds: []lp.Bound{{Lo: 2, Hi: 1}},
	}
	_, err = lp.Solve(inverted, lp.DefaultOptions())
	assert.ErrorIs(t, err, lp.ErrBadModel, "Lo > Hi bound")

	_, err = lp.Solve(lp.Model{C: []float64{1}}, lp.Options{Eps: -1})
	assert.ErrorIs(t, err, lp.ErrBadOptions, "negative eps")
}

// TestSolve_PivotBudget ensures an absurdly small pivot budget surfaces
// ErrPivotLimit instead of looping.
func TestSolve_PivotBudget(t *testing.T) {
	opts := lp.DefaultOptions()
	opts.MaxPivots = 1

	_, err := lp.Solve(productionModel(), opts)
	assert.ErrorIs(t, err, lp.ErrPivotLimit)
}

// BenchmarkSolve_ProductionMix tracks the cost of a small dense solve.
func BenchmarkSolve_ProductionMix(b *testing.B) {
	m := productionModel()
	opts := lp.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lp.Solve(m, opts); err != nil {
			b.Fatal(err)
		}
	}
}
