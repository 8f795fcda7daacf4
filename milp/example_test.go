package milp_test

import (
	"fmt"

	"github.com/katalvlaran/linopt/lp"
	"github.com/katalvlaran/linopt/milp"
)

// ExampleSolve decides which of two product lines to activate: binary y1
// gates product 1, binary y3 gates product 3, and only one line fits.
func ExampleSolve() {
	m := lp.Model{
		Sense: lp.Maximize,
		C:     []float64{20, 12, 40, 25, 0, 0},
		AUb: [][]float64{
			{1, 1, 1, 1, 0, 0},
			{3, 2, 1, 0, 0, 0},
			{0, 1, 2, 3, 0, 0},
			{0, 0, 0, 0, 1, 1},
			{1, 0, 0, 0, -50, 0},
			{0, 0, 1, 0, 0, -50},
		},
		BUb: []float64{50, 100, 90, 1, 0, 0},
		Kinds: []lp.VarKind{
			lp.Continuous, lp.Continuous, lp.Continuous, lp.Continuous,
			lp.Binary, lp.Binary,
		},
	}

	res, err := milp.Solve(m, milp.DefaultOptions())
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Println("status:", res.Status)
	fmt.Printf("profit: %.0f (relaxation promised %.0f)\n", res.Objective, res.Bound)
	fmt.Printf("plan:   x3=%.0f y1=%.0f y3=%.0f\n", res.X[2], res.X[4], res.X[5])
	// Output:
	// status: Optimal
	// profit: 1800 (relaxation promised 1900)
	// plan:   x3=45 y1=0 y3=1
}
