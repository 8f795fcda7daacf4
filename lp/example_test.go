package lp_test

import (
	"fmt"

	"github.com/katalvlaran/linopt/lp"
)

// ExampleSolve plans a four-product mix under three shared resources.
func ExampleSolve() {
	m := lp.Model{
		Sense: lp.Maximize,
		C:     []float64{20, 12, 40, 25},
		AUb: [][]float64{
			{1, 1, 1, 1}, // machine hours
			{3, 2, 1, 0}, // raw material A
			{0, 1, 2, 3}, // raw material B
		},
		BUb: []float64{50, 100, 90},
	}

	res, err := lp.Solve(m, lp.DefaultOptions())
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Println("status:", res.Status)
	fmt.Printf("profit: %.0f\n", res.Objective)
	fmt.Printf("plan:   x1=%.0f x2=%.0f x3=%.0f x4=%.0f\n",
		res.X[0], res.X[1], res.X[2], res.X[3])
	// Output:
	// status: Optimal
	// profit: 1900
	// plan:   x1=5 x2=0 x3=45 x4=0
}

// ExampleSolve_minimize minimizes a blending cost over a coverage
// requirement expressed as a ≥ row.
func ExampleSolve_minimize() {
	m := lp.Model{
		Sense: lp.Minimize,
		C:     []float64{3, 5},
		AUb:   [][]float64{{-1, -2}}, // x1 + 2x2 ≥ 8
		BUb:   []float64{-8},
	}

	res, err := lp.Solve(m, lp.DefaultOptions())
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Println("status:", res.Status)
	fmt.Printf("cost: %.0f\n", res.Objective)
	// Output:
	// status: Optimal
	// cost: 20
}
