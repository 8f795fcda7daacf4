package lu_test

import (
	"fmt"

	"github.com/katalvlaran/linopt/lu"
	"github.com/katalvlaran/linopt/matrix"
)

// ExampleSolve solves the three-mass spring system: stiffness matrix times
// displacement vector equals the weight loads.
func ExampleSolve() {
	a := matrix.MustDenseFromRows([][]float64{
		{150, -100, 0},
		{-100, 150, -50},
		{0, -50, 50},
	})
	b := matrix.Vector{588.6, 686.7, 784.8}

	x, err := lu.Solve(a, b)
	if err != nil {
		fmt.Println("solve failed:", err)

		return
	}
	fmt.Printf("x1=%.3f x2=%.3f x3=%.3f\n", x[0], x[1], x[2])

	// Output:
	// x1=41.202 x2=55.917 x3=71.613
}

// ExampleCond contrasts a perfectly conditioned system with an
// ill-conditioned one.
func ExampleCond() {
	id, _ := matrix.Identity(3)
	kID, _ := lu.Cond(id, matrix.NormInf)

	shaky := matrix.MustDenseFromRows([][]float64{
		{1, 1},
		{1, 1.0001},
	})
	kShaky, _ := lu.Cond(shaky, matrix.NormInf)

	fmt.Printf("identity: %.0f\n", kID)
	fmt.Printf("shaky > 10000: %v\n", kShaky > 10000)

	// Output:
	// identity: 1
	// shaky > 10000: true
}
