// Package lp models linear programs and solves their continuous relaxation
// with a two-phase dense tableau simplex.
//
// 🚀 What is lp?
//
//	The optimization core of linopt:
//	  • Model — objective sense + coefficients, inequality rows A·x ≤ b,
//	    equality rows, per-variable bounds and kind tags
//	  • Solve — two-phase simplex: Phase 1 finds a feasible basis through
//	    auxiliary artificial variables, Phase 2 optimizes the true objective
//	  • Result — tagged status {Optimal, Infeasible, Unbounded} plus the
//	    assignment, objective value and per-constraint slack
//
// ✨ Key guarantees:
//   - Strict standard-form rewrite: slack/surplus columns, shifted lower
//     bounds, mirrored upper-only bounds, split free variables
//   - Dantzig entering rule (most-negative reduced cost) with an automatic
//     switch to Bland's rule after a degenerate streak — no cycling
//   - Deterministic leaving rule: minimum ratio, ties by smallest row index
//   - Models are treated as immutable: the solver works on a private copy
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linopt/lp"
//
//	m := lp.Model{
//	  Sense: lp.Maximize,
//	  C:     []float64{20, 12, 40, 25},
//	  AUb:   [][]float64{{1, 1, 1, 1}, {3, 2, 1, 0}, {0, 1, 2, 3}},
//	  BUb:   []float64{50, 100, 90},
//	}
//	res, err := lp.Solve(m, lp.DefaultOptions())
//	// res.Status == lp.Optimal, res.Objective == 1900
//
// Variable kinds (Integer/Binary) are carried by the Model but ignored
// here: Solve always relaxes to continuous. Package milp enforces
// integrality on top of this solver.
//
// Complexity: each pivot costs O(m·n) on the dense tableau; pivot count is
// finite under the anti-cycling rule and additionally capped by
// Options.MaxPivots.
package lp
