// Package milp solves mixed-integer linear programs by branch-and-bound
// over the package lp simplex relaxation.
//
// 🚀 What is milp?
//
//	The integer layer of linopt. It accepts the same lp.Model, honors the
//	Kinds tags (Continuous, Integer, Binary) that package lp ignores, and
//	searches the integer lattice exactly:
//	  • best-first frontier — nodes are expanded in order of their LP
//	    relaxation bound, so the most promising subtree is explored first
//	  • most-fractional branching — the integer variable farthest from a
//	    whole number splits the node into a ⌊v⌋ child and a ⌈v⌉ child
//	  • incumbent pruning — any node whose relaxation bound cannot beat
//	    the best integral solution found so far is discarded unexpanded
//
// ✨ Key guarantees:
//   - Exact on termination: the returned incumbent is optimal, and its
//     objective never exceeds the root relaxation bound (Result.Bound)
//   - Deterministic: equal-bound frontier ties break by insertion order,
//     so identical inputs always explore identical trees
//   - Binary variables are confined to {0,1} regardless of the bounds the
//     model carries; a Binary bound disjoint from [0,1] is Infeasible
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linopt/milp"
//
//	m.Kinds = []lp.VarKind{lp.Continuous, lp.Integer, lp.Binary}
//	res, err := milp.Solve(m, milp.DefaultOptions())
//	if res.Status == lp.Optimal {
//	    fmt.Println(res.Objective, res.X)
//	}
//
// Budgets:
//
//	Options.MaxNodes caps LP relaxations solved (ErrNodeLimit beyond it)
//	and Options.TimeLimit sets a soft deadline checked once per expanded
//	node (ErrTimeLimit). Zero values mean the documented defaults.
//
// Complexity: worst case exponential in the number of integer variables;
// each node costs one simplex solve.
package milp
