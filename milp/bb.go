// Package milp — branch-and-bound over the simplex relaxation.
//
// Solve enumerates bound-tightened copies of the model in best-first
// order. Each frontier node carries its own LP relaxation solution, so a
// pop never re-solves: it only splits on the most fractional integer
// variable and solves the two children. The search is exact and fully
// deterministic.
//
// Rationale (succinct):
//  1. Best-first expansion: the frontier is a max-heap keyed by the
//     relaxation bound (maximize-normalized score), so the subtree that
//     could still contain the best integer point is always explored
//     next. Equal bounds break by insertion order.
//  2. Most-fractional branching: the integer variable farthest from a
//     whole number is the one the relaxation is least decided about;
//     splitting it at ⌊v⌋ / ⌈v⌉ removes the fractional point from both
//     children while covering every integer completion.
//  3. Incumbent pruning: a child whose relaxation bound cannot exceed the
//     incumbent score (within eps) is dropped at creation, and a popped
//     node is re-checked since the incumbent may have improved while it
//     sat in the frontier.
//  4. Budgets: MaxNodes caps relaxation solves; a positive TimeLimit is a
//     soft deadline checked once per expanded node.
//
// Complexity:
//   - Worst case exponential in the integer variable count (exact search).
//   - Per node: one simplex solve + O(n) branching-variable scan.
//   - Memory: O(frontier) model clones; each clone is O(rows·n).

package milp

import (
	"container/heap"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/linopt/lp"
	"github.com/katalvlaran/linopt/matrix"
)

// node is one frontier entry: a bound-tightened model clone plus the
// solution and bound of its own LP relaxation.
type node struct {
	model  lp.Model
	x      matrix.Vector
	bound  float64 // relaxation score, maximize-normalized
	branch int     // most fractional integer variable of x
	depth  int
	seq    int // insertion order, breaks bound ties deterministically
}

// frontier is a max-heap of nodes keyed by bound, FIFO within a bound.
type frontier []*node

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].bound != f[j].bound {
		return f[i].bound > f[j].bound
	}

	return f[i].seq < f[j].seq
}
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)   { *f = append(*f, x.(*node)) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return it
}

// bbEngine holds all search data and policies.
// A dedicated engine struct (instead of anonymous closures) keeps
// dependencies explicit, testing simpler, and hot-path state predictable.
type bbEngine struct {
	// Configuration / policy
	sense  lp.Sense
	intTol float64
	eps    float64
	lpOpts lp.Options

	// Budgets
	maxNodes    int
	nodes       int
	useDeadline bool
	deadline    time.Time

	// Search state
	frontier frontier
	seq      int

	// Current best incumbent
	incumbent matrix.Vector
	incObj    float64
	incScore  float64
	found     bool
}

// score maps an objective value to the internal maximize-normalized scale
// so that "larger is better" holds for both senses.
func (e *bbEngine) score(obj float64) float64 {
	if e.sense == lp.Minimize {
		return -obj
	}

	return obj
}

// relax solves the LP relaxation of m, charging one unit of node budget.
func (e *bbEngine) relax(m lp.Model) (lp.Result, error) {
	if e.nodes >= e.maxNodes {
		return lp.Result{}, ErrNodeLimit
	}
	e.nodes++

	return lp.Solve(m, e.lpOpts)
}

// branchVar returns the integer variable of x farthest from a whole
// number, or -1 when every integer variable is integral within IntTol.
func (e *bbEngine) branchVar(m lp.Model, x matrix.Vector) int {
	var (
		best     = -1
		bestFrac = e.intTol
		frac     float64
	)
	for j := range x {
		if m.KindAt(j) == lp.Continuous {
			continue
		}
		frac = math.Abs(x[j] - math.Round(x[j]))
		if frac > bestFrac {
			best, bestFrac = j, frac
		}
	}

	return best
}

// offer challenges the incumbent with an integral relaxation solution.
// Integer variables are snapped to exact whole numbers and the objective
// recomputed from the snapped point.
func (e *bbEngine) offer(m lp.Model, x matrix.Vector) {
	var (
		snapped = make(matrix.Vector, len(x))
		obj     float64
		v       float64
	)
	for j := range x {
		v = x[j]
		if m.KindAt(j) != lp.Continuous {
			v = math.Round(v)
		}
		snapped[j] = v
		obj += m.C[j] * v
	}
	if s := e.score(obj); !e.found || s > e.incScore {
		e.incumbent = snapped
		e.incObj = obj
		e.incScore = s
		e.found = true
	}
}

// tighten clones m with one branch bound applied: the down child keeps
// x_j ≤ ⌊v⌋, the up child keeps x_j ≥ ⌈v⌉. Reports false when the
// tightened interval is empty.
func tighten(m lp.Model, j int, v float64, up bool) (lp.Model, bool) {
	c := m.Clone()
	b := c.Bounds[j]
	if up {
		b.Lo = math.Ceil(v)
	} else {
		b.Hi = math.Floor(v)
	}
	if b.Lo > b.Hi {
		return lp.Model{}, false
	}
	c.Bounds[j] = b

	return c, true
}

// pushChild solves the relaxation of c and routes the outcome: infeasible
// children vanish, dominated ones are pruned, integral ones challenge the
// incumbent, fractional ones join the frontier keyed by their bound.
func (e *bbEngine) pushChild(c lp.Model, depth int) error {
	res, err := e.relax(c)
	if err != nil {
		return err
	}
	if res.Status != lp.Optimal {
		return nil
	}
	s := e.score(res.Objective)
	if e.found && s <= e.incScore+e.eps {
		return nil
	}
	j := e.branchVar(c, res.X)
	if j < 0 {
		e.offer(c, res.X)

		return nil
	}
	heap.Push(&e.frontier, &node{model: c, x: res.X, bound: s, branch: j, depth: depth, seq: e.seq})
	e.seq++

	return nil
}

// expand splits a popped node on its recorded branching variable.
func (e *bbEngine) expand(n *node) error {
	v := n.x[n.branch]
	for _, up := range [2]bool{false, true} {
		c, ok := tighten(n.model, n.branch, v, up)
		if !ok {
			continue
		}
		if err := e.pushChild(c, n.depth+1); err != nil {
			return err
		}
	}

	return nil
}

// clampBinaries returns a deep copy of m with Bounds materialized and
// every Binary variable confined to [0,1]. The bool reports a Binary
// bound disjoint from [0,1], which makes the model infeasible outright.
// Malformed bounds (Lo > Hi) pass through untouched so the relaxation
// solver reports them as lp.ErrBadModel.
func clampBinaries(m lp.Model) (lp.Model, bool) {
	var (
		c = m.Clone()
		n = c.NumVars()
		j int
		b lp.Bound
	)
	if c.Bounds == nil {
		c.Bounds = make([]lp.Bound, n)
		for j = range c.Bounds {
			c.Bounds[j] = lp.DefaultBound()
		}
	}
	for j = 0; j < n && j < len(c.Bounds); j++ {
		if c.KindAt(j) != lp.Binary {
			continue
		}
		b = c.Bounds[j]
		if b.Lo > b.Hi {
			continue
		}
		b.Lo = math.Max(b.Lo, 0)
		b.Hi = math.Min(b.Hi, 1)
		if b.Lo > b.Hi {
			return lp.Model{}, true
		}
		c.Bounds[j] = b
	}

	return c, false
}

// Solve runs branch-and-bound on m, honoring its Kinds tags.
//
// Contract:
//   - m is validated by the relaxation solver (lp.ErrBadModel on shape
//     conflicts) and never mutated.
//   - On Optimal, every Integer/Binary entry of Result.X is an exact
//     whole number and Result.Objective never beats Result.Bound.
//   - Without integer variables Solve degenerates to a single lp.Solve.
//
// Errors: ErrBadOptions, ErrNodeLimit, ErrTimeLimit, plus the lp solver
// sentinels from the relaxations.
func Solve(m lp.Model, opts Options) (Result, error) {
	// Stage 1: Options and binary confinement.
	opts, err := opts.normalized()
	if err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}
	root, disjoint := clampBinaries(m)
	if disjoint {
		return Result{Status: lp.Infeasible}, nil
	}

	e := &bbEngine{
		sense:    m.Sense,
		intTol:   opts.IntTol,
		eps:      opts.LP.Eps,
		lpOpts:   opts.LP,
		maxNodes: opts.MaxNodes,
	}
	if e.eps == 0 {
		e.eps = lp.DefaultEps
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	// Stage 2: Root relaxation fixes the global bound and the frontier.
	res, err := e.relax(root)
	if err != nil {
		return Result{}, fmt.Errorf("Solve: root relaxation: %w", err)
	}
	if res.Status != lp.Optimal {
		return Result{Status: res.Status, Nodes: e.nodes}, nil
	}
	rootBound := res.Objective
	if j := e.branchVar(root, res.X); j >= 0 {
		heap.Push(&e.frontier, &node{model: root, x: res.X, bound: e.score(res.Objective), branch: j, seq: e.seq})
		e.seq++
	} else {
		e.offer(root, res.X)
	}

	// Stage 3: Best-first search until the frontier drains.
	for e.frontier.Len() > 0 {
		if e.useDeadline && time.Now().After(e.deadline) {
			return Result{}, fmt.Errorf("Solve: %w", ErrTimeLimit)
		}
		n := heap.Pop(&e.frontier).(*node)
		// The incumbent may have improved while n sat in the frontier.
		if e.found && n.bound <= e.incScore+e.eps {
			continue
		}
		if err = e.expand(n); err != nil {
			return Result{}, fmt.Errorf("Solve: %w", err)
		}
	}

	// Stage 4: Finalize. An empty frontier with no incumbent means no
	// integer point survived any branch.
	if !e.found {
		return Result{Status: lp.Infeasible, Nodes: e.nodes}, nil
	}

	return Result{
		Status:    lp.Optimal,
		X:         e.incumbent,
		Objective: e.incObj,
		Bound:     rootBound,
		Nodes:     e.nodes,
	}, nil
}
