// Package lp: the two-phase dense tableau simplex engine.
//
// The engine is a dedicated struct (instead of anonymous closures) to keep
// hot-path state predictable and testing simple. State machine:
//
//	Initial → Phase1  when artificial columns are needed (some row has no
//	                  ready-made basic slack)
//	Phase1  → Infeasible  if the auxiliary objective cannot reach zero
//	Phase1  → Phase2      otherwise (artificials driven/banned out)
//	Phase2  → Unbounded   if an entering column has no ratio-test candidate
//	Phase2  → Optimal     when no reduced cost improves the objective
//
// Pivot rules: Dantzig entering (most-negative reduced cost) with a
// permanent switch to Bland's smallest-index rule after a degenerate
// streak; leaving by minimum ratio, ties broken by smallest row index.

package lp

import (
	"fmt"
	"math"
)

// phase outcome codes returned by runPhase.
const (
	phaseOptimal = iota
	phaseUnbounded
	phaseBudget
)

// engine carries the dense tableau and pivot-rule state.
type engine struct {
	// Tableau geometry: nStruct structural, nSlack slack, nArt artificial
	// columns, in that order. artStart = nStruct + nSlack.
	m        int // row count
	nCols    int
	artStart int

	tab   []float64 // m × nCols, row-major
	rhs   []float64 // length m, kept ≥ 0 by the ratio test
	basis []int     // basis[i] = column basic in row i

	objRow []float64 // z_j − c_j for the current phase
	objVal float64   // c_B · rhs for the current phase

	// Policy and budgets.
	eps         float64
	maxPivots   int
	pivots      int
	degenLimit  int
	degenStreak int
	bland       bool
	artFrozen   bool // phase 1 done: artificial columns may never re-enter
}

// Solve runs the two-phase simplex on the continuous relaxation of m.
//
// Contract:
//   - m is validated (ErrBadModel on shape conflicts) and never mutated.
//   - Kind tags are ignored; package milp layers integrality on top.
//   - Result.Status tags the outcome; X/Objective/Slack are populated only
//     for Optimal.
//
// Errors: ErrBadModel, ErrBadOptions, ErrPivotLimit.
// Complexity: O(m·n) per pivot, at most MaxPivots pivots.
func Solve(m Model, opts Options) (Result, error) {
	// Stage 1: Validate model and options.
	if err := validateModel(m); err != nil {
		return Result{}, err
	}
	opts, err := opts.normalized()
	if err != nil {
		return Result{}, err
	}

	// Stage 2: Standard-form rewrite and tableau construction.
	sf := toStandard(m)
	e := newEngine(sf, opts)

	// Stage 3: Phase 1 — find a feasible basis if artificials exist.
	if e.nCols > e.artStart {
		switch e.runPhase(e.phase1Costs()) {
		case phaseBudget:
			return Result{}, fmt.Errorf("Solve: phase 1: %w", ErrPivotLimit)
		case phaseUnbounded:
			// The auxiliary objective is bounded above by zero, so this
			// outcome is unreachable; classify as infeasible rather than
			// guess at a numeric answer.
			return Result{Status: Infeasible}, nil
		}
		if e.objVal < -e.eps {
			return Result{Status: Infeasible}, nil
		}
		e.retireArtificials()
		e.artFrozen = true
	}

	// Stage 4: Phase 2 — optimize the true objective.
	switch e.runPhase(e.phase2Costs(sf)) {
	case phaseBudget:
		return Result{}, fmt.Errorf("Solve: phase 2: %w", ErrPivotLimit)
	case phaseUnbounded:
		return Result{Status: Unbounded}, nil
	}

	// Stage 5: Extract the assignment, objective and slack.
	return e.extract(m, sf), nil
}

// newEngine builds the initial tableau: slack columns for ≤ rows, row
// negation for negative right-hand sides, artificial columns wherever no
// slack survives as a ready basic column.
func newEngine(sf *stdForm, opts Options) *engine {
	var (
		mRows    = len(sf.rows)
		nSlack   = 0
		needsArt = make([]bool, mRows)
		slackOf  = make([]int, mRows) // slack column per ≤ row, -1 otherwise
		i, j     int
	)
	// Pass 1: count slacks and decide which rows need artificials.
	for i = 0; i < mRows; i++ {
		slackOf[i] = -1
		if !sf.isEq[i] {
			slackOf[i] = sf.nStruct + nSlack
			nSlack++
		}
		// A ≤ row with non-negative rhs keeps its +1 slack as basic;
		// everything else (negated ≤, equalities) needs an artificial.
		needsArt[i] = sf.isEq[i] || sf.rhs[i] < 0
	}
	var nArt int
	for i = 0; i < mRows; i++ {
		if needsArt[i] {
			nArt++
		}
	}

	e := &engine{
		m:          mRows,
		artStart:   sf.nStruct + nSlack,
		nCols:      sf.nStruct + nSlack + nArt,
		rhs:        make([]float64, mRows),
		basis:      make([]int, mRows),
		eps:        opts.Eps,
		maxPivots:  opts.MaxPivots,
		degenLimit: opts.DegenerateLimit,
	}
	e.tab = make([]float64, e.m*e.nCols)
	e.objRow = make([]float64, e.nCols)

	// Pass 2: fill rows, negating where the rhs is negative, and assign
	// the initial basis.
	var (
		nextArt = e.artStart
		sign    float64
	)
	for i = 0; i < mRows; i++ {
		sign = 1
		if sf.rhs[i] < 0 {
			sign = -1
		}
		for j = 0; j < sf.nStruct; j++ {
			e.tab[i*e.nCols+j] = sign * sf.rows[i][j]
		}
		if slackOf[i] >= 0 {
			e.tab[i*e.nCols+slackOf[i]] = sign // +1 slack, −1 surplus
		}
		e.rhs[i] = sign * sf.rhs[i]
		if needsArt[i] {
			e.tab[i*e.nCols+nextArt] = 1
			e.basis[i] = nextArt
			nextArt++
		} else {
			e.basis[i] = slackOf[i]
		}
	}

	return e
}

// phase1Costs is the auxiliary objective: maximize −Σ artificials.
func (e *engine) phase1Costs() []float64 {
	c := make([]float64, e.nCols)
	for j := e.artStart; j < e.nCols; j++ {
		c[j] = -1
	}

	return c
}

// phase2Costs pads the structural objective with zero slack costs.
// Artificial columns stay at zero cost and are banned from entering.
func (e *engine) phase2Costs(sf *stdForm) []float64 {
	c := make([]float64, e.nCols)
	copy(c, sf.c)

	return c
}

// retireArtificials pivots basic artificials out of the basis where a
// structural or slack column is available; rows that offer none are
// redundant and keep their artificial at value zero (the column is banned
// from ever re-entering, so it stays at zero forever).
func (e *engine) retireArtificials() {
	var i, j int
	for i = 0; i < e.m; i++ {
		if e.basis[i] < e.artStart {
			continue
		}
		for j = 0; j < e.artStart; j++ {
			if math.Abs(e.tab[i*e.nCols+j]) > e.eps {
				e.pivot(i, j)
				break
			}
		}
	}
}

// runPhase resets the objective row for the given costs and pivots to a
// terminal phase outcome.
func (e *engine) runPhase(costs []float64) int {
	// Rebuild objRow = z_j − c_j and objVal = c_B·rhs for this phase.
	var (
		i, j int
		cb   float64
	)
	for j = 0; j < e.nCols; j++ {
		e.objRow[j] = -costs[j]
	}
	e.objVal = 0
	for i = 0; i < e.m; i++ {
		cb = costs[e.basis[i]]
		if cb == 0 {
			continue
		}
		for j = 0; j < e.nCols; j++ {
			e.objRow[j] += cb * e.tab[i*e.nCols+j]
		}
		e.objVal += cb * e.rhs[i]
	}
	e.degenStreak = 0
	e.bland = false

	// Pivot until terminal.
	var (
		enter, leave int
		before       float64
	)
	for {
		if e.pivots >= e.maxPivots {
			return phaseBudget
		}
		enter = e.selectEntering()
		if enter < 0 {
			return phaseOptimal
		}
		leave = e.selectLeaving(enter)
		if leave < 0 {
			return phaseUnbounded
		}
		before = e.objVal
		e.pivot(leave, enter)
		e.pivots++
		// Anti-cycling: a streak of non-improving pivots flips the
		// entering rule to Bland's, which terminates finitely.
		if e.objVal-before <= e.eps {
			e.degenStreak++
			if e.degenStreak >= e.degenLimit {
				e.bland = true
			}
		} else {
			e.degenStreak = 0
		}
	}
}

// selectEntering picks the entering column: Dantzig (most negative
// reduced cost) or, once the degenerate streak tripped, Bland (smallest
// index with a negative reduced cost). Artificial columns never enter
// once banned — they are banned implicitly by runPhase callers via cost 0
// and the explicit index guard here after phase 1.
func (e *engine) selectEntering() int {
	var (
		best    = -e.eps
		bestCol = -1
		j       int
	)
	for j = 0; j < e.nCols; j++ {
		if j >= e.artStart && e.bannedArtificials() {
			break // artificial block excluded in phase 2
		}
		if e.objRow[j] < -e.eps {
			if e.bland {
				return j // first improving index wins under Bland
			}
			if e.objRow[j] < best {
				best = e.objRow[j]
				bestCol = j
			}
		}
	}

	return bestCol
}

// bannedArtificials reports whether the artificial block is frozen.
// Once phase 1 reached feasibility, artificials sit at zero and may never
// re-enter the basis.
func (e *engine) bannedArtificials() bool { return e.artFrozen }

// selectLeaving runs the minimum-ratio test on column enter; ties keep
// the smallest row index. Returns -1 when no row bounds the increase.
func (e *engine) selectLeaving(enter int) int {
	var (
		bestRatio = math.Inf(1)
		bestRow   = -1
		a, ratio  float64
		i         int
	)
	for i = 0; i < e.m; i++ {
		a = e.tab[i*e.nCols+enter]
		if a <= e.eps {
			continue
		}
		ratio = e.rhs[i] / a
		if ratio < bestRatio {
			bestRatio = ratio
			bestRow = i
		}
	}

	return bestRow
}

// pivot makes column pc basic in row pr: normalize the pivot row,
// eliminate pc from every other row and from the objective row.
// Complexity: O(m·n).
func (e *engine) pivot(pr, pc int) {
	var (
		piv = e.tab[pr*e.nCols+pc]
		f   float64
		i   int
		j   int
	)
	// Normalize the pivot row.
	for j = 0; j < e.nCols; j++ {
		e.tab[pr*e.nCols+j] /= piv
	}
	e.rhs[pr] /= piv

	// Eliminate from the other rows.
	for i = 0; i < e.m; i++ {
		if i == pr {
			continue
		}
		f = e.tab[i*e.nCols+pc]
		if f == 0 {
			continue
		}
		for j = 0; j < e.nCols; j++ {
			e.tab[i*e.nCols+j] -= f * e.tab[pr*e.nCols+j]
		}
		e.rhs[i] -= f * e.rhs[pr]
	}

	// The objective row transforms like any other row.
	f = e.objRow[pc]
	if f != 0 {
		for j = 0; j < e.nCols; j++ {
			e.objRow[j] -= f * e.tab[pr*e.nCols+j]
		}
		e.objVal -= f * e.rhs[pr]
	}

	e.basis[pr] = pc
}

// extract reads the structural assignment off the basis, undoes the
// standard-form substitutions and computes objective and slack from the
// original model data (which keeps sense handling trivial).
func (e *engine) extract(m Model, sf *stdForm) Result {
	// Structural values: basic variables carry their row's rhs.
	y := make([]float64, sf.nStruct)
	for i := 0; i < e.m; i++ {
		if e.basis[i] < sf.nStruct {
			v := e.rhs[i]
			if v < 0 && v > -e.eps {
				v = 0 // numeric dust from pivoting
			}
			y[e.basis[i]] = v
		}
	}
	x := sf.recoverX(y, m.NumVars())

	// Objective and slack straight from the original data.
	var obj float64
	for j := range m.C {
		obj += m.C[j] * x[j]
	}
	slack := make([]float64, len(m.BUb))
	for i := range m.AUb {
		s := m.BUb[i]
		for j := range m.AUb[i] {
			s -= m.AUb[i][j] * x[j]
		}
		slack[i] = s
	}

	return Result{Status: Optimal, X: x, Objective: obj, Slack: slack}
}
