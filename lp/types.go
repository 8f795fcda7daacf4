// Package lp: model types, options, statuses and sentinel errors.

package lp

import (
	"errors"
	"math"

	"github.com/katalvlaran/linopt/matrix"
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultEps is the tolerance for reduced costs, ratio-test pivots and
	// feasibility of the Phase-1 objective.
	DefaultEps = 1e-9

	// DefaultMaxPivots caps total simplex pivots across both phases.
	DefaultMaxPivots = 10000

	// DefaultDegenerateLimit is the length of a non-improving pivot streak
	// after which the entering rule switches from Dantzig to Bland
	// (anti-cycling fallback).
	DefaultDegenerateLimit = 32
)

// ErrBadModel is returned when a Model is structurally invalid: empty
// objective, ragged constraint rows, mismatched rhs lengths, Lo > Hi
// bounds, or non-finite coefficients.
var ErrBadModel = errors.New("lp: invalid model")

// ErrBadOptions is returned for nonsensical Options values.
var ErrBadOptions = errors.New("lp: invalid options")

// ErrPivotLimit is returned when the pivot budget is exhausted before the
// solver reaches a terminal status.
var ErrPivotLimit = errors.New("lp: pivot limit exceeded")

// Sense is the optimization direction of a Model.
type Sense int

const (
	// Maximize the objective (the default zero value).
	Maximize Sense = iota

	// Minimize the objective.
	Minimize
)

// VarKind tags a variable for package milp; package lp always relaxes.
type VarKind int

const (
	// Continuous variables take any value within their bounds.
	Continuous VarKind = iota

	// Integer variables must land on whole numbers within their bounds.
	Integer

	// Binary variables must land on {0, 1}.
	Binary
)

// Bound is a closed interval for one variable. Lo may be math.Inf(-1) and
// Hi may be math.Inf(1); the all-variables default is [0, +Inf).
type Bound struct {
	Lo, Hi float64
}

// DefaultBound returns the conventional LP bound [0, +Inf).
func DefaultBound() Bound {
	return Bound{Lo: 0, Hi: math.Inf(1)}
}

// Model is a linear program. Built once, solved many times: solvers never
// mutate it and deep-copy what they need before pivoting begins.
//
// Shape invariants (enforced by Solve):
//   - len(C) ≥ 1 defines the variable count n.
//   - Every AUb row has length n and pairs with one BUb entry (A·x ≤ b).
//   - Every AEq row has length n and pairs with one BEq entry (A·x = b).
//   - Bounds is nil (all [0,+Inf)) or has length n with Lo ≤ Hi.
//   - Kinds is nil (all Continuous) or has length n.
type Model struct {
	Sense  Sense
	C      []float64
	AUb    [][]float64
	BUb    []float64
	AEq    [][]float64
	BEq    []float64
	Bounds []Bound
	Kinds  []VarKind
}

// NumVars returns the variable count defined by the objective.
func (m Model) NumVars() int { return len(m.C) }

// Clone returns a deep copy of the model; package milp branches by cloning
// and tightening bounds.
func (m Model) Clone() Model {
	out := Model{Sense: m.Sense}
	out.C = append([]float64(nil), m.C...)
	out.BUb = append([]float64(nil), m.BUb...)
	out.BEq = append([]float64(nil), m.BEq...)
	out.AUb = cloneRows(m.AUb)
	out.AEq = cloneRows(m.AEq)
	if m.Bounds != nil {
		out.Bounds = append([]Bound(nil), m.Bounds...)
	}
	if m.Kinds != nil {
		out.Kinds = append([]VarKind(nil), m.Kinds...)
	}

	return out
}

// BoundAt returns the effective bound of variable j (the default when
// Bounds is nil).
func (m Model) BoundAt(j int) Bound {
	if m.Bounds == nil {
		return DefaultBound()
	}

	return m.Bounds[j]
}

// KindAt returns the effective kind of variable j (Continuous when Kinds
// is nil).
func (m Model) KindAt(j int) VarKind {
	if m.Kinds == nil {
		return Continuous
	}

	return m.Kinds[j]
}

func cloneRows(rows [][]float64) [][]float64 {
	if rows == nil {
		return nil
	}
	out := make([][]float64, len(rows))
	for i := range rows {
		out[i] = append([]float64(nil), rows[i]...)
	}

	return out
}

// Status tags the outcome of an LP or MILP solve.
type Status int

const (
	// Optimal: an optimal assignment was found.
	Optimal Status = iota

	// Infeasible: no point satisfies all constraints.
	Infeasible

	// Unbounded: the objective improves without limit.
	Unbounded
)

// String returns the canonical status name.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "Optimal"
	case Infeasible:
		return "Infeasible"
	case Unbounded:
		return "Unbounded"
	default:
		return "Unknown"
	}
}

// Result is the outcome of a solve. X and Slack are populated only when
// Status == Optimal; Slack[i] is the headroom of inequality row i,
// BUb[i] − AUb[i]·x ≥ 0.
type Result struct {
	Status    Status
	X         matrix.Vector
	Objective float64
	Slack     matrix.Vector
}

// Options configures the simplex solver.
//
// Fields:
//   - Eps             — numeric tolerance (DefaultEps when 0).
//   - MaxPivots       — total pivot budget (DefaultMaxPivots when 0).
//   - DegenerateLimit — non-improving streak before Bland's rule
//     (DefaultDegenerateLimit when 0).
type Options struct {
	Eps             float64
	MaxPivots       int
	DegenerateLimit int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Eps:             DefaultEps,
		MaxPivots:       DefaultMaxPivots,
		DegenerateLimit: DefaultDegenerateLimit,
	}
}

// normalized returns opts with zero fields replaced by defaults, or
// ErrBadOptions for negative values.
func (o Options) normalized() (Options, error) {
	if o.Eps < 0 || o.MaxPivots < 0 || o.DegenerateLimit < 0 {
		return Options{}, ErrBadOptions
	}
	if o.Eps == 0 {
		o.Eps = DefaultEps
	}
	if o.MaxPivots == 0 {
		o.MaxPivots = DefaultMaxPivots
	}
	if o.DegenerateLimit == 0 {
		o.DegenerateLimit = DefaultDegenerateLimit
	}

	return o, nil
}
