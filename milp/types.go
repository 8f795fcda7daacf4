// Package milp: options, result type and sentinel errors.

package milp

import (
	"errors"
	"time"

	"github.com/katalvlaran/linopt/lp"
	"github.com/katalvlaran/linopt/matrix"
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultIntTol is the distance from the nearest whole number below
	// which a variable counts as integral.
	DefaultIntTol = 1e-6

	// DefaultMaxNodes caps the number of LP relaxations solved.
	DefaultMaxNodes = 100_000
)

// ErrBadOptions is returned for nonsensical Options values.
var ErrBadOptions = errors.New("milp: invalid options")

// ErrNodeLimit is returned when the node budget is exhausted before the
// frontier drains.
var ErrNodeLimit = errors.New("milp: node limit exceeded")

// ErrTimeLimit is returned when a positive time budget is exceeded.
var ErrTimeLimit = errors.New("milp: time limit exceeded")

// Options configures the branch-and-bound search.
//
// Fields:
//   - IntTol    — integrality tolerance (DefaultIntTol when 0).
//   - MaxNodes  — LP relaxation budget (DefaultMaxNodes when 0).
//   - TimeLimit — soft deadline, checked once per expanded node; 0 means
//     no limit.
//   - LP        — options forwarded to every relaxation solve; the zero
//     value takes the package lp defaults.
type Options struct {
	IntTol    float64
	MaxNodes  int
	TimeLimit time.Duration
	LP        lp.Options
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		IntTol:   DefaultIntTol,
		MaxNodes: DefaultMaxNodes,
		LP:       lp.DefaultOptions(),
	}
}

// normalized returns opts with zero fields replaced by defaults, or
// ErrBadOptions for negative values. LP sub-options are validated by the
// relaxation solver itself.
func (o Options) normalized() (Options, error) {
	if o.IntTol < 0 || o.MaxNodes < 0 || o.TimeLimit < 0 {
		return Options{}, ErrBadOptions
	}
	if o.IntTol == 0 {
		o.IntTol = DefaultIntTol
	}
	if o.MaxNodes == 0 {
		o.MaxNodes = DefaultMaxNodes
	}

	return o, nil
}

// Result is the outcome of a branch-and-bound solve. X and Objective are
// populated only when Status == Optimal; integer variables in X are exact
// whole numbers.
//
// Bound is the root relaxation objective, a proven bound on the integer
// optimum (upper for Maximize, lower for Minimize). Nodes counts the LP
// relaxations solved.
type Result struct {
	Status    lp.Status
	X         matrix.Vector
	Objective float64
	Bound     float64
	Nodes     int
}
