// Package lp: rewrite of a general Model into the internal standard form
//
//	maximize c·y  subject to  R·y {≤,=} r,  y ≥ 0
//
// The substitutions are the classical ones (cf. general→standard LP
// conversion): lower bounds are shifted out (x = lo + y), upper-only
// bounds are mirrored (x = hi − y), free variables are split into a
// difference of two non-negative columns (x = y⁺ − y⁻), and finite
// two-sided bounds become an extra ≤ row on the shifted column. The
// varMap records how to undo each substitution when extracting x.

package lp

import "math"

// substitution kinds recorded per original variable.
const (
	vmShift  = iota // x = off + y          (off = Lo, possibly 0)
	vmMirror        // x = off − y          (off = Hi; Lo = −Inf)
	vmSplit         // x = y − y′           (free variable, two columns)
)

// varMap describes how original variable j was rewritten.
type varMap struct {
	kind   int     // vmShift, vmMirror or vmSplit
	col    int     // structural column of y (or y⁺ for vmSplit)
	colNeg int     // structural column of y⁻ (vmSplit only)
	off    float64 // shift or mirror offset
}

// stdForm is the standard-form rewrite of a Model. All rows range over the
// structural columns only; slack and artificial columns are appended by
// the simplex engine.
type stdForm struct {
	nStruct int       // structural column count after substitution
	maps    []varMap  // one entry per original variable
	c       []float64 // maximize objective over structural columns
	objOff  float64   // constant objective contribution of the offsets

	rows [][]float64 // constraint rows over structural columns
	rhs  []float64   // right-hand sides (may be negative at this point)
	isEq []bool      // row i is an equality (true) or ≤ (false)
}

// toStandard rewrites a validated model. The caller guarantees shape
// invariants; this function never fails.
// Complexity: O((rows+n)·n).
func toStandard(m Model) *stdForm {
	var (
		n  = m.NumVars()
		sf = &stdForm{maps: make([]varMap, n)}
		j  int
		b  Bound
	)

	// Stage 1: Assign structural columns per variable.
	for j = 0; j < n; j++ {
		b = m.BoundAt(j)
		switch {
		case math.IsInf(b.Lo, -1) && math.IsInf(b.Hi, 1):
			// Free variable: split into y − y′.
			sf.maps[j] = varMap{kind: vmSplit, col: sf.nStruct, colNeg: sf.nStruct + 1}
			sf.nStruct += 2
		case math.IsInf(b.Lo, -1):
			// Upper bound only: mirror around Hi.
			sf.maps[j] = varMap{kind: vmMirror, col: sf.nStruct, off: b.Hi}
			sf.nStruct++
		default:
			// Finite lower bound: shift it to zero.
			sf.maps[j] = varMap{kind: vmShift, col: sf.nStruct, off: b.Lo}
			sf.nStruct++
		}
	}

	// Stage 2: Objective over structural columns (internally maximize).
	var (
		sign = 1.0
		cj   float64
	)
	if m.Sense == Minimize {
		sign = -1.0
	}
	sf.c = make([]float64, sf.nStruct)
	for j = 0; j < n; j++ {
		cj = sign * m.C[j]
		switch vm := sf.maps[j]; vm.kind {
		case vmSplit:
			sf.c[vm.col] = cj
			sf.c[vm.colNeg] = -cj
		case vmMirror:
			sf.c[vm.col] = -cj
			sf.objOff += cj * vm.off
		default: // vmShift
			sf.c[vm.col] = cj
			sf.objOff += cj * vm.off
		}
	}

	// Stage 3: Constraint rows — inequalities first, then upper-bound rows
	// introduced by two-sided bounds, then equalities.
	for i := range m.AUb {
		sf.appendRow(m.AUb[i], m.BUb[i], false)
	}
	for j = 0; j < n; j++ {
		b = m.BoundAt(j)
		vm := sf.maps[j]
		if vm.kind == vmShift && !math.IsInf(b.Hi, 1) {
			// lo ≤ x ≤ hi became 0 ≤ y with the extra row y ≤ hi − lo.
			row := make([]float64, sf.nStruct)
			row[vm.col] = 1
			sf.rows = append(sf.rows, row)
			sf.rhs = append(sf.rhs, b.Hi-b.Lo)
			sf.isEq = append(sf.isEq, false)
		}
	}
	for i := range m.AEq {
		sf.appendRow(m.AEq[i], m.BEq[i], true)
	}

	return sf
}

// appendRow rewrites one original constraint row through the variable
// substitutions and appends it.
func (sf *stdForm) appendRow(orig []float64, rhs float64, eq bool) {
	var (
		row = make([]float64, sf.nStruct)
		a   float64
	)
	for j, vm := range sf.maps {
		a = orig[j]
		if a == 0 {
			continue
		}
		switch vm.kind {
		case vmSplit:
			row[vm.col] = a
			row[vm.colNeg] = -a
		case vmMirror:
			// a·x = a·off − a·y moves a·off to the rhs.
			row[vm.col] = -a
			rhs -= a * vm.off
		default: // vmShift
			row[vm.col] = a
			rhs -= a * vm.off
		}
	}
	sf.rows = append(sf.rows, row)
	sf.rhs = append(sf.rhs, rhs)
	sf.isEq = append(sf.isEq, eq)
}

// recoverX maps a structural assignment y back to the original variables.
func (sf *stdForm) recoverX(y []float64, n int) []float64 {
	x := make([]float64, n)
	for j, vm := range sf.maps {
		switch vm.kind {
		case vmSplit:
			x[j] = y[vm.col] - y[vm.colNeg]
		case vmMirror:
			x[j] = vm.off - y[vm.col]
		default: // vmShift
			x[j] = vm.off + y[vm.col]
		}
	}

	return x
}
