// Package lp: model validation shared by Solve and package milp.
//
// Deterministic, side-effect free checks; only sentinel errors from
// types.go, no panics on user input.

package lp

import (
	"fmt"
	"math"
)

// validateModel verifies the shape invariants documented on Model.
// Complexity: O(rows·n).
func validateModel(m Model) error {
	// Stage 1: Objective defines the variable count.
	n := len(m.C)
	if n == 0 {
		return fmt.Errorf("validateModel: empty objective: %w", ErrBadModel)
	}
	if m.Sense != Maximize && m.Sense != Minimize {
		return fmt.Errorf("validateModel: unknown sense %d: %w", m.Sense, ErrBadModel)
	}
	if !allFinite(m.C) {
		return fmt.Errorf("validateModel: non-finite objective coefficient: %w", ErrBadModel)
	}

	// Stage 2: Constraint blocks pair rows with rhs entries of matching width.
	if err := validateBlock("AUb", m.AUb, m.BUb, n); err != nil {
		return err
	}
	if err := validateBlock("AEq", m.AEq, m.BEq, n); err != nil {
		return err
	}

	// Stage 3: Optional per-variable metadata.
	if m.Bounds != nil {
		if len(m.Bounds) != n {
			return fmt.Errorf("validateModel: %d bounds for %d variables: %w", len(m.Bounds), n, ErrBadModel)
		}
		for j, b := range m.Bounds {
			// NaN bounds and inverted intervals are both nonsense.
			if math.IsNaN(b.Lo) || math.IsNaN(b.Hi) || b.Lo > b.Hi {
				return fmt.Errorf("validateModel: bound %d [%g,%g]: %w", j, b.Lo, b.Hi, ErrBadModel)
			}
		}
	}
	if m.Kinds != nil && len(m.Kinds) != n {
		return fmt.Errorf("validateModel: %d kinds for %d variables: %w", len(m.Kinds), n, ErrBadModel)
	}

	return nil
}

// validateBlock checks one constraint block: row widths and rhs pairing.
func validateBlock(name string, rows [][]float64, rhs []float64, n int) error {
	if len(rows) != len(rhs) {
		return fmt.Errorf("validateModel: %s has %d rows but %d rhs entries: %w", name, len(rows), len(rhs), ErrBadModel)
	}
	for i, row := range rows {
		if len(row) != n {
			return fmt.Errorf("validateModel: %s row %d has %d coefficients for %d variables: %w", name, i, len(row), n, ErrBadModel)
		}
		if !allFinite(row) {
			return fmt.Errorf("validateModel: %s row %d has a non-finite coefficient: %w", name, i, ErrBadModel)
		}
	}
	if !allFinite(rhs) {
		return fmt.Errorf("validateModel: %s rhs has a non-finite entry: %w", name, ErrBadModel)
	}

	return nil
}

// allFinite reports whether every entry is a finite float64.
func allFinite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
