// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the factorization kernels
// (LU, Det, Inverse, Solve). This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the largest |pivot| still treated as zero.
	// 0 means only an exactly-zero column is singular, matching the cx
	// closed-form inverses.
	DefaultPivotTolerance = 0.0

	// DefaultValidateNaNInf rejects NaN/±Inf inputs before factorizing.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	pivotTol       float64 // >= 0; DefaultPivotTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithPivotTolerance treats pivots with |p| <= tol as zero (ErrSingular).
//
// Inputs:
//   - tol: non-negative finite tolerance.
//
// Errors:
//   - Panics with a stable message when tol is NaN, ±Inf or negative.
//
// Notes:
//   - Raising tol turns near-singular systems into explicit ErrSingular
//     instead of huge, noise-dominated inverses.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithValidateNaNInf enables the finite-input scan (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf skips the finite-input scan; NaN then propagates into the result.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user setters on top of the defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		pivotTol:       DefaultPivotTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
