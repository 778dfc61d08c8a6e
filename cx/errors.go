// SPDX-License-Identifier: MIT
// Package cx: sentinel error set.
// Numeric degeneracies (zero divisor, zero-length normalize, singular inverse)
// are NOT errors in this package; they produce zero values. Sentinels below are
// returned only by the explicitly checked entry points (InverseChecked and the
// matrix.Dense bridge), and tests match them via errors.Is.

package cx

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular is returned by InverseChecked when the determinant is exactly zero.
	ErrSingular = errors.New("cx: singular matrix")

	// ErrLength indicates a slice whose length does not match the target type.
	ErrLength = errors.New("cx: length mismatch")
)

// Operation tags for wrapped errors.
const (
	opInverse2  = "Mat2.InverseChecked"
	opInverse3  = "Mat3.InverseChecked"
	opInverse4  = "Mat4.InverseChecked"
	opFromDense = "FromDense"
)

// cxErrorf wraps err with an operation tag, keeping errors.Is intact.
func cxErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
