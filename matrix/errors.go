// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All algorithms return these sentinels (possibly wrapped with an operation
// tag via matrixErrorf) and tests check them with errors.Is. Panics are
// reserved for programmer errors in option constructors.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0)
	// or a backing slice does not hold rows*cols values.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix or vector argument was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when no pivot larger than the configured
	// tolerance exists in a column during LU elimination.
	ErrSingular = errors.New("matrix: singular matrix")
)

// Operation name constants for unified error wrapping.
const (
	opNewDense  = "NewDense"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opLU        = "LU"
	opDet       = "Det"
	opInverse   = "Inverse"
	opSolve     = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
