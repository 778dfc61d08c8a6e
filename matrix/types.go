// SPDX-License-Identifier: MIT

package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}

// LUResult is a pivoted factorization PA = LU of a square matrix A.
//
// Fields:
//   - L    — unit lower-triangular factor (n×n).
//   - U    — upper-triangular factor (n×n).
//   - Perm — row permutation: row i of PA is row Perm[i] of A.
//   - Sign — +1 or -1, the parity of Perm (det(P)).
type LUResult struct {
	L    *Dense
	U    *Dense
	Perm []int
	Sign float64
}
