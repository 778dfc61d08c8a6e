// SPDX-License-Identifier: MIT
// Package matrix: LU factorization with partial pivoting and the solvers
// built on it (Det, Inverse, Solve).
//
// Determinism:
//   - Pivot choice is the FIRST row with the largest |a[i][k]| (strict >),
//     so ties resolve toward the smaller row index.
//   - Fixed loop orders everywhere: identical inputs give identical bits.

package matrix

import (
	"errors"
	"math"
)

// luWork holds the packed factorization: strict lower part of data is L
// (unit diagonal implied), upper part including the diagonal is U.
type luWork struct {
	n    int
	data []float64
	perm []int
	sign float64
}

// factorize runs Gaussian elimination with partial pivoting on a copy of m.
//
// Implementation:
//   - Stage 1: validate (non-nil, square, finite unless disabled); copy data.
//   - Stage 2: for each column k pick the pivot row, swap, and eliminate
//     below the diagonal, storing multipliers in place.
//
// Returns:
//   - *luWork on success.
//   - ErrSingular (unwrapped) when a column has no pivot above opt.pivotTol.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func factorize(m Matrix, o Options) (*luWork, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}
	md, err := toDense(m)
	if err != nil {
		return nil, err
	}
	if o.validateNaNInf {
		if err = ValidateFinite(md); err != nil {
			return nil, err
		}
	}

	var (
		n          = md.r
		a          = append([]float64(nil), md.data...)
		perm       = make([]int, n)
		sign       = 1.0
		i, j, k, p int // loop iterators and pivot row
		maxAbs, v  float64
		f, pivot   float64
	)
	for i = 0; i < n; i++ {
		perm[i] = i
	}

	for k = 0; k < n; k++ {
		// Pivot search over rows k..n-1 of column k.
		p, maxAbs = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(a[i*n+k]); v > maxAbs {
				p, maxAbs = i, v
			}
		}
		if maxAbs <= o.pivotTol {
			return nil, ErrSingular
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			sign = -sign
		}

		pivot = a[k*n+k]
		for i = k + 1; i < n; i++ {
			f = a[i*n+k] / pivot
			a[i*n+k] = f
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
	}

	return &luWork{n: n, data: a, perm: perm, sign: sign}, nil
}

// det multiplies the U diagonal by the permutation sign.
func (w *luWork) det() float64 {
	d := w.sign
	for i := 0; i < w.n; i++ {
		d *= w.data[i*w.n+i]
	}

	return d
}

// solveInto solves A·x = b into x using the packed factors; x and b may not alias.
//
// Implementation:
//   - Forward: L·y = P·b (top-down, unit diagonal).
//   - Backward: U·x = y (bottom-up).
func (w *luWork) solveInto(x, b []float64) {
	var (
		n    = w.n
		i, k int // loop iterators
		sum  float64
	)
	for i = 0; i < n; i++ {
		sum = b[w.perm[i]]
		for k = 0; k < i; k++ {
			sum -= w.data[i*n+k] * x[k]
		}
		x[i] = sum
	}
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= w.data[i*n+k] * x[k]
		}
		x[i] = sum / w.data[i*n+i]
	}
}

// LU computes the pivoted factorization PA = LU.
//
// Inputs:
//   - m: square Matrix (n×n).
//   - opts: WithPivotTolerance, WithValidateNaNInf / WithNoValidateNaNInf.
//
// Returns:
//   - *LUResult with freshly allocated L, U, Perm and Sign.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrSingular (wrapped with "LU").
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix, opts ...Option) (*LUResult, error) {
	w, err := factorize(m, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	n := w.n
	L, _ := Identity(n)
	U, _ := NewDense(n, n)

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j < i {
				L.data[i*n+j] = w.data[i*n+j]
			} else {
				U.data[i*n+j] = w.data[i*n+j]
			}
		}
	}

	return &LUResult{L: L, U: U, Perm: append([]int(nil), w.perm...), Sign: w.sign}, nil
}

// Det returns det(m). A singular matrix yields 0 with a nil error.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (wrapped with "Det").
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Det(m Matrix, opts ...Option) (float64, error) {
	w, err := factorize(m, gatherOptions(opts...))
	if errors.Is(err, ErrSingular) {
		return 0, nil
	}
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return w.det(), nil
}

// Inverse computes m⁻¹ by solving A·X = I column by column on one LU.
//
// Implementation:
//   - Stage 1: factorize with partial pivoting.
//   - Stage 2: for each basis column e_col, forward/back substitute and write
//     the solution into column col of the result.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrSingular (wrapped with "Inverse").
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - If you only need A⁻¹·b, call Solve instead; it is n times cheaper.
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	w, err := factorize(m, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := w.n
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i int // loop iterators
		e      = make([]float64, n)
		x      = make([]float64, n)
	)
	for col = 0; col < n; col++ {
		e[col] = 1
		w.solveInto(x, e)
		e[col] = 0
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// Solve returns x with a·x = b.
//
// Errors:
//   - ErrNilMatrix (nil a or b), ErrNonSquare, ErrDimensionMismatch
//     (len(b) != n), ErrNaNInf, ErrSingular (wrapped with "Solve").
//
// Complexity:
//   - Time O(n³) for the factorization + O(n²) for the substitutions.
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	w, err := factorize(a, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x := make([]float64, w.n)
	w.solveInto(x, b)

	return x, nil
}
