// SPDX-License-Identifier: MIT
// Package matrix: element-wise and product kernels on any Matrix.
//
// Notes:
//   - Non-*Dense inputs are copied into a Dense once (toDense) so the loops
//     below always run on flat row-major slices.
//   - All kernels allocate a fresh result; inputs are read-only.

package matrix

// ZeroSum is the initial value for dot-product style accumulations.
const ZeroSum = 0.0

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: validate non-nil and equal shape.
//   - Stage 2: single flat loop over r*c entries.
//
// Complexity: O(r*c) time and memory.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	ad, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	bd, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := ad.clone()
	for i := range out.data {
		out.data[i] += sign * bd.data[i]
	}

	return out, nil
}

// Add returns a+b. Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a-b. Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha*m.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	md, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := md.clone()
	for i := range out.data {
		out.data[i] *= alpha
	}

	return out, nil
}

// Mul returns the product a·b.
//
// Implementation:
//   - Stage 1: validate a.Cols == b.Rows.
//   - Stage 2: i→k→j loop order so the inner loop streams rows of b and out.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r·n·c), Space O(r·c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	ad, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := NewDense(ad.r, bd.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int // loop iterators
		aik     float64
	)
	for i = 0; i < ad.r; i++ {
		for k = 0; k < ad.c; k++ {
			aik = ad.data[i*ad.c+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < bd.c; j++ {
				out.data[i*out.c+j] += aik * bd.data[k*bd.c+j]
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	md, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewDense(md.c, md.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < md.r; i++ {
		for j = 0; j < md.c; j++ {
			out.data[j*out.c+i] = md.data[i*md.c+j]
		}
	}

	return out, nil
}

// MatVec returns m·x for a column vector x of length m.Cols().
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	md, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	var (
		i, j int // loop iterators
		sum  float64
		out  = make([]float64, md.r)
	)
	for i = 0; i < md.r; i++ {
		sum = ZeroSum
		for j = 0; j < md.c; j++ {
			sum += md.data[i*md.c+j] * x[j]
		}
		out[i] = sum
	}

	return out, nil
}
