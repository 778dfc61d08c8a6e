// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lumen/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	a := MustDense(t, 2, 2, 1, 2, 3, 4)
	b := MustDense(t, 2, 2, 10, 20, 30, 40)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	RequireAllClose(t, MustDense(t, 2, 2, 11, 22, 33, 44), sum, 0)

	diff, err := matrix.Sub(b, hide{a})
	require.NoError(t, err, "non-Dense operand must work through the At fallback")
	RequireAllClose(t, MustDense(t, 2, 2, 9, 18, 27, 36), diff, 0)

	_, err = matrix.Add(a, MustDense(t, 1, 2, 1, 2))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Add(nil, b)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScaleTranspose(t *testing.T) {
	a := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)

	s, err := matrix.Scale(a, -2)
	require.NoError(t, err)
	RequireAllClose(t, MustDense(t, 2, 3, -2, -4, -6, -8, -10, -12), s, 0)

	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	RequireAllClose(t, MustDense(t, 3, 2, 1, 4, 2, 5, 3, 6), tr, 0)
}

func TestMul(t *testing.T) {
	a := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := MustDense(t, 3, 2, 7, 8, 9, 10, 11, 12)

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	RequireAllClose(t, MustDense(t, 2, 2, 58, 64, 139, 154), p, 0)

	_, err = matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMatVec(t *testing.T) {
	a := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)

	y, err := matrix.MatVec(a, []float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	_, err = matrix.MatVec(a, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MatVec(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
