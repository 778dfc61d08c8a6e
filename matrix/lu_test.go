// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lumen/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLU_ReconstructsPA(t *testing.T) {
	// a[0][0] == 0 forces a row swap on the first column.
	a := MustDense(t, 3, 3,
		0, 2, 1,
		1, 1, 1,
		4, 3, 2,
	)
	f, err := matrix.LU(a)
	require.NoError(t, err)

	lu, err := matrix.Mul(f.L, f.U)
	require.NoError(t, err)

	// Rebuild PA from the permutation and compare with L·U.
	pa := make([]float64, 0, 9)
	for _, src := range f.Perm {
		for j := 0; j < 3; j++ {
			v, _ := a.At(src, j)
			pa = append(pa, v)
		}
	}
	RequireAllClose(t, MustDense(t, 3, 3, pa...), lu, tol)

	assert.Equal(t, 2, f.Perm[0], "largest |a[i][0]| is in row 2")
	for i := 0; i < 3; i++ {
		v, _ := f.L.At(i, i)
		assert.Equal(t, 1.0, v, "L has a unit diagonal")
		for j := i + 1; j < 3; j++ {
			v, _ = f.L.At(i, j)
			assert.Zero(t, v, "L is lower triangular")
			v, _ = f.U.At(j, i)
			assert.Zero(t, v, "U is upper triangular")
		}
	}
}

func TestDet(t *testing.T) {
	cases := []struct {
		name string
		m    *matrix.Dense
		want float64
	}{
		{"1x1", MustDense(t, 1, 1, -7), -7},
		{"2x2", MustDense(t, 2, 2, 3, 8, 4, 6), -14},
		{"3x3", MustDense(t, 3, 3, 6, 1, 1, 4, -2, 5, 2, 8, 7), -306},
		{"swap", MustDense(t, 2, 2, 0, 1, 1, 0), -1},
		{"singular", MustDense(t, 3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Det(tc.m)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, tol)
		})
	}
}

func TestInverse_RoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 4, 7, 12} {
		a := RandomDense(t, n, int64(n))
		inv, err := matrix.Inverse(a)
		require.NoError(t, err, "n=%d", n)

		prod, err := matrix.Mul(a, inv)
		require.NoError(t, err)
		RequireAllClose(t, MustIdentity(t, n), prod, 1e-9)

		back, err := matrix.Inverse(inv)
		require.NoError(t, err)
		RequireAllClose(t, a, back, 1e-9)
	}
}

func TestInverse_Singular(t *testing.T) {
	_, err := matrix.Inverse(MustDense(t, 2, 2, 1, 2, 2, 4))
	require.ErrorIs(t, err, matrix.ErrSingular)

	// A tiny but non-zero pivot only fails under an explicit tolerance.
	near := MustDense(t, 2, 2, 1, 0, 0, 1e-12)
	_, err = matrix.Inverse(near)
	require.NoError(t, err)
	_, err = matrix.Inverse(near, matrix.WithPivotTolerance(1e-9))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverse_Validation(t *testing.T) {
	_, err := matrix.Inverse(MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Inverse(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.Inverse(typedNil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	bad := MustDense(t, 2, 2, 1, math.NaN(), 0, 1)
	_, err = matrix.Inverse(bad)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.Inverse(bad, matrix.WithNoValidateNaNInf())
	assert.NotErrorIs(t, err, matrix.ErrNaNInf, "validation switched off")
}

func TestSolve(t *testing.T) {
	a := MustDense(t, 3, 3,
		2, 1, -1,
		-3, -1, 2,
		-2, 1, 2,
	)
	x, err := matrix.Solve(a, []float64{8, -11, -3})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 3, -1}, x, tol)

	_, err = matrix.Solve(a, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Solve(hide{a}, []float64{8, -11, -3})
	assert.NoError(t, err)
}

func TestWithPivotTolerance_Panics(t *testing.T) {
	const msg = "matrix: WithPivotTolerance: tol must be finite, non-negative"
	ExpectPanic(t, msg, func() { matrix.WithPivotTolerance(-1) })
	ExpectPanic(t, msg, func() { matrix.WithPivotTolerance(math.Inf(1)) })
	ExpectPanic(t, msg, func() { matrix.WithPivotTolerance(math.NaN()) })
}
