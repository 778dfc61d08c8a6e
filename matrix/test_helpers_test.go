// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Small, deterministic fixtures for kernels and factorizations.
//   - Keep all data finite and well-formed unless a test targets the numeric policy.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lumen/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the comparison tolerance for float64 kernels on small matrices.
const tol = 1e-9

// hide wraps any Matrix to hide its concrete type and force the non-*Dense path.
type hide struct{ matrix.Matrix }

// MustDense builds an r×c Dense from row-major values or fails the test.
func MustDense(t testing.TB, r, c int, values ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, values)
	require.NoError(t, err, "NewDenseFrom(%d,%d)", r, c)

	return m
}

// MustIdentity builds the n×n identity or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.Identity(n)
	require.NoError(t, err)

	return m
}

// RandomDense fills an n×n Dense with uniform values in [-1, 1) from a seeded source,
// then adds n to the diagonal so the result is comfortably non-singular.
func RandomDense(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, n*n)
	for i := range values {
		values[i] = 2*rng.Float64() - 1
	}
	for i := 0; i < n; i++ {
		values[i*n+i] += float64(n)
	}

	return MustDense(t, n, n, values...)
}

// RequireAllClose asserts same shape and |a-b| ≤ eps element-wise.
func RequireAllClose(t testing.TB, want, got matrix.Matrix, eps float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, err := want.At(i, j)
			require.NoError(t, err)
			g, err := got.At(i, j)
			require.NoError(t, err)
			require.LessOrEqualf(t, math.Abs(w-g), eps, "mismatch at (%d,%d): want %g got %g", i, j, w, g)
		}
	}
}

// ExpectPanic runs f and fails the test unless it panics with msg.
func ExpectPanic(t *testing.T, msg string, f func()) {
	t.Helper()
	require.PanicsWithValue(t, msg, f)
}
