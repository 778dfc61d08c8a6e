// SPDX-License-Identifier: MIT

package spectral_test

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// tol bounds round-off for transforms up to a few thousand points.
const tol = 1e-9

// randomSignal returns n complex samples with parts in [-1, 1).
func randomSignal(n int, seed int64) []complex128 {
	rng := rand.New(rand.NewSource(seed))
	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(2*rng.Float64()-1, 2*rng.Float64()-1)
	}

	return x
}

// requireComplexClose asserts |want[i]-got[i]| ≤ eps for every i.
func requireComplexClose(t testing.TB, want, got []complex128, eps float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.Len(t, got, len(want), msgAndArgs...)
	for i := range want {
		if d := cmplx.Abs(want[i] - got[i]); d > eps {
			require.Failf(t, "sample mismatch", "index %d: want %v, got %v (|Δ|=%g)", i, want[i], got[i], d)
		}
	}
}

// pow2Lengths lists the lengths exercised by the property tests.
var pow2Lengths = []int{1, 2, 4, 8, 16, 32, 64, 128, 256, 1024}
