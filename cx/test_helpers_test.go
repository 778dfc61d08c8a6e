// SPDX-License-Identifier: MIT
// Package cx_test contains shared fixtures and comparison helpers.

package cx_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lumen/cx"
	"github.com/stretchr/testify/require"
)

// looseTol absorbs round-off accumulated by chains of products (inverse of
// inverse, slerp, rotation by conjugation).
const looseTol = 1e-6

// seeded returns a deterministic source; seed 0 maps to 1.
func seeded(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}

	return rand.New(rand.NewSource(seed))
}

// requireSliceClose compares two equal-length Real slices within eps.
func requireSliceClose(t *testing.T, want, got []cx.Real, eps float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.Len(t, got, len(want), msgAndArgs...)
	for i := range want {
		require.InDelta(t, float64(want[i]), float64(got[i]), eps, msgAndArgs...)
	}
}

// randomInvertible4 draws a Mat4 with a dominant diagonal so it is never singular.
func randomInvertible4(rng *rand.Rand) cx.Mat4 {
	var m cx.Mat4
	for i := range m {
		m[i] = cx.Real(2*rng.Float64() - 1)
	}
	for i := 0; i < 4; i++ {
		m[5*i] += 4
	}

	return m
}

// randomInvertible3 draws a Mat3 with a dominant diagonal.
func randomInvertible3(rng *rand.Rand) cx.Mat3 {
	var m cx.Mat3
	for i := range m {
		m[i] = cx.Real(2*rng.Float64() - 1)
	}
	for i := 0; i < 3; i++ {
		m[4*i] += 3
	}

	return m
}
