// SPDX-License-Identifier: MIT

package ode_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lumen/ode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrate_Exponential(t *testing.T) {
	tests := []struct {
		name string
		step ode.Stepper
		tol  float64
	}{
		{"euler", ode.Euler, 2e-2},
		{"rk2", ode.RK2, 1e-4},
		{"rk4", ode.RK4, 1e-8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			y, err := ode.Integrate(tc.step, growth, 0, 1, 0.01, 100)
			require.NoError(t, err)
			assert.InDelta(t, math.E, y, tc.tol)
		})
	}
}

func TestIntegrate_DependsOnX(t *testing.T) {
	// y' = cos x, y(0) = 0  ⇒  y(π/2) = 1.
	f := func(x, _ float64) float64 { return math.Cos(x) }
	const n = 200
	y, err := ode.Integrate(ode.RK4, f, 0, 0, math.Pi/2/n, n)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, y, 1e-10)
}

func TestIntegrate_Backwards(t *testing.T) {
	y, err := ode.Integrate(ode.RK4, growth, 1, math.E, -0.01, 100)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, y, 1e-8)
}

func TestIntegrate_ZeroSteps(t *testing.T) {
	y, err := ode.Integrate(ode.Euler, growth, 0, 42, 0.1, 0)
	require.NoError(t, err)
	assert.Equal(t, 42.0, y)
}

func TestIntegrate_Errors(t *testing.T) {
	_, err := ode.Integrate(nil, growth, 0, 1, 0.1, 1)
	require.ErrorIs(t, err, ode.ErrNilFunc)
	_, err = ode.Integrate(ode.RK4, nil, 0, 1, 0.1, 1)
	require.ErrorIs(t, err, ode.ErrNilFunc)

	_, err = ode.Integrate(ode.RK4, growth, 0, 1, 0.1, -1)
	require.ErrorIs(t, err, ode.ErrInvalidSteps)
	assert.EqualError(t, err, "Integrate: ode: step count must be non-negative")

	for _, h := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err = ode.Integrate(ode.RK4, growth, 0, 1, h, 1)
		require.ErrorIs(t, err, ode.ErrInvalidStepSize)
	}
}
