// SPDX-License-Identifier: MIT

package ode

import "github.com/katalvlaran/lumen/cx"

// Func is the right-hand side of y' = f(x, y).
type Func func(x, y float64) float64

// Stepper advances y(x) to y(x+h) in one step.
type Stepper func(f Func, x, y, h float64) float64

// DefaultStep is the step size used by callers that have no better choice.
// Slope uses it.
const DefaultStep = float64(cx.Epsilon)

// Slope estimates dy/dx at (x, y) as seen by step, from one step of
// DefaultStep: (step(f, x, y, DefaultStep) - y) / DefaultStep.
// The absolute error grows with |y|, by about ulp(y)/DefaultStep.
func Slope(step Stepper, f Func, x, y float64) float64 {
	return (step(f, x, y, DefaultStep) - y) / DefaultStep
}

// Euler performs one explicit Euler step: y + h·f(x, y).
func Euler(f Func, x, y, h float64) float64 {
	return y + h*f(x, y)
}

// RK2 performs one step of Heun's method: an Euler predictor followed by the
// trapezoidal corrector.
func RK2(f Func, x, y, h float64) float64 {
	k1 := f(x, y)
	k2 := f(x+h, y+h*k1)

	return y + 0.5*h*(k1+k2)
}

// RK4 performs one step of the classical fourth-order Runge–Kutta method.
func RK4(f Func, x, y, h float64) float64 {
	var (
		half = h / 2
		k1   = f(x, y)
		k2   = f(x+half, y+half*k1)
		k3   = f(x+half, y+half*k2)
		k4   = f(x+h, y+h*k3)
	)

	return y + (h/6)*(k1+2*k2+2*k3+k4)
}
