// SPDX-License-Identifier: MIT

// Package ode provides explicit single-step integrators for the scalar
// initial value problem y' = f(x, y).
//
// Steppers are pure functions: they evaluate f a fixed number of times and
// return the next y. Nothing is cached between calls.
//
//	Euler  y + h·f(x, y)                                   1 evaluation
//	RK2    y + h/2·(f(x, y) + f(x+h, y+h·f(x, y)))           2 evaluations (Heun)
//	RK4    y + h/6·(k1 + 2k2 + 2k3 + k4)                    4 evaluations
//
// Integrate chains n steps of any Stepper.
package ode
