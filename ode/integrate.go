// SPDX-License-Identifier: MIT

package ode

import (
	"math"
	"sort"
	"strings"
)

// Integrate applies step n times from (x0, y0) with a fixed size h and
// returns y(x0 + n·h). n = 0 returns y0 unchanged. A negative h integrates
// backwards.
//
// Errors:
//   - ErrNilFunc when step or f is nil.
//   - ErrInvalidSteps when n < 0.
//   - ErrInvalidStepSize when h is NaN or ±Inf.
//
// Complexity: O(n) stepper calls, no allocations.
func Integrate(step Stepper, f Func, x0, y0, h float64, n int) (float64, error) {
	if step == nil || f == nil {
		return 0, odeErrorf(opIntegrate, ErrNilFunc)
	}
	if n < 0 {
		return 0, odeErrorf(opIntegrate, ErrInvalidSteps)
	}
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0, odeErrorf(opIntegrate, ErrInvalidStepSize)
	}

	x, y := x0, y0
	for i := 0; i < n; i++ {
		y = step(f, x, y, h)
		// x = x0 + k·h after k steps, without accumulated drift.
		x = x0 + float64(i+1)*h
	}

	return y, nil
}

var steppers = map[string]Stepper{
	"euler": Euler,
	"rk2":   RK2,
	"rk4":   RK4,
}

// StepperByName resolves "euler", "rk2" or "rk4" (case-insensitive).
func StepperByName(name string) (Stepper, error) {
	s, ok := steppers[strings.ToLower(name)]
	if !ok {
		return nil, odeErrorf(opStepperByName, ErrUnknownStepper)
	}

	return s, nil
}

// StepperNames lists the names accepted by StepperByName in sorted order.
func StepperNames() []string {
	names := make([]string, 0, len(steppers))
	for name := range steppers {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
