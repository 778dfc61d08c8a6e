// SPDX-License-Identifier: MIT

package ode

import (
	"errors"
	"fmt"
)

var (
	// ErrNilFunc is returned when the derivative or the stepper is nil.
	ErrNilFunc = errors.New("ode: nil function")

	// ErrInvalidSteps is returned for a negative step count.
	ErrInvalidSteps = errors.New("ode: step count must be non-negative")

	// ErrInvalidStepSize is returned for a NaN or infinite step size.
	ErrInvalidStepSize = errors.New("ode: step size must be finite")

	// ErrUnknownStepper is returned by StepperByName.
	ErrUnknownStepper = errors.New("ode: unknown stepper")
)

const (
	opIntegrate     = "Integrate"
	opStepperByName = "StepperByName"
)

func odeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
