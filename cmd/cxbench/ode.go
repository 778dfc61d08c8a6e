// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/lumen/ode"
)

// odeSteps are the step counts over [0, 1]; each halves h.
var odeSteps = []int{10, 20, 40, 80}

// runODE integrates y' = y from y(0) = 1 to x = 1 and prints the global
// error of every stepper with the observed convergence order.
func runODE(w io.Writer, log *slog.Logger) error {
	f := func(_, y float64) float64 { return y }

	fmt.Fprintf(w, "%8s  %8s  %14s  %8s\n", "h", "method", "error", "order")
	for _, name := range ode.StepperNames() {
		step, err := ode.StepperByName(name)
		if err != nil {
			return err
		}
		prev := math.NaN()
		for _, n := range odeSteps {
			h := 1 / float64(n)
			y, err := ode.Integrate(step, f, 0, 1, h, n)
			if err != nil {
				return err
			}
			e := math.Abs(y - math.E)
			order := math.Log2(prev / e)
			fmt.Fprintf(w, "%8.4f  %8s  %14.3e  %8.2f\n", h, name, e, order)
			prev = e
		}
		log.Debug("stepper done", slog.String("method", name))
	}

	return nil
}
