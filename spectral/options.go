// SPDX-License-Identifier: MIT

// Package spectral: functional options shared by the transform entry points.
//
// Options are read by the call that receives them:
//   - FFT / IFFT / FFTReal consult the strategy.
//   - DFT / InverseDFT consult the snap tolerance.
//
// Irrelevant options are ignored.
package spectral

import (
	"math"

	"github.com/katalvlaran/lumen/cx"
)

// Strategy selects the radix-2 FFT formulation.
type Strategy int

const (
	// StrategyIterative performs an in-place bit-reversal followed by
	// log2(N) butterfly stages.
	StrategyIterative Strategy = iota
	// StrategyRecursive splits even/odd samples until length 1.
	StrategyRecursive
)

const (
	// DefaultStrategy is used by FFT, IFFT and FFTReal.
	DefaultStrategy = StrategyIterative

	// DefaultSnap zeroes DFT outputs whose magnitude is below it.
	DefaultSnap = float64(cx.Epsilon)
)

const (
	panicStrategyInvalid = "spectral: WithStrategy: unknown strategy"
	panicSnapInvalid     = "spectral: WithSnap: eps must be finite and non-negative"
)

// Option configures a transform call.
type Option func(*Options)

// Options holds the effective configuration; fields are unexported.
type Options struct {
	strategy Strategy
	snap     float64
}

// WithStrategy selects the FFT formulation. Panics on unknown values.
func WithStrategy(s Strategy) Option {
	if s != StrategyIterative && s != StrategyRecursive {
		panic(panicStrategyInvalid)
	}

	return func(o *Options) { o.strategy = s }
}

// WithSnap sets the magnitude below which DFT outputs are replaced by 0.
// Zero disables snapping. Panics on negative, NaN or infinite eps.
func WithSnap(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicSnapInvalid)
	}

	return func(o *Options) { o.snap = eps }
}

// WithNoSnap disables DFT output snapping.
func WithNoSnap() Option { return WithSnap(0) }

func gatherOptions(opts ...Option) Options {
	o := Options{strategy: DefaultStrategy, snap: DefaultSnap}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// String implements fmt.Stringer.
func (s Strategy) String() string {
	if s == StrategyRecursive {
		return "recursive"
	}

	return "iterative"
}
