// SPDX-License-Identifier: MIT

package spectral

import (
	"math"
	"math/cmplx"
)

// DFT returns the discrete Fourier transform of x by direct summation,
//
//	X[k] = Σ_{n=0}^{N-1} x[n]·exp(-2πi·k·n/N).
//
// Any length N ≥ 1 is accepted. Outputs with |X[k]| below the snap tolerance
// (DefaultSnap unless WithSnap/WithNoSnap is given) are replaced by 0.
//
// Errors:
//   - ErrEmptyInput for nil or empty x.
//
// Complexity: O(N²) time, O(N) memory for the result.
func DFT(x []complex128, opts ...Option) ([]complex128, error) {
	if err := validateAny(opDFT, len(x)); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	out := dft(x, -1)
	snap(out, o.snap)

	return out, nil
}

// InverseDFT returns the inverse transform with the 1/N normalization,
//
//	x[n] = (1/N)·Σ_{k=0}^{N-1} X[k]·exp(+2πi·k·n/N).
//
// Snapping follows the same rule as DFT.
func InverseDFT(x []complex128, opts ...Option) ([]complex128, error) {
	if err := validateAny(opInverseDFT, len(x)); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	out := dft(x, +1)
	scale(out, 1/float64(len(out)))
	snap(out, o.snap)

	return out, nil
}

// dft sums x against exp(sign·2πi·k·n/N). The exponent k·n is reduced
// modulo N so large lengths keep accurate twiddles.
func dft(x []complex128, sign float64) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	var (
		k, j int // output and input indices
		acc  complex128
	)
	for k = 0; k < n; k++ {
		acc = 0
		for j = 0; j < n; j++ {
			acc += x[j] * twiddle(sign, (k*j)%n, n)
		}
		out[k] = acc
	}

	return out
}

// twiddle returns exp(sign·2πi·k/n).
func twiddle(sign float64, k, n int) complex128 {
	s, c := math.Sincos(sign * 2 * math.Pi * float64(k) / float64(n))

	return complex(c, s)
}

// snap zeroes entries whose magnitude is below eps; eps ≤ 0 is a no-op.
func snap(x []complex128, eps float64) {
	if eps <= 0 {
		return
	}
	for i, v := range x {
		if cmplx.Abs(v) < eps {
			x[i] = 0
		}
	}
}

// scale multiplies every entry by s.
func scale(x []complex128, s float64) {
	f := complex(s, 0)
	for i := range x {
		x[i] *= f
	}
}
