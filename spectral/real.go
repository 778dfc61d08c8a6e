// SPDX-License-Identifier: MIT

package spectral

// FFTReal promotes real samples to complex128 and returns their FFT.
// The spectrum of real input is Hermitian: X[N-k] = conj(X[k]).
//
// Errors: as FFT, tagged with "FFTReal".
func FFTReal(x []float64, opts ...Option) ([]complex128, error) {
	if err := validatePow2(opFFTReal, len(x)); err != nil {
		return nil, err
	}
	c := make([]complex128, len(x))
	for i, v := range x {
		c[i] = complex(v, 0)
	}

	return FFT(c, opts...)
}
