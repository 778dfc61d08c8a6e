// SPDX-License-Identifier: MIT

package spectral

// FFT computes the forward transform of a power-of-two length x.
// The formulation defaults to StrategyIterative; both strategies produce
// the same result within floating-point round-off.
//
// Errors:
//   - ErrEmptyInput for nil or empty x.
//   - ErrInvalidLength when len(x) is not a power of two.
func FFT(x []complex128, opts ...Option) ([]complex128, error) {
	if gatherOptions(opts...).strategy == StrategyRecursive {
		return FFTRecursive(x)
	}

	return FFTIterative(x)
}

// IFFT computes the inverse transform (1/N normalized) of a power-of-two x.
// IFFT(FFT(x)) reproduces x within round-off.
func IFFT(x []complex128, opts ...Option) ([]complex128, error) {
	if gatherOptions(opts...).strategy == StrategyRecursive {
		return IFFTRecursive(x)
	}

	return IFFTIterative(x)
}
