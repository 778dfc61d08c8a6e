// SPDX-License-Identifier: MIT

package spectral

// FFTIterative computes the forward radix-2 FFT of x without recursion.
//
// Implementation:
//   - Stage 1: copy x into a fresh buffer and apply BitReversePermute.
//   - Stage 2: for span = 2, 4, …, N combine pairs (u, v) half a span apart
//     as u ± w·v, with w = exp(-2πi·j/span), j = 0 … span/2-1.
//
// Errors:
//   - ErrEmptyInput for nil or empty x.
//   - ErrInvalidLength when len(x) is not a power of two.
//
// Complexity: O(N log N) time, one O(N) output allocation. x is not modified.
func FFTIterative(x []complex128) ([]complex128, error) {
	if err := validatePow2(opFFTIterative, len(x)); err != nil {
		return nil, err
	}

	return iterative(x, -1), nil
}

// IFFTIterative computes the inverse FFT: the twiddles use the conjugate sign
// and every output sample is divided by N.
func IFFTIterative(x []complex128) ([]complex128, error) {
	if err := validatePow2(opIFFTIterative, len(x)); err != nil {
		return nil, err
	}
	out := iterative(x, +1)
	scale(out, 1/float64(len(out)))

	return out, nil
}

// iterative runs the bit-reversed butterfly network on a copy of x.
func iterative(x []complex128, sign float64) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	copy(out, x)
	BitReversePermute(out)

	var (
		span, half, start, j int
		w, u, v              complex128
	)
	for span = 2; span <= n; span <<= 1 {
		half = span >> 1
		for j = 0; j < half; j++ {
			w = twiddle(sign, j, span)
			for start = 0; start < n; start += span {
				u = out[start+j]
				v = out[start+j+half] * w
				out[start+j] = u + v
				out[start+j+half] = u - v
			}
		}
	}

	return out
}
