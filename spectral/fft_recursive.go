// SPDX-License-Identifier: MIT

package spectral

// FFTRecursive computes the forward radix-2 FFT by even/odd decimation in time.
//
// Implementation:
//   - Stage 1: split x into even- and odd-indexed halves.
//   - Stage 2: transform each half recursively.
//   - Stage 3: X[k] = E[k] + w^k·O[k], X[k+N/2] = E[k] - w^k·O[k] with
//     w = exp(-2πi/N).
//
// Scratch buffers are heap-allocated per level and released on return.
//
// Errors:
//   - ErrEmptyInput for nil or empty x.
//   - ErrInvalidLength when len(x) is not a power of two.
//
// Complexity: O(N log N) time, O(N log N) transient memory. x is not modified.
func FFTRecursive(x []complex128) ([]complex128, error) {
	if err := validatePow2(opFFTRecursive, len(x)); err != nil {
		return nil, err
	}
	out := make([]complex128, len(x))
	recursive(out, x, -1)

	return out, nil
}

// IFFTRecursive computes the inverse FFT recursively. Each level halves its
// outputs, so the top level result carries the full 1/N factor.
func IFFTRecursive(x []complex128) ([]complex128, error) {
	if err := validatePow2(opIFFTRecursive, len(x)); err != nil {
		return nil, err
	}
	out := make([]complex128, len(x))
	recursive(out, x, +1)

	return out, nil
}

// recursive writes the transform of src into dst; len(dst) == len(src).
// For sign = +1 every level divides by 2.
func recursive(dst, src []complex128, sign float64) {
	n := len(src)
	if n == 1 {
		dst[0] = src[0]
		return
	}
	half := n / 2

	// even|odd inputs in the first buffer, their transforms in the second.
	split := make([]complex128, n)
	sub := make([]complex128, n)
	for i := 0; i < half; i++ {
		split[i] = src[2*i]
		split[half+i] = src[2*i+1]
	}
	recursive(sub[:half], split[:half], sign)
	recursive(sub[half:], split[half:], sign)

	var w, t complex128
	for k := 0; k < half; k++ {
		w = twiddle(sign, k, n)
		t = w * sub[half+k]
		dst[k] = sub[k] + t
		dst[k+half] = sub[k] - t
	}
	if sign > 0 {
		scale(dst, 0.5)
	}
}
