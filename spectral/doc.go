// SPDX-License-Identifier: MIT

// Package spectral provides discrete Fourier transforms over complex128
// sample arrays: an O(N²) reference DFT and radix-2 Cooley–Tukey FFTs in
// both recursive and iterative form.
//
// 🚀 What is spectral?
//
//	A small, allocation-scoped transform kernel. Every call reads its input,
//	allocates a fresh output and returns it; inputs are never mutated, so the
//	same slice may be shared freely between goroutines.
//
// ✨ Key features:
//   - DFT / InverseDFT for any length N ≥ 1, with optional snapping of
//     near-zero outputs (WithSnap).
//   - FFT / IFFT for power-of-two lengths, iterative by default,
//     recursive via WithStrategy(StrategyRecursive).
//   - Direct entry points FFTIterative, FFTRecursive, IFFTIterative,
//     IFFTRecursive and a real-input FFTReal.
//   - Bit-reversal helpers: IsPowerOfTwo, Log2, BitReversePermute.
//   - DetectFeatures reports host SIMD capabilities.
//
// ⚙️ Conventions:
//
//	Forward:  X[k] = Σ x[n]·exp(-2πi·k·n/N)
//	Inverse:  x[n] = (1/N)·Σ X[k]·exp(+2πi·k·n/N)
//
// Errors:
//   - ErrEmptyInput    for nil or zero-length input.
//   - ErrInvalidLength for FFT/IFFT lengths that are not a power of two.
//
// ⚙️ Usage:
//
//	x := []complex128{1, 0, 0, 0, 0, 0, 0, 0}
//	X, err := spectral.FFT(x)            // all-ones spectrum
//	y, err := spectral.IFFT(X)           // back to the impulse
//	_, err = spectral.FFT(make([]complex128, 6)) // ErrInvalidLength
package spectral
