// SPDX-License-Identifier: MIT
// Package spectral: sentinel errors and wrapping helper.

package spectral

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned for nil or zero-length input.
	ErrEmptyInput = errors.New("spectral: empty input")

	// ErrInvalidLength is returned when an FFT length is not a power of two.
	ErrInvalidLength = errors.New("spectral: length is not a power of two")
)

// Operation tags for wrapped errors.
const (
	opDFT           = "DFT"
	opInverseDFT    = "InverseDFT"
	opFFTIterative  = "FFTIterative"
	opFFTRecursive  = "FFTRecursive"
	opIFFTIterative = "IFFTIterative"
	opIFFTRecursive = "IFFTRecursive"
	opFFTReal       = "FFTReal"
)

// spectralErrorf wraps err with the operation tag and offending length.
func spectralErrorf(tag string, n int, err error) error {
	return fmt.Errorf("%s: n=%d: %w", tag, n, err)
}

// validateAny accepts any non-empty input.
func validateAny(tag string, n int) error {
	if n == 0 {
		return spectralErrorf(tag, n, ErrEmptyInput)
	}

	return nil
}

// validatePow2 accepts non-empty power-of-two inputs.
func validatePow2(tag string, n int) error {
	if err := validateAny(tag, n); err != nil {
		return err
	}
	if !IsPowerOfTwo(n) {
		return spectralErrorf(tag, n, ErrInvalidLength)
	}

	return nil
}
