// SPDX-License-Identifier: MIT

//go:build !cx_float32

package cx

// Real is the floating-point type shared by every vector, matrix and quaternion.
type Real = float64

// Precision reports the bit width of Real selected at compile time.
const Precision = 64
