// SPDX-License-Identifier: MIT
// Package cx: scalar constants and helpers shared by every value type.
//
// Purpose:
//   - Single source of truth for Epsilon and the angle constants.
//   - Thin Real wrappers over package math so the rest of the package never
//     spells float64 conversions inline (keeps the cx_float32 build honest).

package cx

import "math"

// Epsilon is the tolerance used for equality checks and divide-by-zero guards.
const Epsilon Real = 1e-8

// Angle and Euler constants expressed in Real.
const (
	Pi        Real = math.Pi
	PiHalf    Real = math.Pi / 2
	PiSquared Real = math.Pi * math.Pi
	Tau       Real = 2 * math.Pi
	E         Real = math.E
	RadPerDeg Real = math.Pi / 180
	DegPerRad Real = 180 / math.Pi
)

// Clamp limits x to the closed interval [lo, hi].
func Clamp(x, lo, hi Real) Real {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}

// Lerp blends a toward b by t; t is not clamped.
func Lerp(a, b, t Real) Real {
	return a + t*(b-a)
}

// SafeDivide returns x/y, or 0 when |y| ≤ Epsilon.
//
// Behavior highlights:
//   - Never produces ±Inf or NaN from a zero divisor.
//   - The same guard backs every Div method in the package.
//
// Complexity: O(1).
func SafeDivide(x, y Real) Real {
	if abs(y) <= Epsilon {
		return 0
	}

	return x / y
}

// FloatEquals reports whether |a-b| ≤ Epsilon.
func FloatEquals(a, b Real) bool {
	return abs(a-b) <= Epsilon
}

// Radians converts degrees to radians.
func Radians(deg Real) Real { return deg * RadPerDeg }

// Degrees converts radians to degrees.
func Degrees(rad Real) Real { return rad * DegPerRad }

// invOrZero returns 1/x, or 0 when |x| ≤ Epsilon.
func invOrZero(x Real) Real {
	if abs(x) <= Epsilon {
		return 0
	}

	return 1 / x
}

// projFactor returns dot/magSq, or 0 when sqrt(magSq) ≤ Epsilon. The
// threshold applies to the length, matching Normalize.
func projFactor(dot, magSq Real) Real {
	if sqrt(magSq) <= Epsilon {
		return 0
	}

	return dot / magSq
}

func abs(x Real) Real {
	if x < 0 {
		return -x
	}

	return x
}

func sqrt(x Real) Real { return Real(math.Sqrt(float64(x))) }
func sin(x Real) Real  { return Real(math.Sin(float64(x))) }
func cos(x Real) Real  { return Real(math.Cos(float64(x))) }
func tan(x Real) Real  { return Real(math.Tan(float64(x))) }
func acos(x Real) Real { return Real(math.Acos(float64(x))) }
func atan(x Real) Real { return Real(math.Atan(float64(x))) }
