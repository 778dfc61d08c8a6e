// Package lumen is a pure-Go numeric kernel for real-time graphics and
// signal work: small fixed-size linear algebra, projections, quaternions,
// Fourier transforms and ODE steppers.
//
// 🚀 What is lumen?
//
//	A value-typed, allocation-light math library. Vectors, matrices and
//	quaternions are Go arrays copied by value; transforms return fresh
//	slices and never touch their inputs. Degenerate numeric input (division
//	by ~0, normalizing a ~0 vector, inverting a singular matrix) yields a
//	zero result instead of NaN or Inf.
//
// ✨ Packages:
//
//	cx/        — Real, Epsilon, Vec2/3/4, Mat2/3/4, Quat, projections
//	             (LH/RH × NO/ZO), look-at, x/image interop
//	matrix/    — general N×N Dense with pivoted LU, Det, Inverse, Solve
//	spectral/  — reference DFT, recursive and iterative radix-2 FFT, real FFT
//	ode/       — Euler, RK2 (Heun), RK4 and a fixed-step Integrate driver
//	camera/    — perspective/orthographic camera with cached matrices
//	cmd/cxbench — FFT timings, Mat4 inverse cross-check, ODE convergence
//
// Precision: cx.Real is float64; build with -tags cx_float32 for float32.
//
// Quick example:
//
//	model := cx.Translation4(0, 0, -5).Mul(cx.RotationY4(cx.Radians(30)))
//	proj  := cx.Perspective(cx.Radians(60), 16.0/9.0, 0.1, 100)
//	clip  := proj.Mul(model).MulVec(cx.Vec4Of(1, 1, 1, 1))
//
//	go get github.com/katalvlaran/lumen
package lumen
