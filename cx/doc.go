// SPDX-License-Identifier: MIT

// Package cx is the small-matrix math kernel behind lumen: scalar helpers,
// 2/3/4-component vectors, 2x2/3x3/4x4 matrices and quaternions.
//
// 🚀 What is cx?
//
//	A pure, value-typed linear-algebra toolkit for real-time graphics:
//	  • Vec2, Vec3, Vec4: arithmetic, dot/cross, normalize, projection, reflection
//	  • Mat2, Mat3, Mat4: factories (scale, shear, rotation, translation),
//	    products, transpose, determinant, inverse, trace
//	  • Projection & view: perspective, orthographic, look-at in LH/RH and
//	    NO ([-1,1]) / ZO ([0,1]) depth conventions
//	  • Quat: Hamilton product, conjugate/inverse, lerp/nlerp/slerp, rotation
//
// ✨ Key properties:
//   - Every type is a fixed-size Go array; values are copied, never shared.
//   - Matrices are row-major: entry (r, c) of an N×N matrix lives at index N*r+c.
//   - Degenerate input never panics and never yields NaN/Inf: dividing by a
//     scalar within Epsilon of zero, normalizing a zero vector or quaternion,
//     and inverting a singular matrix all return the zero value.
//   - Equality is uniform: two values are Equal when every component differs
//     by at most Epsilon.
//
// ⚙️ Precision:
//
//	Real is float64 by default. Build with -tags cx_float32 to switch the whole
//	package to float32:
//
//	  go build -tags cx_float32 ./...
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lumen/cx"
//
//	model := cx.Translation4(0, 1, -5).Mul(cx.RotationY4(cx.Radians(30)))
//	view := cx.LookAt(cx.Vec3Of(0, 2, 4), cx.Vec3{}, cx.Vec3Of(0, 1, 0))
//	proj := cx.Perspective(cx.Radians(60), 16.0/9.0, 0.1, 100)
//	mvp := proj.Mul(view).Mul(model)
//
// See example_test.go for runnable snippets.
package cx
