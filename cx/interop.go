// SPDX-License-Identifier: MIT
// Package cx: conversions to and from golang.org/x/image/math/{f32,f64}
// and the general-N matrix.Dense.
//
// Both x/image packages store matrices row-major like cx, so conversions are
// element-wise casts with no reordering. There is no Mat2 in x/image.

package cx

import (
	"github.com/katalvlaran/lumen/matrix"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// F32 converts u to an x/image float32 vector.
func (u Vec2) F32() f32.Vec2 { return f32.Vec2{float32(u[0]), float32(u[1])} }

// F64 converts u to an x/image float64 vector.
func (u Vec2) F64() f64.Vec2 { return f64.Vec2{float64(u[0]), float64(u[1])} }

// F32 converts u to an x/image float32 vector.
func (u Vec3) F32() f32.Vec3 {
	return f32.Vec3{float32(u[0]), float32(u[1]), float32(u[2])}
}

// F64 converts u to an x/image float64 vector.
func (u Vec3) F64() f64.Vec3 {
	return f64.Vec3{float64(u[0]), float64(u[1]), float64(u[2])}
}

// F32 converts u to an x/image float32 vector.
func (u Vec4) F32() f32.Vec4 {
	return f32.Vec4{float32(u[0]), float32(u[1]), float32(u[2]), float32(u[3])}
}

// F64 converts u to an x/image float64 vector.
func (u Vec4) F64() f64.Vec4 {
	return f64.Vec4{float64(u[0]), float64(u[1]), float64(u[2]), float64(u[3])}
}

// F32 converts a to an x/image float32 matrix.
func (a Mat3) F32() f32.Mat3 {
	var out f32.Mat3
	for i, v := range a {
		out[i] = float32(v)
	}

	return out
}

// F64 converts a to an x/image float64 matrix.
func (a Mat3) F64() f64.Mat3 {
	var out f64.Mat3
	for i, v := range a {
		out[i] = float64(v)
	}

	return out
}

// F32 converts a to an x/image float32 matrix.
func (a Mat4) F32() f32.Mat4 {
	var out f32.Mat4
	for i, v := range a {
		out[i] = float32(v)
	}

	return out
}

// F64 converts a to an x/image float64 matrix.
func (a Mat4) F64() f64.Mat4 {
	var out f64.Mat4
	for i, v := range a {
		out[i] = float64(v)
	}

	return out
}

// Vec2FromF32 converts an x/image vector.
func Vec2FromF32(v f32.Vec2) Vec2 { return Vec2{Real(v[0]), Real(v[1])} }

// Vec2FromF64 converts an x/image vector.
func Vec2FromF64(v f64.Vec2) Vec2 { return Vec2{Real(v[0]), Real(v[1])} }

// Vec3FromF32 converts an x/image vector.
func Vec3FromF32(v f32.Vec3) Vec3 { return Vec3{Real(v[0]), Real(v[1]), Real(v[2])} }

// Vec3FromF64 converts an x/image vector.
func Vec3FromF64(v f64.Vec3) Vec3 { return Vec3{Real(v[0]), Real(v[1]), Real(v[2])} }

// Vec4FromF32 converts an x/image vector.
func Vec4FromF32(v f32.Vec4) Vec4 {
	return Vec4{Real(v[0]), Real(v[1]), Real(v[2]), Real(v[3])}
}

// Vec4FromF64 converts an x/image vector.
func Vec4FromF64(v f64.Vec4) Vec4 {
	return Vec4{Real(v[0]), Real(v[1]), Real(v[2]), Real(v[3])}
}

// Mat3FromF32 converts an x/image matrix.
func Mat3FromF32(m f32.Mat3) Mat3 {
	var out Mat3
	for i, v := range m {
		out[i] = Real(v)
	}

	return out
}

// Mat3FromF64 converts an x/image matrix.
func Mat3FromF64(m f64.Mat3) Mat3 {
	var out Mat3
	for i, v := range m {
		out[i] = Real(v)
	}

	return out
}

// Mat4FromF32 converts an x/image matrix.
func Mat4FromF32(m f32.Mat4) Mat4 {
	var out Mat4
	for i, v := range m {
		out[i] = Real(v)
	}

	return out
}

// Mat4FromF64 converts an x/image matrix.
func Mat4FromF64(m f64.Mat4) Mat4 {
	var out Mat4
	for i, v := range m {
		out[i] = Real(v)
	}

	return out
}

// Dense copies a into a new 2x2 matrix.Dense.
func (a Mat2) Dense() *matrix.Dense { return toDense(2, a[:]) }

// Dense copies a into a new 3x3 matrix.Dense.
func (a Mat3) Dense() *matrix.Dense { return toDense(3, a[:]) }

// Dense copies a into a new 4x4 matrix.Dense.
func (a Mat4) Dense() *matrix.Dense { return toDense(4, a[:]) }

// Mat4FromDense copies a 4x4 matrix.Dense into a Mat4.
// Returns ErrLength (wrapped) for any other shape or a nil d.
func Mat4FromDense(d *matrix.Dense) (Mat4, error) {
	var out Mat4
	if err := fromDense(d, 4, out[:]); err != nil {
		return Mat4{}, err
	}

	return out, nil
}

// Mat3FromDense copies a 3x3 matrix.Dense into a Mat3.
func Mat3FromDense(d *matrix.Dense) (Mat3, error) {
	var out Mat3
	if err := fromDense(d, 3, out[:]); err != nil {
		return Mat3{}, err
	}

	return out, nil
}

func toDense(n int, src []Real) *matrix.Dense {
	vals := make([]float64, len(src))
	for i, v := range src {
		vals[i] = float64(v)
	}
	// n*n == len(src) by construction, so NewDenseFrom cannot fail.
	d, _ := matrix.NewDenseFrom(n, n, vals)

	return d
}

func fromDense(d *matrix.Dense, n int, dst []Real) error {
	if d == nil || d.Rows() != n || d.Cols() != n {
		return cxErrorf(opFromDense, ErrLength)
	}
	for i, v := range d.RawRowMajor() {
		dst[i] = Real(v)
	}

	return nil
}
