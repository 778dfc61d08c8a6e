// SPDX-License-Identifier: MIT

package cx

import "fmt"

// Mat3 is a row-major 3x3 matrix: index 3*r+c holds entry (r, c).
// As a 2D affine transform the translation lives in column 2.
type Mat3 [9]Real

// Mat3Of builds a Mat3 from its entries in row order.
func Mat3Of(m00, m01, m02, m10, m11, m12, m20, m21, m22 Real) Mat3 {
	return Mat3{m00, m01, m02, m10, m11, m12, m20, m21, m22}
}

// Identity3 returns the 3x3 identity.
func Identity3() Mat3 { return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1} }

// Translation3 returns the homogeneous 2D translation by (tx, ty).
func Translation3(tx, ty Real) Mat3 { return Mat3{1, 0, tx, 0, 1, ty, 0, 0, 1} }

// Scaling3 returns diag(sx, sy, sz).
func Scaling3(sx, sy, sz Real) Mat3 { return Mat3{sx, 0, 0, 0, sy, 0, 0, 0, sz} }

// ShearX3 shears x by shx·y.
func ShearX3(shx Real) Mat3 { return Mat3{1, shx, 0, 0, 1, 0, 0, 0, 1} }

// ShearY3 shears y by shy·x.
func ShearY3(shy Real) Mat3 { return Mat3{1, 0, 0, shy, 1, 0, 0, 0, 1} }

// Shear3 combines ShearX3 and ShearY3 in a single matrix.
func Shear3(shx, shy Real) Mat3 { return Mat3{1, shx, 0, shy, 1, 0, 0, 0, 1} }

// ReflectionX3 mirrors across the x axis (negates y).
func ReflectionX3() Mat3 { return Mat3{1, 0, 0, 0, -1, 0, 0, 0, 1} }

// ReflectionY3 mirrors across the y axis (negates x).
func ReflectionY3() Mat3 { return Mat3{-1, 0, 0, 0, 1, 0, 0, 0, 1} }

// ReflectionZ3 mirrors through the xy plane (negates z).
func ReflectionZ3() Mat3 { return Mat3{1, 0, 0, 0, 1, 0, 0, 0, -1} }

// RotationX3 rotates about +X by angle radians (right-handed).
func RotationX3(angle Real) Mat3 {
	c, s := cos(angle), sin(angle)

	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotationY3 rotates about +Y by angle radians (right-handed).
func RotationY3(angle Real) Mat3 {
	c, s := cos(angle), sin(angle)

	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotationZ3 rotates about +Z by angle radians (right-handed).
func RotationZ3(angle Real) Mat3 {
	c, s := cos(angle), sin(angle)

	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// EulerZYX3 composes Rz(psi)·Ry(theta)·Rx(phi): applied to a column vector,
// x rotates first and z last.
func EulerZYX3(psi, theta, phi Real) Mat3 {
	return RotationZ3(psi).Mul(RotationY3(theta)).Mul(RotationX3(phi))
}

// EulerXYZ3 composes Rx(phi)·Ry(theta)·Rz(psi).
func EulerXYZ3(phi, theta, psi Real) Mat3 {
	return RotationX3(phi).Mul(RotationY3(theta)).Mul(RotationZ3(psi))
}

// RotateX3 rotates u about +X.
func RotateX3(u Vec3, angle Real) Vec3 { return RotationX3(angle).MulVec(u) }

// RotateY3 rotates u about +Y.
func RotateY3(u Vec3, angle Real) Vec3 { return RotationY3(angle).MulVec(u) }

// RotateZ3 rotates u about +Z.
func RotateZ3(u Vec3, angle Real) Vec3 { return RotationZ3(angle).MulVec(u) }

// RotateEuler3 rotates u by EulerZYX3(psi, theta, phi).
func RotateEuler3(u Vec3, psi, theta, phi Real) Vec3 {
	return EulerZYX3(psi, theta, phi).MulVec(u)
}

// At returns entry (r, c). It panics if r or c is outside [0, 3).
func (a Mat3) At(r, c int) Real { return a[3*r+c] }

// M00 … M22 return entry (r, c) named by the two digits, like At(r, c).
func (a Mat3) M00() Real { return a[0] }
func (a Mat3) M01() Real { return a[1] }
func (a Mat3) M02() Real { return a[2] }
func (a Mat3) M10() Real { return a[3] }
func (a Mat3) M11() Real { return a[4] }
func (a Mat3) M12() Real { return a[5] }
func (a Mat3) M20() Real { return a[6] }
func (a Mat3) M21() Real { return a[7] }
func (a Mat3) M22() Real { return a[8] }

// Row returns row r.
func (a Mat3) Row(r int) Vec3 { return Vec3{a[3*r], a[3*r+1], a[3*r+2]} }

// Col returns column c.
func (a Mat3) Col(c int) Vec3 { return Vec3{a[c], a[3+c], a[6+c]} }

// Add returns a+b.
func (a Mat3) Add(b Mat3) Mat3 {
	for i := range a {
		a[i] += b[i]
	}

	return a
}

// Sub returns a-b.
func (a Mat3) Sub(b Mat3) Mat3 {
	for i := range a {
		a[i] -= b[i]
	}

	return a
}

// AddScalar adds s to every entry.
func (a Mat3) AddScalar(s Real) Mat3 {
	for i := range a {
		a[i] += s
	}

	return a
}

// Scale multiplies every entry by s.
func (a Mat3) Scale(s Real) Mat3 {
	for i := range a {
		a[i] *= s
	}

	return a
}

// Div divides every entry by s, returning the zero matrix when |s| ≤ Epsilon.
func (a Mat3) Div(s Real) Mat3 { return a.Scale(invOrZero(s)) }

// Mul returns the row-by-column product a·b.
func (a Mat3) Mul(b Mat3) Mat3 {
	var (
		out     Mat3
		i, j, k int // loop iterators
		sum     Real
	)
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			sum = 0
			for k = 0; k < 3; k++ {
				sum += a[3*i+k] * b[3*k+j]
			}
			out[3*i+j] = sum
		}
	}

	return out
}

// MulVec returns a·u with u treated as a column vector.
func (a Mat3) MulVec(u Vec3) Vec3 {
	return Vec3{
		a[0]*u[0] + a[1]*u[1] + a[2]*u[2],
		a[3]*u[0] + a[4]*u[1] + a[5]*u[2],
		a[6]*u[0] + a[7]*u[1] + a[8]*u[2],
	}
}

// Det returns the determinant by cofactor expansion along row 0.
func (a Mat3) Det() Real {
	return a[0]*(a[4]*a[8]-a[5]*a[7]) -
		a[1]*(a[3]*a[8]-a[5]*a[6]) +
		a[2]*(a[3]*a[7]-a[4]*a[6])
}

// Transpose returns aᵀ.
func (a Mat3) Transpose() Mat3 {
	return Mat3{a[0], a[3], a[6], a[1], a[4], a[7], a[2], a[5], a[8]}
}

// Trace returns the sum of the diagonal.
func (a Mat3) Trace() Real { return a[0] + a[4] + a[8] }

// Cofactor returns the signed cofactor matrix C, where C[r][c] = (-1)^(r+c)·minor(r, c).
func (a Mat3) Cofactor() Mat3 {
	return Mat3{
		a[4]*a[8] - a[5]*a[7], -(a[3]*a[8] - a[5]*a[6]), a[3]*a[7] - a[4]*a[6],
		-(a[1]*a[8] - a[2]*a[7]), a[0]*a[8] - a[2]*a[6], -(a[0]*a[7] - a[1]*a[6]),
		a[1]*a[5] - a[2]*a[4], -(a[0]*a[5] - a[2]*a[3]), a[0]*a[4] - a[1]*a[3],
	}
}

// Inverse returns a⁻¹ = adj(a)/det(a), or the zero matrix when det(a) is exactly zero.
func (a Mat3) Inverse() Mat3 {
	inv, _ := a.InverseChecked()

	return inv
}

// InverseChecked returns a⁻¹ or ErrSingular when the determinant is exactly zero.
// On error the returned matrix is the zero matrix.
//
// Implementation:
//   - Stage 1: build the cofactor matrix; det = row 0 of a dotted with row 0 of C.
//   - Stage 2: adj(a) = Cᵀ, scaled by 1/det.
//
// Complexity: O(1), allocation-free.
func (a Mat3) InverseChecked() (Mat3, error) {
	c := a.Cofactor()
	det := a[0]*c[0] + a[1]*c[1] + a[2]*c[2]
	if det == 0 {
		return Mat3{}, cxErrorf(opInverse3, ErrSingular)
	}

	return c.Transpose().Scale(1 / det), nil
}

// Equals reports whether every entry differs by at most Epsilon.
func (a Mat3) Equals(b Mat3) bool {
	for i := range a {
		if !FloatEquals(a[i], b[i]) {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer, one bracketed row per line.
func (a Mat3) String() string {
	return fmt.Sprintf("[%g, %g, %g]\n[%g, %g, %g]\n[%g, %g, %g]\n",
		a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7], a[8])
}
