// SPDX-License-Identifier: MIT

package cx

import "fmt"

// Mat4 is a row-major 4x4 matrix: index 4*r+c holds entry (r, c).
// Transforms act on column vectors (v' = M·v), so translation lives in column 3.
type Mat4 [16]Real

// Mat4Of builds a Mat4 from its entries in row order.
func Mat4Of(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 Real,
) Mat4 {
	return Mat4{
		m00, m01, m02, m03,
		m10, m11, m12, m13,
		m20, m21, m22, m23,
		m30, m31, m32, m33,
	}
}

// Identity4 returns the 4x4 identity.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation4 returns the homogeneous translation by (tx, ty, tz).
func Translation4(tx, ty, tz Real) Mat4 {
	return Mat4{
		1, 0, 0, tx,
		0, 1, 0, ty,
		0, 0, 1, tz,
		0, 0, 0, 1,
	}
}

// Scaling4 returns diag(sx, sy, sz, 1).
func Scaling4(sx, sy, sz Real) Mat4 {
	return Mat4{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	}
}

// ShearX4 shears x by sy·y + sz·z.
func ShearX4(sy, sz Real) Mat4 { return Shear4(sy, sz, 0, 0, 0, 0) }

// ShearY4 shears y by sx·x + sz·z.
func ShearY4(sx, sz Real) Mat4 { return Shear4(0, 0, sx, sz, 0, 0) }

// ShearZ4 shears z by sx·x + sy·y.
func ShearZ4(sx, sy Real) Mat4 { return Shear4(0, 0, 0, 0, sx, sy) }

// Shear4 returns the general shear; sab is the contribution of b to a.
func Shear4(sxy, sxz, syx, syz, szx, szy Real) Mat4 {
	return Mat4{
		1, sxy, sxz, 0,
		syx, 1, syz, 0,
		szx, szy, 1, 0,
		0, 0, 0, 1,
	}
}

// RotationX4 rotates about +X by angle radians (right-handed).
func RotationX4(angle Real) Mat4 { return RotationX3(angle).Mat4() }

// RotationY4 rotates about +Y by angle radians (right-handed).
func RotationY4(angle Real) Mat4 { return RotationY3(angle).Mat4() }

// RotationZ4 rotates about +Z by angle radians (right-handed).
func RotationZ4(angle Real) Mat4 { return RotationZ3(angle).Mat4() }

// EulerZYX4 composes Rz(psi)·Ry(theta)·Rx(phi).
func EulerZYX4(psi, theta, phi Real) Mat4 { return EulerZYX3(psi, theta, phi).Mat4() }

// EulerXYZ4 composes Rx(phi)·Ry(theta)·Rz(psi).
func EulerXYZ4(phi, theta, psi Real) Mat4 { return EulerXYZ3(phi, theta, psi).Mat4() }

// RotationAxis4 rotates by angle radians about axis (Rodrigues' formula).
// The axis is normalized; a zero axis yields the identity.
func RotationAxis4(axis Vec3, angle Real) Mat4 {
	n := axis.Normalize()
	if n == (Vec3{}) {
		return Identity4()
	}
	var (
		c, s    = cos(angle), sin(angle)
		t       = 1 - c
		x, y, z = n[0], n[1], n[2]
	)

	return Mat4{
		t*x*x + c, t*x*y - s*z, t*x*z + s*y, 0,
		t*x*y + s*z, t*y*y + c, t*y*z - s*x, 0,
		t*x*z - s*y, t*y*z + s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

// RotateX4 rotates u about +X.
func RotateX4(u Vec4, angle Real) Vec4 { return RotationX4(angle).MulVec(u) }

// RotateY4 rotates u about +Y.
func RotateY4(u Vec4, angle Real) Vec4 { return RotationY4(angle).MulVec(u) }

// RotateZ4 rotates u about +Z.
func RotateZ4(u Vec4, angle Real) Vec4 { return RotationZ4(angle).MulVec(u) }

// RotateEuler4 rotates u by EulerZYX4(psi, theta, phi).
func RotateEuler4(u Vec4, psi, theta, phi Real) Vec4 {
	return EulerZYX4(psi, theta, phi).MulVec(u)
}

// Mat4 embeds a in the upper-left block of a homogeneous 4x4 identity.
func (a Mat3) Mat4() Mat4 {
	return Mat4{
		a[0], a[1], a[2], 0,
		a[3], a[4], a[5], 0,
		a[6], a[7], a[8], 0,
		0, 0, 0, 1,
	}
}

// Upper3 returns the upper-left 3x3 block (rotation/scale part).
func (a Mat4) Upper3() Mat3 {
	return Mat3{a[0], a[1], a[2], a[4], a[5], a[6], a[8], a[9], a[10]}
}

// At returns entry (r, c). It panics if r or c is outside [0, 4).
func (a Mat4) At(r, c int) Real { return a[4*r+c] }

// M00 … M33 return entry (r, c) named by the two digits, like At(r, c).
func (a Mat4) M00() Real { return a[0] }
func (a Mat4) M01() Real { return a[1] }
func (a Mat4) M02() Real { return a[2] }
func (a Mat4) M03() Real { return a[3] }
func (a Mat4) M10() Real { return a[4] }
func (a Mat4) M11() Real { return a[5] }
func (a Mat4) M12() Real { return a[6] }
func (a Mat4) M13() Real { return a[7] }
func (a Mat4) M20() Real { return a[8] }
func (a Mat4) M21() Real { return a[9] }
func (a Mat4) M22() Real { return a[10] }
func (a Mat4) M23() Real { return a[11] }
func (a Mat4) M30() Real { return a[12] }
func (a Mat4) M31() Real { return a[13] }
func (a Mat4) M32() Real { return a[14] }
func (a Mat4) M33() Real { return a[15] }

// Row returns row r.
func (a Mat4) Row(r int) Vec4 { return Vec4{a[4*r], a[4*r+1], a[4*r+2], a[4*r+3]} }

// Col returns column c.
func (a Mat4) Col(c int) Vec4 { return Vec4{a[c], a[4+c], a[8+c], a[12+c]} }

// ColumnMajor returns the entries in column order, the layout GPU APIs expect
// when uploading without a transpose flag.
func (a Mat4) ColumnMajor() [16]Real {
	return [16]Real(a.Transpose())
}

// Add returns a+b.
func (a Mat4) Add(b Mat4) Mat4 {
	for i := range a {
		a[i] += b[i]
	}

	return a
}

// Sub returns a-b.
func (a Mat4) Sub(b Mat4) Mat4 {
	for i := range a {
		a[i] -= b[i]
	}

	return a
}

// AddScalar adds s to every entry.
func (a Mat4) AddScalar(s Real) Mat4 {
	for i := range a {
		a[i] += s
	}

	return a
}

// Scale multiplies every entry by s.
func (a Mat4) Scale(s Real) Mat4 {
	for i := range a {
		a[i] *= s
	}

	return a
}

// Div divides every entry by s, returning the zero matrix when |s| ≤ Epsilon.
func (a Mat4) Div(s Real) Mat4 { return a.Scale(invOrZero(s)) }

// Mul returns the row-by-column product a·b. Applied to a vector, b acts first.
func (a Mat4) Mul(b Mat4) Mat4 {
	var (
		out     Mat4
		i, j, k int // loop iterators
		sum     Real
	)
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			sum = 0
			for k = 0; k < 4; k++ {
				sum += a[4*i+k] * b[4*k+j]
			}
			out[4*i+j] = sum
		}
	}

	return out
}

// MulVec returns a·u with u treated as a column vector.
func (a Mat4) MulVec(u Vec4) Vec4 {
	return Vec4{
		a[0]*u[0] + a[1]*u[1] + a[2]*u[2] + a[3]*u[3],
		a[4]*u[0] + a[5]*u[1] + a[6]*u[2] + a[7]*u[3],
		a[8]*u[0] + a[9]*u[1] + a[10]*u[2] + a[11]*u[3],
		a[12]*u[0] + a[13]*u[1] + a[14]*u[2] + a[15]*u[3],
	}
}

// ProjectVec4 returns a·u followed by the perspective divide of xyz by w.
// When w is exactly zero the undivided product is returned.
func (a Mat4) ProjectVec4(u Vec4) Vec4 {
	v := a.MulVec(u)
	if v[3] != 0 {
		v[0] /= v[3]
		v[1] /= v[3]
		v[2] /= v[3]
	}

	return v
}

// MulPoint transforms the point p (w = 1) and returns the projected xyz.
func (a Mat4) MulPoint(p Vec3) Vec3 { return a.ProjectVec4(p.Vec4(1)).XYZ() }

// MulDir transforms the direction d (w = 0), ignoring translation.
func (a Mat4) MulDir(d Vec3) Vec3 { return a.MulVec(d.Vec4(0)).XYZ() }

// Transpose returns aᵀ.
func (a Mat4) Transpose() Mat4 {
	return Mat4{
		a[0], a[4], a[8], a[12],
		a[1], a[5], a[9], a[13],
		a[2], a[6], a[10], a[14],
		a[3], a[7], a[11], a[15],
	}
}

// Trace returns the sum of the diagonal.
func (a Mat4) Trace() Real { return a[0] + a[5] + a[10] + a[15] }

// minors2 holds the twelve 2x2 minors of the top (s*) and bottom (c*) row pairs.
type minors2 struct {
	s0, s1, s2, s3, s4, s5 Real
	c0, c1, c2, c3, c4, c5 Real
}

// minors computes the 2x2 minors used by Det and InverseChecked.
func (a Mat4) minors() minors2 {
	return minors2{
		s0: a[0]*a[5] - a[4]*a[1],
		s1: a[0]*a[6] - a[4]*a[2],
		s2: a[0]*a[7] - a[4]*a[3],
		s3: a[1]*a[6] - a[5]*a[2],
		s4: a[1]*a[7] - a[5]*a[3],
		s5: a[2]*a[7] - a[6]*a[3],
		c0: a[8]*a[13] - a[12]*a[9],
		c1: a[8]*a[14] - a[12]*a[10],
		c2: a[8]*a[15] - a[12]*a[11],
		c3: a[9]*a[14] - a[13]*a[10],
		c4: a[9]*a[15] - a[13]*a[11],
		c5: a[10]*a[15] - a[14]*a[11],
	}
}

func (m minors2) det() Real {
	return m.s0*m.c5 - m.s1*m.c4 + m.s2*m.c3 + m.s3*m.c2 - m.s4*m.c1 + m.s5*m.c0
}

// Det returns the determinant by Laplace expansion over the 2x2 minors of
// rows {0,1} and rows {2,3}.
//
// Complexity: O(1); 30 multiplications, allocation-free.
func (a Mat4) Det() Real { return a.minors().det() }

// Inverse returns a⁻¹, or the zero matrix when det(a) is exactly zero.
func (a Mat4) Inverse() Mat4 {
	inv, _ := a.InverseChecked()

	return inv
}

// InverseChecked returns a⁻¹ = adj(a)/det(a), or ErrSingular with the zero
// matrix when the determinant is exactly zero.
//
// Implementation:
//   - Stage 1: compute the 12 minors of the row pairs {0,1} and {2,3}.
//   - Stage 2: det = Laplace expansion of those minors; bail out when zero.
//   - Stage 3: each adjugate entry is a 3-term combination of one row entry
//     with three minors of the opposite row pair.
//
// Determinism:
//   - Fixed evaluation order; no pivoting, so results are bit-identical for
//     identical inputs.
//
// Complexity:
//   - Time O(1), no allocations.
//
// Notes:
//   - For ill-conditioned matrices (det tiny but non-zero) the result is
//     numerically poor; matrix.Inverse with partial pivoting is the
//     general-N alternative.
func (a Mat4) InverseChecked() (Mat4, error) {
	m := a.minors()
	det := m.det()
	if det == 0 {
		return Mat4{}, cxErrorf(opInverse4, ErrSingular)
	}
	inv := 1 / det

	return Mat4{
		(a[5]*m.c5 - a[6]*m.c4 + a[7]*m.c3) * inv,
		(-a[1]*m.c5 + a[2]*m.c4 - a[3]*m.c3) * inv,
		(a[13]*m.s5 - a[14]*m.s4 + a[15]*m.s3) * inv,
		(-a[9]*m.s5 + a[10]*m.s4 - a[11]*m.s3) * inv,

		(-a[4]*m.c5 + a[6]*m.c2 - a[7]*m.c1) * inv,
		(a[0]*m.c5 - a[2]*m.c2 + a[3]*m.c1) * inv,
		(-a[12]*m.s5 + a[14]*m.s2 - a[15]*m.s1) * inv,
		(a[8]*m.s5 - a[10]*m.s2 + a[11]*m.s1) * inv,

		(a[4]*m.c4 - a[5]*m.c2 + a[7]*m.c0) * inv,
		(-a[0]*m.c4 + a[1]*m.c2 - a[3]*m.c0) * inv,
		(a[12]*m.s4 - a[13]*m.s2 + a[15]*m.s0) * inv,
		(-a[8]*m.s4 + a[9]*m.s2 - a[11]*m.s0) * inv,

		(-a[4]*m.c3 + a[5]*m.c1 - a[6]*m.c0) * inv,
		(a[0]*m.c3 - a[1]*m.c1 + a[2]*m.c0) * inv,
		(-a[12]*m.s3 + a[13]*m.s1 - a[14]*m.s0) * inv,
		(a[8]*m.s3 - a[9]*m.s1 + a[10]*m.s0) * inv,
	}, nil
}

// Equals reports whether every entry differs by at most Epsilon.
func (a Mat4) Equals(b Mat4) bool {
	for i := range a {
		if !FloatEquals(a[i], b[i]) {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer, one bracketed row per line.
func (a Mat4) String() string {
	var (
		s string
		r int
	)
	for r = 0; r < 4; r++ {
		s += fmt.Sprintf("[%g, %g, %g, %g]\n", a[4*r], a[4*r+1], a[4*r+2], a[4*r+3])
	}

	return s
}
