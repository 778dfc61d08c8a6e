// SPDX-License-Identifier: MIT

package cx

import "fmt"

// Mat2 is a row-major 2x2 matrix: index 2*r+c holds entry (r, c).
type Mat2 [4]Real

// Mat2Of builds a Mat2 from its entries in row order.
func Mat2Of(m00, m01, m10, m11 Real) Mat2 {
	return Mat2{m00, m01, m10, m11}
}

// Identity2 returns the 2x2 identity.
func Identity2() Mat2 { return Mat2{1, 0, 0, 1} }

// Rotation2 returns the counter-clockwise rotation by angle radians.
func Rotation2(angle Real) Mat2 {
	c, s := cos(angle), sin(angle)

	return Mat2{c, -s, s, c}
}

// Scaling2 returns diag(sx, sy).
func Scaling2(sx, sy Real) Mat2 { return Mat2{sx, 0, 0, sy} }

// Rotate2 rotates u by angle radians through Rotation2.
func Rotate2(u Vec2, angle Real) Vec2 { return Rotation2(angle).MulVec(u) }

// At returns entry (r, c). It panics if r or c is outside [0, 2).
func (a Mat2) At(r, c int) Real { return a[2*r+c] }

// M00 … M11 return entry (r, c) named by the two digits, like At(r, c).
func (a Mat2) M00() Real { return a[0] }
func (a Mat2) M01() Real { return a[1] }
func (a Mat2) M10() Real { return a[2] }
func (a Mat2) M11() Real { return a[3] }

// Row returns row r.
func (a Mat2) Row(r int) Vec2 { return Vec2{a[2*r], a[2*r+1]} }

// Col returns column c.
func (a Mat2) Col(c int) Vec2 { return Vec2{a[c], a[2+c]} }

// Add returns a+b.
func (a Mat2) Add(b Mat2) Mat2 {
	for i := range a {
		a[i] += b[i]
	}

	return a
}

// Sub returns a-b.
func (a Mat2) Sub(b Mat2) Mat2 {
	for i := range a {
		a[i] -= b[i]
	}

	return a
}

// AddScalar adds s to every entry.
func (a Mat2) AddScalar(s Real) Mat2 {
	for i := range a {
		a[i] += s
	}

	return a
}

// Scale multiplies every entry by s.
func (a Mat2) Scale(s Real) Mat2 {
	for i := range a {
		a[i] *= s
	}

	return a
}

// Div divides every entry by s, returning the zero matrix when |s| ≤ Epsilon.
func (a Mat2) Div(s Real) Mat2 { return a.Scale(invOrZero(s)) }

// Mul returns the matrix product a·b.
func (a Mat2) Mul(b Mat2) Mat2 {
	return Mat2{
		a[0]*b[0] + a[1]*b[2], a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2], a[2]*b[1] + a[3]*b[3],
	}
}

// MulVec returns a·u with u treated as a column vector.
func (a Mat2) MulVec(u Vec2) Vec2 {
	return Vec2{a[0]*u[0] + a[1]*u[1], a[2]*u[0] + a[3]*u[1]}
}

// Det returns the determinant.
func (a Mat2) Det() Real { return a[0]*a[3] - a[1]*a[2] }

// Transpose returns aᵀ.
func (a Mat2) Transpose() Mat2 { return Mat2{a[0], a[2], a[1], a[3]} }

// Trace returns the sum of the diagonal.
func (a Mat2) Trace() Real { return a[0] + a[3] }

// Inverse returns a⁻¹, or the zero matrix when the determinant is exactly zero.
func (a Mat2) Inverse() Mat2 {
	inv, _ := a.InverseChecked()

	return inv
}

// InverseChecked returns a⁻¹ or ErrSingular when the determinant is exactly zero.
// On error the returned matrix is the zero matrix.
func (a Mat2) InverseChecked() (Mat2, error) {
	det := a.Det()
	if det == 0 {
		return Mat2{}, cxErrorf(opInverse2, ErrSingular)
	}
	inv := 1 / det

	return Mat2{a[3] * inv, -a[1] * inv, -a[2] * inv, a[0] * inv}, nil
}

// Angle recovers θ from a rotation matrix built by Rotation2, in (-π, π].
func (a Mat2) Angle() Real {
	if FloatEquals(a[0], -1) {
		return Pi
	}

	return 2 * atan(a[2]/(1+a[0]))
}

// IsOrthogonal reports whether aᵀ equals a⁻¹ within Epsilon.
func (a Mat2) IsOrthogonal() bool {
	return a.Transpose().Equals(a.Inverse())
}

// Equals reports whether every entry differs by at most Epsilon.
func (a Mat2) Equals(b Mat2) bool {
	for i := range a {
		if !FloatEquals(a[i], b[i]) {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer, one bracketed row per line.
func (a Mat2) String() string {
	return fmt.Sprintf("[%g, %g]\n[%g, %g]\n", a[0], a[1], a[2], a[3])
}
