// SPDX-License-Identifier: MIT
// Package cx: quaternion algebra.
//
// Layout:
//   - Quat is [w, x, y, z]: scalar part first, then the vector part.
//
// Conventions:
//   - Rotations use unit quaternions; RotateVec3/RotateVec4/Mat4 assume the
//     receiver is unit length and do not renormalize it.
//   - Mul is the Hamilton product; p.Mul(q) applied to a vector rotates by q
//     first, then by p.

package cx

import "fmt"

// slerpLinearThreshold is the |dot| above which Slerp falls back to Nlerp.
const slerpLinearThreshold Real = 0.9995

// Quat is a quaternion stored as [w, x, y, z].
type Quat [4]Real

// QuatOf builds a quaternion from its scalar and vector parts.
func QuatOf(w, x, y, z Real) Quat { return Quat{w, x, y, z} }

// QuatFromVec3 builds (w, u).
func QuatFromVec3(w Real, u Vec3) Quat { return Quat{w, u[0], u[1], u[2]} }

// QuatFromVec4 builds (w, u.xyz); u.w is ignored.
func QuatFromVec4(w Real, u Vec4) Quat { return Quat{w, u[0], u[1], u[2]} }

// IdentityQuat returns (1, 0, 0, 0), the rotation by zero.
func IdentityQuat() Quat { return Quat{1, 0, 0, 0} }

// QuatFromAxisAngle returns the unit quaternion rotating by angle radians
// about axis. The axis is normalized internally; a zero axis yields
// (cos(angle/2), 0, 0, 0).
func QuatFromAxisAngle(axis Vec3, angle Real) Quat {
	half := angle * 0.5
	n := axis.Normalize().Scale(sin(half))

	return Quat{cos(half), n[0], n[1], n[2]}
}

// W returns the scalar part.
func (p Quat) W() Real { return p[0] }

// X returns the i component.
func (p Quat) X() Real { return p[1] }

// Y returns the j component.
func (p Quat) Y() Real { return p[2] }

// Z returns the k component.
func (p Quat) Z() Real { return p[3] }

// Vec returns the vector part (x, y, z).
func (p Quat) Vec() Vec3 { return Vec3{p[1], p[2], p[3]} }

// Negate returns -p, which encodes the same rotation as p.
func (p Quat) Negate() Quat { return Quat{-p[0], -p[1], -p[2], -p[3]} }

// Add returns p+q.
func (p Quat) Add(q Quat) Quat {
	return Quat{p[0] + q[0], p[1] + q[1], p[2] + q[2], p[3] + q[3]}
}

// Sub returns p-q.
func (p Quat) Sub(q Quat) Quat {
	return Quat{p[0] - q[0], p[1] - q[1], p[2] - q[2], p[3] - q[3]}
}

// Scale returns s*p.
func (p Quat) Scale(s Real) Quat { return Quat{p[0] * s, p[1] * s, p[2] * s, p[3] * s} }

// Div returns p/s, or the zero quaternion when |s| ≤ Epsilon.
func (p Quat) Div(s Real) Quat { return p.Scale(invOrZero(s)) }

// Mul returns the Hamilton product p·q (non-commutative).
func (p Quat) Mul(q Quat) Quat {
	return Quat{
		p[0]*q[0] - p[1]*q[1] - p[2]*q[2] - p[3]*q[3],
		p[0]*q[1] + p[1]*q[0] + p[2]*q[3] - p[3]*q[2],
		p[0]*q[2] - p[1]*q[3] + p[2]*q[0] + p[3]*q[1],
		p[0]*q[3] + p[1]*q[2] - p[2]*q[1] + p[3]*q[0],
	}
}

// Dot returns the 4D scalar product p·q.
func (p Quat) Dot(q Quat) Real { return p[0]*q[0] + p[1]*q[1] + p[2]*q[2] + p[3]*q[3] }

// MagSq returns |p|².
func (p Quat) MagSq() Real { return p.Dot(p) }

// Mag returns |p|.
func (p Quat) Mag() Real { return sqrt(p.MagSq()) }

// Normalize returns p/|p|, or the zero quaternion when |p| ≤ Epsilon.
func (p Quat) Normalize() Quat { return p.Scale(invOrZero(p.Mag())) }

// Conjugate negates the vector part.
func (p Quat) Conjugate() Quat { return Quat{p[0], -p[1], -p[2], -p[3]} }

// Inverse returns conj(p)/|p|², or the zero quaternion when p is zero.
// For unit quaternions it equals Conjugate.
func (p Quat) Inverse() Quat {
	n := p.MagSq()
	if n == 0 {
		return Quat{}
	}

	return p.Conjugate().Scale(1 / n)
}

// Lerp blends p toward q component-wise. The result is generally not unit length.
func (p Quat) Lerp(q Quat, t Real) Quat {
	return p.Scale(1 - t).Add(q.Scale(t))
}

// Nlerp is Lerp followed by Normalize, taking the shorter arc: q is negated
// when p·q < 0.
func (p Quat) Nlerp(q Quat, t Real) Quat {
	if p.Dot(q) < 0 {
		q = q.Negate()
	}

	return p.Lerp(q, t).Normalize()
}

// Slerp interpolates along the great arc from p to q at constant angular speed.
//
// Implementation:
//   - Stage 1: negate q when p·q < 0 so the shorter arc is taken.
//   - Stage 2: when p·q > 0.9995 the arc is nearly flat; return Nlerp to
//     avoid dividing by a vanishing sin(ω).
//   - Stage 3: ω = acos(clamp(p·q)); result = p·sin((1-t)ω)/sin ω + q·sin(tω)/sin ω.
//
// Notes:
//   - Because of Stage 1, Slerp(p, q, 1) may return -q, which encodes the
//     same rotation as q.
func (p Quat) Slerp(q Quat, t Real) Quat {
	dot := p.Dot(q)
	if dot < 0 {
		q = q.Negate()
		dot = -dot
	}
	if dot > slerpLinearThreshold {
		return p.Nlerp(q, t)
	}
	omega := acos(Clamp(dot, -1, 1))
	s := sin(omega)

	return p.Scale(sin((1-t)*omega) / s).Add(q.Scale(sin(t*omega) / s))
}

// RotateVec3 rotates u by conjugation p·(0, u)·p⁻¹ and returns the vector part.
func (p Quat) RotateVec3(u Vec3) Vec3 {
	return p.Mul(QuatFromVec3(0, u)).Mul(p.Inverse()).Vec()
}

// RotateVec4 rotates u.xyz like RotateVec3; the result has w = 0.
func (p Quat) RotateVec4(u Vec4) Vec4 { return p.RotateVec3(u.XYZ()).Vec4(0) }

// Mat4 returns the homogeneous rotation matrix of the unit quaternion p.
// The receiver is not renormalized.
func (p Quat) Mat4() Mat4 { return Mat4FromQuat(p) }

// Equals reports whether every component differs by at most Epsilon.
func (p Quat) Equals(q Quat) bool {
	return FloatEquals(p[0], q[0]) && FloatEquals(p[1], q[1]) &&
		FloatEquals(p[2], q[2]) && FloatEquals(p[3], q[3])
}

// String implements fmt.Stringer.
func (p Quat) String() string {
	return fmt.Sprintf("quat(%g; %g, %g, %g)", p[0], p[1], p[2], p[3])
}

// Mat4FromQuat builds the rotation matrix of a unit quaternion in closed form.
func Mat4FromQuat(p Quat) Mat4 {
	w, x, y, z := p[0], p[1], p[2], p[3]

	return Mat4{
		2*(w*w+x*x) - 1, 2 * (x*y - w*z), 2 * (x*z + w*y), 0,
		2 * (x*y + w*z), 2*(w*w+y*y) - 1, 2 * (y*z - w*x), 0,
		2 * (x*z - w*y), 2 * (y*z + w*x), 2*(w*w+z*z) - 1, 0,
		0, 0, 0, 1,
	}
}
