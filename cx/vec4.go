// SPDX-License-Identifier: MIT

package cx

import (
	"fmt"
	"math/rand"
)

// Vec4 is a 4-component vector stored as [x, y, z, w].
// Points carry w=1 and directions w=0 when multiplied by a Mat4.
type Vec4 [4]Real

// Reference 4D vectors.
var (
	Vec4UnitX    = Vec4{1, 0, 0, 0}
	Vec4UnitY    = Vec4{0, 1, 0, 0}
	Vec4UnitZ    = Vec4{0, 0, 1, 0}
	Vec4UnitW    = Vec4{0, 0, 0, 1}
	Vec4UnitXNeg = Vec4{-1, 0, 0, 0}
	Vec4UnitYNeg = Vec4{0, -1, 0, 0}
	Vec4UnitZNeg = Vec4{0, 0, -1, 0}
	Vec4UnitWNeg = Vec4{0, 0, 0, -1}
	Vec4One      = Vec4{1, 1, 1, 1}
)

// Vec4Of builds a Vec4 from its components.
func Vec4Of(x, y, z, w Real) Vec4 { return Vec4{x, y, z, w} }

// RandomVec4 returns a vector with components in (-1, 1).
// A nil rng falls back to the shared math/rand source.
func RandomVec4(rng *rand.Rand) Vec4 {
	return Vec4{randComponent(rng), randComponent(rng), randComponent(rng), randComponent(rng)}
}

// X returns the first component.
func (u Vec4) X() Real { return u[0] }

// Y returns the second component.
func (u Vec4) Y() Real { return u[1] }

// Z returns the third component.
func (u Vec4) Z() Real { return u[2] }

// W returns the fourth component.
func (u Vec4) W() Real { return u[3] }

// XYZ drops the w component.
func (u Vec4) XYZ() Vec3 { return Vec3{u[0], u[1], u[2]} }

// Negate returns -u.
func (u Vec4) Negate() Vec4 { return Vec4{-u[0], -u[1], -u[2], -u[3]} }

// Add returns u+v.
func (u Vec4) Add(v Vec4) Vec4 {
	return Vec4{u[0] + v[0], u[1] + v[1], u[2] + v[2], u[3] + v[3]}
}

// AddScalar adds s to every component.
func (u Vec4) AddScalar(s Real) Vec4 { return Vec4{u[0] + s, u[1] + s, u[2] + s, u[3] + s} }

// Sub returns u-v.
func (u Vec4) Sub(v Vec4) Vec4 {
	return Vec4{u[0] - v[0], u[1] - v[1], u[2] - v[2], u[3] - v[3]}
}

// SubScalar subtracts s from every component.
func (u Vec4) SubScalar(s Real) Vec4 { return Vec4{u[0] - s, u[1] - s, u[2] - s, u[3] - s} }

// Scale returns s*u.
func (u Vec4) Scale(s Real) Vec4 { return Vec4{u[0] * s, u[1] * s, u[2] * s, u[3] * s} }

// Div returns u/s, or the zero vector when |s| ≤ Epsilon.
func (u Vec4) Div(s Real) Vec4 { return u.Scale(invOrZero(s)) }

// Dot returns the 4D scalar product u·v.
func (u Vec4) Dot(v Vec4) Real { return u[0]*v[0] + u[1]*v[1] + u[2]*v[2] + u[3]*v[3] }

// Cross returns the 3D cross product of the xyz parts with w = 0.
func (u Vec4) Cross(v Vec4) Vec4 {
	return u.XYZ().Cross(v.XYZ()).Vec4(0)
}

// MagSq returns |u|² without the square root.
func (u Vec4) MagSq() Real { return u.Dot(u) }

// Mag returns the Euclidean length |u|.
func (u Vec4) Mag() Real { return sqrt(u.MagSq()) }

// Normalize returns u/|u|, or the zero vector when |u| ≤ Epsilon.
func (u Vec4) Normalize() Vec4 { return u.Scale(invOrZero(u.Mag())) }

// Distance returns |u-v|.
func (u Vec4) Distance(v Vec4) Real { return u.Sub(v).Mag() }

// Lerp blends u toward v component-wise by t.
func (u Vec4) Lerp(v Vec4, t Real) Vec4 {
	return Vec4{Lerp(u[0], v[0], t), Lerp(u[1], v[1], t), Lerp(u[2], v[2], t), Lerp(u[3], v[3], t)}
}

// Angle returns the unsigned 4D angle between u and v in [0, π].
func (u Vec4) Angle(v Vec4) Real { return angleBetween(u.Dot(v), u.Mag()*v.Mag()) }

// Project returns the projection of u onto v. Projecting onto a zero vector gives zero.
func (u Vec4) Project(v Vec4) Vec4 { return v.Scale(projFactor(u.Dot(v), v.MagSq())) }

// Reflect mirrors u across the hyperplane with normal n.
func (u Vec4) Reflect(n Vec4) Vec4 { return u.Sub(u.Project(n).Scale(2)) }

// Equals reports whether every component differs by at most Epsilon.
func (u Vec4) Equals(v Vec4) bool {
	return FloatEquals(u[0], v[0]) && FloatEquals(u[1], v[1]) &&
		FloatEquals(u[2], v[2]) && FloatEquals(u[3], v[3])
}

// String implements fmt.Stringer.
func (u Vec4) String() string {
	return fmt.Sprintf("vec4(%g, %g, %g, %g)", u[0], u[1], u[2], u[3])
}
