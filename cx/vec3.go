// SPDX-License-Identifier: MIT

package cx

import (
	"fmt"
	"math/rand"
)

// Vec3 is a 3-component vector stored as [x, y, z].
type Vec3 [3]Real

// Reference 3D vectors.
var (
	Vec3UnitX    = Vec3{1, 0, 0}
	Vec3UnitY    = Vec3{0, 1, 0}
	Vec3UnitZ    = Vec3{0, 0, 1}
	Vec3UnitXNeg = Vec3{-1, 0, 0}
	Vec3UnitYNeg = Vec3{0, -1, 0}
	Vec3UnitZNeg = Vec3{0, 0, -1}
	Vec3One      = Vec3{1, 1, 1}
)

// Vec3Of builds a Vec3 from its components.
func Vec3Of(x, y, z Real) Vec3 { return Vec3{x, y, z} }

// RandomVec3 returns a vector with components in (-1, 1).
// A nil rng falls back to the shared math/rand source.
func RandomVec3(rng *rand.Rand) Vec3 {
	return Vec3{randComponent(rng), randComponent(rng), randComponent(rng)}
}

// X returns the first component.
func (u Vec3) X() Real { return u[0] }

// Y returns the second component.
func (u Vec3) Y() Real { return u[1] }

// Z returns the third component.
func (u Vec3) Z() Real { return u[2] }

// XY drops the z component.
func (u Vec3) XY() Vec2 { return Vec2{u[0], u[1]} }

// Vec4 extends u with the given w.
func (u Vec3) Vec4(w Real) Vec4 { return Vec4{u[0], u[1], u[2], w} }

// Negate returns -u.
func (u Vec3) Negate() Vec3 { return Vec3{-u[0], -u[1], -u[2]} }

// Add returns u+v.
func (u Vec3) Add(v Vec3) Vec3 { return Vec3{u[0] + v[0], u[1] + v[1], u[2] + v[2]} }

// AddScalar adds s to every component.
func (u Vec3) AddScalar(s Real) Vec3 { return Vec3{u[0] + s, u[1] + s, u[2] + s} }

// Sub returns u-v.
func (u Vec3) Sub(v Vec3) Vec3 { return Vec3{u[0] - v[0], u[1] - v[1], u[2] - v[2]} }

// SubScalar subtracts s from every component.
func (u Vec3) SubScalar(s Real) Vec3 { return Vec3{u[0] - s, u[1] - s, u[2] - s} }

// Scale returns s*u.
func (u Vec3) Scale(s Real) Vec3 { return Vec3{u[0] * s, u[1] * s, u[2] * s} }

// Div returns u/s, or the zero vector when |s| ≤ Epsilon.
func (u Vec3) Div(s Real) Vec3 { return u.Scale(invOrZero(s)) }

// Dot returns the scalar product u·v.
func (u Vec3) Dot(v Vec3) Real { return u[0]*v[0] + u[1]*v[1] + u[2]*v[2] }

// Cross returns the right-handed cross product u×v.
func (u Vec3) Cross(v Vec3) Vec3 {
	return Vec3{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
}

// MagSq returns |u|² without the square root.
func (u Vec3) MagSq() Real { return u.Dot(u) }

// Mag returns the Euclidean length |u|.
func (u Vec3) Mag() Real { return sqrt(u.MagSq()) }

// Normalize returns u/|u|, or the zero vector when |u| ≤ Epsilon.
func (u Vec3) Normalize() Vec3 { return u.Scale(invOrZero(u.Mag())) }

// Distance returns |u-v|.
func (u Vec3) Distance(v Vec3) Real { return u.Sub(v).Mag() }

// Lerp blends u toward v component-wise by t.
func (u Vec3) Lerp(v Vec3, t Real) Vec3 {
	return Vec3{Lerp(u[0], v[0], t), Lerp(u[1], v[1], t), Lerp(u[2], v[2], t)}
}

// Angle returns the unsigned angle between u and v in [0, π].
// Zero-length operands give 0.
func (u Vec3) Angle(v Vec3) Real { return angleBetween(u.Dot(v), u.Mag()*v.Mag()) }

// Project returns the projection of u onto v. Projecting onto a zero vector gives zero.
func (u Vec3) Project(v Vec3) Vec3 { return v.Scale(projFactor(u.Dot(v), v.MagSq())) }

// Reflect mirrors u across the plane with normal n: u - 2·proj(u, n).
func (u Vec3) Reflect(n Vec3) Vec3 { return u.Sub(u.Project(n).Scale(2)) }

// Equals reports whether every component differs by at most Epsilon.
func (u Vec3) Equals(v Vec3) bool {
	return FloatEquals(u[0], v[0]) && FloatEquals(u[1], v[1]) && FloatEquals(u[2], v[2])
}

// String implements fmt.Stringer.
func (u Vec3) String() string {
	return fmt.Sprintf("vec3(%g, %g, %g)", u[0], u[1], u[2])
}
