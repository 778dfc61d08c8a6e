// SPDX-License-Identifier: MIT

package cx

import (
	"fmt"
	"math/rand"
)

// Vec2 is a 2-component vector stored as [x, y].
type Vec2 [2]Real

// Reference 2D vectors.
var (
	Vec2UnitX    = Vec2{1, 0}
	Vec2UnitY    = Vec2{0, 1}
	Vec2UnitXNeg = Vec2{-1, 0}
	Vec2UnitYNeg = Vec2{0, -1}
	Vec2One      = Vec2{1, 1}
)

// Vec2Of builds a Vec2 from its components.
func Vec2Of(x, y Real) Vec2 { return Vec2{x, y} }

// RandomVec2 returns a vector with components in (-1, 1).
// A nil rng falls back to the shared math/rand source.
func RandomVec2(rng *rand.Rand) Vec2 {
	return Vec2{randComponent(rng), randComponent(rng)}
}

// X returns the first component.
func (u Vec2) X() Real { return u[0] }

// Y returns the second component.
func (u Vec2) Y() Real { return u[1] }

// Negate returns -u.
func (u Vec2) Negate() Vec2 { return Vec2{-u[0], -u[1]} }

// Add returns u+v.
func (u Vec2) Add(v Vec2) Vec2 { return Vec2{u[0] + v[0], u[1] + v[1]} }

// AddScalar adds s to every component.
func (u Vec2) AddScalar(s Real) Vec2 { return Vec2{u[0] + s, u[1] + s} }

// Sub returns u-v.
func (u Vec2) Sub(v Vec2) Vec2 { return Vec2{u[0] - v[0], u[1] - v[1]} }

// SubScalar subtracts s from every component.
func (u Vec2) SubScalar(s Real) Vec2 { return Vec2{u[0] - s, u[1] - s} }

// Scale returns s*u.
func (u Vec2) Scale(s Real) Vec2 { return Vec2{u[0] * s, u[1] * s} }

// Div returns u/s, or the zero vector when |s| ≤ Epsilon.
func (u Vec2) Div(s Real) Vec2 {
	inv := invOrZero(s)

	return Vec2{u[0] * inv, u[1] * inv}
}

// Dot returns the scalar product u·v.
func (u Vec2) Dot(v Vec2) Real { return u[0]*v[0] + u[1]*v[1] }

// Cross returns the z component of the 3D cross product (u.x, u.y, 0)×(v.x, v.y, 0).
func (u Vec2) Cross(v Vec2) Real { return u[0]*v[1] - u[1]*v[0] }

// MagSq returns |u|² without the square root.
func (u Vec2) MagSq() Real { return u.Dot(u) }

// Mag returns the Euclidean length |u|.
func (u Vec2) Mag() Real { return sqrt(u.MagSq()) }

// Normalize returns u/|u|, or the zero vector when |u| ≤ Epsilon.
func (u Vec2) Normalize() Vec2 { return u.Scale(invOrZero(u.Mag())) }

// Distance returns |u-v|.
func (u Vec2) Distance(v Vec2) Real { return u.Sub(v).Mag() }

// Lerp blends u toward v component-wise by t.
func (u Vec2) Lerp(v Vec2, t Real) Vec2 {
	return Vec2{Lerp(u[0], v[0], t), Lerp(u[1], v[1], t)}
}

// Rotate turns u counter-clockwise by angle radians.
func (u Vec2) Rotate(angle Real) Vec2 {
	c, s := cos(angle), sin(angle)

	return Vec2{u[0]*c - u[1]*s, u[0]*s + u[1]*c}
}

// Angle returns the unsigned angle between u and v in [0, π].
// Zero-length operands give 0.
func (u Vec2) Angle(v Vec2) Real { return angleBetween(u.Dot(v), u.Mag()*v.Mag()) }

// Project returns the projection of u onto v. Projecting onto a zero vector gives zero.
func (u Vec2) Project(v Vec2) Vec2 { return v.Scale(projFactor(u.Dot(v), v.MagSq())) }

// Reflect mirrors u across the line with normal n: u - 2·proj(u, n).
func (u Vec2) Reflect(n Vec2) Vec2 { return u.Sub(u.Project(n).Scale(2)) }

// Equals reports whether every component differs by at most Epsilon.
func (u Vec2) Equals(v Vec2) bool {
	return FloatEquals(u[0], v[0]) && FloatEquals(u[1], v[1])
}

// String implements fmt.Stringer.
func (u Vec2) String() string {
	return fmt.Sprintf("vec2(%g, %g)", u[0], u[1])
}

// angleBetween evaluates acos(clamp(dot/mag, -1, 1)), returning 0 for mag ≤ Epsilon.
func angleBetween(dot, mag Real) Real {
	if mag <= Epsilon {
		return 0
	}

	return acos(Clamp(dot/mag, -1, 1))
}

// randComponent draws a-b with a, b uniform in [0, 1).
func randComponent(rng *rand.Rand) Real {
	if rng == nil {
		return Real(rand.Float64() - rand.Float64())
	}

	return Real(rng.Float64() - rng.Float64())
}
