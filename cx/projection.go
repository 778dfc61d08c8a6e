// SPDX-License-Identifier: MIT
// Package cx: projection and view factories.
//
// Naming:
//   - LH / RH: left- or right-handed view space.
//   - NO / ZO: clip-space depth in [-1, 1] or [0, 1].
//
// Every convention has a named factory; Perspective, Ortho and LookAt
// dispatch on Options (defaults in options.go). Degenerate frusta
// (aspect, fov, near==far, left==right, bottom==top) follow the package
// safe-divide policy: affected entries become zero instead of ±Inf.

package cx

// perspectiveXY returns the shared x/y scale terms for a vertical fov.
func perspectiveXY(fov, aspect Real) (sx, sy Real) {
	t := tan(fov * 0.5)

	return invOrZero(aspect * t), invOrZero(t)
}

// PerspectiveLHNO builds a left-handed perspective projection with depth in [-1, 1].
func PerspectiveLHNO(fov, aspect, near, far Real) Mat4 {
	sx, sy := perspectiveXY(fov, aspect)
	inv := invOrZero(far - near)

	return Mat4{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, (far + near) * inv, -2 * far * near * inv,
		0, 0, 1, 0,
	}
}

// PerspectiveRHNO builds a right-handed perspective projection with depth in [-1, 1].
// This is the classic OpenGL gluPerspective matrix.
func PerspectiveRHNO(fov, aspect, near, far Real) Mat4 {
	sx, sy := perspectiveXY(fov, aspect)
	inv := invOrZero(far - near)

	return Mat4{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, -(far + near) * inv, -2 * far * near * inv,
		0, 0, -1, 0,
	}
}

// PerspectiveLHZO builds a left-handed perspective projection with depth in [0, 1].
func PerspectiveLHZO(fov, aspect, near, far Real) Mat4 {
	sx, sy := perspectiveXY(fov, aspect)
	zfn := far * invOrZero(far-near)

	return Mat4{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, zfn, -zfn * near,
		0, 0, 1, 0,
	}
}

// PerspectiveRHZO builds a right-handed perspective projection with depth in [0, 1].
func PerspectiveRHZO(fov, aspect, near, far Real) Mat4 {
	sx, sy := perspectiveXY(fov, aspect)
	zfn := far * invOrZero(far-near)

	return Mat4{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, -zfn, -zfn * near,
		0, 0, -1, 0,
	}
}

// Perspective builds a perspective projection from a vertical field of view
// (radians), aspect ratio (width/height) and clip distances.
// Convention defaults to RH + NO; override with WithHandedness / WithDepthRange.
func Perspective(fov, aspect, near, far Real, opts ...Option) Mat4 {
	o := gatherOptions(DefaultProjectionHandedness, opts...)
	switch {
	case o.handedness == LeftHanded && o.depth == DepthZeroToOne:
		return PerspectiveLHZO(fov, aspect, near, far)
	case o.handedness == LeftHanded:
		return PerspectiveLHNO(fov, aspect, near, far)
	case o.depth == DepthZeroToOne:
		return PerspectiveRHZO(fov, aspect, near, far)
	default:
		return PerspectiveRHNO(fov, aspect, near, far)
	}
}

// orthoXY returns the x/y rows shared by every orthographic variant.
func orthoXY(left, right, bottom, top Real) Mat4 {
	rl := invOrZero(right - left)
	tb := invOrZero(top - bottom)

	return Mat4{
		2 * rl, 0, 0, -(right + left) * rl,
		0, 2 * tb, 0, -(top + bottom) * tb,
		0, 0, 0, 0,
		0, 0, 0, 1,
	}
}

// OrthoLHNO builds a left-handed orthographic projection with depth in [-1, 1].
func OrthoLHNO(left, right, bottom, top, near, far Real) Mat4 {
	m := orthoXY(left, right, bottom, top)
	fn := invOrZero(far - near)
	m[10], m[11] = 2*fn, -(far+near)*fn

	return m
}

// OrthoRHNO builds a right-handed orthographic projection with depth in [-1, 1].
func OrthoRHNO(left, right, bottom, top, near, far Real) Mat4 {
	m := orthoXY(left, right, bottom, top)
	fn := invOrZero(far - near)
	m[10], m[11] = -2*fn, -(far+near)*fn

	return m
}

// OrthoLHZO builds a left-handed orthographic projection with depth in [0, 1].
func OrthoLHZO(left, right, bottom, top, near, far Real) Mat4 {
	m := orthoXY(left, right, bottom, top)
	fn := invOrZero(far - near)
	m[10], m[11] = fn, -near*fn

	return m
}

// OrthoRHZO builds a right-handed orthographic projection with depth in [0, 1].
func OrthoRHZO(left, right, bottom, top, near, far Real) Mat4 {
	m := orthoXY(left, right, bottom, top)
	fn := invOrZero(far - near)
	m[10], m[11] = -fn, -near*fn

	return m
}

// Ortho builds an orthographic projection of the box [left,right]×[bottom,top]×[near,far].
// Convention defaults to RH + NO.
func Ortho(left, right, bottom, top, near, far Real, opts ...Option) Mat4 {
	o := gatherOptions(DefaultProjectionHandedness, opts...)
	switch {
	case o.handedness == LeftHanded && o.depth == DepthZeroToOne:
		return OrthoLHZO(left, right, bottom, top, near, far)
	case o.handedness == LeftHanded:
		return OrthoLHNO(left, right, bottom, top, near, far)
	case o.depth == DepthZeroToOne:
		return OrthoRHZO(left, right, bottom, top, near, far)
	default:
		return OrthoRHNO(left, right, bottom, top, near, far)
	}
}

// LookAtLH builds a left-handed view matrix: the camera at eye looks toward
// center along +Z in view space.
//
// Implementation:
//   - f = normalize(center - eye), s = normalize(up × f), u = f × s.
//   - Rows are s, u, f with translation -basis·eye.
func LookAtLH(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize()
	s := up.Cross(f).Normalize()
	u := f.Cross(s)

	return Mat4{
		s[0], s[1], s[2], -s.Dot(eye),
		u[0], u[1], u[2], -u.Dot(eye),
		f[0], f[1], f[2], -f.Dot(eye),
		0, 0, 0, 1,
	}
}

// LookAtRH builds a right-handed view matrix: the camera at eye looks toward
// center along -Z in view space (gluLookAt).
//
// Implementation:
//   - f = normalize(center - eye), s = normalize(f × up), u = s × f.
//   - Rows are s, u, -f with translation -basis·eye.
func LookAtRH(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Mat4{
		s[0], s[1], s[2], -s.Dot(eye),
		u[0], u[1], u[2], -u.Dot(eye),
		-f[0], -f[1], -f[2], f.Dot(eye),
		0, 0, 0, 1,
	}
}

// LookAt builds a view matrix from eye, target and up. Handedness defaults
// to LH; WithDepthRange has no effect here.
func LookAt(eye, center, up Vec3, opts ...Option) Mat4 {
	if gatherOptions(DefaultLookAtHandedness, opts...).handedness == RightHanded {
		return LookAtRH(eye, center, up)
	}

	return LookAtLH(eye, center, up)
}
