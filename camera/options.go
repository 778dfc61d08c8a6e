// SPDX-License-Identifier: MIT

package camera

import "github.com/katalvlaran/lumen/cx"

const panicDepthRangeInvalid = "camera: WithDepthRange: unknown depth range"

// Default perspective parameters used when New receives no projection option.
const (
	DefaultFOV    cx.Real = cx.Pi / 3
	DefaultAspect cx.Real = 1
	DefaultNear   cx.Real = 0.1
	DefaultFar    cx.Real = 100
)

// Option configures a Camera at construction time.
type Option func(*Camera)

// WithPerspective selects a perspective projection with vertical fov in radians.
func WithPerspective(fov, aspect, near, far cx.Real) Option {
	return func(c *Camera) {
		c.kind = Perspective
		c.fov, c.aspect, c.near, c.far = fov, aspect, near, far
	}
}

// WithOrthographic selects an orthographic projection of the given box.
func WithOrthographic(left, right, bottom, top, near, far cx.Real) Option {
	return func(c *Camera) {
		c.kind = Orthographic
		c.left, c.right, c.bottom, c.top = left, right, bottom, top
		c.near, c.far = near, far
	}
}

// WithPosition sets the initial world-space position.
func WithPosition(p cx.Vec3) Option {
	return func(c *Camera) { c.position = p }
}

// WithRotation sets the initial orientation; q is normalized.
func WithRotation(q cx.Quat) Option {
	return func(c *Camera) { c.rotation = q.Normalize() }
}

// WithDepthRange selects the clip-space depth interval of the projection.
// Panics with a stable message on unknown values.
func WithDepthRange(d cx.DepthRange) Option {
	if d != cx.DepthNegOneToOne && d != cx.DepthZeroToOne {
		panic(panicDepthRangeInvalid)
	}

	return func(c *Camera) { c.depth = d }
}
