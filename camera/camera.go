// SPDX-License-Identifier: MIT

package camera

import (
	"sync"

	"github.com/katalvlaran/lumen/cx"
)

// ProjectionKind tells which projection a Camera builds.
type ProjectionKind int

const (
	// Perspective uses a vertical field of view.
	Perspective ProjectionKind = iota
	// Orthographic uses an axis-aligned clip box.
	Orthographic
)

// String implements fmt.Stringer.
func (k ProjectionKind) String() string {
	if k == Orthographic {
		return "orthographic"
	}

	return "perspective"
}

// Camera holds a pose and projection parameters and caches the derived
// matrices. The zero value is not usable; call New.
type Camera struct {
	mu sync.Mutex

	kind                     ProjectionKind
	depth                    cx.DepthRange
	fov, aspect              cx.Real
	left, right, bottom, top cx.Real
	near, far                cx.Real

	position cx.Vec3
	rotation cx.Quat

	view, proj           cx.Mat4
	viewDirty, projDirty bool
}

// New returns a camera at the origin looking down -Z with the default
// perspective projection, then applies opts in order.
func New(opts ...Option) *Camera {
	c := &Camera{
		kind:      Perspective,
		depth:     cx.DefaultDepthRange,
		fov:       DefaultFOV,
		aspect:    DefaultAspect,
		near:      DefaultNear,
		far:       DefaultFar,
		rotation:  cx.IdentityQuat(),
		viewDirty: true,
		projDirty: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

// Kind reports the active projection kind.
func (c *Camera) Kind() ProjectionKind {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.kind
}

// Position returns the world-space position.
func (c *Camera) Position() cx.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.position
}

// SetPosition moves the camera to p.
func (c *Camera) SetPosition(p cx.Vec3) {
	c.mu.Lock()
	c.position = p
	c.viewDirty = true
	c.mu.Unlock()
}

// Move translates the camera by delta expressed in camera space, so
// Move(Vec3{0, 0, -1}) steps one unit forward.
func (c *Camera) Move(delta cx.Vec3) {
	c.mu.Lock()
	c.position = c.position.Add(c.rotation.RotateVec3(delta))
	c.viewDirty = true
	c.mu.Unlock()
}

// Rotation returns the orientation as a unit quaternion.
func (c *Camera) Rotation() cx.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.rotation
}

// SetRotation replaces the orientation; q is normalized.
func (c *Camera) SetRotation(q cx.Quat) {
	c.mu.Lock()
	c.rotation = q.Normalize()
	c.viewDirty = true
	c.mu.Unlock()
}

// Rotate turns the camera by angle radians about a world-space axis.
// The new rotation is applied after the current one and renormalized.
func (c *Camera) Rotate(axis cx.Vec3, angle cx.Real) {
	c.mu.Lock()
	c.rotation = cx.QuatFromAxisAngle(axis, angle).Mul(c.rotation).Normalize()
	c.viewDirty = true
	c.mu.Unlock()
}

// Forward returns the world-space viewing direction (camera -Z).
func (c *Camera) Forward() cx.Vec3 { return c.Rotation().RotateVec3(cx.Vec3UnitZNeg) }

// Right returns the world-space camera +X axis.
func (c *Camera) Right() cx.Vec3 { return c.Rotation().RotateVec3(cx.Vec3UnitX) }

// Up returns the world-space camera +Y axis.
func (c *Camera) Up() cx.Vec3 { return c.Rotation().RotateVec3(cx.Vec3UnitY) }

// View returns the world-to-camera matrix R(conj(q))·T(-position).
// It is rebuilt only after the pose changed.
func (c *Camera) View() cx.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.viewLocked()
}

func (c *Camera) viewLocked() cx.Mat4 {
	if c.viewDirty {
		p := c.position
		c.view = cx.Mat4FromQuat(c.rotation.Conjugate().Normalize()).
			Mul(cx.Translation4(-p[0], -p[1], -p[2]))
		c.viewDirty = false
	}

	return c.view
}

// Projection returns the camera-to-clip matrix (right-handed).
// It is rebuilt only after the projection parameters changed.
func (c *Camera) Projection() cx.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.projLocked()
}

func (c *Camera) projLocked() cx.Mat4 {
	if c.projDirty {
		conv := cx.WithDepthRange(c.depth)
		if c.kind == Orthographic {
			c.proj = cx.Ortho(c.left, c.right, c.bottom, c.top, c.near, c.far, conv)
		} else {
			c.proj = cx.Perspective(c.fov, c.aspect, c.near, c.far, conv)
		}
		c.projDirty = false
	}

	return c.proj
}

// ViewProjection returns Projection()·View(), mapping world space to clip space.
func (c *Camera) ViewProjection() cx.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.projLocked().Mul(c.viewLocked())
}

// SetFOV changes the vertical field of view (radians) of a perspective camera.
func (c *Camera) SetFOV(fov cx.Real) {
	c.mu.Lock()
	c.fov = fov
	c.projDirty = true
	c.mu.Unlock()
}

// FOV returns the vertical field of view in radians.
func (c *Camera) FOV() cx.Real {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fov
}

// SetAspect changes the width/height ratio, e.g. after a window resize.
func (c *Camera) SetAspect(aspect cx.Real) {
	c.mu.Lock()
	c.aspect = aspect
	c.projDirty = true
	c.mu.Unlock()
}

// Aspect returns the width/height ratio.
func (c *Camera) Aspect() cx.Real {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.aspect
}

// SetPerspective switches to a perspective projection with the given parameters.
func (c *Camera) SetPerspective(fov, aspect, near, far cx.Real) {
	c.mu.Lock()
	WithPerspective(fov, aspect, near, far)(c)
	c.projDirty = true
	c.mu.Unlock()
}

// SetOrthographic switches to an orthographic projection of the given box.
func (c *Camera) SetOrthographic(left, right, bottom, top, near, far cx.Real) {
	c.mu.Lock()
	WithOrthographic(left, right, bottom, top, near, far)(c)
	c.projDirty = true
	c.mu.Unlock()
}
