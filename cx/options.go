// SPDX-License-Identifier: MIT

// Package cx: functional configuration for the convention-dispatching
// projection and view factories (Perspective, Ortho, LookAt). This file defines:
//   - Handedness and DepthRange enums,
//   - documented defaults (constants),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions helper that resolves the effective convention.
//
// Design goals:
//   - No process-wide mode: every call site either names its convention
//     (PerspectiveRHZO, LookAtLH, ...) or passes options explicitly.
//   - Defaults are visible here and in the docs of each dispatcher.
package cx

// Handedness selects the coordinate-system orientation of a projection or view.
type Handedness int

const (
	// RightHanded looks down -Z in view space (OpenGL style).
	RightHanded Handedness = iota
	// LeftHanded looks down +Z in view space (Direct3D style).
	LeftHanded
)

// DepthRange selects the clip-space depth interval.
type DepthRange int

const (
	// DepthNegOneToOne maps near..far to [-1, 1] ("NO", OpenGL).
	DepthNegOneToOne DepthRange = iota
	// DepthZeroToOne maps near..far to [0, 1] ("ZO", Vulkan/Direct3D/WebGPU).
	DepthZeroToOne
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultProjectionHandedness is used by Perspective and Ortho.
	DefaultProjectionHandedness = RightHanded

	// DefaultDepthRange is used by Perspective and Ortho.
	DefaultDepthRange = DepthNegOneToOne

	// DefaultLookAtHandedness is used by LookAt.
	DefaultLookAtHandedness = LeftHanded
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicHandednessInvalid = "cx: WithHandedness: unknown handedness"
	panicDepthRangeInvalid = "cx: WithDepthRange: unknown depth range"
)

// Option mutates the convention used by a dispatching factory.
type Option func(*Options)

// Options stores the effective convention after applying Option setters.
// Fields are unexported; factories resolve them through gatherOptions.
type Options struct {
	handedness    Handedness
	handednessSet bool // true once WithHandedness ran; otherwise the caller's default wins
	depth         DepthRange
}

// WithHandedness selects left- or right-handed output.
// Panics with a stable message on values other than LeftHanded/RightHanded.
func WithHandedness(h Handedness) Option {
	if h != LeftHanded && h != RightHanded {
		panic(panicHandednessInvalid)
	}

	return func(o *Options) {
		o.handedness = h
		o.handednessSet = true
	}
}

// WithDepthRange selects the clip-space depth interval. LookAt ignores it.
// Panics with a stable message on unknown values.
func WithDepthRange(d DepthRange) Option {
	if d != DepthNegOneToOne && d != DepthZeroToOne {
		panic(panicDepthRangeInvalid)
	}

	return func(o *Options) { o.depth = d }
}

// gatherOptions applies opts on top of the defaults; defHand is the
// handedness the calling factory falls back to.
func gatherOptions(defHand Handedness, opts ...Option) Options {
	o := Options{depth: DefaultDepthRange}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if !o.handednessSet {
		o.handedness = defHand
	}

	return o
}

// Handedness reports the resolved handedness.
func (o Options) Handedness() Handedness { return o.handedness }

// DepthRange reports the resolved depth range.
func (o Options) DepthRange() DepthRange { return o.depth }

// String implements fmt.Stringer.
func (h Handedness) String() string {
	if h == LeftHanded {
		return "LH"
	}

	return "RH"
}

// String implements fmt.Stringer.
func (d DepthRange) String() string {
	if d == DepthZeroToOne {
		return "ZO"
	}

	return "NO"
}
