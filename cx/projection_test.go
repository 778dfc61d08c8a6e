// SPDX-License-Identifier: MIT

package cx_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lumen/cx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	zNear = cx.Real(0.1)
	zFar  = cx.Real(100)
)

func TestPerspective_RHNO(t *testing.T) {
	m := cx.PerspectiveRHNO(cx.Radians(90), 1, zNear, zFar)

	assert.InDelta(t, 1.0, float64(m.M00()), 1e-12)
	assert.InDelta(t, 1.0, float64(m.M11()), 1e-12)
	assert.InDelta(t, -100.1/99.9, float64(m.M22()), 1e-12)
	assert.InDelta(t, -20/99.9, float64(m.M23()), 1e-12)
	assert.Equal(t, cx.Real(-1), m.M32())
	assert.Equal(t, cx.Real(0), m.M33())

	assert.True(t, cx.Perspective(cx.Radians(90), 1, zNear, zFar).Equals(m), "RH+NO is the default")
}

func TestPerspective_DepthMapping(t *testing.T) {
	fov, aspect := cx.Radians(60), cx.Real(16.0/9.0)

	cases := []struct {
		name     string
		m        cx.Mat4
		sign     cx.Real // view-space z sign for points in front of the camera
		clipNear float64
		clipFar  float64
	}{
		{"RHNO", cx.PerspectiveRHNO(fov, aspect, zNear, zFar), -1, -1, 1},
		{"LHNO", cx.PerspectiveLHNO(fov, aspect, zNear, zFar), 1, -1, 1},
		{"RHZO", cx.PerspectiveRHZO(fov, aspect, zNear, zFar), -1, 0, 1},
		{"LHZO", cx.PerspectiveLHZO(fov, aspect, zNear, zFar), 1, 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pn := tc.m.MulPoint(cx.Vec3{0, 0, tc.sign * zNear})
			pf := tc.m.MulPoint(cx.Vec3{0, 0, tc.sign * zFar})
			assert.InDelta(t, tc.clipNear, float64(pn.Z()), 1e-9)
			assert.InDelta(t, tc.clipFar, float64(pf.Z()), 1e-9)
		})
	}

	lh := cx.Perspective(fov, aspect, zNear, zFar, cx.WithHandedness(cx.LeftHanded), cx.WithDepthRange(cx.DepthZeroToOne))
	assert.Equal(t, cx.PerspectiveLHZO(fov, aspect, zNear, zFar), lh)
	rz := cx.Perspective(fov, aspect, zNear, zFar, cx.WithDepthRange(cx.DepthZeroToOne))
	assert.Equal(t, cx.PerspectiveRHZO(fov, aspect, zNear, zFar), rz)
	ln := cx.Perspective(fov, aspect, zNear, zFar, cx.WithHandedness(cx.LeftHanded))
	assert.Equal(t, cx.PerspectiveLHNO(fov, aspect, zNear, zFar), ln)
}

func TestPerspective_Degenerate(t *testing.T) {
	m := cx.PerspectiveRHNO(cx.Radians(90), 0, 1, 1)
	assert.Equal(t, cx.Real(0), m.M00(), "zero aspect")
	assert.Equal(t, cx.Real(0), m.M22(), "near == far")
	assert.Equal(t, cx.Real(0), m.M23())
	for _, v := range m {
		require.False(t, math.IsNaN(float64(v)), "no NaN entries")
	}
}

func TestOrtho(t *testing.T) {
	m := cx.Ortho(-2, 2, -1, 1, 1, 10)
	assert.Equal(t, cx.OrthoRHNO(-2, 2, -1, 1, 1, 10), m)
	assert.True(t, m.MulPoint(cx.Vec3{2, 1, -10}).Equals(cx.Vec3{1, 1, 1}))
	assert.True(t, m.MulPoint(cx.Vec3{-2, -1, -1}).Equals(cx.Vec3{-1, -1, -1}))

	lhzo := cx.Ortho(-2, 2, -1, 1, 1, 10, cx.WithHandedness(cx.LeftHanded), cx.WithDepthRange(cx.DepthZeroToOne))
	assert.Equal(t, cx.OrthoLHZO(-2, 2, -1, 1, 1, 10), lhzo)
	assert.True(t, lhzo.MulPoint(cx.Vec3{0, 0, 1}).Equals(cx.Vec3{0, 0, 0}))
	assert.True(t, lhzo.MulPoint(cx.Vec3{0, 0, 10}).Equals(cx.Vec3{0, 0, 1}))

	assert.True(t, cx.OrthoLHNO(-2, 2, -1, 1, 1, 10).MulPoint(cx.Vec3{0, 0, 10}).Equals(cx.Vec3{0, 0, 1}))
	assert.True(t, cx.OrthoRHZO(-2, 2, -1, 1, 1, 10).MulPoint(cx.Vec3{0, 0, -1}).Equals(cx.Vec3{}))

	flat := cx.OrthoRHNO(1, 1, 0, 2, 0, 1)
	assert.Equal(t, cx.Real(0), flat.M00(), "left == right")
}

func TestLookAt(t *testing.T) {
	eye := cx.Vec3{0, 0, 5}
	up := cx.Vec3UnitY

	rh := cx.LookAtRH(eye, cx.Vec3{}, up)
	assert.True(t, rh.MulPoint(eye).Equals(cx.Vec3{}))
	assert.True(t, rh.MulPoint(cx.Vec3{}).Equals(cx.Vec3{0, 0, -5}), "RH looks down -Z")
	assert.True(t, rh.MulPoint(cx.Vec3{1, 0, 0}).Equals(cx.Vec3{1, 0, -5}))

	lh := cx.LookAtLH(eye, cx.Vec3{}, up)
	assert.True(t, lh.MulPoint(cx.Vec3{}).Equals(cx.Vec3{0, 0, 5}), "LH looks down +Z")

	assert.Equal(t, lh, cx.LookAt(eye, cx.Vec3{}, up), "LH is the look-at default")
	assert.Equal(t, rh, cx.LookAt(eye, cx.Vec3{}, up, cx.WithHandedness(cx.RightHanded)))
	assert.Equal(t, lh, cx.LookAt(eye, cx.Vec3{}, up, cx.WithDepthRange(cx.DepthZeroToOne)))
}

func TestOptions_Panics(t *testing.T) {
	require.PanicsWithValue(t, "cx: WithHandedness: unknown handedness", func() {
		cx.WithHandedness(cx.Handedness(9))
	})
	require.PanicsWithValue(t, "cx: WithDepthRange: unknown depth range", func() {
		cx.WithDepthRange(cx.DepthRange(-1))
	})
	assert.Equal(t, "RH", cx.RightHanded.String())
	assert.Equal(t, "LH", cx.LeftHanded.String())
	assert.Equal(t, "NO", cx.DepthNegOneToOne.String())
	assert.Equal(t, "ZO", cx.DepthZeroToOne.String())
}
