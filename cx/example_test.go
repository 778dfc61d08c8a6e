// SPDX-License-Identifier: MIT

package cx_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lumen/cx"
)

// ExampleVec3_Cross shows the right-hand rule on the unit basis.
func ExampleVec3_Cross() {
	fmt.Println(cx.Vec3UnitX.Cross(cx.Vec3UnitY))
	fmt.Println(cx.Vec3Of(3, 4, 0).Mag())
	// Output:
	// vec3(0, 0, 1)
	// 5
}

// ExampleMat4_Inverse undoes a translation and reports a singular matrix.
func ExampleMat4_Inverse() {
	m := cx.Translation4(1, 2, 3)
	fmt.Println(m.Inverse().MulPoint(cx.Vec3Of(1, 2, 3)))

	_, err := cx.Scaling4(1, 0, 1).InverseChecked()
	fmt.Println(errors.Is(err, cx.ErrSingular), err)
	// Output:
	// vec3(0, 0, 0)
	// true Mat4.InverseChecked: cx: singular matrix
}

// ExamplePerspective builds the default RH + NO projection and its ZO variant.
func ExamplePerspective() {
	fov := cx.Radians(90)
	gl := cx.Perspective(fov, 1, 0.1, 100)
	vk := cx.Perspective(fov, 1, 0.1, 100, cx.WithDepthRange(cx.DepthZeroToOne))

	fmt.Printf("NO: m22=%.4f m32=%g\n", gl.M22(), gl.M32())
	fmt.Printf("ZO: m22=%.4f m32=%g\n", vk.M22(), vk.M32())
	// Output:
	// NO: m22=-1.0020 m32=-1
	// ZO: m22=-1.0010 m32=-1
}

// ExampleQuat_Slerp interpolates halfway between two rotations about Z.
func ExampleQuat_Slerp() {
	p := cx.IdentityQuat()
	q := cx.QuatFromAxisAngle(cx.Vec3UnitZ, cx.PiHalf)

	mid := p.Slerp(q, 0.5)
	fmt.Println(mid.Equals(cx.QuatFromAxisAngle(cx.Vec3UnitZ, cx.Pi/4)))
	fmt.Println(q.RotateVec3(cx.Vec3UnitX).Equals(cx.Vec3UnitY))
	// Output:
	// true
	// true
}
