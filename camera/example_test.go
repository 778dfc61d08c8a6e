// SPDX-License-Identifier: MIT

package camera_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lumen/camera"
	"github.com/katalvlaran/lumen/cx"
)

// ExampleCamera_Move walks a camera forward after a yaw to the left.
func ExampleCamera_Move() {
	cam := camera.New(camera.WithPosition(cx.Vec3Of(0, 1, 0)))
	cam.Rotate(cx.Vec3UnitY, cx.PiHalf)
	cam.Move(cx.Vec3Of(0, 0, -3))

	// one decimal, with -0 folded into 0
	r := func(v cx.Real) float64 { return math.Round(float64(v)*10)/10 + 0 }
	p := cam.Position()
	fmt.Printf("position (%.1f, %.1f, %.1f)\n", r(p.X()), r(p.Y()), r(p.Z()))
	fmt.Println(cam.Forward().Equals(cx.Vec3UnitXNeg))
	// Output:
	// position (-3.0, 1.0, 0.0)
	// true
}
